// Package textfmt reads and writes automata in the plain text formats used
// by the command line tools.
package textfmt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"automata/internal/automaton"
)

// DefaultEpsilon is the symbol character that denotes a lambda transition.
const DefaultEpsilon = '_'

var (
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrUnknownState  = errors.New("unknown state")
	ErrBadSymbol     = errors.New("symbol must be a single character")
	ErrBadCount      = errors.New("count must not be negative")
)

// builder is what the decoder needs from every automaton variant.
type builder interface {
	automaton.Automaton
	AddTransition(src, dest automaton.State, symbol automaton.Symbol)
}

// Decoder reads automata and word batches in the count-driven format:
//
//	<state_count> <state>...
//	<transition_count> (<src> <dest> <symbol>)...
//	<initial>
//	<final_count> <final>...
//	[<word_count> <word>...]
type Decoder struct {
	lex *Lexer
	// Epsilon is the symbol character read as a lambda transition by
	// DecodeLNFA.
	Epsilon rune
}

func NewDecoder(input []byte) (*Decoder, error) {
	lex, err := NewLexer(input)
	if err != nil {
		return nil, err
	}
	return &Decoder{lex: lex, Epsilon: DefaultEpsilon}, nil
}

// ReadAll reads r and returns a decoder over its contents.
func ReadAll(r io.Reader) (*Decoder, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewDecoder(data)
}

func (d *Decoder) next(what string) (Token, error) {
	tok := d.lex.NextToken()
	switch tok.Type {
	case tokEOF:
		return tok, fmt.Errorf("%d:%d: %w: expected %s", tok.Line, tok.Column, ErrUnexpectedEOF, what)
	case tokIllegal:
		return tok, fmt.Errorf("%d:%d: %s", tok.Line, tok.Column, tok.Literal)
	}
	return tok, nil
}

func (d *Decoder) readInt(what string) (int, Token, error) {
	tok, err := d.next(what)
	if err != nil {
		return 0, tok, err
	}
	if tok.Type != tokInt {
		return 0, tok, fmt.Errorf("%d:%d: expected %s, got %s %q", tok.Line, tok.Column, what, tok.Type, tok.Literal)
	}
	v, err := strconv.Atoi(tok.Literal)
	if err != nil {
		return 0, tok, fmt.Errorf("%d:%d: %s: %w", tok.Line, tok.Column, what, err)
	}
	return v, tok, nil
}

func (d *Decoder) readCount(what string) (int, error) {
	n, tok, err := d.readInt(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%d:%d: %s: %w", tok.Line, tok.Column, what, ErrBadCount)
	}
	return n, nil
}

func (d *Decoder) readState(what string, known map[automaton.State]bool) (automaton.State, error) {
	v, tok, err := d.readInt(what)
	if err != nil {
		return 0, err
	}
	s := automaton.State(v)
	if known != nil && !known[s] {
		return 0, fmt.Errorf("%d:%d: %s: %w %d", tok.Line, tok.Column, what, ErrUnknownState, v)
	}
	return s, nil
}

func (d *Decoder) readSymbol(lambda bool) (automaton.Symbol, error) {
	tok, err := d.next("symbol")
	if err != nil {
		return 0, err
	}
	r, size := utf8.DecodeRuneInString(tok.Literal)
	if size != len(tok.Literal) || r == utf8.RuneError {
		return 0, fmt.Errorf("%d:%d: %w: %q", tok.Line, tok.Column, ErrBadSymbol, tok.Literal)
	}
	if lambda && r == d.Epsilon {
		return automaton.Epsilon, nil
	}
	return automaton.Symbol(r), nil
}

func (d *Decoder) decode(a builder, lambda bool) error {
	n, err := d.readCount("state count")
	if err != nil {
		return err
	}
	known := make(map[automaton.State]bool, n)
	for i := 0; i < n; i++ {
		s, err := d.readState("state", nil)
		if err != nil {
			return err
		}
		a.AddState(s)
		known[s] = true
	}

	if n, err = d.readCount("transition count"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		src, err := d.readState("source state", known)
		if err != nil {
			return err
		}
		dest, err := d.readState("destination state", known)
		if err != nil {
			return err
		}
		symbol, err := d.readSymbol(lambda)
		if err != nil {
			return err
		}
		a.AddTransition(src, dest, symbol)
	}

	initial, err := d.readState("initial state", known)
	if err != nil {
		return err
	}
	a.SetInitialState(initial)

	if n, err = d.readCount("final state count"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		s, err := d.readState("final state", known)
		if err != nil {
			return err
		}
		a.AddFinalState(s)
	}
	return nil
}

func (d *Decoder) DecodeDFA() (*automaton.DFA, error) {
	a := automaton.NewDFA()
	if err := d.decode(a, false); err != nil {
		return nil, err
	}
	return a, nil
}

func (d *Decoder) DecodeNFA() (*automaton.NFA, error) {
	a := automaton.NewNFA()
	if err := d.decode(a, false); err != nil {
		return nil, err
	}
	return a, nil
}

// DecodeLNFA reads an LNFA; the Epsilon character marks lambda transitions.
func (d *Decoder) DecodeLNFA() (*automaton.LNFA, error) {
	a := automaton.NewLNFA()
	if err := d.decode(a, true); err != nil {
		return nil, err
	}
	return a, nil
}

// Decode reads an automaton of the given kind.
func (d *Decoder) Decode(kind automaton.Kind) (automaton.Automaton, error) {
	var a builder
	switch kind {
	case automaton.KindDFA:
		a = automaton.NewDFA()
	case automaton.KindNFA:
		a = automaton.NewNFA()
	case automaton.KindLNFA:
		a = automaton.NewLNFA()
	default:
		return nil, fmt.Errorf("unsupported automaton kind %v", kind)
	}
	if err := d.decode(a, kind == automaton.KindLNFA); err != nil {
		return nil, err
	}
	return a, nil
}

// Words reads a word batch: a count followed by that many words.
func (d *Decoder) Words() ([]string, error) {
	n, err := d.readCount("word count")
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tok, err := d.next("word")
		if err != nil {
			return nil, err
		}
		words = append(words, tok.Literal)
	}
	return words, nil
}
