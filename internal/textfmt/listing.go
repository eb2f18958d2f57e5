package textfmt

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"automata/internal/automaton"
)

// Listing is the parsed form of Printer output.
type Listing struct {
	Kind    string         `parser:"@('DFA' | 'NFA' | 'LNFA') ':'"`
	Initial int            `parser:"'s' '=' @Int ','"`
	Finals  []int          `parser:"'F' '=' '{' (@Int (',' @Int)*)? '}'"`
	Edges   []*ListingEdge `parser:"@@*"`
}

type ListingEdge struct {
	Src   int    `parser:"@Int"`
	Arrow string `parser:"@Arrow"`
	Dests []int  `parser:"( @Int | '{' (@Int (',' @Int)*)? '}' )"`
}

var listingLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Arrow", Pattern: `--\S-->`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[:=,{}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var listingParser = participle.MustBuild[Listing](
	participle.Lexer(listingLexer),
	participle.Elide("Whitespace"),
)

// ParseListing parses Printer output. name is used in error positions.
func ParseListing(name, data string) (*Listing, error) {
	return listingParser.ParseString(name, data)
}

// Symbol returns the character between the arrow dashes.
func (e *ListingEdge) Symbol() rune {
	r, _ := utf8.DecodeRuneInString(strings.TrimSuffix(strings.TrimPrefix(e.Arrow, "--"), "-->"))
	return r
}

func parseKind(s string) (automaton.Kind, error) {
	switch s {
	case "DFA":
		return automaton.KindDFA, nil
	case "NFA":
		return automaton.KindNFA, nil
	case "LNFA":
		return automaton.KindLNFA, nil
	}
	return 0, fmt.Errorf("unknown automaton kind %q", s)
}

// Build turns the listing into an automaton. States are every id that
// appears in the listing; epsilon is the lambda marker for LNFA listings.
func (l *Listing) Build(epsilon rune) (automaton.Automaton, error) {
	kind, err := parseKind(l.Kind)
	if err != nil {
		return nil, err
	}
	var a builder
	switch kind {
	case automaton.KindDFA:
		a = automaton.NewDFA()
	case automaton.KindNFA:
		a = automaton.NewNFA()
	case automaton.KindLNFA:
		a = automaton.NewLNFA()
	}

	seen := map[int]bool{l.Initial: true}
	for _, f := range l.Finals {
		seen[f] = true
	}
	for _, e := range l.Edges {
		seen[e.Src] = true
		for _, d := range e.Dests {
			seen[d] = true
		}
	}
	ids := make([]int, 0, len(seen))
	for s := range seen {
		ids = append(ids, s)
	}
	slices.Sort(ids)
	for _, s := range ids {
		a.AddState(automaton.State(s))
	}

	for _, e := range l.Edges {
		symbol := automaton.Symbol(e.Symbol())
		if kind == automaton.KindLNFA && e.Symbol() == epsilon {
			symbol = automaton.Epsilon
		}
		if kind == automaton.KindDFA && len(e.Dests) != 1 {
			return nil, fmt.Errorf("DFA edge %d %s needs exactly one destination, got %d", e.Src, e.Arrow, len(e.Dests))
		}
		for _, d := range e.Dests {
			a.AddTransition(automaton.State(e.Src), automaton.State(d), symbol)
		}
	}
	a.SetInitialState(automaton.State(l.Initial))
	for _, f := range l.Finals {
		a.AddFinalState(automaton.State(f))
	}
	return a, nil
}
