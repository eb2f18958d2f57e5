package textfmt

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokIllegal
	tokInt  // -?[0-9]+
	tokWord // any other run of non-space bytes
)

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokIllegal:
		return "illegal token"
	case tokInt:
		return "integer"
	case tokWord:
		return "word"
	}
	return "unknown"
}

// Token is a whitespace separated field of the input with its position.
type Token struct {
	Type    tokenType
	Literal string
	Line    int
	Column  int
}

// Lexer splits the count-driven text format into fields.
type Lexer struct {
	scanner *lexmachine.Scanner
	last    Token
}

func NewLexer(input []byte) (*Lexer, error) {
	lm := lexmachine.NewLexer()
	lm.Add([]byte(`[ \t\n\r]+`), skip)
	lm.Add([]byte(`-?[0-9]+`), tokAction(tokInt))
	lm.Add([]byte(`[^ \t\n\r]+`), tokAction(tokWord))

	if err := lm.Compile(); err != nil {
		return nil, err
	}
	scanner, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &Lexer{scanner: scanner, last: Token{Line: 1, Column: 1}}, nil
}

// NextToken returns the next field, or a tokEOF token at the end.
func (l *Lexer) NextToken() Token {
	tok, err, eof := l.scanner.Next()
	if eof {
		return Token{Type: tokEOF, Line: l.last.Line, Column: l.last.Column + len(l.last.Literal)}
	}
	if err != nil {
		return Token{Type: tokIllegal, Literal: err.Error(), Line: l.last.Line, Column: l.last.Column}
	}
	l.last = tok.(Token)
	return l.last
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(typ tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Type:    typ,
			Literal: string(m.Bytes),
			Line:    m.StartLine,
			Column:  m.StartColumn,
		}, nil
	}
}
