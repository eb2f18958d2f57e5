package textfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"automata/internal/automaton"
)

// Printer writes automata in the listing format:
//
//	DFA: s = 0, F = {1, 2}
//	0 --a--> 1
//
// NFA and LNFA destinations are printed as a set, {1, 2}.
type Printer struct {
	// Epsilon renders lambda transitions.
	Epsilon rune
}

func NewPrinter() *Printer {
	return &Printer{Epsilon: DefaultEpsilon}
}

func formatSet(states []automaton.State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprint(s)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (p *Printer) symbol(c automaton.Symbol) string {
	if c == automaton.Epsilon {
		return string(p.Epsilon)
	}
	return string(rune(c))
}

// Header renders the first line of the listing.
func (p *Printer) Header(a automaton.Automaton) string {
	return fmt.Sprintf("%s: s = %d, F = %s", a.Kind(), a.InitialState(), formatSet(a.FinalStates()))
}

// Print writes a followed by one line per transition.
func (p *Printer) Print(w io.Writer, a automaton.Automaton) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, p.Header(a))
	switch t := a.(type) {
	case *automaton.DFA:
		for _, tr := range t.Transitions() {
			fmt.Fprintf(bw, "%d --%s--> %d\n", tr.Src, p.symbol(tr.Symbol), tr.Dest)
		}
	case *automaton.NFA:
		p.printMulti(bw, t.Transitions())
	case *automaton.LNFA:
		p.printMulti(bw, t.Transitions())
	default:
		return fmt.Errorf("cannot print %T", a)
	}
	return bw.Flush()
}

func (p *Printer) printMulti(w io.Writer, trans []automaton.MultiTransition) {
	for _, tr := range trans {
		fmt.Fprintf(w, "%d --%s--> %s\n", tr.Src, p.symbol(tr.Symbol), formatSet(tr.Dests))
	}
}

// FormatResult renders a verification outcome: the word followed by the
// witness path, or NU when it is rejected.
func FormatResult(word string, path automaton.Path, ok bool) string {
	if !ok {
		return word + " NU"
	}
	return word + " DA:" + path.String()
}
