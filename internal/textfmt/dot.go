package textfmt

import (
	"bufio"
	"fmt"
	"io"

	"automata/internal/automaton"
)

// ExportDOT writes a Graphviz representation of a to w. Final states are
// drawn as double circles.
func ExportDOT(w io.Writer, a automaton.Automaton) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	for _, s := range a.States() {
		shape := "circle"
		if a.IsFinal(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [label=\"%d\", shape=%s];\n", s, s, shape)
	}

	edge := func(src, dest automaton.State, c automaton.Symbol) {
		fmt.Fprintf(bw, "    q%d -> q%d [label=%q];\n", src, dest, c.String())
	}
	switch t := a.(type) {
	case *automaton.DFA:
		for _, tr := range t.Transitions() {
			edge(tr.Src, tr.Dest, tr.Symbol)
		}
	case *automaton.NFA:
		for _, tr := range t.Transitions() {
			for _, d := range tr.Dests {
				edge(tr.Src, d, tr.Symbol)
			}
		}
	case *automaton.LNFA:
		for _, tr := range t.Transitions() {
			for _, d := range tr.Dests {
				edge(tr.Src, d, tr.Symbol)
			}
		}
	default:
		fmt.Fprintln(bw, "    /* unknown automaton type */")
	}

	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", a.InitialState())
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
