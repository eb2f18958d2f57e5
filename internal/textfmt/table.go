package textfmt

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"automata/internal/automaton"
)

// WriteTable renders the transitions of a as a From | Symbol | To table.
// Initial and final states are marked with -> and * in the From column.
func (p *Printer) WriteTable(w io.Writer, a automaton.Automaton) error {
	mark := func(s automaton.State) string {
		m := fmt.Sprint(s)
		if a.IsFinal(s) {
			m = "*" + m
		}
		if s == a.InitialState() {
			m = "->" + m
		}
		return m
	}

	var rows [][]string
	switch t := a.(type) {
	case *automaton.DFA:
		for _, tr := range t.Transitions() {
			rows = append(rows, []string{mark(tr.Src), p.symbol(tr.Symbol), fmt.Sprint(tr.Dest)})
		}
	case *automaton.NFA:
		for _, tr := range t.Transitions() {
			rows = append(rows, []string{mark(tr.Src), p.symbol(tr.Symbol), formatSet(tr.Dests)})
		}
	case *automaton.LNFA:
		for _, tr := range t.Transitions() {
			rows = append(rows, []string{mark(tr.Src), p.symbol(tr.Symbol), formatSet(tr.Dests)})
		}
	default:
		return fmt.Errorf("cannot tabulate %T", a)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"From", "Symbol", "To"})
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return err
		}
	}
	return table.Render()
}
