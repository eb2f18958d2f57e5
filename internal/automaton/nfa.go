package automaton

import (
	"fmt"
	"slices"

	u "github.com/araddon/gou"
)

// NFA is a nondeterministic automaton: zero or more destinations per
// (state, symbol).
type NFA struct {
	base
	trans map[State]map[Symbol][]State
}

// MultiTransition is an NFA edge set for one (state, symbol) pair.
type MultiTransition struct {
	Src    State
	Symbol Symbol
	Dests  []State
}

func NewNFA() *NFA {
	return &NFA{base: newBase(), trans: map[State]map[Symbol][]State{}}
}

func (n *NFA) Kind() Kind { return KindNFA }

func (n *NFA) AddState(s State) {
	n.trans[s] = map[Symbol][]State{}
}

// AddTransition appends dest to the destinations of (src, symbol).
func (n *NFA) AddTransition(src, dest State, symbol Symbol) {
	row, ok := n.trans[src]
	if !ok {
		panic(unknownState(src))
	}
	if _, ok := n.trans[dest]; !ok {
		panic(unknownState(dest))
	}
	row[symbol] = append(row[symbol], dest)
}

func (n *NFA) States() []State { return sortedKeys(n.trans) }

func (n *NFA) Transitions() []MultiTransition {
	return multiTransitions(n.trans)
}

func multiTransitions(trans map[State]map[Symbol][]State) []MultiTransition {
	var out []MultiTransition
	for _, src := range sortedKeys(trans) {
		row := trans[src]
		for _, c := range sortedSymbols(row) {
			out = append(out, MultiTransition{Src: src, Symbol: c, Dests: slices.Clone(row[c])})
		}
	}
	return out
}

// VerifyWord simulates the NFA breadth first, one layer per symbol, keeping
// every reached state in a single frontier so the witness can be rebuilt.
func (n *NFA) VerifyWord(word string) (Path, bool) {
	n.mustHaveInitial()
	symbols := []rune(word)

	var f frontier
	f.push(n.initial, noOrigin)
	for i, r := range symbols {
		last := i == len(symbols)-1
		end := len(f.entries)
		for ; f.cursor < end; f.cursor++ {
			cur := f.entries[f.cursor]
			for _, to := range n.trans[cur.state][Symbol(r)] {
				idx := f.push(to, f.cursor)
				if last && n.IsFinal(to) {
					return f.path(idx), true
				}
			}
		}
	}

	// states reached by the last symbol
	for i := f.cursor; i < len(f.entries); i++ {
		if n.IsFinal(f.entries[i].state) {
			return f.path(i), true
		}
	}
	return nil, false
}

func (n *NFA) maxState() State {
	m := n.initial
	for s := range n.trans {
		if s > m {
			m = s
		}
	}
	return m
}

// ToDFA builds an equivalent DFA by subset construction. Only composites
// reachable from the initial state are materialized. A singleton composite
// keeps its member's id; other composites get fresh ids above the largest
// NFA state.
func (n *NFA) ToDFA() *DFA {
	n.mustHaveInitial()
	d := NewDFA()
	next := n.maxState() + 1

	members := map[State][]State{}
	ids := map[string]State{}
	key := func(set []State) string { return fmt.Sprint(set) }

	var queue []State
	add := func(set []State) State {
		id := set[0]
		if len(set) > 1 {
			id = next
			next++
			u.Debugf("new state %d = %v", id, set)
		}
		members[id] = set
		ids[key(set)] = id
		d.AddState(id)
		for _, s := range set {
			if n.IsFinal(s) {
				d.AddFinalState(id)
				break
			}
		}
		queue = append(queue, id)
		return id
	}

	d.SetInitialState(add([]State{n.initial}))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		reached := map[Symbol]map[State]struct{}{}
		for _, s := range members[cur] {
			for c, dests := range n.trans[s] {
				set, ok := reached[c]
				if !ok {
					set = map[State]struct{}{}
					reached[c] = set
				}
				for _, to := range dests {
					set[to] = struct{}{}
				}
			}
		}

		for _, c := range sortedSymbols(reached) {
			set := sortedKeys(reached[c])
			if len(set) == 0 {
				continue
			}
			dest, ok := ids[key(set)]
			if !ok {
				dest = add(set)
			}
			d.AddTransition(cur, dest, c)
		}
	}
	return d
}
