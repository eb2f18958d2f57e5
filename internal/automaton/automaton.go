// Package automaton implements DFA, NFA and lambda-NFA engines: word
// verification with witness paths, subset construction and Hopcroft
// minimization.
package automaton

import (
	"fmt"
	"slices"
	"strings"
)

// State identifies an automaton state.
type State int

// Symbol is a single input character. Epsilon is never produced by a word.
type Symbol rune

// Epsilon marks a lambda transition (no input consumed).
const Epsilon Symbol = -1

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

// Path is the sequence of states visited while accepting a word.
type Path []State

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		fmt.Fprintf(&b, " -> %d", s)
	}
	return b.String()
}

// Kind tags the automaton variant.
type Kind int

const (
	KindDFA Kind = iota
	KindNFA
	KindLNFA
)

func (k Kind) String() string {
	switch k {
	case KindDFA:
		return "DFA"
	case KindNFA:
		return "NFA"
	case KindLNFA:
		return "LNFA"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Automaton is the capability shared by DFA, NFA and LNFA.
type Automaton interface {
	Kind() Kind
	SetInitialState(s State)
	AddFinalState(s State)
	AddState(s State)
	// VerifyWord reports whether word is accepted and, if so, the witness
	// path from the initial state to the accepting state.
	VerifyWord(word string) (Path, bool)

	InitialState() State
	FinalStates() []State
	States() []State
	IsFinal(s State) bool
}

// base holds the initial and final states common to every variant.
type base struct {
	initial    State
	hasInitial bool
	finals     map[State]struct{}
}

func newBase() base {
	return base{finals: map[State]struct{}{}}
}

func (b *base) SetInitialState(s State) {
	b.initial = s
	b.hasInitial = true
}

func (b *base) AddFinalState(s State) {
	b.finals[s] = struct{}{}
}

func (b *base) IsFinal(s State) bool {
	_, ok := b.finals[s]
	return ok
}

// InitialState panics if no initial state was set.
func (b *base) InitialState() State {
	b.mustHaveInitial()
	return b.initial
}

func (b *base) FinalStates() []State {
	out := make([]State, 0, len(b.finals))
	for s := range b.finals {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func (b *base) mustHaveInitial() {
	if !b.hasInitial {
		panic("automaton: initial state not set")
	}
}

func sortedKeys[V any](m map[State]V) []State {
	out := make([]State, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func sortedSymbols[V any](m map[Symbol]V) []Symbol {
	out := make([]Symbol, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

func unknownState(s State) string {
	return fmt.Sprintf("automaton: state %d was never added", s)
}
