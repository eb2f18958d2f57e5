package automaton

import (
	"maps"
	"slices"
	"sync"
)

// LNFA is an NFA with epsilon transitions.
//
// Lambda closures are computed on the first verification and cached. Any
// AddState or AddTransition drops the cache, so the next verification sees
// the new structure. Verifiers already handed out keep their snapshot.
type LNFA struct {
	base
	trans map[State]map[Symbol][]State

	mu   sync.Mutex
	snap *lnfaSnapshot
}

// lnfaSnapshot is an immutable copy of an LNFA's tables and closures.
type lnfaSnapshot struct {
	initial State
	finals  map[State]struct{}
	trans   map[State]map[Symbol][]State
	// closures[s] starts with s, then epsilon-reachable states breadth first.
	closures map[State][]State
}

func NewLNFA() *LNFA {
	return &LNFA{base: newBase(), trans: map[State]map[Symbol][]State{}}
}

func (l *LNFA) Kind() Kind { return KindLNFA }

func (l *LNFA) AddState(s State) {
	l.trans[s] = map[Symbol][]State{}
	l.invalidate()
}

// AddTransition appends dest to (src, symbol). symbol may be Epsilon.
func (l *LNFA) AddTransition(src, dest State, symbol Symbol) {
	row, ok := l.trans[src]
	if !ok {
		panic(unknownState(src))
	}
	if _, ok := l.trans[dest]; !ok {
		panic(unknownState(dest))
	}
	row[symbol] = append(row[symbol], dest)
	l.invalidate()
}

func (l *LNFA) SetInitialState(s State) {
	l.base.SetInitialState(s)
	l.invalidate()
}

func (l *LNFA) AddFinalState(s State) {
	l.base.AddFinalState(s)
	l.invalidate()
}

func (l *LNFA) invalidate() {
	l.mu.Lock()
	l.snap = nil
	l.mu.Unlock()
}

func (l *LNFA) States() []State { return sortedKeys(l.trans) }

func (l *LNFA) Transitions() []MultiTransition {
	return multiTransitions(l.trans)
}

// buildLambdaClosures expands epsilon edges breadth first from every state.
func buildLambdaClosures(trans map[State]map[Symbol][]State) map[State][]State {
	closures := make(map[State][]State, len(trans))
	for s := range trans {
		seen := map[State]bool{s: true}
		cl := []State{s}
		for i := 0; i < len(cl); i++ {
			for _, to := range trans[cl[i]][Epsilon] {
				if !seen[to] {
					seen[to] = true
					cl = append(cl, to)
				}
			}
		}
		closures[s] = cl
	}
	return closures
}

// LambdaClosure returns the epsilon closure of s, s first.
func (l *LNFA) LambdaClosure(s State) []State {
	return slices.Clone(l.snapshot().closure(s))
}

func (l *LNFA) snapshot() *lnfaSnapshot {
	l.mustHaveInitial()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.snap != nil {
		return l.snap
	}
	trans := make(map[State]map[Symbol][]State, len(l.trans))
	for s, row := range l.trans {
		cp := make(map[Symbol][]State, len(row))
		for c, dests := range row {
			cp[c] = slices.Clone(dests)
		}
		trans[s] = cp
	}
	l.snap = &lnfaSnapshot{
		initial:  l.initial,
		finals:   maps.Clone(l.finals),
		trans:    trans,
		closures: buildLambdaClosures(trans),
	}
	return l.snap
}

func (s *lnfaSnapshot) closure(st State) []State {
	cl, ok := s.closures[st]
	if !ok {
		panic(unknownState(st))
	}
	return cl
}

func (s *lnfaSnapshot) isFinal(st State) bool {
	_, ok := s.finals[st]
	return ok
}

// Verifier replays closure expansion one symbol at a time over a fixed
// snapshot of an LNFA.
type Verifier struct {
	snap *lnfaSnapshot
	f    frontier
	hit  int
}

// NewVerifier returns a verifier seeded with the lambda closure of the
// initial state.
func (l *LNFA) NewVerifier() *Verifier {
	v := &Verifier{snap: l.snapshot(), hit: noOrigin}
	for i, s := range v.snap.closure(v.snap.initial) {
		origin := 0
		if i == 0 {
			origin = noOrigin
		}
		v.f.push(s, origin)
	}
	return v
}

// Advance consumes symbol from every unexpanded frontier entry and reports
// whether a final state was reached. With stopAtFinal it returns as soon as
// one is appended.
func (v *Verifier) Advance(symbol Symbol, stopAtFinal bool) bool {
	reached := false
	end := len(v.f.entries)
	for ; v.f.cursor < end; v.f.cursor++ {
		cur := v.f.entries[v.f.cursor]
		for _, to := range v.snap.trans[cur.state][symbol] {
			first := noOrigin
			for _, s := range v.snap.closure(to) {
				origin := first
				if first == noOrigin {
					origin = v.f.cursor
				}
				idx := v.f.push(s, origin)
				if first == noOrigin {
					first = idx
				}
				if v.snap.isFinal(s) {
					if !reached {
						v.hit = idx
					}
					reached = true
					if stopAtFinal {
						return true
					}
				}
			}
		}
	}
	return reached
}

// Accepting reports whether any unexpanded entry is final and records it as
// the witness.
func (v *Verifier) Accepting() bool {
	for i := v.f.cursor; i < len(v.f.entries); i++ {
		if v.snap.isFinal(v.f.entries[i].state) {
			v.hit = i
			return true
		}
	}
	return false
}

// Chain returns the witness for the last reached final state, source first.
func (v *Verifier) Chain() Path {
	if v.hit == noOrigin {
		return nil
	}
	return v.f.path(v.hit)
}

// VerifyWord accepts the empty word iff the initial closure holds a final
// state.
func (l *LNFA) VerifyWord(word string) (Path, bool) {
	v := l.NewVerifier()
	symbols := []rune(word)
	if len(symbols) == 0 {
		if v.Accepting() {
			return v.Chain(), true
		}
		return nil, false
	}
	for _, r := range symbols[:len(symbols)-1] {
		v.Advance(Symbol(r), false)
	}
	if v.Advance(Symbol(symbols[len(symbols)-1]), true) {
		return v.Chain(), true
	}
	return nil, false
}

// RemoveEpsilon returns an NFA accepting the same language: q --a--> r for
// every p in closure(q), p --a--> t and r in closure(t); q is final when its
// closure holds a final state.
func (l *LNFA) RemoveEpsilon() *NFA {
	snap := l.snapshot()
	n := NewNFA()
	states := sortedKeys(snap.trans)
	for _, s := range states {
		n.AddState(s)
	}
	n.SetInitialState(snap.initial)
	for _, q := range states {
		added := map[Symbol]map[State]bool{}
		for _, p := range snap.closure(q) {
			if snap.isFinal(p) {
				n.AddFinalState(q)
			}
			row := snap.trans[p]
			for _, c := range sortedSymbols(row) {
				if c == Epsilon {
					continue
				}
				if added[c] == nil {
					added[c] = map[State]bool{}
				}
				for _, t := range row[c] {
					for _, r := range snap.closure(t) {
						if !added[c][r] {
							added[c][r] = true
							n.AddTransition(q, r, c)
						}
					}
				}
			}
		}
	}
	return n
}
