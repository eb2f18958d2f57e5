package automaton

// DFA is a deterministic automaton: at most one destination per
// (state, symbol).
type DFA struct {
	base
	trans map[State]map[Symbol]State
}

// Transition is a single DFA edge.
type Transition struct {
	Src    State
	Symbol Symbol
	Dest   State
}

func NewDFA() *DFA {
	return &DFA{base: newBase(), trans: map[State]map[Symbol]State{}}
}

func (d *DFA) Kind() Kind { return KindDFA }

// AddState resets the outgoing edges of s.
func (d *DFA) AddState(s State) {
	d.trans[s] = map[Symbol]State{}
}

func (d *DFA) hasState(s State) bool {
	_, ok := d.trans[s]
	return ok
}

// AddTransition sets the edge src --symbol--> dest, replacing any previous
// destination for (src, symbol).
func (d *DFA) AddTransition(src, dest State, symbol Symbol) {
	if !d.hasState(src) {
		panic(unknownState(src))
	}
	if !d.hasState(dest) {
		panic(unknownState(dest))
	}
	d.trans[src][symbol] = dest
}

// Next returns the destination of (s, symbol), if any.
func (d *DFA) Next(s State, symbol Symbol) (State, bool) {
	dest, ok := d.trans[s][symbol]
	return dest, ok
}

func (d *DFA) States() []State { return sortedKeys(d.trans) }

// Transitions lists every edge ordered by source then symbol.
func (d *DFA) Transitions() []Transition {
	var out []Transition
	for _, src := range d.States() {
		row := d.trans[src]
		for _, c := range sortedSymbols(row) {
			out = append(out, Transition{Src: src, Symbol: c, Dest: row[c]})
		}
	}
	return out
}

func (d *DFA) VerifyWord(word string) (Path, bool) {
	d.mustHaveInitial()
	cur := d.initial
	path := Path{cur}
	for _, r := range word {
		next, ok := d.trans[cur][Symbol(r)]
		if !ok {
			return nil, false
		}
		cur = next
		path = append(path, cur)
	}
	if !d.IsFinal(cur) {
		return nil, false
	}
	return path, true
}

// reachable returns every state reachable from the initial state.
func (d *DFA) reachable() map[State]bool {
	d.mustHaveInitial()
	seen := map[State]bool{d.initial: true}
	q := []State{d.initial}
	for len(q) > 0 {
		s := q[0]
		q = q[1:]
		for _, to := range d.trans[s] {
			if !seen[to] {
				seen[to] = true
				q = append(q, to)
			}
		}
	}
	return seen
}

// UnreachableStates returns the added states not reachable from the initial
// state, in ascending order.
func (d *DFA) UnreachableStates() []State {
	seen := d.reachable()
	var out []State
	for _, s := range d.States() {
		if !seen[s] {
			out = append(out, s)
		}
	}
	return out
}

// Alphabet returns the distinct symbols used by any transition.
func (d *DFA) Alphabet() []Symbol {
	set := map[Symbol]struct{}{}
	for _, row := range d.trans {
		for c := range row {
			set[c] = struct{}{}
		}
	}
	return sortedSymbols(set)
}

// maxState is the largest state id in use, counting the initial state.
func (d *DFA) maxState() State {
	m := d.initial
	for s := range d.trans {
		if s > m {
			m = s
		}
	}
	return m
}
