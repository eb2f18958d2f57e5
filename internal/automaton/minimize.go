package automaton

import (
	"cmp"
	"slices"

	u "github.com/araddon/gou"
	"github.com/bits-and-blooms/bitset"
)

// hopcroft is the refinement state over the reachable states of a DFA.
// Blocks are bitsets over indexes into states.
type hopcroft struct {
	d      *DFA
	states []State
	index  map[State]uint
	// inv[c][j] lists the indexes with a c-transition into index j.
	inv    map[Symbol][][]uint
	blocks []*bitset.BitSet
	work   []int
	inWork []bool
}

func newHopcroft(d *DFA) *hopcroft {
	seen := d.reachable()
	h := &hopcroft{d: d, index: map[State]uint{}, inv: map[Symbol][][]uint{}}
	for s := range seen {
		h.states = append(h.states, s)
	}
	slices.Sort(h.states)
	for i, s := range h.states {
		h.index[s] = uint(i)
	}
	n := len(h.states)
	for i, s := range h.states {
		for c, to := range d.trans[s] {
			col, ok := h.inv[c]
			if !ok {
				col = make([][]uint, n)
				h.inv[c] = col
			}
			j := h.index[to]
			col[j] = append(col[j], uint(i))
		}
	}
	return h
}

func (h *hopcroft) push(b int) {
	h.work = append(h.work, b)
	h.inWork[b] = true
}

func (h *hopcroft) pop() int {
	b := h.work[0]
	h.work = h.work[1:]
	h.inWork[b] = false
	return b
}

// preimage returns the indexes with a c-transition landing in a.
func (h *hopcroft) preimage(a *bitset.BitSet, c Symbol) *bitset.BitSet {
	x := bitset.New(uint(len(h.states)))
	col := h.inv[c]
	for j, ok := a.NextSet(0); ok; j, ok = a.NextSet(j + 1) {
		for _, i := range col[j] {
			x.Set(i)
		}
	}
	return x
}

// refine runs the worklist loop until the partition is stable.
func (h *hopcroft) refine() {
	n := uint(len(h.states))
	fin, non := bitset.New(n), bitset.New(n)
	for i, s := range h.states {
		if h.d.IsFinal(s) {
			fin.Set(uint(i))
		} else {
			non.Set(uint(i))
		}
	}
	for _, b := range []*bitset.BitSet{fin, non} {
		if b.Any() {
			h.blocks = append(h.blocks, b)
			h.inWork = append(h.inWork, false)
			h.push(len(h.blocks) - 1)
		}
	}

	alphabet := h.d.Alphabet()
	for len(h.work) > 0 {
		a := h.blocks[h.pop()].Clone()
		for _, c := range alphabet {
			if _, ok := h.inv[c]; !ok {
				continue
			}
			x := h.preimage(a, c)
			if x.None() {
				continue
			}
			for p, m := 0, len(h.blocks); p < m; p++ {
				y := h.blocks[p]
				inter := y.Intersection(x)
				if inter.None() {
					continue
				}
				diff := y.Difference(x)
				if diff.None() {
					continue
				}
				h.blocks[p] = inter
				h.blocks = append(h.blocks, diff)
				h.inWork = append(h.inWork, false)
				q := len(h.blocks) - 1
				switch {
				case h.inWork[p]:
					h.push(q)
				case inter.Count() <= diff.Count():
					h.push(p)
				default:
					h.push(q)
				}
			}
		}
	}

	slices.SortFunc(h.blocks, func(a, b *bitset.BitSet) int {
		fa, _ := a.NextSet(0)
		fb, _ := b.NextSet(0)
		return cmp.Compare(fa, fb)
	})
}

// members returns the states of block b in ascending order.
func (h *hopcroft) members(b *bitset.BitSet) []State {
	out := make([]State, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, h.states[i])
	}
	return out
}

// partition returns the stable blocks of the reachable states.
func (d *DFA) partition() [][]State {
	h := newHopcroft(d)
	h.refine()
	out := make([][]State, len(h.blocks))
	for i, b := range h.blocks {
		out[i] = h.members(b)
	}
	return out
}

// Minimize returns the minimal DFA for the reachable part of d using
// Hopcroft's algorithm. A singleton block keeps its member's id; larger
// blocks get fresh ids above the largest state of d.
func (d *DFA) Minimize() *DFA {
	blocks := d.partition()

	m := NewDFA()
	next := d.maxState() + 1
	blockOf := map[State]State{}
	for _, b := range blocks {
		id := b[0]
		if len(b) > 1 {
			id = next
			next++
		}
		m.AddState(id)
		// a block never mixes final and non-final states
		if d.IsFinal(b[0]) {
			m.AddFinalState(id)
		}
		for _, s := range b {
			blockOf[s] = id
		}
	}
	m.SetInitialState(blockOf[d.initial])

	for _, b := range blocks {
		src := blockOf[b[0]]
		for _, s := range b {
			for c, to := range d.trans[s] {
				m.AddTransition(src, blockOf[to], c)
			}
		}
	}
	u.Debugf("minimize: %d states, %d reachable, %d blocks", len(d.trans), len(blockOf), len(blocks))
	return m
}
