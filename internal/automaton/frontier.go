package automaton

import "slices"

// noOrigin marks a root entry of the frontier.
const noOrigin = -1

// queued is one frontier entry. origin indexes the entry that produced it.
type queued struct {
	state  State
	origin int
}

// frontier is an append-only arena of queued states. Entries before cursor
// have been expanded.
type frontier struct {
	entries []queued
	cursor  int
}

func (f *frontier) push(s State, origin int) int {
	f.entries = append(f.entries, queued{state: s, origin: origin})
	return len(f.entries) - 1
}

// chain walks origin links back from entry at idx until a root is reached.
// The root is included last, so the result runs destination to source.
func (f *frontier) chain(idx int) []State {
	var out []State
	cur := f.entries[idx]
	for cur.origin != noOrigin {
		out = append(out, cur.state)
		cur = f.entries[cur.origin]
	}
	return append(out, cur.state)
}

// path is chain reversed into source to destination order.
func (f *frontier) path(idx int) Path {
	c := f.chain(idx)
	slices.Reverse(c)
	return Path(c)
}
