package automaton

import "testing"

// allWords returns every word over alphabet up to maxLen, "" included.
func allWords(alphabet string, maxLen int) []string {
	words := []string{""}
	layer := []string{""}
	for i := 0; i < maxLen; i++ {
		var next []string
		for _, w := range layer {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		words = append(words, next...)
		layer = next
	}
	return words
}

func accepts(a Automaton, w string) bool {
	_, ok := a.VerifyWord(w)
	return ok
}

// sameLanguage compares acceptance of two automata over every word up to
// maxLen symbols.
func sameLanguage(t *testing.T, want, got Automaton, alphabet string, maxLen int) {
	t.Helper()
	for _, w := range allWords(alphabet, maxLen) {
		if accepts(want, w) != accepts(got, w) {
			t.Fatalf("language differs on %q: %v (%s) vs %v (%s)", w, accepts(want, w), want.Kind(), accepts(got, w), got.Kind())
		}
	}
}

// evenA accepts words over {a,b} with an even number of a's.
func evenA() *DFA {
	d := NewDFA()
	d.AddState(0)
	d.AddState(1)
	d.AddTransition(0, 1, 'a')
	d.AddTransition(1, 0, 'a')
	d.AddTransition(0, 0, 'b')
	d.AddTransition(1, 1, 'b')
	d.SetInitialState(0)
	d.AddFinalState(0)
	return d
}

// endsInA is a non-minimal DFA for words over {a,b} ending in a, with an
// unreachable state 9.
func endsInA() *DFA {
	d := NewDFA()
	for _, s := range []State{0, 1, 2, 3, 9} {
		d.AddState(s)
	}
	d.AddTransition(0, 1, 'a')
	d.AddTransition(0, 2, 'b')
	d.AddTransition(1, 3, 'a')
	d.AddTransition(1, 2, 'b')
	d.AddTransition(2, 1, 'a')
	d.AddTransition(2, 2, 'b')
	d.AddTransition(3, 3, 'a')
	d.AddTransition(3, 2, 'b')
	d.AddTransition(9, 0, 'a')
	d.SetInitialState(0)
	d.AddFinalState(1)
	d.AddFinalState(3)
	return d
}

// endsInAB is an NFA for (a|b)*ab.
func endsInAB() *NFA {
	n := NewNFA()
	for _, s := range []State{0, 1, 2} {
		n.AddState(s)
	}
	n.AddTransition(0, 0, 'a')
	n.AddTransition(0, 0, 'b')
	n.AddTransition(0, 1, 'a')
	n.AddTransition(1, 2, 'b')
	n.SetInitialState(0)
	n.AddFinalState(2)
	return n
}
