package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNFAVerifyWordBranches(t *testing.T) {
	n := NewNFA()
	for _, s := range []State{0, 1, 2} {
		n.AddState(s)
	}
	n.AddTransition(0, 1, 'a')
	n.AddTransition(0, 2, 'a')
	n.SetInitialState(0)
	n.AddFinalState(1)

	path, ok := n.VerifyWord("a")
	require.True(t, ok)
	assert.Equal(t, Path{0, 1}, path)

	// the final branch is the second destination
	n2 := NewNFA()
	for _, s := range []State{0, 1, 2} {
		n2.AddState(s)
	}
	n2.AddTransition(0, 2, 'a')
	n2.AddTransition(0, 1, 'a')
	n2.SetInitialState(0)
	n2.AddFinalState(1)
	path, ok = n2.VerifyWord("a")
	require.True(t, ok)
	assert.Equal(t, Path{0, 1}, path)
}

func TestNFAVerifyWord(t *testing.T) {
	n := endsInAB()
	tests := []struct {
		word   string
		accept bool
		path   Path
	}{
		{"ab", true, Path{0, 1, 2}},
		{"bab", true, Path{0, 0, 1, 2}},
		{"aab", true, Path{0, 0, 1, 2}},
		{"", false, nil},
		{"a", false, nil},
		{"aba", false, nil},
		{"abc", false, nil},
	}
	for _, tt := range tests {
		path, ok := n.VerifyWord(tt.word)
		assert.Equal(t, tt.accept, ok, "word %q", tt.word)
		assert.Equal(t, tt.path, path, "word %q", tt.word)
	}
}

func TestNFAEmptyWord(t *testing.T) {
	n := endsInAB()
	n.AddFinalState(0)
	path, ok := n.VerifyWord("")
	require.True(t, ok)
	assert.Equal(t, Path{0}, path)
}

func TestNFAWitnessFollowsTransitions(t *testing.T) {
	n := endsInAB()
	for _, w := range allWords("ab", 6) {
		path, ok := n.VerifyWord(w)
		if !ok {
			continue
		}
		symbols := []rune(w)
		require.Len(t, path, len(symbols)+1, "word %q", w)
		assert.Equal(t, n.InitialState(), path[0])
		assert.True(t, n.IsFinal(path[len(path)-1]))
		for i, r := range symbols {
			assert.Contains(t, n.trans[path[i]][Symbol(r)], path[i+1], "word %q step %d", w, i)
		}
	}
}

func TestNFAAppendsTransitions(t *testing.T) {
	n := endsInAB()
	n.AddTransition(0, 2, 'a')
	var dests []State
	for _, tr := range n.Transitions() {
		if tr.Src == 0 && tr.Symbol == 'a' {
			dests = tr.Dests
		}
	}
	assert.Equal(t, []State{0, 1, 2}, dests)
}

func TestToDFA(t *testing.T) {
	n := endsInAB()
	d := n.ToDFA()

	assert.Equal(t, []State{0, 3, 4}, d.States())
	assert.Equal(t, State(0), d.InitialState())
	assert.Equal(t, []State{4}, d.FinalStates())
	assert.Equal(t, []Transition{
		{0, 'a', 3}, {0, 'b', 0},
		{3, 'a', 3}, {3, 'b', 4},
		{4, 'a', 3}, {4, 'b', 0},
	}, d.Transitions())

	sameLanguage(t, n, d, "abc", 6)
}

func TestToDFADuplicateDestinations(t *testing.T) {
	n := NewNFA()
	n.AddState(0)
	n.AddState(1)
	n.AddTransition(0, 1, 'a')
	n.AddTransition(0, 1, 'a')
	n.SetInitialState(0)
	n.AddFinalState(1)

	d := n.ToDFA()
	assert.Equal(t, []State{0, 1}, d.States())
	assert.Equal(t, []Transition{{0, 'a', 1}}, d.Transitions())
}

func TestToDFAOnlyReachable(t *testing.T) {
	n := endsInAB()
	n.AddState(5)
	n.AddTransition(5, 2, 'z')

	d := n.ToDFA()
	assert.NotContains(t, d.States(), State(5))
	assert.Empty(t, d.UnreachableStates())
	assert.Equal(t, []Symbol{'a', 'b'}, d.Alphabet())
}

func TestToDFAPreservesLanguage(t *testing.T) {
	// third symbol from the end is a
	n := NewNFA()
	for s := State(0); s <= 3; s++ {
		n.AddState(s)
	}
	n.AddTransition(0, 0, 'a')
	n.AddTransition(0, 0, 'b')
	n.AddTransition(0, 1, 'a')
	n.AddTransition(1, 2, 'a')
	n.AddTransition(1, 2, 'b')
	n.AddTransition(2, 3, 'a')
	n.AddTransition(2, 3, 'b')
	n.SetInitialState(0)
	n.AddFinalState(3)

	d := n.ToDFA()
	sameLanguage(t, n, d, "ab", 7)
	m := d.Minimize()
	sameLanguage(t, n, m, "ab", 7)
	assert.Len(t, m.States(), 8)
}
