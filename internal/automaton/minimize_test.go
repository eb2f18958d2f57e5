package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	d := endsInA()
	m := d.Minimize()

	// {0,2} and {1,3} become fresh states above the unreachable 9
	assert.Equal(t, []State{10, 11}, m.States())
	assert.Equal(t, State(10), m.InitialState())
	assert.Equal(t, []State{11}, m.FinalStates())
	assert.Equal(t, []Transition{
		{10, 'a', 11}, {10, 'b', 10},
		{11, 'a', 11}, {11, 'b', 10},
	}, m.Transitions())

	sameLanguage(t, d, m, "abc", 6)
}

func TestMinimizeKeepsSingletonIDs(t *testing.T) {
	m := evenA().Minimize()
	assert.Equal(t, []State{0, 1}, m.States())
	assert.Equal(t, State(0), m.InitialState())
	assert.Equal(t, evenA().Transitions(), m.Transitions())
}

func TestMinimizeIdempotent(t *testing.T) {
	for name, d := range map[string]*DFA{
		"evenA":    evenA(),
		"endsInA":  endsInA(),
		"endsInAB": endsInAB().ToDFA(),
	} {
		once := d.Minimize()
		twice := once.Minimize()
		assert.Len(t, twice.States(), len(once.States()), name)
		sameLanguage(t, once, twice, "ab", 6)
	}
}

func TestMinimizeDropsUnreachable(t *testing.T) {
	m := endsInA().Minimize()
	assert.Empty(t, m.UnreachableStates())
	assert.NotContains(t, m.States(), State(9))
}

func TestMinimizePartialDFA(t *testing.T) {
	// a(b|c) with two separate accepting states and no sink
	d := NewDFA()
	for _, s := range []State{1, 2, 3, 4} {
		d.AddState(s)
	}
	d.AddTransition(1, 2, 'a')
	d.AddTransition(2, 3, 'b')
	d.AddTransition(2, 4, 'c')
	d.SetInitialState(1)
	d.AddFinalState(3)
	d.AddFinalState(4)

	m := d.Minimize()
	assert.Len(t, m.States(), 3)
	sameLanguage(t, d, m, "abcd", 4)
}

func TestMinimizeNoFinalStates(t *testing.T) {
	d := evenA()
	d2 := NewDFA()
	for _, s := range d.States() {
		d2.AddState(s)
	}
	for _, tr := range d.Transitions() {
		d2.AddTransition(tr.Src, tr.Dest, tr.Symbol)
	}
	d2.SetInitialState(0)

	m := d2.Minimize()
	assert.Len(t, m.States(), 1)
	assert.Empty(t, m.FinalStates())
	_, ok := m.VerifyWord("")
	assert.False(t, ok)
}

// Every member of a block must move to the same block, or nowhere, per symbol.
func TestPartitionBlocksAreConsistent(t *testing.T) {
	for name, d := range map[string]*DFA{
		"evenA":    evenA(),
		"endsInA":  endsInA(),
		"endsInAB": endsInAB().ToDFA(),
	} {
		blocks := d.partition()
		blockOf := map[State]int{}
		for i, b := range blocks {
			require.NotEmpty(t, b, name)
			for _, s := range b {
				blockOf[s] = i
			}
		}
		for _, b := range blocks {
			finals := 0
			for _, s := range b {
				if d.IsFinal(s) {
					finals++
				}
			}
			assert.True(t, finals == 0 || finals == len(b), "%s: block %v mixes final states", name, b)

			for _, c := range d.Alphabet() {
				dest := map[int]bool{}
				for _, s := range b {
					to, ok := d.Next(s, c)
					if !ok {
						dest[-1] = true
						continue
					}
					dest[blockOf[to]] = true
				}
				assert.Len(t, dest, 1, "%s: block %v splits on %q", name, b, c)
			}
		}
	}
}
