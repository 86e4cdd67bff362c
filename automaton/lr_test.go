package automaton

import (
	"testing"

	"github.com/corvid/ductus/grammar"
	"github.com/stretchr/testify/assert"
)

// expr grammar from the purple dragon book, §4.6's worked example: the
// classic left-recursive expression grammar with 12 LALR(1) states merged
// down from its canonical LR(1) collection.
const exprGrammar = `
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`

func Test_NewLALR1ViablePrefixDFA_mergesCanonicalStatesByCore(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(exprGrammar)

	canonical, _ := NewLR1ViablePrefixDFA(*g)
	lalr, _ := NewLALR1ViablePrefixDFA(*g)

	// LALR merge can only shrink (or leave unchanged) the canonical
	// collection's state count, never grow it.
	assert.LessOrEqual(len(lalr.states), len(canonical.states))
	assert.NotEmpty(lalr.states)

	// exactly one LALR state accepts: the one containing the completed
	// augmented start item.
	accepting := 0
	for _, st := range lalr.states {
		if st.accepting {
			accepting++
		}
	}
	assert.Equal(1, accepting)
}

func Test_NewLR1ViablePrefixDFA_startStateIsClosureOfAugmentedStart(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(exprGrammar)
	dfa, _ := NewLR1ViablePrefixDFA(*g)

	startSet := dfa.states[dfa.Start].value
	foundAugmented := false
	for _, item := range startSet {
		if item.NonTerminal == g.GenerateUniqueName(g.Start) && len(item.Left) == 0 {
			foundAugmented = true
		}
	}
	assert.True(foundAugmented, "start state should contain the augmented start item with dot at the beginning")
}

func Test_Minimize_mergesEquivalentFinalStates(t *testing.T) {
	assert := assert.New(t)

	// two separate paths to an identical accepting annotation should merge
	// into one state; a distinct annotation must stay distinguishable.
	dfa := DFA[string]{states: map[string]DFAState[string]{}}
	dfa.AddState("start", false)
	dfa.AddState("viaA", true)
	dfa.AddState("viaB", true)
	dfa.AddState("dead", true)
	dfa.SetValue("viaA", "NUM")
	dfa.SetValue("viaB", "NUM")
	dfa.SetValue("dead", "ID")
	dfa.AddTransition("start", "a", "viaA")
	dfa.AddTransition("start", "b", "viaB")
	dfa.Start = "start"

	min := Minimize(dfa)

	assert.Len(min.states, 3, "viaA and viaB should merge; dead is unreachable distinguishable state kept as-is")
	assert.Equal("NUM", min.states[min.Next("start", "a")].value)
	assert.Equal("NUM", min.states[min.Next("start", "b")].value)
	assert.Equal(min.Next("start", "a"), min.Next("start", "b"))
}
