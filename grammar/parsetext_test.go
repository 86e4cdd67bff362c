package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseText_buildsRulesTerminalsAndStart(t *testing.T) {
	assert := assert.New(t)

	g, err := ParseText(`
		E -> E + T | T
		T -> id
	`)
	if !assert.NoError(err) {
		return
	}

	assert.Equal("E", g.Start)
	assert.ElementsMatch([]string{"E", "T"}, g.NonTerminals())
	assert.Contains(g.Terminals(), "+")
	assert.Contains(g.Terminals(), "id")

	rule := g.Rule("E")
	assert.Len(rule.Productions, 2)
}

func Test_ParseText_emptyAlternativeIsEpsilonProduction(t *testing.T) {
	assert := assert.New(t)

	g, err := ParseText(`
		S -> a S |
	`)
	if !assert.NoError(err) {
		return
	}

	rule := g.Rule("S")
	found := false
	for _, prod := range rule.Productions {
		if prod.IsEpsilon() {
			found = true
		}
	}
	assert.True(found, "blank alternative should parse as an epsilon production")
}

func Test_ParseText_rejectsLineMissingArrow(t *testing.T) {
	_, err := ParseText("S a b c")
	assert.Error(t, err)

	gerr, ok := err.(GrammarError)
	if assert.True(ok) {
		assert.Equal(1, gerr.Line)
		assert.Contains(gerr.FullMessage(), "S a b c")
	}
}

func Test_ParseText_rejectsLowercaseLeftHandSide(t *testing.T) {
	_, err := ParseText("s -> a")
	assert.Error(t, err)
}

func Test_ParseText_errorsOnEmptySource(t *testing.T) {
	_, err := ParseText("\n\n")
	assert.Error(t, err)
}

func Test_classify_singleUppercaseLetterIsNonTerminal(t *testing.T) {
	assert.Equal(t, NonTerminal, classify("E"))
	assert.Equal(t, Terminal, classify("id"))
	assert.Equal(t, Terminal, classify("if"))
	assert.Equal(t, NonTerminal, classify("E'"))
	assert.Equal(t, Terminal, classify(EndOfInput))
}
