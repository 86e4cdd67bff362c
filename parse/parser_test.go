package parse

import (
	"testing"

	"github.com/corvid/ductus/grammar"
	"github.com/corvid/ductus/lex"
	"github.com/stretchr/testify/assert"
)

// mockTokens builds a token stream from bare terminal names, appending the
// trailing EOF every input must end with.
func mockTokens(names ...string) []lex.Token {
	tokens := make([]lex.Token, 0, len(names)+1)
	for _, n := range names {
		tokens = append(tokens, lex.Token{Term: n})
	}
	tokens = append(tokens, lex.Token{Type: lex.EOF})
	return tokens
}

func Test_Parser_Parse_acceptsAndRejects(t *testing.T) {
	// scenario 1: S -> A A; A -> a A | b
	g := grammar.MustParse(`
		S -> A A
		A -> a A | b
	`)

	table := NewTable(*g)
	assert.Empty(t, table.Conflicts)

	parser := NewParser(table)

	testCases := []struct {
		name   string
		input  []string
		accept bool
	}{
		{name: "abab", input: []string{"a", "b", "a", "b"}, accept: true},
		{name: "aaabab", input: []string{"a", "a", "a", "b", "a", "b"}, accept: true},
		{name: "bb", input: []string{"b", "b"}, accept: true},
		{name: "aab", input: []string{"a", "a", "b"}, accept: false},
		{name: "ababab", input: []string{"a", "b", "a", "b", "a", "b"}, accept: false},
		{name: "empty", input: []string{}, accept: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.accept, parser.Parse(mockTokens(tc.input...)))
		})
	}
}

func Test_Parser_Parse_simpleGrammarHasNoConflicts(t *testing.T) {
	// scenario 2: S -> a
	g := grammar.MustParse(`S -> a`)

	table := NewTable(*g)
	assert.Empty(t, table.Conflicts)

	parser := NewParser(table)

	assert.True(t, parser.Parse(mockTokens("a")))
	assert.False(t, parser.Parse(mockTokens("a", "a")))
	assert.False(t, parser.Parse(mockTokens()))
}

func Test_NewTable_recordsShiftReduceConflict(t *testing.T) {
	// not ambiguous, but not LALR(1): in the start state, on lookahead a,
	// the table could both shift a (for A -> a) and reduce A -> ε.
	g := grammar.MustParse(`
		S -> A a
		A -> a |
	`)

	table := NewTable(*g)
	assert.NotEmpty(t, table.Conflicts)
}
