package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func exprRules() []LexicalRule {
	return []LexicalRule{
		{Pattern: "if", Type: Keyword, Term: "if", Priority: 0},
		{Pattern: "(a|b|c|d|e|f|g|h|i|j|k|l|m|n|o|p|q|r|s|t|u|v|w|x|y|z)+", Type: Identifier, Term: "id", Priority: 10},
		{Pattern: "(0|1|2|3|4|5|6|7|8|9)+", Type: Number, Term: "num", Priority: 10},
		{Pattern: `\+`, Type: Operator, Term: "+", Priority: 5},
		{Pattern: "( |\t|\n)+", Type: Whitespace, Term: "ws", Priority: 0, Ignore: true},
	}
}

func Test_Lex_tokenTypeSequence(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []TokenType
	}{
		{name: "empty", input: "", expect: []TokenType{EOF}},
		{name: "single number", input: "123", expect: []TokenType{Number, EOF}},
		{name: "identifier", input: "foo", expect: []TokenType{Identifier, EOF}},
		{name: "keyword wins over identifier rule by priority", input: "if", expect: []TokenType{Keyword, EOF}},
		{name: "sum expression", input: "12+34", expect: []TokenType{Number, Operator, Number, EOF}},
		{name: "whitespace ignored", input: "12 + 34", expect: []TokenType{Number, Operator, Number, EOF}},
		{name: "unknown character", input: "12$34", expect: []TokenType{Number, Unknown, Number, EOF}},
	}

	lx, err := NewLexer(exprRules())
	if !assert.NoError(t, err) {
		return
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			tokens := lx.Lex(tc.input)

			actual := make([]TokenType, len(tokens))
			for i, tok := range tokens {
				actual[i] = tok.Type
			}
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Lex_tokenTermMatchesRule(t *testing.T) {
	assert := assert.New(t)

	lx, err := NewLexer(exprRules())
	if !assert.NoError(err) {
		return
	}

	tokens := lx.Lex("12+34")
	if !assert.Len(tokens, 4) {
		return
	}
	assert.Equal("num", tokens[0].Term)
	assert.Equal("+", tokens[1].Term)
	assert.Equal("num", tokens[2].Term)
}

func Test_Lex_longestMatchWins(t *testing.T) {
	assert := assert.New(t)

	lx, err := NewLexer(exprRules())
	if !assert.NoError(err) {
		return
	}

	tokens := lx.Lex("ifwhile")
	if !assert.Len(tokens, 2) {
		return
	}
	assert.Equal(Identifier, tokens[0].Type)
	assert.Equal("id", tokens[0].Term)
	assert.Equal("ifwhile", tokens[0].Lexeme)
}

func Test_NewLexer_malformedPatternSkippedWithWarningNotFatal(t *testing.T) {
	assert := assert.New(t)

	lx, warnings, err := NewLexerOpts([]LexicalRule{
		{Pattern: "a", Type: Identifier, Term: "id", Priority: 0},
		{Pattern: "*", Type: Number, Term: "num", Priority: 0},
	}, true)
	if !assert.NoError(err) {
		return
	}
	if !assert.Len(warnings, 1) {
		return
	}
	assert.Contains(warnings[0], "rule 1")
	assert.Contains(warnings[0], "Number")

	tokens := lx.Lex("a")
	assert.Equal([]TokenType{Identifier, EOF}, []TokenType{tokens[0].Type, tokens[1].Type})
}

func Test_NewLexer_allRulesMalformedIsFatal(t *testing.T) {
	_, _, err := NewLexerOpts([]LexicalRule{
		{Pattern: "*", Type: Number, Term: "num", Priority: 0},
		{Pattern: "+", Type: Identifier, Term: "id", Priority: 0},
	}, true)
	assert.Error(t, err)
}
