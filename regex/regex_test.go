package regex

import (
	"testing"

	"github.com/corvid/ductus/automaton"
	"github.com/stretchr/testify/assert"
)

func Test_Compile_acceptsExpectedStrings(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		accept  []string
		reject  []string
	}{
		{
			name:    "literal concatenation",
			pattern: "ab",
			accept:  []string{"ab"},
			reject:  []string{"a", "b", "ba", "abc"},
		},
		{
			name:    "alternation",
			pattern: "a|b",
			accept:  []string{"a", "b"},
			reject:  []string{"ab", "c"},
		},
		{
			name:    "star",
			pattern: "a*",
			accept:  []string{"", "a", "aaaa"},
			reject:  []string{"b", "aab"},
		},
		{
			name:    "plus",
			pattern: "a+",
			accept:  []string{"a", "aaa"},
			reject:  []string{"", "b"},
		},
		{
			name:    "question",
			pattern: "ab?c",
			accept:  []string{"ac", "abc"},
			reject:  []string{"abbc", "a"},
		},
		{
			name:    "grouped concatenation repeated",
			pattern: "(ab)*",
			accept:  []string{"", "ab", "abab"},
			reject:  []string{"a", "aba"},
		},
		{
			name:    "escaped operator char",
			pattern: `a\*b`,
			accept:  []string{"a*b"},
			reject:  []string{"ab", "a*"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			nfa, err := Compile[struct{}](tc.pattern)
			if !assert.NoError(err) {
				return
			}

			for _, s := range tc.accept {
				assert.Truef(accepts(nfa, s), "expected %q to be accepted by %q", s, tc.pattern)
			}
			for _, s := range tc.reject {
				assert.Falsef(accepts(nfa, s), "expected %q to be rejected by %q", s, tc.pattern)
			}
		})
	}
}

func Test_Compile_malformedPatterns(t *testing.T) {
	testCases := []string{"*", "|a", "a|", "+"}

	for _, pattern := range testCases {
		t.Run(pattern, func(t *testing.T) {
			_, err := Compile[struct{}](pattern)
			assert.Error(t, err)
		})
	}
}

func Test_Compile_unmatchedParensDiscardedSilently(t *testing.T) {
	assert := assert.New(t)

	nfa, err := Compile[struct{}]("(a")
	if !assert.NoError(err) {
		return
	}
	assert.True(accepts(nfa, "a"))
}

// accepts walks nfa's ε-closures and MOVE directly, rather than building a
// DFA, so the regex package's own tests don't depend on the automaton
// package's subset construction being correct.
func accepts[E any](nfa *automaton.NFA[E], s string) bool {
	current := nfa.EpsilonClosure(nfa.Start)

	for _, ch := range s {
		current = nfa.EpsilonClosureOfSet(nfa.MOVE(current, string(ch)))
		if current.Empty() {
			return false
		}
	}

	return current.Any(func(st string) bool { return nfa.IsAccepting(st) })
}
