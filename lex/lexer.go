package lex

import (
	"fmt"
	"sort"

	"github.com/corvid/ductus/automaton"
	"github.com/corvid/ductus/regex"
	"github.com/corvid/ductus/util"
)

// ruleMatch annotates an NFA accept state with which rule produced it —
// the DFA built over the combined NFA carries a set of these
// per state; winnerOf below picks the one rule that actually governs a
// longest-match tie.
type ruleMatch struct {
	Type      TokenType
	Term      string
	Priority  int
	RuleIndex int
}

// Lexer is a compiled set of LexicalRules: one DFA (minimized unless
// NewLexerOpts was told not to) whose accepting states carry the winning
// rule for that state, driving
// the longest-match scan.
type Lexer struct {
	dfa   automaton.DFA[ruleMatch]
	rules []LexicalRule
}

// NewLexer compiles every rule's pattern to an NFA fragment (regex.Compile),
// unions them into one combined NFA, subset-constructs a DFA, resolves
// each state's winning rule by priority, and minimizes. A malformed
// pattern is skipped rather than aborting the whole build; use
// NewLexerOpts to see the resulting warnings.
func NewLexer(rules []LexicalRule) (*Lexer, error) {
	lx, _, err := NewLexerOpts(rules, true)
	return lx, err
}

// NewLexerOpts is NewLexer with minimization made optional — not every
// caller has a DFA large enough to benefit from the extra work — and with
// the per-rule skip warnings returned to the caller instead of only being
// logged internally.
//
// A rule whose pattern fails to compile is skipped — not fatal — and a
// warning naming its index and token type is appended to the returned
// slice; construction only fails if every rule was malformed, leaving
// nothing to build a lexer from.
func NewLexerOpts(rules []LexicalRule, minimize bool) (*Lexer, []string, error) {
	if len(rules) == 0 {
		return nil, nil, fmt.Errorf("lex: no rules given")
	}

	var warnings []string
	var parts []automaton.NFA[ruleMatch]
	var kept []LexicalRule

	for i, rule := range rules {
		frag, err := regex.Compile[ruleMatch](rule.Pattern)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("rule %d (%s): %v: skipped", i, rule.Type, err))
			continue
		}

		ruleIdx := len(kept)
		prefixed := frag.WithPrefix(fmt.Sprintf("r%d_", ruleIdx))
		for acceptName := range prefixed.AcceptingStates() {
			prefixed.SetValue(acceptName, ruleMatch{Type: rule.Type, Term: rule.Term, Priority: rule.Priority, RuleIndex: ruleIdx})
		}
		parts = append(parts, prefixed)
		kept = append(kept, rule)
	}

	if len(kept) == 0 {
		return nil, warnings, fmt.Errorf("lex: no usable rules (all %d were malformed)", len(rules))
	}

	combined := automaton.Merge(parts...)
	combined.AddState("start", false)
	combined.Start = "start"
	for _, p := range parts {
		combined.AddTransition("start", "", p.Start)
	}

	subset := combined.ToDFA()
	winners := reduceWinners(subset)

	result := winners
	if minimize {
		result = automaton.Minimize(winners)
	}

	return &Lexer{dfa: result, rules: kept}, warnings, nil
}

// reduceWinners collapses each DFA state's set of constituent rule
// annotations down to the single rule that would win a match ending in
// that state: numerically lowest priority, ties broken by earliest rule
// index.
func reduceWinners(dfa automaton.DFA[util.SVSet[ruleMatch]]) automaton.DFA[ruleMatch] {
	out := automaton.NewDFA[ruleMatch]()

	names := dfa.States().Elements()
	sort.Strings(names)

	for _, name := range names {
		out.AddState(name, dfa.IsAccepting(name))
		out.SetValue(name, winnerOf(dfa.GetValue(name)))
	}

	alphabet := dfa.Alphabet().Elements()
	sort.Strings(alphabet)

	for _, name := range names {
		for _, sym := range alphabet {
			to := dfa.Next(name, sym)
			if to == "" {
				continue
			}
			out.AddTransition(name, sym, to)
		}
	}

	out.Start = dfa.Start
	return *out
}

func winnerOf(matches util.SVSet[ruleMatch]) ruleMatch {
	var winner ruleMatch
	first := true
	for _, rm := range matches {
		if first || rm.Priority < winner.Priority || (rm.Priority == winner.Priority && rm.RuleIndex < winner.RuleIndex) {
			winner = rm
			first = false
		}
	}
	return winner
}

// Lex scans input to completion with the longest-match loop,
// appending a synthetic EOF token at the end. Unmatched characters become
// one-character Unknown tokens rather than aborting the scan — error
// signalling for malformed input is left entirely to the parser stage
// rather than aborting the scan.
func (lx *Lexer) Lex(input string) []Token {
	runes := []rune(input)
	var tokens []Token

	line, linePos := 1, 1
	advance := func(ch rune) {
		if ch == '\n' {
			line++
			linePos = 1
		} else {
			linePos++
		}
	}
	fullLine := func(from int) string {
		end := from
		for end < len(runes) && runes[end] != '\n' {
			end++
		}
		return string(runes[from:end])
	}

	p := 0
	for p < len(runes) {
		startLine, startLinePos := line, linePos
		curFullLine := fullLine(p)

		state := lx.dfa.Start
		bestLen := -1
		var best ruleMatch

		if lx.dfa.IsAccepting(state) {
			bestLen = 0
			best = lx.dfa.GetValue(state)
		}

		length := 0
		for p+length < len(runes) {
			next := lx.dfa.Next(state, string(runes[p+length]))
			if next == "" {
				break
			}
			state = next
			length++
			if lx.dfa.IsAccepting(state) {
				rm := lx.dfa.GetValue(state)
				if length > bestLen || (length == bestLen && rm.Priority < best.Priority) {
					bestLen = length
					best = rm
				}
			}
		}

		if bestLen < 0 {
			tokens = append(tokens, Token{
				Type: Unknown, Lexeme: string(runes[p]),
				Pos: p, Line: startLine, LinePos: startLinePos, FullLine: curFullLine,
			})
			advance(runes[p])
			p++
			continue
		}

		lexeme := string(runes[p : p+bestLen])
		if !lx.rules[best.RuleIndex].Ignore {
			tokens = append(tokens, Token{
				Type: best.Type, Term: best.Term, Lexeme: lexeme,
				Pos: p, Line: startLine, LinePos: startLinePos, FullLine: curFullLine,
			})
		}
		for _, ch := range lexeme {
			advance(ch)
		}
		p += bestLen
	}

	tokens = append(tokens, Token{Type: EOF, Pos: len(runes), Line: line, LinePos: linePos})
	return tokens
}
