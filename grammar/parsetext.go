package grammar

import (
	"fmt"
	"strings"
)

// GrammarError reports a malformed production line in the external grammar
// text format: a short Error() and a richer message that keeps the
// offending line and its 1-indexed line number around for callers that
// want to print a pointer to the problem.
type GrammarError struct {
	Line    int
	Source  string
	Message string
}

func (e GrammarError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Source)
}

// FullMessage is Error with the offending source line repeated on its own
// line below it. It carries no character-column cursor, since a malformed
// grammar line is wrong as a whole rather than at one position within it.
func (e GrammarError) FullMessage() string {
	if e.Source == "" {
		return e.Error()
	}
	return fmt.Sprintf("%s\n%s", e.Error(), e.Source)
}

var keywords = map[string]bool{
	"if": true, "while": true, "int": true, "float": true,
	"bool": true, "print": true, "else": true, "id": true, "num": true,
}

var punctuation = map[byte]bool{
	'(': true, ')': true, '{': true, '}': true, '[': true, ']': true,
	';': true, ',': true, '+': true, '-': true, '*': true, '/': true,
	'<': true, '>': true, '=': true, '!': true, '&': true, '|': true,
}

// classify decides a symbol's tag the first time it is observed; the tag
// is thereafter fixed for the rest of the parse.
func classify(name string) SymbolTag {
	if name == Epsilon || name == "ε" || name == EndOfInput {
		return Terminal
	}
	if strings.HasSuffix(name, "'") {
		return NonTerminal
	}
	if len(name) == 1 {
		ch := name[0]
		if ch >= 'A' && ch <= 'Z' && !punctuation[ch] {
			return NonTerminal
		}
		return Terminal
	}

	if keywords[name] {
		return Terminal
	}
	if strings.ContainsAny(name, "=<>") {
		return Terminal
	}
	return NonTerminal
}

// ParseText parses the external grammar syntax: newline separated, blank
// lines skipped, each non-blank line of form
// "LHS -> RHS1 | RHS2 | ...", alternatives split on '|', symbols within an
// alternative split on whitespace. ε and the empty string both denote the
// ε-production; $ denotes end-of-input. The first LHS encountered becomes
// the grammar's start symbol.
func ParseText(src string) (*Grammar, error) {
	g := NewGrammar()

	lineNo := 0
	for _, line := range strings.Split(src, "\n") {
		lineNo++
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		sides := strings.SplitN(trimmed, "->", 2)
		if len(sides) != 2 {
			return nil, GrammarError{Line: lineNo, Source: line, Message: "expected 'LHS -> RHS1 | RHS2 | ...'"}
		}

		lhs := strings.TrimSpace(sides[0])
		if lhs == "" {
			return nil, GrammarError{Line: lineNo, Source: line, Message: "missing left-hand side"}
		}
		if classify(lhs) != NonTerminal {
			return nil, GrammarError{Line: lineNo, Source: line, Message: fmt.Sprintf("left-hand side %q does not classify as a non-terminal", lhs)}
		}
		g.nonTerminals[lhs] = true

		alts := strings.Split(sides[1], "|")
		for _, alt := range alts {
			alt = strings.TrimSpace(alt)

			var prod []string
			if alt == "" || alt == "ε" {
				prod = nil
			} else {
				for _, sym := range strings.Fields(alt) {
					if sym == "ε" {
						continue
					}
					switch classify(sym) {
					case Terminal:
						g.AddTerm(sym)
					case NonTerminal:
						g.nonTerminals[sym] = true
					}
					prod = append(prod, sym)
				}
			}

			g.AddRule(lhs, prod)
		}
	}

	if g.Start == "" {
		return nil, GrammarError{Message: "grammar text contained no rules"}
	}

	return g, nil
}

// MustParse is ParseText but panics on error, for tests and callers that
// embed a known-good grammar literal.
func MustParse(src string) *Grammar {
	g, err := ParseText(src)
	if err != nil {
		panic(err.Error())
	}
	return g
}
