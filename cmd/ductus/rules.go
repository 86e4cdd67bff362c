package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/corvid/ductus/lex"
)

// loadLexicalRules reads ductus's lexical-rule file format: one rule per
// line, blank lines skipped (as in grammar text) and lines starting with
// "#" skipped as comments (grammar text has no comments), fields
//
//	TERM CATEGORY PATTERN [PRIORITY [ignore]]
//
// TERM is the specific grammar terminal name tokens produced by this rule
// should satisfy (e.g. "if", "+", "id"); CATEGORY is one of the fixed
// lex.TokenType names (Identifier, Number, String, Keyword, Operator,
// Delimiter, Whitespace, Comment), matched case-insensitively. PRIORITY
// defaults to 0; the literal word "ignore" as a fifth field marks the
// rule as a discard rule, filtered out of the token stream. PATTERN must
// not contain whitespace, since the file format is whitespace-delimited.
func loadLexicalRules(path string) ([]lex.LexicalRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lex file: %w", err)
	}
	defer f.Close()

	var rules []lex.LexicalRule

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("lex file line %d: expected at least TERM, CATEGORY, and PATTERN, got %q", lineNum, line)
		}

		category, ok := lex.ParseTokenType(fields[1])
		if !ok {
			return nil, fmt.Errorf("lex file line %d: %q is not one of the fixed token categories", lineNum, fields[1])
		}

		rule := lex.LexicalRule{
			Term:    fields[0],
			Type:    category,
			Pattern: fields[2],
		}

		if len(fields) >= 4 {
			priority, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("lex file line %d: priority %q is not an integer", lineNum, fields[3])
			}
			rule.Priority = priority
		}

		if len(fields) >= 5 && fields[4] == "ignore" {
			rule.Ignore = true
		}

		rules = append(rules, rule)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lex file: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("lex file %s: no rules defined", path)
	}

	return rules, nil
}
