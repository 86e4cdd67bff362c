package lex

// LexicalRule is one entry in the ordered rule list a Lexer is built from:
// a regex pattern, the coarse TokenType category and the specific grammar
// terminal name (Term) tokens produced by this rule should carry, a
// numeric priority breaking longest-match ties (lower wins), and whether
// matches should be consumed silently (whitespace, comments) rather than
// becoming output tokens.
type LexicalRule struct {
	Pattern  string
	Type     TokenType
	Term     string
	Priority int
	Ignore   bool
}
