package parse

import (
	"github.com/corvid/ductus/grammar"
	"github.com/corvid/ductus/lex"
	"github.com/corvid/ductus/util"
)

// Parser drives Table over a token stream with a shift-reduce loop, the
// parse-tree construction stripped out: this signals success or failure
// only, and richer diagnostics are an explicit non-goal.
type Parser struct {
	table *Table
}

// NewParser wraps an already-built Table.
func NewParser(table *Table) *Parser {
	return &Parser{table: table}
}

// Parse runs the shift-reduce driver over tokens, which must end with an
// EOF token (lex.Lex always appends one). A token's grammar terminal is
// its Term field, looked up by direct string comparison; Term is kept
// separate from the token's coarse TokenType category since every
// operator or every keyword sharing one category would otherwise be
// indistinguishable to the table.
func (p *Parser) Parse(tokens []lex.Token) bool {
	var states util.Stack[string]
	states.Push(p.table.Initial())

	pos := 0
	next := func() string {
		if pos >= len(tokens) {
			return grammar.EndOfInput
		}
		t := tokens[pos]
		if t.Type == lex.EOF {
			return grammar.EndOfInput
		}
		return t.Term
	}

	a := next()

	for {
		if states.Len() == 0 {
			return false
		}
		s := states.Peek()
		act := p.table.Action(s, a)

		switch act.Type {
		case ActionShift:
			states.Push(act.State)
			pos++
			a = next()

		case ActionReduce:
			beta := act.Production
			if !beta.IsEpsilon() {
				for i := 0; i < len(beta); i++ {
					if states.Len() == 0 {
						return false
					}
					states.Pop()
				}
			}
			if states.Len() == 0 {
				return false
			}
			t := states.Peek()
			toState, ok := p.table.Goto(t, act.Symbol)
			if !ok {
				return false
			}
			states.Push(toState)

		case ActionAccept:
			return true

		default:
			return false
		}
	}
}
