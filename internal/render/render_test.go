package render

import (
	"strings"
	"testing"

	"github.com/corvid/ductus/grammar"
	"github.com/corvid/ductus/parse"
	"github.com/stretchr/testify/assert"
)

func Test_Table_rendersHeadersAndAcceptCell(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(`S -> a`)
	table := parse.NewTable(*g)

	out := Table(table, *g)

	assert.Contains(out, "A:a")
	assert.Contains(out, "A:$")
	assert.Contains(out, "acc")
}

func Test_DFA_rendersOneRowPerState(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(`
		S -> A A
		A -> a A | b
	`)
	table := parse.NewTable(*g)
	dfa := table.GetDFA()

	out := DFA(dfa)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + one line per state, at minimum more than just the header
	assert.Greater(len(lines), 1)
}
