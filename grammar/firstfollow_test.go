package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Compute_firstSetsOfExpressionGrammar(t *testing.T) {
	assert := assert.New(t)

	g := MustParse(`
		E -> T E'
		E' -> + T E' |
		T -> id
	`)

	ff := Compute(*g)

	assert.Equal(map[string]bool{"id": true}, ff.First("E"))
	assert.Equal(map[string]bool{"+": true, Epsilon: true}, ff.First("E'"))
	assert.Equal(map[string]bool{"id": true}, ff.First("T"))
}

func Test_Compute_followSetsOfExpressionGrammar(t *testing.T) {
	assert := assert.New(t)

	g := MustParse(`
		E -> T E'
		E' -> + T E' |
		T -> id
	`)

	ff := Compute(*g)

	assert.Equal(map[string]bool{EndOfInput: true}, ff.Follow("E"))
	assert.Equal(map[string]bool{EndOfInput: true}, ff.Follow("E'"))
	assert.Equal(map[string]bool{"+": true, EndOfInput: true}, ff.Follow("T"))
}

func Test_FirstOfSequence_emptySequenceIsEpsilon(t *testing.T) {
	g := MustParse(`S -> a`)
	ff := Compute(*g)

	assert.Equal(t, map[string]bool{Epsilon: true}, ff.FirstOfSequence(nil))
}
