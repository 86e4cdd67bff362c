// Package render pretty-prints ACTION/GOTO tables and DFA transition dumps
// for the ductus CLI's debug output, built on rosed the same way the
// teacher's own LALR(1) table pretty-printer is.
package render

import (
	"fmt"

	"github.com/corvid/ductus/automaton"
	"github.com/corvid/ductus/grammar"
	"github.com/corvid/ductus/parse"
	"github.com/corvid/ductus/util"
	"github.com/dekarrin/rosed"
)

// Table renders t's ACTION/GOTO cells as a grid: one row per state (start
// state first), one column per terminal under an "A:" header and one per
// non-terminal under a "G:" header, matching the layout a
// lalr1Table.String() produces.
func Table(t *parse.Table, g grammar.Grammar) string {
	states := t.States()
	stateRefs := make(map[string]string, len(states))
	for i, s := range states {
		stateRefs[s] = fmt.Sprintf("%d", i)
	}

	terms := g.Terminals()
	nonTerms := g.NonTerminals()

	headers := []string{"S", "|"}
	for _, term := range terms {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}

	data := [][]string{headers}

	for _, s := range states {
		row := []string{stateRefs[s], "|"}

		for _, term := range terms {
			act := t.Action(s, term)
			cell := ""
			switch act.Type {
			case parse.ActionAccept:
				cell = "acc"
			case parse.ActionReduce:
				cell = fmt.Sprintf("r%s -> %s", act.Symbol, act.Production.String())
			case parse.ActionShift:
				cell = fmt.Sprintf("s%s", stateRefs[act.State])
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range nonTerms {
			cell := ""
			if toState, ok := t.Goto(s, nt); ok {
				cell = stateRefs[toState]
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// DFA renders the states and transitions of dfa as a grid: one row per
// state, the number of LR(1) items in its (closed) item set, and one column per input
// symbol showing the destination state.
func DFA(dfa automaton.DFA[grammar.LR1ItemSet]) string {
	alphabet := util.OrderedKeys(dfa.Alphabet())

	headers := []string{"S", "items", "|"}
	headers = append(headers, alphabet...)
	data := [][]string{headers}

	for _, name := range util.OrderedKeys(dfa.States()) {
		row := []string{name, fmt.Sprintf("%d", len(dfa.GetValue(name))), "|"}
		transitions := dfa.Transitions(name)
		for _, sym := range alphabet {
			row = append(row, transitions[sym])
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
