package parse

import (
	"github.com/corvid/ductus/automaton"
	"github.com/corvid/ductus/grammar"
	"github.com/corvid/ductus/util"
	"github.com/google/uuid"
)

// Table is the LALR(1) ACTION/GOTO table, built over the merged canonical
// LR(1) collection from automaton.NewLALR1ViablePrefixDFA: two
// state-keyed maps (ACTION and GOTO) plus a conflicts list.
type Table struct {
	action map[string]map[string]Action
	goTo   map[string]map[string]string
	start  string

	// Conflicts records one diagnostic per write of a different action to
	// an ACTION cell that already holds one (rewriting the same action is
	// not a conflict); the first-written action is kept (a
	// documented, deliberately-not-"shift wins" policy).
	Conflicts []string

	// BuildID tags this particular table-construction run with a fresh
	// UUID, so a REPL that rebuilds its table on every :reload can tell
	// one build's log lines and conflict report apart from the next's.
	BuildID string

	dfa automaton.DFA[grammar.LR1ItemSet]
}

// NewTable builds the LALR(1) table for g.
func NewTable(g grammar.Grammar) *Table {
	dfa, _ := automaton.NewLALR1ViablePrefixDFA(g)
	augmentedStart := g.GenerateUniqueName(g.Start)

	t := &Table{
		action:  map[string]map[string]Action{},
		goTo:    map[string]map[string]string{},
		start:   dfa.Start,
		dfa:     dfa,
		BuildID: uuid.NewString(),
	}

	setAction := func(state, sym string, act Action) {
		if t.action[state] == nil {
			t.action[state] = map[string]Action{}
		}
		if existing, ok := t.action[state][sym]; ok {
			if existing.Type == act.Type && existing.State == act.State &&
				existing.Symbol == act.Symbol && existing.Production.Equal(act.Production) {
				return
			}
			t.Conflicts = append(t.Conflicts, conflictMessage(state, sym, existing, act))
			return
		}
		t.action[state][sym] = act
	}

	for _, state := range util.OrderedKeys(dfa.States()) {
		transitions := dfa.Transitions(state)
		items := dfa.GetValue(state)

		for _, key := range util.OrderedKeys(items) {
			item := items[key]

			if !item.AtEnd() {
				sym := item.SymbolAfterDot()
				if g.IsTerminal(sym) {
					if target, ok := transitions[sym]; ok {
						setAction(state, sym, Action{Type: ActionShift, State: target})
					}
				}
				continue
			}

			if item.NonTerminal == augmentedStart && item.Lookahead == grammar.EndOfInput {
				setAction(state, grammar.EndOfInput, Action{Type: ActionAccept})
				continue
			}

			setAction(state, item.Lookahead, Action{
				Type:       ActionReduce,
				Symbol:     item.NonTerminal,
				Production: item.Production(),
			})
		}

		for sym, target := range transitions {
			if g.IsNonTerminal(sym) {
				t.goTo[state] = orInit(t.goTo[state])
				t.goTo[state][sym] = target
			}
		}
	}

	return t
}

func orInit(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

// Initial returns the table's start state.
func (t *Table) Initial() string {
	return t.start
}

// Action returns the ACTION table cell for (state, symbol); the zero
// Action (ActionError) if no cell was written.
func (t *Table) Action(state, symbol string) Action {
	return t.action[state][symbol]
}

// Goto returns the GOTO table cell for (state, nonterminal) and whether it
// was present.
func (t *Table) Goto(state, nonterminal string) (string, bool) {
	to, ok := t.goTo[state][nonterminal]
	return to, ok
}

// GetDFA returns the LALR(1) viable-prefix DFA the table was built from.
func (t *Table) GetDFA() automaton.DFA[grammar.LR1ItemSet] {
	return t.dfa
}

// States returns every state name in a stable order, with the start state
// moved to the front, matching the row order internal/render prints tables
// in.
func (t *Table) States() []string {
	names := util.OrderedKeys(t.dfa.States())
	for i := range names {
		if names[i] == t.start {
			names[0], names[i] = names[i], names[0]
			break
		}
	}
	return names
}
