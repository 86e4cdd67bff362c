// Package automaton implements the generic NFA/DFA arena types shared by
// ductus's two engines: the lexer (regex -> NFA -> DFA -> tokenizer) and
// the parser (LR(1) canonical collection -> LALR(1) merge). Both engines
// are automata over symbol alphabets, so they share one set of
// state-graph primitives: ε-closure, MOVE, subset construction, and a
// union-find-free transitions-rewrite used for the LALR(1) kernel merge.
//
// NFA/DFA are parameterized over an annotation type E so the same subset
// construction serves both an LR-item-set DFA and a token-annotated lexer
// DFA.
package automaton

import (
	"fmt"
	"strings"

	"github.com/corvid/ductus/util"
)

// FATransition is a single (input, destination) pair. An empty input
// string denotes an ε-transition.
type FATransition struct {
	input string
	next  string
}

func (t FATransition) String() string {
	in := t.input
	if in == "" {
		in = "ε"
	}
	return fmt.Sprintf("=(%s)=>%s", in, t.next)
}

// NFAState is a node in an NFA arena: a set of outgoing transitions per
// input symbol (several per symbol, since this is non-deterministic),
// an acceptance flag, and an annotation value of type E (a token rule, an
// LR item — whatever the caller is tracking per state).
type NFAState[E any] struct {
	name        string
	transitions map[string][]FATransition
	accepting   bool
	value       E
}

func (s NFAState[E]) Copy() NFAState[E] {
	cp := NFAState[E]{name: s.name, accepting: s.accepting, value: s.value, transitions: map[string][]FATransition{}}
	for k, v := range s.transitions {
		cp.transitions[k] = append([]FATransition{}, v...)
	}
	return cp
}

// NFA is an arena of NFAStates referenced by name, owning every state
// reachable from Start. Referencing states by name (rather than pointer)
// keeps Thompson-construction cycles (Kleene star, plus) from creating
// reference cycles that would need special teardown handling.
type NFA[E any] struct {
	states map[string]NFAState[E]
	Start  string
}

// NewNFA returns an empty NFA ready for AddState/AddTransition calls.
func NewNFA[E any]() *NFA[E] {
	return &NFA[E]{states: map[string]NFAState[E]{}}
}

// AddState adds a new named state. A second call with the same name is a
// no-op.
func (nfa *NFA[E]) AddState(name string, accepting bool) {
	if _, ok := nfa.states[name]; ok {
		return
	}
	nfa.states[name] = NFAState[E]{name: name, transitions: map[string][]FATransition{}, accepting: accepting}
}

// SetValue attaches an annotation value to an existing state.
func (nfa *NFA[E]) SetValue(name string, v E) {
	st := nfa.states[name]
	st.value = v
	nfa.states[name] = st
}

// SetAccepting changes the acceptance flag of an existing state. Thompson
// construction builds every fragment's end state as non-accepting and
// only the caller knows, once a full pattern's fragment is complete,
// which end state should actually accept.
func (nfa *NFA[E]) SetAccepting(name string, accepting bool) {
	st := nfa.states[name]
	st.accepting = accepting
	nfa.states[name] = st
}

// GetValue returns the annotation value attached to a state.
func (nfa NFA[E]) GetValue(name string) E {
	return nfa.states[name].value
}

// AddTransition adds a transition on input (empty string for ε) from one
// existing state to another.
func (nfa *NFA[E]) AddTransition(from, input, to string) {
	if _, ok := nfa.states[from]; !ok {
		panic(fmt.Sprintf("add transition from non-existent state %q", from))
	}
	if _, ok := nfa.states[to]; !ok {
		panic(fmt.Sprintf("add transition to non-existent state %q", to))
	}
	st := nfa.states[from]
	st.transitions[input] = append(st.transitions[input], FATransition{input: input, next: to})
	nfa.states[from] = st
}

// States returns the set of all state names in the NFA.
func (nfa NFA[E]) States() util.StringSet {
	s := util.NewStringSet()
	for k := range nfa.states {
		s.Add(k)
	}
	return s
}

// AcceptingStates returns the set of accepting state names.
func (nfa NFA[E]) AcceptingStates() util.StringSet {
	s := util.NewStringSet()
	for k, st := range nfa.states {
		if st.accepting {
			s.Add(k)
		}
	}
	return s
}

// IsAccepting reports whether the named state is marked accepting.
func (nfa NFA[E]) IsAccepting(name string) bool {
	return nfa.states[name].accepting
}

// InputSymbols returns the set of every non-ε symbol used on some
// transition in the NFA — the alphabet subset construction iterates over.
func (nfa NFA[E]) InputSymbols() util.StringSet {
	s := util.NewStringSet()
	for _, st := range nfa.states {
		for sym := range st.transitions {
			if sym != "" {
				s.Add(sym)
			}
		}
	}
	return s
}

// MOVE returns the set of states reachable from some state in X via one
// transition on input a. Purple dragon book algorithm 3.20, MOVE(T, a).
func (nfa NFA[E]) MOVE(X util.StringSet, a string) util.StringSet {
	moves := util.NewStringSet()
	for s := range X {
		for _, t := range nfa.states[s].transitions[a] {
			moves.Add(t.next)
		}
	}
	return moves
}

// EpsilonClosure returns the set of states reachable from s using zero or
// more ε-transitions.
func (nfa NFA[E]) EpsilonClosure(s string) util.StringSet {
	closure := util.NewStringSet()
	var stack util.Stack[string]
	stack.Push(s)

	for stack.Len() > 0 {
		cur := stack.Pop()
		if closure.Has(cur) {
			continue
		}
		closure.Add(cur)

		for _, t := range nfa.states[cur].transitions[""] {
			stack.Push(t.next)
		}
	}
	return closure
}

// EpsilonClosureOfSet is EpsilonClosure applied to every state in X and
// unioned together.
func (nfa NFA[E]) EpsilonClosureOfSet(X util.StringSet) util.StringSet {
	all := util.NewStringSet()
	for s := range X {
		all.AddAll(nfa.EpsilonClosure(s))
	}
	return all
}

// Copy returns a deep, independent copy of the NFA.
func (nfa NFA[E]) Copy() NFA[E] {
	cp := NFA[E]{Start: nfa.Start, states: map[string]NFAState[E]{}}
	for k, v := range nfa.states {
		cp.states[k] = v.Copy()
	}
	return cp
}

func (nfa NFA[E]) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<START %q:", nfa.Start))
	for _, name := range util.OrderedKeys(nfa.states) {
		st := nfa.states[name]
		sb.WriteString("\n\t")
		sb.WriteString(name)
		if st.accepting {
			sb.WriteString(" (accepting)")
		}
		for _, sym := range util.OrderedKeys(st.transitions) {
			for _, t := range st.transitions[sym] {
				sb.WriteString(" " + t.String())
			}
		}
	}
	sb.WriteString("\n>")
	return sb.String()
}
