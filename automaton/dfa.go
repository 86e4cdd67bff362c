package automaton

import (
	"fmt"
	"strings"

	"github.com/corvid/ductus/util"
)

// DFAState is a node in a DFA arena: a single destination per input symbol,
// an acceptance flag, and an annotation value of type E.
type DFAState[E any] struct {
	name        string
	transitions map[string]string
	accepting   bool
	value       E
}

// DFA is an arena of DFAStates. Every transition target is guaranteed (by
// AddTransition) to already exist in the arena; no transition may point
// outside the state set.
type DFA[E any] struct {
	states map[string]DFAState[E]
	Start  string
}

// NewDFA returns an empty DFA ready for AddState/AddTransition calls.
func NewDFA[E any]() *DFA[E] {
	return &DFA[E]{states: map[string]DFAState[E]{}}
}

func (dfa *DFA[E]) AddState(name string, accepting bool) {
	if _, ok := dfa.states[name]; ok {
		return
	}
	dfa.states[name] = DFAState[E]{name: name, transitions: map[string]string{}, accepting: accepting}
}

func (dfa *DFA[E]) SetValue(name string, v E) {
	st := dfa.states[name]
	st.value = v
	dfa.states[name] = st
}

func (dfa DFA[E]) GetValue(name string) E {
	return dfa.states[name].value
}

func (dfa *DFA[E]) AddTransition(from, input, to string) {
	if _, ok := dfa.states[from]; !ok {
		panic(fmt.Sprintf("add transition from non-existent state %q", from))
	}
	if _, ok := dfa.states[to]; !ok {
		panic(fmt.Sprintf("add transition to non-existent state %q", to))
	}
	st := dfa.states[from]
	st.transitions[input] = to
	dfa.states[from] = st
}

// Next returns the destination state for (from, input), or "" if no such
// transition exists.
func (dfa DFA[E]) Next(from, input string) string {
	return dfa.states[from].transitions[input]
}

// Transitions returns a copy of the named state's outgoing transition map
// (input symbol -> destination state name).
func (dfa DFA[E]) Transitions(name string) map[string]string {
	cp := make(map[string]string, len(dfa.states[name].transitions))
	for k, v := range dfa.states[name].transitions {
		cp[k] = v
	}
	return cp
}

// States returns the set of all state names.
func (dfa DFA[E]) States() util.StringSet {
	s := util.NewStringSet()
	for k := range dfa.states {
		s.Add(k)
	}
	return s
}

// IsAccepting reports whether the named state is final.
func (dfa DFA[E]) IsAccepting(name string) bool {
	return dfa.states[name].accepting
}

// Alphabet returns every input symbol used by some transition.
func (dfa DFA[E]) Alphabet() util.StringSet {
	s := util.NewStringSet()
	for _, st := range dfa.states {
		for sym := range st.transitions {
			s.Add(sym)
		}
	}
	return s
}

func (dfa DFA[E]) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<START %q:", dfa.Start))
	for _, name := range util.OrderedKeys(dfa.states) {
		st := dfa.states[name]
		sb.WriteString("\n\t")
		sb.WriteString(name)
		if st.accepting {
			sb.WriteString(" (accepting)")
		}
		for _, sym := range util.OrderedKeys(st.transitions) {
			sb.WriteString(fmt.Sprintf(" =(%s)=>%s", sym, st.transitions[sym]))
		}
	}
	sb.WriteString("\n>")
	return sb.String()
}

// ToDFA performs subset construction (purple dragon book algorithm 3.20)
// over nfa, producing a DFA whose states are named after the ordered,
// comma-joined NFA state sets they represent, and whose annotation per
// state is the util.SVSet of every NFA-state annotation contained in that
// DFA state's underlying set — callers that need a single winning
// annotation (e.g. the lexer's token/priority pick) reduce that set
// themselves; this keeps subset construction itself annotation-policy-free.
func (nfa NFA[E]) ToDFA() DFA[util.SVSet[E]] {
	alphabet := nfa.InputSymbols()

	dStart := nfa.EpsilonClosure(nfa.Start)
	startName := dStart.StringOrdered()

	dfa := DFA[util.SVSet[E]]{states: map[string]DFAState[util.SVSet[E]]{}, Start: startName}

	marked := util.NewStringSet()
	pending := map[string]util.StringSet{startName: dStart}

	for {
		var unmarkedName string
		var unmarkedSet util.StringSet
		found := false
		for _, name := range util.OrderedKeys(pending) {
			if !marked.Has(name) {
				unmarkedName = name
				unmarkedSet = pending[name]
				found = true
				break
			}
		}
		if !found {
			break
		}
		marked.Add(unmarkedName)

		accepting := unmarkedSet.Any(func(s string) bool { return nfa.IsAccepting(s) })
		dfa.AddState(unmarkedName, accepting)

		values := util.NewSVSet[E]()
		for s := range unmarkedSet {
			if nfa.IsAccepting(s) {
				values.Set(s, nfa.GetValue(s))
			}
		}
		dfa.SetValue(unmarkedName, values)

		for _, a := range util.OrderedKeys(map[string]bool(alphabet)) {
			target := nfa.EpsilonClosureOfSet(nfa.MOVE(unmarkedSet, a))
			if target.Empty() {
				continue
			}
			targetName := target.StringOrdered()
			if _, ok := pending[targetName]; !ok {
				pending[targetName] = target
			}
			if _, ok := dfa.states[targetName]; !ok {
				dfa.AddState(targetName, target.Any(func(s string) bool { return nfa.IsAccepting(s) }))
				tValues := util.NewSVSet[E]()
				for s := range target {
					if nfa.IsAccepting(s) {
						tValues.Set(s, nfa.GetValue(s))
					}
				}
				dfa.SetValue(targetName, tValues)
			}
			dfa.AddTransition(unmarkedName, a, targetName)
		}
	}

	return dfa
}
