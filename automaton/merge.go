package automaton

import "fmt"

// WithPrefix returns a copy of nfa with every state renamed by prepending
// prefix — to every state name and every transition target. Building a
// combined multi-rule NFA means compiling each rule's pattern into its own
// small NFA and then folding all of them into one arena; since each call
// to regex.Compile starts its own state-name counter from zero, the
// fragments must be renamed apart before they can share an arena.
//
// This is a rename-then-union rather than a single combinator that
// rewrites transitions by hand per call; Merge below does the actual
// union once every part has a disjoint namespace.
func (nfa NFA[E]) WithPrefix(prefix string) NFA[E] {
	cp := NFA[E]{Start: prefix + nfa.Start, states: map[string]NFAState[E]{}}

	for name, st := range nfa.states {
		renamed := NFAState[E]{
			name:        prefix + name,
			accepting:   st.accepting,
			value:       st.value,
			transitions: map[string][]FATransition{},
		}
		for sym, list := range st.transitions {
			renamed.transitions[sym] = make([]FATransition, len(list))
			for i, t := range list {
				renamed.transitions[sym][i] = FATransition{input: sym, next: prefix + t.next}
			}
		}
		cp.states[prefix+name] = renamed
	}

	return cp
}

// Merge unions the states of several NFAs — assumed to already have
// disjoint state namespaces, e.g. via WithPrefix — into one new arena with
// no Start set; the caller adds its own start state and ε-transitions into
// each part's own start.
func Merge[E any](parts ...NFA[E]) *NFA[E] {
	merged := NewNFA[E]()
	for _, p := range parts {
		for name, st := range p.states {
			if _, dup := merged.states[name]; dup {
				panic(fmt.Sprintf("automaton.Merge: duplicate state name %q across parts", name))
			}
			merged.states[name] = st
		}
	}
	return merged
}
