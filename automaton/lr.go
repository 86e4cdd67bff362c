package automaton

import (
	"strings"

	"github.com/corvid/ductus/grammar"
	"github.com/corvid/ductus/util"
)

// lr1SetName returns a canonical name for an LR1ItemSet: its item keys,
// sorted, joined. Two item sets with the same items always get the same
// name, which is what lets the worklist below dedupe states.
func lr1SetName(I grammar.LR1ItemSet) string {
	return strings.Join(util.OrderedKeys(I), "\x00")
}

// NewLR1ViablePrefixDFA builds the canonical LR(1) collection (purple
// dragon book algorithm 4.56/4.57) for the augmented grammar g.Augmented():
// starting from the closure of the augmented start item, repeatedly apply
// GOTO across every symbol used by some item, adding newly discovered item
// sets to the worklist until none remain.
//
// This is the "one-state-per-LR1-item-set" canonical construction that
// NewLALR1ViablePrefixDFA below merges down by core. Canonical LR(1)
// construction and NFA subset construction in this package's ToDFA are
// both "close, then GOTO/MOVE over every symbol, queue unseen results"
// algorithms, so the two worklists read the same way on purpose.
func NewLR1ViablePrefixDFA(g grammar.Grammar) (DFA[grammar.LR1ItemSet], grammar.FirstFollow) {
	aug := g.Augmented()
	ff := grammar.Compute(aug)

	startItem := grammar.LR1Item{
		LR0Item:   grammar.LR0Item{NonTerminal: aug.Start, Right: []string{aug.Rule(aug.Start).Productions[0][0]}},
		Lookahead: grammar.EndOfInput,
	}
	if aug.Rule(aug.Start).Productions[0].IsEpsilon() {
		startItem.Right = nil
	}
	startSet := aug.LR1_CLOSURE(ff, grammar.NewLR1ItemSet(startItem))
	startName := lr1SetName(startSet)

	dfa := DFA[grammar.LR1ItemSet]{states: map[string]DFAState[grammar.LR1ItemSet]{}, Start: startName}

	marked := util.NewStringSet()
	pending := map[string]grammar.LR1ItemSet{startName: startSet}

	for {
		var name string
		var set grammar.LR1ItemSet
		found := false
		for _, n := range util.OrderedKeys(pending) {
			if !marked.Has(n) {
				name, set, found = n, pending[n], true
				break
			}
		}
		if !found {
			break
		}
		marked.Add(name)

		accepting := isAcceptingLR1Set(aug, set)
		dfa.AddState(name, accepting)
		dfa.SetValue(name, set)

		symbols := symbolsAfterDot(set)
		for _, X := range util.OrderedKeys(map[string]bool(symbols)) {
			target := aug.LR1_GOTO(ff, set, X)
			if len(target) == 0 {
				continue
			}
			targetName := lr1SetName(target)
			if _, ok := pending[targetName]; !ok {
				pending[targetName] = target
			}
			if _, ok := dfa.states[targetName]; !ok {
				dfa.AddState(targetName, isAcceptingLR1Set(aug, target))
				dfa.SetValue(targetName, target)
			}
			dfa.AddTransition(name, X, targetName)
		}
	}

	return dfa, ff
}

// isAcceptingLR1Set reports whether set contains a completed item for the
// augmented start production — the signal to accept rather than reduce.
func isAcceptingLR1Set(aug grammar.Grammar, set grammar.LR1ItemSet) bool {
	for _, item := range set {
		if item.NonTerminal == aug.Start && item.AtEnd() {
			return true
		}
	}
	return false
}

func symbolsAfterDot(set grammar.LR1ItemSet) util.StringSet {
	s := util.NewStringSet()
	for _, item := range set {
		if sym := item.SymbolAfterDot(); sym != "" {
			s.Add(sym)
		}
	}
	return s
}

// NewLALR1ViablePrefixDFA builds the canonical LR(1) collection and then
// merges states sharing the same LR(0) core: the "easy, space-consuming"
// construction, build LR(1) first and merge after, rather than a
// lookahead-propagation construction done during closure itself (see
// DESIGN.md for why).
//
// Converts the canonical collection to states keyed by core, unions the
// lookaheads of every canonical state sharing a core, and rewrites
// transitions onto the merged names.
func NewLALR1ViablePrefixDFA(g grammar.Grammar) (DFA[grammar.LR1ItemSet], grammar.FirstFollow) {
	canonical, ff := NewLR1ViablePrefixDFA(g)

	coreOf := func(set grammar.LR1ItemSet) string {
		var kernels []string
		for _, item := range set {
			k := item.Kernel()
			kernels = append(kernels, k.NonTerminal+"\x1f"+k.Left+"\x1f"+k.Right)
		}
		return strings.Join(util.OrderedKeys(util.StringSetOf(kernels)), "\x00")
	}

	// mergedName[canonicalStateName] = name of the merged state it belongs to.
	coreToMerged := map[string]string{}
	mergedName := map[string]string{}
	mergedSet := map[string]grammar.LR1ItemSet{}
	mergedAccepting := map[string]bool{}

	for _, canonName := range util.OrderedKeys(canonical.states) {
		st := canonical.states[canonName]
		core := coreOf(st.value)

		target, ok := coreToMerged[core]
		if !ok {
			target = canonName
			coreToMerged[core] = target
			mergedSet[target] = util.NewSVSet[grammar.LR1Item]()
		}
		mergedName[canonName] = target
		for k, v := range st.value {
			mergedSet[target].Set(k, v)
		}
		if st.accepting {
			mergedAccepting[target] = true
		}
	}

	merged := DFA[grammar.LR1ItemSet]{states: map[string]DFAState[grammar.LR1ItemSet]{}}
	merged.Start = mergedName[canonical.Start]

	for _, target := range util.OrderedKeys(mergedSet) {
		merged.AddState(target, mergedAccepting[target])
		merged.SetValue(target, mergedSet[target])
	}

	for _, canonName := range util.OrderedKeys(canonical.states) {
		from := mergedName[canonName]
		for sym, to := range canonical.states[canonName].transitions {
			merged.AddTransition(from, sym, mergedName[to])
		}
	}

	return merged, ff
}
