package grammar

import (
	"strings"

	"github.com/corvid/ductus/util"
)

// LR1ItemSet is a set of LR1Items keyed by a canonical string encoding of
// each item, so that two occurrences of the same (production, dot,
// lookahead) triple collapse to one entry regardless of how they were
// produced.
type LR1ItemSet = util.SVSet[LR1Item]

// lr1Key returns a canonical, collision-free key for an LR1Item. Plain
// item.String() is readable but uses "." and " " as part of its output,
// which a pathological grammar (a terminal literally named "." or "->")
// could collide on; this key uses a control-character separator no
// grammar-text symbol can contain (symbols are whitespace-split).
func lr1Key(item LR1Item) string {
	return strings.Join([]string{
		item.NonTerminal,
		strings.Join(item.Left, "\x1f"),
		strings.Join(item.Right, "\x1f"),
		item.Lookahead,
	}, "\x1e")
}

// NewLR1ItemSet builds an LR1ItemSet from a list of items.
func NewLR1ItemSet(items ...LR1Item) LR1ItemSet {
	s := util.NewSVSet[LR1Item]()
	for _, it := range items {
		s.Set(lr1Key(it), it)
	}
	return s
}

// LR1_CLOSURE computes the closure of LR(1) item set I (purple dragon book
// algorithm 4.56): repeatedly, for every item [A -> α.Bβ, a] in the set and
// every production B -> γ, add [B -> .γ, b] for every b in FIRST(βa),
// until no more items can be added.
//
// The body follows the textbook definition directly.
func (g Grammar) LR1_CLOSURE(ff FirstFollow, I LR1ItemSet) LR1ItemSet {
	closure := util.NewSVSet(I)

	changed := true
	for changed {
		changed = false

		for _, key := range util.OrderedKeys(closure) {
			item := closure[key]
			B := item.SymbolAfterDot()
			if B == "" || !g.IsNonTerminal(B) {
				continue
			}

			beta := item.Right[1:]

			for _, prod := range g.Rule(B).Productions {
				newItems := AllItems(B, prod)
				dotAtStart := newItems[0]

				for a := range ff.FirstOfSequence(append(append([]string{}, beta...), item.Lookahead)) {
					if a == Epsilon {
						continue
					}
					candidate := LR1Item{LR0Item: dotAtStart, Lookahead: a}
					k := lr1Key(candidate)
					if _, ok := closure[k]; !ok {
						closure.Set(k, candidate)
						changed = true
					}
				}
			}
		}
	}

	return closure
}

// LR1_GOTO computes GOTO(I, X) (purple dragon book algorithm 4.56): the
// closure of every item [A -> αX.β, a] in I obtained by advancing the dot
// of an item [A -> α.Xβ, a] across symbol X.
func (g Grammar) LR1_GOTO(ff FirstFollow, I LR1ItemSet, X string) LR1ItemSet {
	moved := util.NewSVSet[LR1Item]()

	for _, item := range I {
		if item.SymbolAfterDot() != X {
			continue
		}
		advanced := LR1Item{
			LR0Item: LR0Item{
				NonTerminal: item.NonTerminal,
				Left:        append(append([]string{}, item.Left...), X),
				Right:       append([]string{}, item.Right[1:]...),
			},
			Lookahead: item.Lookahead,
		}
		moved.Set(lr1Key(advanced), advanced)
	}

	return g.LR1_CLOSURE(ff, moved)
}

