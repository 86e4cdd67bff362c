package grammar

import (
	"fmt"
	"strings"
)

// LR0Item is a production with a dot position, expressed as the portion of
// the RHS already consumed (Left) and the portion still to come (Right).
type LR0Item struct {
	NonTerminal string
	Left        []string
	Right       []string
}

// SymbolAfterDot returns the RHS symbol immediately after the dot, or ""
// if the dot is at the end of the production.
func (item LR0Item) SymbolAfterDot() string {
	if len(item.Right) == 0 {
		return ""
	}
	return item.Right[0]
}

// AtEnd reports whether the dot has reached the end of the production.
func (item LR0Item) AtEnd() bool {
	return len(item.Right) == 0
}

// Production reconstructs the full (dot-free) production this item is
// tracking a position within.
func (item LR0Item) Production() Production {
	full := make(Production, 0, len(item.Left)+len(item.Right))
	full = append(full, item.Left...)
	full = append(full, item.Right...)
	if len(full) == 0 {
		return EpsilonProduction
	}
	return full
}

func (item LR0Item) String() string {
	left := strings.Join(item.Left, " ")
	right := strings.Join(item.Right, " ")
	if left != "" {
		left += " "
	}
	if right != "" {
		right = " " + right
	}
	return fmt.Sprintf("%s -> %s.%s", item.NonTerminal, left, right)
}

// Equal reports structural equality of two LR0Items.
func (item LR0Item) Equal(o LR0Item) bool {
	if item.NonTerminal != o.NonTerminal {
		return false
	}
	if len(item.Left) != len(o.Left) || len(item.Right) != len(o.Right) {
		return false
	}
	for i := range item.Left {
		if item.Left[i] != o.Left[i] {
			return false
		}
	}
	for i := range item.Right {
		if item.Right[i] != o.Right[i] {
			return false
		}
	}
	return true
}

// KernelEntry identifies an LR0Item without regard to lookahead — the
// (production, dot-position) pair used to detect LALR-equivalent states.
type KernelEntry struct {
	NonTerminal string
	Left        string
	Right       string
}

// Kernel returns the kernel entry (production, dot position) for this item,
// stripped of lookahead.
func (item LR0Item) Kernel() KernelEntry {
	return KernelEntry{
		NonTerminal: item.NonTerminal,
		Left:        strings.Join(item.Left, " "),
		Right:       strings.Join(item.Right, " "),
	}
}

// AllItems returns every LR0Item obtainable by placing the dot at each
// position (0..len(p)) of production p for nonterminal nt, including the
// position past the final symbol.
func AllItems(nt string, p Production) []LR0Item {
	if p.IsEpsilon() {
		return []LR0Item{{NonTerminal: nt}}
	}

	items := make([]LR0Item, 0, len(p)+1)
	for dot := 0; dot <= len(p); dot++ {
		items = append(items, LR0Item{
			NonTerminal: nt,
			Left:        append([]string{}, p[:dot]...),
			Right:       append([]string{}, p[dot:]...),
		})
	}
	return items
}

// LRItems returns every LR0Item of every production in the grammar.
func (g Grammar) LRItems() []LR0Item {
	var items []LR0Item
	for _, r := range g.rules {
		for _, p := range r.Productions {
			items = append(items, AllItems(r.NonTerminal, p)...)
		}
	}
	return items
}

// LR1Item is an LR0Item paired with a single-terminal lookahead.
type LR1Item struct {
	LR0Item
	Lookahead string
}

func (item LR1Item) String() string {
	return fmt.Sprintf("[%s, %s]", item.LR0Item.String(), item.Lookahead)
}

// Equal reports structural equality of two LR1Items.
func (item LR1Item) Equal(o LR1Item) bool {
	return item.LR0Item.Equal(o.LR0Item) && item.Lookahead == o.Lookahead
}

// Copy returns a deep copy of item.
func (item LR1Item) Copy() LR1Item {
	cp := LR1Item{Lookahead: item.Lookahead}
	cp.NonTerminal = item.NonTerminal
	cp.Left = append([]string{}, item.Left...)
	cp.Right = append([]string{}, item.Right...)
	return cp
}
