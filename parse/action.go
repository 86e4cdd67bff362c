package parse

import (
	"fmt"

	"github.com/corvid/ductus/grammar"
)

// ActionType tags the three shapes an LALR(1) ACTION table cell can take
// (a tagged-variants-over-inheritance design), plus a fourth,
// zero-value Error shape for missing cells.
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (t ActionType) String() string {
	switch t {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one ACTION table cell: a type tag plus the fields relevant to
// that tag (State for Shift, Symbol/Production for Reduce).
type Action struct {
	Type       ActionType
	State      string
	Symbol     string
	Production grammar.Production
}

func (a Action) String() string {
	switch a.Type {
	case ActionShift:
		return fmt.Sprintf("shift %s", a.State)
	case ActionReduce:
		return fmt.Sprintf("reduce %s -> %s", a.Symbol, a.Production.String())
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// conflictMessage formats a conflict diagnostic as:
// "Shift/Reduce conflict in state <s> on <sym>" or
// "Reduce/Reduce conflict in state <s> on <sym>".
func conflictMessage(state, sym string, existing, incoming Action) string {
	kind := "Reduce/Reduce"
	if existing.Type == ActionShift || incoming.Type == ActionShift {
		kind = "Shift/Reduce"
	}
	return fmt.Sprintf("%s conflict in state %s on %s", kind, state, sym)
}
