package duel

import "fmt"

// InvariantViolation is the Programmer-class error from §7: "invariant
// violation detected at runtime (NaN in position, shields >100, etc.)...
// terminate with diagnostic state dump. Never recovered." It is always
// raised via panic, never returned, because §7 treats it as a bug signal
// rather than a recoverable condition.
type InvariantViolation struct {
	What  string
	State *WorldState
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s (turn %d)", e.What, e.State.Turn)
}

// PanicInvariant panics with an *InvariantViolation carrying the offending
// world state, so a recover()-ing caller (see duel/replay for the
// diagnostic dump described in SPEC_FULL §12) can serialize the pre-crash
// frame before the program terminates.
func PanicInvariant(state *WorldState, format string, args ...interface{}) {
	panic(&InvariantViolation{What: fmt.Sprintf(format, args...), State: state})
}
