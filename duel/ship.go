package duel

// Ship is one of the two combatants (§3). It is mutated only by the step
// function; the rest of the codebase treats it as data.
//
// CollisionRadius resolves the Open Question in spec.md §9 ("the exact
// ship collision radius...[is] under-specified"): SPEC_FULL.md §13 fixes
// it at a constant rather than a per-ship config field, since §6's
// config table carries no per-ship geometry.
const CollisionRadius = 40.0

// SeparationFactor is how far two ships that have already taken collision
// damage this contact must move apart before they can damage each other
// again (SPEC_FULL.md §13 item 1).
const SeparationFactor = 1.5

type Ship struct {
	ID       string
	Position Vec2
	Velocity Vec2
	Heading  float64 // radians, [0, 2*Pi)

	// Shields is stored as float64 rather than the spec's nominal "int,
	// 0-100" (§3) so that continuous blast-zone damage (§4.6, a fraction
	// of a point per substep) accumulates without the precision loss a
	// per-substep int truncation would cause — see SPEC_FULL.md §13 item
	// 4. 0 <= Shields <= starting_shields is still the invariant; callers
	// that need the spec's literal integer contract (the observation
	// projector, the phaser_fired event's target shields) round with
	// ShieldsInt. Replay snapshots keep the unrounded value so it
	// round-trips.
	Shields float64
	Energy  float64

	PhaserMode              PhaserMode
	PhaserCooldownRemaining float64

	// Heat is the optional overheat-throttle accumulator (SPEC_FULL §12
	// item 1); it only affects firing when cfg.WeaponHeat.Enabled, and
	// otherwise sits at its zero value and is never read.
	Heat float64

	// Destroyed is true once Shields reached 0; a destroyed ship ceases
	// to regenerate, move, fire, or collide (§3).
	Destroyed bool

	// CollidedWith holds the ID of the ship this one is currently latched
	// against for ship-ship collision re-damage suppression (§4.7,
	// SPEC_FULL §13 item 1). Empty when not in suppressed contact.
	CollidedWith string

	// Kills/Deaths are additive scoreboard bookkeeping (SPEC_FULL §12),
	// populated only from ship_destroyed events; they do not feed back
	// into any simulation rule.
	Kills  int
	Deaths int

	// destroyedEventSent latches ship_destroyed emission to the single
	// substep shields first reach zero (§4.1 step 3i), so a ship that
	// stays at 0 shields for the rest of the match does not re-emit it.
	destroyedEventSent bool
}

// TryMarkDestroyedEvent reports whether this ship has gone from destroyed
// to destroyed-and-announced, returning true the one time the caller
// should emit ship_destroyed. Subsequent calls return false for the rest
// of the match (§4.1 step 3i).
func (s *Ship) TryMarkDestroyedEvent() bool {
	if !s.Destroyed || s.destroyedEventSent {
		return false
	}
	s.destroyedEventSent = true
	return true
}

// Alive reports whether the ship can still act (§3: "dead" when
// shields<=0 — ceases to regenerate, move, fire, or collide).
func (s *Ship) Alive() bool {
	return !s.Destroyed && s.Shields > 0
}

// ShieldsInt rounds Shields to the spec's nominal integer contract.
func (s *Ship) ShieldsInt() int {
	return int(s.Shields + 0.5)
}

// ApplyDamage subtracts damage from shields (never below zero) and marks
// the ship destroyed the instant shields reach zero, matching the "once
// it reaches 0 it stays 0" invariant (§3). Shields never increase here,
// matching the Shield Monotonicity testable property (§8) — regeneration
// is not part of this system (spec §3 lists no shield regen).
func (s *Ship) ApplyDamage(damage float64) {
	if damage <= 0 {
		return
	}
	s.Shields -= damage
	if s.Shields <= 0 {
		s.Shields = 0
		s.Destroyed = true
	}
}

// ClampShields enforces 0 <= shields <= max without applying damage; used
// when restoring/validating a loaded state rather than during combat.
func (s *Ship) ClampShields(max float64) {
	if s.Shields < 0 {
		s.Shields = 0
	}
	if s.Shields > max {
		s.Shields = max
	}
	if s.Shields == 0 {
		s.Destroyed = true
	}
}
