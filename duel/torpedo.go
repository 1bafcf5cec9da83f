package duel

// Torpedo is a spawned projectile (§3). Mutated only by step; destroyed on
// detonation or when it leaves the arena.
type Torpedo struct {
	ID      string
	Owner   string // owning ship's ID
	Position Vec2
	Velocity Vec2
	Heading  float64

	// Fuel is ae_remaining: the torpedo's remaining available energy,
	// burned at a configured rate per second and converted to blast
	// damage on detonation (§4.5).
	Fuel float64

	// JustLaunched is a one-tick flag cleared after the first substep of
	// flight (§4.5).
	JustLaunched bool

	// DetonationTimer is set by a detonate_after torpedo command; nil
	// means no timer is armed and the torpedo detonates only on fuel
	// depletion or collision (§4.5).
	DetonationTimer *float64

	// Steering holds the steering command attached for this decision
	// interval, applied every substep until replaced at the next turn's
	// intake (§4.1 step 1, §4.5 "Flight").
	Steering Rotation
}

// HasTimer reports whether a detonation timer is currently armed.
func (t *Torpedo) HasTimer() bool {
	return t.DetonationTimer != nil
}

// SetTimer arms a detonation timer at the given number of seconds
// remaining.
func (t *Torpedo) SetTimer(seconds float64) {
	v := seconds
	t.DetonationTimer = &v
}
