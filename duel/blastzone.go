package duel

// BlastZone is the area-damage effect spawned by a torpedo detonation
// (§3, §4.6). Its lifetime is the sum of the three configured phase
// durations; it is destroyed when dissipation completes.
type BlastZone struct {
	ID      string
	Center     Vec2
	BaseDamage float64
	// MaxRadius is fixed at spawn from the active config's
	// torpedo.max_radius and never changes over the zone's lifetime.
	MaxRadius float64
	Phase     BlastPhase
	Age       float64 // seconds since spawn

	// CurrentRadius is recomputed every substep by the sim package's
	// advanceBlastZone; callers must
	// not set it directly except at construction (it starts at 0, §3).
	CurrentRadius float64

	// Owner is the ID of the ship whose torpedo produced this zone. It is
	// attribution only: SPEC_FULL.md §13 item 2 confirms a destroyed
	// owner's zones keep ticking damage against the survivor.
	Owner string
}

// NewBlastZone constructs a zone at birth: radius 0, phase EXPANSION, age 0
// (§3 invariant: "current_radius is 0 at birth").
func NewBlastZone(id string, center Vec2, baseDamage, maxRadius float64, owner string) *BlastZone {
	return &BlastZone{
		ID:         id,
		Center:     center,
		BaseDamage: baseDamage,
		MaxRadius:  maxRadius,
		Phase:      Expansion,
		Owner:      owner,
	}
}

// Lifetime returns the total seconds a blast zone with the given phase
// durations lives before it is destroyed.
func Lifetime(expansion, persistence, dissipation float64) float64 {
	return expansion + persistence + dissipation
}

// Expired reports whether the zone has completed dissipation given the
// configured durations (§4.6: "At age >= Te+Tp+Tdiss: destroy the zone").
func (z *BlastZone) Expired(expansion, persistence, dissipation float64) bool {
	return z.Age >= Lifetime(expansion, persistence, dissipation)
}
