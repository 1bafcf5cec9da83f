package duel

// WorldState is the single mutable resource the step function operates on
// (§3, §5: "the WorldState is the sole mutable resource"). It uniquely
// owns its ships, torpedo list, and blast-zone list; entities reference
// each other only by stable string ID (§3 "Ownership").
type WorldState struct {
	Turn int

	ShipA Ship
	ShipB Ship

	Torpedoes  []*Torpedo
	BlastZones []*BlastZone

	// nextID seeds newly spawned torpedo/blast-zone IDs so they are
	// unique within a match and never reused (§3 invariant).
	nextID int
}

// Ship returns the ship on the given side.
func (w *WorldState) Ship(side Side) *Ship {
	if side == SideA {
		return &w.ShipA
	}
	return &w.ShipB
}

// FindTorpedo returns the torpedo with the given ID, or nil.
func (w *WorldState) FindTorpedo(id string) *Torpedo {
	for _, t := range w.Torpedoes {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// CountLiveTorpedoes returns the number of torpedoes currently owned by
// the given ship ID (§4.5 "max_active_per_ship").
func (w *WorldState) CountLiveTorpedoes(ownerID string) int {
	n := 0
	for _, t := range w.Torpedoes {
		if t.Owner == ownerID {
			n++
		}
	}
	return n
}

// AllocID returns a fresh, match-unique ID with the given prefix.
func (w *WorldState) AllocID(prefix string) string {
	w.nextID++
	return prefix + "-" + itoa(w.nextID)
}

// itoa is a tiny base-10 formatter kept local so world.go has no import
// beyond what DeepCopy needs; strconv.Itoa would be equally fine but the
// teacher's own data-model file (game/types.go) keeps its helpers
// (Min/Max) free of extra imports too, so this file follows suit.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// DeepCopy returns an independent copy of the world state: the step
// function's contract requires taking a deep copy on entry so the caller
// may retain the previous state for replay/interpolation (§5 "Copy-on-
// step-entry is recommended").
func (w *WorldState) DeepCopy() *WorldState {
	cp := *w

	cp.Torpedoes = make([]*Torpedo, len(w.Torpedoes))
	for i, t := range w.Torpedoes {
		tc := *t
		if t.DetonationTimer != nil {
			v := *t.DetonationTimer
			tc.DetonationTimer = &v
		}
		cp.Torpedoes[i] = &tc
	}

	cp.BlastZones = make([]*BlastZone, len(w.BlastZones))
	for i, z := range w.BlastZones {
		zc := *z
		cp.BlastZones[i] = &zc
	}

	return &cp
}
