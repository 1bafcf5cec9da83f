package sim

import "github.com/chknd1nner/duelcore/duel"

// resolveShipCollision implements §4.7 ship-ship collision: both ships
// take collision_damage once per first contact, then a suppression latch
// prevents re-damage until they separate beyond SeparationFactor times
// the combined radius (SPEC_FULL §13 item 1, resolving the explicit Open
// Question in spec §9 about damage-suppression policy during continuous
// contact).
//
// Grounded on server/projectiles.go's hit-test-then-mark-exploding idiom
// (a single flag gates repeated damage) and game/types.go's
// ShipExplosionDist/ShipExplosionMaxDist two-radius shape, collapsed here
// into one fixed radius since §6 carries no per-ship collision geometry.
func resolveShipCollision(a, b *duel.Ship, cfg *duel.Config) (hit bool) {
	if !a.Alive() || !b.Alive() {
		return false
	}

	dist := duel.Distance(a.Position, b.Position)
	combined := 2 * duel.CollisionRadius
	separationThreshold := duel.SeparationFactor * combined

	if a.CollidedWith == b.ID || b.CollidedWith == a.ID {
		if dist > separationThreshold {
			a.CollidedWith = ""
			b.CollidedWith = ""
		}
		return false
	}

	if dist > combined {
		return false
	}

	a.CollidedWith = b.ID
	b.CollidedWith = a.ID
	return true
}

// torpedoHitsShip reports whether a torpedo's current position is close
// enough to a living, non-owning ship to detonate on contact (§4.7
// "Torpedo-ship collision => treat as immediate detonation...with full
// remaining-fuel blast").
func torpedoHitsShip(t *duel.Torpedo, s *duel.Ship) bool {
	if !s.Alive() || t.Owner == s.ID {
		return false
	}
	return duel.Distance(t.Position, s.Position) <= duel.CollisionRadius
}
