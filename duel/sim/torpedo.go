package sim

import "github.com/chknd1nner/duelcore/duel"

// launchTorpedo implements §4.5 "Launch": spawn a torpedo iff the owning
// ship has launch_cost_ae available and fewer than max_active_per_ship
// torpedoes already in flight. On success it deducts the cost and returns
// the new torpedo; on failure it returns a ResourceExhausted reason
// (§7) and spawns nothing.
//
// Grounded on server/combat_handlers.go's handleFire, which gates torpedo
// launch on live-torpedo count and fuel before constructing the
// projectile; generalized from the teacher's fixed "too many torps out"
// constant to the configured max_active_per_ship.
func launchTorpedo(ws *duel.WorldState, owner *duel.Ship, cfg *duel.Config) (*duel.Torpedo, string, bool) {
	if ws.CountLiveTorpedoes(owner.ID) >= cfg.Torpedo.MaxActivePerShip {
		return nil, "max_active_torpedoes", false
	}
	if owner.Energy < cfg.Torpedo.LaunchCostAE {
		return nil, "insufficient_energy", false
	}

	owner.Energy -= cfg.Torpedo.LaunchCostAE

	id := ws.AllocID("torp")
	t := &duel.Torpedo{
		ID:           id,
		Owner:        owner.ID,
		Position:     owner.Position,
		Heading:      owner.Heading,
		Velocity:     duel.VecFromAngle(owner.Heading, cfg.Torpedo.SpeedUnitsPerSecond),
		Fuel:         cfg.Torpedo.MaxAECapacity,
		JustLaunched: true,
	}
	return t, "", true
}

// detonate implements the shared blast-spawn effect used by timed,
// auto-fuel, and collision detonation alike (§4.5 "Detonation effect",
// SPEC_FULL §13 item 3: all three routes share this helper so a collision
// detonation uses the exact fuel-at-the-instant snapshot a timed or
// fuel-depletion detonation would). base_damage uses the torpedo's fuel
// remaining *at this instant*, so an early timed detonation yields a
// larger blast than one that waited for fuel to run out (§4.5).
func detonate(ws *duel.WorldState, t *duel.Torpedo, cfg *duel.Config) *duel.BlastZone {
	baseDamage := t.Fuel * cfg.Torpedo.BlastDamageMultiplier
	id := ws.AllocID("blast")
	return duel.NewBlastZone(id, t.Position, baseDamage, cfg.Torpedo.MaxRadius, t.Owner)
}
