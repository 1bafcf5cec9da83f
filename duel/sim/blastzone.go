package sim

import "github.com/chknd1nner/duelcore/duel"

// advanceBlastZone implements §4.6: age the zone by dt, recompute its
// phase and current_radius, and return the per-substep damage rate a ship
// standing inside current_radius takes this substep. The zone's own Phase
// and CurrentRadius fields are updated in place.
//
// There is no teacher equivalent (netrek torpedoes/plasma are instant-hit,
// not area-and-duration); this is grounded on the explicit phase-field
// state-machine idiom server/bot_planet.go uses for orbit state, adapted
// to the spec's three fixed-duration phases (§4.6, DESIGN.md entry).
func advanceBlastZone(z *duel.BlastZone, expansion, persistence, dissipation, dt float64) (damageThisSubstep float64) {
	z.Age += dt

	switch {
	case z.Age < expansion:
		z.Phase = duel.Expansion
		z.CurrentRadius = z.MaxRadius * (z.Age / expansion)
	case z.Age < expansion+persistence:
		z.Phase = duel.Persistence
		z.CurrentRadius = z.MaxRadius
	case z.Age < expansion+persistence+dissipation:
		z.Phase = duel.Dissipation
		remaining := (expansion + persistence + dissipation) - z.Age
		z.CurrentRadius = z.MaxRadius * (remaining / dissipation)
	default:
		z.Phase = duel.Dissipation
		z.CurrentRadius = 0
		return 0
	}

	damageRate := z.BaseDamage / persistence
	if z.Phase == duel.Dissipation && z.MaxRadius > 0 {
		damageRate *= z.CurrentRadius / z.MaxRadius
	}
	return damageRate * dt
}
