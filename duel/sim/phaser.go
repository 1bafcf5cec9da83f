package sim

import "github.com/chknd1nner/duelcore/duel"

// resolvePhaser implements §4.4: if the shooter's cooldown has elapsed and
// an enemy lies within the shooter's current arc and range, apply damage,
// reset the cooldown, and return the fired event. Returns ok=false when
// no shot was taken (shooter dead, on cooldown, or no target in arc/range).
//
// Grounded on server/combat_handlers.go's handlePhaser, which solves the
// line-to-circle closest-approach problem against a free-aim direction;
// simplified to the spec's arc-containment test since §4.4 phasers always
// aim at "the enemy" (a 1v1 duel has exactly one possible target) rather
// than searching among many players.
func resolvePhaser(shooter, target *duel.Ship, cfg *duel.Config) (dmg float64, ok bool) {
	if !shooter.Alive() || !target.Alive() {
		return 0, false
	}
	if shooter.PhaserCooldownRemaining > 0 {
		return 0, false
	}
	// SPEC_FULL §12 item 1: an optional overheat throttle layered on top
	// of the cooldown gate, mirrored from the teacher's WTemp mechanic.
	if cfg.WeaponHeat.Enabled && shooter.Heat >= cfg.WeaponHeat.MaxHeat {
		return 0, false
	}

	profile := cfg.PhaserProfileFor(shooter.PhaserMode)
	bearing := duel.BearingTo(shooter.Position, target.Position)
	if !duel.InArc(shooter.Heading, bearing, profile.ArcRadians()) {
		return 0, false
	}
	if duel.Distance(shooter.Position, target.Position) > profile.RangeUnits {
		return 0, false
	}

	shooter.PhaserCooldownRemaining = profile.CooldownSeconds
	if cfg.WeaponHeat.Enabled {
		shooter.Heat += cfg.WeaponHeat.HeatPerShot
	}
	return profile.Damage, true
}
