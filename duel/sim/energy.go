package sim

import "github.com/chknd1nner/duelcore/duel"

// stepShipEnergy applies one substep of the continuous energy economy to
// a living ship (§4.3): subtract movement and rotation cost, add regen,
// clamp to [0, max_ae]; separately decrement phaser cooldown and clamp to
// >= 0 (§4.1 step 3b).
//
// Grounded on server/systems.go's updatePlayerSystems fuel/heat
// accumulate-then-clamp loop, collapsed from the teacher's
// fuel+two-heat-gauges system to the single `energy` pool spec §3 models.
func stepShipEnergy(s *duel.Ship, movement duel.Movement, rotation duel.Rotation, cfg *duel.Config, dt float64) {
	if !s.Alive() {
		return
	}

	moveCost := cfg.Movement.AECostPerSecond[movement]
	if movement == duel.Stop {
		moveCost = 0 // §4.3: "STOP has zero movement cost"
	}
	rotCost := cfg.RotationRates.AECostPerSecond[rotation]
	if rotation == duel.RotateNone {
		rotCost = 0 // §4.3: "NONE has zero rotation cost"
	}

	delta := (cfg.Ship.AERegenPerSecond - moveCost - rotCost) * dt
	s.Energy += delta
	if s.Energy < 0 {
		s.Energy = 0
	}
	if s.Energy > cfg.Ship.MaxAE {
		s.Energy = cfg.Ship.MaxAE
	}

	s.PhaserCooldownRemaining -= dt
	if s.PhaserCooldownRemaining < 0 {
		s.PhaserCooldownRemaining = 0
	}

	if cfg.WeaponHeat.Enabled && s.Heat > 0 {
		s.Heat -= cfg.WeaponHeat.CoolPerSecond * dt
		if s.Heat < 0 {
			s.Heat = 0
		}
	}
}

// stepTorpedoFuel burns a torpedo's remaining available energy at the
// configured rate (§4.5 "subtract fuel = 1 x dt (or configured burn)")
// and reports whether it has now reached zero (auto-detonation
// condition, §4.5 "Auto-detonation").
func stepTorpedoFuel(t *duel.Torpedo, cfg *duel.Config, dt float64) (depleted bool) {
	t.Fuel -= cfg.Torpedo.FuelBurnPerSecond * dt
	if t.Fuel < 0 {
		t.Fuel = 0
	}
	return t.Fuel <= 0 && !t.HasTimer()
}
