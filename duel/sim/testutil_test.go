package sim

import "github.com/chknd1nner/duelcore/duel"

// testConfig returns a valid configuration matching the default values
// spec §8's literal scenarios assume (15s decision interval, 0.1s
// physics tick, base_speed=3, etc.). Individual tests override whatever
// field the scenario calls out.
func testConfig() *duel.Config {
	return &duel.Config{
		Simulation: duel.SimulationConfig{
			DecisionIntervalSeconds: 15,
			PhysicsTickSeconds:      0.1,
		},
		Ship: duel.ShipConfig{
			StartingShields:         100,
			StartingAE:              1000,
			MaxAE:                   1000,
			AERegenPerSecond:        50,
			BaseSpeedUnitsPerSecond: 3,
			CollisionDamage:         10,
		},
		RotationRates: duel.RotationConfig{
			SoftTurnDegreesPerSecond: 1,
			HardTurnDegreesPerSecond: 3,
			AECostPerSecond: map[duel.Rotation]float64{
				duel.RotateNone: 0,
				duel.SoftLeft:   1,
				duel.SoftRight:  1,
				duel.HardLeft:   3,
				duel.HardRight:  3,
			},
		},
		Movement: duel.MovementConfig{
			AECostPerSecond: map[duel.Movement]float64{
				duel.Forward:        2,
				duel.ForwardLeft:    2,
				duel.Left:           2,
				duel.BackwardLeft:   2,
				duel.Backward:       2,
				duel.BackwardRight:  2,
				duel.Right:          2,
				duel.ForwardRight:   2,
				duel.Stop:           0,
			},
		},
		Phaser: duel.PhaserConfig{
			Wide: duel.PhaserProfile{
				ArcDegrees:      120,
				RangeUnits:      300,
				Damage:          5,
				CooldownSeconds: 3.5,
			},
			Focused: duel.PhaserProfile{
				ArcDegrees:      20,
				RangeUnits:      600,
				Damage:          15,
				CooldownSeconds: 5,
			},
		},
		Torpedo: duel.TorpedoConfig{
			LaunchCostAE:          50,
			MaxAECapacity:         10,
			SpeedUnitsPerSecond:   20,
			MaxActivePerShip:      4,
			BlastDamageMultiplier: 2,
			ExpansionSeconds:      5,
			PersistenceSeconds:    60,
			DissipationSeconds:    5,
			MaxRadius:             50,
			FuelBurnPerSecond:     1,
		},
		Arena: duel.ArenaConfig{
			WidthUnits:         10000,
			HeightUnits:        10000,
			SpawnDistanceUnits: 500,
		},
	}
}

func newShip(id string, pos duel.Vec2, heading float64, shields, energy float64) duel.Ship {
	return duel.Ship{
		ID:       id,
		Position: pos,
		Heading:  heading,
		Shields:  shields,
		Energy:   energy,
	}
}
