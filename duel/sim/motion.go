// Package sim implements the fixed-timestep substepped turn-resolution
// engine: the Step function and its phases (motion, energy, weapons,
// blast zones, collisions). It is grounded on the teacher's server
// package (server/physics.go, server/systems.go, server/projectiles.go,
// server/combat_handlers.go, server/websocket.go's game loop ordering),
// generalized from a perpetual multiplayer server loop into one pure call
// over a fixed number of substeps.
package sim

import (
	"math"

	"github.com/chknd1nner/duelcore/duel"
)

// stepShipMotion applies one substep of rotation-then-velocity motion to a
// living ship (§4.2): "rotate-then-velocity is the critical ordering:
// movement direction is evaluated against the new heading each substep."
//
// Grounded on server/physics.go's updatePlayerPhysics, which updates
// direction before recomputing position from speed each tick; the
// teacher's bit-shift NEWTURN accumulator is replaced with a direct
// rate*dt integration because §4.2 specifies a continuous
// degrees-per-second rate rather than the teacher's legacy fixed-point
// turn table (itself flagged as a hard-coded-table ambiguity in spec §9).
func stepShipMotion(s *duel.Ship, movement duel.Movement, rotation duel.Rotation, cfg *duel.Config, dt float64) {
	if !s.Alive() {
		return
	}

	soft, hard := cfg.RotationRadiansPerSecond()
	rate := rotation.RateRadiansPerSecond(soft, hard)
	s.Heading = duel.NormalizeAngle(s.Heading + rate*dt)

	if movement == duel.Stop {
		s.Velocity = duel.Vec2{}
		return
	}

	theta := s.Heading + movement.Offset()
	s.Velocity = duel.VecFromAngle(theta, cfg.Ship.BaseSpeedUnitsPerSecond)
	s.Position = s.Position.Add(s.Velocity.Scale(dt))
}

// stepTorpedoMotion applies one substep of ballistic steering to a
// torpedo in flight (§4.5 "Flight"): update heading from the attached
// steering command, recompute velocity from heading and configured speed,
// then integrate position. Torpedo steering reuses the same five
// rotation-style values as ship rotation (§4.1 step 1).
//
// Grounded on server/projectiles.go's updateTorpedoes movement integration
// (speed*cos/sin(dir)), extended with the steering update §4.5 adds on
// top of the teacher's straight-line torpedo flight.
func stepTorpedoMotion(t *duel.Torpedo, cfg *duel.Config, dt float64) {
	soft, hard := cfg.RotationRadiansPerSecond()
	rate := t.Steering.RateRadiansPerSecond(soft, hard)
	t.Heading = duel.NormalizeAngle(t.Heading + rate*dt)

	t.Velocity = duel.VecFromAngle(t.Heading, cfg.Torpedo.SpeedUnitsPerSecond)
	t.Position = t.Position.Add(t.Velocity.Scale(dt))
}

// outOfArena reports whether a position has left the configured arena
// bounds (§4.5 "Torpedo...destroyed...when leaving arena").
func outOfArena(p duel.Vec2, cfg *duel.Config) bool {
	return p.X < 0 || p.X > cfg.Arena.WidthUnits || p.Y < 0 || p.Y > cfg.Arena.HeightUnits
}

// isFiniteVec2 guards against the NaN/Inf Programmer-class errors §7
// calls out ("NaN in position"); used by Step's post-substep invariant
// checks.
func isFiniteVec2(v duel.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
