package sim

import (
	"math"

	"github.com/chknd1nner/duelcore/duel"
)

// Step implements the turn-resolution contract from spec §4.1:
//
//	step(state, orders_A, orders_B, config) -> (new_state, events)
//
// It is pure with respect to its inputs: a deep copy of state becomes the
// working state, orders are sanitized rather than trusted, and the only
// way this function stops the program is a panic carrying an
// *duel.InvariantViolation (§7 Programmer errors).
//
// Grounded on server/websocket.go's per-tick game loop, which runs
// physics, systems, projectiles, collisions, and victory checks in a
// fixed order every tick; collapsed here from a perpetual server loop
// into one pure call over N = round(decision_interval/physics_tick)
// substeps (§3 invariant).
func Step(state *duel.WorldState, ordersA, ordersB duel.Orders, cfg *duel.Config) (*duel.WorldState, []duel.Event) {
	ws := state.DeepCopy()
	var events []duel.Event
	emit := func(e duel.Event) {
		e.Turn = ws.Turn
		events = append(events, e)
	}

	decisionInterval := cfg.Simulation.DecisionIntervalSeconds
	dt := cfg.Simulation.PhysicsTickSeconds
	n := cfg.SubstepCount()

	ordersA, problemsA := ordersA.Sanitize(decisionInterval)
	ordersB, problemsB := ordersB.Sanitize(decisionInterval)
	for _, p := range problemsA {
		emit(duel.Event{Type: duel.EventInvalidOrder, ShipID: ws.ShipA.ID, Reason: p})
	}
	for _, p := range problemsB {
		emit(duel.Event{Type: duel.EventInvalidOrder, ShipID: ws.ShipB.ID, Reason: p})
	}

	// §4.1 step 1: apply torpedo commands before substepping begins.
	applyTorpedoCommands(ws, &ws.ShipA, ordersA)
	applyTorpedoCommands(ws, &ws.ShipB, ordersB)

	// §4.1 step 2: one-shot weapon pre-actions.
	applyWeaponPreAction(ws, &ws.ShipA, ordersA.WeaponAction, cfg, emit)
	applyWeaponPreAction(ws, &ws.ShipB, ordersB.WeaponAction, cfg, emit)

	for i := 0; i < n; i++ {
		runSubstep(ws, ordersA, ordersB, cfg, dt, emit)
		checkInvariants(ws, cfg)
	}

	ws.Turn++

	if over, winner, draw := terminationStatus(ws); over {
		ev := duel.Event{Type: duel.EventMatchOver, Draw: draw}
		if !draw {
			ev.Winner = winner.String()
		}
		emit(ev)
	}

	return ws, events
}

// applyTorpedoCommands implements §4.1 step 1 for one ship's order
// packet: a detonate_after command arms the torpedo's timer; a steering
// command replaces its steering for the coming interval. Commands
// referencing a torpedo the ship does not own, or that no longer exists,
// are silently ignored — the spec only validates enum/range shape at
// intake (§7 OrderInvalid), not cross-referential ownership.
func applyTorpedoCommands(ws *duel.WorldState, owner *duel.Ship, orders duel.Orders) {
	for id, cmd := range orders.TorpedoCommands {
		t := ws.FindTorpedo(id)
		if t == nil || t.Owner != owner.ID {
			continue
		}
		switch cmd.Kind {
		case duel.TorpedoOrderDetonate:
			t.SetTimer(cmd.DetonateAfter)
		case duel.TorpedoOrderSteer:
			t.Steering = cmd.Steer
		}
	}
}

// applyWeaponPreAction implements §4.1 step 2: RECONFIGURE switches mode
// immediately, LAUNCH_TORPEDO spawns a torpedo if resources allow
// (emitting torpedo_launched or launch_rejected), MAINTAIN_CONFIG is a
// no-op.
func applyWeaponPreAction(ws *duel.WorldState, ship *duel.Ship, action duel.WeaponAction, cfg *duel.Config, emit func(duel.Event)) {
	if !ship.Alive() {
		return
	}
	switch action {
	case duel.ReconfigureWide:
		ship.PhaserMode = duel.PhaserWide
	case duel.ReconfigureFocused:
		ship.PhaserMode = duel.PhaserFocused
	case duel.LaunchTorpedo:
		t, reason, ok := launchTorpedo(ws, ship, cfg)
		if !ok {
			emit(duel.Event{Type: duel.EventLaunchRejected, ShipID: ship.ID, Reason: reason})
			return
		}
		ws.Torpedoes = append(ws.Torpedoes, t)
		pos := t.Position
		emit(duel.Event{Type: duel.EventTorpedoLaunched, ShipID: ship.ID, OtherID: t.ID, Position: &pos})
	case duel.MaintainConfig:
		// no-op
	}
}

// runSubstep executes phases (a) through (i) of §4.1 step 3 in their
// fixed order, Ship A before Ship B within each phase, torpedoes in
// insertion order.
func runSubstep(ws *duel.WorldState, ordersA, ordersB duel.Orders, cfg *duel.Config, dt float64, emit func(duel.Event)) {
	// (a) rotation then velocity/position for each living ship.
	stepShipMotion(&ws.ShipA, ordersA.Movement, ordersA.Rotation, cfg, dt)
	stepShipMotion(&ws.ShipB, ordersB.Movement, ordersB.Rotation, cfg, dt)

	// (b) energy economy and cooldown decrement for each living ship.
	stepShipEnergy(&ws.ShipA, ordersA.Movement, ordersA.Rotation, cfg, dt)
	stepShipEnergy(&ws.ShipB, ordersB.Movement, ordersB.Rotation, cfg, dt)

	// (c) torpedo flight: steering, velocity, position, fuel burn.
	var autoDetonate []*duel.Torpedo
	for _, t := range ws.Torpedoes {
		stepTorpedoMotion(t, cfg, dt)
		if stepTorpedoFuel(t, cfg, dt) {
			autoDetonate = append(autoDetonate, t)
		}
		t.JustLaunched = false
	}

	// (d) timed detonation countdown.
	var timedDetonate []*duel.Torpedo
	for _, t := range ws.Torpedoes {
		if t.DetonationTimer == nil {
			continue
		}
		*t.DetonationTimer -= dt
		if *t.DetonationTimer <= 0 {
			timedDetonate = append(timedDetonate, t)
		}
	}

	// torpedoes that left the arena are removed without a blast (§4.5
	// "destroyed...when leaving arena" — this is not a detonation).
	outOfBounds := map[string]bool{}
	for _, t := range ws.Torpedoes {
		if outOfArena(t.Position, cfg) {
			outOfBounds[t.ID] = true
		}
	}

	// (e) detonate every marked torpedo (auto-fuel, timed, or out of
	// bounds is handled separately below since it does not detonate).
	toDetonate := map[string]bool{}
	for _, t := range autoDetonate {
		toDetonate[t.ID] = true
	}
	for _, t := range timedDetonate {
		toDetonate[t.ID] = true
	}

	remaining := ws.Torpedoes[:0]
	for _, t := range ws.Torpedoes {
		switch {
		case outOfBounds[t.ID]:
			continue // removed silently, no blast
		case toDetonate[t.ID]:
			zone := detonate(ws, t, cfg)
			ws.BlastZones = append(ws.BlastZones, zone)
			pos := t.Position
			emit(duel.Event{Type: duel.EventTorpedoDetonated, ShipID: t.Owner, OtherID: t.ID, Position: &pos})
		default:
			remaining = append(remaining, t)
		}
	}
	ws.Torpedoes = remaining

	// (f) advance blast zones and apply continuous area damage.
	activeZones := ws.BlastZones[:0]
	for _, z := range ws.BlastZones {
		damageRate := advanceBlastZone(z, cfg.Torpedo.ExpansionSeconds, cfg.Torpedo.PersistenceSeconds, cfg.Torpedo.DissipationSeconds, dt)
		if z.Expired(cfg.Torpedo.ExpansionSeconds, cfg.Torpedo.PersistenceSeconds, cfg.Torpedo.DissipationSeconds) {
			emit(duel.Event{Type: duel.EventBlastZoneExpired, OtherID: z.ID})
			continue
		}
		if damageRate > 0 {
			applyBlastDamageToShip(&ws.ShipA, z, damageRate)
			applyBlastDamageToShip(&ws.ShipB, z, damageRate)
		}
		activeZones = append(activeZones, z)
	}
	ws.BlastZones = activeZones

	// (g) phaser resolution, shooter order A then B.
	firePhaser(ws, &ws.ShipA, &ws.ShipB, cfg, emit)
	firePhaser(ws, &ws.ShipB, &ws.ShipA, cfg, emit)

	// (h) collisions: ship-ship, then torpedo-ship in insertion order.
	if resolveShipCollision(&ws.ShipA, &ws.ShipB, cfg) {
		ws.ShipA.ApplyDamage(cfg.Ship.CollisionDamage)
		ws.ShipB.ApplyDamage(cfg.Ship.CollisionDamage)
		emit(duel.Event{Type: duel.EventShipCollision, ShipID: ws.ShipA.ID, OtherID: ws.ShipB.ID})
	}
	resolveTorpedoShipCollisions(ws, cfg, emit)

	// (i) destroyed-this-substep detection and single-emission.
	detectNewlyDestroyed(ws, emit)
}

// applyBlastDamageToShip applies a zone's per-substep damage rate to a
// ship if it currently lies inside current_radius (§4.6 containment
// test). Self-damage is permitted: owner is not immune.
func applyBlastDamageToShip(s *duel.Ship, z *duel.BlastZone, damageRate float64) {
	if !s.Alive() {
		return
	}
	if duel.InCircle(s.Position, z.Center, z.CurrentRadius) {
		s.ApplyDamage(damageRate)
	}
}

// firePhaser resolves one shooter's phaser against the other ship and
// emits phaser_fired on a hit (§4.4).
func firePhaser(ws *duel.WorldState, shooter, target *duel.Ship, cfg *duel.Config, emit func(duel.Event)) {
	damage, ok := resolvePhaser(shooter, target, cfg)
	if !ok {
		return
	}
	target.ApplyDamage(damage)
	emit(duel.Event{
		Type:               duel.EventPhaserFired,
		ShipID:             shooter.ID,
		OtherID:            target.ID,
		Damage:             damage,
		PhaserMode:         shooter.PhaserMode.String(),
		TargetShieldsAfter: target.ShieldsInt(),
	})
}

// resolveTorpedoShipCollisions implements §4.7's torpedo-ship branch:
// immediate detonation at the torpedo's current position with full
// remaining-fuel blast, routed through the shared detonate() helper
// (SPEC_FULL §13 item 3) so the blast uses the torpedo's fuel at the
// instant of impact.
func resolveTorpedoShipCollisions(ws *duel.WorldState, cfg *duel.Config, emit func(duel.Event)) {
	remaining := ws.Torpedoes[:0]
	for _, t := range ws.Torpedoes {
		hitShip := (*duel.Ship)(nil)
		if torpedoHitsShip(t, &ws.ShipA) {
			hitShip = &ws.ShipA
		} else if torpedoHitsShip(t, &ws.ShipB) {
			hitShip = &ws.ShipB
		}
		if hitShip == nil {
			remaining = append(remaining, t)
			continue
		}
		zone := detonate(ws, t, cfg)
		ws.BlastZones = append(ws.BlastZones, zone)
		pos := t.Position
		emit(duel.Event{Type: duel.EventTorpedoImpact, ShipID: t.Owner, OtherID: hitShip.ID, Position: &pos})
		emit(duel.Event{Type: duel.EventTorpedoDetonated, ShipID: t.Owner, OtherID: t.ID, Position: &pos})
	}
	ws.Torpedoes = remaining
}

// detectNewlyDestroyed emits ship_destroyed exactly once per ship, the
// substep its shields first reach zero (§4.1 step 3i), and credits the
// scoreboard: the destroyed ship's Deaths and the survivor's Kills each
// increment once per destruction (SPEC_FULL §12 item 4). A mutual kill
// (both ships cross zero in the same substep) credits both Deaths but
// no Kills, since neither ship survived to be credited.
func detectNewlyDestroyed(ws *duel.WorldState, emit func(duel.Event)) {
	pairs := []struct {
		s, other *duel.Ship
	}{
		{&ws.ShipA, &ws.ShipB},
		{&ws.ShipB, &ws.ShipA},
	}
	for _, p := range pairs {
		if p.s.TryMarkDestroyedEvent() {
			p.s.Deaths++
			if p.other.Alive() {
				p.other.Kills++
			}
			emit(duel.Event{Type: duel.EventShipDestroyed, ShipID: p.s.ID})
		}
	}
}

// terminationStatus implements §4.1 step 4: exactly one ship alive is a
// win for the other; both destroyed in the same substep is a draw.
func terminationStatus(ws *duel.WorldState) (over bool, winner duel.Side, draw bool) {
	aAlive := ws.ShipA.Alive()
	bAlive := ws.ShipB.Alive()
	switch {
	case aAlive && bAlive:
		return false, 0, false
	case !aAlive && !bAlive:
		return true, 0, true
	case aAlive:
		return true, duel.SideA, false
	default:
		return true, duel.SideB, false
	}
}

// checkInvariants guards the Programmer-class errors §7 names explicitly
// ("NaN in position, shields >100, etc."): a violation here is a bug in
// this engine, not adversarial input, so it panics rather than returning
// an error (§7 "Never recovered").
func checkInvariants(ws *duel.WorldState, cfg *duel.Config) {
	for _, s := range []*duel.Ship{&ws.ShipA, &ws.ShipB} {
		if !isFiniteVec2(s.Position) {
			duel.PanicInvariant(ws, "ship %s position is not finite: %+v", s.ID, s.Position)
		}
		if s.Shields < 0 {
			duel.PanicInvariant(ws, "ship %s shields negative: %v", s.ID, s.Shields)
		}
		if s.Shields > float64(cfg.Ship.StartingShields) {
			duel.PanicInvariant(ws, "ship %s shields above starting_shields: %v", s.ID, s.Shields)
		}
		if s.Energy < 0 || math.IsNaN(s.Energy) {
			duel.PanicInvariant(ws, "ship %s energy out of range: %v", s.ID, s.Energy)
		}
		if s.Heading < 0 || s.Heading >= duel.TwoPi {
			duel.PanicInvariant(ws, "ship %s heading out of [0, 2pi): %v", s.ID, s.Heading)
		}
	}
}
