// Package replay records one Snapshot per turn and serializes the
// recorded match to disk (spec §6 "Event log / replay format"). It is
// the one place orders and thinking-tokens are retained outside the
// step call, and the one place the per-turn frame that fed the
// teacher's ServerMessage broadcast (server/websocket.go) is adapted
// into a durable, replayable document instead of a live-only one.
package replay

import (
	"github.com/chknd1nner/duelcore/duel"
)

// ShipSnapshot is the full round-trippable state of one ship at the end
// of a turn (§6: "Every mutable field of every entity must round-trip").
type ShipSnapshot struct {
	ID                      string    `json:"id" bson:"id"`
	Position                duel.Vec2 `json:"position" bson:"position"`
	Velocity                duel.Vec2 `json:"velocity" bson:"velocity"`
	Heading                 float64   `json:"heading" bson:"heading"`
	Shields                 float64   `json:"shields" bson:"shields"`
	Energy                  float64   `json:"energy" bson:"energy"`
	PhaserMode              string    `json:"phaserMode" bson:"phaserMode"`
	PhaserCooldownRemaining float64   `json:"phaserCooldownRemaining" bson:"phaserCooldownRemaining"`
	Destroyed               bool      `json:"destroyed" bson:"destroyed"`
}

// TorpedoSnapshot round-trips a torpedo, including its optional
// detonation timer (§6: "in particular, detonation_timer must be
// serialized").
type TorpedoSnapshot struct {
	ID              string    `json:"id" bson:"id"`
	Owner           string    `json:"owner" bson:"owner"`
	Position        duel.Vec2 `json:"position" bson:"position"`
	Velocity        duel.Vec2 `json:"velocity" bson:"velocity"`
	Heading         float64   `json:"heading" bson:"heading"`
	Fuel            float64   `json:"fuel" bson:"fuel"`
	JustLaunched    bool      `json:"justLaunched" bson:"justLaunched"`
	DetonationTimer *float64  `json:"detonationTimer,omitempty" bson:"detonationTimer,omitempty"`
}

// BlastZoneSnapshot round-trips one blast zone (§6: "phase, age,
// current_radius, base_damage, owner").
type BlastZoneSnapshot struct {
	ID            string    `json:"id" bson:"id"`
	Center        duel.Vec2 `json:"center" bson:"center"`
	BaseDamage    float64   `json:"baseDamage" bson:"baseDamage"`
	MaxRadius     float64   `json:"maxRadius" bson:"maxRadius"`
	Phase         string    `json:"phase" bson:"phase"`
	Age           float64   `json:"age" bson:"age"`
	CurrentRadius float64   `json:"currentRadius" bson:"currentRadius"`
	Owner         string    `json:"owner" bson:"owner"`
}

// TorpedoOrderSnapshot round-trips one torpedo command attached to an
// order packet. Kind discriminates which of Steer/DetonateAfter is
// meaningful, mirroring duel.TorpedoOrder's own tagged union so a
// detonate_after command's exact deadline survives the round trip
// rather than collapsing to a bare marker (§6: "current orders").
type TorpedoOrderSnapshot struct {
	Kind          string  `json:"kind" bson:"kind"`
	Steer         string  `json:"steer,omitempty" bson:"steer,omitempty"`
	DetonateAfter float64 `json:"detonateAfter,omitempty" bson:"detonateAfter,omitempty"`
}

// OrdersSnapshot records the orders consumed to produce this turn, for
// replay diagnostics (§6: "current orders").
type OrdersSnapshot struct {
	Movement        string                          `json:"movement" bson:"movement"`
	Rotation        string                          `json:"rotation" bson:"rotation"`
	WeaponAction    string                          `json:"weaponAction" bson:"weaponAction"`
	TorpedoCommands map[string]TorpedoOrderSnapshot `json:"torpedoCommands,omitempty" bson:"torpedoCommands,omitempty"`
}

// Snapshot is one turn's complete recorded frame (§6: "The recorder
// persists one snapshot per turn containing: full ship states (both),
// full torpedo list, full blast-zone list..., current orders, and
// per-ship thinking-tokens").
type Snapshot struct {
	Turn         int                 `json:"turn" bson:"turn"`
	ShipA        ShipSnapshot        `json:"shipA" bson:"shipA"`
	ShipB        ShipSnapshot        `json:"shipB" bson:"shipB"`
	Torpedoes    []TorpedoSnapshot   `json:"torpedoes" bson:"torpedoes"`
	BlastZones   []BlastZoneSnapshot `json:"blastZones" bson:"blastZones"`
	OrdersA      OrdersSnapshot      `json:"ordersA" bson:"ordersA"`
	OrdersB      OrdersSnapshot      `json:"ordersB" bson:"ordersB"`
	ThinkingA    string              `json:"thinkingA,omitempty" bson:"thinkingA,omitempty"`
	ThinkingB    string              `json:"thinkingB,omitempty" bson:"thinkingB,omitempty"`
	Events       []duel.Event        `json:"events" bson:"events"`
}

func snapshotShip(s *duel.Ship) ShipSnapshot {
	return ShipSnapshot{
		ID:                      s.ID,
		Position:                s.Position,
		Velocity:                s.Velocity,
		Heading:                 s.Heading,
		Shields:                 s.Shields,
		Energy:                  s.Energy,
		PhaserMode:              s.PhaserMode.String(),
		PhaserCooldownRemaining: s.PhaserCooldownRemaining,
		Destroyed:               s.Destroyed,
	}
}

func snapshotTorpedo(t *duel.Torpedo) TorpedoSnapshot {
	var timer *float64
	if t.DetonationTimer != nil {
		v := *t.DetonationTimer
		timer = &v
	}
	return TorpedoSnapshot{
		ID:              t.ID,
		Owner:           t.Owner,
		Position:        t.Position,
		Velocity:        t.Velocity,
		Heading:         t.Heading,
		Fuel:            t.Fuel,
		JustLaunched:    t.JustLaunched,
		DetonationTimer: timer,
	}
}

func snapshotBlastZone(z *duel.BlastZone) BlastZoneSnapshot {
	return BlastZoneSnapshot{
		ID:            z.ID,
		Center:        z.Center,
		BaseDamage:    z.BaseDamage,
		MaxRadius:     z.MaxRadius,
		Phase:         z.Phase.String(),
		Age:           z.Age,
		CurrentRadius: z.CurrentRadius,
		Owner:         z.Owner,
	}
}

func snapshotOrders(o duel.Orders) OrdersSnapshot {
	var cmds map[string]TorpedoOrderSnapshot
	if len(o.TorpedoCommands) > 0 {
		cmds = make(map[string]TorpedoOrderSnapshot, len(o.TorpedoCommands))
		for id, cmd := range o.TorpedoCommands {
			if cmd.Kind == duel.TorpedoOrderDetonate {
				cmds[id] = TorpedoOrderSnapshot{Kind: "DETONATE", DetonateAfter: cmd.DetonateAfter}
			} else {
				cmds[id] = TorpedoOrderSnapshot{Kind: "STEER", Steer: cmd.Steer.String()}
			}
		}
	}
	return OrdersSnapshot{
		Movement:        o.Movement.String(),
		Rotation:        o.Rotation.String(),
		WeaponAction:    o.WeaponAction.String(),
		TorpedoCommands: cmds,
	}
}

// NewSnapshot builds one turn's recorded frame from the post-step world
// state, the orders that produced it, the events it emitted, and each
// side's opaque thinking-tokens (§4.8: "No thinking-tokens" leak into
// the observation projector — they belong only here, in the replay
// record).
func NewSnapshot(state *duel.WorldState, ordersA, ordersB duel.Orders, events []duel.Event, thinkingA, thinkingB string) Snapshot {
	torps := make([]TorpedoSnapshot, 0, len(state.Torpedoes))
	for _, t := range state.Torpedoes {
		torps = append(torps, snapshotTorpedo(t))
	}
	zones := make([]BlastZoneSnapshot, 0, len(state.BlastZones))
	for _, z := range state.BlastZones {
		zones = append(zones, snapshotBlastZone(z))
	}
	return Snapshot{
		Turn:       state.Turn,
		ShipA:      snapshotShip(&state.ShipA),
		ShipB:      snapshotShip(&state.ShipB),
		Torpedoes:  torps,
		BlastZones: zones,
		OrdersA:    snapshotOrders(ordersA),
		OrdersB:    snapshotOrders(ordersB),
		ThinkingA:  thinkingA,
		ThinkingB:  thinkingB,
		Events:     events,
	}
}
