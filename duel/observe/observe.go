// Package observe projects a WorldState into the per-agent view the
// decision-making collaborator consumes (spec §4.8). It never exposes
// replay-only state (thinking-tokens, opponent memory) and always
// renders from the requesting ship's own side.
//
// Grounded on server/handler_utils.go's per-client state formatting,
// which narrows the full authoritative GameState down to what one
// connected player's client is sent; here narrowed instead to the
// field list §4.8 names.
package observe

import "github.com/chknd1nner/duelcore/duel"

// ShipView is the full state of one ship as seen by either side (§4.8:
// "own-ship full state... enemy-ship full state (same fields)" — the
// projector makes no distinction in shape between self and enemy).
type ShipView struct {
	ID                      string    `json:"id"`
	Position                duel.Vec2 `json:"position"`
	Velocity                duel.Vec2 `json:"velocity"`
	Heading                 float64   `json:"heading"`
	Shields                 int       `json:"shields"`
	Energy                  float64   `json:"energy"`
	PhaserMode              string    `json:"phaserMode"`
	PhaserCooldownRemaining float64   `json:"phaserCooldownRemaining"`
	Alive                   bool      `json:"alive"`
}

// TorpedoView is one visible in-flight torpedo (§4.8: "list of visible
// torpedoes with positions/velocities/owner").
type TorpedoView struct {
	ID       string    `json:"id"`
	Owner    string    `json:"owner"`
	Position duel.Vec2 `json:"position"`
	Velocity duel.Vec2 `json:"velocity"`
}

// BlastZoneView is one visible blast zone (§4.8: "center/radius/phase").
type BlastZoneView struct {
	ID            string  `json:"id"`
	Center        duel.Vec2 `json:"center"`
	CurrentRadius float64 `json:"currentRadius"`
	Phase         string  `json:"phase"`
}

// Observation is the complete document handed to one ship's decision
// collaborator for one decision interval (§4.8, §6 "a language-neutral
// structured document"). It deliberately carries no thinking-tokens and
// no field that would leak the opposing side's orders or the replay
// recorder's internal bookkeeping.
type Observation struct {
	Turn       int             `json:"turn"`
	Self       ShipView        `json:"self"`
	Enemy      ShipView        `json:"enemy"`
	Torpedoes  []TorpedoView   `json:"torpedoes"`
	BlastZones []BlastZoneView `json:"blastZones"`
}

// Project builds the Observation for the given side from a WorldState.
// It is a pure read: nothing about state is mutated, and calling it
// twice on the same state and side yields identical output.
func Project(state *duel.WorldState, side duel.Side) Observation {
	self := state.Ship(side)
	enemy := state.Ship(side.Opponent())

	torps := make([]TorpedoView, 0, len(state.Torpedoes))
	for _, t := range state.Torpedoes {
		torps = append(torps, TorpedoView{
			ID:       t.ID,
			Owner:    t.Owner,
			Position: t.Position,
			Velocity: t.Velocity,
		})
	}

	zones := make([]BlastZoneView, 0, len(state.BlastZones))
	for _, z := range state.BlastZones {
		zones = append(zones, BlastZoneView{
			ID:            z.ID,
			Center:        z.Center,
			CurrentRadius: z.CurrentRadius,
			Phase:         z.Phase.String(),
		})
	}

	return Observation{
		Turn:       state.Turn,
		Self:       projectShip(self),
		Enemy:      projectShip(enemy),
		Torpedoes:  torps,
		BlastZones: zones,
	}
}

func projectShip(s *duel.Ship) ShipView {
	return ShipView{
		ID:                      s.ID,
		Position:                s.Position,
		Velocity:                s.Velocity,
		Heading:                 s.Heading,
		Shields:                 s.ShieldsInt(),
		Energy:                  s.Energy,
		PhaserMode:              s.PhaserMode.String(),
		PhaserCooldownRemaining: s.PhaserCooldownRemaining,
		Alive:                   s.Alive(),
	}
}
