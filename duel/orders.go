package duel

// TorpedoOrder is a tagged sum, Steering(enum) | DetonateAfter(seconds),
// attached to a specific in-flight torpedo for the coming decision
// interval (§4.1 step 1, §9 "orders-with-optional-fields": "do not
// overload a string").
type TorpedoOrder struct {
	// Kind selects which field below is meaningful.
	Kind TorpedoOrderKind
	// Steer is valid when Kind == TorpedoOrderSteer.
	Steer Rotation
	// DetonateAfter is valid when Kind == TorpedoOrderDetonate; seconds
	// from the start of this decision interval, validated to
	// [0, decision_interval] at intake (§4.1 step 1).
	DetonateAfter float64
}

// TorpedoOrderKind discriminates TorpedoOrder's tagged union.
type TorpedoOrderKind int

const (
	TorpedoOrderSteer TorpedoOrderKind = iota
	TorpedoOrderDetonate
)

// Orders is one ship's order packet for a decision interval (§6).
type Orders struct {
	Movement     Movement
	Rotation     Rotation
	WeaponAction WeaponAction
	// TorpedoCommands maps a torpedo ID (owned by the issuing ship) to the
	// steering or detonation command to apply this interval.
	TorpedoCommands map[string]TorpedoOrder
}

// NoOpOrders is substituted for an order packet that fails validation
// (§7 OrderInvalid: "Substitute a no-op...and emit an invalid_order
// event").
func NoOpOrders() Orders {
	return Orders{
		Movement:     Stop,
		Rotation:     RotateNone,
		WeaponAction: MaintainConfig,
	}
}

// Sanitize validates an order packet's enums and torpedo commands,
// returning a corrected copy and the list of problems found so the
// caller can emit invalid_order events. It never returns an error: per
// §7, OrderInvalid is recoverable by substitution, not a Go error value.
func (o Orders) Sanitize(decisionInterval float64) (Orders, []string) {
	var problems []string
	out := o

	if !out.Movement.Valid() {
		problems = append(problems, "movement: unknown enum value")
		out.Movement = Stop
	}
	if !out.Rotation.Valid() {
		problems = append(problems, "rotation: unknown enum value")
		out.Rotation = RotateNone
	}
	if !out.WeaponAction.Valid() {
		problems = append(problems, "weapon_action: unknown enum value")
		out.WeaponAction = MaintainConfig
	}

	if out.TorpedoCommands != nil {
		cleaned := make(map[string]TorpedoOrder, len(out.TorpedoCommands))
		for id, cmd := range out.TorpedoCommands {
			switch cmd.Kind {
			case TorpedoOrderSteer:
				if !cmd.Steer.Valid() {
					problems = append(problems, "torpedo_commands["+id+"]: unknown steering enum value")
					continue
				}
				cleaned[id] = cmd
			case TorpedoOrderDetonate:
				if cmd.DetonateAfter < 0 || cmd.DetonateAfter > decisionInterval {
					problems = append(problems, "torpedo_commands["+id+"]: detonate_after out of range")
					continue
				}
				cleaned[id] = cmd
			default:
				problems = append(problems, "torpedo_commands["+id+"]: unknown command kind")
			}
		}
		out.TorpedoCommands = cleaned
	}

	return out, problems
}
