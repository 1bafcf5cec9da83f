package duel

import "math"

// Movement is the 9-valued movement-direction enum (§4.2). It is decoupled
// from heading: it only selects the offset applied to the current heading
// each substep.
type Movement int

const (
	Forward Movement = iota
	ForwardLeft
	Left
	BackwardLeft
	Backward
	BackwardRight
	Right
	ForwardRight
	Stop
)

// movementOffsets maps each Movement to its angular offset from heading, in
// radians. Stop has no offset; its velocity is always zero regardless.
// Grounded on game.ShipData's table-of-constants idiom (server's per-enum
// lookup tables), generalized from ship stats to movement offsets.
var movementOffsets = map[Movement]float64{
	Forward:       0,
	ForwardLeft:   -math.Pi / 4,
	Left:          -math.Pi / 2,
	BackwardLeft:  -3 * math.Pi / 4,
	Backward:      math.Pi,
	BackwardRight: 3 * math.Pi / 4,
	Right:         math.Pi / 2,
	ForwardRight:  math.Pi / 4,
	Stop:          0,
}

// Offset returns the angular offset from heading for this movement enum.
func (m Movement) Offset() float64 {
	return movementOffsets[m]
}

// Valid reports whether m is one of the nine defined movement values.
func (m Movement) Valid() bool {
	return m >= Forward && m <= Stop
}

// ParseMovement converts one of the 9 enumerated names (§6) to a
// Movement, for config/order documents that spell enums as strings
// rather than small integers.
func ParseMovement(s string) (Movement, bool) {
	for m := Forward; m <= Stop; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

func (m Movement) String() string {
	switch m {
	case Forward:
		return "FORWARD"
	case ForwardLeft:
		return "FORWARD_LEFT"
	case Left:
		return "LEFT"
	case BackwardLeft:
		return "BACKWARD_LEFT"
	case Backward:
		return "BACKWARD"
	case BackwardRight:
		return "BACKWARD_RIGHT"
	case Right:
		return "RIGHT"
	case ForwardRight:
		return "FORWARD_RIGHT"
	case Stop:
		return "STOP"
	default:
		return "UNKNOWN_MOVEMENT"
	}
}

// Rotation is the 5-valued rotation enum (§4.2): how fast, and which way,
// a ship or torpedo turns this decision interval.
type Rotation int

const (
	RotateNone Rotation = iota
	SoftLeft
	SoftRight
	HardLeft
	HardRight
)

// Valid reports whether r is one of the five defined rotation values.
func (r Rotation) Valid() bool {
	return r >= RotateNone && r <= HardRight
}

// ParseRotation converts one of the 5 enumerated names (§6) to a
// Rotation, mirroring ParseMovement.
func ParseRotation(s string) (Rotation, bool) {
	for r := RotateNone; r <= HardRight; r++ {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}

func (r Rotation) String() string {
	switch r {
	case RotateNone:
		return "NONE"
	case SoftLeft:
		return "SOFT_LEFT"
	case SoftRight:
		return "SOFT_RIGHT"
	case HardLeft:
		return "HARD_LEFT"
	case HardRight:
		return "HARD_RIGHT"
	default:
		return "UNKNOWN_ROTATION"
	}
}

// RateRadiansPerSecond returns the signed turn rate for r given the
// soft/hard magnitudes (radians/second) from config. Positive is
// counter-clockwise (§6 coordinate frame).
func (r Rotation) RateRadiansPerSecond(softRate, hardRate float64) float64 {
	switch r {
	case SoftLeft:
		return softRate
	case SoftRight:
		return -softRate
	case HardLeft:
		return hardRate
	case HardRight:
		return -hardRate
	default:
		return 0
	}
}

// PhaserMode selects which arc/range/damage/cooldown profile a ship's
// phaser currently uses (§3).
type PhaserMode int

const (
	PhaserWide PhaserMode = iota
	PhaserFocused
)

func (m PhaserMode) String() string {
	if m == PhaserFocused {
		return "FOCUSED"
	}
	return "WIDE"
}

// WeaponAction is the tagged sum of one-shot weapon actions evaluated once
// at turn intake (§4.1 step 2, §9 "dynamic-dispatch weapon actions").
type WeaponAction int

const (
	MaintainConfig WeaponAction = iota
	ReconfigureWide
	ReconfigureFocused
	LaunchTorpedo
)

// Valid reports whether a is one of the four defined weapon actions.
func (a WeaponAction) Valid() bool {
	return a >= MaintainConfig && a <= LaunchTorpedo
}

func (a WeaponAction) String() string {
	switch a {
	case MaintainConfig:
		return "MAINTAIN_CONFIG"
	case ReconfigureWide:
		return "RECONFIGURE_WIDE"
	case ReconfigureFocused:
		return "RECONFIGURE_FOCUSED"
	case LaunchTorpedo:
		return "LAUNCH_TORPEDO"
	default:
		return "UNKNOWN_WEAPON_ACTION"
	}
}

// BlastPhase is the three-phase blast-zone lifecycle state (§4.6).
type BlastPhase int

const (
	Expansion BlastPhase = iota
	Persistence
	Dissipation
)

func (p BlastPhase) String() string {
	switch p {
	case Expansion:
		return "EXPANSION"
	case Persistence:
		return "PERSISTENCE"
	case Dissipation:
		return "DISSIPATION"
	default:
		return "UNKNOWN_PHASE"
	}
}

// Side identifies which of the two ship slots an entity belongs to.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideB {
		return "B"
	}
	return "A"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}
