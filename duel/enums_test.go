package duel

import (
	"math"
	"testing"
)

func TestMovementValidAndParse(t *testing.T) {
	tests := []struct {
		name string
		m    Movement
		want bool
	}{
		{"forward is valid", Forward, true},
		{"stop is valid", Stop, true},
		{"one past stop is invalid", Stop + 1, false},
		{"negative is invalid", Movement(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Valid(); got != tt.want {
				t.Errorf("%v.Valid() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}

	for m := Forward; m <= Stop; m++ {
		parsed, ok := ParseMovement(m.String())
		if !ok || parsed != m {
			t.Errorf("ParseMovement(%q) = (%v, %v), want (%v, true)", m.String(), parsed, ok, m)
		}
	}

	if _, ok := ParseMovement("NOT_A_MOVEMENT"); ok {
		t.Error("ParseMovement(garbage) reported ok=true")
	}
}

func TestMovementOffset(t *testing.T) {
	tests := []struct {
		name string
		m    Movement
		want float64
	}{
		{"forward has no offset", Forward, 0},
		{"left is a quarter turn", Left, -math.Pi / 2},
		{"backward is half a turn", Backward, math.Pi},
		{"stop has no offset", Stop, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Offset(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%v.Offset() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestRotationValidAndParse(t *testing.T) {
	tests := []struct {
		name string
		r    Rotation
		want bool
	}{
		{"none is valid", RotateNone, true},
		{"hard right is valid", HardRight, true},
		{"one past hard right is invalid", HardRight + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.want {
				t.Errorf("%v.Valid() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}

	for r := RotateNone; r <= HardRight; r++ {
		parsed, ok := ParseRotation(r.String())
		if !ok || parsed != r {
			t.Errorf("ParseRotation(%q) = (%v, %v), want (%v, true)", r.String(), parsed, ok, r)
		}
	}

	if _, ok := ParseRotation("NOT_A_ROTATION"); ok {
		t.Error("ParseRotation(garbage) reported ok=true")
	}
}

func TestRotationRateRadiansPerSecond(t *testing.T) {
	const soft, hard = 1.0, 3.0
	tests := []struct {
		name string
		r    Rotation
		want float64
	}{
		{"none yields zero rate", RotateNone, 0},
		{"soft left is positive (ccw)", SoftLeft, soft},
		{"soft right is negative (cw)", SoftRight, -soft},
		{"hard left is positive and larger", HardLeft, hard},
		{"hard right is negative and larger", HardRight, -hard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.RateRadiansPerSecond(soft, hard); got != tt.want {
				t.Errorf("%v.RateRadiansPerSecond(%v, %v) = %v, want %v", tt.r, soft, hard, got, tt.want)
			}
		})
	}
}

func TestWeaponActionValid(t *testing.T) {
	tests := []struct {
		name string
		a    WeaponAction
		want bool
	}{
		{"maintain config is valid", MaintainConfig, true},
		{"launch torpedo is valid", LaunchTorpedo, true},
		{"one past launch torpedo is invalid", LaunchTorpedo + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Valid(); got != tt.want {
				t.Errorf("%v.Valid() = %v, want %v", tt.a, got, tt.want)
			}
		})
	}
}

func TestSideOpponent(t *testing.T) {
	if SideA.Opponent() != SideB {
		t.Errorf("SideA.Opponent() = %v, want SideB", SideA.Opponent())
	}
	if SideB.Opponent() != SideA {
		t.Errorf("SideB.Opponent() = %v, want SideA", SideB.Opponent())
	}
}

func TestEnumStringersCoverAllValues(t *testing.T) {
	for m := Forward; m <= Stop; m++ {
		if got := m.String(); got == "UNKNOWN_MOVEMENT" {
			t.Errorf("Movement(%d).String() fell through to unknown", int(m))
		}
	}
	for r := RotateNone; r <= HardRight; r++ {
		if got := r.String(); got == "UNKNOWN_ROTATION" {
			t.Errorf("Rotation(%d).String() fell through to unknown", int(r))
		}
	}
	for a := MaintainConfig; a <= LaunchTorpedo; a++ {
		if got := a.String(); got == "UNKNOWN_WEAPON_ACTION" {
			t.Errorf("WeaponAction(%d).String() fell through to unknown", int(a))
		}
	}
	for p := Expansion; p <= Dissipation; p++ {
		if got := p.String(); got == "UNKNOWN_PHASE" {
			t.Errorf("BlastPhase(%d).String() fell through to unknown", int(p))
		}
	}
}
