package duel

import "testing"

func TestShipAlive(t *testing.T) {
	tests := []struct {
		name      string
		shields   float64
		destroyed bool
		want      bool
	}{
		{"full shields, not destroyed", 100, false, true},
		{"zero shields", 0, false, false},
		{"negative shields defensively", -5, false, false},
		{"destroyed flag overrides positive shields", 50, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Ship{Shields: tt.shields, Destroyed: tt.destroyed}
			if got := s.Alive(); got != tt.want {
				t.Errorf("Alive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShipShieldsInt(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"exact integer", 80, 80},
		{"rounds down", 79.4, 79},
		{"rounds up", 79.5, 80},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Ship{Shields: tt.in}
			if got := s.ShieldsInt(); got != tt.want {
				t.Errorf("ShieldsInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShipApplyDamage(t *testing.T) {
	tests := []struct {
		name          string
		startShields  float64
		damage        float64
		wantShields   float64
		wantDestroyed bool
	}{
		{"partial damage", 100, 30, 70, false},
		{"exact lethal damage", 50, 50, 0, true},
		{"overkill clamps to zero", 20, 45, 0, true},
		{"zero damage is a no-op", 100, 0, 100, false},
		{"negative damage is a no-op", 100, -10, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Ship{Shields: tt.startShields}
			s.ApplyDamage(tt.damage)
			if s.Shields != tt.wantShields {
				t.Errorf("Shields = %v, want %v", s.Shields, tt.wantShields)
			}
			if s.Destroyed != tt.wantDestroyed {
				t.Errorf("Destroyed = %v, want %v", s.Destroyed, tt.wantDestroyed)
			}
		})
	}
}

func TestShipApplyDamage_NeverIncreasesShields(t *testing.T) {
	s := &Ship{Shields: 60}
	s.ApplyDamage(10)
	s.ApplyDamage(5)
	if s.Shields != 45 {
		t.Fatalf("Shields = %v, want 45 (monotonically decreasing)", s.Shields)
	}
	if s.Shields > 60 {
		t.Errorf("shields increased across calls, violating monotonicity")
	}
}

func TestShipClampShields(t *testing.T) {
	tests := []struct {
		name          string
		shields       float64
		max           float64
		wantShields   float64
		wantDestroyed bool
	}{
		{"within range unchanged", 50, 100, 50, false},
		{"negative clamps to zero and destroys", -10, 100, 0, true},
		{"above max clamps to max", 150, 100, 100, false},
		{"exactly zero destroys", 0, 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Ship{Shields: tt.shields}
			s.ClampShields(tt.max)
			if s.Shields != tt.wantShields {
				t.Errorf("Shields = %v, want %v", s.Shields, tt.wantShields)
			}
			if s.Destroyed != tt.wantDestroyed {
				t.Errorf("Destroyed = %v, want %v", s.Destroyed, tt.wantDestroyed)
			}
		})
	}
}
