package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"

	"github.com/chknd1nner/duelcore/duel"
)

const sampleYAML = `
simulation:
  decision_interval_seconds: 15
  physics_tick_rate_seconds: 0.1
ship:
  starting_shields: 100
  starting_ae: 1000
  max_ae: 1000
  ae_regen_per_second: 50
  base_speed_units_per_second: 3
  collision_damage: 10
rotation:
  soft_turn_degrees_per_second: 1
  hard_turn_degrees_per_second: 3
  ae_cost_per_second:
    NONE: 0
    SOFT_LEFT: 1
    SOFT_RIGHT: 1
    HARD_LEFT: 3
    HARD_RIGHT: 3
movement:
  ae_cost_per_second:
    FORWARD: 2
    FORWARD_LEFT: 2
    LEFT: 2
    BACKWARD_LEFT: 2
    BACKWARD: 2
    BACKWARD_RIGHT: 2
    RIGHT: 2
    FORWARD_RIGHT: 2
    STOP: 0
phaser:
  wide:
    arc_degrees: 120
    range_units: 300
    damage: 5
    cooldown_seconds: 3.5
  focused:
    arc_degrees: 20
    range_units: 600
    damage: 15
    cooldown_seconds: 5
torpedo:
  launch_cost_ae: 50
  max_ae_capacity: 10
  speed_units_per_second: 20
  max_active_per_ship: 4
  blast_damage_multiplier: 2
  expansion_seconds: 5
  persistence_seconds: 60
  dissipation_seconds: 5
  max_radius: 50
  fuel_burn_per_second: 1
arena:
  width_units: 10000
  height_units: 10000
  spawn_distance_units: 500
`

func TestFromViper_ValidDocument(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBufferString(sampleYAML)); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper: %v", err)
	}
	if cfg.Simulation.DecisionIntervalSeconds != 15 {
		t.Errorf("decision_interval_seconds = %v, want 15", cfg.Simulation.DecisionIntervalSeconds)
	}
	if got := cfg.RotationRates.AECostPerSecond[duel.SoftLeft]; got != 1 {
		t.Errorf("rotation.ae_cost_per_second[SOFT_LEFT] = %v, want 1", got)
	}
	if got := cfg.Movement.AECostPerSecond[duel.Forward]; got != 2 {
		t.Errorf("movement.ae_cost_per_second[FORWARD] = %v, want 2", got)
	}
	if got := cfg.Phaser.Focused.Damage; got != 15 {
		t.Errorf("phaser.focused.damage = %v, want 15", got)
	}
}

func TestFromViper_InvalidDocumentAggregatesErrors(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBufferString("simulation:\n  decision_interval_seconds: -1\n")); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	_, err := FromViper(v)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	cerr, ok := err.(*duel.ConfigInvalidError)
	if !ok {
		t.Fatalf("expected *duel.ConfigInvalidError, got %T", err)
	}
	if len(cerr.Errors) < 2 {
		t.Errorf("expected multiple aggregated field errors from a near-empty document, got %d", len(cerr.Errors))
	}
}

func TestDefault_PassesValidation(t *testing.T) {
	cfg := Default()
	if verr := cfg.Validate(); verr != nil {
		t.Fatalf("Default() config failed validation: %v", verr)
	}
	if cfg.SubstepCount() != 150 {
		t.Errorf("SubstepCount() = %d, want 150", cfg.SubstepCount())
	}
}
