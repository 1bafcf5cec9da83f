// Package config loads and validates the structured configuration
// document spec §6 describes, using Viper the way
// ChristopherRabotin/smd's config.go does: point it at a config file
// name and search path, read it in, and pull values out by key. Unlike
// the teacher's package-level viper singleton, Load uses its own
// viper.New() instance so a test (or a match driver juggling several
// configs) can load more than one document without global state
// leaking between them.
package config

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/chknd1nner/duelcore/duel"
)

// enumKeyedMapHook lets the rotation/movement AE-cost tables in the
// config document use the enum's string name as a map key (e.g.
// "SOFT_LEFT": 1.0) instead of requiring the raw integer ordinal, since
// §6 describes these as "rates... indexed by the direction/rotation
// enums" rather than by number.
func enumKeyedMapHook() mapstructure.DecodeHookFunc {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.Map {
			return data, nil
		}
		raw, ok := data.(map[string]interface{})
		if !ok {
			return data, nil
		}
		switch to {
		case reflect.TypeOf(map[duel.Movement]float64{}):
			out := make(map[duel.Movement]float64, len(raw))
			for k, v := range raw {
				m, ok := duel.ParseMovement(k)
				if !ok {
					return nil, fmt.Errorf("config: unknown movement key %q", k)
				}
				f, err := toFloat64(v)
				if err != nil {
					return nil, err
				}
				out[m] = f
			}
			return out, nil
		case reflect.TypeOf(map[duel.Rotation]float64{}):
			out := make(map[duel.Rotation]float64, len(raw))
			for k, v := range raw {
				r, ok := duel.ParseRotation(k)
				if !ok {
					return nil, fmt.Errorf("config: unknown rotation key %q", k)
				}
				f, err := toFloat64(v)
				if err != nil {
					return nil, err
				}
				out[r] = f
			}
			return out, nil
		}
		return data, nil
	}
}

func toFloat64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("config: expected a number, got %T", v)
	}
}

// Load reads a configuration document named configName from the given
// search paths (Viper resolves the extension; YAML, TOML, and JSON are
// all acceptable per §6's "a structured document"), unmarshals it into
// a duel.Config, and validates it. A ConfigInvalid report aborts match
// construction per §7, so Load returns *duel.ConfigInvalidError instead
// of wrapping it — callers that only care whether the match can start
// should type-assert against that directly.
func Load(configName string, searchPaths ...string) (*duel.Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", configName, err)
	}
	return FromViper(v)
}

var decodeHookOption = viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToTimeDurationHookFunc(),
	enumKeyedMapHook(),
))

// FromViper unmarshals and validates a duel.Config from an
// already-populated Viper instance, so a caller that builds config from
// environment variables or flags (viper.BindEnv / viper.BindPFlag)
// instead of a file can still reuse the same validation path.
func FromViper(v *viper.Viper) (*duel.Config, error) {
	var cfg duel.Config
	if err := v.Unmarshal(&cfg, decodeHookOption); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}
	return &cfg, nil
}

// Default returns the literal default configuration values called out
// throughout spec §8's scenarios (15s decision interval, 0.1s physics
// tick, base_speed=3, etc.), useful as a starting point for a match
// driver's own config file or for tests that want the scenario-default
// numbers without a file on disk.
func Default() *duel.Config {
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
				duel.Forward:       2,
				duel.ForwardLeft:   2,
				duel.Left:          2,
				duel.BackwardLeft:  2,
				duel.Backward:      2,
				duel.BackwardRight: 2,
				duel.Right:         2,
				duel.ForwardRight:  2,
				duel.Stop:          0,
			},
		},
		Phaser: duel.PhaserConfig{
			Wide:    duel.PhaserProfile{ArcDegrees: 120, RangeUnits: 300, Damage: 5, CooldownSeconds: 3.5},
			Focused: duel.PhaserProfile{ArcDegrees: 20, RangeUnits: 600, Damage: 15, CooldownSeconds: 5},
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
