package duel

import "fmt"

// Config is the structured document described in spec §6. The core reads
// it once at match construction and treats it as immutable thereafter
// ("the core reads it once and treats it as immutable for a match").
//
// Loading this struct from a file or environment (YAML/TOML/env via
// Viper) is the `duel/config` package's concern (SPEC_FULL §10.4); this
// type and its Validate method stay free of I/O so the core itself has
// "no hidden state; no I/O" (§4.1 Step Driver contract).
type Config struct {
	Simulation    SimulationConfig `mapstructure:"simulation"`
	Ship          ShipConfig       `mapstructure:"ship"`
	RotationRates RotationConfig   `mapstructure:"rotation"`
	Movement      MovementConfig   `mapstructure:"movement"`
	Phaser        PhaserConfig     `mapstructure:"phaser"`
	Torpedo       TorpedoConfig    `mapstructure:"torpedo"`
	Arena         ArenaConfig      `mapstructure:"arena"`
	// WeaponHeat is an optional block, off by default: spec.md's own
	// scenario 3 assumes pure cooldown-gated firing, so the zero value
	// (Enabled: false) must reproduce exactly that (SPEC_FULL §12 item 1).
	WeaponHeat WeaponHeatConfig `mapstructure:"weapon_heat"`
}

type SimulationConfig struct {
	DecisionIntervalSeconds float64 `mapstructure:"decision_interval_seconds"`
	PhysicsTickSeconds      float64 `mapstructure:"physics_tick_rate_seconds"`
}

type ShipConfig struct {
	StartingShields         int     `mapstructure:"starting_shields"`
	StartingAE              float64 `mapstructure:"starting_ae"`
	MaxAE                   float64 `mapstructure:"max_ae"`
	AERegenPerSecond        float64 `mapstructure:"ae_regen_per_second"`
	BaseSpeedUnitsPerSecond float64 `mapstructure:"base_speed_units_per_second"`
	CollisionDamage         float64 `mapstructure:"collision_damage"`
}

type RotationConfig struct {
	SoftTurnDegreesPerSecond float64 `mapstructure:"soft_turn_degrees_per_second"`
	HardTurnDegreesPerSecond float64 `mapstructure:"hard_turn_degrees_per_second"`
	// AECostPerSecond is indexed by Rotation; RotateNone's entry is
	// always treated as zero regardless of what is configured there
	// (§4.3: "NONE has zero rotation cost").
	AECostPerSecond map[Rotation]float64 `mapstructure:"ae_cost_per_second"`
}

// MovementConfig maps each of the nine Movement values to its AE cost per
// second (§4.3, §6). Stop's entry is always treated as zero.
type MovementConfig struct {
	AECostPerSecond map[Movement]float64 `mapstructure:"ae_cost_per_second"`
}

type PhaserProfile struct {
	ArcDegrees      float64 `mapstructure:"arc_degrees"`
	RangeUnits      float64 `mapstructure:"range_units"`
	Damage          float64 `mapstructure:"damage"`
	CooldownSeconds float64 `mapstructure:"cooldown_seconds"`
}

type PhaserConfig struct {
	Wide    PhaserProfile `mapstructure:"wide"`
	Focused PhaserProfile `mapstructure:"focused"`
}

type TorpedoConfig struct {
	LaunchCostAE          float64 `mapstructure:"launch_cost_ae"`
	MaxAECapacity         float64 `mapstructure:"max_ae_capacity"`
	SpeedUnitsPerSecond   float64 `mapstructure:"speed_units_per_second"`
	MaxActivePerShip      int     `mapstructure:"max_active_per_ship"`
	BlastDamageMultiplier float64 `mapstructure:"blast_damage_multiplier"`
	ExpansionSeconds      float64 `mapstructure:"expansion_seconds"`
	PersistenceSeconds    float64 `mapstructure:"persistence_seconds"`
	DissipationSeconds    float64 `mapstructure:"dissipation_seconds"`
	MaxRadius             float64 `mapstructure:"max_radius"`
	// FuelBurnPerSecond is the rate at which a torpedo's fuel (ae
	// remaining) is consumed in flight; §4.5 defaults this to 1/sec but
	// §6 leaves it configurable ("or configured burn", §4.1 step 3c).
	FuelBurnPerSecond float64 `mapstructure:"fuel_burn_per_second"`
}

// WeaponHeatConfig gates the optional overheat-throttle mechanic
// (SPEC_FULL §12 item 1), mirrored from the teacher's WTemp/WpnCool/
// MaxWpnTemp/EngineOverheat gauges: a shooter that fires accumulates
// heat, heat bleeds off continuously, and firing is refused once heat
// reaches the configured ceiling — independent of, and in addition to,
// the phaser's own cooldown_seconds gate.
type WeaponHeatConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	HeatPerShot   float64 `mapstructure:"heat_per_shot"`
	CoolPerSecond float64 `mapstructure:"cool_per_second"`
	MaxHeat       float64 `mapstructure:"max_heat"`
}

type ArenaConfig struct {
	WidthUnits         float64 `mapstructure:"width_units"`
	HeightUnits        float64 `mapstructure:"height_units"`
	SpawnDistanceUnits float64 `mapstructure:"spawn_distance_units"`
}

// FieldError is one aggregated configuration violation (§7
// "ConfigInvalid...a report is an aggregated list of
// (field_path, constraint, actual_value) entries").
type FieldError struct {
	FieldPath  string
	Constraint string
	Actual     interface{}
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s (actual=%v)", e.FieldPath, e.Constraint, e.Actual)
}

// ConfigInvalidError aggregates every FieldError found by Validate. The
// core refuses to initialize a match when this is non-empty (§7).
type ConfigInvalidError struct {
	Errors []FieldError
}

func (e *ConfigInvalidError) Error() string {
	msg := fmt.Sprintf("config invalid: %d field(s) failed validation", len(e.Errors))
	for _, fe := range e.Errors {
		msg += "\n  - " + fe.String()
	}
	return msg
}

// Validate checks every constraint in spec §6 and returns every violation
// found, not a first-exception bail-out (§7). A nil return means the
// config may be used to construct a match.
func (c *Config) Validate() *ConfigInvalidError {
	var errs []FieldError
	add := func(path, constraint string, actual interface{}) {
		errs = append(errs, FieldError{path, constraint, actual})
	}

	if c.Simulation.DecisionIntervalSeconds <= 0 {
		add("simulation.decision_interval_seconds", "must be > 0", c.Simulation.DecisionIntervalSeconds)
	}
	if c.Simulation.PhysicsTickSeconds <= 0 {
		add("simulation.physics_tick_rate_seconds", "must be > 0", c.Simulation.PhysicsTickSeconds)
	}
	if c.Simulation.PhysicsTickSeconds > 0 && c.Simulation.DecisionIntervalSeconds > 0 &&
		c.Simulation.PhysicsTickSeconds > c.Simulation.DecisionIntervalSeconds {
		add("simulation.physics_tick_rate_seconds", "must be <= decision_interval_seconds", c.Simulation.PhysicsTickSeconds)
	}

	if c.Ship.StartingShields <= 0 {
		add("ship.starting_shields", "must be > 0", c.Ship.StartingShields)
	}
	if c.Ship.StartingAE <= 0 {
		add("ship.starting_ae", "must be > 0", c.Ship.StartingAE)
	}
	if c.Ship.MaxAE < c.Ship.StartingAE {
		add("ship.max_ae", "must be >= ship.starting_ae", c.Ship.MaxAE)
	}
	if c.Ship.AERegenPerSecond < 0 {
		add("ship.ae_regen_per_second", "must be >= 0", c.Ship.AERegenPerSecond)
	}
	if c.Ship.BaseSpeedUnitsPerSecond <= 0 {
		add("ship.base_speed_units_per_second", "must be > 0", c.Ship.BaseSpeedUnitsPerSecond)
	}
	if c.Ship.CollisionDamage < 0 {
		add("ship.collision_damage", "must be >= 0", c.Ship.CollisionDamage)
	}

	if c.RotationRates.SoftTurnDegreesPerSecond < 0 {
		add("rotation.soft_turn_degrees_per_second", "must be >= 0", c.RotationRates.SoftTurnDegreesPerSecond)
	}
	if c.RotationRates.HardTurnDegreesPerSecond < 0 {
		add("rotation.hard_turn_degrees_per_second", "must be >= 0", c.RotationRates.HardTurnDegreesPerSecond)
	}
	for _, r := range []Rotation{RotateNone, SoftLeft, SoftRight, HardLeft, HardRight} {
		if rate, ok := c.RotationRates.AECostPerSecond[r]; ok && rate < 0 {
			add(fmt.Sprintf("rotation.ae_cost_per_second[%s]", r), "must be >= 0", rate)
		}
	}

	for _, m := range []Movement{Forward, ForwardLeft, Left, BackwardLeft, Backward, BackwardRight, Right, ForwardRight, Stop} {
		if rate, ok := c.Movement.AECostPerSecond[m]; ok && rate < 0 {
			add(fmt.Sprintf("movement.ae_cost_per_second[%s]", m), "must be >= 0", rate)
		}
	}

	validatePhaser := func(name string, p PhaserProfile) {
		if p.ArcDegrees <= 0 || p.ArcDegrees > 360 {
			add("phaser."+name+".arc_degrees", "must be in (0, 360]", p.ArcDegrees)
		}
		if p.RangeUnits <= 0 {
			add("phaser."+name+".range_units", "must be > 0", p.RangeUnits)
		}
		if p.Damage <= 0 {
			add("phaser."+name+".damage", "must be > 0", p.Damage)
		}
		if p.CooldownSeconds < 0 {
			add("phaser."+name+".cooldown_seconds", "must be >= 0", p.CooldownSeconds)
		}
	}
	validatePhaser("wide", c.Phaser.Wide)
	validatePhaser("focused", c.Phaser.Focused)

	if c.Torpedo.LaunchCostAE <= 0 {
		add("torpedo.launch_cost_ae", "must be > 0", c.Torpedo.LaunchCostAE)
	}
	if c.Torpedo.MaxAECapacity <= 0 {
		add("torpedo.max_ae_capacity", "must be > 0", c.Torpedo.MaxAECapacity)
	}
	if c.Torpedo.SpeedUnitsPerSecond <= 0 {
		add("torpedo.speed_units_per_second", "must be > 0", c.Torpedo.SpeedUnitsPerSecond)
	}
	if c.Torpedo.MaxActivePerShip <= 0 {
		add("torpedo.max_active_per_ship", "must be > 0", c.Torpedo.MaxActivePerShip)
	}
	if c.Torpedo.BlastDamageMultiplier <= 0 {
		add("torpedo.blast_damage_multiplier", "must be > 0", c.Torpedo.BlastDamageMultiplier)
	}
	if c.Torpedo.ExpansionSeconds <= 0 {
		add("torpedo.expansion_seconds", "must be > 0", c.Torpedo.ExpansionSeconds)
	}
	if c.Torpedo.PersistenceSeconds <= 0 {
		add("torpedo.persistence_seconds", "must be > 0", c.Torpedo.PersistenceSeconds)
	}
	if c.Torpedo.DissipationSeconds <= 0 {
		add("torpedo.dissipation_seconds", "must be > 0", c.Torpedo.DissipationSeconds)
	}
	if c.Torpedo.MaxRadius <= 0 {
		add("torpedo.max_radius", "must be > 0", c.Torpedo.MaxRadius)
	}
	if c.Torpedo.FuelBurnPerSecond <= 0 {
		add("torpedo.fuel_burn_per_second", "must be > 0", c.Torpedo.FuelBurnPerSecond)
	}

	if c.WeaponHeat.Enabled {
		if c.WeaponHeat.HeatPerShot <= 0 {
			add("weapon_heat.heat_per_shot", "must be > 0 when weapon_heat.enabled", c.WeaponHeat.HeatPerShot)
		}
		if c.WeaponHeat.CoolPerSecond < 0 {
			add("weapon_heat.cool_per_second", "must be >= 0", c.WeaponHeat.CoolPerSecond)
		}
		if c.WeaponHeat.MaxHeat <= 0 {
			add("weapon_heat.max_heat", "must be > 0 when weapon_heat.enabled", c.WeaponHeat.MaxHeat)
		}
	}

	if c.Arena.WidthUnits <= 0 {
		add("arena.width_units", "must be > 0", c.Arena.WidthUnits)
	}
	if c.Arena.HeightUnits <= 0 {
		add("arena.height_units", "must be > 0", c.Arena.HeightUnits)
	}
	if c.Arena.SpawnDistanceUnits <= 0 {
		add("arena.spawn_distance_units", "must be > 0", c.Arena.SpawnDistanceUnits)
	}

	if len(errs) == 0 {
		return nil
	}
	return &ConfigInvalidError{Errors: errs}
}

// SubstepCount returns round(decision_interval / physics_tick) (§3
// invariant). Validate must be called (and return nil) before this is
// meaningful.
func (c *Config) SubstepCount() int {
	ratio := c.Simulation.DecisionIntervalSeconds / c.Simulation.PhysicsTickSeconds
	return int(ratio + 0.5)
}

// RotationRadiansPerSecond converts the configured soft/hard
// degrees-per-second rates to radians.
func (c *Config) RotationRadiansPerSecond() (soft, hard float64) {
	const degToRad = 3.141592653589793 / 180
	return c.RotationRates.SoftTurnDegreesPerSecond * degToRad, c.RotationRates.HardTurnDegreesPerSecond * degToRad
}

// PhaserProfileFor returns the active phaser profile for a mode.
func (c *Config) PhaserProfileFor(mode PhaserMode) PhaserProfile {
	if mode == PhaserFocused {
		return c.Phaser.Focused
	}
	return c.Phaser.Wide
}

// ArcRadians converts a profile's configured degrees to radians.
func (p PhaserProfile) ArcRadians() float64 {
	const degToRad = 3.141592653589793 / 180
	return p.ArcDegrees * degToRad
}
