package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fynwyd/mabigo/internal/data"
)

// Simulation holds all configuration for the headless combat simulator.
type Simulation struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// Tick loop
	TickRate        float64 `yaml:"tick_rate"`        // ticks per second
	DurationSeconds float64 `yaml:"duration_seconds"` // 0 = run until signal

	// Combat tunables
	Combat Combat `yaml:"combat"`
}

// Combat holds the tunable combat constants. Defaults come from the
// consolidated table in the data package; a YAML file can override any
// subset for balancing experiments.
type Combat struct {
	// Knockdown meter
	KnockdownMax        float64 `yaml:"knockdown_max"`
	KnockbackFraction   float64 `yaml:"knockback_fraction"`
	MeterDecayPerSecond float64 `yaml:"meter_decay_per_second"`
	ComboWindowSeconds  float64 `yaml:"combo_window_seconds"`
	ComboBuildup        []float64 `yaml:"combo_buildup"` // per hit index, last value floors

	// Ranged aiming
	AimStationaryRate float64 `yaml:"aim_stationary_rate"`
	AimMovingRate     float64 `yaml:"aim_moving_rate"`
	AimMovePenalty    float64 `yaml:"aim_move_penalty"`
	MissConeDegrees   float64 `yaml:"miss_cone_degrees"`

	// Stamina economy
	StaminaRegenPerSecond float64 `yaml:"stamina_regen_per_second"`
	RestRegenMultiplier   float64 `yaml:"rest_regen_multiplier"`

	// Crowd control applied by the resolver
	HitStunSeconds    float64 `yaml:"hit_stun_seconds"`
	KnockdownSeconds  float64 `yaml:"knockdown_seconds"`
	KnockbackDistance float64 `yaml:"knockback_distance"`
	KnockdownDistance float64 `yaml:"knockdown_distance"`
}

// DefaultSimulation returns Simulation config with the consolidated defaults.
func DefaultSimulation() Simulation {
	return Simulation{
		LogLevel:        "info",
		TickRate:        20,
		DurationSeconds: 30,
		Combat:          DefaultCombat(),
	}
}

// DefaultCombat returns the canonical combat constant table.
func DefaultCombat() Combat {
	return Combat{
		KnockdownMax:          data.DefaultKnockdownMax,
		KnockbackFraction:     data.DefaultKnockbackFraction,
		MeterDecayPerSecond:   data.DefaultMeterDecayPerSecond,
		ComboWindowSeconds:    data.DefaultComboWindowSeconds,
		ComboBuildup:          data.DefaultComboBuildup[:],
		AimStationaryRate:     data.DefaultAimStationaryRate,
		AimMovingRate:         data.DefaultAimMovingRate,
		AimMovePenalty:        data.DefaultAimMovePenalty,
		MissConeDegrees:       data.DefaultMissConeDegrees,
		StaminaRegenPerSecond: data.DefaultStaminaRegenPerSecond,
		RestRegenMultiplier:   data.DefaultRestRegenMultiplier,
		HitStunSeconds:        data.DefaultHitStunSeconds,
		KnockdownSeconds:      data.DefaultKnockdownSeconds,
		KnockbackDistance:     data.DefaultKnockbackDistance,
		KnockdownDistance:     data.DefaultKnockdownDistance,
	}
}

// LoadSimulation loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// validate rejects values the tick loop and gauges cannot work with.
func (c Simulation) validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %v", c.TickRate)
	}
	if c.DurationSeconds < 0 {
		return fmt.Errorf("duration_seconds must not be negative, got %v", c.DurationSeconds)
	}
	cb := c.Combat
	if cb.KnockdownMax <= 0 {
		return fmt.Errorf("knockdown_max must be positive, got %v", cb.KnockdownMax)
	}
	if cb.KnockbackFraction <= 0 || cb.KnockbackFraction >= 1 {
		return fmt.Errorf("knockback_fraction must be in (0,1), got %v", cb.KnockbackFraction)
	}
	if cb.MeterDecayPerSecond < 0 {
		return fmt.Errorf("meter_decay_per_second must not be negative, got %v", cb.MeterDecayPerSecond)
	}
	if cb.ComboWindowSeconds <= 0 {
		return fmt.Errorf("combo_window_seconds must be positive, got %v", cb.ComboWindowSeconds)
	}
	if len(cb.ComboBuildup) == 0 {
		return fmt.Errorf("combo_buildup must not be empty")
	}
	for i, v := range cb.ComboBuildup {
		if v < 0 {
			return fmt.Errorf("combo_buildup[%d] must not be negative, got %v", i, v)
		}
	}
	if cb.AimStationaryRate <= 0 || cb.AimMovingRate <= 0 {
		return fmt.Errorf("aim build rates must be positive")
	}
	return nil
}
