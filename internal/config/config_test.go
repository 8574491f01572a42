package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "combatsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSimulation_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadSimulation("/nonexistent/combatsim.yaml")
	require.NoError(t, err)

	assert.Equal(t, DefaultSimulation(), cfg)
	assert.Equal(t, 100.0, cfg.Combat.KnockdownMax)
	assert.Equal(t, []float64{30, 25, 20, 15}, cfg.Combat.ComboBuildup)
}

func TestLoadSimulation_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
tick_rate: 60
combat:
  knockdown_max: 150
  aim_stationary_rate: 55
`)

	cfg, err := LoadSimulation(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 60.0, cfg.TickRate)
	assert.Equal(t, 150.0, cfg.Combat.KnockdownMax)
	assert.Equal(t, 55.0, cfg.Combat.AimStationaryRate)

	// untouched keys keep their defaults
	assert.Equal(t, 0.6, cfg.Combat.KnockbackFraction)
	assert.Equal(t, 2.0, cfg.Combat.ComboWindowSeconds)
}

func TestLoadSimulation_InvalidValuesRejected(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero tick rate", "tick_rate: 0\n"},
		{"negative duration", "duration_seconds: -5\n"},
		{"bad knockback fraction", "combat:\n  knockback_fraction: 1.5\n"},
		{"empty combo table", "combat:\n  combo_buildup: []\n"},
		{"negative combo entry", "combat:\n  combo_buildup: [30, -1]\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.body)
			_, err := LoadSimulation(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadSimulation_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "tick_rate: [not a number\n")
	_, err := LoadSimulation(path)
	assert.Error(t, err)
}
