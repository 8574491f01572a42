package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fynwyd/mabigo/internal/config"
)

type meterEvents struct {
	knockbacks int
	knockdowns int
}

func newTestMeter(cfg config.Combat) (*KnockdownMeter, *meterEvents) {
	ev := &meterEvents{}
	m := NewKnockdownMeter("victim", cfg,
		func() { ev.knockbacks++ },
		func() { ev.knockdowns++ })
	return m, ev
}

func TestKnockdownMeter_ComboBuildupDiminishes(t *testing.T) {
	m, _ := newTestMeter(config.DefaultCombat())

	// four hits inside the window: 30, 25, 20, 15
	expect := []float64{30, 55, 75, 90}
	for i, want := range expect {
		m.AddBuildup(10)
		assert.InDelta(t, want, m.Value(), 1e-9, "after hit %d", i+1)
	}
	assert.Equal(t, 4, m.ComboCount())

	// the fifth and later hits floor at the last table entry
	m.AddBuildup(10)
	assert.Equal(t, 100.0, m.Value(), "90+15 clamps at the cap")
}

func TestKnockdownMeter_ComboResetsAfterWindow(t *testing.T) {
	cfg := config.DefaultCombat() // 2s window, 10/s decay
	m, _ := newTestMeter(cfg)

	m.AddBuildup(10)
	assert.Equal(t, 1, m.ComboCount())
	assert.InDelta(t, 30.0, m.Value(), 1e-9)

	// 2.25s of silence: the combo lapses and the meter decays by 22.5
	for i := 0; i < 9; i++ {
		m.Tick(0.25)
	}
	assert.Equal(t, 0, m.ComboCount())

	m.AddBuildup(10)
	assert.Equal(t, 1, m.ComboCount(), "the chain restarted at hit #1")
	assert.InDelta(t, 37.5, m.Value(), 1e-9)
}

func TestKnockdownMeter_DecayFloorsAtZero(t *testing.T) {
	m, _ := newTestMeter(config.DefaultCombat())

	m.AddBuildup(10)
	for i := 0; i < 100; i++ {
		m.Tick(0.25)
	}
	assert.Equal(t, 0.0, m.Value())
}

func TestKnockdownMeter_KnockbackFiresOncePerExcursion(t *testing.T) {
	m, ev := newTestMeter(config.DefaultCombat()) // threshold 60

	m.AddBuildup(10) // 30
	m.AddBuildup(10) // 55
	assert.Equal(t, 0, ev.knockbacks)

	m.AddBuildup(10) // 75, crosses 60
	assert.Equal(t, 1, ev.knockbacks)

	m.AddBuildup(10) // 90, still above: no re-fire
	assert.Equal(t, 1, ev.knockbacks)
	assert.Equal(t, 0, ev.knockdowns)
}

func TestKnockdownMeter_KnockbackRearmsBelowThreshold(t *testing.T) {
	m, ev := newTestMeter(config.DefaultCombat())

	m.AddBuildup(10)
	m.AddBuildup(10)
	m.AddBuildup(10) // 75, knockback #1
	assert.Equal(t, 1, ev.knockbacks)

	// decay back under 60 re-arms the event; the combo window also lapses
	for i := 0; i < 10; i++ {
		m.Tick(0.25)
	}
	assert.Less(t, m.Value(), 60.0)

	m.AddBuildup(10) // fresh chain: +30, crosses 60 again
	assert.Equal(t, 2, ev.knockbacks)
}

func TestKnockdownMeter_MaxFiresKnockdownNotKnockback(t *testing.T) {
	// one huge chain that jumps from below the knockback threshold straight
	// past the cap must produce a single knockdown, not both events
	cfg := config.DefaultCombat()
	cfg.ComboBuildup = []float64{110}
	m, ev := newTestMeter(cfg)

	m.AddBuildup(10)
	assert.Equal(t, 100.0, m.Value())
	assert.Equal(t, 1, ev.knockdowns)
	assert.Equal(t, 0, ev.knockbacks, "knockdown supersedes the knockback")
}

func TestKnockdownMeter_NotResetByFiring(t *testing.T) {
	m, ev := newTestMeter(config.DefaultCombat())

	for i := 0; i < 5; i++ {
		m.AddBuildup(10)
	}
	assert.Equal(t, 1, ev.knockdowns)
	assert.Equal(t, 100.0, m.Value(), "only decay reduces the meter")

	// piling on while maxed cannot re-trigger until it decays below the cap
	m.AddBuildup(10)
	assert.Equal(t, 1, ev.knockdowns)

	m.Tick(0.5) // 95: re-armed
	m.AddBuildup(10)
	assert.Equal(t, 2, ev.knockdowns)
}

func TestKnockdownMeter_IgnoresNonDamage(t *testing.T) {
	m, _ := newTestMeter(config.DefaultCombat())
	m.AddBuildup(0)
	m.AddBuildup(-5)
	assert.Equal(t, 0.0, m.Value())
	assert.Equal(t, 0, m.ComboCount())
}
