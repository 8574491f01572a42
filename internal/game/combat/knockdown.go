package combat

import (
	"log/slog"

	"github.com/fynwyd/mabigo/internal/config"
)

// comboCounter tracks consecutive landed hits inside the combo window.
// More than window seconds between hits resets the count.
type comboCounter struct {
	window    float64
	count     int
	sinceLast float64
}

func newComboCounter(window float64) comboCounter {
	return comboCounter{
		window: window,
		// start far outside the window so the first hit is always hit #1
		sinceLast: window + 1,
	}
}

// tick advances the idle timer and resets the count once the window lapses.
func (c *comboCounter) tick(dt float64) {
	c.sinceLast += dt
	if c.sinceLast > c.window {
		c.count = 0
	}
}

// registerHit records a landed hit and returns its 1-based combo index.
func (c *comboCounter) registerHit() int {
	if c.sinceLast > c.window {
		c.count = 0
	}
	c.count++
	c.sinceLast = 0
	return c.count
}

// KnockdownMeter is the per-entity decaying accumulator fed by landed hits.
// Crossing the knockback threshold fires a knockback event once per upward
// excursion (re-arming only after decaying back below it); reaching the
// maximum fires a full knockdown.
//
// The meter is never reset by reaching a threshold — only continuous decay
// reduces it, so spamming attacks into a fresh knockdown stays expensive.
type KnockdownMeter struct {
	ownerName string
	cfg       config.Combat

	value float64
	combo comboCounter

	knockbackArmed bool
	knockdownArmed bool

	onKnockback func()
	onKnockdown func()
}

// NewKnockdownMeter creates a meter wired to the given event callbacks.
// Either callback may be nil.
func NewKnockdownMeter(ownerName string, cfg config.Combat, onKnockback, onKnockdown func()) *KnockdownMeter {
	return &KnockdownMeter{
		ownerName:      ownerName,
		cfg:            cfg,
		combo:          newComboCounter(cfg.ComboWindowSeconds),
		knockbackArmed: true,
		knockdownArmed: true,
		onKnockback:    onKnockback,
		onKnockdown:    onKnockdown,
	}
}

// Value returns the current meter value in [0, max].
func (k *KnockdownMeter) Value() float64 { return k.value }

// ComboCount returns the current combo hit count.
func (k *KnockdownMeter) ComboCount() int { return k.combo.count }

// AddBuildup registers a landed hit. The buildup amount is flat per combo
// index — first hit highest, floored from the last table entry on — which
// gives diminishing returns on fast chains regardless of damage dealt.
func (k *KnockdownMeter) AddBuildup(damage float64) {
	if damage <= 0 {
		return
	}

	idx := k.combo.registerHit() - 1
	table := k.cfg.ComboBuildup
	if idx >= len(table) {
		idx = len(table) - 1
	}

	k.value += table[idx]
	if k.value > k.cfg.KnockdownMax {
		k.value = k.cfg.KnockdownMax
	}

	slog.Debug("knockdown buildup",
		"entity", k.ownerName,
		"comboHit", idx+1,
		"added", table[idx],
		"meter", k.value)

	k.checkThresholds()
}

// Tick applies the continuous decay, floored at zero, and re-arms the
// threshold events once the value falls back below them.
func (k *KnockdownMeter) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	k.combo.tick(dt)

	if k.value > 0 {
		k.value -= k.cfg.MeterDecayPerSecond * dt
		if k.value < 0 {
			k.value = 0
		}
	}

	if k.value < k.knockbackThreshold() {
		k.knockbackArmed = true
	}
	if k.value < k.cfg.KnockdownMax {
		k.knockdownArmed = true
	}
}

// checkThresholds fires at most one event per call: a knockdown supersedes
// a knockback when one buildup crosses both at once.
func (k *KnockdownMeter) checkThresholds() {
	if k.knockdownArmed && k.value >= k.cfg.KnockdownMax {
		k.knockdownArmed = false
		k.knockbackArmed = false
		slog.Debug("knockdown meter maxed", "entity", k.ownerName)
		if k.onKnockdown != nil {
			k.onKnockdown()
		}
		return
	}
	if k.knockbackArmed && k.value >= k.knockbackThreshold() {
		k.knockbackArmed = false
		slog.Debug("knockback threshold crossed", "entity", k.ownerName, "meter", k.value)
		if k.onKnockback != nil {
			k.onKnockback()
		}
	}
}

func (k *KnockdownMeter) knockbackThreshold() float64 {
	return k.cfg.KnockdownMax * k.cfg.KnockbackFraction
}
