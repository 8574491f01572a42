package combat

import (
	"math"
	"math/rand/v2"

	"github.com/fynwyd/mabigo/internal/config"
	"github.com/fynwyd/mabigo/internal/data"
	"github.com/fynwyd/mabigo/internal/model"
)

// AimTracker is the ranged accuracy sub-machine. While aiming it converts
// time into hit probability: faster against a stationary target, slower
// against a moving one, with a penalty while the aimer itself moves.
//
// The value stays valid after the Aiming phase ends — the Active phase
// rolls against it and stops the tracker afterwards.
type AimTracker struct {
	cfg       config.Combat
	focusMult float64

	value  float64
	target Target
	active bool
}

// NewAimTracker creates a tracker with the given combat constants and the
// aimer's focus multiplier.
func NewAimTracker(cfg config.Combat, focusMult float64) *AimTracker {
	if focusMult <= 0 {
		focusMult = 1.0
	}
	return &AimTracker{
		cfg:       cfg,
		focusMult: focusMult,
		value:     data.AccuracyMin,
	}
}

// StartAiming resets the accuracy to exactly 1 and caches the target.
func (a *AimTracker) StartAiming(target Target) {
	a.value = data.AccuracyMin
	a.target = target
	a.active = true
}

// StopAiming clears the tracking state. The value is left as-is; the next
// StartAiming resets it.
func (a *AimTracker) StopAiming() {
	a.target = nil
	a.active = false
}

// IsAiming reports whether the tracker is currently following a target.
func (a *AimTracker) IsAiming() bool { return a.active }

// Value returns the current accuracy in [1,100].
func (a *AimTracker) Value() float64 { return a.value }

// Tick advances the accuracy buildup by dt seconds.
// selfMoving applies the aimer's own movement penalty.
func (a *AimTracker) Tick(dt float64, selfMoving bool) {
	if !a.active || a.target == nil || dt <= 0 {
		return
	}

	rate := a.cfg.AimStationaryRate
	if a.target.IsMoving() {
		rate = a.cfg.AimMovingRate
	}

	delta := rate * a.focusMult
	if selfMoving {
		delta -= a.cfg.AimMovePenalty
	}

	a.value += delta * dt
	if a.value > data.AccuracyMax {
		a.value = data.AccuracyMax
	}
	if a.value < data.AccuracyMin {
		a.value = data.AccuracyMin
	}
}

// RollHit draws a uniform value in [0,100] and succeeds if it is at or
// below the current accuracy.
func (a *AimTracker) RollHit(rng *rand.Rand) bool {
	return rng.Float64()*100.0 <= a.value
}

// MissPosition computes where a missed shot lands: a point at target
// distance inside a cone around the shot line. The cone half-angle shrinks
// linearly from the configured maximum at accuracy 1 down to 0 at 100.
func (a *AimTracker) MissPosition(from, to model.Position, rng *rand.Rand) model.Position {
	maxHalf := a.cfg.MissConeDegrees * math.Pi / 180.0
	spread := (data.AccuracyMax - a.value) / (data.AccuracyMax - data.AccuracyMin)
	halfAngle := maxHalf * spread

	angle := (rng.Float64()*2 - 1) * halfAngle
	dir := to.Sub(from).Normalized().Rotated(angle)
	return from.Add(dir.Scaled(from.Distance(to)))
}
