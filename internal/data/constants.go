package data

// Consolidated combat constants.
//
// The rate table below is the canonical one: where older tuning passes
// disagreed on drain/regen timing, these values supersede them. The config
// package exposes the tunable subset with these as defaults.
const (
	// AccuracyMin / AccuracyMax bound the ranged accuracy value.
	AccuracyMin = 1.0
	AccuracyMax = 100.0

	// RangedActiveSeconds is the fixed Active-phase hold for ranged attacks
	// (the arrow is already in the air; there is no weapon-derived swing).
	RangedActiveSeconds = 0.5

	// DefaultAimStationaryRate is accuracy gained per second against a
	// stationary target, in percent points.
	DefaultAimStationaryRate = 40.0
	// DefaultAimMovingRate is accuracy gained per second against a moving target.
	DefaultAimMovingRate = 10.0
	// DefaultAimMovePenalty is accuracy lost per second while the aimer
	// itself is moving.
	DefaultAimMovePenalty = 5.0
	// DefaultMissConeDegrees is the full cone half-angle at accuracy 1;
	// it shrinks linearly to 0 as accuracy approaches 100.
	DefaultMissConeDegrees = 30.0

	// DefaultKnockdownMax is the knockdown meter capacity.
	DefaultKnockdownMax = 100.0
	// DefaultKnockbackFraction of the capacity triggers a knockback.
	DefaultKnockbackFraction = 0.6
	// DefaultMeterDecayPerSecond is the meter's continuous decay.
	DefaultMeterDecayPerSecond = 10.0

	// DefaultComboWindowSeconds resets the combo counter after this long
	// without a landed hit.
	DefaultComboWindowSeconds = 2.0

	// DefaultStaminaRegenPerSecond is passive regeneration while idle.
	// Regeneration is suspended while a skill phase other than Uncharged
	// is active.
	DefaultStaminaRegenPerSecond = 2.0
	// DefaultRestRegenMultiplier scales regeneration while resting.
	DefaultRestRegenMultiplier = 4.0

	// DefaultKnockbackDistance / DefaultKnockdownDistance are displacement
	// magnitudes applied away from the attacker.
	DefaultKnockbackDistance = 4.0
	DefaultKnockdownDistance = 8.0

	// DefaultHitStunSeconds is the stagger applied by a landed melee hit.
	DefaultHitStunSeconds = 0.8
	// DefaultKnockdownSeconds is how long a knocked-down entity stays down.
	DefaultKnockdownSeconds = 3.0
)

// DefaultComboBuildup is knockdown buildup per hit index inside the combo
// window: first hit highest, floor from the fourth hit on.
var DefaultComboBuildup = [4]float64{30, 25, 20, 15}
