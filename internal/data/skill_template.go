package data

import "github.com/fynwyd/mabigo/internal/model"

// SkillTemplate holds the static execution parameters of one skill kind.
// Immutable after LoadSkills(); shared by all combatants.
type SkillTemplate struct {
	Kind model.SkillKind
	Name string

	// BaseChargeTime in seconds before dexterity scaling.
	// Zero for ranged skills: they aim instead of charging.
	BaseChargeTime float64

	// StaminaCost consumed when charging (or aiming) starts.
	StaminaCost int32

	// WaitDrainPerSec is the continuous stamina upkeep of the Waiting
	// phase. Nonzero only for defensive skills.
	WaitDrainPerSec float64

	// StartupTime / ActiveTime / RecoveryTime in seconds at weapon speed 1.0.
	// Ranged ActiveTime is ignored (RangedActiveSeconds applies).
	StartupTime  float64
	ActiveTime   float64
	RecoveryTime float64

	// CommittedMoveMod is the movement modifier applied on Startup entry
	// and held until Waiting exit or return to Uncharged.
	CommittedMoveMod float64

	// RangeOverride replaces the weapon range when > 0 (Windmill's spin
	// radius does not depend on the weapon).
	RangeOverride float64

	// DashDistance is the Lunge displacement toward the target.
	DashDistance float64
}

// skillDefs — статические определения скиллов (Go-литералы).
// Собираются в SkillTable при LoadSkills().
var skillDefs = []SkillTemplate{
	{
		Kind:             model.SkillAttack,
		Name:             "Attack",
		BaseChargeTime:   0.5,
		StaminaCost:      2,
		StartupTime:      0.2,
		ActiveTime:       0.4,
		RecoveryTime:     0.5,
		CommittedMoveMod: 0.8,
	},
	{
		Kind:             model.SkillDefense,
		Name:             "Defense",
		BaseChargeTime:   1.0,
		StaminaCost:      4,
		WaitDrainPerSec:  2.0,
		StartupTime:      0.3,
		RecoveryTime:     1.0,
		CommittedMoveMod: 0.5,
	},
	{
		Kind:             model.SkillCounter,
		Name:             "Counterattack",
		BaseChargeTime:   1.5,
		StaminaCost:      6,
		WaitDrainPerSec:  5.0,
		StartupTime:      0.2,
		RecoveryTime:     1.2,
		CommittedMoveMod: 0.0, // rooted while the counter window is open
	},
	{
		Kind:             model.SkillSmash,
		Name:             "Smash",
		BaseChargeTime:   2.0,
		StaminaCost:      8,
		StartupTime:      0.4,
		ActiveTime:       0.6,
		RecoveryTime:     1.5,
		CommittedMoveMod: 0.6,
	},
	{
		Kind:             model.SkillWindmill,
		Name:             "Windmill",
		BaseChargeTime:   1.5,
		StaminaCost:      10,
		StartupTime:      0.3,
		ActiveTime:       0.5,
		RecoveryTime:     2.0,
		CommittedMoveMod: 0.0,
		RangeOverride:    3.0,
	},
	{
		Kind:             model.SkillRangedAttack,
		Name:             "Ranged Attack",
		BaseChargeTime:   0, // aims, never charges
		StaminaCost:      3,
		StartupTime:      0.3,
		RecoveryTime:     1.0, // scaled by 1/weapon speed
		CommittedMoveMod: 0.3,
	},
	{
		Kind:             model.SkillLunge,
		Name:             "Lunge",
		BaseChargeTime:   1.0,
		StaminaCost:      6,
		StartupTime:      0.2,
		ActiveTime:       0.5,
		RecoveryTime:     1.2,
		CommittedMoveMod: 0.9,
		DashDistance:     5.0,
	},
}
