package model

// SkillKind represents a combat skill a combatant can execute.
// Closed set, immutable per execution.
type SkillKind int32

const (
	// SkillAttack - basic melee attack, default skill when idle
	SkillAttack SkillKind = iota
	// SkillDefense - defensive stance, blocks incoming melee hits
	SkillDefense
	// SkillCounter - counterattack stance, reflects incoming melee hits
	SkillCounter
	// SkillSmash - heavy melee attack, breaks through Defense
	SkillSmash
	// SkillWindmill - spin attack hitting everything in reach
	SkillWindmill
	// SkillRangedAttack - bow attack, uses the aiming sub-machine
	SkillRangedAttack
	// SkillLunge - dash attack closing distance to the target
	SkillLunge
)

// String returns human-readable skill name
func (k SkillKind) String() string {
	switch k {
	case SkillAttack:
		return "ATTACK"
	case SkillDefense:
		return "DEFENSE"
	case SkillCounter:
		return "COUNTER"
	case SkillSmash:
		return "SMASH"
	case SkillWindmill:
		return "WINDMILL"
	case SkillRangedAttack:
		return "RANGED_ATTACK"
	case SkillLunge:
		return "LUNGE"
	default:
		return "UNKNOWN"
	}
}

// IsDefensive returns true for skills that open a waiting window
// instead of striking (Defense, Counter).
func (k SkillKind) IsDefensive() bool {
	return k == SkillDefense || k == SkillCounter
}

// IsRanged returns true for skills that aim instead of charging.
func (k SkillKind) IsRanged() bool {
	return k == SkillRangedAttack
}

// NeedsTarget returns true if executing the skill requires a live target.
// Windmill hits everything around the user and Defense/Counter wait for
// the attacker, so none of them need one.
func (k SkillKind) NeedsTarget() bool {
	switch k {
	case SkillAttack, SkillSmash, SkillRangedAttack, SkillLunge:
		return true
	default:
		return false
	}
}
