package model

// Combatant is one combat participant: position, health, stamina,
// status effects and the already-aggregated stats the skill core reads.
//
// Not safe for concurrent use: the simulation ticks entities sequentially
// on a single goroutine (see the concurrency notes in the combat package).
type Combatant struct {
	objectID uint32
	name     string
	stats    Stats
	weaponID int32

	pos              Position
	moving           bool
	movementModifier float64

	currentHP int32
	maxHP     int32

	stamina *StaminaPool
	status  *StatusEffectSet

	target *Combatant
}

// NewCombatant создаёт участника боя с полным HP и стаминой.
func NewCombatant(objectID uint32, name string, stats Stats, weaponID int32, maxHP, maxStamina int32, pos Position) *Combatant {
	return &Combatant{
		objectID:         objectID,
		name:             name,
		stats:            stats,
		weaponID:         weaponID,
		pos:              pos,
		movementModifier: 1.0,
		currentHP:        maxHP,
		maxHP:            maxHP,
		stamina:          NewStaminaPool(maxStamina),
		status:           NewStatusEffectSet(name),
	}
}

// ObjectID возвращает уникальный ID участника.
func (c *Combatant) ObjectID() uint32 { return c.objectID }

// Name возвращает имя участника.
func (c *Combatant) Name() string { return c.name }

// Stats returns the aggregated combat attributes.
func (c *Combatant) Stats() Stats { return c.stats }

// WeaponID returns the equipped weapon template ID.
func (c *Combatant) WeaponID() int32 { return c.weaponID }

// Position возвращает текущую позицию.
func (c *Combatant) Position() Position { return c.pos }

// SetPosition устанавливает позицию напрямую (teleport-style, no checks).
func (c *Combatant) SetPosition(p Position) { c.pos = p }

// ApplyDisplacement shifts the combatant by d (dash, knockback).
func (c *Combatant) ApplyDisplacement(d Vector) {
	c.pos = c.pos.Add(d)
}

// IsMoving reports whether the entity moved this tick (set by the
// movement collaborator; read by the aiming sub-machine).
func (c *Combatant) IsMoving() bool { return c.moving }

// SetMoving marks the entity as moving or stationary for this tick.
func (c *Combatant) SetMoving(moving bool) { c.moving = moving }

// MovementModifier returns the current movement speed scalar.
// 1.0 = unrestricted, 0.0 = rooted.
func (c *Combatant) MovementModifier() float64 { return c.movementModifier }

// SetMovementModifier sets the movement speed scalar.
// Called by skill phases on entry/exit; values are clamped to [0, 1].
func (c *Combatant) SetMovementModifier(scalar float64) {
	if scalar < 0 {
		scalar = 0
	}
	if scalar > 1 {
		scalar = 1
	}
	c.movementModifier = scalar
}

// Stamina возвращает пул стамины.
func (c *Combatant) Stamina() *StaminaPool { return c.stamina }

// Status возвращает набор статус-эффектов.
func (c *Combatant) Status() *StatusEffectSet { return c.status }

// Target returns the current combat target (nil if none).
func (c *Combatant) Target() *Combatant { return c.target }

// SetTarget sets the combat target. Pass nil to clear.
func (c *Combatant) SetTarget(t *Combatant) { c.target = t }

// CurrentHP возвращает текущее HP.
func (c *Combatant) CurrentHP() int32 { return c.currentHP }

// MaxHP возвращает максимум HP.
func (c *Combatant) MaxHP() int32 { return c.maxHP }

// IsDead returns true when HP is depleted.
func (c *Combatant) IsDead() bool { return c.currentHP <= 0 }

// ReduceHP reduces HP by damage (minimum 0) and breaks an active rest.
func (c *Combatant) ReduceHP(damage int32) {
	if damage <= 0 {
		return
	}
	c.status.BreakRest()
	c.currentHP -= damage
	if c.currentHP < 0 {
		c.currentHP = 0
	}
}
