package data

// WeaponClass разделяет оружие ближнего и дальнего боя.
type WeaponClass int8

const (
	WeaponMelee WeaponClass = iota
	WeaponRanged
)

// WeaponTemplate holds the static parameters of one weapon.
// Immutable after LoadWeapons(); shared by all combatants.
type WeaponTemplate struct {
	ID    int32
	Name  string
	Class WeaponClass

	// Range in world units (melee reach or maximum shot distance).
	Range float64

	// Speed scales execution times: startup and recovery divide by it,
	// so faster weapons commit and recover quicker.
	Speed float64

	// MinDamage / MaxDamage form the damage roll band.
	MinDamage int32
	MaxDamage int32
}

// IsRanged returns true for bows and other ranged weapons.
func (w *WeaponTemplate) IsRanged() bool {
	return w.Class == WeaponRanged
}

// Weapon template IDs referenced by simulation setups and tests.
const (
	WeaponBareHands  int32 = 0
	WeaponShortSword int32 = 1
	WeaponShortBow   int32 = 2
	WeaponLongBow    int32 = 3
)

// weaponDefs — статические определения оружия (Go-литералы).
var weaponDefs = []WeaponTemplate{
	{
		ID:        WeaponBareHands,
		Name:      "Bare Hands",
		Class:     WeaponMelee,
		Range:     1.5,
		Speed:     1.2,
		MinDamage: 2,
		MaxDamage: 5,
	},
	{
		ID:        WeaponShortSword,
		Name:      "Short Sword",
		Class:     WeaponMelee,
		Range:     2.0,
		Speed:     1.0,
		MinDamage: 8,
		MaxDamage: 14,
	},
	{
		ID:        WeaponShortBow,
		Name:      "Short Bow",
		Class:     WeaponRanged,
		Range:     12.0,
		Speed:     1.0,
		MinDamage: 6,
		MaxDamage: 12,
	},
	{
		ID:        WeaponLongBow,
		Name:      "Long Bow",
		Class:     WeaponRanged,
		Range:     16.0,
		Speed:     0.8,
		MinDamage: 10,
		MaxDamage: 18,
	},
}
