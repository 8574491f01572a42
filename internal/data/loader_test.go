package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fynwyd/mabigo/internal/model"
)

func TestLoadSkills_AllKindsPresent(t *testing.T) {
	require.NoError(t, LoadSkills())

	kinds := []model.SkillKind{
		model.SkillAttack, model.SkillDefense, model.SkillCounter,
		model.SkillSmash, model.SkillWindmill, model.SkillRangedAttack,
		model.SkillLunge,
	}
	for _, kind := range kinds {
		tmpl := GetSkillTemplate(kind)
		require.NotNil(t, tmpl, "missing template for %v", kind)
		assert.Equal(t, kind, tmpl.Kind)
	}
}

func TestLoadSkills_TemplateConsistency(t *testing.T) {
	require.NoError(t, LoadSkills())

	for kind, tmpl := range SkillTable {
		if kind.IsRanged() {
			assert.Zero(t, tmpl.BaseChargeTime, "%v aims, it must not charge", kind)
		} else {
			assert.Positive(t, tmpl.BaseChargeTime, "%v needs a charge time", kind)
		}
		if kind.IsDefensive() {
			assert.Positive(t, tmpl.WaitDrainPerSec, "%v holds a window, it needs upkeep", kind)
		} else {
			assert.Zero(t, tmpl.WaitDrainPerSec)
		}
		assert.GreaterOrEqual(t, tmpl.CommittedMoveMod, 0.0)
		assert.LessOrEqual(t, tmpl.CommittedMoveMod, 1.0)
	}

	// the spin radius is skill-owned, not weapon-owned
	assert.Equal(t, 3.0, GetSkillTemplate(model.SkillWindmill).RangeOverride)
	assert.Positive(t, GetSkillTemplate(model.SkillLunge).DashDistance)
}

func TestLoadWeapons_AllPresent(t *testing.T) {
	require.NoError(t, LoadWeapons())

	for _, id := range []int32{WeaponBareHands, WeaponShortSword, WeaponShortBow, WeaponLongBow} {
		require.NotNil(t, GetWeaponTemplate(id), "missing weapon %d", id)
	}

	assert.False(t, GetWeaponTemplate(WeaponShortSword).IsRanged())
	assert.True(t, GetWeaponTemplate(WeaponShortBow).IsRanged())
	assert.True(t, GetWeaponTemplate(WeaponLongBow).IsRanged())

	for id, w := range WeaponTable {
		assert.Positive(t, w.Range, "weapon %d", id)
		assert.Positive(t, w.Speed, "weapon %d", id)
		assert.LessOrEqual(t, w.MinDamage, w.MaxDamage, "weapon %d", id)
	}
}

func TestGetTemplate_UnloadedOrUnknown(t *testing.T) {
	require.NoError(t, LoadSkills())
	require.NoError(t, LoadWeapons())

	assert.Nil(t, GetSkillTemplate(model.SkillKind(99)))
	assert.Nil(t, GetWeaponTemplate(999))
}
