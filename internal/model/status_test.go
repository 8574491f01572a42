package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_StunAppliesAndExpires(t *testing.T) {
	s := NewStatusEffectSet("victim")

	require.True(t, s.ApplyStun(0.5))
	assert.True(t, s.IsStunned())
	assert.False(t, s.CanAct())

	s.Tick(0.25)
	assert.True(t, s.IsStunned())

	s.Tick(0.25)
	assert.False(t, s.IsStunned())
	assert.True(t, s.CanAct())
}

func TestStatus_StunRefreshKeepsLongerDuration(t *testing.T) {
	s := NewStatusEffectSet("victim")

	require.True(t, s.ApplyStun(1.0))
	require.True(t, s.ApplyStun(0.2), "re-stun accepted but must not shorten")

	s.Tick(0.5)
	assert.True(t, s.IsStunned(), "original 1.0s still running")

	require.True(t, s.ApplyStun(2.0))
	s.Tick(1.5)
	assert.True(t, s.IsStunned(), "longer re-stun extends")
	s.Tick(0.6)
	assert.False(t, s.IsStunned())
}

func TestStatus_StunRejectedWhileKnockedDown(t *testing.T) {
	s := NewStatusEffectSet("victim")

	require.True(t, s.ApplyKnockdown(StatusKnockdownInteraction, 2.0))
	assert.False(t, s.ApplyStun(1.0), "the harder control wins")
	assert.True(t, s.IsKnockedDown())
	assert.False(t, s.IsStunned())
}

func TestStatus_KnockdownOverridesStun(t *testing.T) {
	s := NewStatusEffectSet("victim")

	require.True(t, s.ApplyStun(5.0))
	require.True(t, s.ApplyKnockdown(StatusKnockdownMeter, 1.0))

	assert.True(t, s.IsKnockedDown())
	assert.False(t, s.IsStunned(), "knockdown erases the stun, they never stack")

	// once the knockdown ends the old stun must not come back
	s.Tick(1.0)
	assert.False(t, s.IsKnockedDown())
	assert.False(t, s.IsStunned())
	assert.True(t, s.CanAct())
}

func TestStatus_KnockdownKindsBothCount(t *testing.T) {
	for _, kind := range []StatusKind{StatusKnockdownInteraction, StatusKnockdownMeter} {
		s := NewStatusEffectSet("victim")
		require.True(t, s.ApplyKnockdown(kind, 1.0))
		assert.True(t, s.IsKnockedDown(), "kind %v", kind)
	}
}

func TestStatus_KnockdownRejectsNonKnockdownKind(t *testing.T) {
	s := NewStatusEffectSet("victim")
	assert.False(t, s.ApplyKnockdown(StatusStun, 1.0))
	assert.False(t, s.ApplyKnockdown(StatusRest, 1.0))
}

func TestStatus_RestLifecycle(t *testing.T) {
	s := NewStatusEffectSet("sitter")

	require.True(t, s.StartRest())
	assert.True(t, s.IsResting())
	assert.True(t, s.CanAct(), "rest is not crowd control")

	// rest has no timer
	s.Tick(100)
	assert.True(t, s.IsResting())

	s.StopRest()
	assert.False(t, s.IsResting())
}

func TestStatus_RestBrokenByHostileStatus(t *testing.T) {
	s := NewStatusEffectSet("sitter")

	require.True(t, s.StartRest())
	s.ApplyStun(0.5)
	assert.False(t, s.IsResting(), "getting hit ends the rest")

	s.Tick(1.0)
	require.True(t, s.StartRest())
	s.ApplyKnockdown(StatusKnockdownInteraction, 1.0)
	assert.False(t, s.IsResting())
}

func TestStatus_RestRejectedWhileControlled(t *testing.T) {
	s := NewStatusEffectSet("sitter")
	s.ApplyStun(1.0)
	assert.False(t, s.StartRest())
}
