package ai

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fynwyd/mabigo/internal/config"
	"github.com/fynwyd/mabigo/internal/data"
	"github.com/fynwyd/mabigo/internal/game/combat"
	"github.com/fynwyd/mabigo/internal/game/resolve"
	"github.com/fynwyd/mabigo/internal/model"
)

const dt = 0.25

func init() {
	if err := data.LoadSkills(); err != nil {
		panic("failed to load skills: " + err.Error())
	}
	if err := data.LoadWeapons(); err != nil {
		panic("failed to load weapons: " + err.Error())
	}
}

// arena is a tiny copy of the simulator tick loop for driver tests.
type arena struct {
	manager  *resolve.Manager
	results  []resolve.HitResult
	fighters []struct {
		part   *resolve.Participant
		driver Driver
	}
}

func newArena(t *testing.T) *arena {
	t.Helper()
	a := &arena{manager: resolve.NewManager(config.DefaultCombat(), rand.New(rand.NewPCG(23, 29)))}
	a.manager.SetHitObserver(func(r resolve.HitResult) { a.results = append(a.results, r) })
	return a
}

func (a *arena) add(t *testing.T, actor *model.Combatant, mk func(*combat.Machine) Driver) *resolve.Participant {
	t.Helper()
	machine, err := combat.NewMachine(
		actor.ObjectID(), actor.Name(), actor.Stats(), actor.WeaponID(),
		actor.Stamina(), actor.Status(), actor, a.manager,
		config.DefaultCombat(), rand.New(rand.NewPCG(31, 37)))
	require.NoError(t, err)
	if tgt := actor.Target(); tgt != nil {
		machine.SetTarget(tgt)
	}
	part := a.manager.Register(actor, machine)
	a.fighters = append(a.fighters, struct {
		part   *resolve.Participant
		driver Driver
	}{part, mk(machine)})
	return part
}

func (a *arena) run(ticks int) {
	for i := 0; i < ticks; i++ {
		for _, f := range a.fighters {
			if f.part.Actor.IsDead() {
				continue
			}
			f.part.Actor.Status().Tick(dt)
			f.part.Machine.Tick(dt)
			if f.driver != nil {
				f.driver.Tick(dt)
			}
		}
		a.manager.Tick(dt)
	}
}

func TestCharger_LandsHitsThroughTheRotation(t *testing.T) {
	attacker := model.NewCombatant(1, "charger", model.Stats{}, data.WeaponShortSword, 200, 100, model.NewPosition(0, 0))
	dummy := model.NewCombatant(2, "dummy", model.Stats{}, data.WeaponShortSword, 500, 100, model.NewPosition(1.5, 0))
	attacker.SetTarget(dummy)

	a := newArena(t)
	a.add(t, attacker, func(m *combat.Machine) Driver {
		return NewCharger(attacker, m, []model.SkillKind{model.SkillAttack})
	})
	a.add(t, dummy, func(m *combat.Machine) Driver { return nil })

	a.run(40) // 10 seconds

	assert.NotEmpty(t, a.results, "the charger never landed a hit")
	assert.Less(t, dummy.CurrentHP(), dummy.MaxHP())
}

func TestDefender_RestsWhenLowAndResumes(t *testing.T) {
	guard := model.NewCombatant(1, "guard", model.Stats{}, data.WeaponShortSword, 200, 40, model.NewPosition(0, 0))

	a := newArena(t)
	var machine *combat.Machine
	a.add(t, guard, func(m *combat.Machine) Driver {
		machine = m
		return NewDefender(guard, m, model.SkillDefense)
	})

	// drain below the 2x cushion over the Defense cost (4)
	guard.Stamina().Drain(100, 1.0)
	guard.Stamina().Regenerate(7)
	require.Equal(t, int32(7), guard.Stamina().Current())

	a.run(1)
	assert.True(t, guard.Status().IsResting(), "too low to hold the stance")
	assert.Equal(t, combat.PhaseUncharged, machine.CurrentPhase())

	// refill past half max: the next tick stands up and starts charging
	guard.Stamina().Regenerate(30)
	a.run(1)
	assert.False(t, guard.Status().IsResting())
	assert.Equal(t, combat.PhaseCharging, machine.CurrentPhase())

	// and the stance eventually opens
	a.run(12)
	assert.Equal(t, combat.PhaseWaiting, machine.CurrentPhase())
	assert.True(t, a.manager.IsWaiting(guard.ObjectID()))
}

func TestArcher_FiresOnceAccurate(t *testing.T) {
	archer := model.NewCombatant(1, "archer", model.Stats{}, data.WeaponShortBow, 200, 100, model.NewPosition(0, 0))
	dummy := model.NewCombatant(2, "dummy", model.Stats{}, data.WeaponShortSword, 500, 100, model.NewPosition(9, 0))
	archer.SetTarget(dummy)

	a := newArena(t)
	var machine *combat.Machine
	a.add(t, archer, func(m *combat.Machine) Driver {
		machine = m
		return NewArcher(archer, m)
	})
	a.add(t, dummy, func(m *combat.Machine) Driver { return nil })

	a.run(2)
	require.Equal(t, combat.PhaseAiming, machine.CurrentPhase())

	// default release threshold is 90: keeps aiming until nearly sure
	a.run(6)
	assert.Equal(t, combat.PhaseAiming, machine.CurrentPhase())

	a.run(40)
	assert.NotEmpty(t, a.results, "the archer never released a shot")
}
