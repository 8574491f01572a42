package combat

import (
	"math/rand/v2"
	"testing"

	"github.com/fynwyd/mabigo/internal/config"
	"github.com/fynwyd/mabigo/internal/data"
	"github.com/fynwyd/mabigo/internal/model"
)

func init() {
	// Load static tables for tests
	if err := data.LoadSkills(); err != nil {
		panic("failed to load skills: " + err.Error())
	}
	if err := data.LoadWeapons(); err != nil {
		panic("failed to load weapons: " + err.Error())
	}
}

// testResolver records resolver calls for assertions.
type testResolver struct {
	executions []Execution
	removals   []uint32
}

func (r *testResolver) ProcessSkillExecution(exec Execution) {
	r.executions = append(r.executions, exec)
}

func (r *testResolver) RemoveWaitingRegistration(entityID uint32) {
	r.removals = append(r.removals, entityID)
}

// testRig bundles a machine with the real combatant backing it and the
// recording resolver.
type testRig struct {
	actor    *model.Combatant
	target   *model.Combatant
	machine  *Machine
	resolver *testResolver
}

type rigOptions struct {
	stats      model.Stats
	weaponID   int32
	maxStamina int32
	targetPos  model.Position
}

func defaultRigOptions() rigOptions {
	return rigOptions{
		weaponID:   data.WeaponShortSword,
		maxStamina: 100,
		targetPos:  model.NewPosition(1.5, 0),
	}
}

// newTestRig builds a machine owned by a real combatant, targeting a second
// combatant, with a deterministic RNG.
func newTestRig(t *testing.T, opts rigOptions) *testRig {
	t.Helper()

	actor := model.NewCombatant(1, "attacker", opts.stats, opts.weaponID, 200, opts.maxStamina, model.NewPosition(0, 0))
	target := model.NewCombatant(2, "victim", model.Stats{}, data.WeaponShortSword, 200, 100, opts.targetPos)
	actor.SetTarget(target)

	resolver := &testResolver{}
	rng := rand.New(rand.NewPCG(7, 7))

	machine, err := NewMachine(
		actor.ObjectID(), actor.Name(), actor.Stats(), actor.WeaponID(),
		actor.Stamina(), actor.Status(), actor, resolver, config.DefaultCombat(), rng)
	if err != nil {
		t.Fatalf("creating machine: %v", err)
	}
	machine.SetTarget(target)

	return &testRig{actor: actor, target: target, machine: machine, resolver: resolver}
}

// newMachineFor builds a machine straight from a combatant with stub
// collaborators, for constructor-level tests.
func newMachineFor(t *testing.T, actor *model.Combatant) (*Machine, error) {
	t.Helper()
	return NewMachine(
		actor.ObjectID(), actor.Name(), actor.Stats(), actor.WeaponID(),
		actor.Stamina(), actor.Status(), actor, &testResolver{},
		config.DefaultCombat(), rand.New(rand.NewPCG(1, 1)))
}

// driveToWaiting charges and auto-executes a defensive skill until the
// machine sits in its open Waiting window.
func (r *testRig) driveToWaiting(t *testing.T, kind model.SkillKind) {
	t.Helper()
	if !r.machine.StartCharging(kind) {
		t.Fatalf("could not start charging %v", kind)
	}
	r.tickUntil(t, PhaseWaiting, 40, 0.25)
}

// tick advances the machine (and the owner's status timers) by dt, n times.
func (r *testRig) tick(n int, dt float64) {
	for i := 0; i < n; i++ {
		r.actor.Status().Tick(dt)
		r.machine.Tick(dt)
	}
}

// tickUntil ticks until the machine reaches phase or maxTicks pass.
// Returns the number of ticks used; fails the test on timeout.
func (r *testRig) tickUntil(t *testing.T, phase Phase, maxTicks int, dt float64) int {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if r.machine.CurrentPhase() == phase {
			return i
		}
		r.actor.Status().Tick(dt)
		r.machine.Tick(dt)
	}
	if r.machine.CurrentPhase() == phase {
		return maxTicks
	}
	t.Fatalf("machine never reached %v (stuck in %v)", phase, r.machine.CurrentPhase())
	return 0
}
