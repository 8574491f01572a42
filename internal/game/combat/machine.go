package combat

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/fynwyd/mabigo/internal/config"
	"github.com/fynwyd/mabigo/internal/data"
	"github.com/fynwyd/mabigo/internal/model"
)

// Collaborator contracts. The machine never reaches into concrete entity
// types; all of these are injected at construction (no lookup at use time).

// Stamina is the resource pool the machine spends from.
type Stamina interface {
	HasEnough(cost int32) bool
	Consume(cost int32) bool
	Drain(rate, dt float64)
	Current() int32
}

// Status exposes the crowd-control flags the machine queries every tick.
type Status interface {
	IsStunned() bool
	IsKnockedDown() bool
	CanAct() bool
}

// Mover is the movement collaborator of the owning entity.
type Mover interface {
	Position() model.Position
	IsMoving() bool
	SetMovementModifier(scalar float64)
	ApplyDisplacement(d model.Vector)
}

// Target is the machine's view of an attack target.
type Target interface {
	ObjectID() uint32
	Position() model.Position
	IsMoving() bool
	IsDead() bool
}

// Resolver is the external interaction resolver.
// ProcessSkillExecution is invoked exactly once per Active-phase entry that
// passes validation; RemoveWaitingRegistration exactly once per Waiting exit.
type Resolver interface {
	ProcessSkillExecution(exec Execution)
	RemoveWaitingRegistration(entityID uint32)
}

// Execution describes one skill execution handed to the resolver.
type Execution struct {
	AttackerID uint32
	Kind       model.SkillKind

	// TargetID is 0 for skills that need no target (Defense, Counter, Windmill).
	TargetID uint32

	// Ranged executions carry the rolled outcome and, on a miss, the
	// deviation point of the arrow.
	Ranged    bool
	RangedHit bool
	MissPoint model.Position
}

// Machine is the per-entity skill execution state machine. It owns exactly
// one active phase object, drives its per-tick update, and performs
// guaranteed exit/enter transitions.
//
// Single-threaded: one Tick per simulated frame, no background goroutines.
// A phase "suspends" by not signaling a transition; guaranteed Exit is the
// substitute for cancellation tokens.
type Machine struct {
	ownerID   uint32
	ownerName string
	stats     model.Stats
	weapon    *data.WeaponTemplate

	stamina  Stamina
	status   Status
	mover    Mover
	resolver Resolver

	cfg config.Combat
	rng *rand.Rand

	phase Phase
	state phaseState
	skill model.SkillKind
	tmpl  *data.SkillTemplate

	target Target

	chargeProgress float64
	aim            *AimTracker
	lastRangedHit  bool
	inTransition   bool

	observers []Observer
}

// NewMachine builds a machine for one combatant. Collaborators are explicit
// references fixed for the machine's lifetime. The skill and weapon tables
// must already be loaded.
func NewMachine(
	ownerID uint32,
	ownerName string,
	stats model.Stats,
	weaponID int32,
	stamina Stamina,
	status Status,
	mover Mover,
	resolver Resolver,
	cfg config.Combat,
	rng *rand.Rand,
) (*Machine, error) {
	weapon := data.GetWeaponTemplate(weaponID)
	if weapon == nil {
		return nil, fmt.Errorf("weapon template %d not found", weaponID)
	}
	if stamina == nil || status == nil || mover == nil || resolver == nil {
		return nil, fmt.Errorf("nil collaborator")
	}
	if rng == nil {
		return nil, fmt.Errorf("nil rng")
	}

	m := &Machine{
		ownerID:   ownerID,
		ownerName: ownerName,
		stats:     stats,
		weapon:    weapon,
		stamina:   stamina,
		status:    status,
		mover:     mover,
		resolver:  resolver,
		cfg:       cfg,
		rng:       rng,
		aim:       NewAimTracker(cfg, stats.FocusMultiplier()),
	}

	m.phase = PhaseUncharged
	m.state = &unchargedState{}
	m.state.Enter(m)
	return m, nil
}

// Tick advances the active phase by dt seconds. If the phase signals a
// transition, the exit/enter protocol runs before Tick returns; no other
// tick interleaves.
func (m *Machine) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	next := m.state.Update(m, dt)
	if next != m.phase {
		m.transitionTo(next)
	}
}

// CurrentPhase returns the active execution phase.
func (m *Machine) CurrentPhase() Phase { return m.phase }

// CurrentSkill returns the skill kind of the execution in progress
// (the default Attack while Uncharged).
func (m *Machine) CurrentSkill() model.SkillKind { return m.skill }

// ChargeProgress returns the normalized charge progress in [0,1].
// Meaningful only while Charging; reset to 0 entering Uncharged or Charging.
func (m *Machine) ChargeProgress() float64 { return m.chargeProgress }

// LastRangedHit returns the stored hit/miss result of the most recent
// ranged execution.
func (m *Machine) LastRangedHit() bool { return m.lastRangedHit }

// Accuracy returns the current aim accuracy value in [1,100].
// Meaningful only while Aiming (and into the firing instant).
func (m *Machine) Accuracy() float64 { return m.aim.Value() }

// Target returns the current attack target (nil if none).
func (m *Machine) Target() Target { return m.target }

// SetTarget sets the attack target used for validation, range checks and
// dispatch. Targeting policy lives outside the core.
func (m *Machine) SetTarget(t Target) { m.target = t }

// StartCharging begins charging the given non-ranged skill.
// Precondition failures (wrong phase, crowd control, unknown skill,
// insufficient stamina) reject the request with a debug diagnostic; the
// machine is left untouched.
func (m *Machine) StartCharging(kind model.SkillKind) bool {
	if m.phase != PhaseUncharged {
		slog.Debug("charge rejected: busy", "entity", m.ownerName, "phase", m.phase)
		return false
	}
	if kind.IsRanged() {
		slog.Debug("charge rejected: ranged skills aim", "entity", m.ownerName, "skill", kind)
		return false
	}
	if !m.status.CanAct() {
		slog.Debug("charge rejected: crowd controlled", "entity", m.ownerName)
		return false
	}
	tmpl := data.GetSkillTemplate(kind)
	if tmpl == nil {
		slog.Debug("charge rejected: unknown skill", "entity", m.ownerName, "skill", kind)
		return false
	}
	if !m.stamina.Consume(tmpl.StaminaCost) {
		slog.Debug("charge rejected: not enough stamina",
			"entity", m.ownerName,
			"skill", kind,
			"cost", tmpl.StaminaCost,
			"have", m.stamina.Current())
		return false
	}

	m.skill = kind
	m.tmpl = tmpl
	return m.transitionTo(PhaseCharging)
}

// StartAiming begins aiming a ranged attack at the given target.
// Requires a ranged weapon, a live target within range and enough stamina.
func (m *Machine) StartAiming(target Target) bool {
	if m.phase != PhaseUncharged {
		slog.Debug("aim rejected: busy", "entity", m.ownerName, "phase", m.phase)
		return false
	}
	if !m.weapon.IsRanged() {
		slog.Debug("aim rejected: melee weapon", "entity", m.ownerName, "weapon", m.weapon.Name)
		return false
	}
	if !m.status.CanAct() {
		slog.Debug("aim rejected: crowd controlled", "entity", m.ownerName)
		return false
	}
	if target == nil || target.IsDead() {
		slog.Debug("aim rejected: no target", "entity", m.ownerName)
		return false
	}
	tmpl := data.GetSkillTemplate(model.SkillRangedAttack)
	if tmpl == nil {
		slog.Debug("aim rejected: ranged template missing", "entity", m.ownerName)
		return false
	}
	if m.mover.Position().Distance(target.Position()) > m.weapon.Range {
		slog.Debug("aim rejected: out of range", "entity", m.ownerName)
		return false
	}
	if !m.stamina.Consume(tmpl.StaminaCost) {
		slog.Debug("aim rejected: not enough stamina",
			"entity", m.ownerName,
			"cost", tmpl.StaminaCost,
			"have", m.stamina.Current())
		return false
	}

	m.skill = model.SkillRangedAttack
	m.tmpl = tmpl
	m.target = target
	return m.transitionTo(PhaseAiming)
}

// Execute fires a ready skill: a charged offensive skill from Charged, or
// the aimed shot from Aiming. Defensive skills auto-execute and reject this.
func (m *Machine) Execute() bool {
	switch m.phase {
	case PhaseCharged:
		if m.skill.IsDefensive() {
			// auto-executes from Charged on its own tick
			return false
		}
		return m.transitionTo(PhaseStartup)
	case PhaseAiming:
		return m.transitionTo(PhaseStartup)
	default:
		slog.Debug("execute rejected", "entity", m.ownerName, "phase", m.phase)
		return false
	}
}

// Cancel aborts an in-progress execution back to Uncharged.
// Allowed in Charging, Charged, Aiming, Startup and Waiting. Active and
// Recovery cannot be cancelled by any caller-initiated path.
func (m *Machine) Cancel() bool {
	switch m.phase {
	case PhaseCharging, PhaseCharged, PhaseAiming, PhaseStartup, PhaseWaiting:
		skill := m.skill
		if !m.transitionTo(PhaseUncharged) {
			return false
		}
		m.publish(Event{Type: EventSkillCancelled, Skill: skill})
		return true
	default:
		slog.Debug("cancel rejected", "entity", m.ownerName, "phase", m.phase)
		return false
	}
}

// RequestTransition forces a phase change from an external caller (e.g. the
// resolver ending a Waiting window after consuming the defense). It follows
// the identical exit/enter protocol as internal transitions — there is
// exactly one transition code path.
//
// Fails closed: an undefined successor, or any attempt to pull the machine
// out of the uncancellable Active phase, logs an error and leaves the
// machine in its current phase.
func (m *Machine) RequestTransition(next Phase) bool {
	if m.phase == PhaseActive {
		slog.Error("transition rejected: Active is uncancellable",
			"entity", m.ownerName,
			"requested", next)
		return false
	}
	if next == m.phase {
		return false
	}
	return m.transitionTo(next)
}

// transitionTo is the single transition code path: exit-on-old, then
// enter-on-new, in that order, with no intervening ticks. An undefined or
// invalid successor logs an error and leaves the machine unchanged.
func (m *Machine) transitionTo(next Phase) bool {
	if m.inTransition {
		slog.Error("transition requested while transitioning",
			"entity", m.ownerName,
			"from", m.phase,
			"to", next)
		return false
	}

	ns := m.newPhaseState(next)
	if ns == nil {
		slog.Error("invalid transition",
			"entity", m.ownerName,
			"from", m.phase,
			"to", next,
			"skill", m.skill)
		return false
	}

	m.inTransition = true
	m.state.Exit(m)
	from := m.phase
	m.phase = next
	m.state = ns
	ns.Enter(m)
	m.inTransition = false

	slog.Debug("phase transition",
		"entity", m.ownerName,
		"from", from,
		"to", next,
		"skill", m.skill)
	return true
}

// newPhaseState constructs the phase object for a successor, or nil when
// the successor is undefined for the machine's current context.
func (m *Machine) newPhaseState(next Phase) phaseState {
	switch next {
	case PhaseUncharged:
		return &unchargedState{}
	case PhaseCharging:
		if m.tmpl == nil || m.skill.IsRanged() {
			return nil
		}
		return &chargingState{}
	case PhaseCharged:
		return &chargedState{}
	case PhaseAiming:
		if m.tmpl == nil || !m.skill.IsRanged() || m.target == nil {
			return nil
		}
		return &aimingState{}
	case PhaseStartup:
		if m.tmpl == nil {
			return nil
		}
		return &startupState{}
	case PhaseActive:
		if m.tmpl == nil {
			return nil
		}
		return &activeState{}
	case PhaseWaiting:
		if m.tmpl == nil || !m.skill.IsDefensive() {
			return nil
		}
		return &waitingState{}
	case PhaseRecovery:
		if m.tmpl == nil {
			return nil
		}
		return &recoveryState{}
	default:
		return nil
	}
}

// skillRange returns the effective range of the current skill.
func (m *Machine) skillRange() float64 {
	if m.tmpl != nil && m.tmpl.RangeOverride > 0 {
		return m.tmpl.RangeOverride
	}
	return m.weapon.Range
}

// targetInRange reports whether the current target is within skill range.
func (m *Machine) targetInRange() bool {
	if m.target == nil {
		return false
	}
	return m.mover.Position().Distance(m.target.Position()) <= m.skillRange()
}
