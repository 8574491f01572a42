package resolve

import (
	"log/slog"
	"math/rand/v2"

	"github.com/fynwyd/mabigo/internal/config"
	"github.com/fynwyd/mabigo/internal/data"
	"github.com/fynwyd/mabigo/internal/game/combat"
	"github.com/fynwyd/mabigo/internal/model"
)

// HitResult содержит результат одного разрешённого взаимодействия
// для наблюдения в тестах и статистике симуляции.
type HitResult struct {
	AttackerID uint32
	TargetID   uint32
	Kind       model.SkillKind
	Damage     int32
	Missed     bool // ranged shot that failed its roll
	Blocked    bool // stopped by a Defense window
	Countered  bool // reflected by a Counter window
}

// Participant is one registered combatant with its machine and meter.
type Participant struct {
	Actor   *model.Combatant
	Machine *combat.Machine
	Meter   *combat.KnockdownMeter

	// lastHitFrom is where the most recent hit came from; knock
	// displacement pushes away from it.
	lastHitFrom model.Position
}

// Manager is the interaction resolver: it receives skill executions from
// the machines, matches them against open defensive windows, applies
// damage and crowd control, and feeds the knockdown meters.
//
// The wider combo rules engine sits behind this same entry point; only the
// 1v1 matching needed by the execution core lives here.
//
// Single-threaded like the rest of the core: one goroutine ticks all
// participants and resolutions happen inline on that tick.
type Manager struct {
	cfg config.Combat
	rng *rand.Rand

	participants map[uint32]*Participant
	order        []uint32 // registration order, for deterministic iteration

	// waiting maps entity ID to the defensive skill whose window is open.
	waiting map[uint32]model.SkillKind

	// hitObserver — callback для наблюдения за результатами (nil в production).
	hitObserver func(HitResult)
}

// NewManager creates an empty resolver.
func NewManager(cfg config.Combat, rng *rand.Rand) *Manager {
	return &Manager{
		cfg:          cfg,
		rng:          rng,
		participants: make(map[uint32]*Participant),
		waiting:      make(map[uint32]model.SkillKind),
	}
}

// SetHitObserver sets callback for observing resolution results (for tests).
func (m *Manager) SetHitObserver(fn func(HitResult)) {
	m.hitObserver = fn
}

// Register adds a combatant and wires its knockdown meter to this resolver.
// Returns the participant handle the simulation ticks through.
func (m *Manager) Register(actor *model.Combatant, machine *combat.Machine) *Participant {
	p := &Participant{Actor: actor, Machine: machine}
	p.Meter = combat.NewKnockdownMeter(
		actor.Name(),
		m.cfg,
		func() { m.applyKnockback(p) },
		func() { m.applyMeterKnockdown(p) },
	)
	m.participants[actor.ObjectID()] = p
	m.order = append(m.order, actor.ObjectID())
	return p
}

// Participant returns a registered participant by ID (nil if unknown).
func (m *Manager) Participant(id uint32) *Participant {
	return m.participants[id]
}

// IsWaiting reports whether an entity has an open defensive window.
func (m *Manager) IsWaiting(id uint32) bool {
	_, ok := m.waiting[id]
	return ok
}

// Tick advances the knockdown meters of all participants.
func (m *Manager) Tick(dt float64) {
	for _, id := range m.order {
		m.participants[id].Meter.Tick(dt)
	}
}

// ProcessSkillExecution receives one skill execution from a machine.
// Invoked exactly once per Active-phase entry that passed validation.
func (m *Manager) ProcessSkillExecution(exec combat.Execution) {
	attacker := m.participants[exec.AttackerID]
	if attacker == nil {
		slog.Error("execution from unregistered entity", "attackerID", exec.AttackerID)
		return
	}

	if exec.Kind.IsDefensive() {
		m.waiting[exec.AttackerID] = exec.Kind
		slog.Debug("defensive window opened",
			"entity", attacker.Actor.Name(),
			"skill", exec.Kind)
		return
	}

	if exec.Kind == model.SkillWindmill {
		m.resolveWindmill(attacker)
		return
	}

	defender := m.participants[exec.TargetID]
	if defender == nil {
		slog.Debug("execution against unregistered target",
			"attacker", attacker.Actor.Name(),
			"targetID", exec.TargetID)
		return
	}

	if exec.Ranged && !exec.RangedHit {
		slog.Debug("ranged shot missed",
			"attacker", attacker.Actor.Name(),
			"target", defender.Actor.Name(),
			"missPoint", exec.MissPoint)
		m.observe(HitResult{
			AttackerID: exec.AttackerID,
			TargetID:   exec.TargetID,
			Kind:       exec.Kind,
			Missed:     true,
		})
		return
	}

	m.resolveHit(attacker, defender, exec.Kind)
}

// RemoveWaitingRegistration removes an entity from the waiting registry.
// Invoked exactly once per Waiting-phase exit; idempotent so a leaked
// double call cannot corrupt state.
func (m *Manager) RemoveWaitingRegistration(entityID uint32) {
	if _, ok := m.waiting[entityID]; ok {
		delete(m.waiting, entityID)
		slog.Debug("waiting registration removed", "entityID", entityID)
	}
}

// resolveWindmill hits every other participant inside the spin radius.
func (m *Manager) resolveWindmill(attacker *Participant) {
	tmpl := data.GetSkillTemplate(model.SkillWindmill)
	if tmpl == nil {
		return
	}
	center := attacker.Actor.Position()
	for _, id := range m.order {
		if id == attacker.Actor.ObjectID() {
			continue
		}
		defender := m.participants[id]
		if defender.Actor.IsDead() {
			continue
		}
		if center.Distance(defender.Actor.Position()) > tmpl.RangeOverride {
			continue
		}
		m.resolveHit(attacker, defender, model.SkillWindmill)
	}
}

// resolveHit matches one offensive execution against a single defender.
func (m *Manager) resolveHit(attacker, defender *Participant, kind model.SkillKind) {
	if defender.Actor.IsDead() {
		return
	}

	defender.lastHitFrom = attacker.Actor.Position()

	// Open defensive window? Ranged shots fly past both stances.
	if window, ok := m.waiting[defender.Actor.ObjectID()]; ok && !kind.IsRanged() {
		switch window {
		case model.SkillDefense:
			if kind == model.SkillSmash || kind == model.SkillWindmill {
				// heavy attacks break straight through the guard,
				// consuming the window on their way in
				defender.Machine.RequestTransition(combat.PhaseRecovery)
			} else {
				m.resolveBlock(attacker, defender, kind)
				return
			}
		case model.SkillCounter:
			m.resolveCounter(attacker, defender, kind)
			return
		}
	}

	damage := m.rollDamage(attacker, kind)
	defender.Actor.ReduceHP(damage)

	// Crowd control by skill weight: heavy skills knock down outright,
	// light ones stagger and feed the meter instead.
	switch kind {
	case model.SkillSmash, model.SkillWindmill:
		m.knockDown(defender, model.StatusKnockdownInteraction)
	default:
		defender.Actor.Status().ApplyStun(m.cfg.HitStunSeconds)
		defender.Meter.AddBuildup(float64(damage))
	}

	slog.Debug("hit resolved",
		"attacker", attacker.Actor.Name(),
		"target", defender.Actor.Name(),
		"skill", kind,
		"damage", damage)

	m.observe(HitResult{
		AttackerID: attacker.Actor.ObjectID(),
		TargetID:   defender.Actor.ObjectID(),
		Kind:       kind,
		Damage:     damage,
	})
}

// resolveBlock consumes a Defense window: no damage, the attacker is
// staggered by the parry.
func (m *Manager) resolveBlock(attacker, defender *Participant, kind model.SkillKind) {
	defender.Machine.RequestTransition(combat.PhaseRecovery)
	attacker.Actor.Status().ApplyStun(m.cfg.HitStunSeconds)

	slog.Debug("attack blocked",
		"attacker", attacker.Actor.Name(),
		"defender", defender.Actor.Name(),
		"skill", kind)

	m.observe(HitResult{
		AttackerID: attacker.Actor.ObjectID(),
		TargetID:   defender.Actor.ObjectID(),
		Kind:       kind,
		Blocked:    true,
	})
}

// resolveCounter consumes a Counter window: the blow is reflected back at
// the attacker, amplified, and knocks the attacker down.
func (m *Manager) resolveCounter(attacker, defender *Participant, kind model.SkillKind) {
	defender.Machine.RequestTransition(combat.PhaseRecovery)

	reflected := int32(float64(m.rollDamage(attacker, kind)) * 1.5)
	attacker.lastHitFrom = defender.Actor.Position()
	attacker.Actor.ReduceHP(reflected)
	m.knockDown(attacker, model.StatusKnockdownInteraction)

	slog.Debug("attack countered",
		"attacker", attacker.Actor.Name(),
		"defender", defender.Actor.Name(),
		"skill", kind,
		"reflected", reflected)

	m.observe(HitResult{
		AttackerID: attacker.Actor.ObjectID(),
		TargetID:   defender.Actor.ObjectID(),
		Kind:       kind,
		Damage:     reflected,
		Countered:  true,
	})
}

// rollDamage draws from the attacker's weapon band scaled by the skill.
func (m *Manager) rollDamage(attacker *Participant, kind model.SkillKind) int32 {
	weapon := data.GetWeaponTemplate(attacker.Actor.WeaponID())
	if weapon == nil {
		return 1
	}

	band := weapon.MaxDamage - weapon.MinDamage
	base := float64(weapon.MinDamage)
	if band > 0 {
		base += float64(m.rng.Int32N(band + 1))
	}

	damage := int32(base * skillDamageMultiplier(kind))
	if damage < 1 {
		damage = 1
	}
	return damage
}

// skillDamageMultiplier возвращает множитель урона скилла.
func skillDamageMultiplier(kind model.SkillKind) float64 {
	switch kind {
	case model.SkillSmash:
		return 2.0
	case model.SkillWindmill:
		return 1.5
	case model.SkillLunge:
		return 1.3
	default:
		return 1.0
	}
}

// knockDown applies a knockdown status and pushes the entity away from the
// source of the most recent hit.
func (m *Manager) knockDown(p *Participant, kind model.StatusKind) {
	p.Actor.Status().ApplyKnockdown(kind, m.cfg.KnockdownSeconds)
	m.displaceAway(p, m.cfg.KnockdownDistance)
}

// applyKnockback is the meter's knockback-threshold callback.
func (m *Manager) applyKnockback(p *Participant) {
	p.Actor.Status().ApplyStun(m.cfg.HitStunSeconds)
	m.displaceAway(p, m.cfg.KnockbackDistance)
	slog.Debug("knockback applied", "entity", p.Actor.Name())
}

// applyMeterKnockdown is the meter's max-threshold callback.
func (m *Manager) applyMeterKnockdown(p *Participant) {
	p.Actor.Status().ApplyKnockdown(model.StatusKnockdownMeter, m.cfg.KnockdownSeconds)
	m.displaceAway(p, m.cfg.KnockdownDistance)
	slog.Debug("meter knockdown applied", "entity", p.Actor.Name())
}

// displaceAway pushes p away from the most recent hit source.
func (m *Manager) displaceAway(p *Participant, distance float64) {
	dir := p.Actor.Position().Sub(p.lastHitFrom).Normalized()
	if dir.Length() == 0 {
		// hit source unknown or overlapping — pick a stable axis
		dir = model.Vector{X: 1}
	}
	p.Actor.ApplyDisplacement(dir.Scaled(distance))
}

// observe notifies the hit observer (synchronously, on the resolving tick).
func (m *Manager) observe(r HitResult) {
	if m.hitObserver != nil {
		m.hitObserver(r)
	}
}
