package combat

import (
	"log/slog"

	"github.com/fynwyd/mabigo/internal/data"
	"github.com/fynwyd/mabigo/internal/model"
)

// activeState performs the skill's actual effect exactly once on entry and
// then holds for the skill's active time. This phase cannot be cancelled by
// any caller-initiated path; only its own timer (or the immediate defensive
// branch to Waiting) advances it.
type activeState struct {
	remaining float64
}

func (s *activeState) Phase() Phase { return PhaseActive }

// Enter dispatches the execution: range check, target validation, resolver
// dispatch, Lunge displacement and - for ranged - the hit roll against the
// accuracy built while Aiming.
func (s *activeState) Enter(m *Machine) {
	s.remaining = m.tmpl.ActiveTime
	if m.skill.IsRanged() {
		s.remaining = data.RangedActiveSeconds
	}
	m.executeSkill()
}

func (s *activeState) Update(m *Machine, dt float64) Phase {
	if m.skill.IsDefensive() {
		return PhaseWaiting
	}
	s.remaining -= dt
	if s.remaining <= 0 {
		return PhaseRecovery
	}
	return PhaseActive
}

func (s *activeState) Exit(m *Machine) {}

// executeSkill runs the skill effect once, on Active entry.
// Validation failures (stale target, out of range) are normal fizzles, not
// errors: the phase timeline still runs, nothing is dispatched.
func (m *Machine) executeSkill() {
	exec := Execution{AttackerID: m.ownerID, Kind: m.skill}

	if m.skill.NeedsTarget() {
		if m.target == nil || m.target.IsDead() {
			slog.Debug("skill fizzled: no target", "entity", m.ownerName, "skill", m.skill)
			m.fizzleRanged()
			return
		}
		if !m.targetInRange() {
			slog.Debug("skill fizzled: target out of range", "entity", m.ownerName, "skill", m.skill)
			m.fizzleRanged()
			return
		}
		exec.TargetID = m.target.ObjectID()
	}

	if m.skill == model.SkillLunge {
		dir := m.target.Position().Sub(m.mover.Position()).Normalized()
		m.mover.ApplyDisplacement(dir.Scaled(m.tmpl.DashDistance))
	}

	if m.skill.IsRanged() {
		// Roll against the accuracy built while Aiming, store the result,
		// dispatch — and only then stop the tracker. The ordering is a
		// contract with the Aiming phase, which leaves the tracker running
		// across its exit for exactly this roll.
		hit := m.aim.RollHit(m.rng)
		m.lastRangedHit = hit
		exec.Ranged = true
		exec.RangedHit = hit
		if !hit {
			exec.MissPoint = m.aim.MissPosition(m.mover.Position(), m.target.Position(), m.rng)
		}
		m.resolver.ProcessSkillExecution(exec)
		m.aim.StopAiming()
		return
	}

	m.resolver.ProcessSkillExecution(exec)
}

// fizzleRanged records a failed shot and stops the tracker when a ranged
// execution dies to validation instead of a roll.
func (m *Machine) fizzleRanged() {
	if !m.skill.IsRanged() {
		return
	}
	m.lastRangedHit = false
	m.aim.StopAiming()
}
