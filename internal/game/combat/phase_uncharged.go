package combat

import (
	"github.com/fynwyd/mabigo/internal/data"
	"github.com/fynwyd/mabigo/internal/model"
)

// unchargedState is the initial/idle phase and the terminal phase of every
// cancellation path. It never transitions on its own; StartCharging or
// StartAiming pull the machine out of it.
type unchargedState struct{}

func (s *unchargedState) Phase() Phase { return PhaseUncharged }

// Enter resets charge progress, releases the movement restriction, resets
// the active skill to the default and stops any leftover aim tracking from
// a cancelled or lost aim.
func (s *unchargedState) Enter(m *Machine) {
	m.chargeProgress = 0
	m.mover.SetMovementModifier(1.0)
	m.skill = model.SkillAttack
	m.tmpl = data.GetSkillTemplate(model.SkillAttack)
	m.aim.StopAiming()
}

func (s *unchargedState) Update(m *Machine, dt float64) Phase {
	return PhaseUncharged
}

func (s *unchargedState) Exit(m *Machine) {}
