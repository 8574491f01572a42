package combat

// startupState is the committed windup before the strike. Still
// externally cancellable; knockdown aborts it, stun freezes the countdown.
//
// The movement restriction applied here persists through Active and is
// released by Waiting's exit or by returning to Uncharged.
type startupState struct {
	remaining float64
}

func (s *startupState) Phase() Phase { return PhaseStartup }

// Enter applies the skill's movement restriction and computes the
// skill-and-weapon-derived windup duration.
func (s *startupState) Enter(m *Machine) {
	s.remaining = m.tmpl.StartupTime / m.weapon.Speed
	m.mover.SetMovementModifier(m.tmpl.CommittedMoveMod)
}

func (s *startupState) Update(m *Machine, dt float64) Phase {
	if m.status.IsKnockedDown() {
		return PhaseUncharged
	}
	if m.status.IsStunned() {
		return PhaseStartup
	}

	s.remaining -= dt
	if s.remaining <= 0 {
		return PhaseActive
	}
	return PhaseStartup
}

func (s *startupState) Exit(m *Machine) {}
