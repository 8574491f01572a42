package combat

// chargedState holds a finished charge. Defensive skills auto-execute:
// they move to Startup on their first tick here. Offensive skills wait for
// an explicit Execute call.
type chargedState struct{}

func (s *chargedState) Phase() Phase { return PhaseCharged }

func (s *chargedState) Enter(m *Machine) {}

func (s *chargedState) Update(m *Machine, dt float64) Phase {
	if m.skill.IsDefensive() {
		return PhaseStartup
	}
	return PhaseCharged
}

func (s *chargedState) Exit(m *Machine) {}
