package combat

import "log/slog"

// waitingState is the open window of a defensive skill. The execution was
// already registered with the resolver on Active entry, so this state's
// entry registers nothing (avoiding double registration).
//
// There is no natural timer: the window ends only when the resolver
// consumes it (an attack landed) or stamina runs dry.
type waitingState struct{}

func (s *waitingState) Phase() Phase { return PhaseWaiting }

func (s *waitingState) Enter(m *Machine) {}

func (s *waitingState) Update(m *Machine, dt float64) Phase {
	m.stamina.Drain(m.tmpl.WaitDrainPerSec, dt)
	if m.stamina.Current() <= 0 {
		slog.Debug("waiting ended: stamina depleted",
			"entity", m.ownerName,
			"skill", m.skill)
		return PhaseRecovery
	}
	return PhaseWaiting
}

// Exit unconditionally removes this entity from the resolver's waiting
// registry and releases the movement restriction. This is the most
// important cleanup guarantee in the machine: it runs exactly once on
// every exit path — stamina depletion, resolver signal, manual cancel —
// because the transition protocol calls Exit exactly once per state object.
func (s *waitingState) Exit(m *Machine) {
	m.resolver.RemoveWaitingRegistration(m.ownerID)
	m.mover.SetMovementModifier(1.0)
}
