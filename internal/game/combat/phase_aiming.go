package combat

import "log/slog"

// aimingState builds ranged accuracy against the current target.
// Every tick re-validates that the target still exists and is in weapon
// range; losing either loses the aim entirely.
type aimingState struct{}

func (s *aimingState) Phase() Phase { return PhaseAiming }

// Enter starts the accuracy sub-machine against the current target.
func (s *aimingState) Enter(m *Machine) {
	m.aim.StartAiming(m.target)
}

func (s *aimingState) Update(m *Machine, dt float64) Phase {
	if m.status.IsKnockedDown() {
		slog.Debug("aim broken by knockdown", "entity", m.ownerName)
		return PhaseUncharged
	}
	if m.target == nil || m.target.IsDead() {
		slog.Debug("aim lost: target gone", "entity", m.ownerName)
		return PhaseUncharged
	}
	if !m.targetInRange() {
		slog.Debug("aim lost: target out of range", "entity", m.ownerName)
		return PhaseUncharged
	}

	if !m.status.IsStunned() {
		m.aim.Tick(dt, m.mover.IsMoving())
	}
	return PhaseAiming
}

// Exit deliberately does NOT stop accuracy tracking: the Active phase rolls
// the shot against the value built here and stops the tracker only after
// the roll. Lost-aim paths go through Uncharged, whose entry stops it.
func (s *aimingState) Exit(m *Machine) {}
