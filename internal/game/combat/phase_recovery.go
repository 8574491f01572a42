package combat

// recoveryState is the post-execution cooldown back to idle.
type recoveryState struct {
	remaining float64
}

func (s *recoveryState) Phase() Phase { return PhaseRecovery }

// Enter computes the recovery duration from skill and weapon data; ranged
// recovery scales inversely with weapon speed.
func (s *recoveryState) Enter(m *Machine) {
	s.remaining = m.tmpl.RecoveryTime
	if m.skill.IsRanged() {
		s.remaining = m.tmpl.RecoveryTime / m.weapon.Speed
	}
}

func (s *recoveryState) Update(m *Machine, dt float64) Phase {
	s.remaining -= dt
	if s.remaining <= 0 {
		return PhaseUncharged
	}
	return PhaseRecovery
}

// Exit fires the completion event. Success carries the stored hit/miss
// result for ranged executions and true for everything else.
func (s *recoveryState) Exit(m *Machine) {
	success := true
	if m.skill.IsRanged() {
		success = m.lastRangedHit
	}
	m.publish(Event{
		Type:    EventSkillExecuted,
		Skill:   m.skill,
		Success: success,
	})
}
