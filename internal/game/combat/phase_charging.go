package combat

import "log/slog"

// chargingState builds charge toward a usable skill.
//
// Crowd control is asymmetric here: knockdown destroys the commitment
// (progress discarded, back to Uncharged), stun merely freezes it.
type chargingState struct {
	elapsed    float64
	chargeTime float64
}

func (s *chargingState) Phase() Phase { return PhaseCharging }

// Enter computes the charge-time target from skill kind and dexterity.
func (s *chargingState) Enter(m *Machine) {
	m.chargeProgress = 0
	s.chargeTime = m.tmpl.BaseChargeTime / m.stats.ChargeTimeFactor()
}

func (s *chargingState) Update(m *Machine, dt float64) Phase {
	if m.status.IsKnockedDown() {
		slog.Debug("charge broken by knockdown",
			"entity", m.ownerName,
			"skill", m.skill,
			"progress", m.chargeProgress)
		return PhaseUncharged
	}
	if m.status.IsStunned() {
		// frozen, not destroyed
		return PhaseCharging
	}

	s.elapsed += dt
	progress := s.elapsed / s.chargeTime
	if progress > 1 {
		progress = 1
	}
	m.chargeProgress = progress

	if progress >= 1 {
		return PhaseCharged
	}
	return PhaseCharging
}

// Exit fires the charged notification on every exit path; Completed tells
// listeners whether the charge actually finished.
func (s *chargingState) Exit(m *Machine) {
	m.publish(Event{
		Type:      EventCharged,
		Skill:     m.skill,
		Completed: m.chargeProgress >= 1,
	})
}
