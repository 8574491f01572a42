package combat

// Phase represents the execution phase of a combatant's active skill.
// Exactly one phase is active per entity at any time.
type Phase int32

const (
	// PhaseUncharged - idle, no skill in progress
	PhaseUncharged Phase = iota
	// PhaseCharging - building charge toward a usable skill
	PhaseCharging
	// PhaseCharged - charge complete, waiting for execute (offensive)
	PhaseCharged
	// PhaseAiming - ranged accuracy buildup against a target
	PhaseAiming
	// PhaseStartup - committed windup before the strike
	PhaseStartup
	// PhaseActive - the strike itself; uncancellable
	PhaseActive
	// PhaseWaiting - defensive window open, registered with the resolver
	PhaseWaiting
	// PhaseRecovery - post-execution cooldown back to idle
	PhaseRecovery
)

// String returns human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseUncharged:
		return "UNCHARGED"
	case PhaseCharging:
		return "CHARGING"
	case PhaseCharged:
		return "CHARGED"
	case PhaseAiming:
		return "AIMING"
	case PhaseStartup:
		return "STARTUP"
	case PhaseActive:
		return "ACTIVE"
	case PhaseWaiting:
		return "WAITING"
	case PhaseRecovery:
		return "RECOVERY"
	default:
		return "UNKNOWN"
	}
}

// phaseState is one phase object. Each state owns its entry effects,
// per-tick behavior and transition rule.
//
// Update returns the successor phase; returning the current phase means
// "stay". Exit runs unconditionally on every transition path before the
// successor's Enter, with no tick in between.
type phaseState interface {
	Phase() Phase
	Enter(m *Machine)
	Update(m *Machine, dt float64) Phase
	Exit(m *Machine)
}
