package model

import "log/slog"

// StatusKind определяет тип статус-эффекта.
type StatusKind int32

const (
	// StatusStun - pauses skill progress without erasing it
	StatusStun StatusKind = iota
	// StatusKnockdownInteraction - knockdown applied by a combat interaction
	// (Counter hit, Smash, Windmill)
	StatusKnockdownInteraction
	// StatusKnockdownMeter - knockdown triggered by the knockdown meter
	// crossing its maximum
	StatusKnockdownMeter
	// StatusRest - resting, raises stamina regeneration; broken by damage
	StatusRest
)

// String returns human-readable status name
func (k StatusKind) String() string {
	switch k {
	case StatusStun:
		return "STUN"
	case StatusKnockdownInteraction:
		return "KNOCKDOWN"
	case StatusKnockdownMeter:
		return "METER_KNOCKDOWN"
	case StatusRest:
		return "REST"
	default:
		return "UNKNOWN"
	}
}

// isKnockdown reports whether the kind roots the entity on the ground.
func (k StatusKind) isKnockdown() bool {
	return k == StatusKnockdownInteraction || k == StatusKnockdownMeter
}

// activeStatus is one applied effect with its remaining duration.
type activeStatus struct {
	kind      StatusKind
	remaining float64 // seconds; <0 means until explicitly removed (Rest)
}

// StatusEffectSet holds the crowd-control and rest flags of one combatant.
//
// Stacking rules:
//   - a new Stun is rejected while knocked down;
//   - a new knockdown overrides and cancels an active Stun;
//   - applying a status while resting breaks the rest.
//
// Not safe for concurrent use; mutated only from the owner's tick and the
// interaction resolver running on the same tick.
type StatusEffectSet struct {
	ownerName string
	effects   []activeStatus
}

// NewStatusEffectSet создаёт пустой набор статус-эффектов.
func NewStatusEffectSet(ownerName string) *StatusEffectSet {
	return &StatusEffectSet{
		ownerName: ownerName,
		effects:   make([]activeStatus, 0, 4),
	}
}

// IsStunned возвращает true если активен Stun.
func (s *StatusEffectSet) IsStunned() bool {
	return s.has(StatusStun)
}

// IsKnockedDown возвращает true если активен любой knockdown.
func (s *StatusEffectSet) IsKnockedDown() bool {
	for _, e := range s.effects {
		if e.kind.isKnockdown() {
			return true
		}
	}
	return false
}

// IsResting returns true while the Rest effect is active.
func (s *StatusEffectSet) IsResting() bool {
	return s.has(StatusRest)
}

// CanAct returns true when no crowd control blocks acting.
func (s *StatusEffectSet) CanAct() bool {
	return !s.IsStunned() && !s.IsKnockedDown()
}

// ApplyStun applies a stun for duration seconds.
// Rejected while knocked down (the harder control wins).
// Reapplying refreshes the duration if longer.
func (s *StatusEffectSet) ApplyStun(duration float64) bool {
	if duration <= 0 {
		return false
	}
	if s.IsKnockedDown() {
		slog.Debug("stun rejected: target knocked down", "target", s.ownerName)
		return false
	}
	s.clearRest()
	for i := range s.effects {
		if s.effects[i].kind == StatusStun {
			if duration > s.effects[i].remaining {
				s.effects[i].remaining = duration
			}
			return true
		}
	}
	s.effects = append(s.effects, activeStatus{kind: StatusStun, remaining: duration})
	slog.Debug("stun applied", "target", s.ownerName, "duration", duration)
	return true
}

// ApplyKnockdown applies a knockdown for duration seconds.
// An active Stun is cancelled: knockdown overrides it.
// Reapplying refreshes the duration if longer.
func (s *StatusEffectSet) ApplyKnockdown(kind StatusKind, duration float64) bool {
	if !kind.isKnockdown() || duration <= 0 {
		return false
	}
	s.clearRest()
	s.remove(StatusStun)
	for i := range s.effects {
		if s.effects[i].kind == kind {
			if duration > s.effects[i].remaining {
				s.effects[i].remaining = duration
			}
			return true
		}
	}
	s.effects = append(s.effects, activeStatus{kind: kind, remaining: duration})
	slog.Debug("knockdown applied", "target", s.ownerName, "kind", kind, "duration", duration)
	return true
}

// StartRest enters the resting state. Rejected while crowd-controlled.
// Rest has no natural duration; it ends via StopRest or BreakRest.
func (s *StatusEffectSet) StartRest() bool {
	if !s.CanAct() {
		return false
	}
	if s.IsResting() {
		return true
	}
	s.effects = append(s.effects, activeStatus{kind: StatusRest, remaining: -1})
	return true
}

// StopRest leaves the resting state voluntarily.
func (s *StatusEffectSet) StopRest() {
	s.remove(StatusRest)
}

// BreakRest ends rest due to incoming damage.
func (s *StatusEffectSet) BreakRest() {
	if s.has(StatusRest) {
		slog.Debug("rest broken by damage", "target", s.ownerName)
		s.remove(StatusRest)
	}
}

// Tick advances effect timers by dt seconds and expires finished effects.
func (s *StatusEffectSet) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	n := 0
	for _, e := range s.effects {
		if e.remaining >= 0 {
			e.remaining -= dt
			if e.remaining <= 0 {
				slog.Debug("status expired", "target", s.ownerName, "kind", e.kind)
				continue
			}
		}
		s.effects[n] = e
		n++
	}
	s.effects = s.effects[:n]
}

// has reports whether an effect of the given kind is active.
func (s *StatusEffectSet) has(kind StatusKind) bool {
	for _, e := range s.effects {
		if e.kind == kind {
			return true
		}
	}
	return false
}

// remove drops all effects of the given kind.
func (s *StatusEffectSet) remove(kind StatusKind) {
	n := 0
	for _, e := range s.effects {
		if e.kind != kind {
			s.effects[n] = e
			n++
		}
	}
	s.effects = s.effects[:n]
}

// clearRest ends rest when a hostile status lands.
func (s *StatusEffectSet) clearRest() {
	s.remove(StatusRest)
}
