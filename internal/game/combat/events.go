package combat

import "github.com/fynwyd/mabigo/internal/model"

// EventType identifies a machine notification.
type EventType int32

const (
	// EventCharged - the Charging phase ended. Completed tells whether the
	// charge actually finished or was cancelled mid-way.
	EventCharged EventType = iota
	// EventSkillExecuted - a skill execution finished its Recovery phase.
	// Success carries the stored hit/miss result for ranged, true otherwise.
	EventSkillExecuted
	// EventSkillCancelled - an in-progress execution was cancelled back to
	// Uncharged by a caller.
	EventSkillCancelled
)

// String returns human-readable event name
func (t EventType) String() string {
	switch t {
	case EventCharged:
		return "CHARGED"
	case EventSkillExecuted:
		return "SKILL_EXECUTED"
	case EventSkillCancelled:
		return "SKILL_CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Event is a machine notification delivered to subscribed observers.
// Consumed by presentation and AI layers.
type Event struct {
	Type    EventType
	OwnerID uint32
	Skill   model.SkillKind

	// Completed is set on EventCharged when the charge reached 100%.
	Completed bool

	// Success is set on EventSkillExecuted.
	Success bool
}

// Observer receives machine events. Observers are invoked synchronously,
// in subscription order, after the exit-side effects of the phase that
// produced the event.
type Observer func(Event)

// Subscribe registers an observer for this machine's events.
// Not safe to call while a tick is in progress.
func (m *Machine) Subscribe(fn Observer) {
	if fn == nil {
		return
	}
	m.observers = append(m.observers, fn)
}

// publish delivers an event to all observers in subscription order.
func (m *Machine) publish(ev Event) {
	ev.OwnerID = m.ownerID
	for _, fn := range m.observers {
		fn(ev)
	}
}
