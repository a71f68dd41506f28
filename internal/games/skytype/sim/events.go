package sim

import "github.com/vovakirdan/skytype/internal/core"

// EventKind names a notification produced during a tick.
type EventKind int

const (
	EventUnitDestroyed EventKind = iota
	EventUnitMissed
	EventAreaClear
	EventShieldActivated
	EventShieldExpired
	EventHealApplied
	EventPlayerHit
	EventHealthBar
	EventBossSpawned
	EventBossLetterAdvanced
	EventBossDefeated
	EventBossEscaped
	EventLevelUp
	EventPhaseChanged
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventUnitDestroyed:
		return "unit-destroyed"
	case EventUnitMissed:
		return "unit-missed"
	case EventAreaClear:
		return "area-clear"
	case EventShieldActivated:
		return "shield-activated"
	case EventShieldExpired:
		return "shield-expired"
	case EventHealApplied:
		return "heal-applied"
	case EventPlayerHit:
		return "player-hit"
	case EventHealthBar:
		return "health-bar-update"
	case EventBossSpawned:
		return "boss-spawned"
	case EventBossLetterAdvanced:
		return "boss-letter-advanced"
	case EventBossDefeated:
		return "boss-defeated"
	case EventBossEscaped:
		return "boss-escaped"
	case EventLevelUp:
		return "level-up"
	case EventPhaseChanged:
		return "phase-changed"
	default:
		return "unknown"
	}
}

// Event is one outbound notification. Fields beyond Kind are filled in
// when they apply to the kind.
type Event struct {
	Kind   EventKind
	Unit   UnitKind
	Pos    core.Vec2
	Value  int
	Letter rune
	Phase  Phase
}

// EventQueue collects events during a tick for the presentation layer.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns the pending events and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
