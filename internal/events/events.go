// Package events provides a small in-process event bus used to fan out
// advancement outcomes to notification and audit listeners without coupling
// the commit path to any of them.
package events

// EventType identifies a category of event.
type EventType string

const (
	// AdvancementApplied fires after an advancement has been committed.
	AdvancementApplied EventType = "advancement.applied"

	// AdvancementRejected fires when an advancement fails its precondition
	// check and nothing was mutated.
	AdvancementRejected EventType = "advancement.rejected"
)

// Event is anything that can be emitted on the bus.
type Event interface {
	EventType() EventType
}

// Listener processes events.
type Listener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}
