package events

import (
	"log"
	"sort"
	"sync"
)

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]Listener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds a listener for a specific event type
func (b *Bus) Subscribe(eventType EventType, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)

	// Sort by priority
	sort.Slice(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
		return
	}
}

// Emit sends an event to all registered listeners in priority order.
// A failing listener does not stop delivery to the rest; its error is
// logged and the last one is returned.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]Listener, len(b.listeners[event.EventType()]))
	copy(listeners, b.listeners[event.EventType()])
	b.mu.RUnlock()

	var lastErr error
	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			log.Printf("events: listener %s failed handling %s: %v", listener.ID(), event.EventType(), err)
			lastErr = err
		}
	}

	return lastErr
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]Listener)
}
