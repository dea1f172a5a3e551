// Package console logs advancement outcomes. Used as the user-facing
// notification channel when no Discord session is configured.
package console

import (
	"log"

	"github.com/ironhearth/advance-bot/internal/events"
	"github.com/ironhearth/advance-bot/internal/services/advancement"
)

// Notifier writes notifications to the standard logger.
type Notifier struct{}

// New creates a new console notifier
func New() *Notifier {
	return &Notifier{}
}

// ID implements events.Listener
func (n *Notifier) ID() string {
	return "console-notifier"
}

// Priority implements events.Listener
func (n *Notifier) Priority() int {
	return 10
}

// HandleEvent implements events.Listener
func (n *Notifier) HandleEvent(event events.Event) error {
	switch e := event.(type) {
	case *advancement.AppliedEvent:
		log.Printf("advancement applied: %s", e.Summary.Text())
	case *advancement.RejectedEvent:
		log.Printf("advancement rejected: %s", e.Reason())
	}
	return nil
}
