package advancement

import (
	"fmt"
	"strings"
	"time"

	"github.com/ironhearth/advance-bot/internal/domain/shared"
	"github.com/ironhearth/advance-bot/internal/events"
)

// Talent action values recorded in summaries and audit entries.
const (
	TalentActionAdvanced  = "advanced"
	TalentActionPurchased = "purchased"
	TalentActionSkipped   = "skipped"
)

// SkillResult is the outcome for one selected skill. Granted is false when
// the catalog could not resolve an unowned skill and the commit skipped it.
type SkillResult struct {
	Name    string
	NewRank int
	Granted bool
}

// TalentResult describes what happened on the talent step.
type TalentResult struct {
	Action  string
	Name    string
	NewRank int
}

// Summary is the human-facing result of one committed advancement.
type Summary struct {
	CharacterID       string
	CharacterName     string
	Attribute         shared.Attribute
	NewAdvances       int
	NewAttributeTotal int
	Skills            []SkillResult
	Talent            TalentResult
	Cost              int
	ExperienceLeft    int
	AppliedAt         time.Time
}

// Text renders the summary as a single human-readable line.
func (s *Summary) Text() string {
	parts := make([]string, 0, 3)
	parts = append(parts, fmt.Sprintf("%s %d (advance %d)", s.Attribute.Label(), s.NewAttributeTotal, s.NewAdvances))

	names := make([]string, 0, len(s.Skills))
	for _, skill := range s.Skills {
		names = append(names, skill.Name)
	}
	parts = append(parts, fmt.Sprintf("skills +1 each: %s", strings.Join(names, ", ")))

	switch s.Talent.Action {
	case TalentActionAdvanced:
		parts = append(parts, fmt.Sprintf("talent %s advanced to rank %d", s.Talent.Name, s.Talent.NewRank))
	case TalentActionPurchased:
		parts = append(parts, fmt.Sprintf("talent %s purchased", s.Talent.Name))
	default:
		parts = append(parts, "talent step skipped")
	}

	return fmt.Sprintf("%s advanced: %s (-%d XP, %d left)",
		s.CharacterName, strings.Join(parts, "; "), s.Cost, s.ExperienceLeft)
}

// AppliedEvent is emitted after an advancement has been committed.
type AppliedEvent struct {
	Summary *Summary
}

// EventType implements events.Event
func (e *AppliedEvent) EventType() events.EventType {
	return events.AdvancementApplied
}

// RejectedEvent is emitted when the precondition check fails and nothing
// was mutated.
type RejectedEvent struct {
	CharacterID   string
	CharacterName string
	Required      int
	Available     int
}

// EventType implements events.Event
func (e *RejectedEvent) EventType() events.EventType {
	return events.AdvancementRejected
}

// Reason renders the rejection as a user-facing message.
func (e *RejectedEvent) Reason() string {
	return fmt.Sprintf("%s needs %d XP to advance but only has %d", e.CharacterName, e.Required, e.Available)
}
