// Package advancements stores the append-only audit trail of applied
// advancements. Each committed advancement produces exactly one record;
// rejected advancements produce none.
package advancements

import (
	"context"
	"time"

	"github.com/ironhearth/advance-bot/internal/domain/shared"
)

// SkillEntry records the outcome for one selected skill.
type SkillEntry struct {
	Name    string `json:"name"`
	NewRank int    `json:"new_rank"`
	Granted bool   `json:"granted"`
}

// Record is one applied advancement.
type Record struct {
	ID                string           `json:"id"`
	CharacterID       string           `json:"character_id"`
	CharacterName     string           `json:"character_name"`
	Attribute         shared.Attribute `json:"attribute"`
	NewAttributeTotal int              `json:"new_attribute_total"`
	Skills            []SkillEntry     `json:"skills"`
	TalentAction      string           `json:"talent_action"`
	TalentName        string           `json:"talent_name,omitempty"`
	TalentRank        int              `json:"talent_rank,omitempty"`
	Cost              int              `json:"cost"`
	ExperienceLeft    int              `json:"experience_left"`
	CreatedAt         time.Time        `json:"created_at"`
}

// Repository defines the interface for advancement history persistence
type Repository interface {
	// Append stores a new advancement record
	Append(ctx context.Context, record *Record) error

	// ListByCharacter returns the most recent records for a character,
	// newest first, up to limit (0 means all)
	ListByCharacter(ctx context.Context, characterID string, limit int) ([]*Record, error)
}
