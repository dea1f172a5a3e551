// Package catalog holds the read-only content templates served by the
// external content catalog. Templates are never mutated; acquiring one
// clones it into an owned record on the character.
package catalog

import "github.com/ironhearth/advance-bot/internal/domain/shared"

// SkillTemplate describes a skill a character can acquire.
type SkillTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Attribute   shared.Attribute `json:"attribute"`
}

// TalentTemplate describes a talent a character can purchase.
type TalentTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MaxRank     int    `json:"max_rank,omitempty"`
}
