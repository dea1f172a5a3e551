package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/ironhearth/advance-bot/internal/domain/character"
	"github.com/ironhearth/advance-bot/internal/domain/shared"
)

// ScalarUpdate is a patch of scalar character fields applied in one call.
// Nil/absent fields are left untouched. AttributeAdvances carries absolute
// new advance counts, not deltas.
type ScalarUpdate struct {
	Experience        *int
	AttributeAdvances map[shared.Attribute]int
}

// SkillRankUpdate sets the rank of one owned skill, matched by
// case-insensitive name.
type SkillRankUpdate struct {
	Name string
	Rank int
}

// Repository defines the interface for character persistence.
//
// The storage only offers per-collection mutations; there is no
// cross-collection transaction. Callers that advance several collections
// together sequence the calls themselves and accept that a failure
// partway leaves the record partially updated.
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// GetByOwner retrieves all characters for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)

	// Update replaces an existing character wholesale
	Update(ctx context.Context, char *character.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error

	// ApplyScalarUpdate patches scalar fields (experience, attribute
	// advances) as a single mutation
	ApplyScalarUpdate(ctx context.Context, id string, update *ScalarUpdate) error

	// BatchUpdateSkillRanks applies rank changes to already-owned skills
	// as a single mutation
	BatchUpdateSkillRanks(ctx context.Context, id string, updates []SkillRankUpdate) error

	// CreateSkill appends a newly acquired skill to the character
	CreateSkill(ctx context.Context, id string, skill *character.Skill) error

	// CreateTalent appends a newly acquired talent to the character
	CreateTalent(ctx context.Context, id string, talent *character.Talent) error

	// UpdateTalent replaces an owned talent, matched by talent ID
	UpdateTalent(ctx context.Context, id string, talent *character.Talent) error
}
