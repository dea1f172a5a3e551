package characters

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ironhearth/advance-bot/internal/domain/character"
	apperr "github.com/ironhearth/advance-bot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

// deepCopy clones a character so callers never share memory with the store.
func deepCopy(char *character.Character) *character.Character {
	data, err := json.Marshal(char)
	if err != nil {
		panic("character must be JSON-serializable: " + err.Error())
	}
	var out character.Character
	if err := json.Unmarshal(data, &out); err != nil {
		panic("character must be JSON-deserializable: " + err.Error())
	}
	return &out
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.characters[char.ID] = deepCopy(char)
	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return deepCopy(char), nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*character.Character
	for _, char := range r.characters {
		if char.OwnerID == ownerID {
			result = append(result, deepCopy(char))
		}
	}

	return result, nil
}

// Update replaces an existing character wholesale
func (r *InMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; !exists {
		return apperr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.characters[char.ID] = deepCopy(char)
	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}

// mutate runs fn against the stored character under the write lock.
func (r *InMemoryRepository) mutate(id string, fn func(char *character.Character) error) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[id]
	if !exists {
		return apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return fn(char)
}

// ApplyScalarUpdate patches scalar fields as a single mutation
func (r *InMemoryRepository) ApplyScalarUpdate(ctx context.Context, id string, update *ScalarUpdate) error {
	if update == nil {
		return apperr.InvalidArgument("update cannot be nil")
	}

	return r.mutate(id, func(char *character.Character) error {
		if update.Experience != nil {
			if *update.Experience < 0 {
				return apperr.InvalidArgumentf("experience cannot go negative (got %d)", *update.Experience)
			}
			char.Experience = *update.Experience
		}
		for attr, advances := range update.AttributeAdvances {
			if advances < 0 {
				return apperr.InvalidArgumentf("advances for %s cannot go negative (got %d)", attr, advances)
			}
			char.Attribute(attr).Advances = advances
		}
		return nil
	})
}

// BatchUpdateSkillRanks applies rank changes to owned skills as a single mutation
func (r *InMemoryRepository) BatchUpdateSkillRanks(ctx context.Context, id string, updates []SkillRankUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	return r.mutate(id, func(char *character.Character) error {
		for _, update := range updates {
			skill := char.SkillByName(update.Name)
			if skill == nil {
				return apperr.NotFoundf("character '%s' does not own skill '%s'", id, update.Name).
					WithMeta("character_id", id).
					WithMeta("skill_name", update.Name)
			}
			skill.Rank = update.Rank
		}
		return nil
	})
}

// CreateSkill appends a newly acquired skill to the character
func (r *InMemoryRepository) CreateSkill(ctx context.Context, id string, skill *character.Skill) error {
	if skill == nil {
		return apperr.InvalidArgument("skill cannot be nil")
	}
	if skill.Name == "" {
		return apperr.InvalidArgument("skill name is required")
	}

	return r.mutate(id, func(char *character.Character) error {
		if char.OwnsSkill(skill.Name) {
			return apperr.AlreadyExistsf("character '%s' already owns skill '%s'", id, skill.Name).
				WithMeta("character_id", id).
				WithMeta("skill_name", skill.Name)
		}
		copied := *skill
		char.Skills = append(char.Skills, &copied)
		return nil
	})
}

// CreateTalent appends a newly acquired talent to the character
func (r *InMemoryRepository) CreateTalent(ctx context.Context, id string, talent *character.Talent) error {
	if talent == nil {
		return apperr.InvalidArgument("talent cannot be nil")
	}
	if talent.ID == "" {
		return apperr.InvalidArgument("talent ID is required")
	}

	return r.mutate(id, func(char *character.Character) error {
		if char.TalentByID(talent.ID) != nil {
			return apperr.AlreadyExistsf("character '%s' already owns talent '%s'", id, talent.ID).
				WithMeta("character_id", id).
				WithMeta("talent_id", talent.ID)
		}
		copied := *talent
		char.Talents = append(char.Talents, &copied)
		return nil
	})
}

// UpdateTalent replaces an owned talent, matched by talent ID
func (r *InMemoryRepository) UpdateTalent(ctx context.Context, id string, talent *character.Talent) error {
	if talent == nil {
		return apperr.InvalidArgument("talent cannot be nil")
	}
	if talent.ID == "" {
		return apperr.InvalidArgument("talent ID is required")
	}

	return r.mutate(id, func(char *character.Character) error {
		for i, owned := range char.Talents {
			if owned.ID == talent.ID {
				copied := *talent
				char.Talents[i] = &copied
				return nil
			}
		}
		return apperr.NotFoundf("character '%s' does not own talent '%s'", id, talent.ID).
			WithMeta("character_id", id).
			WithMeta("talent_id", talent.ID)
	})
}
