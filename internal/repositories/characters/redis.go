package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ironhearth/advance-bot/internal/domain/character"
	"github.com/ironhearth/advance-bot/internal/domain/shared"
	apperr "github.com/ironhearth/advance-bot/internal/errors"
)

// characterData is the serialized form of a character in Redis
type characterData struct {
	ID         string                                         `json:"id"`
	OwnerID    string                                         `json:"owner_id"`
	Name       string                                         `json:"name"`
	Experience int                                            `json:"experience"`
	Attributes map[shared.Attribute]*character.AttributeScore `json:"attributes"`
	Skills     []*character.Skill                             `json:"skills"`
	Talents    []*character.Talent                            `json:"talents"`
	CreatedAt  time.Time                                      `json:"created_at"`
	UpdatedAt  time.Time                                      `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character list
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

func toData(char *character.Character) *characterData {
	return &characterData{
		ID:         char.ID,
		OwnerID:    char.OwnerID,
		Name:       char.Name,
		Experience: char.Experience,
		Attributes: char.Attributes,
		Skills:     char.Skills,
		Talents:    char.Talents,
	}
}

func fromData(data *characterData) *character.Character {
	return &character.Character{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Name:       data.Name,
		Experience: data.Experience,
		Attributes: data.Attributes,
		Skills:     data.Skills,
		Talents:    data.Talents,
	}
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return apperr.InvalidArgument("character owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	data := toData(char)
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)
	pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromData(data), nil
}

func (r *redisRepo) getData(ctx context.Context, id string) (*characterData, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data characterData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}

	return &data, nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	chars := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		char, err := r.Get(ctx, id)
		if err != nil {
			// Skip characters that can't be loaded
			continue
		}
		chars = append(chars, char)
	}

	return chars, nil
}

// Update replaces an existing character wholesale
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	existing, err := r.getData(ctx, char.ID)
	if err != nil {
		return err
	}

	data := toData(char)
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = time.Now().UTC()

	return r.setData(ctx, data)
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	data, err := r.getData(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCharactersKey(data.OwnerID), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

// setData persists a character blob back to Redis
func (r *redisRepo) setData(ctx context.Context, data *characterData) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(data.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}

	return nil
}

// mutate runs a read-modify-write cycle on one character. Each call is an
// independent storage mutation; there is no cross-call transaction.
func (r *redisRepo) mutate(ctx context.Context, id string, fn func(data *characterData) error) error {
	data, err := r.getData(ctx, id)
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	data.UpdatedAt = time.Now().UTC()
	return r.setData(ctx, data)
}

// ApplyScalarUpdate patches scalar fields as a single mutation
func (r *redisRepo) ApplyScalarUpdate(ctx context.Context, id string, update *ScalarUpdate) error {
	if update == nil {
		return apperr.InvalidArgument("update cannot be nil")
	}

	return r.mutate(ctx, id, func(data *characterData) error {
		if update.Experience != nil {
			if *update.Experience < 0 {
				return apperr.InvalidArgumentf("experience cannot go negative (got %d)", *update.Experience)
			}
			data.Experience = *update.Experience
		}
		for attr, advances := range update.AttributeAdvances {
			if advances < 0 {
				return apperr.InvalidArgumentf("advances for %s cannot go negative (got %d)", attr, advances)
			}
			if data.Attributes == nil {
				data.Attributes = make(map[shared.Attribute]*character.AttributeScore)
			}
			score, ok := data.Attributes[attr]
			if !ok {
				score = &character.AttributeScore{}
				data.Attributes[attr] = score
			}
			score.Advances = advances
		}
		return nil
	})
}

// BatchUpdateSkillRanks applies rank changes to owned skills as a single mutation
func (r *redisRepo) BatchUpdateSkillRanks(ctx context.Context, id string, updates []SkillRankUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	return r.mutate(ctx, id, func(data *characterData) error {
		for _, update := range updates {
			key := character.SkillKey(update.Name)
			found := false
			for _, skill := range data.Skills {
				if character.SkillKey(skill.Name) == key {
					skill.Rank = update.Rank
					found = true
					break
				}
			}
			if !found {
				return apperr.NotFoundf("character '%s' does not own skill '%s'", id, update.Name).
					WithMeta("character_id", id).
					WithMeta("skill_name", update.Name)
			}
		}
		return nil
	})
}

// CreateSkill appends a newly acquired skill to the character
func (r *redisRepo) CreateSkill(ctx context.Context, id string, skill *character.Skill) error {
	if skill == nil {
		return apperr.InvalidArgument("skill cannot be nil")
	}
	if skill.Name == "" {
		return apperr.InvalidArgument("skill name is required")
	}

	return r.mutate(ctx, id, func(data *characterData) error {
		key := character.SkillKey(skill.Name)
		for _, owned := range data.Skills {
			if character.SkillKey(owned.Name) == key {
				return apperr.AlreadyExistsf("character '%s' already owns skill '%s'", id, skill.Name).
					WithMeta("character_id", id).
					WithMeta("skill_name", skill.Name)
			}
		}
		data.Skills = append(data.Skills, skill)
		return nil
	})
}

// CreateTalent appends a newly acquired talent to the character
func (r *redisRepo) CreateTalent(ctx context.Context, id string, talent *character.Talent) error {
	if talent == nil {
		return apperr.InvalidArgument("talent cannot be nil")
	}
	if talent.ID == "" {
		return apperr.InvalidArgument("talent ID is required")
	}

	return r.mutate(ctx, id, func(data *characterData) error {
		for _, owned := range data.Talents {
			if owned.ID == talent.ID {
				return apperr.AlreadyExistsf("character '%s' already owns talent '%s'", id, talent.ID).
					WithMeta("character_id", id).
					WithMeta("talent_id", talent.ID)
			}
		}
		data.Talents = append(data.Talents, talent)
		return nil
	})
}

// UpdateTalent replaces an owned talent, matched by talent ID
func (r *redisRepo) UpdateTalent(ctx context.Context, id string, talent *character.Talent) error {
	if talent == nil {
		return apperr.InvalidArgument("talent cannot be nil")
	}
	if talent.ID == "" {
		return apperr.InvalidArgument("talent ID is required")
	}

	return r.mutate(ctx, id, func(data *characterData) error {
		for i, owned := range data.Talents {
			if owned.ID == talent.ID {
				data.Talents[i] = talent
				return nil
			}
		}
		return apperr.NotFoundf("character '%s' does not own talent '%s'", id, talent.ID).
			WithMeta("character_id", id).
			WithMeta("talent_id", talent.ID)
	})
}
