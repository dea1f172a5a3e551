package advancements

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	apperr "github.com/ironhearth/advance-bot/internal/errors"
	"github.com/ironhearth/advance-bot/internal/uuid"
)

// redisRepo implements the Repository interface using Redis lists
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed advancement history repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

// key generates the Redis key for a character's advancement history
func (r *redisRepo) key(characterID string) string {
	return fmt.Sprintf("character:%s:advancements", characterID)
}

// Append stores a new advancement record
func (r *redisRepo) Append(ctx context.Context, record *Record) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}
	if record.CharacterID == "" {
		return apperr.InvalidArgument("record character ID is required")
	}

	if record.ID == "" {
		record.ID = r.uuidGenerator.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal advancement record: %w", err)
	}

	if err := r.client.LPush(ctx, r.key(record.CharacterID), jsonData).Err(); err != nil {
		return fmt.Errorf("failed to append advancement record: %w", err)
	}

	return nil
}

// ListByCharacter returns the most recent records for a character, newest first
func (r *redisRepo) ListByCharacter(ctx context.Context, characterID string, limit int) ([]*Record, error) {
	if characterID == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	items, err := r.client.LRange(ctx, r.key(characterID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list advancement records: %w", err)
	}

	records := make([]*Record, 0, len(items))
	for _, item := range items {
		var record Record
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			// Skip records that can't be decoded
			log.Printf("advancements: skipping undecodable record for character %s: %v", characterID, err)
			continue
		}
		records = append(records, &record)
	}

	return records, nil
}
