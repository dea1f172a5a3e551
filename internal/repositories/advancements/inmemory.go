package advancements

import (
	"context"
	"sync"
	"time"

	apperr "github.com/ironhearth/advance-bot/internal/errors"
	"github.com/ironhearth/advance-bot/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the advancement
// history repository. Useful for testing and development.
type InMemoryRepository struct {
	mu            sync.RWMutex
	records       map[string][]*Record // characterID -> newest first
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records:       make(map[string][]*Record),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

// Append stores a new advancement record
func (r *InMemoryRepository) Append(ctx context.Context, record *Record) error {
	if record == nil {
		return apperr.InvalidArgument("record cannot be nil")
	}
	if record.CharacterID == "" {
		return apperr.InvalidArgument("record character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	if copied.ID == "" {
		copied.ID = r.uuidGenerator.New()
	}
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now().UTC()
	}

	r.records[record.CharacterID] = append([]*Record{&copied}, r.records[record.CharacterID]...)
	return nil
}

// ListByCharacter returns the most recent records for a character, newest first
func (r *InMemoryRepository) ListByCharacter(ctx context.Context, characterID string, limit int) ([]*Record, error) {
	if characterID == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.records[characterID]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	out := make([]*Record, len(records))
	for i, record := range records {
		copied := *record
		out[i] = &copied
	}

	return out, nil
}
