package advancement

import (
	"context"

	catalogclient "github.com/ironhearth/advance-bot/internal/clients/catalog"
	"github.com/ironhearth/advance-bot/internal/domain/character"
	apperr "github.com/ironhearth/advance-bot/internal/errors"
	"github.com/ironhearth/advance-bot/internal/events"
	"github.com/ironhearth/advance-bot/internal/repositories/characters"
	"github.com/ironhearth/advance-bot/internal/uuid"
)

// AdvanceCost is the experience price of one full advancement: one
// attribute advance, three skill ranks, and one talent action.
const AdvanceCost = 1000

// ResolutionPolicy decides what happens when a catalog lookup misses
// during commit.
type ResolutionPolicy int

const (
	// ResolutionSkip silently skips unresolvable skills and talents and
	// applies the rest. The summary still reports what was actually granted.
	ResolutionSkip ResolutionPolicy = iota

	// ResolutionFail pre-resolves every template before mutating anything
	// and aborts the whole commit on the first miss.
	ResolutionFail
)

// CommitInput carries a commit-ready selection into the commit engine.
type CommitInput struct {
	CharacterID string
	Selection   *Selection
}

// CommitOutput contains the applied advancement summary.
type CommitOutput struct {
	Summary *Summary
}

// Service drives advancement wizards and commits their selections.
type Service interface {
	// StartWizard loads the character and opens a fresh wizard for it
	StartWizard(ctx context.Context, characterID string) (*Wizard, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, characterID string) (*character.Character, error)

	// Commit applies a commit-ready selection to the character
	Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error)
}

// service implements the Service interface
type service struct {
	repository    characters.Repository
	catalog       catalogclient.Client
	bus           *events.Bus
	uuidGenerator uuid.Generator
	cost          int
	resolution    ResolutionPolicy
}

// ServiceConfig holds configuration for the advancement service
type ServiceConfig struct {
	Repository    characters.Repository // Required
	Catalog       catalogclient.Client  // Required
	Bus           *events.Bus           // Optional, created if nil
	UUIDGenerator uuid.Generator        // Optional
	Cost          int                   // Optional, defaults to AdvanceCost
	Resolution    ResolutionPolicy      // Optional, defaults to ResolutionSkip
}

// NewService creates a new advancement service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog client is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		catalog:       cfg.Catalog,
		bus:           cfg.Bus,
		uuidGenerator: cfg.UUIDGenerator,
		cost:          cfg.Cost,
		resolution:    cfg.Resolution,
	}

	if svc.bus == nil {
		svc.bus = events.NewBus()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.cost == 0 {
		svc.cost = AdvanceCost
	}

	return svc
}

// StartWizard loads the character and opens a fresh wizard for it
func (s *service) StartWizard(ctx context.Context, characterID string) (*Wizard, error) {
	char, err := s.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	return &Wizard{
		svc:       s,
		char:      char,
		selection: NewSelection(),
	}, nil
}

// GetCharacter retrieves a character by ID
func (s *service) GetCharacter(ctx context.Context, characterID string) (*character.Character, error) {
	if characterID == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get character '%s'", characterID).
			WithMeta("character_id", characterID)
	}

	return char, nil
}
