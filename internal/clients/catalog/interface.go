package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=mockcatalog . Client

import (
	"context"

	"github.com/ironhearth/advance-bot/internal/domain/catalog"
)

// Client is the read-only content catalog the advancement service resolves
// skill and talent templates from. Name lookups are case-insensitive.
// Lookup misses are reported as coded not-found errors.
type Client interface {
	// Prewarm loads the catalog indexes eagerly; lookups also load lazily.
	Prewarm(ctx context.Context) error

	ListSkills(ctx context.Context) ([]*catalog.SkillTemplate, error)
	ListTalents(ctx context.Context) ([]*catalog.TalentTemplate, error)

	GetSkillByName(ctx context.Context, name string) (*catalog.SkillTemplate, error)
	GetSkillByID(ctx context.Context, id string) (*catalog.SkillTemplate, error)

	GetTalentByName(ctx context.Context, name string) (*catalog.TalentTemplate, error)
	GetTalentByID(ctx context.Context, id string) (*catalog.TalentTemplate, error)
}
