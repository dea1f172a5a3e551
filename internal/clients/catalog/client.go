package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ironhearth/advance-bot/internal/domain/catalog"
	apperr "github.com/ironhearth/advance-bot/internal/errors"
)

// Config holds configuration for the catalog client
type Config struct {
	HttpClient *http.Client
	BaseURL    string
}

type client struct {
	httpClient *http.Client
	baseURL    string

	mu            sync.RWMutex
	skills        []*catalog.SkillTemplate
	talents       []*catalog.TalentTemplate
	skillsByName  map[string]*catalog.SkillTemplate
	skillsByID    map[string]*catalog.SkillTemplate
	talentsByName map[string]*catalog.TalentTemplate
	talentsByID   map[string]*catalog.TalentTemplate
}

// New creates a catalog client backed by the content service's HTTP API.
// Both collections are fetched once and served from memory afterwards;
// the catalog is read-only so the cache never invalidates.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		return nil, apperr.InvalidArgument("catalog base URL is required")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ensureLoaded fetches both collections on first use. The skill and talent
// indexes are independent, so they load concurrently.
func (c *client) ensureLoaded(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.skillsByID != nil && c.talentsByID != nil
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	var (
		skills  []*catalog.SkillTemplate
		talents []*catalog.TalentTemplate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		skills, err = fetchJSON[*catalog.SkillTemplate](gctx, c.httpClient, c.baseURL+"/skills")
		return err
	})
	g.Go(func() error {
		var err error
		talents, err = fetchJSON[*catalog.TalentTemplate](gctx, c.httpClient, c.baseURL+"/talents")
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.skillsByID != nil && c.talentsByID != nil {
		return nil
	}

	c.skills = skills
	c.talents = talents
	c.skillsByName = make(map[string]*catalog.SkillTemplate, len(skills))
	c.skillsByID = make(map[string]*catalog.SkillTemplate, len(skills))
	for _, s := range skills {
		c.skillsByName[nameKey(s.Name)] = s
		c.skillsByID[s.ID] = s
	}
	c.talentsByName = make(map[string]*catalog.TalentTemplate, len(talents))
	c.talentsByID = make(map[string]*catalog.TalentTemplate, len(talents))
	for _, t := range talents {
		c.talentsByName[nameKey(t.Name)] = t
		c.talentsByID[t.ID] = t
	}

	return nil
}

func fetchJSON[T any](ctx context.Context, httpClient *http.Client, url string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return items, nil
}

// Prewarm loads both catalog collections eagerly. Callers that want fast
// first lookups (e.g. at startup) can invoke it; lookups also load lazily.
func (c *client) Prewarm(ctx context.Context) error {
	return c.ensureLoaded(ctx)
}

// ListSkills returns every skill template in the catalog
func (c *client) ListSkills(ctx context.Context) ([]*catalog.SkillTemplate, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*catalog.SkillTemplate, len(c.skills))
	copy(out, c.skills)
	return out, nil
}

// ListTalents returns every talent template in the catalog
func (c *client) ListTalents(ctx context.Context) ([]*catalog.TalentTemplate, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*catalog.TalentTemplate, len(c.talents))
	copy(out, c.talents)
	return out, nil
}

// GetSkillByName resolves a skill template by case-insensitive name
func (c *client) GetSkillByName(ctx context.Context, name string) (*catalog.SkillTemplate, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if s, ok := c.skillsByName[nameKey(name)]; ok {
		return s, nil
	}
	return nil, apperr.NotFoundf("skill '%s' not found in catalog", name).
		WithMeta("skill_name", name)
}

// GetSkillByID resolves a skill template by catalog ID
func (c *client) GetSkillByID(ctx context.Context, id string) (*catalog.SkillTemplate, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if s, ok := c.skillsByID[id]; ok {
		return s, nil
	}
	return nil, apperr.NotFoundf("skill with ID '%s' not found in catalog", id).
		WithMeta("skill_id", id)
}

// GetTalentByName resolves a talent template by case-insensitive name
func (c *client) GetTalentByName(ctx context.Context, name string) (*catalog.TalentTemplate, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if t, ok := c.talentsByName[nameKey(name)]; ok {
		return t, nil
	}
	return nil, apperr.NotFoundf("talent '%s' not found in catalog", name).
		WithMeta("talent_name", name)
}

// GetTalentByID resolves a talent template by catalog ID
func (c *client) GetTalentByID(ctx context.Context, id string) (*catalog.TalentTemplate, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if t, ok := c.talentsByID[id]; ok {
		return t, nil
	}
	return nil, apperr.NotFoundf("talent with ID '%s' not found in catalog", id).
		WithMeta("talent_id", id)
}
