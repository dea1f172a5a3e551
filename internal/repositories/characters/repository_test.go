package characters_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/ironhearth/advance-bot/internal/domain/character"
	"github.com/ironhearth/advance-bot/internal/domain/shared"
	apperr "github.com/ironhearth/advance-bot/internal/errors"
	"github.com/ironhearth/advance-bot/internal/repositories/characters"
)

// RepositorySuite runs the same behavioral contract against every
// Repository implementation.
type RepositorySuite struct {
	suite.Suite
	ctx     context.Context
	repo    characters.Repository
	factory func(t *testing.T) characters.Repository
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.factory(s.T())
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositorySuite{
		factory: func(t *testing.T) characters.Repository {
			return characters.NewInMemoryRepository()
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositorySuite{
		factory: func(t *testing.T) characters.Repository {
			mr := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { _ = client.Close() })
			return characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client})
		},
	})
}

func (s *RepositorySuite) storedCharacter() *character.Character {
	char := &character.Character{
		ID:         "char-1",
		OwnerID:    "owner-1",
		Name:       "Greta",
		Experience: 1500,
		Attributes: map[shared.Attribute]*character.AttributeScore{
			shared.AttributeStrength: {Base: 30, Advances: 2},
		},
		Skills: []*character.Skill{
			{Name: "Stealth", Rank: 2},
		},
		Talents: []*character.Talent{
			{ID: "tal-1", Name: "Iron Jaw", Rank: 3},
		},
	}
	s.Require().NoError(s.repo.Create(s.ctx, char))
	return char
}

func (s *RepositorySuite) TestCreateAndGet() {
	s.storedCharacter()

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)

	s.Equal("Greta", got.Name)
	s.Equal("owner-1", got.OwnerID)
	s.Equal(1500, got.Experience)
	s.Equal(30, got.Attributes[shared.AttributeStrength].Base)
	s.Equal(2, got.Attributes[shared.AttributeStrength].Advances)
	s.Require().Len(got.Skills, 1)
	s.Equal("Stealth", got.Skills[0].Name)
	s.Require().Len(got.Talents, 1)
	s.Equal("tal-1", got.Talents[0].ID)
}

func (s *RepositorySuite) TestCreate_Duplicate() {
	char := s.storedCharacter()

	err := s.repo.Create(s.ctx, char)
	s.Require().Error(err)
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RepositorySuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *RepositorySuite) TestGet_ReturnsIndependentCopy() {
	s.storedCharacter()

	first, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	first.Experience = 0
	first.Skills[0].Rank = 99

	second, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(1500, second.Experience)
	s.Equal(2, second.Skills[0].Rank)
}

func (s *RepositorySuite) TestGetByOwner() {
	s.storedCharacter()
	s.Require().NoError(s.repo.Create(s.ctx, &character.Character{
		ID:      "char-2",
		OwnerID: "owner-1",
		Name:    "Oskar",
	}))
	s.Require().NoError(s.repo.Create(s.ctx, &character.Character{
		ID:      "char-3",
		OwnerID: "owner-2",
		Name:    "Hilde",
	}))

	chars, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Len(chars, 2)

	names := make(map[string]bool)
	for _, char := range chars {
		names[char.Name] = true
	}
	s.True(names["Greta"])
	s.True(names["Oskar"])
}

func (s *RepositorySuite) TestUpdate_Wholesale() {
	char := s.storedCharacter()
	char.Name = "Greta the Bold"
	char.Experience = 500

	s.Require().NoError(s.repo.Update(s.ctx, char))

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal("Greta the Bold", got.Name)
	s.Equal(500, got.Experience)
}

func (s *RepositorySuite) TestUpdate_NotFound() {
	err := s.repo.Update(s.ctx, &character.Character{ID: "missing", OwnerID: "owner-1"})
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *RepositorySuite) TestDelete() {
	s.storedCharacter()

	s.Require().NoError(s.repo.Delete(s.ctx, "char-1"))

	_, err := s.repo.Get(s.ctx, "char-1")
	s.True(apperr.IsNotFound(err))

	chars, err := s.repo.GetByOwner(s.ctx, "owner-1")
	s.Require().NoError(err)
	s.Empty(chars)
}

func (s *RepositorySuite) TestApplyScalarUpdate() {
	s.storedCharacter()

	newExperience := 500
	err := s.repo.ApplyScalarUpdate(s.ctx, "char-1", &characters.ScalarUpdate{
		Experience: &newExperience,
		AttributeAdvances: map[shared.Attribute]int{
			shared.AttributeStrength: 3,
		},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(500, got.Experience)
	s.Equal(3, got.Attributes[shared.AttributeStrength].Advances)
	s.Equal(30, got.Attributes[shared.AttributeStrength].Base, "base must not move with advances")
}

func (s *RepositorySuite) TestApplyScalarUpdate_UnknownAttributeStartsAtZero() {
	s.storedCharacter()

	err := s.repo.ApplyScalarUpdate(s.ctx, "char-1", &characters.ScalarUpdate{
		AttributeAdvances: map[shared.Attribute]int{
			shared.AttributeWillpower: 1,
		},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(1, got.Attributes[shared.AttributeWillpower].Advances)
	s.Equal(0, got.Attributes[shared.AttributeWillpower].Base)
}

func (s *RepositorySuite) TestApplyScalarUpdate_NegativeExperience() {
	s.storedCharacter()

	newExperience := -100
	err := s.repo.ApplyScalarUpdate(s.ctx, "char-1", &characters.ScalarUpdate{
		Experience: &newExperience,
	})
	s.Require().Error(err)
	s.True(apperr.IsInvalidArgument(err))

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(1500, got.Experience)
}

func (s *RepositorySuite) TestBatchUpdateSkillRanks() {
	s.storedCharacter()
	s.Require().NoError(s.repo.CreateSkill(s.ctx, "char-1", &character.Skill{Name: "Lockpicking", Rank: 1}))

	// Lookup is case-insensitive, like skill ownership everywhere else
	err := s.repo.BatchUpdateSkillRanks(s.ctx, "char-1", []characters.SkillRankUpdate{
		{Name: "stealth", Rank: 3},
		{Name: "Lockpicking", Rank: 2},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(3, got.Skills[0].Rank)
	s.Equal(2, got.Skills[1].Rank)
}

func (s *RepositorySuite) TestBatchUpdateSkillRanks_UnownedSkill() {
	s.storedCharacter()

	err := s.repo.BatchUpdateSkillRanks(s.ctx, "char-1", []characters.SkillRankUpdate{
		{Name: "Haggle", Rank: 1},
	})
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *RepositorySuite) TestCreateSkill_DuplicateCaseInsensitive() {
	s.storedCharacter()

	err := s.repo.CreateSkill(s.ctx, "char-1", &character.Skill{Name: "STEALTH", Rank: 1})
	s.Require().Error(err)
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RepositorySuite) TestCreateTalent() {
	s.storedCharacter()

	err := s.repo.CreateTalent(s.ctx, "char-1", &character.Talent{
		ID:   "tal-2",
		Name: "Finesse",
		Rank: 1,
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Require().Len(got.Talents, 2)
	s.Equal("Finesse", got.Talents[1].Name)
}

func (s *RepositorySuite) TestCreateTalent_DuplicateID() {
	s.storedCharacter()

	err := s.repo.CreateTalent(s.ctx, "char-1", &character.Talent{ID: "tal-1", Name: "Iron Jaw"})
	s.Require().Error(err)
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RepositorySuite) TestUpdateTalent() {
	s.storedCharacter()

	err := s.repo.UpdateTalent(s.ctx, "char-1", &character.Talent{
		ID:   "tal-1",
		Name: "Iron Jaw",
		Rank: 4,
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, "char-1")
	s.Require().NoError(err)
	s.Equal(4, got.Talents[0].Rank)
}

func (s *RepositorySuite) TestUpdateTalent_NotOwned() {
	s.storedCharacter()

	err := s.repo.UpdateTalent(s.ctx, "char-1", &character.Talent{ID: "tal-9", Name: "Ghost"})
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *RepositorySuite) TestMutations_MissingCharacter() {
	newExperience := 100
	s.True(apperr.IsNotFound(s.repo.ApplyScalarUpdate(s.ctx, "missing", &characters.ScalarUpdate{Experience: &newExperience})))
	s.True(apperr.IsNotFound(s.repo.BatchUpdateSkillRanks(s.ctx, "missing", []characters.SkillRankUpdate{{Name: "Stealth", Rank: 1}})))
	s.True(apperr.IsNotFound(s.repo.CreateSkill(s.ctx, "missing", &character.Skill{Name: "Stealth", Rank: 1})))
	s.True(apperr.IsNotFound(s.repo.CreateTalent(s.ctx, "missing", &character.Talent{ID: "tal-1"})))
	s.True(apperr.IsNotFound(s.repo.UpdateTalent(s.ctx, "missing", &character.Talent{ID: "tal-1"})))
}
