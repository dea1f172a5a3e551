package advancements_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/ironhearth/advance-bot/internal/domain/shared"
	apperr "github.com/ironhearth/advance-bot/internal/errors"
	"github.com/ironhearth/advance-bot/internal/repositories/advancements"
)

type HistorySuite struct {
	suite.Suite
	ctx     context.Context
	repo    advancements.Repository
	factory func(t *testing.T) advancements.Repository
}

func (s *HistorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.factory(s.T())
}

func TestInMemoryHistory(t *testing.T) {
	suite.Run(t, &HistorySuite{
		factory: func(t *testing.T) advancements.Repository {
			return advancements.NewInMemoryRepository()
		},
	})
}

func TestRedisHistory(t *testing.T) {
	suite.Run(t, &HistorySuite{
		factory: func(t *testing.T) advancements.Repository {
			mr := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { _ = client.Close() })
			return advancements.NewRedisRepository(&advancements.RedisRepoConfig{Client: client})
		},
	})
}

func (s *HistorySuite) appendRecord(sequence int) {
	err := s.repo.Append(s.ctx, &advancements.Record{
		CharacterID:       "char-1",
		CharacterName:     "Greta",
		Attribute:         shared.AttributeStrength,
		NewAttributeTotal: 30 + sequence,
		Skills: []advancements.SkillEntry{
			{Name: "Stealth", NewRank: sequence, Granted: true},
		},
		TalentAction:   "purchased",
		TalentName:     fmt.Sprintf("Talent %d", sequence),
		TalentRank:     1,
		Cost:           1000,
		ExperienceLeft: 1500 - sequence*1000,
	})
	s.Require().NoError(err)
}

func (s *HistorySuite) TestAppendAndList_NewestFirst() {
	s.appendRecord(1)
	s.appendRecord(2)
	s.appendRecord(3)

	records, err := s.repo.ListByCharacter(s.ctx, "char-1", 0)
	s.Require().NoError(err)
	s.Require().Len(records, 3)

	s.Equal("Talent 3", records[0].TalentName)
	s.Equal("Talent 2", records[1].TalentName)
	s.Equal("Talent 1", records[2].TalentName)
}

func (s *HistorySuite) TestAppend_FillsIDAndTimestamp() {
	s.appendRecord(1)

	records, err := s.repo.ListByCharacter(s.ctx, "char-1", 0)
	s.Require().NoError(err)
	s.Require().Len(records, 1)

	s.NotEmpty(records[0].ID)
	s.False(records[0].CreatedAt.IsZero())
	s.Require().Len(records[0].Skills, 1)
	s.True(records[0].Skills[0].Granted)
}

func (s *HistorySuite) TestList_RespectsLimit() {
	for i := 1; i <= 5; i++ {
		s.appendRecord(i)
	}

	records, err := s.repo.ListByCharacter(s.ctx, "char-1", 2)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("Talent 5", records[0].TalentName)
	s.Equal("Talent 4", records[1].TalentName)
}

func (s *HistorySuite) TestList_UnknownCharacterIsEmpty() {
	records, err := s.repo.ListByCharacter(s.ctx, "nobody", 0)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *HistorySuite) TestAppend_Validation() {
	s.True(apperr.IsInvalidArgument(s.repo.Append(s.ctx, nil)))
	s.True(apperr.IsInvalidArgument(s.repo.Append(s.ctx, &advancements.Record{})))
}
