package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironhearth/advance-bot/internal/domain/shared"
	"github.com/ironhearth/advance-bot/internal/notifiers/audit"
	"github.com/ironhearth/advance-bot/internal/repositories/advancements"
	"github.com/ironhearth/advance-bot/internal/services/advancement"
)

func TestHandleEvent_RecordsAppliedAdvancement(t *testing.T) {
	repo := advancements.NewInMemoryRepository()
	recorder := audit.New(&audit.RecorderConfig{Repository: repo})

	appliedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	err := recorder.HandleEvent(&advancement.AppliedEvent{
		Summary: &advancement.Summary{
			CharacterID:       "char-1",
			CharacterName:     "Greta",
			Attribute:         shared.AttributeStrength,
			NewAdvances:       3,
			NewAttributeTotal: 33,
			Skills: []advancement.SkillResult{
				{Name: "Stealth", NewRank: 3, Granted: true},
				{Name: "Basket Weaving", Granted: false},
			},
			Talent:         advancement.TalentResult{Action: advancement.TalentActionPurchased, Name: "Finesse", NewRank: 1},
			Cost:           1000,
			ExperienceLeft: 500,
			AppliedAt:      appliedAt,
		},
	})
	require.NoError(t, err)

	records, err := repo.ListByCharacter(context.Background(), "char-1", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "Greta", record.CharacterName)
	assert.Equal(t, shared.AttributeStrength, record.Attribute)
	assert.Equal(t, 33, record.NewAttributeTotal)
	assert.Equal(t, "purchased", record.TalentAction)
	assert.Equal(t, "Finesse", record.TalentName)
	assert.Equal(t, 500, record.ExperienceLeft)
	assert.Equal(t, appliedAt, record.CreatedAt)
	require.Len(t, record.Skills, 2)
	assert.True(t, record.Skills[0].Granted)
	assert.False(t, record.Skills[1].Granted)
}

func TestHandleEvent_IgnoresRejections(t *testing.T) {
	repo := advancements.NewInMemoryRepository()
	recorder := audit.New(&audit.RecorderConfig{Repository: repo})

	err := recorder.HandleEvent(&advancement.RejectedEvent{
		CharacterID:   "char-1",
		CharacterName: "Greta",
		Required:      1000,
		Available:     900,
	})
	require.NoError(t, err)

	records, err := repo.ListByCharacter(context.Background(), "char-1", 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
