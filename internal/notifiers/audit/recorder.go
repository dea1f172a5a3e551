// Package audit persists one structured record per applied advancement.
// Rejected advancements are deliberately not recorded.
package audit

import (
	"context"

	"github.com/ironhearth/advance-bot/internal/events"
	"github.com/ironhearth/advance-bot/internal/repositories/advancements"
	"github.com/ironhearth/advance-bot/internal/services/advancement"
)

// Recorder maps applied-advancement events to audit records.
// It implements events.Listener.
type Recorder struct {
	repository advancements.Repository
}

// RecorderConfig holds configuration for the audit recorder
type RecorderConfig struct {
	Repository advancements.Repository
}

// New creates a new audit recorder
func New(cfg *RecorderConfig) *Recorder {
	if cfg == nil || cfg.Repository == nil {
		panic("advancements repository is required")
	}
	return &Recorder{repository: cfg.Repository}
}

// ID implements events.Listener
func (r *Recorder) ID() string {
	return "advancement-audit"
}

// Priority implements events.Listener. The audit entry is written before
// any user notification goes out.
func (r *Recorder) Priority() int {
	return 0
}

// HandleEvent implements events.Listener
func (r *Recorder) HandleEvent(event events.Event) error {
	applied, ok := event.(*advancement.AppliedEvent)
	if !ok {
		return nil
	}

	summary := applied.Summary
	record := &advancements.Record{
		CharacterID:       summary.CharacterID,
		CharacterName:     summary.CharacterName,
		Attribute:         summary.Attribute,
		NewAttributeTotal: summary.NewAttributeTotal,
		TalentAction:      summary.Talent.Action,
		TalentName:        summary.Talent.Name,
		TalentRank:        summary.Talent.NewRank,
		Cost:              summary.Cost,
		ExperienceLeft:    summary.ExperienceLeft,
		CreatedAt:         summary.AppliedAt,
	}
	for _, skill := range summary.Skills {
		record.Skills = append(record.Skills, advancements.SkillEntry{
			Name:    skill.Name,
			NewRank: skill.NewRank,
			Granted: skill.Granted,
		})
	}

	return r.repository.Append(context.Background(), record)
}
