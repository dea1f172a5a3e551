package advancement

import (
	"context"
	"log"
	"time"

	"github.com/ironhearth/advance-bot/internal/domain/character"
	"github.com/ironhearth/advance-bot/internal/domain/shared"
	apperr "github.com/ironhearth/advance-bot/internal/errors"
	"github.com/ironhearth/advance-bot/internal/repositories/characters"
)

// Commit applies a commit-ready selection to the character.
//
// The storage only offers per-collection mutations, so the commit is an
// ordered pipeline, not a transaction: scalar update first (attribute
// advance + experience debit together), then skills, then the talent, then
// the summary. The precondition check is the only hard abort; once the
// scalar update lands, later storage failures leave the record partially
// advanced and propagate to the caller. Summary emission never affects the
// outcome.
func (s *service) Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("commit input is required")
	}
	if input.CharacterID == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}
	sel := input.Selection
	if sel == nil {
		return nil, apperr.InvalidArgument("selection is required")
	}
	if !CanComplete(sel) {
		return nil, apperr.InvalidArgument("selection is not commit-ready")
	}
	if !sel.Attribute().IsValid() {
		return nil, apperr.InvalidArgumentf("unknown attribute '%s'", sel.Attribute())
	}

	char, err := s.GetCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	// Precondition: enough experience, checked before any mutation.
	if char.Experience < s.cost {
		rejected := &RejectedEvent{
			CharacterID:   char.ID,
			CharacterName: char.Name,
			Required:      s.cost,
			Available:     char.Experience,
		}
		if emitErr := s.bus.Emit(rejected); emitErr != nil {
			log.Printf("advancement: failed to emit rejection for %s: %v", char.ID, emitErr)
		}
		return nil, apperr.FailedPreconditionf(
			"not enough experience: need %d, have %d", s.cost, char.Experience).
			WithMeta("character_id", char.ID).
			WithMeta("required", s.cost).
			WithMeta("available", char.Experience)
	}

	if s.resolution == ResolutionFail {
		if err := s.preResolve(ctx, char, sel); err != nil {
			return nil, err
		}
	}

	// Step 1: attribute advance and experience debit, one scalar update.
	score := char.Attribute(sel.Attribute())
	newAdvances := score.Advances + 1
	newExperience := char.Experience - s.cost
	update := &characters.ScalarUpdate{
		Experience: &newExperience,
		AttributeAdvances: map[shared.Attribute]int{
			sel.Attribute(): newAdvances,
		},
	}
	if err := s.repository.ApplyScalarUpdate(ctx, char.ID, update); err != nil {
		return nil, apperr.Wrap(err, "failed to apply attribute advance").
			WithMeta("character_id", char.ID).
			WithMeta("attribute", string(sel.Attribute()))
	}

	// Step 2: skill ranks. Owned skills are batched into one rank update;
	// newly acquired skills are created individually as they resolve.
	skillResults := make([]SkillResult, 0, MaxSelectedSkills)
	var queued []characters.SkillRankUpdate
	for _, name := range sel.Skills() {
		if owned := char.SkillByName(name); owned != nil {
			queued = append(queued, characters.SkillRankUpdate{
				Name: owned.Name,
				Rank: owned.Rank + 1,
			})
			skillResults = append(skillResults, SkillResult{Name: owned.Name, NewRank: owned.Rank + 1, Granted: true})
			continue
		}

		template, err := s.catalog.GetSkillByName(ctx, name)
		if err != nil {
			if apperr.IsNotFound(err) {
				log.Printf("advancement: skill '%s' not in catalog, skipping for character %s", name, char.ID)
				skillResults = append(skillResults, SkillResult{Name: name, Granted: false})
				continue
			}
			return nil, apperr.Wrapf(err, "catalog lookup failed for skill '%s'", name).
				WithMeta("character_id", char.ID)
		}

		// Clone the template into an owned record; the catalog identity
		// stays behind.
		newSkill := &character.Skill{Name: template.Name, Rank: 1}
		if err := s.repository.CreateSkill(ctx, char.ID, newSkill); err != nil {
			return nil, apperr.Wrapf(err, "failed to create skill '%s'", template.Name).
				WithMeta("character_id", char.ID)
		}
		skillResults = append(skillResults, SkillResult{Name: template.Name, NewRank: 1, Granted: true})
	}
	if len(queued) > 0 {
		if err := s.repository.BatchUpdateSkillRanks(ctx, char.ID, queued); err != nil {
			return nil, apperr.Wrap(err, "failed to update skill ranks").
				WithMeta("character_id", char.ID)
		}
	}

	// Step 3: the talent action.
	talentResult, err := s.applyTalent(ctx, char, sel)
	if err != nil {
		return nil, err
	}

	// Step 4: summary. Observational only; a failing listener is logged
	// and the commit still succeeds.
	summary := &Summary{
		CharacterID:       char.ID,
		CharacterName:     char.Name,
		Attribute:         sel.Attribute(),
		NewAdvances:       newAdvances,
		NewAttributeTotal: score.Base + newAdvances + score.Modifier,
		Skills:            skillResults,
		Talent:            talentResult,
		Cost:              s.cost,
		ExperienceLeft:    newExperience,
		AppliedAt:         time.Now().UTC(),
	}
	if emitErr := s.bus.Emit(&AppliedEvent{Summary: summary}); emitErr != nil {
		log.Printf("advancement: failed to emit summary for %s: %v", char.ID, emitErr)
	}

	return &CommitOutput{Summary: summary}, nil
}

// applyTalent performs the advance-or-purchase half of the transaction.
func (s *service) applyTalent(ctx context.Context, char *character.Character, sel *Selection) (TalentResult, error) {
	switch sel.TalentMode() {
	case TalentModeAdvance:
		owned := char.TalentByID(sel.TalentRef())
		if owned == nil {
			log.Printf("advancement: talent '%s' not owned by character %s, skipping", sel.TalentRef(), char.ID)
			return TalentResult{Action: TalentActionSkipped}, nil
		}
		updated := *owned
		updated.Rank++
		if err := s.repository.UpdateTalent(ctx, char.ID, &updated); err != nil {
			return TalentResult{}, apperr.Wrapf(err, "failed to advance talent '%s'", owned.Name).
				WithMeta("character_id", char.ID).
				WithMeta("talent_id", owned.ID)
		}
		return TalentResult{Action: TalentActionAdvanced, Name: updated.Name, NewRank: updated.Rank}, nil

	case TalentModePurchase:
		template, err := s.catalog.GetTalentByID(ctx, sel.TalentRef())
		if err != nil {
			if apperr.IsNotFound(err) {
				log.Printf("advancement: talent '%s' not in catalog, skipping for character %s", sel.TalentRef(), char.ID)
				return TalentResult{Action: TalentActionSkipped}, nil
			}
			return TalentResult{}, apperr.Wrapf(err, "catalog lookup failed for talent '%s'", sel.TalentRef()).
				WithMeta("character_id", char.ID)
		}

		newTalent := &character.Talent{
			ID:          s.uuidGenerator.New(),
			Name:        template.Name,
			Description: template.Description,
			Rank:        1,
		}
		if err := s.repository.CreateTalent(ctx, char.ID, newTalent); err != nil {
			return TalentResult{}, apperr.Wrapf(err, "failed to create talent '%s'", template.Name).
				WithMeta("character_id", char.ID)
		}
		return TalentResult{Action: TalentActionPurchased, Name: newTalent.Name, NewRank: 1}, nil

	default:
		return TalentResult{}, apperr.InvalidArgument("talent mode must be set")
	}
}

// preResolve checks every catalog reference before any mutation. Used by
// ResolutionFail so a miss aborts the commit instead of skipping.
func (s *service) preResolve(ctx context.Context, char *character.Character, sel *Selection) error {
	for _, name := range sel.Skills() {
		if char.OwnsSkill(name) {
			continue
		}
		if _, err := s.catalog.GetSkillByName(ctx, name); err != nil {
			return apperr.Wrapf(err, "cannot resolve skill '%s'", name).
				WithMeta("character_id", char.ID)
		}
	}

	switch sel.TalentMode() {
	case TalentModeAdvance:
		if char.TalentByID(sel.TalentRef()) == nil {
			return apperr.NotFoundf("character does not own talent '%s'", sel.TalentRef()).
				WithMeta("character_id", char.ID)
		}
	case TalentModePurchase:
		if _, err := s.catalog.GetTalentByID(ctx, sel.TalentRef()); err != nil {
			return apperr.Wrapf(err, "cannot resolve talent '%s'", sel.TalentRef()).
				WithMeta("character_id", char.ID)
		}
	}

	return nil
}
