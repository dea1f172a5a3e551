package advancement

import (
	"context"
	"sort"

	"github.com/ironhearth/advance-bot/internal/domain/shared"
	apperr "github.com/ironhearth/advance-bot/internal/errors"
)

// AttributeOption is one attribute candidate on the attribute step.
type AttributeOption struct {
	Key        shared.Attribute
	Label      string
	Total      int
	Advances   int
	CapReached bool
	Selected   bool
}

// AttributeStepView is the derived view data for the attribute step.
type AttributeStepView struct {
	Options []AttributeOption
}

// SkillOption is one skill candidate on the skills step. Rank is the
// character's current rank (0 if unowned).
type SkillOption struct {
	Name       string
	Rank       int
	Owned      bool
	Selected   bool
	CapReached bool
}

// SkillGroup collects the skill candidates governed by one attribute.
type SkillGroup struct {
	Attribute shared.Attribute
	Options   []SkillOption
}

// SkillStepView is the derived view data for the skills step.
type SkillStepView struct {
	Groups    []SkillGroup
	Remaining int
}

// TalentOption is one talent candidate on the talent step. For advance
// candidates Ref is the owned talent's ID and Rank its current rank; for
// purchase candidates Ref is the catalog entry ID.
type TalentOption struct {
	Ref         string
	Name        string
	Description string
	Rank        int
	Selected    bool
}

// TalentStepView is the derived view data for the talent step.
type TalentStepView struct {
	Mode        TalentMode
	Advancable  []TalentOption
	Purchasable []TalentOption
}

// AttributeView builds the attribute step's view data.
func (w *Wizard) AttributeView() *AttributeStepView {
	options := make([]AttributeOption, 0, len(shared.Attributes))
	for _, key := range shared.Attributes {
		score := w.char.Attribute(key)
		options = append(options, AttributeOption{
			Key:        key,
			Label:      key.Label(),
			Total:      score.Total(),
			Advances:   score.Advances,
			CapReached: score.Advances >= shared.MaxAttributeAdvances,
			Selected:   w.selection.Attribute() == key,
		})
	}
	return &AttributeStepView{Options: options}
}

// SkillsView builds the skills step's view data: the catalog's skills
// merged with the character's current ranks, grouped by governing
// attribute.
func (w *Wizard) SkillsView(ctx context.Context) (*SkillStepView, error) {
	templates, err := w.svc.catalog.ListSkills(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list catalog skills")
	}

	groups := make(map[shared.Attribute][]SkillOption)
	for _, template := range templates {
		rank := 0
		owned := false
		if skill := w.char.SkillByName(template.Name); skill != nil {
			rank = skill.Rank
			owned = true
		}
		groups[template.Attribute] = append(groups[template.Attribute], SkillOption{
			Name:       template.Name,
			Rank:       rank,
			Owned:      owned,
			Selected:   w.selection.HasSkill(template.Name),
			CapReached: rank >= shared.MaxSkillRank,
		})
	}

	view := &SkillStepView{
		Remaining: MaxSelectedSkills - len(w.selection.Skills()),
	}
	for _, attr := range shared.Attributes {
		options, ok := groups[attr]
		if !ok {
			continue
		}
		sort.Slice(options, func(i, j int) bool {
			return options[i].Name < options[j].Name
		})
		view.Groups = append(view.Groups, SkillGroup{Attribute: attr, Options: options})
		delete(groups, attr)
	}
	// Skills governed by an attribute outside the known list land in a
	// trailing group so they are never silently hidden.
	for attr, options := range groups {
		sort.Slice(options, func(i, j int) bool {
			return options[i].Name < options[j].Name
		})
		view.Groups = append(view.Groups, SkillGroup{Attribute: attr, Options: options})
	}

	return view, nil
}

// TalentView builds the talent step's view data: owned talents eligible to
// advance and catalog talents not yet owned, eligible to purchase.
func (w *Wizard) TalentView(ctx context.Context) (*TalentStepView, error) {
	view := &TalentStepView{Mode: w.selection.TalentMode()}

	for _, owned := range w.char.Talents {
		view.Advancable = append(view.Advancable, TalentOption{
			Ref:         owned.ID,
			Name:        owned.Name,
			Description: owned.Description,
			Rank:        owned.Rank,
			Selected:    w.selection.TalentMode() == TalentModeAdvance && w.selection.TalentRef() == owned.ID,
		})
	}

	templates, err := w.svc.catalog.ListTalents(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list catalog talents")
	}
	for _, template := range templates {
		if w.char.OwnsTalentNamed(template.Name) {
			continue
		}
		view.Purchasable = append(view.Purchasable, TalentOption{
			Ref:         template.ID,
			Name:        template.Name,
			Description: template.Description,
			Selected:    w.selection.TalentMode() == TalentModePurchase && w.selection.TalentRef() == template.ID,
		})
	}

	return view, nil
}
