package advancement

import (
	"github.com/ironhearth/advance-bot/internal/domain/character"
	"github.com/ironhearth/advance-bot/internal/domain/shared"
)

// Step is one screen of the advancement wizard. Steps run in a fixed
// linear order with no branching.
type Step int

const (
	StepAttribute Step = iota
	StepSkills
	StepTalent
)

// stepOrder fixes the wizard's step sequence.
var stepOrder = []Step{StepAttribute, StepSkills, StepTalent}

func (s Step) String() string {
	switch s {
	case StepAttribute:
		return "attribute"
	case StepSkills:
		return "skills"
	case StepTalent:
		return "talent"
	default:
		return "unknown"
	}
}

// TalentMode selects how the talent slot of an advancement is spent.
type TalentMode int

const (
	TalentModeNone TalentMode = iota
	TalentModeAdvance
	TalentModePurchase
)

func (m TalentMode) String() string {
	switch m {
	case TalentModeAdvance:
		return "advance"
	case TalentModePurchase:
		return "purchase"
	default:
		return "none"
	}
}

// MaxSelectedSkills is the exact number of skills an advancement raises.
const MaxSelectedSkills = 3

// Selection is the ephemeral state of one wizard run: the current step and
// everything the player has picked so far. It is a plain value object so the
// validator and the commit path can be exercised without any wizard around it.
//
// Invariant: changing the talent mode always clears the talent ref; a ref is
// only meaningful under the mode it was chosen for.
type Selection struct {
	step       Step
	attribute  shared.Attribute
	skills     []string
	talentMode TalentMode
	talentRef  string
}

// NewSelection creates an empty selection positioned on the first step.
func NewSelection() *Selection {
	return &Selection{step: StepAttribute}
}

// Step returns the current wizard step.
func (s *Selection) Step() Step {
	return s.step
}

// Attribute returns the chosen attribute, or shared.AttributeNone.
func (s *Selection) Attribute() shared.Attribute {
	return s.attribute
}

// Skills returns the chosen skill names in selection order.
func (s *Selection) Skills() []string {
	out := make([]string, len(s.skills))
	copy(out, s.skills)
	return out
}

// TalentMode returns the chosen talent mode.
func (s *Selection) TalentMode() TalentMode {
	return s.talentMode
}

// TalentRef returns the owned-talent ID (advance mode) or catalog entry ID
// (purchase mode), or empty.
func (s *Selection) TalentRef() string {
	return s.talentRef
}

// SelectAttribute records the attribute choice. Valid on any step; it does
// not advance the wizard.
func (s *Selection) SelectAttribute(key shared.Attribute) {
	s.attribute = key
}

// ToggleSkill adds or removes a skill from the selection. Skill identity is
// case-insensitive. Adding beyond the cap is a no-op rather than an error.
func (s *Selection) ToggleSkill(name string) {
	key := character.SkillKey(name)
	for i, existing := range s.skills {
		if character.SkillKey(existing) == key {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			return
		}
	}
	if len(s.skills) >= MaxSelectedSkills {
		return
	}
	s.skills = append(s.skills, name)
}

// HasSkill reports whether the skill is currently selected.
func (s *Selection) HasSkill(name string) bool {
	key := character.SkillKey(name)
	for _, existing := range s.skills {
		if character.SkillKey(existing) == key {
			return true
		}
	}
	return false
}

// SetTalentMode records the talent mode and clears any talent ref.
func (s *Selection) SetTalentMode(mode TalentMode) {
	s.talentMode = mode
	s.talentRef = ""
}

// SelectTalent records the talent reference for the current mode.
func (s *Selection) SelectTalent(ref string) {
	s.talentRef = ref
}
