package character

import (
	"strings"

	"github.com/ironhearth/advance-bot/internal/domain/shared"
)

// AttributeScore holds the three components that make up an attribute's value.
type AttributeScore struct {
	Base     int `json:"base"`
	Advances int `json:"advances"`
	Modifier int `json:"modifier"`
}

// Total returns the effective attribute value.
func (s *AttributeScore) Total() int {
	if s == nil {
		return 0
	}
	return s.Base + s.Advances + s.Modifier
}

// Skill is a skill owned by a character. Skills are unique by
// case-insensitive name; Rank is always at least 1 once owned.
type Skill struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// Talent is a talent owned by a character. ID is assigned at acquisition
// and is unrelated to the catalog template the talent was cloned from.
type Talent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Rank        int    `json:"rank"`
}

// Character is the player-owned record the advancement service operates on.
type Character struct {
	ID         string                               `json:"id"`
	OwnerID    string                               `json:"owner_id"`
	Name       string                               `json:"name"`
	Experience int                                  `json:"experience"`
	Attributes map[shared.Attribute]*AttributeScore `json:"attributes"`
	Skills     []*Skill                             `json:"skills"`
	Talents    []*Talent                            `json:"talents"`
}

// Attribute returns the score for the given attribute, initializing an
// empty score if the character has never touched it.
func (c *Character) Attribute(key shared.Attribute) *AttributeScore {
	if c.Attributes == nil {
		c.Attributes = make(map[shared.Attribute]*AttributeScore)
	}
	if score, ok := c.Attributes[key]; ok {
		return score
	}
	score := &AttributeScore{}
	c.Attributes[key] = score
	return score
}

// SkillKey normalizes a skill name for identity comparison. A skill owned
// under any capitalization counts as owned.
func SkillKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SkillByName returns the owned skill matching the name case-insensitively,
// or nil if the character does not own it.
func (c *Character) SkillByName(name string) *Skill {
	key := SkillKey(name)
	for _, skill := range c.Skills {
		if SkillKey(skill.Name) == key {
			return skill
		}
	}
	return nil
}

// OwnsSkill reports whether the character owns a skill with the given name.
func (c *Character) OwnsSkill(name string) bool {
	return c.SkillByName(name) != nil
}

// TalentByID returns the owned talent with the given ID, or nil.
func (c *Character) TalentByID(id string) *Talent {
	for _, talent := range c.Talents {
		if talent.ID == id {
			return talent
		}
	}
	return nil
}

// OwnsTalentNamed reports whether the character owns a talent with the
// given name, compared case-insensitively.
func (c *Character) OwnsTalentNamed(name string) bool {
	key := SkillKey(name)
	for _, talent := range c.Talents {
		if SkillKey(talent.Name) == key {
			return true
		}
	}
	return false
}
