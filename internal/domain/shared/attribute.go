package shared

// Attribute identifies a primary characteristic on a character sheet.
type Attribute string

const (
	AttributeNone         Attribute = ""
	AttributeWeaponSkill  Attribute = "weapon_skill"
	AttributeBallistics   Attribute = "ballistics"
	AttributeStrength     Attribute = "strength"
	AttributeToughness    Attribute = "toughness"
	AttributeAgility      Attribute = "agility"
	AttributeIntelligence Attribute = "intelligence"
	AttributeWillpower    Attribute = "willpower"
	AttributeFellowship   Attribute = "fellowship"
)

// Attributes lists every advanceable attribute in display order.
var Attributes = []Attribute{
	AttributeWeaponSkill,
	AttributeBallistics,
	AttributeStrength,
	AttributeToughness,
	AttributeAgility,
	AttributeIntelligence,
	AttributeWillpower,
	AttributeFellowship,
}

var attributeLabels = map[Attribute]string{
	AttributeWeaponSkill:  "Weapon Skill",
	AttributeBallistics:   "Ballistics",
	AttributeStrength:     "Strength",
	AttributeToughness:    "Toughness",
	AttributeAgility:      "Agility",
	AttributeIntelligence: "Intelligence",
	AttributeWillpower:    "Willpower",
	AttributeFellowship:   "Fellowship",
}

// Label returns the human-readable name for the attribute.
func (a Attribute) Label() string {
	if label, ok := attributeLabels[a]; ok {
		return label
	}
	return string(a)
}

// IsValid reports whether the attribute is one of the known keys.
func (a Attribute) IsValid() bool {
	_, ok := attributeLabels[a]
	return ok
}
