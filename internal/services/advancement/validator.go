package advancement

import "github.com/ironhearth/advance-bot/internal/domain/shared"

// CanProceed reports whether the selection satisfies the local gate of the
// given step. Gates are evaluated against the selection alone; they never
// consult storage.
func CanProceed(sel *Selection, step Step) bool {
	if sel == nil {
		return false
	}

	switch step {
	case StepAttribute:
		return sel.Attribute() != shared.AttributeNone
	case StepSkills:
		// Exactly three, no more, no fewer.
		return len(sel.Skills()) == MaxSelectedSkills
	case StepTalent:
		return sel.TalentMode() != TalentModeNone && sel.TalentRef() != ""
	default:
		return false
	}
}

// CanComplete reports whether the whole selection is commit-ready: every
// step's local gate holds, regardless of which step is currently shown.
func CanComplete(sel *Selection) bool {
	for _, step := range stepOrder {
		if !CanProceed(sel, step) {
			return false
		}
	}
	return true
}
