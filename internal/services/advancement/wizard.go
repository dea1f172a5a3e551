package advancement

import (
	"context"

	"github.com/ironhearth/advance-bot/internal/domain/character"
	"github.com/ironhearth/advance-bot/internal/domain/shared"
	apperr "github.com/ironhearth/advance-bot/internal/errors"
)

// Wizard is one run of the advancement flow for one character. It owns the
// selection, gates navigation through the step validator, and hands the
// finished selection to the commit engine.
//
// A wizard is driven by a single caller; it is not safe for concurrent use.
type Wizard struct {
	svc       *service
	char      *character.Character
	selection *Selection
	closed    bool
}

// Character returns the snapshot the wizard was opened with. The wizard
// only reads it; all mutation goes through the commit engine.
func (w *Wizard) Character() *character.Character {
	return w.char
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.selection.Step()
}

// Selection exposes the wizard's selection for inspection.
func (w *Wizard) Selection() *Selection {
	return w.selection
}

// Closed reports whether the wizard has finished, via cancel or a
// successful complete.
func (w *Wizard) Closed() bool {
	return w.closed
}

// SelectAttribute records the attribute choice without advancing the step.
func (w *Wizard) SelectAttribute(key shared.Attribute) {
	w.selection.SelectAttribute(key)
}

// ToggleSkill adds or removes a skill from the selection.
func (w *Wizard) ToggleSkill(name string) {
	w.selection.ToggleSkill(name)
}

// SetTalentMode records the talent mode, clearing any previous talent ref.
func (w *Wizard) SetTalentMode(mode TalentMode) {
	w.selection.SetTalentMode(mode)
}

// SelectTalent records the talent reference for the current mode.
func (w *Wizard) SelectTalent(ref string) {
	w.selection.SelectTalent(ref)
}

// CanProceed reports whether the current step's gate is satisfied.
func (w *Wizard) CanProceed() bool {
	return CanProceed(w.selection, w.selection.Step())
}

// CanComplete reports whether every step's gate is satisfied, regardless of
// the step currently shown.
func (w *Wizard) CanComplete() bool {
	return CanComplete(w.selection)
}

// Next advances to the following step if the current step's gate holds and
// there is a following step. Returns true if the step changed.
func (w *Wizard) Next() bool {
	current := w.selection.Step()
	if !CanProceed(w.selection, current) {
		return false
	}
	if int(current) >= len(stepOrder)-1 {
		return false
	}
	w.selection.step = stepOrder[int(current)+1]
	return true
}

// Prev retreats to the preceding step. Never gated: the user can always go
// back. Returns true if the step changed.
func (w *Wizard) Prev() bool {
	current := w.selection.Step()
	if int(current) <= 0 {
		return false
	}
	w.selection.step = stepOrder[int(current)-1]
	return true
}

// Cancel discards the selection and closes the wizard. The character is
// never touched.
func (w *Wizard) Cancel() {
	w.selection = NewSelection()
	w.closed = true
}

// Complete commits the selection. On success the wizard closes; on any
// error it stays open so the user can retry or cancel.
func (w *Wizard) Complete(ctx context.Context) (*Summary, error) {
	if w.closed {
		return nil, apperr.InvalidArgument("wizard is closed")
	}
	if !CanComplete(w.selection) {
		return nil, apperr.InvalidArgument("selection is not commit-ready")
	}

	out, err := w.svc.Commit(ctx, &CommitInput{
		CharacterID: w.char.ID,
		Selection:   w.selection,
	})
	if err != nil {
		return nil, err
	}

	w.closed = true
	return out.Summary, nil
}
