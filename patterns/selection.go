package patterns

import (
	"flmodel/errs"
	"flmodel/state"
)

// SelectMode is the value argument of the host's selectPattern
type SelectMode int

const (
	Toggle   SelectMode = -1
	Deselect SelectMode = 0
	Select   SelectMode = 1
)

// SetSelected changes a pattern's selection. Selecting makes the pattern
// active; deselecting moves the active pointer to the first pattern still
// selected, if any. Slot 0 stands for slot 1 and invisible patterns are
// left alone.
func SetSelected(s *state.State, slot int, mode SelectMode) error {
	if err := CheckIndex(s, slot); err != nil {
		return err
	}
	if mode < Toggle || mode > Select {
		return errs.Newf(errs.CodeInvalidValue, "invalid select mode %d", mode)
	}
	if slot == 0 {
		slot = 1
	}
	if !IsVisible(s, slot) {
		return nil
	}

	p := s.Patterns.List[entry(s, slot)]
	switch mode {
	case Toggle:
		p.Selected = !p.Selected
	case Deselect:
		p.Selected = false
	case Select:
		p.Selected = true
	}

	if p.Selected {
		s.Patterns.Active = slot
		return nil
	}
	if first := FirstSelected(s); first > 0 {
		s.Patterns.Active = first
	}
	return nil
}

// IsSelected reports whether a slot is selected
func IsSelected(s *state.State, slot int) (bool, error) {
	p, err := At(s, slot)
	if err != nil {
		return false, err
	}
	return p.Selected, nil
}

// FirstSelected returns the lowest selected slot, or 0 when none is
func FirstSelected(s *state.State) int {
	for slot := 1; slot <= Max(s); slot++ {
		if s.Patterns.List[entry(s, slot)].Selected {
			return slot
		}
	}
	return 0
}

// Jump makes a slot active. An unselected target becomes the only
// selected pattern; a selected one keeps the current selection.
func Jump(s *state.State, slot int) error {
	if err := CheckIndex(s, slot); err != nil {
		return err
	}
	if slot == 0 {
		slot = 1
	}
	p := s.Patterns.List[entry(s, slot)]
	if !p.Selected {
		DeselectAll(s)
		p.Selected = true
	}
	s.Patterns.Active = slot
	return nil
}

// SelectAll selects every visible pattern. It stops at the first slot
// that fails.
func SelectAll(s *state.State) error {
	for slot := 1; slot <= Max(s); slot++ {
		if err := SetSelected(s, slot, Select); err != nil {
			return err
		}
	}
	return nil
}

// DeselectAll clears the selection
func DeselectAll(s *state.State) {
	for slot := 1; slot <= Max(s); slot++ {
		s.Patterns.List[entry(s, slot)].Selected = false
	}
}
