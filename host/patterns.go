package host

import (
	"flmodel/patterns"
	"flmodel/state"
)

func (h *Host) activePattern() (*state.Pattern, error) {
	return patterns.Reference(h.live(), nil)
}

// PatternNumber returns the active slot
func (h *Host) PatternNumber() (int, error) {
	if err := h.Guard.Check(opPatternNumber); err != nil {
		return 0, err
	}
	return h.live().Patterns.Active, nil
}

// PatternCount returns the number of patterns that differ from a default one
func (h *Host) PatternCount() (int, error) {
	if err := h.Guard.Check(opPatternCount); err != nil {
		return 0, err
	}
	return patterns.Count(h.live()), nil
}

// PatternMax returns the highest usable slot
func (h *Host) PatternMax() (int, error) {
	if err := h.Guard.Check(opPatternMax); err != nil {
		return 0, err
	}
	return patterns.Max(h.live()), nil
}

func (h *Host) GetPatternName(slot int) (string, error) {
	if err := h.Guard.Check(opGetPatternName); err != nil {
		return "", err
	}
	p, err := patterns.At(h.live(), slot)
	if err != nil {
		return "", err
	}
	return p.Name(), nil
}

// SetPatternName renames a pattern. An empty name restores the default.
func (h *Host) SetPatternName(slot int, name string) error {
	if err := h.Guard.Check(opSetPatternName); err != nil {
		return err
	}
	p, err := patterns.At(h.live(), slot)
	if err != nil {
		return err
	}
	p.SetName(name)
	return nil
}

func (h *Host) GetPatternColor(slot int) (int, error) {
	if err := h.Guard.Check(opGetPatternColor); err != nil {
		return 0, err
	}
	p, err := patterns.At(h.live(), slot)
	if err != nil {
		return 0, err
	}
	return p.Color, nil
}

func (h *Host) SetPatternColor(slot int, color int) error {
	if err := h.Guard.Check(opSetPatternColor); err != nil {
		return err
	}
	p, err := patterns.At(h.live(), slot)
	if err != nil {
		return err
	}
	p.Color = color
	return nil
}

// JumpToPattern makes slot the active pattern
func (h *Host) JumpToPattern(slot int) error {
	if err := h.Guard.Check(opJumpToPattern); err != nil {
		return err
	}
	return patterns.Jump(h.live(), slot)
}

// SelectPattern changes the selection of a slot: -1 toggles, 0 deselects
// and 1 selects
func (h *Host) SelectPattern(slot int, value int) error {
	if err := h.Guard.Check(opSelectPattern); err != nil {
		return err
	}
	return patterns.SetSelected(h.live(), slot, patterns.SelectMode(value))
}

func (h *Host) IsPatternSelected(slot int) (bool, error) {
	if err := h.Guard.Check(opIsPatternSelected); err != nil {
		return false, err
	}
	return patterns.IsSelected(h.live(), slot)
}

func (h *Host) SelectAllPatterns() error {
	if err := h.Guard.Check(opSelectAllPatterns); err != nil {
		return err
	}
	return patterns.SelectAll(h.live())
}

func (h *Host) DeselectAllPatterns() error {
	if err := h.Guard.Check(opDeselectAllPatterns); err != nil {
		return err
	}
	patterns.DeselectAll(h.live())
	return nil
}

// IsPatternDefault reports whether a pattern is still untouched
func (h *Host) IsPatternDefault(slot int) (bool, error) {
	if err := h.Guard.Check(opIsPatternDefault); err != nil {
		return false, err
	}
	p, err := patterns.At(h.live(), slot)
	if err != nil {
		return false, err
	}
	return !p.HasChanged(), nil
}

// PatternDisplayName returns the name shown for slot in the host's picker.
// Slots outside the usable range show slot 1.
func (h *Host) PatternDisplayName(slot int) (string, error) {
	if err := h.Guard.Check(opGetPatternName); err != nil {
		return "", err
	}
	s := h.live()
	p, err := patterns.At(s, patterns.DisplayIndex(s, slot))
	if err != nil {
		return "", err
	}
	return p.Name(), nil
}
