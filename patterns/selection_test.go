package patterns

import (
	"errors"
	"testing"

	"flmodel/errs"
	"flmodel/state"
)

func isSelected(t *testing.T, s *state.State, slot int) bool {
	t.Helper()
	ok, err := IsSelected(s, slot)
	if err != nil {
		t.Fatalf("IsSelected(%d): %v", slot, err)
	}
	return ok
}

func TestSelectionDefault(t *testing.T) {
	s := state.NewState(nil)
	if isSelected(t, s, 1) {
		t.Fatalf("pattern 1 selected by default")
	}
}

func TestToggleSelection(t *testing.T) {
	s := state.NewState(nil)
	SetSelected(s, 1, Toggle)
	if !isSelected(t, s, 1) {
		t.Fatalf("toggle did not select")
	}
	SetSelected(s, 1, Toggle)
	if isSelected(t, s, 1) {
		t.Fatalf("second toggle did not deselect")
	}
}

func TestSelectAndDeselectAreIdempotent(t *testing.T) {
	s := state.NewState(nil)
	SetSelected(s, 1, Select)
	SetSelected(s, 1, Select)
	if !isSelected(t, s, 1) {
		t.Fatalf("select twice left pattern deselected")
	}
	SetSelected(s, 1, Deselect)
	SetSelected(s, 1, Deselect)
	if isSelected(t, s, 1) {
		t.Fatalf("deselect twice left pattern selected")
	}
}

func TestInvalidSelectMode(t *testing.T) {
	s := state.NewState(nil)
	if err := SetSelected(s, 1, SelectMode(2)); !errors.Is(err, errs.InvalidValue) {
		t.Fatalf("SetSelected(mode 2) = %v, want invalid value", err)
	}
	if err := SetSelected(s, 1000, Select); !errors.Is(err, errs.Index) {
		t.Fatalf("SetSelected(1000) = %v, want index error", err)
	}
}

func TestSelectionChangesActive(t *testing.T) {
	s := state.NewState(nil)
	SetSelected(s, 4, Toggle)
	if s.Patterns.Active != 4 {
		t.Fatalf("active = %d, want 4", s.Patterns.Active)
	}
}

func TestDeselectionMovesActiveToFirstSelected(t *testing.T) {
	s := state.NewState(nil)
	for _, slot := range []int{2, 3, 4} {
		SetSelected(s, slot, Toggle)
	}
	SetSelected(s, 4, Toggle)
	if s.Patterns.Active != 2 {
		t.Fatalf("active = %d, want 2", s.Patterns.Active)
	}
}

func TestLastDeselectionLeavesActive(t *testing.T) {
	s := state.NewState(nil)
	SetSelected(s, 2, Select)
	SetSelected(s, 2, Deselect)
	if s.Patterns.Active != 2 {
		t.Fatalf("active = %d, want 2", s.Patterns.Active)
	}
}

func TestInvisiblePatternsCannotBeSelected(t *testing.T) {
	s := state.NewState(nil)
	s.Patterns.ShowAll = false
	SetSelected(s, 6, Select)
	if isSelected(t, s, 6) || s.Patterns.Active != 1 {
		t.Fatalf("invisible pattern was selected")
	}
}

func TestSelectZeroSelectsFirst(t *testing.T) {
	s := state.NewState(nil)
	SetSelected(s, 0, Toggle)
	if !isSelected(t, s, 1) || s.Patterns.Active != 1 {
		t.Fatalf("selecting slot 0 did not select slot 1")
	}
}

func TestJumpSelectsUnselected(t *testing.T) {
	s := state.NewState(nil)
	SetSelected(s, 1, Select)
	if err := Jump(s, 2); err != nil {
		t.Fatalf("Jump(2): %v", err)
	}
	if s.Patterns.Active != 2 || isSelected(t, s, 1) || !isSelected(t, s, 2) {
		t.Fatalf("jump did not make 2 the only selection")
	}
}

func TestJumpKeepsExistingSelection(t *testing.T) {
	s := state.NewState(nil)
	SetSelected(s, 1, Select)
	SetSelected(s, 2, Select)
	if err := Jump(s, 2); err != nil {
		t.Fatalf("Jump(2): %v", err)
	}
	if s.Patterns.Active != 2 || !isSelected(t, s, 1) || !isSelected(t, s, 2) {
		t.Fatalf("jump to a selected pattern changed the selection")
	}
}

func TestJumpToZero(t *testing.T) {
	s := state.NewState(nil)
	s.Patterns.Active = 5
	if err := Jump(s, 0); err != nil {
		t.Fatalf("Jump(0): %v", err)
	}
	if s.Patterns.Active != 1 || !isSelected(t, s, 1) {
		t.Fatalf("Jump(0) did not land on slot 1")
	}
	if err := Jump(s, -1); !errors.Is(err, errs.Index) {
		t.Fatalf("Jump(-1) = %v, want index error", err)
	}
}

func TestSelectAllSkipsInvisible(t *testing.T) {
	s := state.NewState(nil)
	s.Patterns.ShowAll = false
	mustAt(t, s, 3).SetName("Used")

	if err := SelectAll(s); err != nil {
		t.Fatalf("SelectAll() = %v", err)
	}
	if !isSelected(t, s, 1) || !isSelected(t, s, 3) || isSelected(t, s, 2) {
		t.Fatalf("SelectAll selected the wrong patterns")
	}

	DeselectAll(s)
	if got := FirstSelected(s); got != 0 {
		t.Fatalf("FirstSelected() = %d after DeselectAll, want 0", got)
	}
}
