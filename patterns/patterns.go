// Package patterns addresses the pattern slots of a state.
//
// The host exposes a fixed address space of slots numbered from 1. Slot s
// lives at list entry s-1. Slot 0 is reserved: it is never visible or
// counted, and it aliases the top entry of the list. Removing a pattern
// shifts every later pattern down and appends a default one at the top,
// so anything written through slot 0 resurfaces as the highest usable slot.
package patterns

import (
	"flmodel/debug"
	"flmodel/errs"
	"flmodel/state"
)

func entry(s *state.State, slot int) int {
	if slot == 0 {
		return len(s.Patterns.List) - 1
	}
	return slot - 1
}

// Max returns the highest usable slot
func Max(s *state.State) int {
	return len(s.Patterns.List) - 1
}

// CheckIndex fails with an index error unless slot is addressable. Slot 0
// is addressable even though it is never visible.
func CheckIndex(s *state.State, slot int) error {
	if slot < 0 || slot >= len(s.Patterns.List) {
		return errs.IndexError("pattern", slot)
	}
	return nil
}

// Reference returns the pattern at a slot. A nil slot means the active one.
func Reference(s *state.State, slot *int) (*state.Pattern, error) {
	idx := s.Patterns.Active
	if slot != nil {
		idx = *slot
	}
	if err := CheckIndex(s, idx); err != nil {
		return nil, err
	}
	return s.Patterns.List[entry(s, idx)], nil
}

// At is Reference for a known slot
func At(s *state.State, slot int) (*state.Pattern, error) {
	return Reference(s, &slot)
}

// HasChanged reports whether a pattern differs from a fresh default one
func HasChanged(p *state.Pattern) bool {
	return p.HasChanged()
}

// Count returns the number of changed patterns in the usable slots
func Count(s *state.State) int {
	n := 0
	for slot := 1; slot <= Max(s); slot++ {
		if s.Patterns.List[entry(s, slot)].HasChanged() {
			n++
		}
	}
	return n
}

// IsVisible reports whether a slot shows up in the host's pattern picker
func IsVisible(s *state.State, slot int) bool {
	if slot <= 0 || slot > Max(s) {
		return false
	}
	if slot == s.Patterns.Active || s.Patterns.ShowAll {
		return true
	}
	return s.Patterns.List[entry(s, slot)].HasChanged()
}

// DisplayIndex maps a slot used only for display to an addressable one.
// Out of range slots show slot 1 rather than failing.
func DisplayIndex(s *state.State, slot int) int {
	if slot < 1 || slot > Max(s) {
		return 1
	}
	return slot
}

// Remove deletes the pattern at slot. Later patterns move down one slot,
// the active pointer follows them and a default pattern fills the top.
func Remove(s *state.State, slot int) error {
	if slot < 1 || slot > Max(s) {
		return errs.IndexError("pattern", slot)
	}
	list := s.Patterns.List
	idx := entry(s, slot)
	list = append(list[:idx], list[idx+1:]...)
	for pos := idx; pos < len(list); pos++ {
		list[pos].NotifyIndexChanged(pos + 1)
	}
	list = append(list, state.NewPattern(len(s.Channels.List), 0))
	s.Patterns.List = list

	if s.Patterns.Active >= slot {
		s.Patterns.Active = max(s.Patterns.Active-1, 1)
	}
	debug.Log("patterns", "removed slot %d, active now %d", slot, s.Patterns.Active)
	return nil
}

// Add creates a default pattern sized to the channel rack in a new slot
// just below the reserved top entry, and returns that slot
func Add(s *state.State) int {
	list := s.Patterns.List
	top := len(list) - 1
	p := state.NewPattern(len(s.Channels.List), top+1)

	list = append(list, nil)
	copy(list[top+1:], list[top:])
	list[top] = p
	s.Patterns.List = list
	return top + 1
}
