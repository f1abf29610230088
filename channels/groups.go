// Package channels converts between global and group channel indexes and
// maintains group membership on the channel rack.
//
// A channel's global index is its position in the full rack. Its group
// index is its position among the channels sharing its group, in ascending
// global order. Membership lives on each channel, so a group with no
// members simply stops existing.
package channels

import (
	"flmodel/debug"
	"flmodel/errs"
	"flmodel/state"
)

// InGroup returns the global indexes of every channel matching group, in
// ascending order
func InGroup(s *state.State, group state.Group) []int {
	idxs := []int{}
	for i, c := range s.Channels.List {
		if group.Matches(c.Group) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// InSelectedGroup returns the channels shown by the rack's group filter
func InSelectedGroup(s *state.State) []int {
	return InGroup(s, s.Channels.SelectedGroup)
}

// CheckGlobalIndex fails with an index error unless idx addresses a channel
func CheckGlobalIndex(s *state.State, idx int) error {
	if idx < 0 || idx >= len(s.Channels.List) {
		return errs.IndexError("channel", idx)
	}
	return nil
}

// CheckGroupIndex fails with an index error unless idx addresses a channel
// in the selected group
func CheckGroupIndex(s *state.State, idx int) error {
	if idx < 0 || idx >= len(InSelectedGroup(s)) {
		return errs.IndexError("group channel", idx)
	}
	return nil
}

// GlobalToGroup converts a global index to a group index. A nil group means
// the channel's own group. Asking for a group the channel is not in fails
// with errs.NotInGroup.
func GlobalToGroup(s *state.State, global int, group *state.Group) (int, error) {
	if err := CheckGlobalIndex(s, global); err != nil {
		return 0, err
	}
	target := state.GroupOf(s.Channels.List[global])
	if group != nil {
		if group.IsAll() {
			return global, nil
		}
		if !group.Matches(s.Channels.List[global].Group) {
			return 0, errs.Newf(errs.CodeNotInGroup, "channel %d is not a member of group %v", global, *group)
		}
		target = *group
	}

	groupIdx := 0
	for i := 0; i < global; i++ {
		if target.Matches(s.Channels.List[i].Group) {
			groupIdx++
		}
	}
	return groupIdx, nil
}

// GroupToGlobal converts a group index to a global index. A nil group means
// the rack's selected group filter.
func GroupToGlobal(s *state.State, groupIdx int, group *state.Group) (int, error) {
	target := s.Channels.SelectedGroup
	if group != nil {
		target = *group
	}
	if target.IsAll() {
		if err := CheckGlobalIndex(s, groupIdx); err != nil {
			return 0, err
		}
		return groupIdx, nil
	}

	members := InGroup(s, target)
	if groupIdx < 0 || groupIdx >= len(members) {
		return 0, errs.IndexError("group channel", groupIdx)
	}
	return members[groupIdx], nil
}

// AddToGroup moves every channel in idxs into the named group. All indexes
// are checked before any channel moves.
func AddToGroup(s *state.State, name string, idxs []int) error {
	if name == "" {
		return errs.New(errs.CodeInvalidValue, "group name can't be empty")
	}
	for _, idx := range idxs {
		if err := CheckGlobalIndex(s, idx); err != nil {
			return err
		}
	}
	for _, idx := range idxs {
		s.Channels.List[idx].Group = name
	}
	debug.Log("channels", "grouped %v into %q", idxs, name)
	return nil
}

// RemoveFromGroup moves a channel back to the unsorted group if it is a
// member of group. It reports whether the channel matched.
func RemoveFromGroup(s *state.State, idx int, group state.Group) (bool, error) {
	if err := CheckGlobalIndex(s, idx); err != nil {
		return false, err
	}
	c := s.Channels.List[idx]
	if !group.Matches(c.Group) {
		return false, nil
	}
	c.Group = ""
	return true, nil
}

// RemoveFromAnyGroup moves a channel back to the unsorted group
func RemoveFromAnyGroup(s *state.State, idx int) error {
	if err := CheckGlobalIndex(s, idx); err != nil {
		return err
	}
	s.Channels.List[idx].Group = ""
	return nil
}
