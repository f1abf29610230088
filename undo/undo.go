// Package undo models the host's undo history.
//
// Items are stored most recent first and Position counts back from the most
// recent item. The history carries two lengths: PosLen follows SetPos and
// CountLen follows SetCount. The host trims them independently, so they
// are allowed to disagree with each other and with len(Items).
package undo

import (
	"fmt"

	"flmodel/debug"
	"flmodel/errs"
	"flmodel/state"
)

// Flags describing what an undo point covers
const (
	UFNone      = 0
	UFEE        = 1 << 0 // event editor
	UFPR        = 1 << 1 // piano roll
	UFPL        = 1 << 2 // playlist
	UFKnob      = 1 << 5 // automated control
	UFAudioRec  = 1 << 8
	UFAutoClip  = 1 << 9
	UFPRMarker  = 1 << 10
	UFPLMarker  = 1 << 11
	UFPlugin    = 1 << 12
	UFSSLooping = 1 << 13
	UFReset     = 1 << 16 // clear the history first
)

// Save records a new undo point. Saving while moved back in the history
// discards everything newer than the current position.
func Save(s *state.State, name string, flags int) {
	u := &s.General.Undo
	if flags&UFReset != 0 {
		u.Items = nil
		u.Position = 0
		u.PosLen = 0
		u.CountLen = 0
	}
	if u.Position != 0 {
		u.Items = u.Items[min(u.Position, len(u.Items)):]
		u.Position = 0
		u.PosLen = len(u.Items)
		u.CountLen = len(u.Items)
	}
	u.Items = append([]state.UndoItem{{Name: name, Flags: flags}}, u.Items...)
	u.PosLen++
	u.CountLen++
	debug.Log("undo", "saved %q (%d items)", name, len(u.Items))
}

// UpDown moves through the history. Positive deltas move towards the most
// recent item, negative ones undo further back. The position clamps at
// both ends.
func UpDown(s *state.State, delta int) {
	u := &s.General.Undo
	u.Position = clampPosition(u, u.Position-delta)
}

// Up undoes one step
func Up(s *state.State) {
	UpDown(s, -1)
}

// Down redoes one step
func Down(s *state.State) {
	UpDown(s, 1)
}

// Toggle undoes from the most recent item and redoes from anywhere else,
// like pressing Ctrl+Z
func Toggle(s *state.State) {
	if s.General.Undo.Position == 0 {
		Up(s)
	} else {
		Down(s)
	}
}

// SetPos keeps only the oldest n items
func SetPos(s *state.State, n int) error {
	if n < 0 {
		return errs.Newf(errs.CodeInvalidValue, "undo history length %d", n)
	}
	u := &s.General.Undo
	n = min(n, len(u.Items))
	u.Items = u.Items[len(u.Items)-n:]
	u.PosLen = n
	u.Position = clampPosition(u, u.Position)
	debug.Log("undo", "trimmed to oldest %d", n)
	return nil
}

// SetCount keeps only the newest n items
func SetCount(s *state.State, n int) error {
	if n < 0 {
		return errs.Newf(errs.CodeInvalidValue, "undo history length %d", n)
	}
	u := &s.General.Undo
	n = min(n, len(u.Items))
	u.Items = u.Items[:n]
	u.CountLen = n
	u.Position = clampPosition(u, u.Position)
	debug.Log("undo", "trimmed to newest %d", n)
	return nil
}

// SetLast moves to an absolute position, clamped to the history
func SetLast(s *state.State, position int) {
	u := &s.General.Undo
	u.Position = clampPosition(u, position)
}

// LevelHint formats the position as "{position+1}/{count}"
func LevelHint(s *state.State) string {
	u := s.General.Undo
	return fmt.Sprintf("%d/%d", u.Position+1, u.CountLen)
}

// Pos returns the length tracked by SetPos
func Pos(s *state.State) int {
	return s.General.Undo.PosLen
}

// Count returns the length tracked by SetCount
func Count(s *state.State) int {
	return s.General.Undo.CountLen
}

// Last returns the current position
func Last(s *state.State) int {
	return s.General.Undo.Position
}

func clampPosition(u *state.UndoState, position int) int {
	return max(0, min(position, len(u.Items)-1))
}
