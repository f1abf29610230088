package state

import (
	"encoding/json"
	"fmt"
	"sort"

	"flmodel/errs"
)

// PatternCount is the number of entries in the pattern address space
const PatternCount = 1000

// DefaultPatternColor is the color of a pattern nobody has recolored
const DefaultPatternColor = 0x485156

// GridBits is the set of active steps for one channel in one pattern.
// The zero value is an empty set.
type GridBits struct {
	bits map[int]struct{}
}

// Get reports whether a step is set
func (g *GridBits) Get(step int) bool {
	_, ok := g.bits[step]
	return ok
}

// Set sets or clears a step
func (g *GridBits) Set(step int, value bool) error {
	if step < 0 {
		return errs.IndexError("step", step)
	}
	if value {
		if g.bits == nil {
			g.bits = make(map[int]struct{})
		}
		g.bits[step] = struct{}{}
	} else {
		delete(g.bits, step)
	}
	return nil
}

// Toggle flips a step
func (g *GridBits) Toggle(step int) error {
	return g.Set(step, !g.Get(step))
}

// Len returns the number of set steps
func (g *GridBits) Len() int {
	return len(g.bits)
}

// Steps returns the set steps in ascending order
func (g *GridBits) Steps() []int {
	steps := make([]int, 0, len(g.bits))
	for s := range g.bits {
		steps = append(steps, s)
	}
	sort.Ints(steps)
	return steps
}

// Equal compares two sets by value
func (g *GridBits) Equal(other *GridBits) bool {
	if g.Len() != other.Len() {
		return false
	}
	for s := range g.bits {
		if !other.Get(s) {
			return false
		}
	}
	return true
}

func (g GridBits) clone() GridBits {
	if len(g.bits) == 0 {
		return GridBits{}
	}
	dup := make(map[int]struct{}, len(g.bits))
	for s := range g.bits {
		dup[s] = struct{}{}
	}
	return GridBits{bits: dup}
}

func (g GridBits) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Steps())
}

func (g *GridBits) UnmarshalJSON(data []byte) error {
	var steps []int
	if err := json.Unmarshal(data, &steps); err != nil {
		return err
	}
	*g = GridBits{}
	for _, s := range steps {
		if err := g.Set(s, true); err != nil {
			return err
		}
	}
	return nil
}

// Pattern is one slot in the pattern address space.
//
// Tracks holds one GridBits per channel and is sized lazily: a channel past
// the end of Tracks simply has no steps set.
type Pattern struct {
	Tracks     []GridBits `json:"tracks"`
	Color      int        `json:"color"`
	Num        int        `json:"num"`
	CustomName string     `json:"name,omitempty"`
	Selected   bool       `json:"selected"`
}

// NewPattern creates a default pattern with the given channel count
func NewPattern(numTracks, num int) *Pattern {
	return &Pattern{
		Tracks: make([]GridBits, numTracks),
		Color:  DefaultPatternColor,
		Num:    num,
	}
}

// Name returns the custom name, or "Pattern {n}" when unset
func (p *Pattern) Name() string {
	if p.CustomName != "" {
		return p.CustomName
	}
	return fmt.Sprintf("Pattern %d", p.Num)
}

// SetName sets the name. The empty string restores the default name.
func (p *Pattern) SetName(name string) {
	p.CustomName = name
}

// Track returns the grid bits for a channel, growing Tracks as needed
func (p *Pattern) Track(channel int) *GridBits {
	for len(p.Tracks) <= channel {
		p.Tracks = append(p.Tracks, GridBits{})
	}
	return &p.Tracks[channel]
}

// GridBit reads a step without growing Tracks
func (p *Pattern) GridBit(channel, step int) bool {
	if channel < 0 || channel >= len(p.Tracks) {
		return false
	}
	return p.Tracks[channel].Get(step)
}

// Equal compares grid bits, color and displayed name. Selection is not
// part of a pattern's content.
func (p *Pattern) Equal(other *Pattern) bool {
	if p.Color != other.Color || p.Name() != other.Name() {
		return false
	}
	n := max(len(p.Tracks), len(other.Tracks))
	var empty GridBits
	for i := 0; i < n; i++ {
		a, b := &empty, &empty
		if i < len(p.Tracks) {
			a = &p.Tracks[i]
		}
		if i < len(other.Tracks) {
			b = &other.Tracks[i]
		}
		if !a.Equal(b) {
			return false
		}
	}
	return true
}

// HasChanged reports whether the pattern differs from a fresh default
// pattern with the same channel count
func (p *Pattern) HasChanged() bool {
	return !p.Equal(NewPattern(len(p.Tracks), p.Num))
}

// NotifyChannelCreate inserts an empty column for a new channel
func (p *Pattern) NotifyChannelCreate(position int) {
	if position < 0 || position > len(p.Tracks) {
		return
	}
	p.Tracks = append(p.Tracks, GridBits{})
	copy(p.Tracks[position+1:], p.Tracks[position:])
	p.Tracks[position] = GridBits{}
}

// NotifyChannelDestroy drops the column of a removed channel
func (p *Pattern) NotifyChannelDestroy(position int) {
	if position < 0 || position >= len(p.Tracks) {
		return
	}
	p.Tracks = append(p.Tracks[:position], p.Tracks[position+1:]...)
}

// NotifyChannelSwapped exchanges two channels' columns
func (p *Pattern) NotifyChannelSwapped(first, second int) {
	if first < 0 || second < 0 {
		return
	}
	p.Track(max(first, second))
	p.Tracks[first], p.Tracks[second] = p.Tracks[second], p.Tracks[first]
}

// NotifyIndexChanged updates the stored slot number after a move
func (p *Pattern) NotifyIndexChanged(num int) {
	p.Num = num
}

// Clone returns a deep copy
func (p *Pattern) Clone() *Pattern {
	dup := *p
	dup.Tracks = make([]GridBits, len(p.Tracks))
	for i, t := range p.Tracks {
		dup.Tracks[i] = t.clone()
	}
	return &dup
}
