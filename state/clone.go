package state

import "slices"

// Clone returns a deep copy of the state. Nothing in the copy shares memory
// with the original.
func (s *State) Clone() *State {
	dup := *s
	dup.Channels = s.Channels.clone()
	dup.Patterns = s.Patterns.clone()
	dup.Mixer = s.Mixer.clone()
	dup.Transport.Markers = slices.Clone(s.Transport.Markers)
	dup.Device.DispatchTargets = slices.Clone(s.Device.DispatchTargets)
	dup.General.Undo.Items = slices.Clone(s.General.Undo.Items)
	return &dup
}

// Clone returns a deep copy of the plugin
func (p *Plugin) Clone() *Plugin {
	if p == nil {
		return nil
	}
	dup := *p
	dup.Params = slices.Clone(p.Params)
	return &dup
}

// Clone returns a deep copy of the channel
func (c *Channel) Clone() *Channel {
	dup := *c
	dup.Plugin = c.Plugin.Clone()
	return &dup
}

func (c ChannelsState) clone() ChannelsState {
	dup := c
	dup.List = make([]*Channel, len(c.List))
	for i, ch := range c.List {
		dup.List[i] = ch.Clone()
	}
	return dup
}

func (p PatternsState) clone() PatternsState {
	dup := p
	dup.List = make([]*Pattern, len(p.List))
	for i, pat := range p.List {
		dup.List[i] = pat.Clone()
	}
	return dup
}

func (m MixerState) clone() MixerState {
	dup := MixerState{Tracks: make([]*MixerTrack, len(m.Tracks))}
	for i, t := range m.Tracks {
		tc := *t
		tc.Slots = make([]*Plugin, len(t.Slots))
		for j, p := range t.Slots {
			tc.Slots[j] = p.Clone()
		}
		tc.Sends = slices.Clone(t.Sends)
		dup.Tracks[i] = &tc
	}
	return dup
}
