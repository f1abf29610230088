package channels

import (
	"fmt"

	"flmodel/debug"
	"flmodel/errs"
	"flmodel/state"
)

const (
	// VSTParamCount is the parameter count the host reports for any VST
	VSTParamCount = 4240

	// VSTPseudoParamStart is the first parameter the host maps to incoming
	// MIDI rather than to the plugin itself
	VSTPseudoParamStart = 4096
)

// Spec describes a channel to insert with Add
type Spec struct {
	Plugin *state.Plugin
	Name   string
	Type   state.ChannelType
	Index  int // -1 appends
	Target int
	Group  string
	Color  int
	Volume float64
	Pan    float64
}

// Option adjusts a Spec before the channel is inserted
type Option func(*Spec)

// At inserts the channel at a global index instead of appending it
func At(index int) Option {
	return func(s *Spec) { s.Index = index }
}

// InGroupNamed places the channel in a group
func InGroupNamed(group string) Option {
	return func(s *Spec) { s.Group = group }
}

// Targeting routes the channel to a mixer track
func Targeting(track int) Option {
	return func(s *Spec) { s.Target = track }
}

// WithColor sets the channel color
func WithColor(color int) Option {
	return func(s *Spec) { s.Color = color }
}

// WithVolume sets the channel volume
func WithVolume(volume float64) Option {
	return func(s *Spec) { s.Volume = volume }
}

// WithPan sets the channel pan
func WithPan(pan float64) Option {
	return func(s *Spec) { s.Pan = pan }
}

// NewSpec returns a spec with the host's defaults for a new channel
func NewSpec(name string, typ state.ChannelType, plugin *state.Plugin, opts ...Option) Spec {
	spec := Spec{
		Plugin: plugin,
		Name:   name,
		Type:   typ,
		Index:  -1,
		Color:  state.DefaultChannelColor,
		Volume: state.DefaultChannelVolume,
	}
	for _, opt := range opts {
		opt(&spec)
	}
	return spec
}

// Add inserts a channel and shifts every pattern's grid bits to match.
// It returns the new channel's global index.
func Add(s *state.State, spec Spec) (int, error) {
	index := spec.Index
	if index == -1 {
		index = len(s.Channels.List)
	}
	if index < 0 || index > len(s.Channels.List) {
		return 0, errs.IndexError("channel", index)
	}

	c := &state.Channel{
		Plugin: spec.Plugin,
		Name:   spec.Name,
		Type:   spec.Type,
		Target: spec.Target,
		Group:  spec.Group,
		Color:  spec.Color,
		Volume: spec.Volume,
		Pan:    spec.Pan,
	}
	list := s.Channels.List
	list = append(list, nil)
	copy(list[index+1:], list[index:])
	list[index] = c
	s.Channels.List = list

	for _, p := range s.Patterns.List {
		p.NotifyChannelCreate(index)
	}
	debug.Log("channels", "added %q at %d", spec.Name, index)
	return index, nil
}

// AddSampler adds a sampler channel
func AddSampler(s *state.State, name string, opts ...Option) (int, error) {
	return Add(s, NewSpec(name, state.ChannelSampler, nil, opts...))
}

// AddFlPlugin adds a generator channel hosting a native plugin. Every
// parameter starts at zero.
func AddFlPlugin(s *state.State, name, plugName string, params []string, opts ...Option) (int, error) {
	plugin := &state.Plugin{
		Valid:    true,
		PlugName: plugName,
		Name:     name,
		Params:   make([]state.Param, len(params)),
	}
	for i, p := range params {
		plugin.Params[i].Name = p
	}
	return Add(s, NewSpec(name, state.ChannelGenerator, plugin, opts...))
}

// AddVstPlugin adds a generator channel hosting a VST. The plugin always
// exposes VSTParamCount parameters: the named ones first, then unnamed
// padding, then the host's MIDI pseudo-parameters from VSTPseudoParamStart.
func AddVstPlugin(s *state.State, name, plugName string, params []string, opts ...Option) (int, error) {
	if len(params) > VSTPseudoParamStart {
		return 0, errs.Newf(errs.CodeInvalidValue, "a VST can't have more than %d parameters", VSTPseudoParamStart)
	}
	plugin := &state.Plugin{
		Valid:    true,
		PlugName: plugName,
		Name:     name,
		Params:   make([]state.Param, VSTParamCount),
	}
	copyNames(plugin.Params, params)
	for i := VSTPseudoParamStart; i < VSTParamCount; i++ {
		plugin.Params[i].Name = pseudoParamName(i)
	}
	return Add(s, NewSpec(name, state.ChannelGenerator, plugin, opts...))
}

func copyNames(dst []state.Param, names []string) {
	for i, n := range names {
		dst[i].Name = n
	}
}

// pseudoParamName names the parameters the host maps to MIDI CCs,
// channel aftertouch and pitch bend
func pseudoParamName(i int) string {
	n := i - VSTPseudoParamStart
	switch {
	case n < 128:
		return fmt.Sprintf("MIDI CC #%d", n)
	case n == 128:
		return "MIDI channel aftertouch"
	case n == 129:
		return "MIDI pitch bend"
	}
	return ""
}

// Remove deletes a channel and drops its column from every pattern
func Remove(s *state.State, idx int) error {
	if err := CheckGlobalIndex(s, idx); err != nil {
		return err
	}
	name := s.Channels.List[idx].Name
	s.Channels.List = append(s.Channels.List[:idx], s.Channels.List[idx+1:]...)
	for _, p := range s.Patterns.List {
		p.NotifyChannelDestroy(idx)
	}
	debug.Log("channels", "removed %q from %d", name, idx)
	return nil
}

// Swap exchanges two channels along with their grid bits
func Swap(s *state.State, a, b int) error {
	if err := CheckGlobalIndex(s, a); err != nil {
		return err
	}
	if err := CheckGlobalIndex(s, b); err != nil {
		return err
	}
	if a == b {
		return nil
	}
	list := s.Channels.List
	list[a], list[b] = list[b], list[a]
	for _, p := range s.Patterns.List {
		p.NotifyChannelSwapped(a, b)
	}
	return nil
}

// ResetChannels restores the default channel rack. Pattern data is left
// alone.
func ResetChannels(s *state.State) {
	s.Channels = state.NewChannelsState()
}
