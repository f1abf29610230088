package state

import (
	"fmt"

	"flmodel/config"
)

const (
	DefaultChannelColor  = 0x5C656A
	DefaultChannelVolume = 0.78125
	DefaultMixerColor    = 0x636C71

	MixerTrackCount = 127 // master + 126 inserts
	MixerSlotCount  = 10
)

// NewState creates a new state with defaults. The API version comes from
// the configured target version.
func NewState(cfg *config.Config) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &State{
		Channels:  NewChannelsState(),
		Patterns:  NewPatternsState(1),
		Mixer:     NewMixerState(),
		Transport: TransportState{Markers: []Marker{}},
		Device: DeviceState{
			Assigned:        true,
			Port:            0,
			Name:            "Device",
			DispatchTargets: []int{},
		},
		UI: UIState{
			ActiveWindow: WindowMixer,
			Selection:    SelectWindow,
		},
		General: GeneralState{
			APIVersion: cfg.TargetVersion(),
			Undo:       NewUndoState(),
			PPQN:       96,
			Beats:      4,
		},
	}
}

// NewChannelsState creates a channel rack holding the default sampler
func NewChannelsState() ChannelsState {
	return ChannelsState{
		List: []*Channel{{
			Plugin:   nil,
			Name:     "Sampler",
			Type:     ChannelSampler,
			Selected: true,
			Color:    DefaultChannelColor,
			Volume:   DefaultChannelVolume,
		}},
		SelectedGroup: AllGroups(),
	}
}

// NewPatternsState creates the full pattern address space, each pattern
// sized for numChannels. Entry k holds slot k+1, except the top entry,
// which is reserved for slot 0.
func NewPatternsState(numChannels int) PatternsState {
	list := make([]*Pattern, PatternCount)
	for i := range list {
		list[i] = NewPattern(numChannels, i+1)
	}
	list[len(list)-1].Num = 0
	return PatternsState{
		List:    list,
		Active:  1,
		ShowAll: true,
	}
}

// NewMixerState creates the master track and every insert
func NewMixerState() MixerState {
	tracks := make([]*MixerTrack, MixerTrackCount)
	for i := range tracks {
		t := &MixerTrack{
			Name:   fmt.Sprintf("Insert %d", i),
			Color:  DefaultMixerColor,
			Slots:  make([]*Plugin, MixerSlotCount),
			Volume: 0.8,
			Sends:  []Send{{To: 0, Amount: 1.0}},
		}
		if i == 0 {
			t.Name = "Master"
			t.Selected = true
			t.Sends = []Send{}
		}
		tracks[i] = t
	}
	return MixerState{Tracks: tracks}
}

// NewUndoState creates a history holding only the reset marker
func NewUndoState() UndoState {
	return UndoState{
		Items:    []UndoItem{{Name: "Last reset", Flags: 0}},
		Position: 0,
		CountLen: 1,
		PosLen:   1,
	}
}
