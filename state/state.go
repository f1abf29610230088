package state

// State is the single source of truth for the emulated host
type State struct {
	Channels  ChannelsState  `json:"channels"`
	Patterns  PatternsState  `json:"patterns"`
	Mixer     MixerState     `json:"mixer"`
	Transport TransportState `json:"transport"`
	Device    DeviceState    `json:"device"`
	UI        UIState        `json:"ui"`
	General   GeneralState   `json:"general"`
}

// ChannelType identifies what kind of channel occupies a channel rack slot
type ChannelType int

const (
	ChannelSampler ChannelType = iota
	ChannelHybrid
	ChannelGenerator
	ChannelLayer
	ChannelAudioClip
	ChannelAutomationClip
)

func (t ChannelType) String() string {
	switch t {
	case ChannelSampler:
		return "sampler"
	case ChannelHybrid:
		return "hybrid"
	case ChannelGenerator:
		return "generator"
	case ChannelLayer:
		return "layer"
	case ChannelAudioClip:
		return "audio clip"
	case ChannelAutomationClip:
		return "automation clip"
	}
	return "unknown"
}

// Param is a single plugin parameter
type Param struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Plugin describes a plugin loaded into a channel or mixer slot.
// Invalid plugins (the built-in sampler, an empty mixer slot) can't have
// their properties accessed.
type Plugin struct {
	Valid    bool    `json:"valid"`
	PlugName string  `json:"plugName"`
	Name     string  `json:"name"`
	Params   []Param `json:"params,omitempty"`
}

// Channel is one slot on the channel rack
type Channel struct {
	Plugin   *Plugin     `json:"plugin,omitempty"`
	Name     string      `json:"name"`
	Type     ChannelType `json:"type"`
	Target   int         `json:"target"` // mixer track
	Group    string      `json:"group"`  // "" = unsorted
	Selected bool        `json:"selected"`
	Muted    bool        `json:"muted"`
	Color    int         `json:"color"`
	Volume   float64     `json:"volume"` // 0.0 - 1.0
	Pan      float64     `json:"pan"`    // -1.0 - 1.0
}

// ChannelsState holds the channel rack
type ChannelsState struct {
	List []*Channel `json:"list"`

	// Group filter the channel rack is showing; group indexes are relative to it
	SelectedGroup Group `json:"selectedGroup"`
}

// PatternsState holds every pattern slot
type PatternsState struct {
	List []*Pattern `json:"list"`

	Active  int  `json:"active"`  // 1-based slot
	ShowAll bool `json:"showAll"` // all patterns shown in pickers
}

// Send routes audio from one mixer track to another
type Send struct {
	To     int     `json:"to"`
	Amount float64 `json:"amount"`
}

// MixerTrack holds the state of a single insert
type MixerTrack struct {
	Name     string    `json:"name"`
	Color    int       `json:"color"`
	Selected bool      `json:"selected"`
	Slots    []*Plugin `json:"slots"`
	Volume   float64   `json:"volume"`
	Pan      float64   `json:"pan"`
	Sends    []Send    `json:"sends"`
	Muted    bool      `json:"muted"`
	Armed    bool      `json:"armed"`
}

// MixerState holds the mixer
type MixerState struct {
	Tracks []*MixerTrack `json:"tracks"`
}

// Position is a song position
type Position struct {
	Bar  int     `json:"bar"`
	Step int     `json:"step"`
	Tick int     `json:"tick"`
	Time float64 `json:"time"`
}

// Marker is a named song position
type Marker struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// TransportState holds playback state
type TransportState struct {
	Playing   bool     `json:"playing"`
	Recording bool     `json:"recording"`
	Looping   bool     `json:"looping"`
	Position  Position `json:"position"`
	Length    Position `json:"length"`
	Markers   []Marker `json:"markers"`
}

// DeviceState describes the MIDI device the script is attached to
type DeviceState struct {
	Assigned        bool   `json:"assigned"`
	Port            int    `json:"port"`
	Name            string `json:"name"`
	DispatchTargets []int  `json:"dispatchTargets"`
	MasterSync      bool   `json:"masterSync"`
}

// WindowIndex identifies a host window
type WindowIndex int

const (
	WindowMixer WindowIndex = iota
	WindowChannelRack
	WindowPlaylist
	WindowPianoRoll
	WindowBrowser
)

// ActivitySelection is what currently has focus
type ActivitySelection int

const (
	SelectWindow ActivitySelection = iota + 1
	SelectGenerator
	SelectEffect
)

// UIState holds focus information
type UIState struct {
	ActiveWindow    WindowIndex       `json:"activeWindow"`
	ActiveGenerator int               `json:"activeGenerator"`
	ActiveEffect    [2]int            `json:"activeEffect"` // mixer track, slot
	Selection       ActivitySelection `json:"selection"`
	HintMessage     string            `json:"hintMessage"`
}

// UndoItem is an entry in the undo history
type UndoItem struct {
	Name  string `json:"name"`
	Flags int    `json:"flags"`
}

// UndoState is the undo record. Items are most recent first.
//
// PosLen and CountLen are the history lengths reported by the "pos" and
// "count" getters. The host trims them independently, so they can differ.
type UndoState struct {
	Items    []UndoItem `json:"items"`
	Position int        `json:"position"` // 0 = most recent
	PosLen   int        `json:"posLen"`
	CountLen int        `json:"countLen"`
}

// BusyState models the times the host refuses most operations
type BusyState int

const (
	Idle BusyState = iota
	Exporting
	Loading
	DialogOpen
)

func (b BusyState) String() string {
	switch b {
	case Idle:
		return "idle"
	case Exporting:
		return "exporting"
	case Loading:
		return "loading"
	case DialogOpen:
		return "dialog open"
	}
	return "unknown"
}

// GeneralState holds version and project-wide info
type GeneralState struct {
	APIVersion int       `json:"apiVersion"`
	Undo       UndoState `json:"undo"`
	PPQN       int       `json:"ppqn"`
	Beats      int       `json:"beats"`
	Metronome  bool      `json:"metronome"`
	PreCount   bool      `json:"preCount"`
	Changed    bool      `json:"changed"`
	TickNum    int       `json:"tickNum"`
	Busy       BusyState `json:"busy"`
}
