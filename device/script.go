package device

// Script is the set of callbacks a controller script provides. Every field
// is optional; a nil callback is skipped.
type Script struct {
	OnInit   func()
	OnDeInit func()

	// Inbound MIDI, offered in this order until one sets Handled
	OnMidiIn          func(msg *Message)
	OnMidiMsg         func(msg *Message)
	OnSysEx           func(msg *Message)
	OnNoteOn          func(msg *Message)
	OnNoteOff         func(msg *Message)
	OnControlChange   func(msg *Message)
	OnProgramChange   func(msg *Message)
	OnPitchBend       func(msg *Message)
	OnKeyPressure     func(msg *Message)
	OnChannelPressure func(msg *Message)

	OnMidiOutMsg          func(msg *Message)
	OnIdle                func()
	OnProjectLoad         func(status int)
	OnRefresh             func(flags int)
	OnDoFullRefresh       func()
	OnUpdateBeatIndicator func(value int)
	OnDisplayZone         func()
	OnUpdateLiveMode      func(lastTrack int)
	OnDirtyMixerTrack     func(index int)
	OnDirtyChannel        func(index int)
	OnFirstConnect        func()
	OnUpdateMeters        func()
	OnWaitingForInput     func()
	OnSendTempMsg         func(message string, duration int)
}

type route struct {
	name    string
	matches func(msg *Message) bool
	handler func(s *Script) func(msg *Message)
}

func kindIs(kind uint8) func(*Message) bool {
	return func(msg *Message) bool { return msg.Status>>4 == kind>>4 }
}

// routes is the host's dispatch order for inbound messages
var routes = []route{
	{"OnMidiIn", func(*Message) bool { return true }, func(s *Script) func(*Message) { return s.OnMidiIn }},
	{"OnMidiMsg", func(msg *Message) bool { return msg.Status != StatusSysEx }, func(s *Script) func(*Message) { return s.OnMidiMsg }},
	{"OnSysEx", func(msg *Message) bool { return msg.Status == StatusSysEx }, func(s *Script) func(*Message) { return s.OnSysEx }},
	{"OnNoteOn", kindIs(StatusNoteOn), func(s *Script) func(*Message) { return s.OnNoteOn }},
	{"OnNoteOff", kindIs(StatusNoteOff), func(s *Script) func(*Message) { return s.OnNoteOff }},
	{"OnControlChange", kindIs(StatusControlChange), func(s *Script) func(*Message) { return s.OnControlChange }},
	{"OnProgramChange", kindIs(StatusProgramChange), func(s *Script) func(*Message) { return s.OnProgramChange }},
	{"OnPitchBend", kindIs(StatusPitchBend), func(s *Script) func(*Message) { return s.OnPitchBend }},
	{"OnKeyPressure", kindIs(StatusKeyPressure), func(s *Script) func(*Message) { return s.OnKeyPressure }},
	{"OnChannelPressure", kindIs(StatusChannelPressure), func(s *Script) func(*Message) { return s.OnChannelPressure }},
}
