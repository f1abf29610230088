package device

import (
	"reflect"
	"testing"
)

// recorder builds a script whose inbound callbacks log their names. A
// callback listed in handle marks the message handled.
func recorder(calls *[]string, handle ...string) *Script {
	stop := map[string]bool{}
	for _, h := range handle {
		stop[h] = true
	}
	cb := func(name string) func(*Message) {
		return func(msg *Message) {
			*calls = append(*calls, name)
			if stop[name] {
				msg.Handled = true
			}
		}
	}
	return &Script{
		OnMidiIn:          cb("OnMidiIn"),
		OnMidiMsg:         cb("OnMidiMsg"),
		OnSysEx:           cb("OnSysEx"),
		OnNoteOn:          cb("OnNoteOn"),
		OnNoteOff:         cb("OnNoteOff"),
		OnControlChange:   cb("OnControlChange"),
		OnProgramChange:   cb("OnProgramChange"),
		OnPitchBend:       cb("OnPitchBend"),
		OnKeyPressure:     cb("OnKeyPressure"),
		OnChannelPressure: cb("OnChannelPressure"),
	}
}

func TestDispatchOrder(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
		want []string
	}{
		{"note on", NewNoteOn(0, 60, 100), []string{"OnMidiIn", "OnMidiMsg", "OnNoteOn"}},
		{"note off", NewNoteOff(3, 60, 0), []string{"OnMidiIn", "OnMidiMsg", "OnNoteOff"}},
		{"control change", NewControlChange(0, 7, 1), []string{"OnMidiIn", "OnMidiMsg", "OnControlChange"}},
		{"program change", NewProgramChange(0, 5), []string{"OnMidiIn", "OnMidiMsg", "OnProgramChange"}},
		{"pitch bend", NewPitchBend(0, 0x2000), []string{"OnMidiIn", "OnMidiMsg", "OnPitchBend"}},
		{"key pressure", NewKeyPressure(0, 60, 10), []string{"OnMidiIn", "OnMidiMsg", "OnKeyPressure"}},
		{"channel pressure", NewChannelPressure(0, 10), []string{"OnMidiIn", "OnMidiMsg", "OnChannelPressure"}},
		{"sysex", NewSysEx([]byte{0x00, 0x20, 0x29}), []string{"OnMidiIn", "OnSysEx"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			r := NewRouter(recorder(&calls), nil)
			r.SendEvent(tt.msg)
			if !reflect.DeepEqual(calls, tt.want) {
				t.Fatalf("calls = %v, want %v", calls, tt.want)
			}
		})
	}
}

func TestDispatchStopsWhenHandled(t *testing.T) {
	tests := []struct {
		handler string
		want    []string
	}{
		{"OnMidiIn", []string{"OnMidiIn"}},
		{"OnMidiMsg", []string{"OnMidiIn", "OnMidiMsg"}},
		{"OnNoteOn", []string{"OnMidiIn", "OnMidiMsg", "OnNoteOn"}},
	}
	for _, tt := range tests {
		t.Run(tt.handler, func(t *testing.T) {
			var calls []string
			r := NewRouter(recorder(&calls, tt.handler), nil)
			r.SendEvent(NewNoteOn(0, 60, 100))
			if !reflect.DeepEqual(calls, tt.want) {
				t.Fatalf("calls = %v, want %v", calls, tt.want)
			}
		})
	}
}

func TestMissingCallbacksAreSkipped(t *testing.T) {
	var calls []string
	r := NewRouter(&Script{
		OnNoteOn: func(msg *Message) { calls = append(calls, "OnNoteOn") },
	}, nil)

	r.SendEvent(NewNoteOn(0, 60, 100))
	r.SendEvent(NewControlChange(0, 1, 1))
	r.Init()
	r.Idle()
	r.SendTempMsg("hello", 500)

	if !reflect.DeepEqual(calls, []string{"OnNoteOn"}) {
		t.Fatalf("calls = %v, want [OnNoteOn]", calls)
	}
}

func TestNilScript(t *testing.T) {
	r := NewRouter(nil, nil)
	r.Init()
	r.SendEvent(NewNoteOn(0, 1, 1))
	r.Emit(NewNoteOn(0, 1, 1))
	r.DeInit()
}

func TestReentrantEventsAreQueued(t *testing.T) {
	var order []uint8
	var r *Router
	depth := 0
	r = NewRouter(&Script{
		OnNoteOn: func(msg *Message) {
			depth++
			defer func() { depth-- }()
			if depth > 1 {
				t.Fatalf("SendEvent recursed into the script")
			}
			order = append(order, msg.Note())
			if msg.Note() == 1 {
				r.SendEvent(NewNoteOn(0, 2, 1))
				r.SendEvent(NewNoteOn(0, 3, 1))
				if r.Pending() != 3 {
					t.Fatalf("Pending() = %d, want 3", r.Pending())
				}
			}
			msg.Handled = true
		},
	}, nil)

	r.SendEvent(NewNoteOn(0, 1, 1))

	if !reflect.DeepEqual(order, []uint8{1, 2, 3}) {
		t.Fatalf("order = %v, want [1 2 3]", order)
	}
	if r.Pending() != 0 {
		t.Fatalf("Pending() = %d after drain, want 0", r.Pending())
	}
}

func TestPanicDoesNotWedgeQueue(t *testing.T) {
	var notes []uint8
	var r *Router
	r = NewRouter(&Script{
		OnNoteOn: func(msg *Message) {
			notes = append(notes, msg.Note())
			if msg.Note() == 1 {
				r.SendEvent(NewNoteOn(0, 2, 1))
				panic("script error")
			}
		},
	}, nil)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("handler panic was swallowed")
			}
		}()
		r.SendEvent(NewNoteOn(0, 1, 1))
	}()
	if r.Pending() != 0 {
		t.Fatalf("Pending() = %d after panic, want 0", r.Pending())
	}

	r.SendEvent(NewNoteOn(0, 5, 1))
	if !reflect.DeepEqual(notes, []uint8{1, 5}) {
		t.Fatalf("notes = %v, want [1 5]", notes)
	}
}

func TestEcho(t *testing.T) {
	var sent []*Message
	var r *Router
	r = NewRouter(&Script{
		OnControlChange: func(msg *Message) {
			r.Emit(NewControlChange(msg.Channel(), msg.Control(), 127))
			msg.Handled = true
		},
	}, func(msg *Message) { sent = append(sent, msg) })

	r.SendEvent(NewControlChange(2, 10, 5))

	if len(sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sent))
	}
	if sent[0].Channel() != 2 || sent[0].Control() != 10 || sent[0].Value() != 127 {
		t.Fatalf("echo = %v", sent[0])
	}
}

func TestPassThroughs(t *testing.T) {
	var got []any
	rec := func(v any) { got = append(got, v) }
	r := NewRouter(&Script{
		OnInit:                func() { rec("init") },
		OnDeInit:              func() { rec("deinit") },
		OnMidiOutMsg:          func(msg *Message) { rec(msg.Status) },
		OnIdle:                func() { rec("idle") },
		OnProjectLoad:         func(status int) { rec(status) },
		OnRefresh:             func(flags int) { rec(flags) },
		OnDoFullRefresh:       func() { rec("full") },
		OnUpdateBeatIndicator: func(v int) { rec(v) },
		OnDisplayZone:         func() { rec("zone") },
		OnUpdateLiveMode:      func(last int) { rec(last) },
		OnDirtyMixerTrack:     func(i int) { rec(i) },
		OnDirtyChannel:        func(i int) { rec(i) },
		OnFirstConnect:        func() { rec("connect") },
		OnUpdateMeters:        func() { rec("meters") },
		OnWaitingForInput:     func() { rec("waiting") },
		OnSendTempMsg:         func(m string, d int) { rec(m); rec(d) },
	}, nil)

	r.Init()
	r.MidiOutMsg(NewNoteOn(0, 1, 1))
	r.Idle()
	r.ProjectLoad(100)
	r.Refresh(7)
	r.DoFullRefresh()
	r.UpdateBeatIndicator(2)
	r.DisplayZone()
	r.UpdateLiveMode(4)
	r.DirtyMixerTrack(5)
	r.DirtyChannel(6)
	r.FirstConnect()
	r.UpdateMeters()
	r.WaitingForInput()
	r.SendTempMsg("hi", 300)
	r.DeInit()

	want := []any{
		"init", uint8(0x90), "idle", 100, 7, "full", 2, "zone", 4, 5, 6,
		"connect", "meters", "waiting", "hi", 300, "deinit",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
}
