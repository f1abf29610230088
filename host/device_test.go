package host

import (
	"bytes"
	"errors"
	"testing"

	"flmodel/channels"
	"flmodel/config"
	"flmodel/device"
	"flmodel/errs"
	"flmodel/state"
)

func TestMidiOutMsg(t *testing.T) {
	var sent []*device.Message
	store := state.NewStoreWithConfig(config.DefaultConfig())
	h := New(store, device.NewRouter(nil, func(msg *device.Message) { sent = append(sent, msg) }))
	h.live().Device.Port = 3

	mustNil(t, h.MidiOutMsg(0x7F3C90, -1, -1, -1))
	mustNil(t, h.MidiOutMsg(0xB, 2, 7, 100))
	if len(sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(sent))
	}
	if m := sent[0]; m.Status != 0x90 || m.Note() != 0x3C || m.Velocity() != 0x7F || m.Port != 3 {
		t.Fatalf("combined message = %v on port %d", m, m.Port)
	}
	if m := sent[1]; m.Status != 0xB2 || m.Control() != 7 || m.Value() != 100 {
		t.Fatalf("split message = %v", m)
	}

	if err := h.MidiOutMsg(0x40, -1, -1, -1); !errors.Is(err, errs.InvalidValue) {
		t.Fatalf("data byte as status error = %v, want invalid value", err)
	}

	h.live().Device.Assigned = false
	if err := h.MidiOutMsg(0x90, -1, -1, -1); !errors.Is(err, errs.DeviceUnassigned) {
		t.Fatalf("MidiOutMsg unassigned error = %v, want device unassigned", err)
	}
	if port, _ := h.GetPortNumber(); port != -1 {
		t.Fatalf("GetPortNumber() unassigned = %d, want -1", port)
	}
	if len(sent) != 2 {
		t.Fatalf("failed sends reached the device")
	}
}

func TestMidiOutSysex(t *testing.T) {
	var sent []*device.Message
	h := New(state.NewStoreWithConfig(config.DefaultConfig()), device.NewRouter(nil, func(msg *device.Message) { sent = append(sent, msg) }))

	raw := []byte{0xF0, 0x00, 0x20, 0x29, 0xF7}
	mustNil(t, h.MidiOutSysex(raw))
	raw[1] = 0x7F
	if len(sent) != 1 || !bytes.Equal(sent[0].Payload(), []byte{0x00, 0x20, 0x29}) {
		t.Fatalf("sent = %v", sent)
	}
	if err := h.MidiOutSysex([]byte{0x00, 0xF7}); !errors.Is(err, errs.InvalidValue) {
		t.Fatalf("unframed sysex error = %v, want invalid value", err)
	}
}

func TestSendMsgGeneric(t *testing.T) {
	var sent []*device.Message
	h := New(state.NewStoreWithConfig(config.DefaultConfig()), device.NewRouter(nil, func(msg *device.Message) { sent = append(sent, msg) }))

	next, err := h.SendMsgGeneric(0xF0002029011A, "Hi", "", 0)
	mustNil(t, err)
	if next != "Hi" {
		t.Fatalf("SendMsgGeneric() = %q, want Hi", next)
	}
	want := []byte{0xF0, 0x00, 0x20, 0x29, 0x01, 0x1A, 'H', 'i', 0xF7}
	if len(sent) != 1 || !bytes.Equal(sent[0].Sysex, want) {
		t.Fatalf("sent = % X, want % X", sent[0].Sysex, want)
	}

	if _, err := h.SendMsgGeneric(0xF0002029011A, "Hi", next, 0); err != nil {
		t.Fatalf("repeat: %v", err)
	}
	if len(sent) != 1 {
		t.Fatalf("unchanged text was sent again")
	}
}

func TestDispatch(t *testing.T) {
	h := newHost(t, nil)
	h.live().Device.DispatchTargets = []int{4, 9}

	var got []*device.Message
	h.Peers[9] = device.NewRouter(&device.Script{
		OnMidiIn: func(msg *device.Message) { got = append(got, msg) },
	}, nil)

	if n, _ := h.DispatchReceiverCount(); n != 2 {
		t.Fatalf("DispatchReceiverCount() = %d, want 2", n)
	}
	if port, _ := h.DispatchGetReceiverPortNumber(1); port != 9 {
		t.Fatalf("DispatchGetReceiverPortNumber(1) = %d, want 9", port)
	}

	mustNil(t, h.Dispatch(1, 0x7F3C90, nil))
	mustNil(t, h.Dispatch(1, 0xF0, []byte{0xF0, 0x7E, 0xF7}))
	mustNil(t, h.Dispatch(0, 0x90, nil))
	if len(got) != 2 {
		t.Fatalf("peer got %d messages, want 2", len(got))
	}
	if got[0].Note() != 0x3C || got[0].Port != 9 {
		t.Fatalf("dispatched message = %v", got[0])
	}
	if !got[1].IsSysEx() || !bytes.Equal(got[1].Payload(), []byte{0x7E}) {
		t.Fatalf("dispatched sysex = %v", got[1])
	}

	for _, idx := range []int{-1, 2} {
		if err := h.Dispatch(idx, 0x90, nil); !errors.Is(err, errs.Index) {
			t.Fatalf("Dispatch(%d) error = %v, want index error", idx, err)
		}
		if _, err := h.DispatchGetReceiverPortNumber(idx); !errors.Is(err, errs.Index) {
			t.Fatalf("DispatchGetReceiverPortNumber(%d) error = %v, want index error", idx, err)
		}
	}
}

func TestPlugins(t *testing.T) {
	h := newHost(t, nil)
	s := h.live()
	if _, err := channels.AddFlPlugin(s, "My Synth", "3x Osc", []string{"Cutoff", "Resonance"}); err != nil {
		t.Fatalf("AddFlPlugin: %v", err)
	}
	ref := ChannelPlugin(1)

	if ok, _ := h.IsValid(ref); !ok {
		t.Fatalf("IsValid(3x Osc) = false")
	}
	if name, _ := h.GetPluginName(ref, false); name != "3x Osc" {
		t.Fatalf("GetPluginName() = %q", name)
	}
	if name, _ := h.GetPluginName(ref, true); name != "My Synth" {
		t.Fatalf("GetPluginName(user) = %q", name)
	}
	if n, _ := h.GetParamCount(ref); n != 2 {
		t.Fatalf("GetParamCount() = %d, want 2", n)
	}
	if name, _ := h.GetParamName(ref, 1); name != "Resonance" {
		t.Fatalf("GetParamName(1) = %q", name)
	}
	mustNil(t, h.SetParamValue(ref, 0, 1.5))
	if v, _ := h.GetParamValue(ref, 0); v != 1 {
		t.Fatalf("GetParamValue(0) = %v, want 1", v)
	}
	mustNil(t, h.SetParamValue(ref, 1, 0.25))
	if str, _ := h.GetParamValueString(ref, 1); str != "25%" {
		t.Fatalf("GetParamValueString(1) = %q, want 25%%", str)
	}
	if _, err := h.GetParamName(ref, 2); !errors.Is(err, errs.Index) {
		t.Fatalf("GetParamName(2) error = %v, want index error", err)
	}
}

func TestInvalidPlugins(t *testing.T) {
	h := newHost(t, nil)
	refs := map[string]PluginRef{
		"sampler":    ChannelPlugin(0),
		"empty slot": MixerPlugin(1, 0),
	}
	for name, ref := range refs {
		t.Run(name, func(t *testing.T) {
			if ok, err := h.IsValid(ref); err != nil || ok {
				t.Fatalf("IsValid() = %v, %v, want false", ok, err)
			}
			if _, err := h.GetPluginName(ref, false); !errors.Is(err, errs.InvalidPlugin) {
				t.Fatalf("GetPluginName() error = %v, want invalid plugin", err)
			}
			if _, err := h.GetParamCount(ref); !errors.Is(err, errs.InvalidPlugin) {
				t.Fatalf("GetParamCount() error = %v, want invalid plugin", err)
			}
			if err := h.SetParamValue(ref, 0, 0.5); !errors.Is(err, errs.InvalidPlugin) {
				t.Fatalf("SetParamValue() error = %v, want invalid plugin", err)
			}
		})
	}

	if _, err := h.IsValid(MixerPlugin(1, state.MixerSlotCount)); !errors.Is(err, errs.Index) {
		t.Fatalf("IsValid(slot out of range) error = %v, want index error", err)
	}
	if _, err := h.IsValid(ChannelPlugin(3)); !errors.Is(err, errs.Index) {
		t.Fatalf("IsValid(channel out of range) error = %v, want index error", err)
	}
}

func TestTransport(t *testing.T) {
	h := newHost(t, nil)
	mustNil(t, h.Start())
	if p, _ := h.IsPlaying(); !p {
		t.Fatalf("Start did not start playback")
	}
	mustNil(t, h.Start())
	if p, _ := h.IsPlaying(); p {
		t.Fatalf("second Start did not pause")
	}

	if _, err := h.GlobalTransport(TransportPlay, 1); err != nil {
		t.Fatalf("GlobalTransport(play): %v", err)
	}
	mustNil(t, h.Stop())
	if p, _ := h.IsPlaying(); p {
		t.Fatalf("Stop left playback running")
	}

	mustNil(t, h.Record())
	if r, _ := h.IsRecording(); !r {
		t.Fatalf("Record did not arm recording")
	}
	mustNil(t, h.SetLoopMode())
	if mode, _ := h.GetLoopMode(); mode != 1 {
		t.Fatalf("GetLoopMode() = %d, want 1", mode)
	}

	mustNil(t, h.SetHintMsg("hello"))
	if msg, _ := h.GetHintMsg(); msg != "hello" {
		t.Fatalf("GetHintMsg() = %q", msg)
	}
}

func TestGeneralState(t *testing.T) {
	h := newHost(t, strict(config.Alias("20.8.4")))
	if v, _ := h.GetVersion(); v != 15 {
		t.Fatalf("GetVersion() = %d, want 15", v)
	}
	if ppq, err := h.GetRecPPQ(); err != nil || ppq != 96 {
		t.Fatalf("GetRecPPQ() = %d, %v, want 96", ppq, err)
	}
	if ppb, _ := h.GetRecPPB(); ppb != 96*4 {
		t.Fatalf("GetRecPPB() = %d, want 384", ppb)
	}
	h.live().General.Changed = true
	if flag, _ := h.GetChangedFlag(); flag != 1 {
		t.Fatalf("GetChangedFlag() = %d, want 1", flag)
	}
}
