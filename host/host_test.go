package host

import (
	"errors"
	"testing"

	"flmodel/channels"
	"flmodel/config"
	"flmodel/errs"
	"flmodel/state"
)

func newHost(t *testing.T, cfg *config.Config) *Host {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return New(state.NewStoreWithConfig(cfg), nil)
}

func strict(version config.APIVersion) *config.Config {
	return &config.Config{
		DisallowDeprecatedFunctions: true,
		DisallowFutureFunctions:     true,
		DisallowKeyEchoes:           true,
		TargetAPIVersion:            version,
	}
}

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestChannelScenario(t *testing.T) {
	h := newHost(t, nil)
	s := h.live()
	for _, name := range []string{"B", "C"} {
		if _, err := channels.AddSampler(s, name); err != nil {
			t.Fatalf("AddSampler(%q): %v", name, err)
		}
	}

	if n, err := h.ChannelCount(false); err != nil || n != 3 {
		t.Fatalf("ChannelCount() = %d, %v, want 3", n, err)
	}
	if idx, err := h.GetChannelIndex(1); err != nil || idx != 1 {
		t.Fatalf("GetChannelIndex(1) = %d, %v, want 1", idx, err)
	}
	mustNil(t, channels.Remove(s, 0))
	if n, err := h.ChannelCount(false); err != nil || n != 2 {
		t.Fatalf("ChannelCount() = %d, %v, want 2", n, err)
	}
	if name, err := h.GetChannelName(0); err != nil || name != "B" {
		t.Fatalf("GetChannelName(0) = %q, %v, want B", name, err)
	}
}

func TestUndoScenario(t *testing.T) {
	h := newHost(t, nil)
	mustNil(t, h.Store.Reset())

	for i := 0; i < 3; i++ {
		mustNil(t, h.SaveUndo("x", 0))
	}
	if pos, _ := h.GetUndoHistoryPos(); pos != 4 {
		t.Fatalf("GetUndoHistoryPos() = %d, want 4", pos)
	}
	for i := 0; i < 3; i++ {
		mustNil(t, h.UndoUp())
	}
	if last, _ := h.GetUndoHistoryLast(); last != 3 {
		t.Fatalf("GetUndoHistoryLast() = %d, want 3", last)
	}
	mustNil(t, h.Undo())
	if last, _ := h.GetUndoHistoryLast(); last != 2 {
		t.Fatalf("GetUndoHistoryLast() after undo = %d, want 2", last)
	}
	if hint, _ := h.GetUndoLevelHint(); hint != "3/4" {
		t.Fatalf("GetUndoLevelHint() = %q, want 3/4", hint)
	}
}

func TestUndoClamp(t *testing.T) {
	h := newHost(t, nil)
	mustNil(t, h.SaveUndo("a", 0))
	mustNil(t, h.SaveUndo("b", 0))
	mustNil(t, h.UndoUpDown(-100))
	if last, _ := h.GetUndoHistoryLast(); last != 2 {
		t.Fatalf("GetUndoHistoryLast() = %d, want 2", last)
	}
	mustNil(t, h.UndoUpDown(100))
	if last, _ := h.GetUndoHistoryLast(); last != 0 {
		t.Fatalf("GetUndoHistoryLast() = %d, want 0", last)
	}
}

func TestChannelIndexErrors(t *testing.T) {
	h := newHost(t, nil)
	for _, idx := range []int{1, -1} {
		if _, err := h.GetChannelName(idx); !errors.Is(err, errs.Index) {
			t.Fatalf("GetChannelName(%d) error = %v, want index error", idx, err)
		}
		if err := h.SetChannelName(idx, "x"); !errors.Is(err, errs.Index) {
			t.Fatalf("SetChannelName(%d) error = %v, want index error", idx, err)
		}
	}
	if name, _ := h.GetChannelName(0); name != "Sampler" {
		t.Fatalf("failed writes changed the channel name to %q", name)
	}
}

func TestGroupIndexes(t *testing.T) {
	h := newHost(t, nil)
	s := h.live()
	for _, name := range []string{"B", "C", "D"} {
		var opts []channels.Option
		if name != "C" {
			opts = append(opts, channels.InGroupNamed("Drums"))
		}
		if _, err := channels.AddSampler(s, name, opts...); err != nil {
			t.Fatalf("AddSampler: %v", err)
		}
	}
	s.Channels.SelectedGroup = state.Named("Drums")

	if n, _ := h.ChannelCount(false); n != 2 {
		t.Fatalf("ChannelCount(false) = %d, want 2", n)
	}
	if n, _ := h.ChannelCount(true); n != 4 {
		t.Fatalf("ChannelCount(true) = %d, want 4", n)
	}
	if idx, _ := h.GetChannelIndex(1); idx != 3 {
		t.Fatalf("GetChannelIndex(1) = %d, want 3", idx)
	}
	if name, _ := h.GetChannelName(1); name != "D" {
		t.Fatalf("GetChannelName(1) = %q, want D", name)
	}
	if _, err := h.GetChannelName(2); !errors.Is(err, errs.Index) {
		t.Fatalf("GetChannelName(2) error = %v, want index error", err)
	}
}

func TestVolumeAndPan(t *testing.T) {
	h := newHost(t, nil)

	tests := []struct {
		set    float64
		volume float64
		dB     float64
	}{
		{0.78125, 0.78125, -5.2},
		{1, 1, 0},
		{2, 1, 0},
	}
	for _, tt := range tests {
		mustNil(t, h.SetChannelVolume(0, tt.set))
		if v, _ := h.GetChannelVolume(0, false); v != tt.volume {
			t.Fatalf("volume after set %v = %v, want %v", tt.set, v, tt.volume)
		}
		if v, _ := h.GetChannelVolume(0, true); v != tt.dB {
			t.Fatalf("dB after set %v = %v, want %v", tt.set, v, tt.dB)
		}
	}

	mustNil(t, h.SetChannelVolume(0, -1))
	if v, _ := h.GetChannelVolume(0, true); v > -1e300 {
		t.Fatalf("dB of a silent channel = %v, want -Inf", v)
	}

	mustNil(t, h.SetChannelPan(0, -3))
	if p, _ := h.GetChannelPan(0); p != -1 {
		t.Fatalf("GetChannelPan() = %v, want -1", p)
	}
	mustNil(t, h.SetChannelPan(0, 0.25))
	if p, _ := h.GetChannelPan(0); p != 0.25 {
		t.Fatalf("GetChannelPan() = %v, want 0.25", p)
	}
}

func TestMuteAndSolo(t *testing.T) {
	h := newHost(t, nil)
	for _, name := range []string{"B", "C"} {
		if _, err := channels.AddSampler(h.live(), name); err != nil {
			t.Fatalf("AddSampler: %v", err)
		}
	}

	mustNil(t, h.MuteChannel(1, -1))
	if m, _ := h.IsChannelMuted(1); !m {
		t.Fatalf("toggle did not mute channel 1")
	}
	mustNil(t, h.MuteChannel(1, -1))
	if m, _ := h.IsChannelMuted(1); m {
		t.Fatalf("second toggle did not unmute channel 1")
	}

	mustNil(t, h.SoloChannel(2))
	for i, want := range []bool{false, false, true} {
		if solo, _ := h.IsChannelSolo(i); solo != want {
			t.Fatalf("IsChannelSolo(%d) = %v, want %v", i, solo, want)
		}
		if m, _ := h.IsChannelMuted(i); m == want {
			t.Fatalf("IsChannelMuted(%d) = %v after solo", i, m)
		}
	}
}

func TestChannelSelection(t *testing.T) {
	h := newHost(t, nil)
	for _, name := range []string{"B", "C", "D"} {
		if _, err := channels.AddSampler(h.live(), name); err != nil {
			t.Fatalf("AddSampler: %v", err)
		}
	}
	mustNil(t, h.DeselectAllChannels())
	if n, _ := h.ChannelNumber(true, 0); n != -1 {
		t.Fatalf("ChannelNumber(true, 0) with nothing selected = %d, want -1", n)
	}
	if n, _ := h.ChannelNumber(false, 0); n != 0 {
		t.Fatalf("ChannelNumber(false, 0) with nothing selected = %d, want 0", n)
	}

	mustNil(t, h.SelectChannel(1, 1))
	mustNil(t, h.SelectChannel(3, 1))
	if n, _ := h.ChannelNumber(true, 1); n != 3 {
		t.Fatalf("ChannelNumber(true, 1) = %d, want 3", n)
	}

	mustNil(t, h.SelectOneChannel(2))
	for i, want := range []bool{false, false, true, false} {
		if sel, _ := h.IsChannelSelected(i); sel != want {
			t.Fatalf("IsChannelSelected(%d) = %v, want %v", i, sel, want)
		}
	}
	if n, _ := h.SelectedChannel(false, 0, false); n != 2 {
		t.Fatalf("SelectedChannel() = %d, want 2", n)
	}

	mustNil(t, h.SelectAllChannels())
	if n, _ := h.ChannelNumber(true, 3); n != 3 {
		t.Fatalf("ChannelNumber(true, 3) after select all = %d, want 3", n)
	}
}

func TestTargetFxTrack(t *testing.T) {
	h := newHost(t, nil)
	mustNil(t, h.SetTargetFxTrack(0, 5))
	if track, _ := h.GetTargetFxTrack(0); track != 5 {
		t.Fatalf("GetTargetFxTrack() = %d, want 5", track)
	}
	if err := h.SetTargetFxTrack(0, state.MixerTrackCount); !errors.Is(err, errs.Index) {
		t.Fatalf("SetTargetFxTrack(out of range) error = %v, want index error", err)
	}
	if track, _ := h.GetTargetFxTrack(0); track != 5 {
		t.Fatalf("failed write changed the target to %d", track)
	}
}

func TestGridBitsFollowActivePattern(t *testing.T) {
	h := newHost(t, nil)
	mustNil(t, h.SetGridBit(0, 3, true))
	if on, _ := h.GetGridBit(0, 3); !on {
		t.Fatalf("GetGridBit(0, 3) = false after set")
	}

	mustNil(t, h.JumpToPattern(2))
	if on, _ := h.GetGridBit(0, 3); on {
		t.Fatalf("grid bit leaked into pattern 2")
	}
	mustNil(t, h.JumpToPattern(1))
	if on, _ := h.GetGridBit(0, 3); !on {
		t.Fatalf("grid bit lost from pattern 1")
	}

	if err := h.SetGridBit(0, -1, true); !errors.Is(err, errs.Index) {
		t.Fatalf("SetGridBit(step -1) error = %v, want index error", err)
	}
}

func TestExportMakesUnsafeCallsFail(t *testing.T) {
	h := newHost(t, nil)
	done := h.ExportProject()

	if err := h.SetChannelName(0, "x"); !errors.Is(err, errs.OperationUnsafe) {
		t.Fatalf("SetChannelName while exporting error = %v, want unsafe", err)
	}
	if err := h.SaveUndo("x", 0); !errors.Is(err, errs.OperationUnsafe) {
		t.Fatalf("SaveUndo while exporting error = %v, want unsafe", err)
	}
	if _, err := h.GetChannelName(0); err != nil {
		t.Fatalf("GetChannelName while exporting: %v", err)
	}

	done()
	mustNil(t, h.SetChannelName(0, "x"))
}
