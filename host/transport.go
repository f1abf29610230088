package host

import (
	"flmodel/debug"
	"flmodel/state"
)

// globalTransport commands handled by the emulator
const (
	TransportPlay   = 10
	TransportStop   = 11
	TransportRecord = 12
	TransportLoop   = 15
)

// Start toggles playback
func (h *Host) Start() error {
	if err := h.Guard.Check(opStart); err != nil {
		return err
	}
	t := &h.live().Transport
	t.Playing = !t.Playing
	return nil
}

func (h *Host) Stop() error {
	if err := h.Guard.Check(opStop); err != nil {
		return err
	}
	h.live().Transport.Playing = false
	return nil
}

// Record toggles recording
func (h *Host) Record() error {
	if err := h.Guard.Check(opRecord); err != nil {
		return err
	}
	t := &h.live().Transport
	t.Recording = !t.Recording
	return nil
}

func (h *Host) IsPlaying() (bool, error) {
	if err := h.Guard.Check(opIsPlaying); err != nil {
		return false, err
	}
	return h.live().Transport.Playing, nil
}

func (h *Host) IsRecording() (bool, error) {
	if err := h.Guard.Check(opIsRecording); err != nil {
		return false, err
	}
	return h.live().Transport.Recording, nil
}

// GetLoopMode returns 0 for pattern mode and 1 for song mode
func (h *Host) GetLoopMode() (int, error) {
	if err := h.Guard.Check(opGetLoopMode); err != nil {
		return 0, err
	}
	if h.live().Transport.Looping {
		return 1, nil
	}
	return 0, nil
}

// SetLoopMode toggles between pattern and song mode
func (h *Host) SetLoopMode() error {
	if err := h.Guard.Check(opSetLoopMode); err != nil {
		return err
	}
	t := &h.live().Transport
	t.Looping = !t.Looping
	return nil
}

// isKeyEchoCommand reports whether the host delivers a globalTransport
// command as a keystroke
func isKeyEchoCommand(cmd int) bool {
	switch {
	case cmd >= 40 && cmd <= 43,
		cmd >= 50 && cmd <= 54,
		cmd >= 60 && cmd <= 71,
		cmd >= 80 && cmd <= 83:
		return true
	}
	return false
}

// GlobalTransport runs a transport command by number. Play, stop, record
// and loop change the transport; other commands are accepted and ignored.
func (h *Host) GlobalTransport(cmd, value int) (int, error) {
	op := opGlobalTransport
	op.KeyEcho = isKeyEchoCommand(cmd)
	if err := h.Guard.Check(op); err != nil {
		return 0, err
	}
	t := &h.live().Transport
	switch cmd {
	case TransportPlay:
		t.Playing = !t.Playing
	case TransportStop:
		t.Playing = false
	case TransportRecord:
		t.Recording = !t.Recording
	case TransportLoop:
		t.Looping = !t.Looping
	default:
		debug.Log("host", "globalTransport %d (%d) ignored", cmd, value)
	}
	return 0, nil
}

// key runs a ui function that only sends a keystroke to the host
func (h *Host) key(name string) error {
	if err := h.Guard.Check(keyOp(name)); err != nil {
		return err
	}
	debug.Log("host", "key %s", name)
	return nil
}

func (h *Host) Cut() error    { return h.key("cut") }
func (h *Host) Copy() error   { return h.key("copy") }
func (h *Host) Paste() error  { return h.key("paste") }
func (h *Host) Insert() error { return h.key("insert") }
func (h *Host) Delete() error { return h.key("delete") }
func (h *Host) Enter() error  { return h.key("enter") }
func (h *Host) Escape() error { return h.key("escape") }
func (h *Host) Yes() error    { return h.key("yes") }
func (h *Host) No() error     { return h.key("no") }

// Up, Down, Left and Right press an arrow key value times
func (h *Host) Up(value int) error    { return h.key("up") }
func (h *Host) Down(value int) error  { return h.key("down") }
func (h *Host) Left(value int) error  { return h.key("left") }
func (h *Host) Right(value int) error { return h.key("right") }

func (h *Host) GetHintMsg() (string, error) {
	if err := h.Guard.Check(opGetHintMsg); err != nil {
		return "", err
	}
	return h.live().UI.HintMessage, nil
}

func (h *Host) SetHintMsg(msg string) error {
	if err := h.Guard.Check(opSetHintMsg); err != nil {
		return err
	}
	h.live().UI.HintMessage = msg
	return nil
}

// ExportProject puts the host into its exporting state, where unsafe calls
// fail, until the returned func is called
func (h *Host) ExportProject() func() {
	g := &h.live().General
	prev := g.Busy
	g.Busy = state.Exporting
	return func() {
		h.live().General.Busy = prev
	}
}
