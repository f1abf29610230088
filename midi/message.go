// Package midi connects real MIDI ports to a device.Router.
//
// Driver callbacks arrive on goroutines owned by the MIDI driver. Ports
// turn them into device messages and push them onto a channel; a Bridge
// drains that channel on a single goroutine, which is the only place
// SendEvent gets called.
package midi

import (
	"slices"

	gomidi "gitlab.com/gomidi/midi/v2"

	"flmodel/device"
)

// FromGoMIDI converts a driver message into a device message. It returns
// nil for messages a script never sees: realtime, timing and anything
// malformed.
func FromGoMIDI(msg gomidi.Message, port int) *device.Message {
	b := msg.Bytes()
	if len(b) == 0 {
		return nil
	}
	status := b[0]
	switch {
	case status == device.StatusSysEx:
		if len(b) < 2 || b[len(b)-1] != 0xF7 {
			return nil
		}
		return &device.Message{Status: status, Sysex: slices.Clone(b), Port: port}
	case status < 0x80 || status > 0xEF:
		return nil
	}

	m := &device.Message{Status: status, Port: port}
	if len(b) > 1 {
		m.Data1 = b[1] & 0x7F
	}
	if len(b) > 2 {
		m.Data2 = b[2] & 0x7F
	}
	return m
}

// ToGoMIDI converts a device message into the bytes a driver sends
func ToGoMIDI(msg *device.Message) gomidi.Message {
	if msg.IsSysEx() {
		return gomidi.Message(slices.Clone(msg.Sysex))
	}
	switch msg.Kind() {
	case device.StatusProgramChange, device.StatusChannelPressure:
		return gomidi.Message{msg.Status, msg.Data1}
	}
	return gomidi.Message{msg.Status, msg.Data1, msg.Data2}
}
