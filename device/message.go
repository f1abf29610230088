package device

import "fmt"

// Status nibbles of the channel voice messages
const (
	StatusNoteOff         uint8 = 0x80
	StatusNoteOn          uint8 = 0x90
	StatusKeyPressure     uint8 = 0xA0
	StatusControlChange   uint8 = 0xB0
	StatusProgramChange   uint8 = 0xC0
	StatusChannelPressure uint8 = 0xD0
	StatusPitchBend       uint8 = 0xE0
	StatusSysEx           uint8 = 0xF0
)

// Message is an inbound or outbound MIDI message as a script sees it.
// Scripts set Handled to stop the router offering the message to later
// callbacks.
type Message struct {
	Status  uint8
	Data1   uint8
	Data2   uint8
	Sysex   []byte // complete message including F0 and F7
	Port    int
	Handled bool
}

// NewNoteOn creates a note on message
func NewNoteOn(channel, note, velocity uint8) *Message {
	return &Message{Status: StatusNoteOn | channel&0x0F, Data1: note & 0x7F, Data2: velocity & 0x7F}
}

// NewNoteOff creates a note off message
func NewNoteOff(channel, note, velocity uint8) *Message {
	return &Message{Status: StatusNoteOff | channel&0x0F, Data1: note & 0x7F, Data2: velocity & 0x7F}
}

// NewControlChange creates a control change message
func NewControlChange(channel, control, value uint8) *Message {
	return &Message{Status: StatusControlChange | channel&0x0F, Data1: control & 0x7F, Data2: value & 0x7F}
}

// NewProgramChange creates a program change message
func NewProgramChange(channel, program uint8) *Message {
	return &Message{Status: StatusProgramChange | channel&0x0F, Data1: program & 0x7F}
}

// NewKeyPressure creates a polyphonic aftertouch message
func NewKeyPressure(channel, note, pressure uint8) *Message {
	return &Message{Status: StatusKeyPressure | channel&0x0F, Data1: note & 0x7F, Data2: pressure & 0x7F}
}

// NewChannelPressure creates a channel aftertouch message
func NewChannelPressure(channel, pressure uint8) *Message {
	return &Message{Status: StatusChannelPressure | channel&0x0F, Data1: pressure & 0x7F}
}

// NewPitchBend creates a pitch bend message. value is 14 bit, 0x2000 is
// centered.
func NewPitchBend(channel uint8, value uint16) *Message {
	value &= 0x3FFF
	return &Message{
		Status: StatusPitchBend | channel&0x0F,
		Data1:  uint8(value & 0x7F),
		Data2:  uint8(value >> 7),
	}
}

// NewSysEx creates a system exclusive message from its payload
func NewSysEx(payload []byte) *Message {
	data := make([]byte, 0, len(payload)+2)
	data = append(data, 0xF0)
	data = append(data, payload...)
	data = append(data, 0xF7)
	return &Message{Status: StatusSysEx, Sysex: data}
}

// Kind returns the status with the channel stripped
func (m *Message) Kind() uint8 {
	if m.Status >= 0xF0 {
		return m.Status
	}
	return m.Status & 0xF0
}

func (m *Message) IsSysEx() bool {
	return m.Status == StatusSysEx
}

// Channel returns the MIDI channel of a channel voice message
func (m *Message) Channel() uint8 {
	return m.Status & 0x0F
}

func (m *Message) Note() uint8     { return m.Data1 }
func (m *Message) Velocity() uint8 { return m.Data2 }
func (m *Message) Control() uint8  { return m.Data1 }
func (m *Message) Value() uint8    { return m.Data2 }
func (m *Message) Program() uint8  { return m.Data1 }

// PitchBend returns the 14 bit bend value
func (m *Message) PitchBend() uint16 {
	return uint16(m.Data2)<<7 | uint16(m.Data1)
}

// Payload returns the sysex bytes between F0 and F7
func (m *Message) Payload() []byte {
	data := m.Sysex
	if len(data) > 0 && data[0] == 0xF0 {
		data = data[1:]
	}
	if len(data) > 0 && data[len(data)-1] == 0xF7 {
		data = data[:len(data)-1]
	}
	return data
}

// Clone copies the message so a handler can't change another's view of it
func (m *Message) Clone() *Message {
	dup := *m
	if m.Sysex != nil {
		dup.Sysex = append([]byte(nil), m.Sysex...)
	}
	return &dup
}

func (m *Message) String() string {
	if m.IsSysEx() {
		return fmt.Sprintf("sysex % X", m.Sysex)
	}
	return fmt.Sprintf("%02X %02X %02X (port %d)", m.Status, m.Data1, m.Data2, m.Port)
}
