package host

import (
	"slices"

	"flmodel/debug"
	"flmodel/device"
	"flmodel/errs"
)

func (h *Host) IsAssigned() (bool, error) {
	if err := h.Guard.Check(opIsAssigned); err != nil {
		return false, err
	}
	return h.live().Device.Assigned, nil
}

// GetPortNumber returns the device's port, or -1 when it is unassigned
func (h *Host) GetPortNumber() (int, error) {
	if err := h.Guard.Check(opGetPortNumber); err != nil {
		return 0, err
	}
	d := h.live().Device
	if !d.Assigned {
		return -1, nil
	}
	return d.Port, nil
}

func (h *Host) GetName() (string, error) {
	if err := h.Guard.Check(opGetName); err != nil {
		return "", err
	}
	return h.live().Device.Name, nil
}

// MidiOutMsg sends a message to the device's output. With channel -1,
// message packs the whole event: status in the low byte, then data1 and
// data2. Otherwise message is the status nibble and the other arguments
// fill in the rest.
func (h *Host) MidiOutMsg(message, channel, data1, data2 int) error {
	op := opMidiOutMsg
	if channel != -1 {
		op = opMidiOutMsgParts
	}
	if err := h.Guard.Check(op); err != nil {
		return err
	}

	var msg *device.Message
	if channel == -1 {
		msg = &device.Message{
			Status: uint8(message),
			Data1:  uint8(message>>8) & 0x7F,
			Data2:  uint8(message>>16) & 0x7F,
		}
	} else {
		if channel < 0 || channel > 15 {
			return errs.Newf(errs.CodeInvalidValue, "midi channel %d", channel)
		}
		msg = &device.Message{
			Status: uint8(message<<4 | channel),
			Data1:  uint8(max(data1, 0)) & 0x7F,
			Data2:  uint8(max(data2, 0)) & 0x7F,
		}
	}
	if msg.Status < 0x80 {
		return errs.Newf(errs.CodeInvalidValue, "status %#02x is not a midi status byte", msg.Status)
	}
	return h.emit(msg)
}

// MidiOutSysex sends a complete system exclusive message
func (h *Host) MidiOutSysex(message []byte) error {
	if err := h.Guard.Check(opMidiOutSysex); err != nil {
		return err
	}
	if len(message) < 2 || message[0] != 0xF0 || message[len(message)-1] != 0xF7 {
		return errs.New(errs.CodeInvalidValue, "sysex must start with F0 and end with F7")
	}
	return h.emit(&device.Message{Status: device.StatusSysEx, Sysex: slices.Clone(message)})
}

// SendMsgGeneric sends text as a sysex message. The low six bytes of id
// make up the header. It returns the string to pass as lastMsg next time.
func (h *Host) SendMsgGeneric(id int, message, lastMsg string, offset int) (string, error) {
	if err := h.Guard.Check(opSendMsgGeneric); err != nil {
		return "", err
	}
	if message == lastMsg {
		return lastMsg, nil
	}
	data := make([]byte, 0, 7+len(message))
	for shift := 40; shift >= 0; shift -= 8 {
		data = append(data, byte(id>>shift))
	}
	for _, b := range []byte(message) {
		data = append(data, b&0x7F)
	}
	data = append(data, 0xF7)
	if data[0] != 0xF0 {
		return "", errs.Newf(errs.CodeInvalidValue, "sysex header %#x does not start with F0", id)
	}
	if err := h.emit(&device.Message{Status: device.StatusSysEx, Sysex: data}); err != nil {
		return "", err
	}
	return message, nil
}

func (h *Host) emit(msg *device.Message) error {
	d := h.live().Device
	if !d.Assigned {
		return errs.New(errs.CodeDeviceUnassigned, "device has no output port")
	}
	msg.Port = d.Port
	if h.Router != nil {
		h.Router.Emit(msg)
	}
	debug.Log("host", "sent %v", msg)
	return nil
}

// DispatchReceiverCount returns the number of scripts this one can
// dispatch to
func (h *Host) DispatchReceiverCount() (int, error) {
	if err := h.Guard.Check(opDispatchReceiverCount); err != nil {
		return 0, err
	}
	return len(h.live().Device.DispatchTargets), nil
}

// Dispatch forwards a message to another script. message packs a channel
// message like MidiOutMsg does; 0xF0 means sysex holds a complete sysex
// message.
func (h *Host) Dispatch(ctrlIndex int, message int, sysex []byte) error {
	if err := h.Guard.Check(opDispatch); err != nil {
		return err
	}
	targets := h.live().Device.DispatchTargets
	if ctrlIndex < 0 || ctrlIndex >= len(targets) {
		return errs.IndexError("dispatch receiver", ctrlIndex)
	}
	port := targets[ctrlIndex]

	msg := &device.Message{
		Status: uint8(message),
		Data1:  uint8(message>>8) & 0x7F,
		Data2:  uint8(message>>16) & 0x7F,
		Port:   port,
	}
	if msg.Status == device.StatusSysEx {
		msg.Data1, msg.Data2 = 0, 0
		msg.Sysex = slices.Clone(sysex)
	}
	if peer := h.Peers[port]; peer != nil {
		peer.SendEvent(msg)
	} else {
		debug.Log("host", "no script on port %d for %v", port, msg)
	}
	return nil
}

// DispatchGetReceiverPortNumber returns the port of a dispatch receiver
func (h *Host) DispatchGetReceiverPortNumber(ctrlIndex int) (int, error) {
	if err := h.Guard.Check(opDispatchGetReceiverPortNumber); err != nil {
		return 0, err
	}
	targets := h.live().Device.DispatchTargets
	if ctrlIndex < 0 || ctrlIndex >= len(targets) {
		return 0, errs.IndexError("dispatch receiver", ctrlIndex)
	}
	return targets[ctrlIndex], nil
}

// SetMasterSync sets whether transport notifications go to the device
func (h *Host) SetMasterSync(value bool) error {
	if err := h.Guard.Check(opSetMasterSync); err != nil {
		return err
	}
	h.live().Device.MasterSync = value
	return nil
}

func (h *Host) GetMasterSync() (bool, error) {
	if err := h.Guard.Check(opGetMasterSync); err != nil {
		return false, err
	}
	return h.live().Device.MasterSync, nil
}
