package host

import (
	"math"

	"flmodel/channels"
	"flmodel/errs"
	"flmodel/state"
)

// ChannelCount returns the number of channels in the selected group, or in
// the whole rack when global is set
func (h *Host) ChannelCount(global bool) (int, error) {
	if err := h.Guard.Check(opChannelCount); err != nil {
		return 0, err
	}
	s := h.live()
	if global {
		return len(s.Channels.List), nil
	}
	return len(channels.InSelectedGroup(s)), nil
}

// ChannelNumber returns the global index of the offset-th selected channel
// in the selected group. With no such channel it returns -1 if canBeNone
// is set, otherwise 0.
func (h *Host) ChannelNumber(canBeNone bool, offset int) (int, error) {
	if err := h.Guard.Check(opChannelNumber); err != nil {
		return 0, err
	}
	return h.nthSelected(canBeNone, offset, true), nil
}

// SelectedChannel is ChannelNumber returning group indexes unless
// indexGlobal is set
func (h *Host) SelectedChannel(canBeNone bool, offset int, indexGlobal bool) (int, error) {
	if err := h.Guard.Check(opSelectedChannel); err != nil {
		return 0, err
	}
	return h.nthSelected(canBeNone, offset, indexGlobal), nil
}

func (h *Host) nthSelected(canBeNone bool, offset int, global bool) int {
	s := h.live()
	found := 0
	for groupIdx, globalIdx := range channels.InSelectedGroup(s) {
		if !s.Channels.List[globalIdx].Selected {
			continue
		}
		if found == offset {
			if global {
				return globalIdx
			}
			return groupIdx
		}
		found++
	}
	if canBeNone {
		return -1
	}
	return 0
}

// GetChannelIndex converts a group index to a global index
func (h *Host) GetChannelIndex(idx int) (int, error) {
	if err := h.Guard.Check(opGetChannelIndex); err != nil {
		return 0, err
	}
	_, global, err := h.channel(idx)
	return global, err
}

func (h *Host) GetChannelName(idx int) (string, error) {
	if err := h.Guard.Check(opGetChannelName); err != nil {
		return "", err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

func (h *Host) SetChannelName(idx int, name string) error {
	if err := h.Guard.Check(opSetChannelName); err != nil {
		return err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return err
	}
	c.Name = name
	return nil
}

func (h *Host) GetChannelColor(idx int) (int, error) {
	if err := h.Guard.Check(opGetChannelColor); err != nil {
		return 0, err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return 0, err
	}
	return c.Color, nil
}

func (h *Host) SetChannelColor(idx int, color int) error {
	if err := h.Guard.Check(opSetChannelColor); err != nil {
		return err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return err
	}
	c.Color = color
	return nil
}

// GetChannelVolume returns the volume from 0 to 1, or in decibels when dB
// is set. A silent channel is at negative infinity decibels.
func (h *Host) GetChannelVolume(idx int, dB bool) (float64, error) {
	if err := h.Guard.Check(opGetChannelVolume); err != nil {
		return 0, err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return 0, err
	}
	if dB {
		return VolumeToDB(c.Volume), nil
	}
	return c.Volume, nil
}

// SetChannelVolume sets the volume, clamped to 0..1
func (h *Host) SetChannelVolume(idx int, volume float64) error {
	if err := h.Guard.Check(opSetChannelVolume); err != nil {
		return err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return err
	}
	c.Volume = clamp(volume, 0, 1)
	return nil
}

func (h *Host) GetChannelPan(idx int) (float64, error) {
	if err := h.Guard.Check(opGetChannelPan); err != nil {
		return 0, err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return 0, err
	}
	return c.Pan, nil
}

// SetChannelPan sets the pan, clamped to -1..1
func (h *Host) SetChannelPan(idx int, pan float64) error {
	if err := h.Guard.Check(opSetChannelPan); err != nil {
		return err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return err
	}
	c.Pan = clamp(pan, -1, 1)
	return nil
}

func (h *Host) IsChannelMuted(idx int) (bool, error) {
	if err := h.Guard.Check(opIsChannelMuted); err != nil {
		return false, err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return false, err
	}
	return c.Muted, nil
}

// MuteChannel sets the mute state. value -1 toggles it.
func (h *Host) MuteChannel(idx int, value int) error {
	if err := h.Guard.Check(opMuteChannel); err != nil {
		return err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return err
	}
	c.Muted = resolveToggle(c.Muted, value)
	return nil
}

// IsChannelSolo reports whether the channel is the only unmuted one
func (h *Host) IsChannelSolo(idx int) (bool, error) {
	if err := h.Guard.Check(opIsChannelSolo); err != nil {
		return false, err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return false, err
	}
	enabled := 0
	for _, other := range h.live().Channels.List {
		if !other.Muted {
			enabled++
		}
	}
	return enabled == 1 && !c.Muted, nil
}

// SoloChannel mutes every other channel and unmutes this one
func (h *Host) SoloChannel(idx int) error {
	if err := h.Guard.Check(opSoloChannel); err != nil {
		return err
	}
	_, global, err := h.channel(idx)
	if err != nil {
		return err
	}
	for i, c := range h.live().Channels.List {
		c.Muted = i != global
	}
	return nil
}

func (h *Host) IsChannelSelected(idx int) (bool, error) {
	if err := h.Guard.Check(opIsChannelSelected); err != nil {
		return false, err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return false, err
	}
	return c.Selected, nil
}

// SelectChannel sets the selection state. value -1 toggles it.
func (h *Host) SelectChannel(idx int, value int) error {
	if err := h.Guard.Check(opSelectChannel); err != nil {
		return err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return err
	}
	c.Selected = resolveToggle(c.Selected, value)
	return nil
}

// SelectOneChannel selects a channel and deselects the rest of its group
func (h *Host) SelectOneChannel(idx int) error {
	if err := h.Guard.Check(opSelectOneChannel); err != nil {
		return err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return err
	}
	h.setGroupSelection(false)
	c.Selected = true
	return nil
}

// SelectAllChannels selects every channel in the selected group
func (h *Host) SelectAllChannels() error {
	if err := h.Guard.Check(opSelectAllChannels); err != nil {
		return err
	}
	h.setGroupSelection(true)
	return nil
}

// DeselectAllChannels deselects every channel in the selected group
func (h *Host) DeselectAllChannels() error {
	if err := h.Guard.Check(opDeselectAllChannels); err != nil {
		return err
	}
	h.setGroupSelection(false)
	return nil
}

func (h *Host) setGroupSelection(value bool) {
	s := h.live()
	for _, idx := range channels.InSelectedGroup(s) {
		s.Channels.List[idx].Selected = value
	}
}

func (h *Host) GetChannelType(idx int) (state.ChannelType, error) {
	if err := h.Guard.Check(opGetChannelType); err != nil {
		return 0, err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return 0, err
	}
	return c.Type, nil
}

// GetTargetFxTrack returns the mixer track the channel is routed to
func (h *Host) GetTargetFxTrack(idx int) (int, error) {
	if err := h.Guard.Check(opGetTargetFxTrack); err != nil {
		return 0, err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return 0, err
	}
	return c.Target, nil
}

func (h *Host) SetTargetFxTrack(idx, track int) error {
	if err := h.Guard.Check(opSetTargetFxTrack); err != nil {
		return err
	}
	c, _, err := h.channel(idx)
	if err != nil {
		return err
	}
	if track < 0 || track >= len(h.live().Mixer.Tracks) {
		return errs.IndexError("mixer track", track)
	}
	c.Target = track
	return nil
}

// GetGridBit reads a step of the channel in the active pattern
func (h *Host) GetGridBit(idx, step int) (bool, error) {
	if err := h.Guard.Check(opGetGridBit); err != nil {
		return false, err
	}
	_, global, err := h.channel(idx)
	if err != nil {
		return false, err
	}
	if step < 0 {
		return false, errs.IndexError("step", step)
	}
	p, err := h.activePattern()
	if err != nil {
		return false, err
	}
	return p.GridBit(global, step), nil
}

// SetGridBit writes a step of the channel in the active pattern
func (h *Host) SetGridBit(idx, step int, value bool) error {
	if err := h.Guard.Check(opSetGridBit); err != nil {
		return err
	}
	_, global, err := h.channel(idx)
	if err != nil {
		return err
	}
	if step < 0 {
		return errs.IndexError("step", step)
	}
	p, err := h.activePattern()
	if err != nil {
		return err
	}
	return p.Track(global).Set(step, value)
}

// ProcessRECEvent accepts a REC event. The emulator has no automation, so
// it always reports 0.
func (h *Host) ProcessRECEvent(eventID, value, flags int) (int, error) {
	if err := h.Guard.Check(opProcessRECEvent); err != nil {
		return 0, err
	}
	return 0, nil
}

// GetActivityLevel returns the channel's note activity, always 0 here
func (h *Host) GetActivityLevel(idx int, useGlobalIndex bool) (float64, error) {
	if err := h.Guard.Check(opGetActivityLevel); err != nil {
		return 0, err
	}
	if _, _, err := h.channelAt(idx, useGlobalIndex); err != nil {
		return 0, err
	}
	return 0, nil
}

// VolumeToDB converts a 0..1 fader value to decibels, rounded to one
// decimal place like the host does
func VolumeToDB(volume float64) float64 {
	if volume == 0 {
		return math.Inf(-1)
	}
	v := (math.Exp(volume*math.Log(11)) - 1) * 0.1
	return math.Round(math.Log10(v)*20*10) / 10
}

// resolveToggle applies a host style tri-state value: -1 toggles, 0 clears
// and anything else sets
func resolveToggle(current bool, value int) bool {
	if value == -1 {
		return !current
	}
	return value != 0
}
