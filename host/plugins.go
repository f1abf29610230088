package host

import (
	"strconv"

	"flmodel/errs"
	"flmodel/state"
)

// PluginRef locates a plugin. A Slot of -1 means the plugin on channel
// Index; anything else is a slot on mixer track Index. Channel indexes are
// group indexes unless Global is set.
type PluginRef struct {
	Index  int
	Slot   int
	Global bool
}

// ChannelPlugin refers to the plugin on a channel
func ChannelPlugin(idx int) PluginRef {
	return PluginRef{Index: idx, Slot: -1}
}

// MixerPlugin refers to the plugin in a mixer slot
func MixerPlugin(track, slot int) PluginRef {
	return PluginRef{Index: track, Slot: slot}
}

// lookup finds the plugin a ref points at. It returns nil without an
// error for an existing location holding no accessible plugin.
func (h *Host) lookup(ref PluginRef) (*state.Plugin, error) {
	if ref.Slot == -1 {
		c, _, err := h.channelAt(ref.Index, ref.Global)
		if err != nil {
			return nil, err
		}
		return c.Plugin, nil
	}
	tracks := h.live().Mixer.Tracks
	if ref.Index < 0 || ref.Index >= len(tracks) {
		return nil, errs.IndexError("mixer track", ref.Index)
	}
	slots := tracks[ref.Index].Slots
	if ref.Slot < 0 || ref.Slot >= len(slots) {
		return nil, errs.IndexError("mixer slot", ref.Slot)
	}
	return slots[ref.Slot], nil
}

// plugin is lookup that fails for samplers and empty slots
func (h *Host) plugin(ref PluginRef) (*state.Plugin, error) {
	p, err := h.lookup(ref)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Valid {
		return nil, errs.Newf(errs.CodeInvalidPlugin, "no plugin at %d/%d", ref.Index, ref.Slot)
	}
	return p, nil
}

func (h *Host) param(ref PluginRef, idx int) (*state.Param, error) {
	p, err := h.plugin(ref)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(p.Params) {
		return nil, errs.IndexError("parameter", idx)
	}
	return &p.Params[idx], nil
}

// IsValid reports whether ref holds a plugin whose properties can be read
func (h *Host) IsValid(ref PluginRef) (bool, error) {
	if err := h.Guard.Check(opIsValid); err != nil {
		return false, err
	}
	p, err := h.lookup(ref)
	if err != nil {
		return false, err
	}
	return p != nil && p.Valid, nil
}

// GetPluginName returns the plugin's name, or the name the user gave the
// instance when userName is set
func (h *Host) GetPluginName(ref PluginRef, userName bool) (string, error) {
	if err := h.Guard.Check(opGetPluginName); err != nil {
		return "", err
	}
	p, err := h.plugin(ref)
	if err != nil {
		return "", err
	}
	if userName {
		return p.Name, nil
	}
	return p.PlugName, nil
}

func (h *Host) GetParamCount(ref PluginRef) (int, error) {
	if err := h.Guard.Check(opGetParamCount); err != nil {
		return 0, err
	}
	p, err := h.plugin(ref)
	if err != nil {
		return 0, err
	}
	return len(p.Params), nil
}

func (h *Host) GetParamName(ref PluginRef, idx int) (string, error) {
	if err := h.Guard.Check(opGetParamName); err != nil {
		return "", err
	}
	p, err := h.param(ref, idx)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

func (h *Host) GetParamValue(ref PluginRef, idx int) (float64, error) {
	if err := h.Guard.Check(opGetParamValue); err != nil {
		return 0, err
	}
	p, err := h.param(ref, idx)
	if err != nil {
		return 0, err
	}
	return p.Value, nil
}

// SetParamValue sets a parameter, clamped to 0..1
func (h *Host) SetParamValue(ref PluginRef, idx int, value float64) error {
	if err := h.Guard.Check(opSetParamValue); err != nil {
		return err
	}
	p, err := h.param(ref, idx)
	if err != nil {
		return err
	}
	p.Value = clamp(value, 0, 1)
	return nil
}

// GetParamValueString formats a parameter the way a generic plugin editor
// shows it, as a percentage
func (h *Host) GetParamValueString(ref PluginRef, idx int) (string, error) {
	if err := h.Guard.Check(opGetParamValueStr); err != nil {
		return "", err
	}
	p, err := h.param(ref, idx)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(int(p.Value*100+0.5)) + "%", nil
}
