// Package host is the emulated scripting API.
//
// Each method stands in for one host function. It runs the policy guard
// first, then validates its arguments, and only then reads or writes the
// store's live state, so a failed call never leaves a partial change.
// Channel indexes are group indexes relative to the channel rack's group
// filter unless a method says otherwise.
package host

import (
	"flmodel/channels"
	"flmodel/device"
	"flmodel/policy"
	"flmodel/state"
)

// Host binds the API to a store and, optionally, a device router
type Host struct {
	Store  *state.Store
	Guard  *policy.Guard
	Router *device.Router

	// Peers receives messages passed to Dispatch, keyed by the port of the
	// receiving device
	Peers map[int]*device.Router
}

// New creates a host over store. router may be nil when no script is
// attached.
func New(store *state.Store, router *device.Router) *Host {
	return &Host{
		Store:  store,
		Guard:  policy.NewGuard(store),
		Router: router,
		Peers:  map[int]*device.Router{},
	}
}

func (h *Host) live() *state.State {
	return h.Store.Get()
}

// channel resolves a group index to the channel and its global index
func (h *Host) channel(idx int) (*state.Channel, int, error) {
	s := h.live()
	if err := channels.CheckGroupIndex(s, idx); err != nil {
		return nil, 0, err
	}
	global, err := channels.GroupToGlobal(s, idx, nil)
	if err != nil {
		return nil, 0, err
	}
	return s.Channels.List[global], global, nil
}

// channelAt resolves an index that may be global
func (h *Host) channelAt(idx int, global bool) (*state.Channel, int, error) {
	if !global {
		return h.channel(idx)
	}
	s := h.live()
	if err := channels.CheckGlobalIndex(s, idx); err != nil {
		return nil, 0, err
	}
	return s.Channels.List[idx], idx, nil
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
