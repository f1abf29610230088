// Package device emulates the host delivering events to a controller
// script.
//
// A Router owns one registered Script. Inbound MIDI passes through
// SendEvent, which offers each message to the script's callbacks in the
// host's order. Handlers may feed further messages back into the same
// router; those are queued and processed after the current one instead of
// recursing.
package device

import "flmodel/debug"

// Router delivers events to one script
type Router struct {
	script *Script
	out    func(msg *Message)
	queue  []*Message
}

// NewRouter creates a router for script. out receives messages the script
// sends back to the device and may be nil.
func NewRouter(script *Script, out func(msg *Message)) *Router {
	if script == nil {
		script = &Script{}
	}
	return &Router{script: script, out: out}
}

// Script returns the registered script
func (r *Router) Script() *Script {
	return r.script
}

// Pending returns the number of queued messages
func (r *Router) Pending() int {
	return len(r.queue)
}

// SendEvent delivers a message from the device. A call made while another
// message is being dispatched only queues msg; the outer call drains the
// queue in order. If a handler panics, the rest of the queue is dropped
// before the panic continues.
func (r *Router) SendEvent(msg *Message) {
	if len(r.queue) > 0 {
		r.queue = append(r.queue, msg)
		return
	}
	r.queue = append(r.queue, msg)
	defer func() { r.queue = nil }()
	for len(r.queue) > 0 {
		r.dispatch(r.queue[0])
		r.queue[0] = nil
		r.queue = r.queue[1:]
	}
}

func (r *Router) dispatch(msg *Message) {
	for _, rt := range routes {
		if !rt.matches(msg) {
			continue
		}
		if fn := rt.handler(r.script); fn != nil {
			fn(msg)
		}
		if msg.Handled {
			debug.Log("router", "%v handled by %s", msg, rt.name)
			return
		}
	}
	debug.Log("router", "%v unhandled", msg)
}

// Emit sends a message from the script to the device
func (r *Router) Emit(msg *Message) {
	if r.out != nil {
		r.out(msg)
	}
}

func (r *Router) Init() {
	if r.script.OnInit != nil {
		r.script.OnInit()
	}
}

func (r *Router) DeInit() {
	if r.script.OnDeInit != nil {
		r.script.OnDeInit()
	}
}

// MidiOutMsg tells the script about a message the host sent to the device
func (r *Router) MidiOutMsg(msg *Message) {
	if r.script.OnMidiOutMsg != nil {
		r.script.OnMidiOutMsg(msg)
	}
}

func (r *Router) Idle() {
	if r.script.OnIdle != nil {
		r.script.OnIdle()
	}
}

func (r *Router) ProjectLoad(status int) {
	if r.script.OnProjectLoad != nil {
		r.script.OnProjectLoad(status)
	}
}

func (r *Router) Refresh(flags int) {
	if r.script.OnRefresh != nil {
		r.script.OnRefresh(flags)
	}
}

func (r *Router) DoFullRefresh() {
	if r.script.OnDoFullRefresh != nil {
		r.script.OnDoFullRefresh()
	}
}

func (r *Router) UpdateBeatIndicator(value int) {
	if r.script.OnUpdateBeatIndicator != nil {
		r.script.OnUpdateBeatIndicator(value)
	}
}

func (r *Router) DisplayZone() {
	if r.script.OnDisplayZone != nil {
		r.script.OnDisplayZone()
	}
}

func (r *Router) UpdateLiveMode(lastTrack int) {
	if r.script.OnUpdateLiveMode != nil {
		r.script.OnUpdateLiveMode(lastTrack)
	}
}

func (r *Router) DirtyMixerTrack(index int) {
	if r.script.OnDirtyMixerTrack != nil {
		r.script.OnDirtyMixerTrack(index)
	}
}

func (r *Router) DirtyChannel(index int) {
	if r.script.OnDirtyChannel != nil {
		r.script.OnDirtyChannel(index)
	}
}

func (r *Router) FirstConnect() {
	if r.script.OnFirstConnect != nil {
		r.script.OnFirstConnect()
	}
}

func (r *Router) UpdateMeters() {
	if r.script.OnUpdateMeters != nil {
		r.script.OnUpdateMeters()
	}
}

func (r *Router) WaitingForInput() {
	if r.script.OnWaitingForInput != nil {
		r.script.OnWaitingForInput()
	}
}

// SendTempMsg asks the script to show a message for duration milliseconds
func (r *Router) SendTempMsg(message string, duration int) {
	if r.script.OnSendTempMsg != nil {
		r.script.OnSendTempMsg(message, duration)
	}
}
