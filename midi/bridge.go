package midi

import (
	"context"
	"time"

	"flmodel/device"
)

// Bridge feeds inbound messages to a router from a single goroutine
type Bridge struct {
	Router *device.Router

	// IdleRate is how often OnIdle runs; zero disables idle calls
	IdleRate time.Duration

	// Ports, when set, delivers hot-plug events. OnPort runs for each on
	// the bridge goroutine, so it may touch state the script uses.
	Ports  <-chan PortEvent
	OnPort func(ev PortEvent)
}

// NewBridge creates a bridge that calls the script's OnIdle every 20ms,
// close to the host's own idle rate
func NewBridge(router *device.Router) *Bridge {
	return &Bridge{Router: router, IdleRate: 20 * time.Millisecond}
}

// Run delivers messages until ctx is done or messages is closed. It calls
// the script's OnInit first and OnDeInit on the way out. The first
// connected port triggers OnFirstConnect.
func (b *Bridge) Run(ctx context.Context, messages <-chan *device.Message) error {
	b.Router.Init()
	defer b.Router.DeInit()

	ports := b.Ports
	connected := false

	var idle <-chan time.Time
	if b.IdleRate > 0 {
		ticker := time.NewTicker(b.IdleRate)
		defer ticker.Stop()
		idle = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			b.Router.SendEvent(msg)
		case ev, ok := <-ports:
			if !ok {
				ports = nil
				continue
			}
			if b.OnPort != nil {
				b.OnPort(ev)
			}
			if ev.Type == PortConnected && !connected {
				connected = true
				b.Router.FirstConnect()
			}
		case <-idle:
			b.Router.Idle()
		}
	}
}
