package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"flmodel/debug"
	"flmodel/device"
)

// PortEvent is emitted when a matching device connects or disconnects
type PortEvent struct {
	Type PortEventType
	Port *Port
	ID   string
}

type PortEventType int

const (
	PortConnected PortEventType = iota
	PortDisconnected
)

// Manager handles hot-plug detection. Every input whose name passes Match
// is opened and feeds Messages.
type Manager struct {
	Match func(name string) bool

	ports    map[string]*Port
	mu       sync.RWMutex
	events   chan PortEvent
	messages chan *device.Message
	pollRate time.Duration
}

// NewManager creates a manager for ports whose name contains filter,
// ignoring case. An empty filter matches every port.
func NewManager(filter string) *Manager {
	filter = strings.ToLower(filter)
	return &Manager{
		Match: func(name string) bool {
			return strings.Contains(strings.ToLower(name), filter)
		},
		ports:    make(map[string]*Port),
		events:   make(chan PortEvent, 16),
		messages: make(chan *device.Message, 256),
		pollRate: time.Second,
	}
}

// Events returns a channel of connect/disconnect events
func (m *Manager) Events() <-chan PortEvent {
	return m.events
}

// Messages returns the inbound messages of every open port
func (m *Manager) Messages() <-chan *device.Message {
	return m.messages
}

// Ports returns a snapshot of the open ports
func (m *Manager) Ports() map[string]*Port {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*Port, len(m.ports))
	for k, v := range m.ports {
		out[k] = v
	}
	return out
}

// Send writes msg to the output of the port numbered msg.Port
func (m *Manager) Send(msg *device.Message) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.ports {
		if p.Number() == msg.Port {
			if err := p.Send(msg); err != nil {
				debug.Log("midi", "%s: send %v: %v", p.ID(), msg, err)
			}
			return
		}
	}
}

// Run starts the polling loop (blocking - run in goroutine)
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.pollRate)
	defer ticker.Stop()

	m.scan()

	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			close(m.events)
			return
		case <-ticker.C:
			m.scan()
		}
	}
}

// listPorts asks the driver for its ports. CoreMIDI can hang, so give up
// after a timeout.
func listPorts(timeout time.Duration) ([]drivers.In, []drivers.Out, bool) {
	type portsResult struct {
		inPorts  []drivers.In
		outPorts []drivers.Out
	}

	ch := make(chan portsResult, 1)
	go func() {
		ch <- portsResult{inPorts: gomidi.GetInPorts(), outPorts: gomidi.GetOutPorts()}
	}()

	select {
	case r := <-ch:
		return r.inPorts, r.outPorts, true
	case <-time.After(timeout):
		return nil, nil, false
	}
}

func (m *Manager) scan() {
	inPorts, outPorts, ok := listPorts(3 * time.Second)
	if !ok {
		debug.Log("midi", "port scan timed out")
		return
	}

	seenIDs := make(map[string]bool)
	for _, in := range inPorts {
		id := in.String()
		if !m.Match(id) {
			continue
		}
		seenIDs[id] = true

		m.mu.RLock()
		_, exists := m.ports[id]
		m.mu.RUnlock()
		if exists {
			continue
		}

		p, err := OpenPort(id, in.Number(), in, matchingOutput(id, outPorts), m.messages)
		if err != nil {
			debug.Log("midi", "open %s: %v", id, err)
			continue
		}

		m.mu.Lock()
		m.ports[id] = p
		m.mu.Unlock()
		m.events <- PortEvent{Type: PortConnected, Port: p, ID: id}
	}

	m.mu.Lock()
	var toRemove []string
	for id := range m.ports {
		if !seenIDs[id] {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		m.ports[id].Close()
		delete(m.ports, id)
		m.events <- PortEvent{Type: PortDisconnected, ID: id}
	}
	m.mu.Unlock()
}

// matchingOutput finds the output named like an input
func matchingOutput(name string, outs []drivers.Out) drivers.Out {
	name = strings.ToLower(name)
	for _, out := range outs {
		if strings.ToLower(out.String()) == name {
			return out
		}
	}
	return nil
}

func (m *Manager) closeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.ports {
		p.Close()
	}
	m.ports = make(map[string]*Port)
}
