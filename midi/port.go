package midi

import (
	"fmt"
	"sync/atomic"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"flmodel/debug"
	"flmodel/device"
)

// Port is an opened device: an input, an optional output with the same
// name, and the port number the script sees
type Port struct {
	id       string
	number   int
	inPort   drivers.In
	outPort  drivers.Out
	send     func(msg gomidi.Message) error
	stopFunc func()

	dropped atomic.Uint64
}

// OpenPort starts listening on in and forwards every message to events.
// A full events channel drops messages instead of blocking the driver.
func OpenPort(id string, number int, in drivers.In, out drivers.Out, events chan<- *device.Message) (*Port, error) {
	p := &Port{
		id:      id,
		number:  number,
		inPort:  in,
		outPort: out,
	}

	if out != nil {
		send, err := gomidi.SendTo(out)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		p.send = send
	}

	if in != nil {
		stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
			m := FromGoMIDI(msg, number)
			if m == nil {
				return
			}
			select {
			case events <- m:
			default:
				if n := p.dropped.Add(1); n%100 == 1 {
					debug.Log("midi", "%s: dropped %d messages", id, n)
				}
			}
		}, gomidi.UseSysEx())
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		p.stopFunc = stop
	}

	return p, nil
}

func (p *Port) ID() string {
	return p.id
}

// Number is the port number scripts see from device.getPortNumber
func (p *Port) Number() int {
	return p.number
}

// HasOutput reports whether messages can be sent back to the device
func (p *Port) HasOutput() bool {
	return p.send != nil
}

// Dropped returns how many inbound messages were lost to a full channel
func (p *Port) Dropped() uint64 {
	return p.dropped.Load()
}

// Send writes msg to the output. It is a no-op for input-only devices.
func (p *Port) Send(msg *device.Message) error {
	if p.send == nil {
		return nil
	}
	return p.send(ToGoMIDI(msg))
}

func (p *Port) Close() error {
	if p.stopFunc != nil {
		p.stopFunc()
	}
	return nil
}
