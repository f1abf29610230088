package scripts

import (
	"fmt"
	"io"

	"flmodel/device"
)

// Monitor prints every inbound message and lifecycle call to w. It never
// marks messages handled.
func Monitor(w io.Writer) *device.Script {
	return &device.Script{
		OnInit:         func() { fmt.Fprintln(w, "init") },
		OnDeInit:       func() { fmt.Fprintln(w, "deinit") },
		OnMidiIn:       func(msg *device.Message) { fmt.Fprintln(w, msg) },
		OnFirstConnect: func() { fmt.Fprintln(w, "connected") },
	}
}
