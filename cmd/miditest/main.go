package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"flmodel/config"
	"flmodel/debug"
	"flmodel/device"
	"flmodel/host"
	flmidi "flmodel/midi"
	"flmodel/scripts"
	"flmodel/state"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	env, err := config.ParseEnv()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if env.DebugLog != "" {
		if err := debug.EnableAt(env.DebugLog); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer debug.Disable()
	}
	defer midi.CloseDriver()

	filter := ""
	if len(os.Args) > 2 {
		filter = os.Args[2]
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "monitor":
		err = monitor(filter)
	case "grid":
		if filter == "" {
			filter = "launchpad"
		}
		err = grid(filter)
	default:
		usage()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list             - List all MIDI ports")
	fmt.Println("  monitor [filter] - Print messages from matching inputs")
	fmt.Println("  grid [filter]    - Edit the emulated pattern from a Launchpad")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ch <- result{ins: midi.GetInPorts(), outs: midi.GetOutPorts()}
	}()

	select {
	case r := <-ch:
		for _, p := range r.ins {
			fmt.Printf("  %d: %s\n", p.Number(), p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for _, p := range r.outs {
			fmt.Printf("  %d: %s\n", p.Number(), p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
}

// run polls for ports matching filter and feeds them to router until
// interrupted. onPort runs on the router's goroutine.
func run(filter string, router *device.Router, mgr *flmidi.Manager, onPort func(ev flmidi.PortEvent)) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go mgr.Run(ctx)

	b := flmidi.NewBridge(router)
	b.Ports = mgr.Events()
	b.OnPort = func(ev flmidi.PortEvent) {
		switch ev.Type {
		case flmidi.PortConnected:
			fmt.Printf("+ %s (port %d)\n", ev.ID, ev.Port.Number())
		case flmidi.PortDisconnected:
			fmt.Printf("- %s\n", ev.ID)
		}
		if onPort != nil {
			onPort(ev)
		}
	}

	fmt.Printf("Waiting for ports matching %q. Ctrl+C to exit.\n", filter)
	return b.Run(ctx, mgr.Messages())
}

func monitor(filter string) error {
	mgr := flmidi.NewManager(filter)
	return run(filter, device.NewRouter(scripts.Monitor(os.Stdout), nil), mgr, nil)
}

func grid(filter string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	store := state.NewStoreWithConfig(cfg)
	h := host.New(store, nil)
	mgr := flmidi.NewManager(filter)

	g := scripts.NewStepGrid(h)
	h.Router = device.NewRouter(g.Script(), mgr.Send)

	// The grid draws on the most recently connected port with an output
	return run(filter, h.Router, mgr, func(ev flmidi.PortEvent) {
		if ev.Type != flmidi.PortConnected || !ev.Port.HasOutput() {
			return
		}
		store.Get().Device.Port = ev.Port.Number()
		h.Router.Init()
	})
}
