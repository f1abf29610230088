package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"flmodel/config"
	"flmodel/debug"
	"flmodel/host"
	"flmodel/state"
	"flmodel/theme"
	"flmodel/tui"
)

const defaultFixture = "fixtures/state.json"

func main() {
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

	fixture := defaultFixture
	if len(os.Args) > 1 {
		fixture = os.Args[1]
	}

	// Reset loads fl_config.json (or FL_MODEL_CONFIG) into a fresh state
	store := state.NewStore(nil)
	if err := store.Reset(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := store.LoadFixture(fixture); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error: load %s: %v\n", fixture, err)
		os.Exit(1)
	}

	th := theme.New(theme.LoadOrDefault(env.Palette))
	m := tui.NewModel(host.New(store, nil), th, fixture)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
