// Package state holds the emulated host's state and the Store that owns it.
//
// A Store has exactly one current State. Callers read and write the live
// State directly; isolation between tests comes from Reset and Checkout,
// not from locking. A Store must not be shared between goroutines.
package state

import (
	"fmt"

	"flmodel/config"
	"flmodel/debug"
)

// Loader produces the configuration used by Reset
type Loader func() (*config.Config, error)

// Store owns the current State
type Store struct {
	state *State
	cfg   *config.Config
	load  Loader
}

// NewStore creates a store holding a default state. Reset reloads the
// configuration through load; a nil load reads fl_config.json.
func NewStore(load Loader) *Store {
	if load == nil {
		load = config.Load
	}
	cfg := config.DefaultConfig()
	return &Store{
		state: NewState(cfg),
		cfg:   cfg,
		load:  load,
	}
}

// NewStoreWithConfig creates a store whose Reset always uses cfg
func NewStoreWithConfig(cfg *config.Config) *Store {
	s := NewStore(func() (*config.Config, error) {
		return cfg.Clone(), nil
	})
	s.cfg = cfg.Clone()
	s.state = NewState(s.cfg)
	return s
}

// Get returns the live state
func (s *Store) Get() *State {
	return s.state
}

// Set installs a copy of st as the current state. Later changes to st are
// not seen by the store.
func (s *Store) Set(st *State) {
	s.state = st.Clone()
}

// Config returns the configuration loaded by the last Reset
func (s *Store) Config() *config.Config {
	return s.cfg
}

// Reset reloads the configuration and installs a fresh default state
func (s *Store) Reset() error {
	cfg, err := s.load()
	if err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	s.cfg = cfg
	s.state = NewState(cfg)
	debug.Log("store", "reset (target api %d)", cfg.TargetVersion())
	return nil
}

// Checkout runs fn against the live state, then restores the state as it
// was before fn ran. The restore happens whether fn returns an error or
// panics.
func (s *Store) Checkout(fn func(st *State) error) error {
	restore := s.save()
	defer restore()
	return fn(s.state)
}

// Begin saves the current state and returns the live state along with a
// function that restores the saved copy:
//
//	st, restore := store.Begin()
//	defer restore()
func (s *Store) Begin() (*State, func()) {
	return s.state, s.save()
}

func (s *Store) save() func() {
	saved := s.state.Clone()
	return func() {
		s.state = saved
		debug.Log("store", "checkout restored")
	}
}
