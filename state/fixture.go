package state

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SaveFixture writes the current state as JSON so it can seed later tests
func (s *Store) SaveFixture(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadFixture reads a state written by SaveFixture and installs it
func (s *Store) LoadFixture(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Start from defaults so fields missing from older fixtures stay sane
	loaded := NewState(s.cfg)
	if err := json.Unmarshal(data, loaded); err != nil {
		return err
	}

	// Reset runtime-only fields
	loaded.General.Busy = Idle
	loaded.Transport.Playing = false

	s.state = loaded
	return nil
}
