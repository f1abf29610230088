// Package config loads the emulator's policy configuration.
//
// The configuration lives in fl_config.json (or fl_config.toml) in the
// working directory. A missing file falls back to DefaultConfig. A file that
// fails schema validation is a setup mistake in the test harness and is
// reported as an errs.Configuration error.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"

	"flmodel/errs"
)

const (
	DefaultJSONFile = "fl_config.json"
	DefaultTOMLFile = "fl_config.toml"
)

// Config is the main configuration structure
type Config struct {
	DisallowDeprecatedFunctions bool       `json:"disallowDeprecatedFunctions"`
	DisallowFutureFunctions     bool       `json:"disallowFutureFunctions"`
	DisallowKeyEchoes           bool       `json:"disallowKeyEchoes"`
	TargetAPIVersion            APIVersion `json:"targetApiVersion"`
}

// Environment holds the settings read from environment variables
type Environment struct {
	ConfigPath string `env:"FL_MODEL_CONFIG"`
	DebugLog   string `env:"FL_MODEL_DEBUG_LOG"`
	Palette    string `env:"FL_MODEL_PALETTE"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		TargetAPIVersion: Alias("latest"),
	}
}

// TargetVersion returns the resolved numeric target API version
func (c *Config) TargetVersion() int {
	n, err := c.TargetAPIVersion.Resolve()
	if err != nil {
		return LatestAPIVersion
	}
	return n
}

// Clone returns a copy of the config
func (c *Config) Clone() *Config {
	dup := *c
	return &dup
}

// ParseEnv loads the environment overrides
func ParseEnv() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ConfigPath returns the path of the config file to load: FL_MODEL_CONFIG
// when set, otherwise fl_config.json, or fl_config.toml when only that exists.
func ConfigPath() (string, error) {
	e, err := ParseEnv()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(e.ConfigPath) != "" {
		return e.ConfigPath, nil
	}
	if _, err := os.Stat(DefaultJSONFile); err != nil && errors.Is(err, os.ErrNotExist) {
		if _, err := os.Stat(DefaultTOMLFile); err == nil {
			return DefaultTOMLFile, nil
		}
	}
	return DefaultJSONFile, nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, errs.Wrap(errs.CodeConfiguration, "locate configuration", err)
	}
	return LoadFile(path)
}

// LoadFile reads and validates a specific config file. Keys missing from the
// file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, errs.Wrap(errs.CodeConfiguration, "read configuration", err)
	}

	doc, err := decode(path, data)
	if err != nil {
		return nil, errs.Wrap(errs.CodeConfiguration, "parse configuration", err)
	}
	return fromDocument(doc)
}

// Parse validates a JSON document and merges it over the defaults
func Parse(data []byte) (*Config, error) {
	doc, err := decode(DefaultJSONFile, data)
	if err != nil {
		return nil, errs.Wrap(errs.CodeConfiguration, "parse configuration", err)
	}
	return fromDocument(doc)
}

func fromDocument(doc map[string]any) (*Config, error) {
	if err := Validate(doc); err != nil {
		return nil, errs.Wrap(errs.CodeConfiguration, "failed to validate configuration", err)
	}

	// Round-trip through JSON so the overlay only touches keys present in doc
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, errs.Wrap(errs.CodeConfiguration, "encode configuration", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(normalized, cfg); err != nil {
		return nil, errs.Wrap(errs.CodeConfiguration, "decode configuration", err)
	}
	return cfg, nil
}

// decode turns JSON or TOML into a generic document with JSON number types
func decode(path string, data []byte) (map[string]any, error) {
	doc := map[string]any{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		raw := map[string]any{}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		// TOML integers decode as int64; normalise via JSON
		buf, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}
		data = buf
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Save writes the config as JSON
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
