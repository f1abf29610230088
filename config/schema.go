package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaResolved *jsonschema.Resolved
	schemaErr      error
)

func resolvedSchema() (*jsonschema.Resolved, error) {
	schemaOnce.Do(func() {
		var s jsonschema.Schema
		if err := json.Unmarshal(schemaJSON, &s); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		schemaResolved, schemaErr = s.Resolve(nil)
	})
	return schemaResolved, schemaErr
}

// Validate checks a decoded configuration document against the schema
func Validate(doc map[string]any) error {
	rs, err := resolvedSchema()
	if err != nil {
		return err
	}
	return rs.Validate(doc)
}
