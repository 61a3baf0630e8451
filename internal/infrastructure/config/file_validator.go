package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FileValidator checks config files against the generated JSON schema and
// the semantic rules Load applies. Unlike Load it rejects unknown keys.
type FileValidator struct {
	schema *jsonschema.Schema
}

// NewFileValidator compiles the config schema.
func NewFileValidator() (*FileValidator, error) {
	data, err := SchemaJSON()
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaID, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaID)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &FileValidator{schema: schema}, nil
}

// ValidateFile validates the TOML file at path.
func (v *FileValidator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return v.Validate(data)
}

// Validate validates raw TOML content.
func (v *FileValidator) Validate(data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid TOML: %w", err)
	}

	// The schema validator expects JSON-shaped values.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert config to JSON: %w", err)
	}
	var doc any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return fmt.Errorf("failed to convert config to JSON: %w", err)
	}

	if err := v.schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			var messages []string
			collectSchemaErrors(validationErr, &messages)
			return fmt.Errorf("schema validation failed:\n%s", strings.Join(messages, "\n"))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("invalid config values: %w", err)
	}
	normalizeConfig(cfg)
	return validateConfig(cfg)
}

// collectSchemaErrors flattens nested validation causes.
func collectSchemaErrors(err *jsonschema.ValidationError, messages *[]string) {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		*messages = append(*messages, fmt.Sprintf("- %s: %s", location, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, messages)
	}
}
