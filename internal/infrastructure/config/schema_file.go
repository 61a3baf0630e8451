package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/swipenav/config.schema.json"

// Schema reflects the JSON schema of Config.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		DoNotReference: true,
		// Every key is optional; missing ones keep their defaults.
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = schemaID
	schema.Title = "swipenav configuration"
	schema.Description = "Configuration schema for swipenav, the swipe-to-navigate overlay"
	return schema
}

// SchemaJSON returns the indented JSON schema document.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the JSON schema to path.
func WriteSchemaFile(path string) error {
	data, err := SchemaJSON()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create schema directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
