// Package schemafile loads the schema description format: a document with
// optional idField and timestampField strings and a required ordered fields
// list, where each entry carries name, type, an optional repeated flag, and a
// nested fields list for map entries. JSON and YAML renditions of the same
// structure are accepted.
//
// Loading validates the definition eagerly, so malformed schemas surface as
// errors at the configuration boundary instead of failing every projection.
package schemafile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	docproject "github.com/entamburini/docproject"
)

// ErrNoFields is returned when a schema document declares no fields.
var ErrNoFields = errors.New("schemafile: schema declares no fields")

// ParseJSON decodes and validates a JSON schema document.
func ParseJSON(data []byte) (docproject.Schema, error) {
	var sch docproject.Schema
	if err := gojson.Unmarshal(data, &sch); err != nil {
		return docproject.Schema{}, fmt.Errorf("schemafile: decode json: %w", err)
	}
	if err := Validate(sch); err != nil {
		return docproject.Schema{}, err
	}
	return sch, nil
}

// ParseYAML decodes and validates a YAML schema document.
func ParseYAML(data []byte) (docproject.Schema, error) {
	var sch docproject.Schema
	if err := yaml.Unmarshal(data, &sch); err != nil {
		return docproject.Schema{}, fmt.Errorf("schemafile: decode yaml: %w", err)
	}
	if err := Validate(sch); err != nil {
		return docproject.Schema{}, err
	}
	return sch, nil
}

// Load reads a schema document from disk, dispatching on the file extension
// (.yaml/.yml for YAML, anything else JSON).
func Load(path string) (docproject.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return docproject.Schema{}, fmt.Errorf("schemafile: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// Validate checks the schema definition via docproject.ValidateFields after
// requiring a non-empty fields list, which the file format mandates.
func Validate(sch docproject.Schema) error {
	if len(sch.Fields) == 0 {
		return ErrNoFields
	}
	return docproject.ValidateFields(sch.Fields)
}
