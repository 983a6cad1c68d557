package schemafile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docproject "github.com/entamburini/docproject"
	"github.com/entamburini/docproject/schemafile"
)

const schemaJSON = `{
	"idField": "id",
	"timestampField": "updated",
	"fields": [
		{"name": "name", "type": "string"},
		{"name": "scores", "type": "number", "repeated": true},
		{"name": "addr", "type": "map", "fields": [
			{"name": "city", "type": "string"}
		]}
	]
}`

const schemaYAML = `idField: id
timestampField: updated
fields:
  - name: name
    type: string
  - name: scores
    type: number
    repeated: true
  - name: addr
    type: map
    fields:
      - name: city
        type: string
`

func wantSchema() docproject.Schema {
	return docproject.Schema{
		IDField:        "id",
		TimestampField: "updated",
		Fields: []docproject.Field{
			{Name: "name", Type: docproject.TypeString},
			{Name: "scores", Type: docproject.TypeNumber, Repeated: true},
			{Name: "addr", Type: docproject.TypeMap, Fields: []docproject.Field{
				{Name: "city", Type: docproject.TypeString},
			}},
		},
	}
}

func TestParseJSON(t *testing.T) {
	sch, err := schemafile.ParseJSON([]byte(schemaJSON))
	require.NoError(t, err)
	assert.Equal(t, wantSchema(), sch)
}

func TestParseYAML(t *testing.T) {
	sch, err := schemafile.ParseYAML([]byte(schemaYAML))
	require.NoError(t, err)
	assert.Equal(t, wantSchema(), sch)
}

func TestParseJSON_UnknownTag(t *testing.T) {
	_, err := schemafile.ParseJSON([]byte(`{"fields":[{"name":"x","type":"unsupported_tag"}]}`))
	require.Error(t, err)
	se, ok := docproject.AsSchemaError(err)
	require.True(t, ok, "expected *SchemaError, got %v", err)
	assert.Equal(t, "/x", se.Path)
}

func TestParseJSON_MapWithoutFields(t *testing.T) {
	_, err := schemafile.ParseJSON([]byte(`{"fields":[{"name":"m","type":"map"}]}`))
	assert.ErrorContains(t, err, "declares no nested fields")
}

func TestParseJSON_NoFields(t *testing.T) {
	_, err := schemafile.ParseJSON([]byte(`{"idField":"id"}`))
	assert.ErrorIs(t, err, schemafile.ErrNoFields)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(schemaJSON), 0o644))
	yamlPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(schemaYAML), 0o644))

	fromJSON, err := schemafile.Load(jsonPath)
	require.NoError(t, err)
	fromYAML, err := schemafile.Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)

	_, err = schemafile.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
