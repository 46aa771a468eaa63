package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/powercrux/part-advisor/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"suggestions.schema.json",
	"config.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			// Check for required JSON Schema fields
			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]

			assert.True(t, hasType && hasSchema && hasProps,
				"schema should declare type, $schema, and properties")
		})
	}
}

func TestSuggestionsSchema_AcceptsValidExport(t *testing.T) {
	schemaData, err := os.ReadFile("suggestions.schema.json")
	require.NoError(t, err)

	export := `{
		"run_id": "8f2c0b9e-1a6b-4a8e-9c52-0f3d7f1e2a44",
		"kind": "inductor",
		"requirements": {"inductance_uh": 470, "max_current_a": 2.0},
		"suggestions": [
			{
				"part_number": "SRR1260-471K",
				"manufacturer": "Bourns",
				"score": 97.2,
				"reason": "470µH, rated for 2.5A (1.0x margin)",
				"source": "catalog",
				"heuristics_applied": ["No design documents found, defaults applied"]
			}
		]
	}`

	err = schemas.ValidateJSONString(string(schemaData), export)
	assert.NoError(t, err)
}

func TestSuggestionsSchema_RejectsBadSource(t *testing.T) {
	schemaData, err := os.ReadFile("suggestions.schema.json")
	require.NoError(t, err)

	export := `{
		"run_id": "abc",
		"kind": "inductor",
		"suggestions": [
			{"part_number": "X", "manufacturer": "Y", "score": 1, "reason": "r", "source": "guesswork"}
		]
	}`

	err = schemas.ValidateJSONString(string(schemaData), export)
	require.Error(t, err)
	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok, "expected a structured validation error, got %v", err)
}

func TestConfigSchema_RejectsNegativeInterval(t *testing.T) {
	schemaData, err := os.ReadFile("config.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), `{"min_interval_seconds": -1}`)
	assert.Error(t, err)

	err = schemas.ValidateJSONString(string(schemaData), `{"min_interval_seconds": 3, "use_browser": true}`)
	assert.NoError(t, err)
}
