package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/powercrux/part-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSuggestions_WritesValidArtifact(t *testing.T) {
	suggestOutputFile = filepath.Join(t.TempDir(), "suggestions.json")
	defer func() { suggestOutputFile = "" }()

	suggestions := []types.Suggestion{
		{
			Component: types.Inductor{Part: "SRR1260-471K", Manufacturer: "Bourns", InductanceUH: 470, Current: 2.5, SatCurrent: 3.0, DCR: 280, Package: "SMD"},
			Reason:    "470µH, rated for 2.5A (1.0x margin)",
			Score:     97.2,
			Source:    types.SourceCatalog,
			HeuristicsApplied: []string{
				"No design documents found, defaults applied",
			},
		},
	}

	err := exportSuggestions(types.KindInductor, suggestions)
	require.NoError(t, err)

	data, err := os.ReadFile(suggestOutputFile)
	require.NoError(t, err)

	var export suggestionExport
	require.NoError(t, json.Unmarshal(data, &export))
	assert.NotEmpty(t, export.RunID)
	assert.Equal(t, "inductor", export.Kind)
	require.Len(t, export.Suggestions, 1)
	assert.Equal(t, "SRR1260-471K", export.Suggestions[0].PartNumber)
	assert.Equal(t, "catalog", export.Suggestions[0].Source)
}

func TestExportSuggestions_EmptyListStillValidates(t *testing.T) {
	suggestOutputFile = filepath.Join(t.TempDir(), "empty.json")
	defer func() { suggestOutputFile = "" }()

	err := exportSuggestions(types.KindMOSFET, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(suggestOutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"suggestions": []`)
}

func TestSuggestTitle(t *testing.T) {
	assert.Equal(t, "MOSFET Suggestions", suggestTitle(types.KindMOSFET))
	assert.Equal(t, "Inductor Suggestions", suggestTitle(types.KindInductor))
	assert.Equal(t, "Suggestions", suggestTitle(types.ComponentKind("other")))
}

func TestKindFlagsCoverAllFamilies(t *testing.T) {
	assert.Len(t, kindFlags, 4)
	assert.Equal(t, types.KindOutputCapacitor, kindFlags["output-capacitor"])
}
