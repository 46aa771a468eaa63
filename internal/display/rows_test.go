package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/powercrux/part-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSuggestions() []types.Suggestion {
	return []types.Suggestion{
		{
			Component: types.MOSFET{Name: "IRFZ44N", Manufacturer: "Infineon", Vds: 55, Id: 49, RdsOn: 17.5, TypicalUse: "General switching"},
			Reason:    "VDS=55V (3.1x margin), ID=49A (12.6x margin), RDS(on)=17.5mΩ. General switching",
			Score:     82.5,
			Source:    types.SourceCatalog,
		},
		{
			Component: types.WebPart{
				WebComponent:  types.WebComponent{PartNumber: "STP55NF06L", Manufacturer: "STMicroelectronics", Distributor: types.DistributorMouser},
				ComponentKind: types.KindMOSFET,
			},
			Reason: "N-Channel MOSFET via Mouser. See Mouser, In Stock",
			Score:  50.0,
			Source: types.SourceWeb,
		},
	}
}

func TestRowsFlattenAllFamilies(t *testing.T) {
	rows := Rows(sampleSuggestions())
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "IRFZ44N", rows[0].PartNumber)
	assert.Equal(t, "82.5", rows[0].Score)
	assert.Equal(t, "catalog", rows[0].Source)

	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, "distributor listing", rows[1].Source)
	assert.Contains(t, rows[1].Specs, "datasheet")
}

func TestRowsEmpty(t *testing.T) {
	assert.Empty(t, Rows(nil))
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestions("MOSFETs", sampleSuggestions())

	out := buf.String()
	assert.Contains(t, out, "MOSFETs")
	assert.Contains(t, out, "IRFZ44N")
	assert.Contains(t, out, "STP55NF06L")
	assert.True(t, strings.HasPrefix(out, "┌"))
}

func TestPrintSuggestionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestions("Inductors", nil)
	assert.Contains(t, buf.String(), "No parts satisfy the requirements.")
}

func TestPrintSuggestionDetailTruncatesTags(t *testing.T) {
	s := sampleSuggestions()[0]
	s.HeuristicsApplied = []string{"a", "b", "c", "d", "e", "f"}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestionDetail(s)

	out := buf.String()
	assert.Contains(t, out, "Applied rules:")
	assert.Contains(t, out, "... and 2 more")
}
