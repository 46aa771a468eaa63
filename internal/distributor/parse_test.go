package distributor

import (
	"testing"

	"github.com/powercrux/part-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStructuredGridItems(t *testing.T) {
	page := `<html><body>
		<div class="product grid-item"><a>SRR1260-470M</a><p>Bourns shielded power inductor</p></div>
		<div class="product grid-item"><a>744770147</a><p>Wurth WE-PD series</p></div>
	</body></html>`

	components := extractComponents(page, types.DistributorMouser, types.KindInductor)
	require.Len(t, components, 2)
	assert.Equal(t, "SRR1260-470M", components[0].PartNumber)
	assert.Equal(t, "Bourns shielded power inductor", components[0].Description)
	assert.False(t, components[0].FromFallback)
}

func TestExtractPartNumberRegexCascade(t *testing.T) {
	// No structured markup: the part-number scan should still find parts
	page := `<html><body><p>Popular choices include IRFZ44N and IRF3205 from
		International Rectifier, plus the STP55NF06L alternative.</p></body></html>`

	components := extractComponents(page, types.DistributorDigikey, types.KindMOSFET)
	require.NotEmpty(t, components)

	seen := make(map[string]bool)
	for _, comp := range components {
		assert.False(t, seen[comp.PartNumber], "duplicate part %s", comp.PartNumber)
		seen[comp.PartNumber] = true
	}
	assert.True(t, seen["IRFZ44N"])
	assert.True(t, seen["IRF3205"])
}

func TestExtractDeterministicOrder(t *testing.T) {
	page := `<html><body><p>IRFZ44N then IRF3205 then STP55NF06L then IRFZ44N again</p></body></html>`

	first := extractComponents(page, types.DistributorMouser, types.KindMOSFET)
	for i := 0; i < 5; i++ {
		again := extractComponents(page, types.DistributorMouser, types.KindMOSFET)
		require.Equal(t, first, again)
	}
	// First-seen order, duplicates collapsed
	require.GreaterOrEqual(t, len(first), 3)
	assert.Equal(t, "IRFZ44N", first[0].PartNumber)
	assert.Equal(t, "IRF3205", first[1].PartNumber)
}

func TestExtractEmptyPage(t *testing.T) {
	components := extractComponents("<html><body></body></html>", types.DistributorMouser, types.KindMOSFET)
	assert.Empty(t, components)
}

func TestExtractCapsResultCount(t *testing.T) {
	page := `<html><body><p>IRF100 IRF200 IRF300 IRF400 IRF500 IRF600 IRF700 IRF800</p></body></html>`
	components := extractComponents(page, types.DistributorMouser, types.KindMOSFET)
	assert.LessOrEqual(t, len(components), maxExtracted)
}
