package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPercent(t *testing.T) {
	tests := []struct {
		name string
		line string
		want float64
		ok   bool
	}{
		{"plain percentage", "Use 30% current margin for derating", 0.30, true},
		{"leading text", "derate by 20 percent at least", 0.20, true},
		{"no number", "always derate generously", 0, false},
		{"empty", "", 0, false},
		// Known limitation: the first integer wins even when it is not a
		// percentage. Callers must range-check the result.
		{"part number misfire", "SRR1260 needs a derating margin", 12.60, true},
		{"frequency misfire", "above 100kHz derating margin matters", 1.00, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPercent(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
