// Package display converts ranked suggestions into tabular rows and
// formatted terminal output.
package display

import (
	"fmt"

	"github.com/powercrux/part-advisor/internal/types"
)

// Row is one rendered suggestion. Every part family flattens to the same
// shape through the Part interface, so renderers never probe for fields.
type Row struct {
	Rank         int
	PartNumber   string
	Manufacturer string
	Specs        string
	Score        string
	Reason       string
	Source       string
}

// Rows flattens suggestions into display rows in rank order.
func Rows(suggestions []types.Suggestion) []Row {
	rows := make([]Row, 0, len(suggestions))
	for i, s := range suggestions {
		rows = append(rows, Row{
			Rank:         i + 1,
			PartNumber:   s.Component.PartNumber(),
			Manufacturer: s.Component.Maker(),
			Specs:        s.Component.Describe(),
			Score:        fmt.Sprintf("%.1f", s.Score),
			Reason:       s.Reason,
			Source:       sourceLabel(s.Source),
		})
	}
	return rows
}

func sourceLabel(source types.SourceTag) string {
	switch source {
	case types.SourceCatalog:
		return "catalog"
	case types.SourceFallback:
		return "fallback data"
	case types.SourceWeb:
		return "distributor listing"
	}
	return string(source)
}
