package types

import "fmt"

// Distributor names used as provenance tags in suggestions and display.
const (
	DistributorMouser  = "Mouser"
	DistributorDigikey = "Digikey"
)

// WebComponent is the boundary type for parts found via distributor lookup.
// It is distinct from catalog Part records: its electrical specs are free
// text scraped from product pages and are not reliable enough to score.
type WebComponent struct {
	PartNumber     string            `json:"part_number"`
	Manufacturer   string            `json:"manufacturer"`
	Description    string            `json:"description"`
	Price          string            `json:"price"`        // display string, e.g. "$1.85"
	Availability   string            `json:"availability"` // display string
	DatasheetURL   string            `json:"datasheet_url,omitempty"`
	Distributor    string            `json:"distributor"`
	Package        string            `json:"package,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	FromFallback   bool              `json:"from_fallback"` // true when lookup degraded to static data
}

// WebPart adapts a WebComponent into the Part capability set so the engine
// and display layer never probe for attribute existence at runtime.
type WebPart struct {
	WebComponent
	ComponentKind ComponentKind `json:"kind"`
}

func (w WebPart) PartNumber() string  { return w.WebComponent.PartNumber }
func (w WebPart) Maker() string       { return w.Manufacturer }
func (w WebPart) Kind() ComponentKind { return w.ComponentKind }

func (w WebPart) Describe() string {
	return fmt.Sprintf("%s (%s): %s. Electrical specs: see datasheet [%s]",
		w.WebComponent.PartNumber, w.Manufacturer, w.Description, w.Distributor)
}
