package distributor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/powercrux/part-advisor/internal/types"
)

const maxExtracted = 5

var (
	partNumberRe = regexp.MustCompile(`\b[A-Z]{2,}[0-9A-Z\-]{3,}\b`)
	// manufacturers worth recognizing in raw page text
	manufacturerRe = regexp.MustCompile(`(?i)(Infineon|STMicroelectronics|ON Semiconductor|Texas Instruments|Analog Devices|Vishay|Panasonic|Murata|TDK|Bourns|Nichicon|Rubycon)`)
)

// extractComponents runs the extraction strategies in order and returns the
// first non-empty result. Callers never learn which strategy fired.
func extractComponents(html, distributor string, kind types.ComponentKind) []types.WebComponent {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		if components := extractStructured(doc, distributor, kind); len(components) > 0 {
			return components
		}
	}
	return extractPartNumbers(html, distributor, kind)
}

// extractStructured looks for product listing markup: table rows tagged as
// results, or grid-item product containers.
func extractStructured(doc *goquery.Document, distributor string, kind types.ComponentKind) []types.WebComponent {
	var components []types.WebComponent

	doc.Find("tr[data-testid=row]").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td, th")
		if cells.Length() < 3 {
			return true
		}
		partNumber := strings.TrimSpace(cells.Eq(0).Text())
		if len(partNumber) <= 2 {
			return true
		}
		components = append(components, types.WebComponent{
			PartNumber:   partNumber,
			Manufacturer: strings.TrimSpace(cells.Eq(1).Text()),
			Description:  strings.TrimSpace(cells.Eq(2).Text()),
			Price:        "See " + distributor,
			Availability: "Check availability",
			Distributor:  distributor,
		})
		return len(components) < maxExtracted
	})
	if len(components) > 0 {
		return components
	}

	doc.Find("div[class*=grid-item]").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		partNumber := strings.TrimSpace(item.Find("[class*=part-number], a").First().Text())
		if len(partNumber) <= 2 {
			return true
		}
		description := strings.TrimSpace(item.Find("[class*=description], p").First().Text())
		if description == "" {
			description = fmt.Sprintf("%s - %s", kindLabel(kind), partNumber)
		}
		components = append(components, types.WebComponent{
			PartNumber:   partNumber,
			Manufacturer: strings.TrimSpace(item.Find("[class*=manufacturer]").First().Text()),
			Description:  description,
			Price:        "See " + distributor,
			Availability: "Check availability",
			Distributor:  distributor,
		})
		return len(components) < maxExtracted
	})
	return components
}

// extractPartNumbers is the loose fallback strategy: scan the raw page for
// part-number-shaped tokens and pair them with any recognized manufacturer
// names, preserving first-seen order for determinism.
func extractPartNumbers(html, distributor string, kind types.ComponentKind) []types.WebComponent {
	seen := make(map[string]bool)
	var parts []string
	for _, match := range partNumberRe.FindAllString(html, -1) {
		if !seen[match] {
			seen[match] = true
			parts = append(parts, match)
		}
		if len(parts) == maxExtracted {
			break
		}
	}
	manufacturers := manufacturerRe.FindAllString(html, maxExtracted)

	components := make([]types.WebComponent, 0, len(parts))
	for i, part := range parts {
		mfg := "Various"
		if i < len(manufacturers) {
			mfg = manufacturers[i]
		}
		components = append(components, types.WebComponent{
			PartNumber:   part,
			Manufacturer: mfg,
			Description:  fmt.Sprintf("%s - %s", kindLabel(kind), part),
			Price:        "See " + distributor,
			Availability: "Check availability",
			Distributor:  distributor,
		})
	}
	return components
}

func kindLabel(kind types.ComponentKind) string {
	switch kind {
	case types.KindMOSFET:
		return "MOSFET"
	case types.KindOutputCapacitor:
		return "Output Capacitor"
	case types.KindInputCapacitor:
		return "Input Capacitor"
	case types.KindInductor:
		return "Inductor"
	}
	return string(kind)
}
