package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/powercrux/part-advisor/internal/calc"
	"github.com/powercrux/part-advisor/internal/catalog"
	"github.com/powercrux/part-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxTagsToShow caps the heuristics tags printed per suggestion
	maxTagsToShow = 4
)

// Printer handles formatted terminal output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSuggestions outputs a ranked suggestion table for one part family.
func (p *Printer) PrintSuggestions(title string, suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		p.printBox(title, "No parts satisfy the requirements.")
		return
	}

	var sb strings.Builder
	for _, row := range Rows(suggestions) {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)  score %s  [%s]\n",
			row.Rank, row.PartNumber, row.Manufacturer, row.Score, row.Source))
		sb.WriteString(fmt.Sprintf("   %s\n", row.Specs))
		sb.WriteString(fmt.Sprintf("   %s\n", row.Reason))
	}
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// PrintSuggestionDetail outputs one suggestion with its applied rule tags.
func (p *Printer) PrintSuggestionDetail(s types.Suggestion) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Part:     %s\n", s.Component.PartNumber()))
	sb.WriteString(fmt.Sprintf("Maker:    %s\n", s.Component.Maker()))
	sb.WriteString(fmt.Sprintf("Score:    %.1f\n", s.Score))
	sb.WriteString(fmt.Sprintf("Source:   %s\n", sourceLabel(s.Source)))
	sb.WriteString(fmt.Sprintf("Reason:   %s\n", s.Reason))

	if len(s.HeuristicsApplied) > 0 {
		sb.WriteString("\nApplied rules:\n")
		count := min(len(s.HeuristicsApplied), maxTagsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", s.HeuristicsApplied[i]))
		}
		if len(s.HeuristicsApplied) > maxTagsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(s.HeuristicsApplied)-maxTagsToShow))
		}
	}
	p.printBox("Suggestion Detail", strings.TrimRight(sb.String(), "\n"))
}

// PrintBuckResults outputs computed converter component targets.
func (p *Printer) PrintBuckResults(r calc.BuckResults) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Duty cycle (max):     %.3f\n", r.DutyCycleMax))
	sb.WriteString(fmt.Sprintf("Inductance:           %.2f µH\n", r.Inductance*1e6))
	sb.WriteString(fmt.Sprintf("Output capacitance:   %.2f µF\n", r.OutputCapacitance*1e6))
	sb.WriteString(fmt.Sprintf("Input capacitance:    %.2f µF", r.InputCapacitance*1e6))
	p.printBox("Buck Converter Targets", sb.String())
}

// PrintPFCResults outputs computed PFC front-end component targets.
func (p *Printer) PrintPFCResults(r calc.PFCResults) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Inductance:           %.2f µH\n", r.Inductance*1e6))
	sb.WriteString(fmt.Sprintf("Bulk capacitance:     %.2f µF\n", r.Capacitance*1e6))
	sb.WriteString(fmt.Sprintf("Ripple current:       %.2f A", r.RippleCurrent))
	p.printBox("PFC Front-End Targets", sb.String())
}

// PrintCatalogSummary outputs the load state of the current catalog snapshot.
func (p *Printer) PrintCatalogSummary(snap *catalog.Snapshot) {
	if snap == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MOSFETs:            %d (%s)\n", len(snap.MOSFETs), sourceLabel(snap.SourceFor(types.KindMOSFET))))
	sb.WriteString(fmt.Sprintf("Output capacitors:  %d (%s)\n", len(snap.OutputCapacitors), sourceLabel(snap.SourceFor(types.KindOutputCapacitor))))
	sb.WriteString(fmt.Sprintf("Input capacitors:   %d (%s)\n", len(snap.InputCapacitors), sourceLabel(snap.SourceFor(types.KindInputCapacitor))))
	sb.WriteString(fmt.Sprintf("Inductors:          %d (%s)\n", len(snap.Inductors), sourceLabel(snap.SourceFor(types.KindInductor))))

	warned := false
	for _, w := range snap.Warnings {
		if w == nil || (!w.UsedFallback && w.SkippedRows == 0) {
			continue
		}
		if !warned {
			sb.WriteString("\nWarnings:\n")
			warned = true
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", w.String()))
	}
	p.printBox("Catalog", strings.TrimRight(sb.String(), "\n"))
}
