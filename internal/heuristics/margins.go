package heuristics

import (
	"fmt"
	"strings"

	"github.com/powercrux/part-advisor/internal/types"
)

// Margins are the effective safety factors and tolerance windows the engine
// filters with. Voltage and Current are multiplicative derating factors
// (rated >= need x factor). CapacitanceTolerance defines the acceptance band
// [required/tol, required*tol]. InductanceTolerance is a fractional window
// around a ratio of 1.0: ratio must fall within [1-tol, 1+tol], clamped at
// physical zero on the low side. The wide inductor default is intentional so
// a small catalog is not over-constrained.
type Margins struct {
	Voltage              float64
	Current              float64
	CapacitanceTolerance float64
	InductanceTolerance  float64

	// Applied collects a human-readable tag for every override that fired.
	Applied []string
}

// DefaultMargins returns the documented per-family defaults.
func DefaultMargins(kind types.ComponentKind) Margins {
	switch kind {
	case types.KindMOSFET:
		return Margins{Voltage: 1.5, Current: 1.3}
	case types.KindOutputCapacitor, types.KindInputCapacitor:
		return Margins{Voltage: 1.2, CapacitanceTolerance: 5.0}
	case types.KindInductor:
		return Margins{Current: 1.2, InductanceTolerance: 4.0}
	}
	return Margins{Voltage: 1.5, Current: 1.3}
}

// Sanity windows for extracted guidance numbers. Values outside these ranges
// are treated as misparses and discarded.
const (
	minMarginFactor = 1.1
	maxMarginFactor = 2.0
	minTolerance    = 0.1
	maxTolerance    = 5.0
)

// ApplyGuidance overrides the defaults with any numeric guidance found in
// the analysis result. A line like "Use 30% current margin for derating"
// sets Current to 1.30. The first in-range number per parameter wins.
func (m *Margins) ApplyGuidance(result Result) {
	if !result.Updated {
		return
	}

	for _, line := range result.Lines(BucketCurrentDerating) {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "margin") && !strings.Contains(lower, "derating") {
			continue
		}
		if pct, ok := ExtractPercent(line); ok {
			factor := 1 + pct
			if factor >= minMarginFactor && factor <= maxMarginFactor {
				m.Current = factor
				m.Applied = append(m.Applied, fmt.Sprintf("Current margin %.2fx from guidance: %q", factor, line))
				break
			}
		}
	}

	for _, line := range result.Lines(BucketVoltageDerating) {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "margin") && !strings.Contains(lower, "derating") {
			continue
		}
		if pct, ok := ExtractPercent(line); ok {
			factor := 1 + pct
			if factor >= minMarginFactor && factor <= maxMarginFactor {
				m.Voltage = factor
				m.Applied = append(m.Applied, fmt.Sprintf("Voltage margin %.2fx from guidance: %q", factor, line))
				break
			}
		}
	}

	for _, bucket := range []string{BucketCapacitance, BucketInductance} {
		for _, line := range result.Lines(bucket) {
			if !strings.Contains(strings.ToLower(line), "tolerance") {
				continue
			}
			if pct, ok := ExtractPercent(line); ok && pct >= minTolerance && pct <= maxTolerance {
				switch bucket {
				case BucketCapacitance:
					if m.CapacitanceTolerance > 0 {
						m.CapacitanceTolerance = 1 + pct
						m.Applied = append(m.Applied, fmt.Sprintf("Capacitance tolerance %.0f%% from guidance: %q", pct*100, line))
					}
				case BucketInductance:
					if m.InductanceTolerance > 0 {
						m.InductanceTolerance = pct
						m.Applied = append(m.Applied, fmt.Sprintf("Inductance tolerance %.0f%% from guidance: %q", pct*100, line))
					}
				}
				break
			}
		}
	}
}
