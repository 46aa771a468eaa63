// Package recommend ranks catalog and web components against converter
// requirements. Filtering is strict, scoring is additive: every part starts
// at 100 and collects signed adjustments that commute, so the order of
// application never changes a score.
package recommend

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/powercrux/part-advisor/internal/heuristics"
	"github.com/powercrux/part-advisor/internal/types"
)

// hfThresholdHz divides the low and high switching-frequency regimes.
// Above it, resistive loss penalties double and fast parts earn bonuses.
const hfThresholdHz = 100000.0

const (
	baseScore          = 100.0
	sweetSpotLow       = 1.2
	sweetSpotHigh      = 1.8
	oversizedThreshold = 2.0
	sweetSpotBonus     = 5.0
	mentionBonus       = 5.0
	lowGateChargeNC    = 30.0
	lowGateChargeBonus = 3.0
	ceramicHFBonus     = 8.0
	bulkLFBonus        = 5.0
	ferriteHFBonus     = 3.0
)

func lossScale(frequencyHz float64) float64 {
	if frequencyHz > hfThresholdHz {
		return 2.0
	}
	return 1.0
}

// scoreMOSFET filters and scores one switch candidate. ok is false when the
// part fails the hard filter or the requirement denominators are unusable.
func scoreMOSFET(m types.MOSFET, req types.MOSFETRequirements, margins heuristics.Margins) (score float64, reason string, applied []string, ok bool) {
	minVoltage := req.MaxVoltage * margins.Voltage
	minCurrent := req.MaxCurrent * margins.Current
	if minVoltage <= 0 || minCurrent <= 0 {
		return 0, "", nil, false
	}
	if m.Vds < minVoltage || m.Id < minCurrent {
		return 0, "", nil, false
	}

	score = baseScore
	scale := lossScale(req.FrequencyHz)

	score -= m.RdsOn * 2 * scale
	if scale > 1 {
		applied = append(applied, "Doubled RDS(on) penalty above 100 kHz")
	}

	voltageRatio := m.Vds / minVoltage
	switch {
	case voltageRatio > oversizedThreshold:
		score -= (voltageRatio - oversizedThreshold) * 10
	case voltageRatio >= sweetSpotLow && voltageRatio <= sweetSpotHigh:
		score += sweetSpotBonus
		applied = append(applied, "Voltage rating in 1.2-1.8x sweet spot")
	}

	currentRatio := m.Id / minCurrent
	if currentRatio > oversizedThreshold {
		score -= (currentRatio - oversizedThreshold) * 5
	}

	if req.FrequencyHz > hfThresholdHz && m.Qg > 0 && m.Qg < lowGateChargeNC {
		score += lowGateChargeBonus
		applied = append(applied, "Low gate charge for fast switching")
	}

	reason = fmt.Sprintf("VDS=%gV (%.1fx margin), ID=%gA (%.1fx margin), RDS(on)=%gmΩ. %s",
		m.Vds, voltageRatio, m.Id, currentRatio, m.RdsOn, m.TypicalUse)
	return score, reason, applied, true
}

// scoreOutputCapacitor filters and scores one output filter candidate.
func scoreOutputCapacitor(c types.Capacitor, req types.CapacitorRequirements, margins heuristics.Margins) (score float64, reason string, applied []string, ok bool) {
	minVoltage := req.MaxVoltage * margins.Voltage
	if minVoltage <= 0 || req.CapacitanceUF <= 0 {
		return 0, "", nil, false
	}
	if c.Voltage < minVoltage {
		return 0, "", nil, false
	}
	if !withinToleranceBand(c.CapacitanceUF/req.CapacitanceUF, margins.CapacitanceTolerance) {
		return 0, "", nil, false
	}

	score = baseScore
	score -= math.Abs(c.CapacitanceUF-req.CapacitanceUF) * 0.1

	scale := lossScale(req.FrequencyHz)
	if esr, known := esrValue(c.ESR); known {
		score -= esr * 0.5 * scale
		if scale > 1 {
			applied = append(applied, "Doubled ESR penalty above 100 kHz")
		}
	}

	voltageRatio := c.Voltage / minVoltage
	switch {
	case voltageRatio > oversizedThreshold:
		score -= (voltageRatio - oversizedThreshold) * 10
	case voltageRatio >= sweetSpotLow && voltageRatio <= sweetSpotHigh:
		score += sweetSpotBonus
		applied = append(applied, "Voltage rating in 1.2-1.8x sweet spot")
	}

	dielectric := strings.ToLower(c.Dielectric)
	if req.FrequencyHz > hfThresholdHz {
		if strings.Contains(dielectric, "x7r") || strings.Contains(dielectric, "x5r") || strings.Contains(dielectric, "ceramic") || strings.Contains(dielectric, "mlcc") {
			score += ceramicHFBonus
			applied = append(applied, "Ceramic dielectric suited to >100 kHz switching")
		}
	} else if req.FrequencyHz > 0 {
		if strings.Contains(dielectric, "electrolytic") || strings.Contains(dielectric, "polymer") {
			score += bulkLFBonus
			applied = append(applied, "Bulk capacitance suited to lower-frequency ripple")
		}
	}

	reason = fmt.Sprintf("%gµF at %gV (%.1fx margin). %s, ESR=%smΩ. Suitable for %s",
		c.CapacitanceUF, c.Voltage, voltageRatio, c.Dielectric, c.ESR, c.PrimaryUse)
	return score, reason, applied, true
}

// scoreInputCapacitor filters on the same voltage margin and capacitance band
// as output capacitors, then layers on the input-side guidance adjustments.
func scoreInputCapacitor(c types.InputCapacitor, req types.InputCapacitorRequirements, margins heuristics.Margins) (score float64, reason string, applied []string, ok bool) {
	minVoltage := req.MaxVoltage * margins.Voltage
	if minVoltage <= 0 || req.CapacitanceUF <= 0 {
		return 0, "", nil, false
	}
	if c.Voltage < minVoltage {
		return 0, "", nil, false
	}
	if !withinToleranceBand(c.CapacitanceUF/req.CapacitanceUF, margins.CapacitanceTolerance) {
		return 0, "", nil, false
	}

	score = baseScore
	score -= math.Abs(c.CapacitanceUF-req.CapacitanceUF) * 0.1

	delta, adjustments := heuristics.InputCapacitorAdjustments(c, req)
	score += delta
	applied = append(applied, adjustments...)

	voltageRatio := c.Voltage / minVoltage
	switch {
	case voltageRatio > oversizedThreshold:
		score -= (voltageRatio - oversizedThreshold) * 10
	case voltageRatio >= sweetSpotLow && voltageRatio <= sweetSpotHigh:
		score += sweetSpotBonus
		applied = append(applied, "Voltage rating in 1.2-1.8x sweet spot")
	}

	reason = fmt.Sprintf("%s %gµF at %gV (%.1fx margin). ESR=%gmΩ, ripple rating %gA. %s",
		c.Category, c.CapacitanceUF, c.Voltage, voltageRatio, c.ESR, c.RippleRating, c.Notes)
	return score, reason, applied, true
}

// scoreInductor filters and scores one inductor candidate. A zero saturation
// current means the rating is unknown and does not disqualify the part.
func scoreInductor(l types.Inductor, req types.InductorRequirements, margins heuristics.Margins) (score float64, reason string, applied []string, ok bool) {
	minCurrent := req.MaxCurrent * margins.Current
	if minCurrent <= 0 || req.InductanceUH <= 0 {
		return 0, "", nil, false
	}
	if l.Current < minCurrent {
		return 0, "", nil, false
	}
	if l.SatCurrent > 0 && l.SatCurrent < minCurrent {
		return 0, "", nil, false
	}
	ratio := l.InductanceUH / req.InductanceUH
	if ratio < 1-margins.InductanceTolerance || ratio > 1+margins.InductanceTolerance {
		return 0, "", nil, false
	}

	score = baseScore
	score -= math.Abs(l.InductanceUH-req.InductanceUH) / req.InductanceUH * 50

	scale := lossScale(req.FrequencyHz)
	score -= l.DCR * 0.01 * scale
	if scale > 1 {
		applied = append(applied, "Doubled DCR penalty above 100 kHz")
	}

	currentRatio := l.Current / minCurrent
	switch {
	case currentRatio > oversizedThreshold:
		score -= (currentRatio - oversizedThreshold) * 10
	case currentRatio >= sweetSpotLow && currentRatio <= sweetSpotHigh:
		score += sweetSpotBonus
		applied = append(applied, "Current rating in 1.2-1.8x sweet spot")
	}

	if req.FrequencyHz > hfThresholdHz && strings.Contains(strings.ToLower(l.CoreMaterial), "ferrite") {
		score += ferriteHFBonus
		applied = append(applied, "Ferrite core suited to >100 kHz switching")
	}

	reason = fmt.Sprintf("%gµH, rated for %gA (%.1fx margin), Isat=%gA. DCR=%gmΩ. %s package",
		l.InductanceUH, l.Current, currentRatio, l.SatCurrent, l.DCR, l.Package)
	return score, reason, applied, true
}

// withinToleranceBand checks a value ratio against the symmetric
// multiplicative band [1/tolerance, tolerance].
func withinToleranceBand(ratio, tolerance float64) bool {
	if tolerance < 1 {
		return false
	}
	return ratio >= 1/tolerance && ratio <= tolerance
}

// esrValue parses the free-text ESR column. Known shorthands map to fixed
// milliohm figures; ranges take their lower bound; anything unparseable
// reports not known and earns no penalty.
func esrValue(esr string) (float64, bool) {
	s := strings.ToLower(strings.ReplaceAll(esr, "~", ""))
	s = strings.ReplaceAll(s, "low", "5")
	s = strings.SplitN(s, "-", 2)[0]
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
