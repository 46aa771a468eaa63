package heuristics

import (
	"fmt"

	"github.com/powercrux/part-advisor/internal/types"
)

// Category-construction bonuses for input capacitors: MLCC is best for HF
// decoupling, polymer is a good all-rounder, film is premium but costly,
// electrolytic is bulk-only.
var inputCapCategoryBonus = map[string]float64{
	"MLCC":         10,
	"Polymer":      8,
	"Film":         6,
	"Electrolytic": 4,
}

// InputCapacitorAdjustments applies the input-capacitor design heuristics to
// one candidate and returns the signed score delta plus a tag per rule that
// fired. Pure and deterministic.
func InputCapacitorAdjustments(cap types.InputCapacitor, req types.InputCapacitorRequirements) (float64, []string) {
	var delta float64
	var applied []string

	if bonus, ok := inputCapCategoryBonus[cap.Category]; ok && bonus > 0 {
		delta += bonus
		applied = append(applied, fmt.Sprintf("%s category (+%g)", cap.Category, bonus))
	}

	// Voltage derating tiers. req.MaxVoltage is validated positive upstream.
	if req.MaxVoltage > 0 {
		ratio := cap.Voltage / req.MaxVoltage
		switch {
		case ratio >= 2.0:
			delta += 15
			applied = append(applied, fmt.Sprintf("Excellent voltage derating (%.1fx)", ratio))
		case ratio >= 1.5:
			delta += 10
			applied = append(applied, fmt.Sprintf("Good voltage derating (%.1fx)", ratio))
		case ratio >= 1.2:
			delta += 5
			applied = append(applied, fmt.Sprintf("Adequate voltage derating (%.1fx)", ratio))
		default:
			delta -= 10
			applied = append(applied, fmt.Sprintf("Poor voltage derating (%.1fx)", ratio))
		}
	}

	// Ripple handling: a rated part scores best; with only an ESR figure we
	// estimate capability, and with neither the part earns nothing.
	switch {
	case cap.RippleRating > 0:
		if cap.RippleRating >= req.RippleCurrent {
			delta += 10
			applied = append(applied, fmt.Sprintf("Adequate ripple rating (%gA >= %.1fA)", cap.RippleRating, req.RippleCurrent))
		} else {
			delta += 5
			applied = append(applied, fmt.Sprintf("Marginal ripple rating (%gA < %.1fA)", cap.RippleRating, req.RippleCurrent))
		}
	case cap.ESR > 0:
		estimated := (cap.Voltage * 0.1) / (cap.ESR / 1000)
		if estimated >= req.RippleCurrent {
			delta += 5
			applied = append(applied, "Estimated adequate ripple capability from ESR")
		} else {
			applied = append(applied, "May have insufficient ripple capability")
		}
	}

	// Frequency regime.
	if req.FrequencyHz > 100000 {
		switch {
		case cap.Category == "MLCC" && cap.ESL > 0 && cap.ESL < 5.0:
			delta += 8
			applied = append(applied, "Low ESL excellent for high frequency")
		case cap.Category == "Polymer" || cap.Category == "Film":
			delta += 5
			applied = append(applied, "Good high-frequency performance")
		}
	} else if cap.Category == "Electrolytic" || cap.Category == "Polymer" {
		delta += 5
		applied = append(applied, "Good for lower frequency bulk capacitance")
	}

	// ESR optimization. Zero means unknown, not a perfect part.
	if cap.ESR > 0 {
		if cap.ESR < 10 {
			delta += 5
			applied = append(applied, "Low ESR for efficiency")
		} else if cap.ESR > 100 {
			delta -= 3
			applied = append(applied, "Higher ESR may impact efficiency")
		}
	}

	return delta, applied
}
