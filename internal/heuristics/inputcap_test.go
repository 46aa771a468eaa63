package heuristics

import (
	"testing"

	"github.com/powercrux/part-advisor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestInputCapacitorAdjustments_MLCCHighFrequency(t *testing.T) {
	cap := types.InputCapacitor{
		Part: "GRM32ER71H106KA12", Manufacturer: "Murata", Category: "MLCC",
		CapacitanceUF: 10, Voltage: 50, ESR: 4, ESL: 1.0, RippleRating: 3.0,
	}
	req := types.InputCapacitorRequirements{
		CapacitanceUF: 10, MaxVoltage: 12, RippleCurrent: 2.0, FrequencyHz: 500000,
	}

	delta, applied := InputCapacitorAdjustments(cap, req)

	// category +10, derating >=2x +15, ripple rated +10, low ESL HF +8, low ESR +5
	assert.InDelta(t, 48, delta, 1e-9)
	assert.Contains(t, applied[0], "MLCC category")
	assert.Contains(t, applied[1], "Excellent voltage derating")
}

func TestInputCapacitorAdjustments_PoorDeratingPenalized(t *testing.T) {
	cap := types.InputCapacitor{Part: "X", Category: "Electrolytic", Voltage: 13, ESR: 120}
	req := types.InputCapacitorRequirements{CapacitanceUF: 100, MaxVoltage: 12, FrequencyHz: 50000}

	delta, applied := InputCapacitorAdjustments(cap, req)

	// category +4, poor derating -10, ESR-estimated ripple capability +5
	// (13*0.1/0.12 = 10.8A covers the 0A target), low-freq bulk +5, high ESR -3
	assert.InDelta(t, 1, delta, 1e-9)
	assert.Contains(t, applied, "Higher ESR may impact efficiency")
}

func TestInputCapacitorAdjustments_UnknownFieldsEarnNothing(t *testing.T) {
	cap := types.InputCapacitor{Part: "Y", Category: "MLCC", Voltage: 50}
	req := types.InputCapacitorRequirements{CapacitanceUF: 10, MaxVoltage: 12, RippleCurrent: 2, FrequencyHz: 200000}

	delta, applied := InputCapacitorAdjustments(cap, req)

	// category +10, derating +15; ESR/ESL/ripple all unknown sentinels: no
	// ripple bonus, no ESL bonus, no ESR bonus.
	assert.InDelta(t, 25, delta, 1e-9)
	for _, tag := range applied {
		assert.NotContains(t, tag, "ESL")
		assert.NotContains(t, tag, "Low ESR")
	}
}

func TestInputCapacitorAdjustments_Deterministic(t *testing.T) {
	cap := FallbackSample()
	req := types.InputCapacitorRequirements{CapacitanceUF: 330, MaxVoltage: 12, RippleCurrent: 3, FrequencyHz: 65000}

	d1, a1 := InputCapacitorAdjustments(cap, req)
	d2, a2 := InputCapacitorAdjustments(cap, req)

	assert.Equal(t, d1, d2)
	assert.Equal(t, a1, a2)
}

// FallbackSample returns a representative polymer input capacitor fixture.
func FallbackSample() types.InputCapacitor {
	return types.InputCapacitor{
		Part: "25SVPF330M", Manufacturer: "Panasonic", Category: "Polymer",
		CapacitanceUF: 330, Voltage: 25, ESR: 15, ESL: 4.5, RippleRating: 5.6,
	}
}
