package distributor

import (
	"fmt"

	"github.com/powercrux/part-advisor/internal/types"
)

// CircuitParams carries the converter operating point used to build
// distributor search terms.
type CircuitParams struct {
	Vin       float64
	Vout      float64
	Iout      float64
	Frequency float64
}

func (p CircuitParams) withDefaults() CircuitParams {
	if p.Vin <= 0 {
		p.Vin = 12
	}
	if p.Vout <= 0 {
		p.Vout = 5
	}
	if p.Iout <= 0 {
		p.Iout = 2
	}
	if p.Frequency <= 0 {
		p.Frequency = 100000
	}
	return p
}

// SearchTerms builds a distributor search term per component kind from the
// circuit operating point. Voltage and current figures carry the standard
// safety margins so listings returned are already in the usable range.
func SearchTerms(params CircuitParams) map[types.ComponentKind]string {
	p := params.withDefaults()

	// 50% voltage and 100% peak-current headroom for the switch
	mosfetVoltage := int(p.Vin * 1.5)
	mosfetCurrent := int(p.Iout * 2)

	inputCapVoltage := int(p.Vin * 1.2)
	outputCapVoltage := int(p.Vout * 1.5)

	// Rough inductance estimate at 30% ripple current
	estimatedInductance := int((p.Vin - p.Vout) / (0.3 * p.Iout * p.Frequency) * 1e6)

	return map[types.ComponentKind]string{
		types.KindMOSFET:          fmt.Sprintf("MOSFET N-Channel %dV %dA TO-220", mosfetVoltage, mosfetCurrent),
		types.KindInputCapacitor:  fmt.Sprintf("Electrolytic Capacitor %dV 100uF Low ESR", inputCapVoltage),
		types.KindOutputCapacitor: fmt.Sprintf("Ceramic Capacitor %dV 10uF X7R", outputCapVoltage),
		types.KindInductor:        fmt.Sprintf("Power Inductor %duH %dA Shielded", estimatedInductance, int(p.Iout*1.3)),
	}
}
