// Package calc provides the closed-form converter equations whose outputs
// feed the recommendation engine. The functions are pure: same inputs, same
// results.
package calc

import (
	"math"

	"github.com/go-playground/validator/v10"
)

// BuckInputs are the operating parameters for a Buck converter design.
// All values must be positive.
type BuckInputs struct {
	VInMin        float64 `json:"v_in_min" validate:"required,gt=0"`
	VInMax        float64 `json:"v_in_max" validate:"required,gt=0"`
	VOutMin       float64 `json:"v_out_min" validate:"required,gt=0"`
	VOutMax       float64 `json:"v_out_max" validate:"required,gt=0"`
	POutMax       float64 `json:"p_out_max" validate:"required,gt=0"`
	Efficiency    float64 `json:"efficiency" validate:"required,gt=0,lte=1"`
	SwitchingFreq float64 `json:"switching_freq" validate:"required,gt=0"`
	VRippleMax    float64 `json:"v_ripple_max" validate:"required,gt=0"`
	VInRipple     float64 `json:"v_in_ripple" validate:"required,gt=0"`
	IOutRipple    float64 `json:"i_out_ripple" validate:"required,gt=0"`
	VOvershoot    float64 `json:"v_overshoot" validate:"required,gt=0"`
	VUndershoot   float64 `json:"v_undershoot" validate:"required,gt=0"`
	ILoadStep     float64 `json:"i_loadstep" validate:"required,gt=0"`
}

// Validate checks that all input parameters are positive and consistent.
func (in *BuckInputs) Validate() error {
	return validator.New().Struct(in)
}

// BuckResults are the calculated component values for a Buck converter.
// Inductance and capacitances are in SI base units (H, F).
type BuckResults struct {
	Inductance        float64 `json:"inductance_h"`
	OutputCapacitance float64 `json:"output_capacitance_f"`
	InputCapacitance  float64 `json:"input_capacitance_f"`
	DutyCycleMax      float64 `json:"duty_cycle_max"`
}

// CalculateBuck computes the required inductance, output capacitance, input
// capacitance, and maximum duty cycle for the given operating point.
//
//	L     = V_out·(1 − D) / (f_s·ΔI)
//	C_out = ΔI / (8·f_s·ΔV)
//	C_in  = I_out·D / (f_s·ΔV_in)
func CalculateBuck(in BuckInputs) (BuckResults, error) {
	if err := in.Validate(); err != nil {
		return BuckResults{}, err
	}

	dutyCycleMax := in.VOutMax / in.VInMax
	iOutMax := in.POutMax / in.VOutMin

	inductance := (in.VOutMax * (1 - dutyCycleMax)) / (in.SwitchingFreq * in.IOutRipple)
	outputCapacitance := in.IOutRipple / (8 * in.SwitchingFreq * in.VRippleMax)
	inputCapacitance := (iOutMax * dutyCycleMax) / (in.SwitchingFreq * in.VInRipple)

	return BuckResults{
		Inductance:        inductance,
		OutputCapacitance: outputCapacitance,
		InputCapacitance:  inputCapacitance,
		DutyCycleMax:      dutyCycleMax,
	}, nil
}

// MaxOutputCurrent returns the worst-case output current for the design,
// drawn at minimum output voltage.
func MaxOutputCurrent(in BuckInputs) float64 {
	return in.POutMax / in.VOutMin
}

// InputRippleCurrent estimates the RMS ripple current the input capacitor
// must tolerate. For a Buck converter the worst case is D = 0.5 where the
// RMS ripple approaches I_out/2; the general form is I_out·sqrt(D·(1−D)).
func InputRippleCurrent(in BuckInputs) float64 {
	d := in.VOutMax / in.VInMax
	return MaxOutputCurrent(in) * math.Sqrt(d*(1-d))
}

// PFCInputs are the operating parameters for a PFC front-end design.
type PFCInputs struct {
	VInMin        float64 `json:"v_in_min" validate:"required,gt=0"`
	VInMax        float64 `json:"v_in_max" validate:"required,gt=0"`
	VOutMin       float64 `json:"v_out_min" validate:"required,gt=0"`
	VOutMax       float64 `json:"v_out_max" validate:"required,gt=0"`
	POutMax       float64 `json:"p_out_max" validate:"required,gt=0"`
	Efficiency    float64 `json:"efficiency" validate:"required,gt=0,lte=1"`
	SwitchingFreq float64 `json:"switching_freq" validate:"required,gt=0"`
	LineFreqMin   float64 `json:"line_freq_min" validate:"required,gt=0"`
	VRippleMax    float64 `json:"v_ripple_max" validate:"required,gt=0"`
}

// Validate checks that all input parameters are positive and consistent.
func (in *PFCInputs) Validate() error {
	return validator.New().Struct(in)
}

// PFCResults are the calculated component values for a PFC circuit.
type PFCResults struct {
	Inductance    float64 `json:"inductance_h"`
	Capacitance   float64 `json:"capacitance_f"`
	RippleCurrent float64 `json:"ripple_current_a"`
}

// CalculatePFC computes PFC boost component values using a 20% input ripple
// current assumption.
func CalculatePFC(in PFCInputs) (PFCResults, error) {
	if err := in.Validate(); err != nil {
		return PFCResults{}, err
	}

	pInMax := in.POutMax / in.Efficiency
	iInMax := pInMax / in.VInMin
	deltaI := iInMax * 0.2

	inductance := (in.VInMin * (in.VOutMin - in.VInMin)) /
		(in.VOutMin * in.SwitchingFreq * deltaI)
	capacitance := in.POutMax /
		(2 * math.Pi * in.LineFreqMin * in.VOutMin * in.VRippleMax)

	return PFCResults{
		Inductance:    inductance,
		Capacitance:   capacitance,
		RippleCurrent: deltaI,
	}, nil
}
