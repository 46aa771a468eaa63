package types

import "github.com/go-playground/validator/v10"

// Source selects where the engine looks for candidate parts.
type Source string

const (
	SourceModeLocal Source = "local" // filter and score the local catalog
	SourceModeWeb   Source = "web"   // delegate to distributor lookup
)

// MOSFETRequirements are the electrical targets for a MOSFET query.
type MOSFETRequirements struct {
	MaxVoltage  float64 `json:"max_voltage_v" validate:"required,gt=0"`
	MaxCurrent  float64 `json:"max_current_a" validate:"required,gt=0"`
	FrequencyHz float64 `json:"frequency_hz" validate:"gte=0"`
	Mode        Source  `json:"mode,omitempty"`
}

// CapacitorRequirements are the targets for an output capacitor query.
type CapacitorRequirements struct {
	CapacitanceUF float64 `json:"required_capacitance_uf" validate:"required,gt=0"`
	MaxVoltage    float64 `json:"max_voltage_v" validate:"required,gt=0"`
	FrequencyHz   float64 `json:"frequency_hz" validate:"gte=0"`
	Mode          Source  `json:"mode,omitempty"`
}

// InputCapacitorRequirements are the targets for an input capacitor query.
// RippleCurrent is the estimated input RMS ripple the part must tolerate.
type InputCapacitorRequirements struct {
	CapacitanceUF float64 `json:"required_capacitance_uf" validate:"required,gt=0"`
	MaxVoltage    float64 `json:"max_voltage_v" validate:"required,gt=0"`
	RippleCurrent float64 `json:"ripple_current_a" validate:"gte=0"`
	FrequencyHz   float64 `json:"frequency_hz" validate:"gte=0"`
	Mode          Source  `json:"mode,omitempty"`
}

// InductorRequirements are the targets for an inductor query.
type InductorRequirements struct {
	InductanceUH float64 `json:"required_inductance_uh" validate:"required,gt=0"`
	MaxCurrent   float64 `json:"max_current_a" validate:"required,gt=0"`
	FrequencyHz  float64 `json:"frequency_hz" validate:"gte=0"`
	Mode         Source  `json:"mode,omitempty"`
}

// Validate validates the MOSFETRequirements using the validator.
func (r *MOSFETRequirements) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the CapacitorRequirements using the validator.
func (r *CapacitorRequirements) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the InputCapacitorRequirements using the validator.
func (r *InputCapacitorRequirements) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the InductorRequirements using the validator.
func (r *InductorRequirements) Validate() error {
	return validator.New().Struct(r)
}
