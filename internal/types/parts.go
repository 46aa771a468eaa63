// Package types provides type definitions for part records, requirements, and
// suggestions used throughout the part-advisor system.
package types

import "fmt"

// ComponentKind identifies one of the four supported part families.
type ComponentKind string

const (
	KindMOSFET          ComponentKind = "mosfet"
	KindOutputCapacitor ComponentKind = "output_capacitor"
	KindInputCapacitor  ComponentKind = "input_capacitor"
	KindInductor        ComponentKind = "inductor"
)

// Part is the shared capability set of every catalog record. Electrical
// qualification and scoring are the engine's business; a Part only knows how
// to identify and describe itself.
//
// Numeric fields on concrete records use 0 as the "unknown / not applicable"
// sentinel, and string fields use "". Callers must not treat a zero current,
// capacitance, or ESR as a real measurement. Records are immutable after
// catalog load.
type Part interface {
	PartNumber() string
	Maker() string
	Kind() ComponentKind
	Describe() string
}

// MOSFET is a switching transistor record.
type MOSFET struct {
	Name            string  `json:"name"`
	Manufacturer    string  `json:"manufacturer"`
	Vds             float64 `json:"vds_v"`      // drain-source voltage rating (V)
	Id              float64 `json:"id_a"`       // continuous drain current (A)
	RdsOn           float64 `json:"rdson_mohm"` // on-resistance (mΩ)
	Qg              float64 `json:"qg_nc"`      // total gate charge (nC), 0 = unknown
	Package         string  `json:"package"`
	TypicalUse      string  `json:"typical_use"`
	EfficiencyRange string  `json:"efficiency_range"`
}

func (m MOSFET) PartNumber() string  { return m.Name }
func (m MOSFET) Maker() string       { return m.Manufacturer }
func (m MOSFET) Kind() ComponentKind { return KindMOSFET }

func (m MOSFET) Describe() string {
	return fmt.Sprintf("%s (%s): VDS=%gV, ID=%gA, RDS(on)=%gmΩ, %s",
		m.Name, m.Manufacturer, m.Vds, m.Id, m.RdsOn, m.Package)
}

// Capacitor is an output capacitor record. ESR is free text as supplied by
// datasheets ("~2-5", "low", "20"); the engine extracts a numeric estimate
// from it best-effort.
type Capacitor struct {
	Part          string  `json:"part_number"`
	Manufacturer  string  `json:"manufacturer"`
	CapacitanceUF float64 `json:"capacitance_uf"`
	Voltage       float64 `json:"voltage_v"`
	Dielectric    string  `json:"type"`
	ESR           string  `json:"esr_mohm"`
	PrimaryUse    string  `json:"primary_use"`
	TempRange     string  `json:"temp_range"`
}

func (c Capacitor) PartNumber() string  { return c.Part }
func (c Capacitor) Maker() string       { return c.Manufacturer }
func (c Capacitor) Kind() ComponentKind { return KindOutputCapacitor }

func (c Capacitor) Describe() string {
	return fmt.Sprintf("%s (%s): %gµF at %gV, %s, ESR=%smΩ",
		c.Part, c.Manufacturer, c.CapacitanceUF, c.Voltage, c.Dielectric, c.ESR)
}

// InputCapacitor is an input-side capacitor record with the richer field set
// the input-capacitor database carries.
type InputCapacitor struct {
	Part          string  `json:"part_number"`
	Manufacturer  string  `json:"manufacturer"`
	Category      string  `json:"category"` // MLCC, Polymer, Electrolytic, Film
	Dielectric    string  `json:"dielectric"`
	CapacitanceUF float64 `json:"capacitance_uf"`
	Voltage       float64 `json:"voltage_v"`
	ESR           float64 `json:"esr_mohm"`       // 0 = unknown
	ESL           float64 `json:"esl_nh"`         // 0 = unknown
	RippleRating  float64 `json:"ripple_a"`       // rated ripple current (A), 0 = unknown
	LifetimeHours float64 `json:"lifetime_hours"` // 0 = unknown
	Package       string  `json:"package"`
	CostUSD       float64 `json:"cost_usd"` // 0 = unknown
	Availability  string  `json:"availability"`
	Notes         string  `json:"notes"`
}

func (c InputCapacitor) PartNumber() string  { return c.Part }
func (c InputCapacitor) Maker() string       { return c.Manufacturer }
func (c InputCapacitor) Kind() ComponentKind { return KindInputCapacitor }

func (c InputCapacitor) Describe() string {
	return fmt.Sprintf("%s (%s): %s %gµF at %gV, ESR=%gmΩ, %s",
		c.Part, c.Manufacturer, c.Category, c.CapacitanceUF, c.Voltage, c.ESR, c.Package)
}

// Inductor is a power inductor record.
type Inductor struct {
	Part         string  `json:"part_number"`
	Manufacturer string  `json:"manufacturer"`
	InductanceUH float64 `json:"inductance_uh"`
	Current      float64 `json:"current_a"`     // continuous current rating (A)
	DCR          float64 `json:"dcr_mohm"`      // DC resistance (mΩ)
	SatCurrent   float64 `json:"sat_current_a"` // saturation current (A)
	Package      string  `json:"package"`
	Shielded     bool    `json:"shielded"`
	CoreMaterial string  `json:"core_material"`
	TempRange    string  `json:"temp_range"`
}

func (l Inductor) PartNumber() string  { return l.Part }
func (l Inductor) Maker() string       { return l.Manufacturer }
func (l Inductor) Kind() ComponentKind { return KindInductor }

func (l Inductor) Describe() string {
	return fmt.Sprintf("%s (%s): %gµH, %gA (Isat=%gA), DCR=%gmΩ, %s",
		l.Part, l.Manufacturer, l.InductanceUH, l.Current, l.SatCurrent, l.DCR, l.Package)
}
