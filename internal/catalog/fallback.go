package catalog

import "github.com/powercrux/part-advisor/internal/types"

// Built-in fallback datasets, substituted whenever the CSV source for a part
// family is missing or unusable. The scoring layer never special-cases an
// empty catalog, so these must stay non-empty and electrically sane.

// FallbackMOSFETs returns the built-in MOSFET list.
func FallbackMOSFETs() []types.MOSFET {
	return []types.MOSFET{
		{Name: "BSC016N06NS", Manufacturer: "Infineon", Vds: 60, Id: 150, RdsOn: 1.6, Qg: 44, Package: "SuperSO8", TypicalUse: "Mid-power buck, low loss", EfficiencyRange: "96–98%"},
		{Name: "CSD19505KCS", Manufacturer: "Texas Instruments", Vds: 60, Id: 80, RdsOn: 2.5, Qg: 37, Package: "TO-220", TypicalUse: "Classic synchronous buck", EfficiencyRange: "95–97%"},
		{Name: "IPB017N10N5", Manufacturer: "Infineon", Vds: 100, Id: 120, RdsOn: 1.7, Qg: 70, Package: "D²PAK", TypicalUse: "48V bus robotics converter", EfficiencyRange: "96–97%"},
		{Name: "AOZ5311NQI", Manufacturer: "Alpha & Omega", Vds: 25, Id: 40, RdsOn: 6, Qg: 12, Package: "DFN", TypicalUse: "Compact logic supply buck", EfficiencyRange: "94–96%"},
		{Name: "SiSS22DN", Manufacturer: "Vishay", Vds: 30, Id: 60, RdsOn: 2.2, Qg: 15, Package: "PowerPAK", TypicalUse: "Small robots, drone logic rail", EfficiencyRange: "95–97%"},
		{Name: "NVMFS6H824NL", Manufacturer: "OnSemi", Vds: 80, Id: 50, RdsOn: 4.3, Qg: 38, Package: "SO-8FL", TypicalUse: "Automotive AGV converter", EfficiencyRange: "95–97%"},
		{Name: "BSC340N08NS3G", Manufacturer: "Infineon", Vds: 80, Id: 90, RdsOn: 3.4, Qg: 26, Package: "SuperSO8", TypicalUse: "Mid-range converter", EfficiencyRange: "96–97%"},
		{Name: "CSD19536KCS", Manufacturer: "Texas Instruments", Vds: 100, Id: 100, RdsOn: 2.3, Qg: 45, Package: "TO-220", TypicalUse: "High-efficiency buck", EfficiencyRange: "95–97%"},
		{Name: "IPB65R045CFD7", Manufacturer: "Infineon", Vds: 650, Id: 18, RdsOn: 45, Qg: 29, Package: "TO-220", TypicalUse: "SiC replacement candidate", EfficiencyRange: "94–96%"},
		{Name: "AOZ5332QI", Manufacturer: "Alpha & Omega", Vds: 60, Id: 25, RdsOn: 8, Qg: 0, Package: "QFN (Integrated)", TypicalUse: "Integrated power stage", EfficiencyRange: "94–96%"},
		{Name: "IRLZ44N", Manufacturer: "Infineon (legacy IR)", Vds: 55, Id: 47, RdsOn: 22, Qg: 67, Package: "TO-220", TypicalUse: "Benchmark reference MOSFET", EfficiencyRange: "90–92%"},
		{Name: "NTP65N10", Manufacturer: "OnSemi", Vds: 100, Id: 60, RdsOn: 6.5, Qg: 35, Package: "TO-220", TypicalUse: "Robust mid-range FET", EfficiencyRange: "93–95%"},
		{Name: "BSC057N08NS", Manufacturer: "Infineon", Vds: 80, Id: 70, RdsOn: 5.7, Qg: 40, Package: "SuperSO8", TypicalUse: "Common industrial buck FET", EfficiencyRange: "94–96%"},
		{Name: "SiR158DP", Manufacturer: "Vishay", Vds: 100, Id: 75, RdsOn: 4, Qg: 35, Package: "PowerPAK SO-8", TypicalUse: "Low gate charge FET", EfficiencyRange: "95–96%"},
		{Name: "FDBL9402", Manufacturer: "OnSemi", Vds: 40, Id: 80, RdsOn: 3.6, Qg: 18, Package: "Power56", TypicalUse: "Low-voltage high-efficiency", EfficiencyRange: "96–98%"},
		{Name: "TPHR8504PL", Manufacturer: "Toshiba", Vds: 40, Id: 70, RdsOn: 4.5, Qg: 20, Package: "SOP Advance", TypicalUse: "Toshiba for 12V rails", EfficiencyRange: "95–97%"},
		{Name: "AON6522", Manufacturer: "Alpha & Omega", Vds: 30, Id: 60, RdsOn: 3, Qg: 14, Package: "DFN 5x6", TypicalUse: "Compact low-side FET", EfficiencyRange: "95–97%"},
		{Name: "NTMFS5C628NL", Manufacturer: "OnSemi", Vds: 80, Id: 70, RdsOn: 4.2, Qg: 34, Package: "SO-8FL", TypicalUse: "High frequency efficiency", EfficiencyRange: "95–97%"},
	}
}

// FallbackOutputCapacitors returns the built-in output capacitor list.
func FallbackOutputCapacitors() []types.Capacitor {
	return []types.Capacitor{
		{Part: "C3216X7R1H106K160AC", Manufacturer: "TDK", CapacitanceUF: 10, Voltage: 50, Dielectric: "MLCC X7R", ESR: "~2-5", PrimaryUse: "HF ripple + local decoupling", TempRange: "-55..125"},
		{Part: "C3225X7R1E226M250AB", Manufacturer: "TDK", CapacitanceUF: 22, Voltage: 25, Dielectric: "MLCC X7R", ESR: "~2-5", PrimaryUse: "HF ripple + bulk on 12V", TempRange: "-55..125"},
		{Part: "C3216X7R1H106K160AE", Manufacturer: "TDK", CapacitanceUF: 10, Voltage: 50, Dielectric: "MLCC X7R", ESR: "~2-5", PrimaryUse: "HF ripple + local decoupling", TempRange: "-55..125"},
		{Part: "CGA6P3X7R1E226M250AE", Manufacturer: "TDK", CapacitanceUF: 22, Voltage: 25, Dielectric: "MLCC X7R", ESR: "~2-5", PrimaryUse: "HF ripple + bulk on 12V", TempRange: "-55..125"},
		{Part: "MMASU32MAB7106KPNA01", Manufacturer: "Taiyo Yuden", CapacitanceUF: 10, Voltage: 50, Dielectric: "MLCC X7R", ESR: "~2-5", PrimaryUse: "HF ripple on 24V rail", TempRange: "-55..125"},
		{Part: "MMJCU32MLB7106KPPDT1", Manufacturer: "Taiyo Yuden", CapacitanceUF: 10, Voltage: 50, Dielectric: "MLCC X7R", ESR: "~2-5", PrimaryUse: "HF ripple on 24V rail", TempRange: "-55..125"},
		{Part: "25SVPF330M", Manufacturer: "Panasonic", CapacitanceUF: 330, Voltage: 25, Dielectric: "Polymer (OS-CON)", ESR: "~12-20", PrimaryUse: "Bulk energy + damping (12V)", TempRange: "-55..105"},
		{Part: "63SXV100M", Manufacturer: "Panasonic", CapacitanceUF: 100, Voltage: 63, Dielectric: "Polymer (OS-CON)", ESR: "low", PrimaryUse: "Bulk energy + damping (24V)", TempRange: "-55..125"},
		{Part: "A750KW337M1VAAE020", Manufacturer: "KEMET", CapacitanceUF: 330, Voltage: 35, Dielectric: "Polymer Aluminum", ESR: "20", PrimaryUse: "Bulk energy + damping (24V)", TempRange: "-55..105"},
		{Part: "A750KS227M1EAAE015", Manufacturer: "KEMET", CapacitanceUF: 220, Voltage: 63, Dielectric: "Polymer Aluminum", ESR: "~15", PrimaryUse: "Bulk energy + damping (24V, high margin)", TempRange: "-55..105"},
		{Part: "RPS1C330MCN1GS", Manufacturer: "Nichicon", CapacitanceUF: 33, Voltage: 16, Dielectric: "Polymer Aluminum (SMD)", ESR: "40", PrimaryUse: "Small bulk (12V aux)", TempRange: "-55..105"},
		{Part: "EEU-FS1V331LB", Manufacturer: "Panasonic", CapacitanceUF: 330, Voltage: 35, Dielectric: "Aluminum Electrolytic", ESR: "low", PrimaryUse: "Bulk energy (24V), higher life spec", TempRange: "-55..105"},
	}
}

// FallbackInputCapacitors returns the built-in input capacitor list, covering
// all four construction categories so the category-based heuristics always
// have something to rank.
func FallbackInputCapacitors() []types.InputCapacitor {
	return []types.InputCapacitor{
		{Part: "C3225X7R1H226M250AB", Manufacturer: "TDK", Category: "MLCC", Dielectric: "X7R", CapacitanceUF: 22, Voltage: 50, ESR: 3, ESL: 1.2, RippleRating: 4.0, Package: "1210", CostUSD: 0.65, Availability: "In Stock", Notes: "HF input decoupling, parallel-friendly"},
		{Part: "GRM32ER71H106KA12", Manufacturer: "Murata", Category: "MLCC", Dielectric: "X7R", CapacitanceUF: 10, Voltage: 50, ESR: 4, ESL: 1.0, RippleRating: 3.0, Package: "1210", CostUSD: 0.42, Availability: "In Stock", Notes: "Close to switch node placement"},
		{Part: "25SVPF330M", Manufacturer: "Panasonic", Category: "Polymer", Dielectric: "OS-CON", CapacitanceUF: 330, Voltage: 25, ESR: 15, ESL: 4.5, RippleRating: 5.6, LifetimeHours: 2000, Package: "Radial SMD", CostUSD: 1.85, Availability: "In Stock", Notes: "Bulk input energy on 12V rails"},
		{Part: "A750KW337M1VAAE020", Manufacturer: "KEMET", Category: "Polymer", Dielectric: "Polymer Aluminum", CapacitanceUF: 330, Voltage: 35, ESR: 20, ESL: 5.0, RippleRating: 4.8, LifetimeHours: 4000, Package: "Radial SMD", CostUSD: 2.10, Availability: "In Stock", Notes: "Bulk input energy on 24V rails"},
		{Part: "EEU-FR1V221", Manufacturer: "Panasonic", Category: "Electrolytic", Dielectric: "Aluminum", CapacitanceUF: 220, Voltage: 35, ESR: 90, ESL: 12, RippleRating: 1.45, LifetimeHours: 10000, Package: "Radial", CostUSD: 0.84, Availability: "In Stock", Notes: "Low-cost bulk storage"},
		{Part: "UVR1V471MPD", Manufacturer: "Nichicon", Category: "Electrolytic", Dielectric: "Aluminum", CapacitanceUF: 470, Voltage: 35, ESR: 120, ESL: 14, RippleRating: 1.1, LifetimeHours: 5000, Package: "Radial", CostUSD: 0.66, Availability: "In Stock", Notes: "Bulk storage, surge tolerant"},
		{Part: "B32922C3224M", Manufacturer: "EPCOS/TDK", Category: "Film", Dielectric: "PP", CapacitanceUF: 0.22, Voltage: 305, ESR: 8, ESL: 8, Package: "Box", CostUSD: 0.95, Availability: "In Stock", Notes: "Line-side filtering, long lifetime"},
		{Part: "ECW-FD2W225J", Manufacturer: "Panasonic", Category: "Film", Dielectric: "PP", CapacitanceUF: 2.2, Voltage: 450, ESR: 6, ESL: 9, Package: "Box", CostUSD: 2.40, Availability: "In Stock", Notes: "High-reliability input damping"},
	}
}

// FallbackInductors returns the built-in inductor list.
func FallbackInductors() []types.Inductor {
	return []types.Inductor{
		{Part: "SER2915H-472KL", Manufacturer: "Coilcraft", InductanceUH: 4700, Current: 0.73, DCR: 1850, SatCurrent: 0.95, Package: "SER2915", Shielded: true, CoreMaterial: "Ferrite", TempRange: "-40..125"},
		{Part: "SER2915H-103KL", Manufacturer: "Coilcraft", InductanceUH: 10000, Current: 0.48, DCR: 4200, SatCurrent: 0.62, Package: "SER2915", Shielded: true, CoreMaterial: "Ferrite", TempRange: "-40..125"},
		{Part: "744 043 22", Manufacturer: "Würth Elektronik", InductanceUH: 220, Current: 3.2, DCR: 48, SatCurrent: 4.5, Package: "WE-PD", Shielded: true, CoreMaterial: "Ferrite", TempRange: "-40..125"},
		{Part: "744 043 47", Manufacturer: "Würth Elektronik", InductanceUH: 470, Current: 2.1, DCR: 105, SatCurrent: 3.0, Package: "WE-PD", Shielded: true, CoreMaterial: "Ferrite", TempRange: "-40..125"},
		{Part: "DO3316P-472HC", Manufacturer: "Coilcraft", InductanceUH: 4700, Current: 1.0, DCR: 1200, SatCurrent: 1.3, Package: "DO3316P", Shielded: false, CoreMaterial: "Ferrite", TempRange: "-40..85"},
		{Part: "78F102J-RC", Manufacturer: "Murata", InductanceUH: 1000, Current: 1.5, DCR: 280, SatCurrent: 2.2, Package: "Radial", Shielded: false, CoreMaterial: "Iron Powder", TempRange: "-40..85"},
	}
}
