package distributor

import "github.com/powercrux/part-advisor/internal/types"

// Fixed fallback datasets, substituted whenever a live lookup fails or
// yields nothing. The parts are real and electrically plausible so the
// pipeline always returns demo-quality data instead of an error.

type fallbackPart struct {
	part  string
	mfg   string
	desc  string
	price string
	stock string
}

var mouserFallback = map[types.ComponentKind][]fallbackPart{
	types.KindMOSFET: {
		{"IRF540NPBF", "Infineon Technologies", "MOSFET N-CH 100V 33A TO-220AB", "$1.85", ""},
		{"IRLB8721PBF", "Infineon Technologies", "MOSFET N-CH 30V 62A TO-220AB", "$2.45", ""},
		{"STP36NF06L", "STMicroelectronics", "MOSFET N-CH 60V 30A TO-220", "$1.92", ""},
		{"FQP30N06L", "ON Semiconductor", "MOSFET N-CH 60V 32A TO-220", "$2.15", ""},
		{"IRFZ44NPBF", "Infineon Technologies", "MOSFET N-CH 55V 49A TO-220AB", "$1.68", ""},
	},
	types.KindOutputCapacitor: {
		{"EEU-FR1V101", "Panasonic", "CAP ALUM 100UF 20% 35V RADIAL", "$0.84", ""},
		{"UVR1V101MPD", "Nichicon", "CAP ALUM 100UF 20% 35V RADIAL", "$0.91", ""},
		{"25SVP47M", "Rubycon", "CAP ALUM 47UF 20% 25V RADIAL", "$0.52", ""},
		{"ECA-1VHG221", "Panasonic", "CAP ALUM 220UF 20% 35V RADIAL", "$1.25", ""},
		{"URS1E221MPD", "Nichicon", "CAP ALUM 220UF 20% 25V RADIAL", "$1.18", ""},
	},
	types.KindInductor: {
		{"SRR1260-220M", "Bourns Inc.", "FIXED IND 22UH 2.3A 65 MOHM", "$1.89", ""},
		{"SRN6045-100M", "Bourns Inc.", "FIXED IND 10UH 4.5A 23 MOHM", "$1.45", ""},
		{"CDRH104R-470MC", "Sumida", "FIXED IND 47UH 1.8A 160 MOHM", "$2.34", ""},
		{"SRR1005-100M", "Bourns Inc.", "FIXED IND 10UH 0.9A 290 MOHM", "$0.95", ""},
		{"CDRH125-220M", "Sumida", "FIXED IND 22UH 2.8A 75 MOHM", "$2.12", ""},
	},
}

var digikeyFallback = map[types.ComponentKind][]fallbackPart{
	types.KindMOSFET: {
		{"IRLB8721PBF-ND", "Infineon Technologies", "MOSFET N-CH 30V 62A TO-220AB", "$2.52", "2,456"},
		{"IRF540NPBF-ND", "Infineon Technologies", "MOSFET N-CH 100V 33A TO-220AB", "$1.91", "1,823"},
		{"STP36NF06L-ND", "STMicroelectronics", "MOSFET N-CH 60V 30A TO-220", "$1.98", "3,145"},
		{"FQP30N06L-ND", "ON Semiconductor", "MOSFET N-CH 60V 32A TO-220", "$2.22", "987"},
		{"IRFZ44NPBF-ND", "Infineon Technologies", "MOSFET N-CH 55V 49A TO-220AB", "$1.74", "1,567"},
	},
	types.KindOutputCapacitor: {
		{"P5555-ND", "Panasonic", "CAP ALUM 100UF 20% 35V RADIAL", "$0.87", "4,532"},
		{"493-1795-ND", "Nichicon", "CAP ALUM 100UF 20% 35V RADIAL", "$0.94", "2,876"},
		{"1189-1583-ND", "Rubycon", "CAP ALUM 47UF 20% 25V RADIAL", "$0.55", "6,234"},
		{"P966-ND", "Panasonic", "CAP ALUM 220UF 20% 35V RADIAL", "$1.29", "1,987"},
		{"493-2105-ND", "Nichicon", "CAP ALUM 220UF 20% 25V RADIAL", "$1.21", "3,456"},
	},
	types.KindInductor: {
		{"SRR1260-220MCT-ND", "Bourns Inc.", "FIXED IND 22UH 2.3A 65MOHM SMD", "$1.95", "1,234"},
		{"SRN6045-100MCT-ND", "Bourns Inc.", "FIXED IND 10UH 4.5A 23MOHM SMD", "$1.50", "2,567"},
		{"CDRH104R-470MC-ND", "Sumida", "FIXED IND 47UH 1.8A 160MOHM SMD", "$2.42", "876"},
		{"SRR1005-100MCT-ND", "Bourns Inc.", "FIXED IND 10UH 0.9A 290MOHM SMD", "$0.98", "4,321"},
		{"CDRH125-220MC-ND", "Sumida", "FIXED IND 22UH 2.8A 75MOHM SMD", "$2.19", "1,543"},
	},
}

// fallbackKind collapses the input capacitor family onto the capacitor
// fallback table, which covers both roles.
func fallbackKind(kind types.ComponentKind) types.ComponentKind {
	if kind == types.KindInputCapacitor {
		return types.KindOutputCapacitor
	}
	return kind
}

// FallbackComponents returns the deterministic fallback list for one
// distributor and component kind.
func FallbackComponents(distributor string, kind types.ComponentKind) []types.WebComponent {
	var table map[types.ComponentKind][]fallbackPart
	switch distributor {
	case types.DistributorDigikey:
		table = digikeyFallback
	default:
		table = mouserFallback
	}

	parts := table[fallbackKind(kind)]
	components := make([]types.WebComponent, 0, len(parts))
	for _, p := range parts {
		availability := "In Stock"
		if p.stock != "" {
			availability = "In Stock (" + p.stock + " available)"
		}
		components = append(components, types.WebComponent{
			PartNumber:   p.part,
			Manufacturer: p.mfg,
			Description:  p.desc,
			Price:        p.price,
			Availability: availability,
			Distributor:  distributor,
			FromFallback: true,
		})
	}
	return components
}
