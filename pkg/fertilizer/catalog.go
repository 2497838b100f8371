package fertilizer

// Catalog returns the builtin candidates: the Jack's Nutrients trio and
// generic calcium sulfate (gypsum). P and K values are elemental
// conversions of the labeled P2O5/K2O percentages.
func Catalog() []Fertilizer {
	return []Fertilizer{
		{
			Name:    "Jacks 5-12-26 Part A",
			Formula: "NPK blend",
			Source:  "Jack's Nutrients",
			Purity:  1.0,
			Nutrients: map[string]float64{
				"N (NO3-)": 5.0,
				"P":        5.24,
				"K":        21.58,
				"Mg":       6.3,
				"S":        8.5,
				"B":        0.05,
				"Fe":       0.3,
				"Zn":       0.015,
				"Mn":       0.05,
				"Cu":       0.015,
				"Mo":       0.019,
			},
			ConcType: "0",
		},
		{
			Name:    "Jacks 0-12-26 Part A",
			Formula: "PK blend",
			Source:  "Jack's Nutrients",
			Purity:  1.0,
			Nutrients: map[string]float64{
				"P":  5.24,
				"K":  21.58,
				"Mg": 6.0,
				"S":  13.0,
				"B":  0.05,
				"Fe": 0.3,
				"Zn": 0.015,
				"Mn": 0.05,
				"Cu": 0.015,
				"Mo": 0.0009,
			},
			ConcType: "0",
		},
		{
			Name:    "Jacks Calcium Nitrate",
			Formula: "Ca(NO3)2",
			Source:  "Jack's Nutrients",
			Purity:  1.0,
			Nutrients: map[string]float64{
				"N (NO3-)": 15.5,
				"Ca":       19.0,
			},
			ConcType: "1",
		},
		{
			Name:    "Calcium Sulfate",
			Formula: "CaSO4·2H2O",
			Source:  "Generic",
			Purity:  1.0,
			Nutrients: map[string]float64{
				"Ca": 22.0,
				"S":  17.0,
			},
			ConcType: "",
		},
	}
}
