// Package fertilizer defines the candidate records fed into the substances
// table: their normalized shape, the builtin catalog, and CSV ingestion.
package fertilizer

// ElementKeys is the fixed set of nutrient columns in the substances table,
// in schema order. Every key is a field name in the table; percentages are
// elemental (P2O5/K2O already converted).
var ElementKeys = []string{
	"N (NO3-)", "N (NH4+)", "P", "K", "Mg", "Ca", "S", "B",
	"Fe", "Zn", "Mn", "Cu", "Mo", "Na", "Si", "Cl",
}

// Fertilizer is one candidate record in its normalized shape. Name is the
// deduplication key (matched case-insensitively against the table).
type Fertilizer struct {
	Name      string
	Formula   string
	Source    string
	Purity    float64
	Nutrients map[string]float64 // element key -> elemental percent
	IsLiquid  bool
	Density   float64
	Cost      float64
	ConcType  string
}

// FieldValues flattens the candidate into the field-name-to-value map the
// record encoder consumes. Elements missing from Nutrients encode as 0.
func (f Fertilizer) FieldValues() map[string]any {
	values := map[string]any{
		"Name":     f.Name,
		"Formula":  f.Formula,
		"Source":   f.Source,
		"Purity":   f.Purity,
		"isLiquid": f.IsLiquid,
		"Density":  f.Density,
		"Cost":     f.Cost,
		"ConcType": f.ConcType,
	}
	for _, key := range ElementKeys {
		values[key] = f.Nutrients[key]
	}
	return values
}
