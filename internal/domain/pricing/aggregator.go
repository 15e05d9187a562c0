package pricing

import "github.com/shopspring/decimal"

// KPIs are the dashboard headline counts, always computed over the full
// filtered set so they do not move when the page window changes.
type KPIs struct {
	TotalContratosDistinct int `json:"total_contratos_distinct"`
	ProveedoresDistinct    int `json:"proveedores_distinct"`
}

// Totales are the sum aggregates over the full filtered set. Rows without a
// computable adjustment contribute zero to the adjusted sum.
type Totales struct {
	ImporteTotalSum            float64 `json:"importe_total_sum"`
	ImporteTotalActualizadoSum float64 `json:"importe_total_actualizado_sum"`
}

// Aggregate computes distinct-entity counts and amount sums over rows. Sums
// are accumulated at full precision and rounded to 2 places once at the end.
func Aggregate(rows []AdjustedRow) (KPIs, Totales) {
	contratos := make(map[string]struct{})
	proveedores := make(map[int]struct{})
	base := decimal.Zero
	actualizado := decimal.Zero

	for _, r := range rows {
		contratos[r.NoContrato] = struct{}{}
		proveedores[r.NoProveedor] = struct{}{}
		base = base.Add(decimal.NewFromFloat(r.ImporteTotal))
		if r.ImporteTotalActualizado != nil {
			actualizado = actualizado.Add(decimal.NewFromFloat(*r.ImporteTotalActualizado))
		}
	}

	baseSum, _ := base.Round(2).Float64()
	actSum, _ := actualizado.Round(2).Float64()

	return KPIs{
			TotalContratosDistinct: len(contratos),
			ProveedoresDistinct:    len(proveedores),
		}, Totales{
			ImporteTotalSum:            baseSum,
			ImporteTotalActualizadoSum: actSum,
		}
}
