package pricing

import "github.com/shopspring/decimal"

// AdjustRow derives the updated price columns for one contract line under
// the applied index. When no factor is published for the row's base period
// the derived columns stay nil. Amounts are computed with decimal arithmetic
// and rounded to 2 places, half away from zero. Pure and independent per
// row, so callers may fan rows out across goroutines.
func AdjustRow(row ContractLine, factors *FactorTable, indiceAplicado string) AdjustedRow {
	out := AdjustedRow{ContractLine: row}

	factor, ok := factors.Lookup(indiceAplicado, row.PeriodoInicialFactor)
	if !ok {
		return out
	}

	f, _ := factor.Float64()
	out.FactorAjuste = &f

	mult := decimal.NewFromInt(1).Add(factor)
	precio, _ := decimal.NewFromFloat(row.PrecioUnitario).Mul(mult).Round(2).Float64()
	importe, _ := decimal.NewFromFloat(row.ImporteTotal).Mul(mult).Round(2).Float64()
	out.PrecioUnitarioActualizado = &precio
	out.ImporteTotalActualizado = &importe
	return out
}

// AdjustRows adjusts every row in order.
func AdjustRows(rows []ContractLine, factors *FactorTable, indiceAplicado string) []AdjustedRow {
	out := make([]AdjustedRow, len(rows))
	for i, r := range rows {
		out[i] = AdjustRow(r, factors, indiceAplicado)
	}
	return out
}
