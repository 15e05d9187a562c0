package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func sortFixture() []AdjustedRow {
	return []AdjustedRow{
		{ContractLine: ContractLine{ID: 1, NoContrato: "45000010", ImporteTotal: 300}, ImporteTotalActualizado: fptr(330)},
		{ContractLine: ContractLine{ID: 2, NoContrato: "45000009", ImporteTotal: 100}, ImporteTotalActualizado: nil},
		{ContractLine: ContractLine{ID: 3, NoContrato: "45000100", ImporteTotal: 200}, ImporteTotalActualizado: fptr(210)},
	}
}

func rowIDs(rows []AdjustedRow) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestSortRows_EmptyFieldPreservesOrder(t *testing.T) {
	got := SortRows(sortFixture(), SortSpec{})
	assert.Equal(t, []int{1, 2, 3}, rowIDs(got))
}

func TestSortRows_UnknownFieldPreservesOrder(t *testing.T) {
	got := SortRows(sortFixture(), SortSpec{Field: "no_such_column", Direction: SortDesc})
	assert.Equal(t, []int{1, 2, 3}, rowIDs(got))
}

func TestSortRows_NumericAscending(t *testing.T) {
	got := SortRows(sortFixture(), SortSpec{Field: "importe_total", Direction: SortAsc})
	assert.Equal(t, []int{2, 3, 1}, rowIDs(got))
}

func TestSortRows_NumericDescending(t *testing.T) {
	got := SortRows(sortFixture(), SortSpec{Field: "importe_total", Direction: SortDesc})
	assert.Equal(t, []int{1, 3, 2}, rowIDs(got))
}

func TestSortRows_NullsLastRegardlessOfDirection(t *testing.T) {
	asc := SortRows(sortFixture(), SortSpec{Field: "importe_total_actualizado", Direction: SortAsc})
	assert.Equal(t, []int{3, 1, 2}, rowIDs(asc))

	desc := SortRows(sortFixture(), SortSpec{Field: "importe_total_actualizado", Direction: SortDesc})
	assert.Equal(t, []int{1, 3, 2}, rowIDs(desc))
}

func TestSortRows_TextNaturalNumericOrdering(t *testing.T) {
	// Lexicographically "45000100" < "45000009" is false, but numerically
	// aware collation must order 9 < 10 < 100.
	got := SortRows(sortFixture(), SortSpec{Field: "no_contrato", Direction: SortAsc})
	assert.Equal(t, []int{2, 1, 3}, rowIDs(got))

	got = SortRows(sortFixture(), SortSpec{Field: "no_contrato", Direction: SortDesc})
	assert.Equal(t, []int{3, 1, 2}, rowIDs(got))
}

func TestSortRows_TextLocaleAware(t *testing.T) {
	rows := []AdjustedRow{
		{ContractLine: ContractLine{ID: 1, NombreProveedor: "Ñandú Industrial"}},
		{ContractLine: ContractLine{ID: 2, NombreProveedor: "Zeta Herrajes"}},
		{ContractLine: ContractLine{ID: 3, NombreProveedor: "Norte Eléctrico"}},
	}
	got := SortRows(rows, SortSpec{Field: "nombre_proveedor", Direction: SortAsc})
	// Spanish collation places Ñ between N and O.
	assert.Equal(t, []int{3, 1, 2}, rowIDs(got))
}

func TestSortRows_DoesNotMutateInput(t *testing.T) {
	rows := sortFixture()
	_ = SortRows(rows, SortSpec{Field: "importe_total", Direction: SortDesc})
	require.Equal(t, []int{1, 2, 3}, rowIDs(rows))
}

func TestSortRows_IsStable(t *testing.T) {
	rows := []AdjustedRow{
		{ContractLine: ContractLine{ID: 1, ImporteTotal: 100, Moneda: "MXN"}},
		{ContractLine: ContractLine{ID: 2, ImporteTotal: 100, Moneda: "USD"}},
		{ContractLine: ContractLine{ID: 3, ImporteTotal: 100, Moneda: "EUR"}},
	}
	got := SortRows(rows, SortSpec{Field: "importe_total", Direction: SortAsc})
	assert.Equal(t, []int{1, 2, 3}, rowIDs(got))
}
