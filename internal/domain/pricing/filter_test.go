package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []ContractLine {
	return []ContractLine{
		{ID: 1, NoContrato: "45000001", NoSolcon: "SOL-100001", NoProveedor: 7001, NombreProveedor: "Aceros del Norte", TextoBreve: "Transformador trifásico", Material: 900001, GrupoArticulos: "Transformadores", Centro: "C100", Almacen: "ALM-NTE", Anio: 2023, Moneda: "MXN"},
		{ID: 2, NoContrato: "45000002", NoSolcon: "SOL-100002", NoProveedor: 7002, NombreProveedor: "Conductores Baja", TextoBreve: "Cable de aluminio", Material: 900002, GrupoArticulos: "Conductores", Centro: "C200", Almacen: "ALM-CEN", Anio: 2024, Moneda: "USD"},
		{ID: 3, NoContrato: "45000003", NoSolcon: "SOL-200003", NoProveedor: 7003, NombreProveedor: "Herrajes y Más", TextoBreve: "Herraje galvanizado", Material: 900003, GrupoArticulos: "Herrajes", Centro: "C100", Almacen: "ALM-SUR", Anio: 2024, Moneda: "EUR"},
	}
}

func ids(rows []ContractLine) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestApplyFilters_NoCriteria(t *testing.T) {
	rows := filterFixture()
	got := ApplyFilters(rows, FilterSet{})
	assert.Equal(t, []int{1, 2, 3}, ids(got))
}

func TestApplyFilters_CombinedContratoSolcon(t *testing.T) {
	rows := filterFixture()

	t.Run("matches contract number", func(t *testing.T) {
		got := ApplyFilters(rows, FilterSet{NoContratoSolcon: "45000002"})
		assert.Equal(t, []int{2}, ids(got))
	})

	t.Run("matches request number", func(t *testing.T) {
		got := ApplyFilters(rows, FilterSet{NoContratoSolcon: "SOL-200"})
		assert.Equal(t, []int{3}, ids(got))
	})

	t.Run("identifier match is case-sensitive", func(t *testing.T) {
		got := ApplyFilters(rows, FilterSet{NoContratoSolcon: "sol-200"})
		assert.Empty(t, got)
	})
}

func TestApplyFilters_TextFields(t *testing.T) {
	rows := filterFixture()

	t.Run("provider name is case-insensitive", func(t *testing.T) {
		got := ApplyFilters(rows, FilterSet{NombreProveedor: "aceros"})
		assert.Equal(t, []int{1}, ids(got))
	})

	t.Run("short text is case-insensitive", func(t *testing.T) {
		got := ApplyFilters(rows, FilterSet{TextoBreve: "CABLE"})
		assert.Equal(t, []int{2}, ids(got))
	})
}

func TestApplyFilters_NumericFields(t *testing.T) {
	rows := filterFixture()

	t.Run("provider id", func(t *testing.T) {
		got := ApplyFilters(rows, FilterSet{NoProveedor: "7002"})
		assert.Equal(t, []int{2}, ids(got))
	})

	t.Run("material id", func(t *testing.T) {
		got := ApplyFilters(rows, FilterSet{NoMaterial: "900003"})
		assert.Equal(t, []int{3}, ids(got))
	})

	t.Run("unparsable value is an absent constraint", func(t *testing.T) {
		got := ApplyFilters(rows, FilterSet{NoProveedor: "not-a-number"})
		assert.Equal(t, []int{1, 2, 3}, ids(got))
	})
}

func TestApplyFilters_SetMembership(t *testing.T) {
	rows := filterFixture()

	got := ApplyFilters(rows, FilterSet{Centro: []string{"C100"}})
	assert.Equal(t, []int{1, 3}, ids(got))

	got = ApplyFilters(rows, FilterSet{Anio: []string{"2024"}})
	assert.Equal(t, []int{2, 3}, ids(got))

	got = ApplyFilters(rows, FilterSet{Moneda: []string{"USD", "EUR"}})
	assert.Equal(t, []int{2, 3}, ids(got))
}

func TestApplyFilters_CriteriaAreANDed(t *testing.T) {
	rows := filterFixture()
	got := ApplyFilters(rows, FilterSet{
		Centro: []string{"C100"},
		Anio:   []string{"2024"},
	})
	assert.Equal(t, []int{3}, ids(got))
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	rows := filterFixture()
	before := make([]ContractLine, len(rows))
	copy(before, rows)

	_ = ApplyFilters(rows, FilterSet{Moneda: []string{"USD"}})
	require.Equal(t, before, rows)
}

func TestNumericText_UnmarshalJSON(t *testing.T) {
	var n NumericText
	require.NoError(t, n.UnmarshalJSON([]byte(`"7001"`)))
	assert.Equal(t, NumericText("7001"), n)

	require.NoError(t, n.UnmarshalJSON([]byte(`7001`)))
	assert.Equal(t, NumericText("7001"), n)

	require.NoError(t, n.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, NumericText(""), n)
}
