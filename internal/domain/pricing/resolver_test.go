package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestedIndex(t *testing.T) {
	assert.Equal(t, IndiceCPIU, SuggestedIndex("USD"))
	assert.Equal(t, IndiceIPCA, SuggestedIndex("EUR"))
	assert.Equal(t, IndiceINPC, SuggestedIndex("MXN"))
	assert.Equal(t, IndiceINPC, SuggestedIndex(""))
	assert.Equal(t, IndiceINPC, SuggestedIndex("GBP"))
}

func TestResolveIndex_ManualOverride(t *testing.T) {
	t.Run("override wins over single currency", func(t *testing.T) {
		res := ResolveIndex([]string{"USD"}, "INPP")
		assert.Equal(t, "INPP", res.IndiceAplicado)
		assert.Equal(t, OrigenManual, res.IndiceOrigen)
		// The currency-derived suggestion is still reported alongside.
		assert.Equal(t, IndiceCPIU, res.IndiceSugeridoPorMoneda)
		assert.Nil(t, res.Advertencia)
	})

	t.Run("override with multiple currencies warns", func(t *testing.T) {
		res := ResolveIndex([]string{"USD", "EUR"}, "INPP")
		assert.Equal(t, "INPP", res.IndiceAplicado)
		assert.Equal(t, OrigenManual, res.IndiceOrigen)
		assert.Equal(t, IndiceINPC, res.IndiceSugeridoPorMoneda)
		require.NotNil(t, res.Advertencia)
		assert.NotEmpty(t, *res.Advertencia)
	})

	t.Run("override with no currency suggests INPC", func(t *testing.T) {
		res := ResolveIndex(nil, "CPI-U")
		assert.Equal(t, IndiceCPIU, res.IndiceAplicado)
		assert.Equal(t, OrigenManual, res.IndiceOrigen)
		assert.Equal(t, IndiceINPC, res.IndiceSugeridoPorMoneda)
		assert.Nil(t, res.Advertencia)
	})
}

func TestResolveIndex_AutoMoneda(t *testing.T) {
	tests := []struct {
		moneda string
		want   string
	}{
		{"USD", IndiceCPIU},
		{"EUR", IndiceIPCA},
		{"MXN", IndiceINPC},
	}
	for _, tt := range tests {
		t.Run(tt.moneda, func(t *testing.T) {
			res := ResolveIndex([]string{tt.moneda}, "")
			assert.Equal(t, tt.want, res.IndiceAplicado)
			assert.Equal(t, tt.want, res.IndiceSugeridoPorMoneda)
			assert.Equal(t, OrigenAutoMoneda, res.IndiceOrigen)
			assert.Nil(t, res.Advertencia)
		})
	}
}

func TestResolveIndex_DefaultINPC(t *testing.T) {
	t.Run("no currency selected", func(t *testing.T) {
		res := ResolveIndex(nil, "")
		assert.Equal(t, IndiceINPC, res.IndiceAplicado)
		assert.Equal(t, IndiceINPC, res.IndiceSugeridoPorMoneda)
		assert.Equal(t, OrigenDefaultINPC, res.IndiceOrigen)
		assert.Nil(t, res.Advertencia)
	})

	t.Run("multiple currencies warn", func(t *testing.T) {
		res := ResolveIndex([]string{"MXN", "USD", "EUR"}, "")
		assert.Equal(t, IndiceINPC, res.IndiceAplicado)
		assert.Equal(t, OrigenDefaultINPC, res.IndiceOrigen)
		require.NotNil(t, res.Advertencia)
		assert.NotEmpty(t, *res.Advertencia)
	})
}
