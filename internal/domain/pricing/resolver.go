package pricing

// Index codes known to the adjustment engine.
const (
	IndiceINPC = "INPC"
	IndiceCPIU = "CPI-U"
	IndiceIPCA = "CP0000EZ19M086NEST"
)

// Origin tags reported in every query response.
const (
	OrigenManual      = "manual"
	OrigenAutoMoneda  = "auto_moneda"
	OrigenDefaultINPC = "default_inpc"
)

// Advisory messages shown to the operator when the currency selection does
// not allow an unambiguous automatic suggestion.
const (
	advertenciaOverrideMultiMoneda = "Se detectaron múltiples monedas; el índice manual se aplicó a toda la consulta."
	advertenciaMultiMoneda         = "Para sugerencia automática por moneda, selecciona solo una moneda. Se aplicó INPC por defecto."
)

// IndexResolution reports which index governs a query and why. Suggested and
// applied are kept distinct on purpose: the UI shows the currency-derived
// suggestion even when a manual override is in force.
type IndexResolution struct {
	IndiceSugeridoPorMoneda string  `json:"indice_sugerido_por_moneda"`
	IndiceAplicado          string  `json:"indice_aplicado"`
	IndiceOrigen            string  `json:"indice_origen"`
	Advertencia             *string `json:"advertencia"`
}

// SuggestedIndex maps a currency to its price index: USD follows CPI-U, EUR
// the Eurozone HICP series, everything else (MXN included) INPC.
func SuggestedIndex(moneda string) string {
	switch moneda {
	case "USD":
		return IndiceCPIU
	case "EUR":
		return IndiceIPCA
	default:
		return IndiceINPC
	}
}

// ResolveIndex decides the applied index for a query. Precedence: manual
// override, then automatic suggestion when exactly one currency is selected,
// then the INPC default. It never fails and has no side effects.
func ResolveIndex(monedas []string, override string) IndexResolution {
	if override != "" {
		sugerido := IndiceINPC
		if len(monedas) == 1 {
			sugerido = SuggestedIndex(monedas[0])
		}
		res := IndexResolution{
			IndiceSugeridoPorMoneda: sugerido,
			IndiceAplicado:          override,
			IndiceOrigen:            OrigenManual,
		}
		if len(monedas) > 1 {
			res.Advertencia = advisory(advertenciaOverrideMultiMoneda)
		}
		return res
	}

	if len(monedas) == 1 {
		sugerido := SuggestedIndex(monedas[0])
		return IndexResolution{
			IndiceSugeridoPorMoneda: sugerido,
			IndiceAplicado:          sugerido,
			IndiceOrigen:            OrigenAutoMoneda,
		}
	}

	res := IndexResolution{
		IndiceSugeridoPorMoneda: IndiceINPC,
		IndiceAplicado:          IndiceINPC,
		IndiceOrigen:            OrigenDefaultINPC,
	}
	if len(monedas) > 1 {
		res.Advertencia = advisory(advertenciaMultiMoneda)
	}
	return res
}

func advisory(msg string) *string {
	return &msg
}
