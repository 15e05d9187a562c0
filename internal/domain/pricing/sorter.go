package pricing

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort directions accepted in a sort spec. Anything other than "desc" sorts
// ascending.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortSpec names the column and direction for ordering query results.
type SortSpec struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type fieldKind int

const (
	fieldUnknown fieldKind = iota
	fieldNumeric
	fieldText
)

var sortableFields = map[string]fieldKind{
	"id":                          fieldNumeric,
	"pos":                         fieldNumeric,
	"material":                    fieldNumeric,
	"no_proveedor":                fieldNumeric,
	"posicion_reparto":            fieldNumeric,
	"cantidad_reparto":            fieldNumeric,
	"precio_unitario":             fieldNumeric,
	"importe_total":               fieldNumeric,
	"anio":                        fieldNumeric,
	"factor_ajuste":               fieldNumeric,
	"precio_unitario_actualizado": fieldNumeric,
	"importe_total_actualizado":   fieldNumeric,
	"area":                        fieldText,
	"no_solcon":                   fieldText,
	"no_contrato":                 fieldText,
	"fecha_contrato":              fieldText,
	"texto_breve":                 fieldText,
	"ce":                          fieldText,
	"nombre_proveedor":            fieldText,
	"grupo_articulos":             fieldText,
	"fecha_entrega":               fieldText,
	"almacen":                     fieldText,
	"uma":                         fieldText,
	"mon":                         fieldText,
	"periodo_inicial_factor":      fieldText,
}

// SortRows orders rows by the requested column without mutating the input
// slice. An empty or unknown field preserves the input order. Rows with a
// nil value on the sort column always land last, regardless of direction.
// Text columns use Spanish collation with natural numeric sub-ordering, so
// "45000009" sorts before "45000010".
func SortRows(rows []AdjustedRow, spec SortSpec) []AdjustedRow {
	out := make([]AdjustedRow, len(rows))
	copy(out, rows)

	kind, ok := sortableFields[spec.Field]
	if spec.Field == "" || !ok {
		return out
	}

	dir := 1
	if spec.Direction == SortDesc {
		dir = -1
	}

	col := collate.New(language.Spanish, collate.Numeric)
	sort.SliceStable(out, func(i, j int) bool {
		return compareRows(out[i], out[j], spec.Field, kind, dir, col) < 0
	})
	return out
}

func compareRows(a, b AdjustedRow, field string, kind fieldKind, dir int, col *collate.Collator) int {
	switch kind {
	case fieldNumeric:
		av, aok := numericValue(a, field)
		bv, bok := numericValue(b, field)
		if !aok && !bok {
			return 0
		}
		if !aok {
			return 1
		}
		if !bok {
			return -1
		}
		switch {
		case av < bv:
			return -dir
		case av > bv:
			return dir
		default:
			return 0
		}
	case fieldText:
		return col.CompareString(textValue(a, field), textValue(b, field)) * dir
	default:
		return 0
	}
}

func numericValue(r AdjustedRow, field string) (float64, bool) {
	switch field {
	case "id":
		return float64(r.ID), true
	case "pos":
		return float64(r.Pos), true
	case "material":
		return float64(r.Material), true
	case "no_proveedor":
		return float64(r.NoProveedor), true
	case "posicion_reparto":
		return float64(r.PosicionReparto), true
	case "cantidad_reparto":
		return float64(r.CantidadReparto), true
	case "precio_unitario":
		return r.PrecioUnitario, true
	case "importe_total":
		return r.ImporteTotal, true
	case "anio":
		return float64(r.Anio), true
	case "factor_ajuste":
		return deref(r.FactorAjuste)
	case "precio_unitario_actualizado":
		return deref(r.PrecioUnitarioActualizado)
	case "importe_total_actualizado":
		return deref(r.ImporteTotalActualizado)
	}
	return 0, false
}

func textValue(r AdjustedRow, field string) string {
	switch field {
	case "area":
		return r.Area
	case "no_solcon":
		return r.NoSolcon
	case "no_contrato":
		return r.NoContrato
	case "fecha_contrato":
		return r.FechaContrato
	case "texto_breve":
		return r.TextoBreve
	case "ce":
		return r.Centro
	case "nombre_proveedor":
		return r.NombreProveedor
	case "grupo_articulos":
		return r.GrupoArticulos
	case "fecha_entrega":
		return r.FechaEntrega
	case "almacen":
		return r.Almacen
	case "uma":
		return r.UMA
	case "mon":
		return r.Moneda
	case "periodo_inicial_factor":
		return r.PeriodoInicialFactor
	}
	return ""
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
