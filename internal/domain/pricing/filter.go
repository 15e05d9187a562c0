package pricing

import (
	"bytes"
	"strconv"
	"strings"
)

// NumericText is an identifier filter that arrives as either a JSON string
// or a JSON number, depending on the client. Unparsable values make the
// constraint inert rather than failing the request.
type NumericText string

// UnmarshalJSON accepts both quoted and bare numeric literals.
func (n *NumericText) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if string(b) == "null" {
		*n = ""
		return nil
	}
	*n = NumericText(b)
	return nil
}

// value returns the parsed number and whether the constraint is active.
func (n NumericText) value() (int, bool) {
	if n == "" {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(n)))
	if err != nil {
		return 0, false
	}
	return v, true
}

// FilterSet holds the optional predicates of a query. Absent or empty fields
// impose no constraint; all present constraints are ANDed together.
type FilterSet struct {
	// Combined search over contract and request numbers (either may match).
	NoContratoSolcon string `json:"no_contrato_solcon"`

	NoContrato      string      `json:"no_contrato"`
	NoSolcon        string      `json:"no_solcon"`
	NoProveedor     NumericText `json:"no_proveedor"`
	NombreProveedor string      `json:"nombre_proveedor"`
	TextoBreve      string      `json:"texto_breve"`
	NoMaterial      NumericText `json:"no_material"`
	GrupoArticulo   []string    `json:"grupo_articulo"`
	Centro          []string    `json:"centro"`
	Almacen         []string    `json:"almacen"`
	Anio            []string    `json:"anio"`
	Moneda          []string    `json:"moneda"`
}

// ApplyFilters returns the order-preserving subsequence of rows satisfying
// every active criterion. Rows are never mutated.
func ApplyFilters(rows []ContractLine, f FilterSet) []ContractLine {
	out := make([]ContractLine, 0, len(rows))
	for _, r := range rows {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f FilterSet) matches(r ContractLine) bool {
	if q := f.NoContratoSolcon; q != "" {
		if !strings.Contains(r.NoContrato, q) && !strings.Contains(r.NoSolcon, q) {
			return false
		}
	}
	if f.NoContrato != "" && !strings.Contains(r.NoContrato, f.NoContrato) {
		return false
	}
	if f.NoSolcon != "" && !strings.Contains(r.NoSolcon, f.NoSolcon) {
		return false
	}
	if v, ok := f.NoProveedor.value(); ok && v != r.NoProveedor {
		return false
	}
	if f.NombreProveedor != "" && !containsFold(r.NombreProveedor, f.NombreProveedor) {
		return false
	}
	if f.TextoBreve != "" && !containsFold(r.TextoBreve, f.TextoBreve) {
		return false
	}
	if v, ok := f.NoMaterial.value(); ok && v != r.Material {
		return false
	}
	if len(f.GrupoArticulo) > 0 && !contains(f.GrupoArticulo, r.GrupoArticulos) {
		return false
	}
	if len(f.Centro) > 0 && !contains(f.Centro, r.Centro) {
		return false
	}
	if len(f.Almacen) > 0 && !contains(f.Almacen, r.Almacen) {
		return false
	}
	if len(f.Anio) > 0 && !contains(f.Anio, strconv.Itoa(r.Anio)) {
		return false
	}
	if len(f.Moneda) > 0 && !contains(f.Moneda, r.Moneda) {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
