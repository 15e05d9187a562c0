// Package pricing implements the BDPR query engine: index resolution,
// dataset filtering, currency-indexed price adjustment, sorting and
// aggregation over the contract-line reference dataset.
package pricing

import "github.com/shopspring/decimal"

// ContractLine is a single row of the contract-line dataset. Rows are
// immutable once loaded; adjusted columns are derived per query and never
// written back.
type ContractLine struct {
	ID                   int     `json:"id"`
	Area                 string  `json:"area"`
	NoSolcon             string  `json:"no_solcon"`
	NoContrato           string  `json:"no_contrato"`
	FechaContrato        string  `json:"fecha_contrato"`
	Pos                  int     `json:"pos"`
	Material             int     `json:"material"`
	TextoBreve           string  `json:"texto_breve"`
	Centro               string  `json:"ce"`
	NoProveedor          int     `json:"no_proveedor"`
	NombreProveedor      string  `json:"nombre_proveedor"`
	GrupoArticulos       string  `json:"grupo_articulos"`
	PosicionReparto      int     `json:"posicion_reparto"`
	CantidadReparto      int     `json:"cantidad_reparto"`
	FechaEntrega         string  `json:"fecha_entrega"`
	Almacen              string  `json:"almacen"`
	UMA                  string  `json:"uma"`
	Moneda               string  `json:"mon"`
	PrecioUnitario       float64 `json:"precio_unitario"`
	ImporteTotal         float64 `json:"importe_total"`
	PeriodoInicialFactor string  `json:"periodo_inicial_factor"`
	Anio                 int     `json:"anio"`
}

// AdjustedRow is a contract line plus the columns derived from the applied
// index. A nil pointer means the adjustment was not computable for the row's
// base period, which is distinct from a zero value.
type AdjustedRow struct {
	ContractLine
	FactorAjuste              *float64 `json:"factor_ajuste"`
	PrecioUnitarioActualizado *float64 `json:"precio_unitario_actualizado"`
	ImporteTotalActualizado   *float64 `json:"importe_total_actualizado"`
}

// FactorEntry is one row of the adjustment-factor reference table: the
// cumulative fractional price change for an index from a base period up to
// the latest published period.
type FactorEntry struct {
	Indice            string
	Periodo           string
	FactorHastaUltimo decimal.Decimal
}

type factorKey struct {
	indice  string
	periodo string
}

// FactorTable resolves (index code, period key) to a cumulative adjustment
// factor. It is built once at startup and read-only afterwards, so lookups
// are safe from concurrent queries.
type FactorTable struct {
	factors map[factorKey]decimal.Decimal
}

// NewFactorTable builds the lookup table. Later entries with a duplicate
// (index, period) key overwrite earlier ones.
func NewFactorTable(entries []FactorEntry) *FactorTable {
	t := &FactorTable{factors: make(map[factorKey]decimal.Decimal, len(entries))}
	for _, e := range entries {
		t.factors[factorKey{indice: e.Indice, periodo: e.Periodo}] = e.FactorHastaUltimo
	}
	return t
}

// Lookup returns the factor for the given index and base period. The second
// return value is false when no factor is published for that combination.
func (t *FactorTable) Lookup(indice, periodo string) (decimal.Decimal, bool) {
	f, ok := t.factors[factorKey{indice: indice, periodo: periodo}]
	return f, ok
}

// Len reports how many factor entries the table holds.
func (t *FactorTable) Len() int {
	return len(t.factors)
}
