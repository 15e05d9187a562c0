// Package dataset builds the in-memory BDPR reference data: the contract
// line fixture, the adjustment factor tables and the filter-picker catalogs.
// Generation is deterministic for a given seed so responses are reproducible
// across restarts.
package dataset

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"github.com/ahernandezc/bdpr-api/internal/domain/pricing"
)

const (
	contratoCount   = 250
	proveedorCount  = 42
	contratoBase    = 45000
	proveedorIDBase = 7000
	materialIDBase  = 900000
)

// Master catalogs served to the filter pickers.
var (
	GruposArticulo = []string{"Transformadores", "Conductores", "Herrajes", "Aisladores", "Medición"}
	Centros        = []string{"C100", "C200", "C300", "C400"}
	Almacenes      = []string{"ALM-NTE", "ALM-CEN", "ALM-SUR"}
	Monedas        = []string{"MXN", "USD", "EUR"}
)

// CentroArea maps each center code to its operating area name.
var CentroArea = map[string]string{
	"C100": "Distribución Norte",
	"C200": "Transmisión Centro",
	"C300": "Generación Sur",
	"C400": "Proyectos Estratégicos",
}

// Indice is one entry of the index catalog shown in the UI picker. The
// classification is presentation-only and plays no role in adjustment math.
type Indice struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
}

// IndicesCatalogo returns the published index catalog.
func IndicesCatalogo() []Indice {
	return []Indice{
		{Codigo: pricing.IndiceINPC, Nombre: "INPC México", Tipo: "nacional"},
		{Codigo: pricing.IndiceCPIU, Nombre: "CPI-U (USA)", Tipo: "internacional"},
		{Codigo: pricing.IndiceIPCA, Nombre: "IPCA Eurozona", Tipo: "internacional"},
		{Codigo: "INPP", Nombre: "INPP México", Tipo: "nacional"},
	}
}

// factorRow holds the cumulative factors of all four indices for one base
// period.
type factorRow struct {
	periodo string
	inpc    string
	cpi     string
	ipca    string
	inpp    string
}

var factorRows = []factorRow{
	{"2023-01", "0.16", "0.08", "0.07", "0.14"},
	{"2023-07", "0.12", "0.06", "0.05", "0.11"},
	{"2024-01", "0.09", "0.05", "0.045", "0.08"},
	{"2024-07", "0.06", "0.04", "0.035", "0.055"},
	{"2025-01", "0.035", "0.025", "0.02", "0.03"},
	{"2025-07", "0.02", "0.015", "0.01", "0.018"},
}

// Factores returns the adjustment-factor reference entries for every index
// and base period combination.
func Factores() []pricing.FactorEntry {
	out := make([]pricing.FactorEntry, 0, len(factorRows)*4)
	for _, r := range factorRows {
		out = append(out,
			pricing.FactorEntry{Indice: pricing.IndiceINPC, Periodo: r.periodo, FactorHastaUltimo: decimal.RequireFromString(r.inpc)},
			pricing.FactorEntry{Indice: pricing.IndiceCPIU, Periodo: r.periodo, FactorHastaUltimo: decimal.RequireFromString(r.cpi)},
			pricing.FactorEntry{Indice: pricing.IndiceIPCA, Periodo: r.periodo, FactorHastaUltimo: decimal.RequireFromString(r.ipca)},
			pricing.FactorEntry{Indice: "INPP", Periodo: r.periodo, FactorHastaUltimo: decimal.RequireFromString(r.inpp)},
		)
	}
	return out
}

// Contratos generates the contract-line fixture. The row skeleton is a fixed
// arithmetic pattern; provider display names come from a seeded faker so the
// same seed always yields the same dataset.
func Contratos(seed int64) []pricing.ContractLine {
	faker := gofakeit.New(seed)
	proveedores := make([]string, proveedorCount)
	for i := range proveedores {
		proveedores[i] = faker.Company()
	}

	rows := make([]pricing.ContractLine, contratoCount)
	for i := 0; i < contratoCount; i++ {
		year := 2019 + i%7
		month := i%12 + 1
		centro := pick(Centros, i*7)
		cantidad := 10 + i%23
		precio := round2(1200 + float64(i%17)*54.33)
		importe := round2(precio * float64(cantidad))
		periodo := "2024-01"
		if i%2 == 1 {
			periodo = "2025-01"
		}

		rows[i] = pricing.ContractLine{
			ID:                   i + 1,
			Area:                 CentroArea[centro],
			NoSolcon:             fmt.Sprintf("SOL-%06d", 100000+i),
			NoContrato:           fmt.Sprintf("%d%03d", contratoBase, i%80),
			FechaContrato:        fmt.Sprintf("%d-%02d-15", year, month),
			Pos:                  i%10 + 1,
			Material:             materialIDBase + i,
			TextoBreve:           fmt.Sprintf("Material estratégico %d", i+1),
			Centro:               centro,
			NoProveedor:          proveedorIDBase + i%proveedorCount,
			NombreProveedor:      proveedores[i%proveedorCount],
			GrupoArticulos:       pick(GruposArticulo, i*5),
			PosicionReparto:      i%4 + 1,
			CantidadReparto:      cantidad,
			FechaEntrega:         fmt.Sprintf("%d-%02d-28", year, month),
			Almacen:              pick(Almacenes, i*3),
			UMA:                  "PZA",
			Moneda:               pick(Monedas, i*11),
			PrecioUnitario:       precio,
			ImporteTotal:         importe,
			PeriodoInicialFactor: periodo,
			Anio:                 year,
		}
	}
	return rows
}

func pick(values []string, seed int) string {
	return values[seed%len(values)]
}

func round2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}
