package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/ahernandezc/bdpr-api/internal/domain/pricing"
)

// csvRow flattens an adjusted row into the column layout of the downloadable
// file. Non-computable adjustments export as empty cells, not zeros.
type csvRow struct {
	NoContrato                string `csv:"no_contrato"`
	NoSolcon                  string `csv:"no_solcon"`
	FechaContrato             string `csv:"fecha_contrato"`
	Pos                       int    `csv:"pos"`
	Material                  int    `csv:"material"`
	TextoBreve                string `csv:"texto_breve"`
	Centro                    string `csv:"ce"`
	Area                      string `csv:"area"`
	NoProveedor               int    `csv:"no_proveedor"`
	NombreProveedor           string `csv:"nombre_proveedor"`
	GrupoArticulos            string `csv:"grupo_articulos"`
	CantidadReparto           int    `csv:"cantidad_reparto"`
	FechaEntrega              string `csv:"fecha_entrega"`
	Almacen                   string `csv:"almacen"`
	UMA                       string `csv:"uma"`
	Moneda                    string `csv:"mon"`
	PrecioUnitario            string `csv:"precio_unitario"`
	ImporteTotal              string `csv:"importe_total"`
	PeriodoInicialFactor      string `csv:"periodo_inicial_factor"`
	Anio                      int    `csv:"anio"`
	FactorAjuste              string `csv:"factor_ajuste"`
	PrecioUnitarioActualizado string `csv:"precio_unitario_actualizado"`
	ImporteTotalActualizado   string `csv:"importe_total_actualizado"`
}

func writeCSV(w io.Writer, rows []pricing.AdjustedRow) error {
	out := make([]csvRow, len(rows))
	for i, r := range rows {
		out[i] = csvRow{
			NoContrato:                r.NoContrato,
			NoSolcon:                  r.NoSolcon,
			FechaContrato:             r.FechaContrato,
			Pos:                       r.Pos,
			Material:                  r.Material,
			TextoBreve:                r.TextoBreve,
			Centro:                    r.Centro,
			Area:                      r.Area,
			NoProveedor:               r.NoProveedor,
			NombreProveedor:           r.NombreProveedor,
			GrupoArticulos:            r.GrupoArticulos,
			CantidadReparto:           r.CantidadReparto,
			FechaEntrega:              r.FechaEntrega,
			Almacen:                   r.Almacen,
			UMA:                       r.UMA,
			Moneda:                    r.Moneda,
			PrecioUnitario:            formatAmount(r.PrecioUnitario),
			ImporteTotal:              formatAmount(r.ImporteTotal),
			PeriodoInicialFactor:      r.PeriodoInicialFactor,
			Anio:                      r.Anio,
			FactorAjuste:              formatOptional(r.FactorAjuste, 4),
			PrecioUnitarioActualizado: formatOptional(r.PrecioUnitarioActualizado, 2),
			ImporteTotalActualizado:   formatOptional(r.ImporteTotalActualizado, 2),
		}
	}
	if err := gocsv.Marshal(&out, w); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatOptional(v *float64, decimals int) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}
