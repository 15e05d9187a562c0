package export

import (
	"fmt"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/ahernandezc/bdpr-api/internal/domain/pricing"
)

const sheetName = "BDPR"

var xlsxHeader = []interface{}{
	"No. Contrato", "No. Solcon", "Fecha contrato", "Pos", "Material",
	"Texto breve", "Ce", "Área", "No. Proveedor", "Proveedor",
	"Grupo artículos", "Cantidad", "Fecha entrega", "Almacén", "UMA",
	"Mon", "Precio unitario", "Importe total", "Periodo inicial", "Año",
	"Factor ajuste", "Precio actualizado", "Importe actualizado",
}

// writeXLSX renders the full result set as a workbook. Money columns are
// formatted in the row's own currency.
func writeXLSX(w io.Writer, rows []pricing.AdjustedRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		row := []interface{}{
			r.NoContrato, r.NoSolcon, r.FechaContrato, r.Pos, r.Material,
			r.TextoBreve, r.Centro, r.Area, r.NoProveedor, r.NombreProveedor,
			r.GrupoArticulos, r.CantidadReparto, r.FechaEntrega, r.Almacen, r.UMA,
			r.Moneda, displayMoney(r.PrecioUnitario, r.Moneda), displayMoney(r.ImporteTotal, r.Moneda),
			r.PeriodoInicialFactor, r.Anio,
			optionalCell(r.FactorAjuste), optionalMoney(r.PrecioUnitarioActualizado, r.Moneda), optionalMoney(r.ImporteTotalActualizado, r.Moneda),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("export: write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

// displayMoney renders an amount in its currency, e.g. "$1,254.33".
func displayMoney(amount float64, code string) string {
	cents := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, code).Display()
}

func optionalMoney(amount *float64, code string) interface{} {
	if amount == nil {
		return nil
	}
	return displayMoney(*amount, code)
}

func optionalCell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
