// Package excel exporta el reporte mensual de rentabilidad como planilla XLSX.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/dto"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/pkg/money"
)

// ReportExporter vuelca un reporte mensual a XLSX.
type ReportExporter struct{}

// NewReportExporter construye el exportador.
func NewReportExporter() *ReportExporter {
	return &ReportExporter{}
}

// ExportMonthly genera la planilla y devuelve sus bytes. Una fila por producto
// (orden del reporte: ingreso descendente) más una fila de totales al pie.
func (e *ReportExporter) ExportMonthly(report *dto.MonthlyReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Reporte"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	setCell := func(cell string, value interface{}) {
		_ = f.SetCellValue(sheet, cell, value)
	}

	setCell("A1", fmt.Sprintf("Rentabilidad %02d/%d", report.Month, report.Year))
	setCell("A2", fmt.Sprintf("Pedidos cobrados: %d", report.OrderCount))

	// Cabecera
	setCell("A4", "Producto")
	setCell("B4", "Cantidad")
	setCell("C4", "Ingreso")
	setCell("D4", "Costo")
	setCell("E4", "Ganancia")
	setCell("F4", "Margen")

	row := 5
	for _, line := range report.PerProduct {
		setCell(fmt.Sprintf("A%d", row), line.Name)
		setCell(fmt.Sprintf("B%d", row), line.Quantity.String())
		setCell(fmt.Sprintf("C%d", row), money.FormatARS(line.Revenue))
		setCell(fmt.Sprintf("D%d", row), money.FormatARS(line.Cost))
		setCell(fmt.Sprintf("E%d", row), money.FormatARS(line.Profit))
		setCell(fmt.Sprintf("F%d", row), money.FormatPercent(line.Margin))
		row++
	}

	// Totales
	row++
	setCell(fmt.Sprintf("A%d", row), "TOTAL")
	setCell(fmt.Sprintf("C%d", row), money.FormatARS(report.Revenue))
	setCell(fmt.Sprintf("D%d", row), money.FormatARS(report.Cost))
	setCell(fmt.Sprintf("E%d", row), money.FormatARS(report.Profit))
	setCell(fmt.Sprintf("F%d", row), money.FormatPercent(report.Margin))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir planilla: %w", err)
	}
	return buf.Bytes(), nil
}
