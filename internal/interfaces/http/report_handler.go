package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/reports"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/infrastructure/excel"
)

// ReportHandler maneja el reporte mensual de rentabilidad (protegido).
type ReportHandler struct {
	uc       *reports.MonthlyUseCase
	exporter *excel.ReportExporter
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.MonthlyUseCase, exporter *excel.ReportExporter) *ReportHandler {
	return &ReportHandler{uc: uc, exporter: exporter}
}

// Monthly godoc
// @Summary      Reporte mensual de rentabilidad
// @Description  Agregado de los pedidos cobrados creados en el mes, agrupado por producto. Con format=xlsx devuelve la planilla.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        year    query  int     false  "Año (default: actual)"
// @Param        month   query  int     false  "Mes 1-12 (default: actual)"
// @Param        format  query  string  false  "json (default) | xlsx"
// @Success      200     {object}  dto.MonthlyReportResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	report, err := h.uc.Generate(year, month)
	if err != nil {
		return respondError(c, err)
	}

	if c.Query("format") == "xlsx" {
		sheet, err := h.exporter.ExportMonthly(report)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="rentabilidad-%d-%02d.xlsx"`, year, month))
		return c.Send(sheet)
	}
	return c.JSON(report)
}
