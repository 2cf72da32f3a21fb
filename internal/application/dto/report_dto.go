package dto

import "github.com/shopspring/decimal"

// ReportProductLine agregado por producto del reporte mensual. El agrupado es
// por nombre congelado en el ítem, no por ID: dos fotos del mismo producto con
// precios distintos se consolidan en una línea.
type ReportProductLine struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
	Cost     decimal.Decimal `json:"cost"`
	Profit   decimal.Decimal `json:"profit"`
	Margin   decimal.Decimal `json:"margin"` // % sobre ingreso; 0 si el ingreso es 0
}

// MonthlyReportResponse reporte de rentabilidad de un mes calendario,
// calculado sobre los pedidos cobrados creados en el mes. Derivado puro:
// nunca se persiste.
type MonthlyReportResponse struct {
	Year       int                 `json:"year"`
	Month      int                 `json:"month"`
	OrderCount int                 `json:"order_count"`
	Revenue    decimal.Decimal     `json:"revenue"`
	Cost       decimal.Decimal     `json:"cost"`
	Profit     decimal.Decimal     `json:"profit"`
	Margin     decimal.Decimal     `json:"margin"`
	PerProduct []ReportProductLine `json:"per_product"`
}
