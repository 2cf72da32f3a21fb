// Package money formatea montos en pesos argentinos para salidas impresas
// (PDF de comprobantes, planillas del reporte mensual).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// FormatARS devuelve el monto con separadores es-AR y prefijo AR$,
// p.ej. 12345.5 → "AR$ 12.345,50".
func FormatARS(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("AR$ %.2f", f)
}

// FormatPercent devuelve un porcentaje con dos decimales, p.ej. "48,00 %".
func FormatPercent(value decimal.Decimal) string {
	f, _ := value.Round(2).Float64()
	return printer.Sprintf("%.2f %%", f)
}
