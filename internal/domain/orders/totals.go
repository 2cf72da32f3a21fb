// Package orders contiene las derivaciones puras de montos de un pedido.
package orders

import (
	"github.com/shopspring/decimal"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
)

// Subtotal suma cantidad × precio unitario de cada ítem.
func Subtotal(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity.Mul(it.UnitPrice))
	}
	return total
}

// Total aplica el descuento al subtotal, con piso en cero.
func Total(subtotal, discount decimal.Decimal) decimal.Decimal {
	t := subtotal.Sub(discount)
	if t.IsNegative() {
		return decimal.Zero
	}
	return t
}

// Balance descuenta el anticipo del total, con piso en cero.
func Balance(total, advance decimal.Decimal) decimal.Decimal {
	s := total.Sub(advance)
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}

// Recalculate fija Subtotal, Total y Balance a partir de Items, Discount y
// Advance. Debe invocarse en toda mutación de esos campos: los derivados nunca
// se parchan por separado.
func Recalculate(o *entity.Order) {
	o.Subtotal = Subtotal(o.Items)
	o.Total = Total(o.Subtotal, o.Discount)
	o.Balance = Balance(o.Total, o.Advance)
}
