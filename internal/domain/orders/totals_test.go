package orders_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/orders"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSubtotal(t *testing.T) {
	items := []entity.OrderItem{
		{Quantity: d("2"), UnitPrice: d("100")},
		{Quantity: d("1"), UnitPrice: d("50.5")},
	}
	assert.True(t, orders.Subtotal(items).Equal(d("250.5")))
	assert.True(t, orders.Subtotal(nil).IsZero())
}

func TestTotal_PisoEnCero(t *testing.T) {
	cases := []struct {
		name               string
		subtotal, discount string
		want               string
	}{
		{"sin descuento", "200", "0", "200"},
		{"descuento parcial", "200", "50", "150"},
		{"descuento igual al subtotal", "200", "200", "0"},
		{"descuento mayor al subtotal", "200", "250", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := orders.Total(d(tc.subtotal), d(tc.discount))
			assert.True(t, got.Equal(d(tc.want)), "fue %s", got)
		})
	}
}

func TestBalance_PisoEnCero(t *testing.T) {
	cases := []struct {
		name           string
		total, advance string
		want           string
	}{
		{"sin anticipo", "150", "0", "150"},
		{"anticipo parcial", "150", "50", "100"},
		{"anticipo total", "150", "150", "0"},
		{"anticipo mayor al total", "150", "200", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := orders.Balance(d(tc.total), d(tc.advance))
			assert.True(t, got.Equal(d(tc.want)), "fue %s", got)
		})
	}
}

func TestRecalculate_FijaDerivadosDesdeEntradas(t *testing.T) {
	o := &entity.Order{
		Items: []entity.OrderItem{
			{Quantity: d("2"), UnitPrice: d("100")},
		},
		Discount: d("30"),
		Advance:  d("100"),
		// Derivados basura a propósito: deben ser pisados.
		Subtotal: d("999"),
		Total:    d("999"),
		Balance:  d("999"),
	}
	orders.Recalculate(o)
	assert.True(t, o.Subtotal.Equal(d("200")))
	assert.True(t, o.Total.Equal(d("170")))
	assert.True(t, o.Balance.Equal(d("70")))
}
