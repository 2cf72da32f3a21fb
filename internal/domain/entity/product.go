package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeItem una línea de receta: cantidad de un componente de costo.
// Vive dentro del producto (JSONB), no se persiste por separado.
type RecipeItem struct {
	ComponentID string          `json:"component_id"`
	Quantity    decimal.Decimal `json:"quantity"` // en unidades del componente (ml, kWh, hojas, horas)
}

// Product representa un producto del catálogo con precio de venta y receta
// de costos opcional. ComputedCost se deriva de la receta al escribirla y se
// guarda de forma redundante: es una foto, NO se refresca cuando cambia el
// precio de un componente (misma política de congelado que los ítems de pedido).
type Product struct {
	ID           string
	Name         string
	SKU          string
	Category     string
	Price        decimal.Decimal // precio de venta unitario
	Active       bool
	Recipe       []RecipeItem
	ComputedCost decimal.Decimal // derivado de Recipe vía pricing.RecipeCost
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
