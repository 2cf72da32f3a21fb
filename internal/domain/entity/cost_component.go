package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentKind clasifica un componente de costo.
type ComponentKind string

const (
	ComponentKindInsumo   ComponentKind = "insumo"   // materiales consumibles (hojas, tinta, tazas)
	ComponentKindVariable ComponentKind = "variable" // costos por uso (kWh, hora máquina)
	ComponentKindFijo     ComponentKind = "fijo"     // costos fijos prorrateados
)

// ValidComponentKind indica si el valor pertenece a la enumeración.
func ValidComponentKind(k ComponentKind) bool {
	switch k {
	case ComponentKindInsumo, ComponentKindVariable, ComponentKindFijo:
		return true
	}
	return false
}

// CostComponent representa una unidad de costo con precio por unidad definida
// (p.ej. "Hoja sublimación A4" a $50 la hoja). La baja normal es lógica vía
// Active; el borrado físico también está soportado.
type CostComponent struct {
	ID        string
	Name      string
	Kind      ComponentKind
	Unit      string // "hoja" | "ml" | "kWh" | "hora" | "unidad"
	UnitCost  decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
