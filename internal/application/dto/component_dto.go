package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateComponentRequest entrada para crear un componente de costo.
type CreateComponentRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Kind     string          `json:"kind" validate:"required,oneof=insumo variable fijo"`
	Unit     string          `json:"unit" validate:"required,min=1,max=50"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Active   *bool           `json:"active"` // default true
}

// UpdateComponentRequest entrada para actualizar un componente (campos opcionales).
type UpdateComponentRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Kind     *string          `json:"kind" validate:"omitempty,oneof=insumo variable fijo"`
	Unit     *string          `json:"unit" validate:"omitempty,min=1,max=50"`
	UnitCost *decimal.Decimal `json:"unit_cost"`
	Active   *bool            `json:"active"`
}

// ComponentResponse salida de un componente de costo.
type ComponentResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Unit      string          `json:"unit"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ComponentListResponse lista paginada de componentes.
type ComponentListResponse struct {
	Items []ComponentResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
