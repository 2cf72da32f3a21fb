package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLineInput línea de receta en una petición de producto.
type RecipeLineInput struct {
	ComponentID string          `json:"component_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// CreateProductRequest entrada para crear un producto. El costo calculado no
// se acepta del cliente: se deriva siempre de la receta.
type CreateProductRequest struct {
	Name     string            `json:"name" validate:"required,min=1,max=200"`
	SKU      string            `json:"sku" validate:"max=100"`
	Category string            `json:"category" validate:"max=100"`
	Price    decimal.Decimal   `json:"price"`
	Active   *bool             `json:"active"` // default true
	Recipe   []RecipeLineInput `json:"recipe"`
}

// UpdateProductRequest entrada para actualizar un producto. Recipe nil
// significa "no tocar la receta" y por lo tanto no recalcular el costo;
// una receta vacía no nil sí reescribe (y deja costo 0).
type UpdateProductRequest struct {
	Name     *string            `json:"name" validate:"omitempty,min=1,max=200"`
	SKU      *string            `json:"sku" validate:"omitempty,max=100"`
	Category *string            `json:"category" validate:"omitempty,max=100"`
	Price    *decimal.Decimal   `json:"price"`
	Active   *bool              `json:"active"`
	Recipe   *[]RecipeLineInput `json:"recipe"`
}

// ProductRecipeLine línea de receta en una respuesta.
type ProductRecipeLine struct {
	ComponentID string          `json:"component_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	SKU          string              `json:"sku,omitempty"`
	Category     string              `json:"category,omitempty"`
	Price        decimal.Decimal     `json:"price"`
	Active       bool                `json:"active"`
	Recipe       []ProductRecipeLine `json:"recipe"`
	ComputedCost decimal.Decimal     `json:"computed_cost"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
