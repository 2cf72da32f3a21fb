package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput línea de pedido en una petición. UnitPrice y UnitCost son
// opcionales: si faltan se congelan el precio de venta y el costo calculado
// actuales del producto.
type OrderItemInput struct {
	ProductID string            `json:"product_id"`
	Options   map[string]string `json:"options,omitempty"`
	Quantity  decimal.Decimal   `json:"quantity"`
	UnitPrice *decimal.Decimal  `json:"unit_price"`
	UnitCost  *decimal.Decimal  `json:"unit_cost"`
}

// CreateOrderRequest entrada para crear un pedido. Subtotal, total y saldo no
// se aceptan del cliente: se derivan siempre de items/descuento/anticipo.
type CreateOrderRequest struct {
	ClientID      string           `json:"client_id"`
	ClientName    string           `json:"client_name" validate:"required,min=1,max=200"`
	Phone         string           `json:"phone" validate:"max=50"`
	State         string           `json:"state" validate:"omitempty,oneof=pendiente en_proceso terminado entregado"`
	Items         []OrderItemInput `json:"items"`
	Discount      decimal.Decimal  `json:"discount"`
	Advance       decimal.Decimal  `json:"advance"`
	Notes         string           `json:"notes"`
	PromisedDate  string           `json:"promised_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string           `json:"payment_method" validate:"omitempty,oneof=efectivo transferencia tarjeta"`
}

// UpdateOrderRequest entrada para actualizar un pedido (campos opcionales).
// Cualquier cambio en items/descuento/anticipo recalcula los derivados.
type UpdateOrderRequest struct {
	ClientID      *string           `json:"client_id"`
	ClientName    *string           `json:"client_name" validate:"omitempty,min=1,max=200"`
	Phone         *string           `json:"phone" validate:"omitempty,max=50"`
	State         *string           `json:"state" validate:"omitempty,oneof=pendiente en_proceso terminado entregado"`
	Items         *[]OrderItemInput `json:"items"`
	Discount      *decimal.Decimal  `json:"discount"`
	Advance       *decimal.Decimal  `json:"advance"`
	Notes         *string           `json:"notes"`
	PromisedDate  *string           `json:"promised_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod *string           `json:"payment_method" validate:"omitempty,oneof=efectivo transferencia tarjeta"`
}

// CollectOrderRequest cuerpo opcional del cobro: permite pisar el método de
// pago guardado en el pedido.
type CollectOrderRequest struct {
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=efectivo transferencia tarjeta"`
}

// OrderItemResponse línea de pedido en una respuesta (valores congelados).
type OrderItemResponse struct {
	ProductID string            `json:"product_id"`
	Name      string            `json:"name"`
	Options   map[string]string `json:"options,omitempty"`
	Quantity  decimal.Decimal   `json:"quantity"`
	UnitPrice decimal.Decimal   `json:"unit_price"`
	UnitCost  decimal.Decimal   `json:"unit_cost"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string              `json:"id"`
	ClientID      string              `json:"client_id,omitempty"`
	ClientName    string              `json:"client_name"`
	Phone         string              `json:"phone,omitempty"`
	State         string              `json:"state"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discount      decimal.Decimal     `json:"discount"`
	Advance       decimal.Decimal     `json:"advance"`
	Total         decimal.Decimal     `json:"total"`
	Balance       decimal.Decimal     `json:"balance"`
	Notes         string              `json:"notes,omitempty"`
	PromisedDate  string              `json:"promised_date,omitempty"`
	Collected     bool                `json:"collected"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	DeliveredAt   *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
