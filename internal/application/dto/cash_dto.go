package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppendCashRequest entrada para asentar un movimiento de caja.
type AppendCashRequest struct {
	Type          string          `json:"type" validate:"required,oneof=ingreso egreso"`
	Origin        string          `json:"origin" validate:"required,oneof=pedido insumo gasto_fijo ajuste"`
	ReferenceID   string          `json:"reference_id" validate:"max=100"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description" validate:"max=500"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=efectivo transferencia tarjeta"`
	Date          *time.Time      `json:"date"` // default: ahora
}

// CashMovementResponse salida de un movimiento de caja.
type CashMovementResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Origin        string          `json:"origin"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CashListResponse lista de movimientos de caja.
type CashListResponse struct {
	Items []CashMovementResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
