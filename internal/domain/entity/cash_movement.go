package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de caja.
type MovementType string

const (
	MovementIngreso MovementType = "ingreso"
	MovementEgreso  MovementType = "egreso"
)

// MovementOrigin origen de un movimiento de caja.
type MovementOrigin string

const (
	OriginPedido    MovementOrigin = "pedido"
	OriginInsumo    MovementOrigin = "insumo"
	OriginGastoFijo MovementOrigin = "gasto_fijo"
	OriginAjuste    MovementOrigin = "ajuste"
)

// ValidMovementType indica si el valor pertenece a la enumeración.
func ValidMovementType(t MovementType) bool {
	return t == MovementIngreso || t == MovementEgreso
}

// ValidMovementOrigin indica si el valor pertenece a la enumeración.
func ValidMovementOrigin(o MovementOrigin) bool {
	switch o {
	case OriginPedido, OriginInsumo, OriginGastoFijo, OriginAjuste:
		return true
	}
	return false
}

// CashMovement asiento de caja, de solo inserción: nunca se actualiza ni se
// revierte; una corrección es un asiento nuevo (origen "ajuste").
type CashMovement struct {
	ID            string
	Type          MovementType
	Origin        MovementOrigin
	ReferenceID   string // p.ej. "pedidos/<id>" cuando Origin es "pedido"
	Amount        decimal.Decimal
	Description   string
	PaymentMethod PaymentMethod
	Date          time.Time
	CreatedAt     time.Time
}
