package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderState estado del ciclo de vida de un pedido. No se impone tabla de
// transiciones: cualquier estado es asignable en cualquier momento.
type OrderState string

const (
	OrderStatePendiente OrderState = "pendiente"
	OrderStateEnProceso OrderState = "en_proceso"
	OrderStateTerminado OrderState = "terminado"
	OrderStateEntregado OrderState = "entregado"
)

// ValidOrderState indica si el valor pertenece a la enumeración.
func ValidOrderState(s OrderState) bool {
	switch s {
	case OrderStatePendiente, OrderStateEnProceso, OrderStateTerminado, OrderStateEntregado:
		return true
	}
	return false
}

// PaymentMethod método de pago de un cobro.
type PaymentMethod string

const (
	PaymentEfectivo      PaymentMethod = "efectivo"
	PaymentTransferencia PaymentMethod = "transferencia"
	PaymentTarjeta       PaymentMethod = "tarjeta"
)

// ValidPaymentMethod indica si el valor pertenece a la enumeración (vacío permitido).
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case "", PaymentEfectivo, PaymentTransferencia, PaymentTarjeta:
		return true
	}
	return false
}

// OrderItem línea de pedido. Nombre, precio y costo unitario son fotos tomadas
// al escribir el pedido: quedan congeladas aunque el producto o sus componentes
// cambien de precio después, para que el histórico sea estable.
type OrderItem struct {
	ProductID string            `json:"product_id"`
	Name      string            `json:"name"`
	Options   map[string]string `json:"options,omitempty"` // p.ej. color, talle, diseño
	Quantity  decimal.Decimal   `json:"quantity"`
	UnitPrice decimal.Decimal   `json:"unit_price"`
	UnitCost  decimal.Decimal   `json:"unit_cost"`
}

// Order representa un pedido del taller.
//
// Invariantes de derivación (siempre recalculadas, nunca parchadas sueltas):
//
//	Subtotal = Σ item.Quantity × item.UnitPrice
//	Total    = max(0, Subtotal − Discount)
//	Balance  = max(0, Total − Advance)
type Order struct {
	ID            string
	ClientID      string
	ClientName    string
	Phone         string
	State         OrderState
	Items         []OrderItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Advance       decimal.Decimal // anticipo (seña)
	Total         decimal.Decimal
	Balance       decimal.Decimal // saldo pendiente de cobro
	Notes         string
	PromisedDate  string // YYYY-MM-DD
	Collected     bool
	PaymentMethod PaymentMethod
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
