package repository

import (
	"time"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
)

// OrderRepository puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	// ListByStates lista pedidos cuyo estado esté en el conjunto dado
	// (la lista principal muestra pendiente/en_proceso/terminado; la de
	// entregados filtra solo entregado).
	ListByStates(states []entity.OrderState, limit, offset int) ([]*entity.Order, error)
	// ListCollectedBetween devuelve los pedidos cobrados creados dentro del
	// rango [start, end], ambos inclusive. Lectura puntual (snapshot), no
	// suscripción: es la entrada del reporte mensual.
	ListCollectedBetween(start, end time.Time) ([]*entity.Order, error)
	// MarkCollected fija collected=true y el método de pago usado.
	MarkCollected(id string, method entity.PaymentMethod, updatedAt time.Time) error
	Delete(id string) error
}
