package orders

import (
	"context"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
)

// CollectTxRunner ejecuta el cobro de un pedido dentro de una transacción:
// el asiento de caja y la marca de cobrado confirman juntos o ninguno.
// El original sobre un almacén de documentos secuenciaba las dos escrituras
// sin transacción, con una ventana de inconsistencia entre ambas; sobre
// PostgreSQL esa ventana se elimina.
type CollectTxRunner interface {
	RunCollect(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		cashRepo repository.CashRepository,
	) error) error
}
