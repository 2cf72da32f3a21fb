package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/orders"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
)

var _ orders.CollectTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCollect inicia una transacción, ejecuta fn con los repos de pedidos y
// caja atados a la tx y hace Commit o Rollback. Así el asiento de caja y la
// marca de cobrado confirman juntos o ninguno.
func (r *TxRunner) RunCollect(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	cashRepo repository.CashRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	cashRepo := NewCashRepository(tx)

	if err := fn(orderRepo, cashRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
