package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
)

var _ repository.CashRepository = (*CashRepo)(nil)

// CashRepo implementación del puerto CashRepository sobre PostgreSQL (usable con pool o tx).
// Solo INSERT y SELECT: el libro de caja no tiene UPDATE ni DELETE.
type CashRepo struct {
	q Querier
}

// NewCashRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashRepository(q Querier) *CashRepo {
	return &CashRepo{q: q}
}

// Append asienta un movimiento de caja.
func (r *CashRepo) Append(movement *entity.CashMovement) error {
	query := `
		INSERT INTO cash_movements (id, type, origin, reference_id, amount, description, payment_method, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Type, movement.Origin, movement.ReferenceID,
		movement.Amount, movement.Description, string(movement.PaymentMethod),
		movement.Date, movement.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cash movement: %w", err)
	}
	return nil
}

// List lista movimientos con paginación, más recientes primero.
func (r *CashRepo) List(limit, offset int) ([]*entity.CashMovement, error) {
	query := `
		SELECT id, type, origin, reference_id, amount, description, payment_method, date, created_at
		FROM cash_movements ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cash movements: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// ListBetween lista movimientos con fecha dentro del rango [start, end],
// ambos inclusive, en orden cronológico.
func (r *CashRepo) ListBetween(start, end time.Time) ([]*entity.CashMovement, error) {
	query := `
		SELECT id, type, origin, reference_id, amount, description, payment_method, date, created_at
		FROM cash_movements WHERE date BETWEEN $1 AND $2 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list cash movements by range: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

func collectMovements(rows pgx.Rows) ([]*entity.CashMovement, error) {
	var list []*entity.CashMovement
	for rows.Next() {
		var m entity.CashMovement
		var method string
		if err := rows.Scan(&m.ID, &m.Type, &m.Origin, &m.ReferenceID, &m.Amount,
			&m.Description, &method, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cash movement: %w", err)
		}
		m.PaymentMethod = entity.PaymentMethod(method)
		list = append(list, &m)
	}
	return list, rows.Err()
}
