package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
// Los ítems viven como JSONB dentro de la fila del pedido: se leen y escriben
// siempre como documento completo, nunca línea a línea.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, client_id, client_name, phone, state, items, subtotal, discount, advance, total, balance, notes, promised_date, collected, payment_method, delivered_at, created_at, updated_at`

// Create persiste un nuevo pedido con sus derivados ya calculados.
func (r *OrderRepo) Create(order *entity.Order) error {
	items, err := marshalItems(order.Items)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, nullIfEmpty(order.ClientID), order.ClientName, order.Phone, order.State, items,
		order.Subtotal, order.Discount, order.Advance, order.Total, order.Balance,
		order.Notes, order.PromisedDate, order.Collected, string(order.PaymentMethod),
		order.DeliveredAt, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// Update reescribe el pedido completo, ítems y derivados incluidos.
func (r *OrderRepo) Update(order *entity.Order) error {
	items, err := marshalItems(order.Items)
	if err != nil {
		return err
	}
	query := `
		UPDATE orders SET client_id = $2, client_name = $3, phone = $4, state = $5, items = $6,
			subtotal = $7, discount = $8, advance = $9, total = $10, balance = $11,
			notes = $12, promised_date = $13, collected = $14, payment_method = $15,
			delivered_at = $16, updated_at = $17
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, nullIfEmpty(order.ClientID), order.ClientName, order.Phone, order.State, items,
		order.Subtotal, order.Discount, order.Advance, order.Total, order.Balance,
		order.Notes, order.PromisedDate, order.Collected, string(order.PaymentMethod),
		order.DeliveredAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ListByStates lista pedidos cuyo estado esté en el conjunto dado, más
// recientes primero.
func (r *OrderRepo) ListByStates(states []entity.OrderState, limit, offset int) ([]*entity.Order, error) {
	set := make([]string, 0, len(states))
	for _, s := range states {
		set = append(set, string(s))
	}
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE state = ANY($1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, set, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// ListCollectedBetween devuelve los pedidos cobrados creados dentro del rango
// [start, end], ambos inclusive. Es la entrada del reporte mensual.
func (r *OrderRepo) ListCollectedBetween(start, end time.Time) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + ` FROM orders
		WHERE collected AND created_at BETWEEN $1 AND $2 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list collected orders: %w", err)
	}
	defer rows.Close()
	return collectOrders(rows)
}

// MarkCollected fija collected=true y el método de pago usado. Pedido
// inexistente devuelve ErrNotFound.
func (r *OrderRepo) MarkCollected(id string, method entity.PaymentMethod, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET collected = true, payment_method = $2, updated_at = $3 WHERE id = $1`,
		id, string(method), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("mark order collected: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido por ID.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func collectOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var clientID *string
	var items []byte
	var method string
	err := row.Scan(
		&o.ID, &clientID, &o.ClientName, &o.Phone, &o.State, &items,
		&o.Subtotal, &o.Discount, &o.Advance, &o.Total, &o.Balance,
		&o.Notes, &o.PromisedDate, &o.Collected, &method,
		&o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if clientID != nil {
		o.ClientID = *clientID
	}
	o.PaymentMethod = entity.PaymentMethod(method)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}
	return &o, nil
}

func marshalItems(items []entity.OrderItem) ([]byte, error) {
	if items == nil {
		items = []entity.OrderItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	return b, nil
}
