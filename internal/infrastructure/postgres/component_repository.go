package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

// ComponentRepo implementación del puerto ComponentRepository sobre PostgreSQL (usable con pool o tx).
type ComponentRepo struct {
	q Querier
}

// NewComponentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComponentRepository(q Querier) *ComponentRepo {
	return &ComponentRepo{q: q}
}

// Create persiste un nuevo componente de costo.
func (r *ComponentRepo) Create(component *entity.CostComponent) error {
	query := `
		INSERT INTO cost_components (id, name, kind, unit, unit_cost, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		component.ID, component.Name, component.Kind, component.Unit,
		component.UnitCost, component.Active, component.CreatedAt, component.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cost component: %w", err)
	}
	return nil
}

// GetByID obtiene un componente por ID.
func (r *ComponentRepo) GetByID(id string) (*entity.CostComponent, error) {
	query := `
		SELECT id, name, kind, unit, unit_cost, active, created_at, updated_at
		FROM cost_components WHERE id = $1`
	var c entity.CostComponent
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Kind, &c.Unit, &c.UnitCost, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost component: %w", err)
	}
	return &c, nil
}

// MapByIDs devuelve los componentes existentes indexados por ID. Los IDs sin
// fila simplemente no aparecen en el mapa.
func (r *ComponentRepo) MapByIDs(ids []string) (map[string]*entity.CostComponent, error) {
	if len(ids) == 0 {
		return map[string]*entity.CostComponent{}, nil
	}
	query := `
		SELECT id, name, kind, unit, unit_cost, active, created_at, updated_at
		FROM cost_components WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("map cost components: %w", err)
	}
	defer rows.Close()
	out := make(map[string]*entity.CostComponent, len(ids))
	for rows.Next() {
		var c entity.CostComponent
		if err := rows.Scan(&c.ID, &c.Name, &c.Kind, &c.Unit, &c.UnitCost, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cost component: %w", err)
		}
		out[c.ID] = &c
	}
	return out, rows.Err()
}

// Update actualiza un componente existente.
func (r *ComponentRepo) Update(component *entity.CostComponent) error {
	query := `
		UPDATE cost_components SET name = $2, kind = $3, unit = $4, unit_cost = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		component.ID, component.Name, component.Kind, component.Unit,
		component.UnitCost, component.Active, component.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cost component: %w", err)
	}
	return nil
}

// List lista componentes con paginación, opcionalmente solo los activos.
func (r *ComponentRepo) List(onlyActive bool, limit, offset int) ([]*entity.CostComponent, error) {
	query := `
		SELECT id, name, kind, unit, unit_cost, active, created_at, updated_at
		FROM cost_components WHERE ($1 = false OR active) ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cost components: %w", err)
	}
	defer rows.Close()
	var list []*entity.CostComponent
	for rows.Next() {
		var c entity.CostComponent
		if err := rows.Scan(&c.ID, &c.Name, &c.Kind, &c.Unit, &c.UnitCost, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cost component: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un componente por ID (borrado físico; la baja normal es lógica vía active).
func (r *ComponentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cost_components WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cost component: %w", err)
	}
	return nil
}
