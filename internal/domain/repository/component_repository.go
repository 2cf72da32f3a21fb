package repository

import "github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"

// ComponentRepository puerto de persistencia para CostComponent (DIP).
type ComponentRepository interface {
	Create(component *entity.CostComponent) error
	GetByID(id string) (*entity.CostComponent, error)
	// MapByIDs devuelve los componentes existentes indexados por ID.
	// Los IDs sin fila simplemente no aparecen en el mapa.
	MapByIDs(ids []string) (map[string]*entity.CostComponent, error)
	Update(component *entity.CostComponent) error
	List(onlyActive bool, limit, offset int) ([]*entity.CostComponent, error)
	Delete(id string) error
}
