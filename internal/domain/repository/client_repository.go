package repository

import "github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"

// ClientRepository puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(onlyActive bool, limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
