package repository

import (
	"time"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
)

// CashRepository puerto de persistencia para la caja. Solo inserción y
// lectura: el libro no expone Update ni Delete por contrato.
type CashRepository interface {
	Append(movement *entity.CashMovement) error
	List(limit, offset int) ([]*entity.CashMovement, error)
	ListBetween(start, end time.Time) ([]*entity.CashMovement, error)
}
