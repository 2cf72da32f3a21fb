package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/dto"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/pkg/validator"
)

// CashUseCase casos de uso del libro de caja. Solo asienta y lista: los
// movimientos no se editan ni se borran; una corrección es un asiento nuevo
// con origen "ajuste".
type CashUseCase struct {
	repo repository.CashRepository
}

// NewCashUseCase construye el caso de uso.
func NewCashUseCase(repo repository.CashRepository) *CashUseCase {
	return &CashUseCase{repo: repo}
}

// Append valida y asienta un movimiento.
func (uc *CashUseCase) Append(in dto.AppendCashRequest) (*dto.CashMovementResponse, error) {
	ve := &domain.ValidationError{}
	ve.AddAll(validator.Reasons(in))
	if !in.Amount.GreaterThan(decimal.Zero) {
		ve.Add("amount debe ser mayor que 0")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	movement := &entity.CashMovement{
		ID:            uuid.New().String(),
		Type:          entity.MovementType(in.Type),
		Origin:        entity.MovementOrigin(in.Origin),
		ReferenceID:   in.ReferenceID,
		Amount:        in.Amount,
		Description:   in.Description,
		PaymentMethod: entity.PaymentMethod(in.PaymentMethod),
		Date:          date,
		CreatedAt:     now,
	}
	if err := uc.repo.Append(movement); err != nil {
		return nil, err
	}
	return toCashResponse(movement), nil
}

// List lista los movimientos más recientes.
func (uc *CashUseCase) List(limit, offset int) (*dto.CashListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toCashResponse(m))
	}
	return &dto.CashListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListBetween lista movimientos dentro de un rango de fechas, ambos extremos
// inclusive.
func (uc *CashUseCase) ListBetween(start, end time.Time) (*dto.CashListResponse, error) {
	list, err := uc.repo.ListBetween(start, end)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CashMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toCashResponse(m))
	}
	return &dto.CashListResponse{Items: items}, nil
}

func toCashResponse(m *entity.CashMovement) *dto.CashMovementResponse {
	if m == nil {
		return nil
	}
	return &dto.CashMovementResponse{
		ID:            m.ID,
		Type:          string(m.Type),
		Origin:        string(m.Origin),
		ReferenceID:   m.ReferenceID,
		Amount:        m.Amount,
		Description:   m.Description,
		PaymentMethod: string(m.PaymentMethod),
		Date:          m.Date,
		CreatedAt:     m.CreatedAt,
	}
}
