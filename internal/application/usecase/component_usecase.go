package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/dto"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/pkg/validator"
)

// ComponentUseCase casos de uso CRUD para componentes de costo.
// La baja normal es lógica (active=false); Delete borra físico.
type ComponentUseCase struct {
	repo repository.ComponentRepository
}

// NewComponentUseCase construye el caso de uso.
func NewComponentUseCase(repo repository.ComponentRepository) *ComponentUseCase {
	return &ComponentUseCase{repo: repo}
}

// Create valida y persiste un componente nuevo. Las fallas de validación se
// devuelven todas juntas.
func (uc *ComponentUseCase) Create(in dto.CreateComponentRequest) (*dto.ComponentResponse, error) {
	ve := &domain.ValidationError{}
	ve.AddAll(validator.Reasons(in))
	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name no puede ser vacío")
	}
	if in.UnitCost.IsNegative() {
		ve.Add("unit_cost no puede ser negativo")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	component := &entity.CostComponent{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Kind:      entity.ComponentKind(in.Kind),
		Unit:      in.Unit,
		UnitCost:  in.UnitCost,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(component); err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// GetByID obtiene un componente por ID. Devuelve nil si no existe.
func (uc *ComponentUseCase) GetByID(id string) (*dto.ComponentResponse, error) {
	component, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, nil
	}
	return toComponentResponse(component), nil
}

// Update aplica un parche sobre un componente existente.
func (uc *ComponentUseCase) Update(id string, in dto.UpdateComponentRequest) (*dto.ComponentResponse, error) {
	component, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, nil
	}

	ve := &domain.ValidationError{}
	ve.AddAll(validator.Reasons(in))
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		ve.Add("name no puede ser vacío")
	}
	if in.UnitCost != nil && in.UnitCost.IsNegative() {
		ve.Add("unit_cost no puede ser negativo")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	if in.Name != nil {
		component.Name = strings.TrimSpace(*in.Name)
	}
	if in.Kind != nil {
		component.Kind = entity.ComponentKind(*in.Kind)
	}
	if in.Unit != nil {
		component.Unit = *in.Unit
	}
	if in.UnitCost != nil {
		component.UnitCost = *in.UnitCost
	}
	if in.Active != nil {
		component.Active = *in.Active
	}
	component.UpdatedAt = time.Now()
	if err := uc.repo.Update(component); err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// List lista componentes, opcionalmente solo los activos.
func (uc *ComponentUseCase) List(onlyActive bool, limit, offset int) (*dto.ComponentListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ComponentResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toComponentResponse(c))
	}
	return &dto.ComponentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete borra físicamente un componente. Las recetas que lo referencian no
// fallan: el cálculo de costo omite referencias sin resolver.
func (uc *ComponentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toComponentResponse(c *entity.CostComponent) *dto.ComponentResponse {
	if c == nil {
		return nil
	}
	return &dto.ComponentResponse{
		ID:        c.ID,
		Name:      c.Name,
		Kind:      string(c.Kind),
		Unit:      c.Unit,
		UnitCost:  c.UnitCost,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
