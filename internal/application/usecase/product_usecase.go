package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/dto"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/pricing"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/pkg/validator"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
//
// Política de costo: ComputedCost se recalcula contra el registro actual de
// componentes en cada escritura de la receta (create, o update que traiga
// receta) y en ningún otro momento. Un cambio de precio en un componente NO
// se propaga a los productos que lo referencian hasta que su receta se
// reescriba: el costo guardado es una foto, igual que en los ítems de pedido.
type ProductUseCase struct {
	repo          repository.ProductRepository
	componentRepo repository.ComponentRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, componentRepo repository.ComponentRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, componentRepo: componentRepo}
}

// Create valida, calcula el costo de la receta y persiste el producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	ve := &domain.ValidationError{}
	ve.AddAll(validator.Reasons(in))
	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name no puede ser vacío")
	}
	if in.Price.IsNegative() {
		ve.Add("price no puede ser negativo")
	}
	validateRecipe(ve, in.Recipe)
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	recipe := toRecipe(in.Recipe)
	cost, err := uc.recipeCost(recipe)
	if err != nil {
		return nil, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		SKU:          in.SKU,
		Category:     in.Category,
		Price:        in.Price,
		Active:       active,
		Recipe:       recipe,
		ComputedCost: cost,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica un parche. Solo recalcula ComputedCost si el parche trae
// receta; si no la trae, el costo guardado queda tal cual aunque los precios
// de los componentes hayan cambiado.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	ve := &domain.ValidationError{}
	ve.AddAll(validator.Reasons(in))
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		ve.Add("name no puede ser vacío")
	}
	if in.Price != nil && in.Price.IsNegative() {
		ve.Add("price no puede ser negativo")
	}
	if in.Recipe != nil {
		validateRecipe(ve, *in.Recipe)
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	if in.Recipe != nil {
		recipe := toRecipe(*in.Recipe)
		cost, err := uc.recipeCost(recipe)
		if err != nil {
			return nil, err
		}
		product.Recipe = recipe
		product.ComputedCost = cost
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos, opcionalmente solo los activos.
func (uc *ProductUseCase) List(onlyActive bool, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete borra un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// recipeCost trae los componentes referenciados y delega en el servicio de
// dominio. Receta vacía cuesta 0 sin ir a la base.
func (uc *ProductUseCase) recipeCost(recipe []entity.RecipeItem) (decimal.Decimal, error) {
	ids := pricing.ComponentIDs(recipe)
	if len(ids) == 0 {
		return decimal.Zero, nil
	}
	components, err := uc.componentRepo.MapByIDs(ids)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cargar componentes de la receta: %w", err)
	}
	return pricing.RecipeCost(recipe, components), nil
}

func validateRecipe(ve *domain.ValidationError, recipe []dto.RecipeLineInput) {
	for i, line := range recipe {
		if strings.TrimSpace(line.ComponentID) == "" {
			ve.Add(fmt.Sprintf("receta línea %d: component_id es requerido", i+1))
		}
		if !line.Quantity.GreaterThan(decimal.Zero) {
			ve.Add(fmt.Sprintf("receta línea %d: quantity debe ser mayor que 0", i+1))
		}
	}
}

func toRecipe(lines []dto.RecipeLineInput) []entity.RecipeItem {
	if len(lines) == 0 {
		return nil
	}
	recipe := make([]entity.RecipeItem, 0, len(lines))
	for _, l := range lines {
		recipe = append(recipe, entity.RecipeItem{ComponentID: l.ComponentID, Quantity: l.Quantity})
	}
	return recipe
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	recipe := make([]dto.ProductRecipeLine, 0, len(p.Recipe))
	for _, l := range p.Recipe {
		recipe = append(recipe, dto.ProductRecipeLine{ComponentID: l.ComponentID, Quantity: l.Quantity})
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Category:     p.Category,
		Price:        p.Price,
		Active:       p.Active,
		Recipe:       recipe,
		ComputedCost: p.ComputedCost,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
