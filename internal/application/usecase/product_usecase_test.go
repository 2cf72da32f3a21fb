package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/dto"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if onlyActive && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	return nil
}

type fakeComponentRepo struct {
	components map[string]*entity.CostComponent
}

func (f *fakeComponentRepo) Create(c *entity.CostComponent) error { f.components[c.ID] = c; return nil }
func (f *fakeComponentRepo) GetByID(id string) (*entity.CostComponent, error) {
	return f.components[id], nil
}

func (f *fakeComponentRepo) MapByIDs(ids []string) (map[string]*entity.CostComponent, error) {
	out := make(map[string]*entity.CostComponent, len(ids))
	for _, id := range ids {
		if c, ok := f.components[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (f *fakeComponentRepo) Update(c *entity.CostComponent) error { f.components[c.ID] = c; return nil }
func (f *fakeComponentRepo) List(onlyActive bool, limit, offset int) ([]*entity.CostComponent, error) {
	return nil, nil
}
func (f *fakeComponentRepo) Delete(id string) error { delete(f.components, id); return nil }

func pdec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newProductUseCaseForTest() (*ProductUseCase, *fakeComponentRepo) {
	componentRepo := &fakeComponentRepo{components: map[string]*entity.CostComponent{
		"hoja-a4": {ID: "hoja-a4", Name: "Hoja sublimación A4", Kind: entity.ComponentKindInsumo, Unit: "hoja", UnitCost: pdec("50"), Active: true},
		"taza":    {ID: "taza", Name: "Taza lisa", Kind: entity.ComponentKindInsumo, Unit: "unidad", UnitCost: pdec("700"), Active: true},
	}}
	return NewProductUseCase(newFakeProductRepo(), componentRepo), componentRepo
}

func TestProductCreateCalculaCosto(t *testing.T) {
	uc, _ := newProductUseCaseForTest()

	resp, err := uc.Create(dto.CreateProductRequest{
		Name:  "Taza personalizada",
		Price: pdec("2500"),
		Recipe: []dto.RecipeLineInput{
			{ComponentID: "hoja-a4", Quantity: pdec("1")},
			{ComponentID: "taza", Quantity: pdec("1")},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.ComputedCost.Equal(pdec("750")), "computed_cost = %s", resp.ComputedCost)
	assert.True(t, resp.Active)
}

func TestProductUpdateSinRecetaNoRecalcula(t *testing.T) {
	uc, componentRepo := newProductUseCaseForTest()

	created, err := uc.Create(dto.CreateProductRequest{
		Name:   "Taza personalizada",
		Price:  pdec("2500"),
		Recipe: []dto.RecipeLineInput{{ComponentID: "taza", Quantity: pdec("1")}},
	})
	require.NoError(t, err)
	require.True(t, created.ComputedCost.Equal(pdec("700")))

	// El componente sube de precio...
	componentRepo.components["taza"].UnitCost = pdec("900")

	// ...pero un parche sin receta deja el costo guardado tal cual.
	price := pdec("3000")
	resp, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, resp.ComputedCost.Equal(pdec("700")), "computed_cost = %s", resp.ComputedCost)
}

func TestProductUpdateConRecetaRecalcula(t *testing.T) {
	uc, componentRepo := newProductUseCaseForTest()

	created, err := uc.Create(dto.CreateProductRequest{
		Name:   "Taza personalizada",
		Price:  pdec("2500"),
		Recipe: []dto.RecipeLineInput{{ComponentID: "taza", Quantity: pdec("1")}},
	})
	require.NoError(t, err)

	componentRepo.components["taza"].UnitCost = pdec("900")

	// Reescribir la receta (aunque sea idéntica) recalcula contra los
	// precios actuales.
	recipe := []dto.RecipeLineInput{{ComponentID: "taza", Quantity: pdec("1")}}
	resp, err := uc.Update(created.ID, dto.UpdateProductRequest{Recipe: &recipe})
	require.NoError(t, err)
	assert.True(t, resp.ComputedCost.Equal(pdec("900")), "computed_cost = %s", resp.ComputedCost)
}

func TestProductUpdateRecetaVaciaDejaCostoCero(t *testing.T) {
	uc, _ := newProductUseCaseForTest()

	created, err := uc.Create(dto.CreateProductRequest{
		Name:   "Taza personalizada",
		Price:  pdec("2500"),
		Recipe: []dto.RecipeLineInput{{ComponentID: "taza", Quantity: pdec("1")}},
	})
	require.NoError(t, err)

	empty := []dto.RecipeLineInput{}
	resp, err := uc.Update(created.ID, dto.UpdateProductRequest{Recipe: &empty})
	require.NoError(t, err)
	assert.True(t, resp.ComputedCost.Equal(decimal.Zero))
	assert.Empty(t, resp.Recipe)
}

func TestProductCreateJuntaTodasLasFallas(t *testing.T) {
	uc, _ := newProductUseCaseForTest()

	_, err := uc.Create(dto.CreateProductRequest{
		Name:  "  ",
		Price: pdec("-10"),
		Recipe: []dto.RecipeLineInput{
			{ComponentID: "", Quantity: pdec("0")},
		},
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.GreaterOrEqual(t, len(ve.Reasons), 4)
}

func TestProductUpdateInexistente(t *testing.T) {
	uc, _ := newProductUseCaseForTest()

	resp, err := uc.Update("nope", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp)
}
