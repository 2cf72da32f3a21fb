package reports

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
)

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(o *entity.Order) error            { f.orders = append(f.orders, o); return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) Update(o *entity.Order) error             { return nil }
func (f *fakeOrderRepo) ListByStates(states []entity.OrderState, limit, offset int) ([]*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ListCollectedBetween(start, end time.Time) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.Collected && !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) MarkCollected(id string, method entity.PaymentMethod, updatedAt time.Time) error {
	return nil
}
func (f *fakeOrderRepo) Delete(id string) error { return nil }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func item(name, qty, price, cost string) entity.OrderItem {
	return entity.OrderItem{
		Name:      name,
		Quantity:  dec(qty),
		UnitPrice: dec(price),
		UnitCost:  dec(cost),
	}
}

func TestGenerateAgrupaPorNombre(t *testing.T) {
	marzo := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeOrderRepo{orders: []*entity.Order{
		{
			ID:        "o1",
			Collected: true,
			CreatedAt: marzo,
			Items: []entity.OrderItem{
				item("A", "2", "50", "30"),
				item("B", "1", "100", "40"),
			},
		},
		{
			ID:        "o2",
			Collected: true,
			CreatedAt: marzo.AddDate(0, 0, 5),
			Items: []entity.OrderItem{
				// Misma "A" con otro precio congelado: consolida en una línea.
				item("A", "1", "50", "30"),
			},
		},
		{
			// Sin cobrar: no entra.
			ID:        "o3",
			Collected: false,
			CreatedAt: marzo,
			Items:     []entity.OrderItem{item("A", "10", "50", "30")},
		},
		{
			// Creado en abril: no entra en marzo aunque esté cobrado.
			ID:        "o4",
			Collected: true,
			CreatedAt: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local),
			Items:     []entity.OrderItem{item("A", "10", "50", "30")},
		},
	}}

	report, err := NewMonthlyUseCase(repo).Generate(2026, 3)
	require.NoError(t, err)

	assert.Equal(t, 2026, report.Year)
	assert.Equal(t, 3, report.Month)
	assert.Equal(t, 2, report.OrderCount)
	assert.True(t, report.Revenue.Equal(dec("250")), "revenue = %s", report.Revenue)
	assert.True(t, report.Cost.Equal(dec("130")), "cost = %s", report.Cost)
	assert.True(t, report.Profit.Equal(dec("120")))
	assert.True(t, report.Margin.Equal(dec("48")), "margin = %s", report.Margin)

	require.Len(t, report.PerProduct, 2)
	// Ordenado por ingreso descendente: A (150) antes que B (100).
	a := report.PerProduct[0]
	assert.Equal(t, "A", a.Name)
	assert.True(t, a.Quantity.Equal(dec("3")))
	assert.True(t, a.Revenue.Equal(dec("150")))
	assert.True(t, a.Cost.Equal(dec("90")))
	assert.True(t, a.Profit.Equal(dec("60")))
	assert.True(t, a.Margin.Equal(dec("40")))

	b := report.PerProduct[1]
	assert.Equal(t, "B", b.Name)
	assert.True(t, b.Revenue.Equal(dec("100")))
}

func TestGenerateMesVacio(t *testing.T) {
	report, err := NewMonthlyUseCase(&fakeOrderRepo{}).Generate(2026, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, report.OrderCount)
	assert.True(t, report.Revenue.Equal(decimal.Zero))
	assert.True(t, report.Margin.Equal(decimal.Zero))
	assert.Empty(t, report.PerProduct)
}

func TestGenerateEmpateOrdenaPorNombre(t *testing.T) {
	marzo := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)
	repo := &fakeOrderRepo{orders: []*entity.Order{
		{
			ID:        "o1",
			Collected: true,
			CreatedAt: marzo,
			Items: []entity.OrderItem{
				item("Zeta", "1", "100", "50"),
				item("Alfa", "1", "100", "50"),
			},
		},
	}}

	report, err := NewMonthlyUseCase(repo).Generate(2026, 3)
	require.NoError(t, err)
	require.Len(t, report.PerProduct, 2)
	assert.Equal(t, "Alfa", report.PerProduct[0].Name)
	assert.Equal(t, "Zeta", report.PerProduct[1].Name)
}

func TestGenerateMesInvalido(t *testing.T) {
	_, err := NewMonthlyUseCase(&fakeOrderRepo{}).Generate(2026, 13)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestGenerateMargenRedondeado(t *testing.T) {
	marzo := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)
	repo := &fakeOrderRepo{orders: []*entity.Order{
		{
			ID:        "o1",
			Collected: true,
			CreatedAt: marzo,
			Items:     []entity.OrderItem{item("A", "3", "1", "0.9")},
		},
	}}

	report, err := NewMonthlyUseCase(repo).Generate(2026, 3)
	require.NoError(t, err)
	// profit 0.3 / revenue 3 = 10%
	assert.True(t, report.Margin.Equal(dec("10")), "margin = %s", report.Margin)
}
