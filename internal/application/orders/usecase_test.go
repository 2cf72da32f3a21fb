package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/dto"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
)

type fakeOrderRepo struct {
	orders  map[string]*entity.Order
	markErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) ListByStates(states []entity.OrderState, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		for _, s := range states {
			if o.State == s {
				cp := *o
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListCollectedBetween(start, end time.Time) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.Collected && !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) MarkCollected(id string, method entity.PaymentMethod, updatedAt time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Collected = true
	o.PaymentMethod = method
	o.UpdatedAt = updatedAt
	return nil
}

func (f *fakeOrderRepo) Delete(id string) error {
	delete(f.orders, id)
	return nil
}

type fakeCashRepo struct {
	movements []*entity.CashMovement
	appendErr error
}

func (f *fakeCashRepo) Append(m *entity.CashMovement) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	cp := *m
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeCashRepo) List(limit, offset int) ([]*entity.CashMovement, error) {
	return f.movements, nil
}

func (f *fakeCashRepo) ListBetween(start, end time.Time) ([]*entity.CashMovement, error) {
	return f.movements, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) List(onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

// fakeTxRunner simula la transacción: si el callback falla, descarta las
// escrituras hechas dentro (restaura el estado previo de ambos repos).
type fakeTxRunner struct {
	orderRepo *fakeOrderRepo
	cashRepo  *fakeCashRepo
}

func (f *fakeTxRunner) RunCollect(ctx context.Context, fn func(repository.OrderRepository, repository.CashRepository) error) error {
	ordersBackup := make(map[string]*entity.Order, len(f.orderRepo.orders))
	for k, v := range f.orderRepo.orders {
		cp := *v
		ordersBackup[k] = &cp
	}
	cashBackup := append([]*entity.CashMovement(nil), f.cashRepo.movements...)

	if err := fn(f.orderRepo, f.cashRepo); err != nil {
		f.orderRepo.orders = ordersBackup
		f.cashRepo.movements = cashBackup
		return err
	}
	return nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newTestUseCase() (*UseCase, *fakeOrderRepo, *fakeCashRepo, *fakeProductRepo) {
	orderRepo := newFakeOrderRepo()
	cashRepo := &fakeCashRepo{}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {
			ID:           "prod-1",
			Name:         "Taza personalizada",
			Price:        dec("100"),
			ComputedCost: dec("40"),
			Active:       true,
		},
	}}
	tx := &fakeTxRunner{orderRepo: orderRepo, cashRepo: cashRepo}
	return NewUseCase(tx, orderRepo, cashRepo, productRepo), orderRepo, cashRepo, productRepo
}

func TestCreateCongelaPrecioYCosto(t *testing.T) {
	uc, _, _, productRepo := newTestUseCase()

	resp, err := uc.Create(dto.CreateOrderRequest{
		ClientName: "Ana",
		Items: []dto.OrderItemInput{
			{ProductID: "prod-1", Quantity: dec("2")},
		},
		Advance: dec("50"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Taza personalizada", resp.Items[0].Name)
	assert.True(t, resp.Items[0].UnitPrice.Equal(dec("100")))
	assert.True(t, resp.Items[0].UnitCost.Equal(dec("40")))
	assert.True(t, resp.Subtotal.Equal(dec("200")))
	assert.True(t, resp.Total.Equal(dec("200")))
	assert.True(t, resp.Balance.Equal(dec("150")))
	assert.Equal(t, "pendiente", resp.State)
	assert.False(t, resp.Collected)

	// Un cambio de precio posterior no toca el pedido ya creado.
	productRepo.products["prod-1"].Price = dec("999")
	got, err := uc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.True(t, got.Items[0].UnitPrice.Equal(dec("100")))
}

func TestCreateJuntaTodasLasFallas(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.Create(dto.CreateOrderRequest{
		ClientName: "  ",
		Discount:   dec("-1"),
		Items: []dto.OrderItemInput{
			{ProductID: "", Quantity: dec("0")},
			{ProductID: "no-existe", Quantity: dec("1")},
		},
	})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.GreaterOrEqual(t, len(ve.Reasons), 4)
}

func TestCreateSinItems(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.Create(dto.CreateOrderRequest{ClientName: "Ana"})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Reasons, "debe seleccionarse al menos un producto")
}

func TestCreatePisaPrecioUnitario(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	override := dec("80")
	resp, err := uc.Create(dto.CreateOrderRequest{
		ClientName: "Ana",
		Items: []dto.OrderItemInput{
			{ProductID: "prod-1", Quantity: dec("1"), UnitPrice: &override},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Items[0].UnitPrice.Equal(dec("80")))
	assert.True(t, resp.Items[0].UnitCost.Equal(dec("40")))
}

func TestUpdateRecalculaDerivados(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	created, err := uc.Create(dto.CreateOrderRequest{
		ClientName: "Ana",
		Items:      []dto.OrderItemInput{{ProductID: "prod-1", Quantity: dec("2")}},
	})
	require.NoError(t, err)

	discount := dec("300")
	resp, err := uc.Update(created.ID, dto.UpdateOrderRequest{Discount: &discount})
	require.NoError(t, err)

	// Descuento mayor que subtotal: total y saldo pisan en 0.
	assert.True(t, resp.Total.Equal(decimal.Zero))
	assert.True(t, resp.Balance.Equal(decimal.Zero))
}

func TestUpdateEntregadoFijaFecha(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	created, err := uc.Create(dto.CreateOrderRequest{
		ClientName: "Ana",
		Items:      []dto.OrderItemInput{{ProductID: "prod-1", Quantity: dec("1")}},
	})
	require.NoError(t, err)
	assert.Nil(t, created.DeliveredAt)

	state := "entregado"
	resp, err := uc.Update(created.ID, dto.UpdateOrderRequest{State: &state})
	require.NoError(t, err)
	require.NotNil(t, resp.DeliveredAt)
}

func TestCollectSaldoPositivoAsientaYMarca(t *testing.T) {
	uc, orderRepo, cashRepo, _ := newTestUseCase()

	created, err := uc.Create(dto.CreateOrderRequest{
		ClientName:    "Ana",
		Items:         []dto.OrderItemInput{{ProductID: "prod-1", Quantity: dec("2")}},
		Advance:       dec("50"),
		PaymentMethod: "efectivo",
	})
	require.NoError(t, err)

	resp, err := uc.Collect(context.Background(), created.ID, "")
	require.NoError(t, err)
	assert.True(t, resp.Collected)

	require.Len(t, cashRepo.movements, 1)
	m := cashRepo.movements[0]
	assert.Equal(t, entity.MovementIngreso, m.Type)
	assert.Equal(t, entity.OriginPedido, m.Origin)
	assert.Equal(t, "pedidos/"+created.ID, m.ReferenceID)
	assert.True(t, m.Amount.Equal(dec("150")))
	assert.Equal(t, entity.PaymentEfectivo, m.PaymentMethod)

	stored, _ := orderRepo.GetByID(created.ID)
	assert.True(t, stored.Collected)
}

func TestCollectSaldoCeroSoloMarca(t *testing.T) {
	uc, orderRepo, cashRepo, _ := newTestUseCase()

	created, err := uc.Create(dto.CreateOrderRequest{
		ClientName: "Ana",
		Items:      []dto.OrderItemInput{{ProductID: "prod-1", Quantity: dec("1")}},
		Advance:    dec("100"),
	})
	require.NoError(t, err)
	require.True(t, created.Balance.Equal(decimal.Zero))

	resp, err := uc.Collect(context.Background(), created.ID, "transferencia")
	require.NoError(t, err)
	assert.True(t, resp.Collected)

	// Nada que cobrar: la caja queda intacta.
	assert.Empty(t, cashRepo.movements)
	stored, _ := orderRepo.GetByID(created.ID)
	assert.True(t, stored.Collected)
	assert.Equal(t, entity.PaymentTransferencia, stored.PaymentMethod)
}

func TestCollectYaCobrado(t *testing.T) {
	uc, _, cashRepo, _ := newTestUseCase()

	created, err := uc.Create(dto.CreateOrderRequest{
		ClientName:    "Ana",
		Items:         []dto.OrderItemInput{{ProductID: "prod-1", Quantity: dec("1")}},
		PaymentMethod: "efectivo",
	})
	require.NoError(t, err)

	_, err = uc.Collect(context.Background(), created.ID, "")
	require.NoError(t, err)

	_, err = uc.Collect(context.Background(), created.ID, "")
	require.ErrorIs(t, err, domain.ErrAlreadyCollected)
	// El reintento no duplica el ingreso.
	assert.Len(t, cashRepo.movements, 1)
}

func TestCollectFallaCajaNoMarca(t *testing.T) {
	uc, orderRepo, cashRepo, _ := newTestUseCase()
	cashRepo.appendErr = errors.New("caja caída")

	created, err := uc.Create(dto.CreateOrderRequest{
		ClientName:    "Ana",
		Items:         []dto.OrderItemInput{{ProductID: "prod-1", Quantity: dec("1")}},
		PaymentMethod: "efectivo",
	})
	require.NoError(t, err)

	_, err = uc.Collect(context.Background(), created.ID, "")
	require.Error(t, err)

	// El asiento falló: el pedido no puede quedar cobrado.
	stored, _ := orderRepo.GetByID(created.ID)
	assert.False(t, stored.Collected)
	assert.Empty(t, cashRepo.movements)
}

func TestCollectPedidoInexistente(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.Collect(context.Background(), "nope", "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollectMetodoInvalido(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	created, err := uc.Create(dto.CreateOrderRequest{
		ClientName: "Ana",
		Items:      []dto.OrderItemInput{{ProductID: "prod-1", Quantity: dec("1")}},
	})
	require.NoError(t, err)

	_, err = uc.Collect(context.Background(), created.ID, "cripto")
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
}
