// Package orders contiene los casos de uso de pedidos: alta con congelado de
// precios/costos, recálculo de derivados en cada mutación y el cobro en dos
// pasos (asiento de caja + marca de cobrado).
package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/dto"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	domainorders "github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/orders"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/pkg/validator"
)

// UseCase casos de uso de pedidos.
type UseCase struct {
	txRunner    CollectTxRunner
	orderRepo   repository.OrderRepository
	cashRepo    repository.CashRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner CollectTxRunner,
	orderRepo repository.OrderRepository,
	cashRepo repository.CashRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		orderRepo:   orderRepo,
		cashRepo:    cashRepo,
		productRepo: productRepo,
	}
}

// Create valida la entrada completa (todas las fallas juntas), congela nombre,
// precio y costo unitarios desde el producto, deriva subtotal/total/saldo y
// persiste. El pedido nace pendiente salvo estado explícito.
func (uc *UseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	ve := &domain.ValidationError{}
	ve.AddAll(validator.Reasons(in))
	if strings.TrimSpace(in.ClientName) == "" {
		ve.Add("client_name no puede ser vacío")
	}
	if in.Discount.IsNegative() {
		ve.Add("discount no puede ser negativo")
	}
	if in.Advance.IsNegative() {
		ve.Add("advance no puede ser negativo")
	}
	items, err := uc.snapshotItems(ve, in.Items)
	if err != nil {
		return nil, err
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	state := entity.OrderStatePendiente
	if in.State != "" {
		state = entity.OrderState(in.State)
	}
	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		ClientName:    strings.TrimSpace(in.ClientName),
		Phone:         in.Phone,
		State:         state,
		Items:         items,
		Discount:      in.Discount,
		Advance:       in.Advance,
		Notes:         in.Notes,
		PromisedDate:  in.PromisedDate,
		Collected:     false,
		PaymentMethod: entity.PaymentMethod(in.PaymentMethod),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if state == entity.OrderStateEntregado {
		order.DeliveredAt = &now
	}
	domainorders.Recalculate(order)

	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido por ID. Devuelve nil si no existe.
func (uc *UseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// Update aplica un parche. Si el parche trae ítems, los valores unitarios se
// vuelven a congelar desde los productos actuales (foto al momento de la
// edición). Los derivados se recalculan siempre; nunca se parchan sueltos.
// El cambio de estado es libre: no se impone tabla de transiciones.
func (uc *UseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	ve := &domain.ValidationError{}
	ve.AddAll(validator.Reasons(in))
	if in.ClientName != nil && strings.TrimSpace(*in.ClientName) == "" {
		ve.Add("client_name no puede ser vacío")
	}
	if in.Discount != nil && in.Discount.IsNegative() {
		ve.Add("discount no puede ser negativo")
	}
	if in.Advance != nil && in.Advance.IsNegative() {
		ve.Add("advance no puede ser negativo")
	}
	var items []entity.OrderItem
	if in.Items != nil {
		items, err = uc.snapshotItems(ve, *in.Items)
		if err != nil {
			return nil, err
		}
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	if in.ClientID != nil {
		order.ClientID = *in.ClientID
	}
	if in.ClientName != nil {
		order.ClientName = strings.TrimSpace(*in.ClientName)
	}
	if in.Phone != nil {
		order.Phone = *in.Phone
	}
	if in.State != nil {
		order.State = entity.OrderState(*in.State)
		if order.State == entity.OrderStateEntregado && order.DeliveredAt == nil {
			now := time.Now()
			order.DeliveredAt = &now
		}
	}
	if in.Items != nil {
		order.Items = items
	}
	if in.Discount != nil {
		order.Discount = *in.Discount
	}
	if in.Advance != nil {
		order.Advance = *in.Advance
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if in.PromisedDate != nil {
		order.PromisedDate = *in.PromisedDate
	}
	if in.PaymentMethod != nil {
		order.PaymentMethod = entity.PaymentMethod(*in.PaymentMethod)
	}
	domainorders.Recalculate(order)
	order.UpdatedAt = time.Now()

	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListByStates lista pedidos por conjunto de estados. Sin estados lista la
// vista principal (pendiente, en_proceso, terminado).
func (uc *UseCase) ListByStates(states []string, limit, offset int) (*dto.OrderListResponse, error) {
	set := make([]entity.OrderState, 0, len(states))
	ve := &domain.ValidationError{}
	for _, s := range states {
		st := entity.OrderState(s)
		if !entity.ValidOrderState(st) {
			ve.Add(fmt.Sprintf("estado desconocido: %q", s))
			continue
		}
		set = append(set, st)
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		set = []entity.OrderState{
			entity.OrderStatePendiente,
			entity.OrderStateEnProceso,
			entity.OrderStateTerminado,
		}
	}
	list, err := uc.orderRepo.ListByStates(set, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListDelivered lista solo los pedidos entregados (vista de cobros).
func (uc *UseCase) ListDelivered(limit, offset int) (*dto.OrderListResponse, error) {
	return uc.ListByStates([]string{string(entity.OrderStateEntregado)}, limit, offset)
}

// Delete borra un pedido por ID.
func (uc *UseCase) Delete(id string) error {
	return uc.orderRepo.Delete(id)
}

// Collect cobra el saldo pendiente de un pedido.
//
// Saldo ≤ 0: no se debe nada, solo marca cobrado (cero asientos de caja).
// Saldo > 0: asienta el ingreso en caja y LUEGO marca cobrado, ambos dentro
// de una transacción: si el asiento falla, el pedido no queda cobrado; el
// error llega al operador, que puede reintentar (un pedido ya cobrado
// devuelve ErrAlreadyCollected, así el reintento no duplica el ingreso).
func (uc *UseCase) Collect(ctx context.Context, id string, methodOverride string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Collected {
		return nil, domain.ErrAlreadyCollected
	}

	method := order.PaymentMethod
	if methodOverride != "" {
		method = entity.PaymentMethod(methodOverride)
	}
	if method == "" {
		method = entity.PaymentEfectivo
	}
	if !entity.ValidPaymentMethod(method) {
		ve := &domain.ValidationError{}
		ve.Add(fmt.Sprintf("método de pago desconocido: %q", method))
		return nil, ve
	}
	now := time.Now()

	if !order.Balance.GreaterThan(decimal.Zero) {
		if err := uc.orderRepo.MarkCollected(order.ID, method, now); err != nil {
			return nil, err
		}
	} else {
		err = uc.txRunner.RunCollect(ctx, func(
			orderRepo repository.OrderRepository,
			cashRepo repository.CashRepository,
		) error {
			movement := &entity.CashMovement{
				ID:            uuid.New().String(),
				Type:          entity.MovementIngreso,
				Origin:        entity.OriginPedido,
				ReferenceID:   "pedidos/" + order.ID,
				Amount:        order.Balance,
				Description:   "Cobro pedido " + order.ID,
				PaymentMethod: method,
				Date:          now,
				CreatedAt:     now,
			}
			if err := cashRepo.Append(movement); err != nil {
				return fmt.Errorf("asentar ingreso en caja: %w", err)
			}
			return orderRepo.MarkCollected(order.ID, method, now)
		})
		if err != nil {
			return nil, err
		}
	}

	order.Collected = true
	order.PaymentMethod = method
	order.UpdatedAt = now
	return toOrderResponse(order), nil
}

// snapshotItems valida las líneas y congela nombre/precio/costo desde el
// producto. Un producto inexistente es una falla de validación más, no un
// error aparte: se reporta junto con el resto.
func (uc *UseCase) snapshotItems(ve *domain.ValidationError, inputs []dto.OrderItemInput) ([]entity.OrderItem, error) {
	if len(inputs) == 0 {
		ve.Add("debe seleccionarse al menos un producto")
		return nil, nil
	}
	items := make([]entity.OrderItem, 0, len(inputs))
	for i, in := range inputs {
		ok := true
		if strings.TrimSpace(in.ProductID) == "" {
			ve.Add(fmt.Sprintf("ítem %d: product_id es requerido", i+1))
			ok = false
		}
		if !in.Quantity.GreaterThan(decimal.Zero) {
			ve.Add(fmt.Sprintf("ítem %d: quantity debe ser mayor que 0", i+1))
			ok = false
		}
		if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
			ve.Add(fmt.Sprintf("ítem %d: unit_price no puede ser negativo", i+1))
			ok = false
		}
		if in.UnitCost != nil && in.UnitCost.IsNegative() {
			ve.Add(fmt.Sprintf("ítem %d: unit_cost no puede ser negativo", i+1))
			ok = false
		}
		if !ok {
			continue
		}

		product, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			ve.Add(fmt.Sprintf("ítem %d: el producto %q no existe", i+1, in.ProductID))
			continue
		}

		price := product.Price
		if in.UnitPrice != nil {
			price = *in.UnitPrice
		}
		cost := product.ComputedCost
		if in.UnitCost != nil {
			cost = *in.UnitCost
		}
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Options:   in.Options,
			Quantity:  in.Quantity,
			UnitPrice: price,
			UnitCost:  cost,
		})
	}
	return items, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Options:   it.Options,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			UnitCost:  it.UnitCost,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		Phone:         o.Phone,
		State:         string(o.State),
		Items:         items,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Advance:       o.Advance,
		Total:         o.Total,
		Balance:       o.Balance,
		Notes:         o.Notes,
		PromisedDate:  o.PromisedDate,
		Collected:     o.Collected,
		PaymentMethod: string(o.PaymentMethod),
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
