// Package reports calcula el reporte de rentabilidad mensual. Es un derivado
// puro: se arma en memoria a partir de los pedidos cobrados del mes y nunca se
// persiste.
package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/application/dto"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/repository"
)

var oneHundred = decimal.NewFromInt(100)

// MonthlyUseCase caso de uso del reporte mensual.
type MonthlyUseCase struct {
	orderRepo repository.OrderRepository
}

// NewMonthlyUseCase construye el caso de uso.
func NewMonthlyUseCase(orderRepo repository.OrderRepository) *MonthlyUseCase {
	return &MonthlyUseCase{orderRepo: orderRepo}
}

// Generate arma el reporte del mes calendario dado, en hora local.
//
// Entran solo los pedidos cobrados CREADOS dentro del mes; un pedido de marzo
// cobrado en abril cuenta para marzo. Ingreso y costo salen de los valores
// congelados en los ítems; el descuento del pedido no se prorratea por línea.
// Las líneas se agrupan por nombre congelado y se ordenan por ingreso
// descendente (a igual ingreso, por nombre).
func (uc *MonthlyUseCase) Generate(year, month int) (*dto.MonthlyReportResponse, error) {
	ve := &domain.ValidationError{}
	if month < 1 || month > 12 {
		ve.Add(fmt.Sprintf("month debe estar entre 1 y 12, llegó %d", month))
	}
	if year < 2000 || year > 2100 {
		ve.Add(fmt.Sprintf("year fuera de rango: %d", year))
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	collected, err := uc.orderRepo.ListCollectedBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos cobrados del mes: %w", err)
	}

	type acc struct {
		quantity decimal.Decimal
		revenue  decimal.Decimal
		cost     decimal.Decimal
	}
	byName := make(map[string]*acc)
	totalRevenue := decimal.Zero
	totalCost := decimal.Zero

	for _, order := range collected {
		for _, item := range order.Items {
			revenue := item.UnitPrice.Mul(item.Quantity)
			cost := item.UnitCost.Mul(item.Quantity)

			a, ok := byName[item.Name]
			if !ok {
				a = &acc{
					quantity: decimal.Zero,
					revenue:  decimal.Zero,
					cost:     decimal.Zero,
				}
				byName[item.Name] = a
			}
			a.quantity = a.quantity.Add(item.Quantity)
			a.revenue = a.revenue.Add(revenue)
			a.cost = a.cost.Add(cost)

			totalRevenue = totalRevenue.Add(revenue)
			totalCost = totalCost.Add(cost)
		}
	}

	lines := make([]dto.ReportProductLine, 0, len(byName))
	for name, a := range byName {
		profit := a.revenue.Sub(a.cost)
		lines = append(lines, dto.ReportProductLine{
			Name:     name,
			Quantity: a.quantity,
			Revenue:  a.revenue,
			Cost:     a.cost,
			Profit:   profit,
			Margin:   margin(profit, a.revenue),
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		if !lines[i].Revenue.Equal(lines[j].Revenue) {
			return lines[i].Revenue.GreaterThan(lines[j].Revenue)
		}
		return lines[i].Name < lines[j].Name
	})

	totalProfit := totalRevenue.Sub(totalCost)
	return &dto.MonthlyReportResponse{
		Year:       year,
		Month:      month,
		OrderCount: len(collected),
		Revenue:    totalRevenue,
		Cost:       totalCost,
		Profit:     totalProfit,
		Margin:     margin(totalProfit, totalRevenue),
		PerProduct: lines,
	}, nil
}

// margin devuelve profit/revenue como porcentaje a 2 decimales; 0 si el
// ingreso es 0 (nunca divide por cero).
func margin(profit, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(oneHundred).Round(2)
}
