// Package pricing contiene el cálculo de costo de recetas (servicio de dominio).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
)

// RecipeCost calcula el costo total de una receta contra el registro actual de
// componentes: Σ cantidad × costo unitario, redondeado a 2 decimales.
//
// Las líneas con cantidad ≤ 0, sin componente, o cuyo componente no existe o
// está inactivo se omiten en silencio: la receta degrada en lugar de fallar
// cuando un componente se da de baja después de escribirla.
// Receta vacía o nil → 0. Función pura, sin efectos.
func RecipeCost(recipe []entity.RecipeItem, components map[string]*entity.CostComponent) decimal.Decimal {
	if len(recipe) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, line := range recipe {
		if line.ComponentID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		comp, ok := components[line.ComponentID]
		if !ok || comp == nil || !comp.Active {
			continue
		}
		total = total.Add(line.Quantity.Mul(comp.UnitCost))
	}
	return total.Round(2)
}

// ComponentIDs devuelve los IDs referenciados por la receta (para el fetch del
// registro de componentes antes de calcular).
func ComponentIDs(recipe []entity.RecipeItem) []string {
	seen := make(map[string]struct{}, len(recipe))
	ids := make([]string, 0, len(recipe))
	for _, line := range recipe {
		if line.ComponentID == "" {
			continue
		}
		if _, dup := seen[line.ComponentID]; dup {
			continue
		}
		seen[line.ComponentID] = struct{}{}
		ids = append(ids, line.ComponentID)
	}
	return ids
}
