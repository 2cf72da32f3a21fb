package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/pricing"
)

func comp(id string, cost string, active bool) *entity.CostComponent {
	return &entity.CostComponent{
		ID:       id,
		Name:     "componente " + id,
		Kind:     entity.ComponentKindInsumo,
		Unit:     "unidad",
		UnitCost: decimal.RequireFromString(cost),
		Active:   active,
	}
}

func line(id string, qty string) entity.RecipeItem {
	return entity.RecipeItem{ComponentID: id, Quantity: decimal.RequireFromString(qty)}
}

func TestRecipeCost_SumaLineasActivas(t *testing.T) {
	components := map[string]*entity.CostComponent{
		"hoja":  comp("hoja", "50", true),
		"tinta": comp("tinta", "1.5", true),
	}
	recipe := []entity.RecipeItem{
		line("hoja", "2"),    // 100
		line("tinta", "10"),  // 15
	}
	got := pricing.RecipeCost(recipe, components)
	assert.True(t, got.Equal(decimal.RequireFromString("115")), "costo esperado 115, fue %s", got)
}

func TestRecipeCost_OmiteComponenteInactivo(t *testing.T) {
	components := map[string]*entity.CostComponent{
		"hoja":  comp("hoja", "50", true),
		"tinta": comp("tinta", "1.5", false), // dado de baja después de armar la receta
	}
	recipe := []entity.RecipeItem{
		line("hoja", "2"),
		line("tinta", "10"),
	}
	got := pricing.RecipeCost(recipe, components)
	assert.True(t, got.Equal(decimal.RequireFromString("100")),
		"solo deben sumar los componentes activos, fue %s", got)
}

func TestRecipeCost_OmiteComponenteInexistenteYCantidadInvalida(t *testing.T) {
	components := map[string]*entity.CostComponent{
		"hoja": comp("hoja", "50", true),
	}
	recipe := []entity.RecipeItem{
		line("hoja", "1"),
		line("fantasma", "3"), // no existe en el registro
		line("hoja", "0"),     // cantidad no positiva
		line("hoja", "-2"),
		{ComponentID: "", Quantity: decimal.NewFromInt(5)}, // sin componente
	}
	got := pricing.RecipeCost(recipe, components)
	assert.True(t, got.Equal(decimal.RequireFromString("50")), "fue %s", got)
}

func TestRecipeCost_RecetaVaciaONil(t *testing.T) {
	components := map[string]*entity.CostComponent{"hoja": comp("hoja", "50", true)}

	assert.True(t, pricing.RecipeCost(nil, components).IsZero())
	assert.True(t, pricing.RecipeCost([]entity.RecipeItem{}, components).IsZero())
	assert.True(t, pricing.RecipeCost([]entity.RecipeItem{line("hoja", "1")}, nil).IsZero(),
		"sin registro de componentes ninguna línea resuelve")
}

func TestRecipeCost_RedondeoADosDecimales(t *testing.T) {
	// 3 × (0.1 × 0.1) = 0.03 exacto, sin artefactos de flotante.
	components := map[string]*entity.CostComponent{"c": comp("c", "0.1", true)}
	recipe := []entity.RecipeItem{
		line("c", "0.1"),
		line("c", "0.1"),
		line("c", "0.1"),
	}
	got := pricing.RecipeCost(recipe, components)
	assert.Equal(t, "0.03", got.String())
}

func TestRecipeCost_RedondeaMitadHaciaArriba(t *testing.T) {
	components := map[string]*entity.CostComponent{"c": comp("c", "0.335", true)}
	got := pricing.RecipeCost([]entity.RecipeItem{line("c", "1")}, components)
	assert.Equal(t, "0.34", got.String())
}

func TestComponentIDs_DeduplicaYOmiteVacios(t *testing.T) {
	recipe := []entity.RecipeItem{
		line("a", "1"),
		line("b", "1"),
		line("a", "2"),
		{ComponentID: "", Quantity: decimal.NewFromInt(1)},
	}
	assert.Equal(t, []string{"a", "b"}, pricing.ComponentIDs(recipe))
}
