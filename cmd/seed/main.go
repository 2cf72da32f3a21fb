// seed genera un script SQL con datos de arranque del taller: componentes de
// costo típicos de sublimación y productos de catálogo con su receta.
//
// Uso: go run ./cmd/seed
// Escribe: migrations/002_seed.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/entity"
	"github.com/asegovia1983/ARAMI-IMPRESIONES/internal/domain/pricing"
)

type seedComponent struct {
	id   string
	name string
	kind entity.ComponentKind
	unit string
	cost string
}

type seedProduct struct {
	name   string
	price  string
	recipe []entity.RecipeItem
}

func main() {
	components := []seedComponent{
		{uuid.New().String(), "Hoja sublimación A4", entity.ComponentKindInsumo, "hoja", "50"},
		{uuid.New().String(), "Tinta sublimación", entity.ComponentKindInsumo, "ml", "30"},
		{uuid.New().String(), "Taza lisa importada", entity.ComponentKindInsumo, "unidad", "700"},
		{uuid.New().String(), "Remera algodón blanca", entity.ComponentKindInsumo, "unidad", "1500"},
		{uuid.New().String(), "Electricidad plancha", entity.ComponentKindVariable, "hora", "120"},
		{uuid.New().String(), "Hora máquina plancha", entity.ComponentKindVariable, "hora", "200"},
		{uuid.New().String(), "Alquiler prorrateado", entity.ComponentKindFijo, "unidad", "80"},
	}
	byName := make(map[string]seedComponent, len(components))
	index := make(map[string]*entity.CostComponent, len(components))
	for _, c := range components {
		byName[c.name] = c
		index[c.id] = &entity.CostComponent{
			ID:       c.id,
			UnitCost: decimal.RequireFromString(c.cost),
			Active:   true,
		}
	}
	line := func(name, qty string) entity.RecipeItem {
		return entity.RecipeItem{ComponentID: byName[name].id, Quantity: decimal.RequireFromString(qty)}
	}

	products := []seedProduct{
		{"Taza personalizada", "2500", []entity.RecipeItem{
			line("Hoja sublimación A4", "1"),
			line("Tinta sublimación", "4"),
			line("Taza lisa importada", "1"),
			line("Electricidad plancha", "0.2"),
			line("Alquiler prorrateado", "1"),
		}},
		{"Remera estampada", "5500", []entity.RecipeItem{
			line("Hoja sublimación A4", "2"),
			line("Tinta sublimación", "8"),
			line("Remera algodón blanca", "1"),
			line("Hora máquina plancha", "0.3"),
			line("Alquiler prorrateado", "1"),
		}},
		{"Lámina A4 sublimada", "900", []entity.RecipeItem{
			line("Hoja sublimación A4", "1"),
			line("Tinta sublimación", "4"),
		}},
	}

	outPath := filepath.Join(findModuleRoot(), "migrations", "002_seed.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de arranque del taller (generado por cmd/seed)\n\n")

	out.WriteString("-- 1. Componentes de costo\n")
	for _, c := range components {
		fmt.Fprintf(out,
			"INSERT INTO cost_components (id, name, kind, unit, unit_cost, active, created_at, updated_at)\n"+
				"VALUES ('%s', '%s', '%s', '%s', %s, TRUE, now(), now())\nON CONFLICT (id) DO NOTHING;\n",
			c.id, escapeSQL(c.name), c.kind, c.unit, c.cost)
	}

	out.WriteString("\n-- 2. Productos con receta (costo calculado con los precios de arriba)\n")
	for _, p := range products {
		cost := pricing.RecipeCost(p.recipe, index)
		fmt.Fprintf(out,
			"INSERT INTO products (id, name, sku, category, price, active, recipe, computed_cost, created_at, updated_at)\n"+
				"VALUES ('%s', '%s', '', 'sublimación', %s, TRUE, '%s', %s, now(), now())\nON CONFLICT (id) DO NOTHING;\n",
			uuid.New().String(), escapeSQL(p.name), p.price, recipeJSON(p.recipe), cost)
	}

	fmt.Printf("Generado %s: %d componentes, %d productos\n", outPath, len(components), len(products))
}

func recipeJSON(recipe []entity.RecipeItem) string {
	parts := make([]string, 0, len(recipe))
	for _, l := range recipe {
		parts = append(parts, fmt.Sprintf(`{"component_id": "%s", "quantity": "%s"}`, l.ComponentID, l.Quantity))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
