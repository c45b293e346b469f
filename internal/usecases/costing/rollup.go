// Package costing calcula o custo de insumos dos produtos a partir da ficha técnica
package costing

import (
	"github.com/vfg2006/margin-insights-api/internal/domain"
)

// CostResult é o custo calculado de um produto.
// Um produto sem ficha técnica tem custo desconhecido, nunca custo zero.
type CostResult struct {
	ProductID      string   `json:"product_id"`
	HasRecipe      bool     `json:"has_recipe"`
	IngredientCost float64  `json:"ingredient_cost"`
	CostPerUnit    *float64 `json:"cost_per_unit,omitempty"`
	yield          *float64
	unknown        bool
}

// UnitCost retorna o custo de uma unidade vendida e se ele é conhecido.
// Sem rendimento informado a ficha técnica descreve uma unidade.
func (c CostResult) UnitCost() (float64, bool) {
	if c.unknown || !c.HasRecipe || c.IngredientCost <= 0 {
		return 0, false
	}

	if c.CostPerUnit != nil {
		return *c.CostPerUnit, true
	}

	if c.yield != nil {
		// rendimento informado mas inválido (<= 0)
		return 0, false
	}

	return c.IngredientCost, true
}

// Rollup calcula o custo de insumos do produto usando o custo unitário de cada insumo
func Rollup(product domain.Product) CostResult {
	result := CostResult{
		ProductID: product.ID,
		HasRecipe: product.HasRecipe(),
		yield:     product.Yield,
	}

	for _, line := range product.BOM {
		if line.Ingredient == nil {
			result.unknown = true
			continue
		}
		result.IngredientCost += line.Quantity * line.Ingredient.UnitCost
	}

	result.CostPerUnit = costPerUnit(result.IngredientCost, product.Yield)
	if result.unknown {
		result.CostPerUnit = nil
	}

	return result
}

func costPerUnit(ingredientCost float64, yield *float64) *float64 {
	if yield == nil || *yield <= 0 || ingredientCost <= 0 {
		return nil
	}

	perUnit := ingredientCost / *yield
	return &perUnit
}

// RollupAll calcula o custo de todos os produtos, indexado pelo ID do produto.
// Insumos intermediários são resolvidos pelo grafo de receitas.
func RollupAll(products []domain.Product, ingredients []domain.Ingredient) map[string]CostResult {
	catalog := make([]domain.Ingredient, 0, len(ingredients))
	for _, product := range products {
		for _, line := range product.BOM {
			if line.Ingredient != nil {
				catalog = append(catalog, *line.Ingredient)
			}
		}
	}
	catalog = append(catalog, ingredients...)

	graph := NewGraph(catalog)

	costs := make(map[string]CostResult, len(products))
	for _, product := range products {
		costs[product.ID] = graph.RollupProduct(product)
	}
	return costs
}
