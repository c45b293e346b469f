package costing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/margin-insights-api/internal/domain"
)

var (
	ErrRecipeCycle       = errors.New("receita de insumo possui ciclo")
	ErrIngredientMissing = errors.New("insumo não encontrado")
)

type visitState int

const (
	unvisited visitState = iota
	visiting
	resolved
)

// Graph resolve o custo de insumos intermediários (insumos feitos de outros insumos).
// O custo de cada insumo é memorizado; ciclos e insumos ausentes deixam o custo desconhecido.
type Graph struct {
	ingredients map[string]domain.Ingredient
	costs       map[string]float64
	errs        map[string]error
	state       map[string]visitState
}

func NewGraph(ingredients []domain.Ingredient) *Graph {
	index := make(map[string]domain.Ingredient, len(ingredients))
	for _, ingredient := range ingredients {
		index[ingredient.ID] = ingredient
	}

	return &Graph{
		ingredients: index,
		costs:       make(map[string]float64, len(ingredients)),
		errs:        make(map[string]error),
		state:       make(map[string]visitState, len(ingredients)),
	}
}

// Cost retorna o custo unitário do insumo, resolvendo receitas intermediárias
func (g *Graph) Cost(ingredientID string) (float64, error) {
	switch g.state[ingredientID] {
	case resolved:
		return g.costs[ingredientID], g.errs[ingredientID]
	case visiting:
		return 0, fmt.Errorf("%w: %s", ErrRecipeCycle, ingredientID)
	}

	ingredient, ok := g.ingredients[ingredientID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrIngredientMissing, ingredientID)
	}

	if len(ingredient.Recipe) == 0 {
		g.finish(ingredientID, ingredient.UnitCost, nil)
		return ingredient.UnitCost, nil
	}

	g.state[ingredientID] = visiting

	total := 0.0
	for _, line := range ingredient.Recipe {
		childCost, err := g.Cost(line.IngredientID)
		if err != nil {
			g.finish(ingredientID, 0, err)
			return 0, err
		}
		total += line.Quantity * childCost
	}

	g.finish(ingredientID, total, nil)
	return total, nil
}

func (g *Graph) finish(ingredientID string, cost float64, err error) {
	g.state[ingredientID] = resolved
	g.costs[ingredientID] = cost
	if err != nil {
		g.errs[ingredientID] = err
	}
}

// RollupProduct calcula o custo do produto usando o custo resolvido pelo grafo.
// Qualquer insumo com custo desconhecido torna o custo do produto desconhecido.
func (g *Graph) RollupProduct(product domain.Product) CostResult {
	result := CostResult{
		ProductID: product.ID,
		HasRecipe: product.HasRecipe(),
		yield:     product.Yield,
	}

	for _, line := range product.BOM {
		ingredientID := line.IngredientID
		if ingredientID == "" && line.Ingredient != nil {
			ingredientID = line.Ingredient.ID
		}

		cost, err := g.Cost(ingredientID)
		if err != nil {
			result.unknown = true
			result.IngredientCost = 0
			return result
		}
		result.IngredientCost += line.Quantity * cost
	}

	result.CostPerUnit = costPerUnit(result.IngredientCost, product.Yield)
	return result
}
