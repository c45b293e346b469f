package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/internal/usecases/costing"
)

func bomProduct(id string, price, cost float64) domain.Product {
	return domain.Product{
		ID:         id,
		Name:       id,
		SalesPrice: price,
		Ativo:      true,
		BOM: []domain.BOMLine{{
			IngredientID: id + "-insumo",
			Quantity:     1,
			Ingredient:   &domain.Ingredient{ID: id + "-insumo", UnitCost: cost},
		}},
	}
}

func TestAnalyzeProductMargins(t *testing.T) {
	cfg := domain.BusinessConfig{}.Resolve()
	productID := "bolo"

	products := []domain.Product{
		bomProduct("bolo", 10, 6),
		bomProduct("brigadeiro", 5, 1),
		{ID: "sem-receita", Name: "Sem receita", SalesPrice: 8, Ativo: true},
		{ID: "inativo", Name: "Inativo", SalesPrice: 8, Ativo: false},
	}
	sales := []domain.Sale{{ProductID: &productID}, {ProductID: &productID}, {}}

	margins := AnalyzeProductMargins(products, costing.RollupAll(products, nil), cfg, 0, sales)

	require.Len(t, margins, 3)

	bolo := margins[0]
	assert.True(t, bolo.Priced())
	assert.InDelta(t, 30.0, bolo.MarginPercent, 1e-9) // 10 - 6 - 1 = 3
	assert.InDelta(t, 0.0, bolo.MarginGap, 1e-9)
	assert.InDelta(t, 60.0, bolo.CMVPercent, 1e-9)
	assert.True(t, bolo.AboveTargetCMV)
	assert.InDelta(t, 10.0, bolo.Suggestion.SuggestedPrice, 1e-9)
	assert.False(t, bolo.BelowSuggestion)
	assert.Equal(t, 2, bolo.SalesCount)

	brigadeiro := margins[1]
	assert.InDelta(t, 70.0, brigadeiro.MarginPercent, 1e-9)
	assert.Equal(t, 0, brigadeiro.SalesCount)

	semReceita := margins[2]
	assert.False(t, semReceita.CostKnown)
	assert.False(t, semReceita.Priced())
	assert.Equal(t, 0.0, semReceita.MarginPercent)
}
