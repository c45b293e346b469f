package pricing

import (
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/internal/usecases/costing"
)

// ProductMargin é a situação de margem de um produto ativo.
// Produtos com custo desconhecido ficam com CostKnown=false e não participam das regras de margem.
type ProductMargin struct {
	ProductID       string     `json:"product_id"`
	ProductName     string     `json:"product_name"`
	SalesPrice      float64    `json:"sales_price"`
	CostKnown       bool       `json:"cost_known"`
	UnitCost        float64    `json:"unit_cost"`
	MarginPercent   float64    `json:"margin_percent"`
	CMVPercent      float64    `json:"cmv_percent"`
	MarginGap       float64    `json:"margin_gap"` // meta - margem real, em pontos
	Suggestion      Suggestion `json:"suggestion"`
	BelowSuggestion bool       `json:"below_suggestion"`
	AboveTargetCMV  bool       `json:"above_target_cmv"`
	SalesCount      int        `json:"sales_count"`
}

// Priced indica se o produto tem custo e preço suficientes para cálculo de margem
func (m ProductMargin) Priced() bool {
	return m.CostKnown && m.SalesPrice > 0
}

// AnalyzeProductMargins calcula margem, CMV e preço sugerido dos produtos ativos,
// contando as vendas de cada produto no período
func AnalyzeProductMargins(
	products []domain.Product,
	costs map[string]costing.CostResult,
	cfg domain.ResolvedBusinessConfig,
	fixedCostPercent float64,
	sales []domain.Sale,
) []ProductMargin {
	salesCount := make(map[string]int)
	for _, sale := range sales {
		if sale.ProductID != nil {
			salesCount[*sale.ProductID]++
		}
	}

	margins := make([]ProductMargin, 0, len(products))
	for _, product := range products {
		if !product.Ativo {
			continue
		}

		margin := ProductMargin{
			ProductID:   product.ID,
			ProductName: product.Name,
			SalesPrice:  product.SalesPrice,
			SalesCount:  salesCount[product.ID],
		}

		cost, ok := costs[product.ID]
		if !ok {
			cost = costing.Rollup(product)
		}

		unitCost, known := cost.UnitCost()
		if !known {
			margins = append(margins, margin)
			continue
		}

		margin.CostKnown = true
		margin.UnitCost = unitCost
		margin.Suggestion = Suggest(SuggestionInput{
			IngredientCost:   unitCost,
			TargetMargin:     cfg.TargetMarginPercent,
			AverageTax:       cfg.AverageTaxPercent,
			FixedCostPercent: fixedCostPercent,
		})
		margin.Suggestion.Channel = domain.DefaultChannel

		if actual, ok := ActualMargin(product.SalesPrice, unitCost, cfg.AverageTaxPercent, fixedCostPercent, 0); ok {
			margin.MarginPercent = actual
			margin.MarginGap = cfg.TargetMarginPercent - actual
			margin.BelowSuggestion = IsBelowSuggestion(product.SalesPrice, margin.Suggestion)
		}

		if cmv, ok := CMVPercent(product.SalesPrice, unitCost); ok {
			margin.CMVPercent = cmv
			margin.AboveTargetCMV = cmv > cfg.TargetCMVPercent
		}

		margins = append(margins, margin)
	}

	return margins
}
