package insighting

import (
	"time"

	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/internal/usecases/channelmargin"
	"github.com/vfg2006/margin-insights-api/internal/usecases/costing"
	"github.com/vfg2006/margin-insights-api/internal/usecases/pacing"
	"github.com/vfg2006/margin-insights-api/internal/usecases/pricing"
	"github.com/vfg2006/margin-insights-api/internal/usecases/trends"
)

// Snapshot contém os dados já carregados para uma avaliação. Nada aqui é alterado pelo motor.
type Snapshot struct {
	Now    time.Time
	Period domain.Period

	// Sales são as vendas do período selecionado
	Sales []domain.Sale
	// TrendSales cobre a semana corrente e a anterior; quando nil usa Sales
	TrendSales []domain.Sale

	Products     []domain.Product
	Ingredients  []domain.Ingredient
	ChannelFees  []domain.ChannelFeeConfig
	FixedCosts   []domain.FixedCost
	Config       domain.BusinessConfig
	PriceHistory []domain.PriceHistoryEntry
}

// evaluation guarda os dados derivados uma única vez por avaliação e os candidatos já disparados
type evaluation struct {
	snap Snapshot
	cfg  domain.ResolvedBusinessConfig

	revenue          float64
	totalFixedCost   float64
	fixedCostPercent float64

	costs     map[string]costing.CostResult
	sales     []domain.Sale
	channels  channelmargin.Analysis
	pacing    *pacing.GoalPacing
	weekly    trends.WeeklyTrend
	inflation []trends.InflationAlert
	products  []pricing.ProductMargin

	fired []domain.InsightCandidate
}

func derive(snap Snapshot, defaults domain.ResolvedBusinessConfig) *evaluation {
	e := &evaluation{
		snap:           snap,
		cfg:            snap.Config.ResolveWith(defaults),
		revenue:        domain.TotalRevenue(snap.Sales),
		totalFixedCost: domain.TotalFixedCostMonthly(snap.FixedCosts),
	}

	e.fixedCostPercent = pricing.FixedCostPercent(e.totalFixedCost, e.cfg.MonthlyRevenueTarget)
	e.costs = costing.RollupAll(snap.Products, snap.Ingredients)
	e.sales = withUnitCosts(snap.Sales, e.costs)
	e.channels = channelmargin.Analyze(e.sales, snap.ChannelFees)
	e.pacing = pacing.Calculate(e.totalFixedCost, e.revenue, snap.Now, snap.Period)

	trendSales := snap.TrendSales
	if trendSales == nil {
		trendSales = snap.Sales
	}
	e.weekly = trends.Weekly(trendSales, snap.Now)
	e.inflation = trends.IngredientInflation(snap.PriceHistory, snap.Now)
	e.products = pricing.AnalyzeProductMargins(snap.Products, e.costs, e.cfg, e.fixedCostPercent, snap.Sales)

	return e
}

// withUnitCosts completa o custo unitário das vendas sem registro do custo no momento da venda
// usando o custo atual da ficha técnica. As vendas originais não são alteradas.
func withUnitCosts(sales []domain.Sale, costs map[string]costing.CostResult) []domain.Sale {
	completed := make([]domain.Sale, len(sales))
	copy(completed, sales)

	for i := range completed {
		sale := &completed[i]
		if sale.ProductUnitCost != nil || sale.ProductID == nil {
			continue
		}

		cost, ok := costs[*sale.ProductID]
		if !ok {
			continue
		}

		if unitCost, known := cost.UnitCost(); known {
			sale.ProductUnitCost = &unitCost
		}
	}

	return completed
}

// successCount conta os candidatos de sucesso já disparados nesta avaliação
func (e *evaluation) successCount() int {
	count := 0
	for _, candidate := range e.fired {
		if candidate.Status == domain.InsightStatusSuccess {
			count++
		}
	}
	return count
}
