package insighting

import (
	"fmt"

	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/internal/usecases/pricing"
	"github.com/vfg2006/margin-insights-api/pkg/utils"
)

const (
	KindGoalReached         = "goal_reached"
	KindGoalBehind          = "goal_behind"
	KindMarginDeficit       = "margin_deficit"
	KindIngredientInflation = "ingredient_inflation"
	KindRevenueDrop         = "revenue_drop"
	KindChannelErosion      = "channel_erosion"
	KindGoalAhead           = "goal_ahead"
	KindRevenueGrowth       = "revenue_growth"
	KindPromoOpportunity    = "promo_opportunity"
	KindAllHealthy          = "all_healthy"
	KindZeroState           = "zero_state"
)

const (
	goalBehindTolerance  = 15.0 // pontos abaixo do progresso esperado
	goalAheadMargin      = 10.0 // pontos acima do progresso esperado
	marginDeficitPoints  = 5.0
	weeklyDropPercent    = -20.0
	weeklyGrowthPercent  = 20.0
	promoMinMargin       = 40.0
	promoMaxSales        = 2
	promoMaxSuccessFired = 2
)

// Rotas abstratas interpretadas pela camada de apresentação
const (
	routeFinance    = "financeiro"
	routePricing    = "produtos/precificacao"
	routeIngredient = "ingredientes"
	routeSales      = "vendas"
	routeNewSale    = "vendas/nova"
	routeChannels   = "canais"
)

// finding é o conteúdo de uma regra que disparou
type finding struct {
	Headline string
	Detail   string
	Action   *domain.InsightAction
}

// Rule é uma verificação independente e sem efeitos colaterais.
// Retorna nil quando a condição não é atendida.
type Rule struct {
	Kind     string
	Status   domain.InsightStatus
	Priority int
	Check    func(e *evaluation) *finding
}

// DefaultRules retorna o conjunto de regras na ordem de avaliação, usada como desempate entre prioridades iguais
func DefaultRules() []Rule {
	return []Rule{
		{Kind: KindGoalReached, Status: domain.InsightStatusSuccess, Priority: 10, Check: goalReached},
		{Kind: KindGoalBehind, Status: domain.InsightStatusAlert, Priority: 9, Check: goalBehind},
		{Kind: KindMarginDeficit, Status: domain.InsightStatusWarning, Priority: 8, Check: marginDeficit},
		{Kind: KindIngredientInflation, Status: domain.InsightStatusAlert, Priority: 8, Check: ingredientInflation},
		{Kind: KindRevenueDrop, Status: domain.InsightStatusAlert, Priority: 8, Check: revenueDrop},
		{Kind: KindChannelErosion, Status: domain.InsightStatusWarning, Priority: 7, Check: channelErosion},
		{Kind: KindGoalAhead, Status: domain.InsightStatusSuccess, Priority: 7, Check: goalAhead},
		{Kind: KindRevenueGrowth, Status: domain.InsightStatusSuccess, Priority: 6, Check: revenueGrowth},
		{Kind: KindPromoOpportunity, Status: domain.InsightStatusNeutral, Priority: 4, Check: promoOpportunity},
	}
}

func goalReached(e *evaluation) *finding {
	if e.pacing == nil || !e.pacing.GoalReached() {
		return nil
	}

	return &finding{
		Headline: "Meta do mês atingida!",
		Detail: fmt.Sprintf(
			"O faturamento de %s já cobre a meta de %s, que mantém os custos fixos em até 20%% das vendas.",
			utils.FormatBRL(e.pacing.RevenueInPeriod),
			utils.FormatBRL(e.pacing.MonthlyTarget),
		),
		Action: &domain.InsightAction{Label: "Ver financeiro", Route: routeFinance},
	}
}

func goalBehind(e *evaluation) *finding {
	p := e.pacing
	if p == nil || p.Shortfall <= 0 || p.ActualProgressPercent >= p.ExpectedProgressPercent-goalBehindTolerance {
		return nil
	}

	detail := fmt.Sprintf(
		"Você está em %s da meta de %s, mas o esperado para o dia %d é %s. Faltam %s.",
		utils.FormatPercent(p.ActualProgressPercent),
		utils.FormatBRL(p.MonthlyTarget),
		p.DayOfMonth,
		utils.FormatPercent(p.ExpectedProgressPercent),
		utils.FormatBRL(p.Shortfall),
	)
	if p.RequiredDailyAverage != nil {
		detail += fmt.Sprintf(" Será preciso vender %s por dia até o fim do mês.", utils.FormatBRL(*p.RequiredDailyAverage))
	}

	return &finding{
		Headline: "Vendas abaixo do ritmo da meta do mês",
		Detail:   detail,
		Action:   &domain.InsightAction{Label: "Ver financeiro", Route: routeFinance},
	}
}

func marginDeficit(e *evaluation) *finding {
	var worst *pricing.ProductMargin
	for i := range e.products {
		product := &e.products[i]
		if !product.Priced() || product.MarginGap <= marginDeficitPoints {
			continue
		}
		if worst == nil || product.MarginGap > worst.MarginGap {
			worst = product
		}
	}

	if worst == nil {
		return nil
	}

	result := &finding{
		Headline: fmt.Sprintf("%s está com margem de %s", worst.ProductName, utils.FormatPercent(worst.MarginPercent)),
	}

	if !worst.Suggestion.Viable {
		result.Detail = fmt.Sprintf(
			"A meta é %s, mas com os impostos e custos fixos atuais nenhum preço atinge essa margem. Revise as metas em configurações.",
			utils.FormatPercent(e.cfg.TargetMarginPercent),
		)
		return result
	}

	increase := utils.PercentOf(worst.Suggestion.SuggestedPrice-worst.SalesPrice, worst.SalesPrice)
	result.Detail = fmt.Sprintf(
		"A meta é %s. Para atingi-la o preço deve ir de %s para %s (+%s).",
		utils.FormatPercent(e.cfg.TargetMarginPercent),
		utils.FormatBRL(worst.SalesPrice),
		utils.FormatBRL(worst.Suggestion.SuggestedPrice),
		utils.FormatPercent(increase),
	)
	result.Action = &domain.InsightAction{Label: "Ajustar preço", Route: routePricing, EntityID: worst.ProductID}

	return result
}

func ingredientInflation(e *evaluation) *finding {
	if len(e.inflation) == 0 {
		return nil
	}

	worst := e.inflation[0]
	return &finding{
		Headline: fmt.Sprintf("%s subiu %s nos últimos 30 dias", worst.IngredientName, utils.FormatPercent(worst.CumulativeVariation)),
		Detail: fmt.Sprintf(
			"O preço atual é %s após %d reajuste(s). Revise o preço dos produtos que usam este insumo.",
			utils.FormatBRL(worst.LatestPrice),
			worst.Changes,
		),
		Action: &domain.InsightAction{Label: "Ver insumo", Route: routeIngredient, EntityID: worst.IngredientID},
	}
}

func revenueDrop(e *evaluation) *finding {
	variation := e.weekly.VariationPercent
	if variation == nil || *variation >= weeklyDropPercent {
		return nil
	}

	return &finding{
		Headline: fmt.Sprintf("Faturamento da semana caiu %s", utils.FormatPercent(-*variation)),
		Detail: fmt.Sprintf(
			"Foram %s nesta semana contra %s na semana anterior.",
			utils.FormatBRL(e.weekly.CurrentRevenue),
			utils.FormatBRL(e.weekly.PreviousRevenue),
		),
		Action: &domain.InsightAction{Label: "Ver vendas", Route: routeSales},
	}
}

func channelErosion(e *evaluation) *finding {
	best, worst, ok := e.channels.Erosion()
	if !ok {
		return nil
	}

	return &finding{
		Headline: fmt.Sprintf(
			"Margem no %s está %s abaixo do %s",
			worst.Channel,
			utils.FormatPoints(best.MarginPercent-worst.MarginPercent),
			best.Channel,
		),
		Detail: fmt.Sprintf(
			"Margem de %s no %s (taxa de %s) contra %s no %s. Considere um preço específico para o canal.",
			utils.FormatPercent(worst.MarginPercent),
			worst.Channel,
			utils.FormatPercent(worst.FeePercent),
			utils.FormatPercent(best.MarginPercent),
			best.Channel,
		),
		Action: &domain.InsightAction{Label: "Ver canais", Route: routeChannels},
	}
}

func goalAhead(e *evaluation) *finding {
	p := e.pacing
	if p == nil || p.Shortfall <= 0 || p.ActualProgressPercent < p.ExpectedProgressPercent+goalAheadMargin {
		return nil
	}

	return &finding{
		Headline: "Vendas acima do ritmo da meta do mês",
		Detail: fmt.Sprintf(
			"Você já está em %s da meta de %s, acima dos %s esperados para o dia %d.",
			utils.FormatPercent(p.ActualProgressPercent),
			utils.FormatBRL(p.MonthlyTarget),
			utils.FormatPercent(p.ExpectedProgressPercent),
			p.DayOfMonth,
		),
		Action: &domain.InsightAction{Label: "Ver financeiro", Route: routeFinance},
	}
}

func revenueGrowth(e *evaluation) *finding {
	variation := e.weekly.VariationPercent
	if variation == nil || *variation <= weeklyGrowthPercent {
		return nil
	}

	return &finding{
		Headline: fmt.Sprintf("Faturamento da semana cresceu %s", utils.FormatPercent(*variation)),
		Detail: fmt.Sprintf(
			"Foram %s nesta semana contra %s na semana anterior.",
			utils.FormatBRL(e.weekly.CurrentRevenue),
			utils.FormatBRL(e.weekly.PreviousRevenue),
		),
		Action: &domain.InsightAction{Label: "Ver vendas", Route: routeSales},
	}
}

func promoOpportunity(e *evaluation) *finding {
	if e.successCount() >= promoMaxSuccessFired {
		return nil
	}

	var best *pricing.ProductMargin
	for i := range e.products {
		product := &e.products[i]
		if !product.Priced() || product.MarginPercent < promoMinMargin || product.SalesCount > promoMaxSales {
			continue
		}
		if best == nil || product.MarginPercent > best.MarginPercent {
			best = product
		}
	}

	if best == nil {
		return nil
	}

	return &finding{
		Headline: fmt.Sprintf("%s tem margem de %s e poucas vendas", best.ProductName, utils.FormatPercent(best.MarginPercent)),
		Detail: fmt.Sprintf(
			"Foram só %d venda(s) no período. Uma promoção pode aumentar o giro sem comprometer a margem.",
			best.SalesCount,
		),
		Action: &domain.InsightAction{Label: "Ver produto", Route: routePricing, EntityID: best.ProductID},
	}
}
