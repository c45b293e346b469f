// Package pricing calcula o preço de venda necessário para atingir a margem alvo
package pricing

import (
	"math"

	"github.com/vfg2006/margin-insights-api/internal/domain"
)

const (
	// fallbackMultiplier é usado quando a combinação de percentuais é inviável
	fallbackMultiplier = 3.0
	// priceTolerance evita alternância do alerta por ruído de ponto flutuante
	priceTolerance = 0.01
	// percentEpsilon absorve o ruído de percentuais derivados como o custo fixo
	percentEpsilon = 1e-9
)

type SuggestionInput struct {
	IngredientCost    float64
	TargetMargin      float64
	AverageTax        float64
	FixedCostPercent  float64
	ChannelFeePercent float64
}

// Suggestion é o preço sugerido para uma combinação de custos e percentuais.
// Uma sugestão inviável nunca deve ser apresentada como meta alcançável.
type Suggestion struct {
	Channel           string  `json:"channel"`
	ChannelFeePercent float64 `json:"channel_fee_percent"`
	SuggestedPrice    float64 `json:"suggested_price"`
	Divisor           float64 `json:"divisor"`
	Viable            bool    `json:"viable"`
}

// Suggest inverte a equação margem/impostos/taxas sobre o preço.
// A viabilidade é decidida pela soma dos percentuais em pontos.
func Suggest(in SuggestionInput) Suggestion {
	committed := in.TargetMargin + in.AverageTax + in.FixedCostPercent + in.ChannelFeePercent
	viable := committed < 100-percentEpsilon

	divisor := (100 - committed) / 100
	if !viable {
		divisor = math.Min(divisor, 0)
	}

	suggestion := Suggestion{
		ChannelFeePercent: in.ChannelFeePercent,
		Divisor:           divisor,
	}

	if in.IngredientCost <= 0 {
		return suggestion
	}

	if !viable {
		suggestion.SuggestedPrice = in.IngredientCost * fallbackMultiplier
		return suggestion
	}

	suggestion.SuggestedPrice = in.IngredientCost / divisor
	suggestion.Viable = true
	return suggestion
}

// FixedCostPercent converte o custo fixo mensal em percentual do faturamento declarado.
// Sem meta de faturamento declarada o percentual é zero.
func FixedCostPercent(totalFixedCostMonthly float64, monthlyRevenueTarget *float64) float64 {
	if monthlyRevenueTarget == nil || *monthlyRevenueTarget <= 0 {
		return 0
	}
	return totalFixedCostMonthly / *monthlyRevenueTarget * 100
}

// SuggestPerChannel calcula o preço para venda direta (Balcão) e para cada canal configurado
func SuggestPerChannel(
	ingredientCost float64,
	cfg domain.ResolvedBusinessConfig,
	fixedCostPercent float64,
	fees []domain.ChannelFeeConfig,
) []Suggestion {
	suggestions := make([]Suggestion, 0, len(fees)+1)

	baseline := Suggest(SuggestionInput{
		IngredientCost:   ingredientCost,
		TargetMargin:     cfg.TargetMarginPercent,
		AverageTax:       cfg.AverageTaxPercent,
		FixedCostPercent: fixedCostPercent,
	})
	baseline.Channel = domain.DefaultChannel
	suggestions = append(suggestions, baseline)

	for _, fee := range fees {
		suggestion := Suggest(SuggestionInput{
			IngredientCost:    ingredientCost,
			TargetMargin:      cfg.TargetMarginPercent,
			AverageTax:        cfg.AverageTaxPercent,
			FixedCostPercent:  fixedCostPercent,
			ChannelFeePercent: fee.FeePercent,
		})
		suggestion.Channel = fee.ChannelName
		suggestions = append(suggestions, suggestion)
	}

	return suggestions
}

// IsBelowSuggestion indica se o preço atual está abaixo de uma sugestão viável
func IsBelowSuggestion(currentPrice float64, suggestion Suggestion) bool {
	return suggestion.Viable && currentPrice < suggestion.SuggestedPrice-priceTolerance
}

// ActualMargin calcula a margem real do preço atual usando a mesma equação que Suggest inverte.
// Retorna false quando o preço é inválido.
func ActualMargin(price, unitCost, averageTax, fixedCostPercent, channelFeePercent float64) (float64, bool) {
	if price <= 0 {
		return 0, false
	}

	profit := price -
		unitCost -
		price*averageTax/100 -
		price*fixedCostPercent/100 -
		price*channelFeePercent/100

	return profit / price * 100, true
}

// CMVPercent calcula o custo da mercadoria vendida como percentual do preço
func CMVPercent(price, unitCost float64) (float64, bool) {
	if price <= 0 {
		return 0, false
	}
	return unitCost / price * 100, true
}
