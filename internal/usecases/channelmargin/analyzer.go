// Package channelmargin agrega as vendas realizadas em lucro e margem por canal de venda
package channelmargin

import (
	"sort"
	"strings"

	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/pkg/utils"
)

const (
	// ErosionGapPoints é a diferença mínima de margem entre o melhor e o pior canal
	ErosionGapPoints = 15.0
	// ErosionMinSales exclui canais com poucas vendas para evitar alertas ruidosos
	ErosionMinSales = 3
)

type ChannelMargin struct {
	Channel       string  `json:"channel"`
	FeePercent    float64 `json:"fee_percent"`
	Revenue       float64 `json:"revenue"`
	Profit        float64 `json:"profit"`
	FeeCost       float64 `json:"fee_cost"`
	Count         int     `json:"count"`
	MarginPercent float64 `json:"margin_percent"`
}

type Analysis struct {
	Channels     []ChannelMargin `json:"channels"`
	SkippedSales int             `json:"skipped_sales"`
}

// MatchFee retorna a taxa do primeiro canal configurado cujo nome contém
// (ou está contido em) o canal da venda, sem diferenciar maiúsculas
func MatchFee(channel string, fees []domain.ChannelFeeConfig) float64 {
	normalized := strings.ToLower(strings.TrimSpace(channel))
	if normalized == "" {
		return 0
	}

	for _, fee := range fees {
		name := strings.ToLower(strings.TrimSpace(fee.ChannelName))
		if name == "" {
			continue
		}
		if strings.Contains(normalized, name) || strings.Contains(name, normalized) {
			return fee.FeePercent
		}
	}

	return 0
}

// RealUnitCount estima as unidades realmente vendidas. Vendas registradas com preço
// promocional ou arredondado não respeitam quantidade x preço = total.
func RealUnitCount(sale domain.Sale) float64 {
	if sale.ProductSalesPrice != nil && *sale.ProductSalesPrice > 0 {
		return sale.TotalValue / *sale.ProductSalesPrice
	}
	return sale.Quantity
}

// SaleProfit calcula o lucro da venda descontando custo de insumos e taxa do canal.
// Retorna false quando o custo unitário do produto é desconhecido.
func SaleProfit(sale domain.Sale, feePercent float64) (float64, bool) {
	if sale.ProductUnitCost == nil {
		return 0, false
	}

	cost := *sale.ProductUnitCost * RealUnitCount(sale)
	fee := sale.TotalValue * feePercent / 100

	return sale.TotalValue - cost - fee, true
}

// Analyze agrega lucro e margem por canal, ordenando do canal mais rentável ao menos rentável
func Analyze(sales []domain.Sale, fees []domain.ChannelFeeConfig) Analysis {
	analysis := Analysis{Channels: []ChannelMargin{}}

	index := make(map[string]int)
	for _, sale := range sales {
		channel := sale.EffectiveChannel()
		feePercent := MatchFee(channel, fees)

		profit, ok := SaleProfit(sale, feePercent)
		if !ok {
			analysis.SkippedSales++
			continue
		}

		key := strings.ToLower(channel)
		position, exists := index[key]
		if !exists {
			position = len(analysis.Channels)
			index[key] = position
			analysis.Channels = append(analysis.Channels, ChannelMargin{
				Channel:    channel,
				FeePercent: feePercent,
			})
		}

		aggregate := &analysis.Channels[position]
		aggregate.Revenue += sale.TotalValue
		aggregate.Profit += profit
		aggregate.FeeCost += sale.TotalValue * feePercent / 100
		aggregate.Count++
	}

	for i := range analysis.Channels {
		aggregate := &analysis.Channels[i]
		aggregate.MarginPercent = utils.PercentOf(aggregate.Profit, aggregate.Revenue)
	}

	sort.SliceStable(analysis.Channels, func(i, j int) bool {
		return analysis.Channels[i].MarginPercent > analysis.Channels[j].MarginPercent
	})

	return analysis
}

// Erosion verifica se o pior canal corrói a margem em relação ao melhor
func (a Analysis) Erosion() (best ChannelMargin, worst ChannelMargin, ok bool) {
	if len(a.Channels) < 2 {
		return ChannelMargin{}, ChannelMargin{}, false
	}

	best = a.Channels[0]
	worst = a.Channels[len(a.Channels)-1]

	if best.MarginPercent-worst.MarginPercent > ErosionGapPoints && worst.Count >= ErosionMinSales {
		return best, worst, true
	}

	return ChannelMargin{}, ChannelMargin{}, false
}

// TotalFees soma o valor pago em taxas de canal
func (a Analysis) TotalFees() float64 {
	total := 0.0
	for _, channel := range a.Channels {
		total += channel.FeeCost
	}
	return total
}
