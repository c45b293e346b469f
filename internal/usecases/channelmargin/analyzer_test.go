package channelmargin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/margin-insights-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func sale(channel *string, total, price, unitCost float64) domain.Sale {
	return domain.Sale{
		TotalValue:        total,
		Quantity:          1,
		Channel:           channel,
		Date:              time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		ProductSalesPrice: floatPtr(price),
		ProductUnitCost:   floatPtr(unitCost),
	}
}

func TestMatchFee(t *testing.T) {
	fees := []domain.ChannelFeeConfig{
		{ChannelName: "ifood-delivery", FeePercent: 27},
		{ChannelName: "iFood", FeePercent: 12},
		{ChannelName: "  ", FeePercent: 99},
	}

	tests := []struct {
		name     string
		channel  string
		expected float64
	}{
		{name: "Canal contido na configuração", channel: "IFOOD", expected: 27},
		{name: "Configuração contida no canal", channel: "ifood-delivery-express", expected: 27},
		{name: "Primeira configuração vence", channel: "iFood", expected: 27},
		{name: "Sem correspondência", channel: "Balcão", expected: 0},
		{name: "Canal vazio nunca casa", channel: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchFee(tt.channel, fees))
		})
	}
}

func TestMatchFee_IsSymmetric(t *testing.T) {
	assert.Equal(t, 27.0, MatchFee("IFOOD", []domain.ChannelFeeConfig{{ChannelName: "ifood-delivery", FeePercent: 27}}))
	assert.Equal(t, 27.0, MatchFee("ifood-delivery", []domain.ChannelFeeConfig{{ChannelName: "IFOOD", FeePercent: 27}}))
}

func TestRealUnitCount(t *testing.T) {
	promo := domain.Sale{TotalValue: 45, Quantity: 5, ProductSalesPrice: floatPtr(10)}
	assert.InDelta(t, 4.5, RealUnitCount(promo), 1e-9)

	withoutPrice := domain.Sale{TotalValue: 45, Quantity: 5}
	assert.Equal(t, 5.0, RealUnitCount(withoutPrice))

	zeroPrice := domain.Sale{TotalValue: 45, Quantity: 3, ProductSalesPrice: floatPtr(0)}
	assert.Equal(t, 3.0, RealUnitCount(zeroPrice))
}

func TestAnalyze(t *testing.T) {
	fees := []domain.ChannelFeeConfig{{ChannelName: "iFood", FeePercent: 25}}

	// Balcão: lucro 70 + 35; iFood: 100 - 30 - 25 = 45; Rappi sem custo conhecido
	sales := []domain.Sale{
		sale(nil, 100, 10, 3),
		sale(stringPtr("  "), 50, 10, 3),
		sale(stringPtr("ifood-entrega"), 100, 10, 3),
		{TotalValue: 80, Quantity: 1, Channel: stringPtr("Rappi")},
	}

	analysis := Analyze(sales, fees)

	require.Len(t, analysis.Channels, 2)
	assert.Equal(t, 1, analysis.SkippedSales)

	balcao := analysis.Channels[0]
	assert.Equal(t, domain.DefaultChannel, balcao.Channel)
	assert.Equal(t, 2, balcao.Count)
	assert.InDelta(t, 150.0, balcao.Revenue, 1e-9)
	assert.InDelta(t, 105.0, balcao.Profit, 1e-9)
	assert.InDelta(t, 70.0, balcao.MarginPercent, 1e-9)

	ifood := analysis.Channels[1]
	assert.Equal(t, "ifood-entrega", ifood.Channel)
	assert.Equal(t, 25.0, ifood.FeePercent)
	assert.InDelta(t, 45.0, ifood.Profit, 1e-9)
	assert.InDelta(t, 45.0, ifood.MarginPercent, 1e-9)
	assert.InDelta(t, 25.0, analysis.TotalFees(), 1e-9)
}

func TestAnalyze_ZeroRevenueMarginIsZero(t *testing.T) {
	analysis := Analyze([]domain.Sale{sale(nil, 0, 10, 3)}, nil)

	require.Len(t, analysis.Channels, 1)
	assert.Equal(t, 0.0, analysis.Channels[0].MarginPercent)
}

func TestAnalysis_Erosion(t *testing.T) {
	fees := []domain.ChannelFeeConfig{{ChannelName: "iFood", FeePercent: 30}}
	ifood := stringPtr("iFood")

	tests := []struct {
		name          string
		sales         []domain.Sale
		expectErosion bool
	}{
		{
			name: "Diferença acima de 15 pontos com amostra suficiente",
			sales: []domain.Sale{
				sale(nil, 100, 10, 3),
				sale(ifood, 100, 10, 3),
				sale(ifood, 100, 10, 3),
				sale(ifood, 100, 10, 3),
			},
			expectErosion: true,
		},
		{
			name: "Pior canal com menos de 3 vendas é ignorado",
			sales: []domain.Sale{
				sale(nil, 100, 10, 3),
				sale(ifood, 100, 10, 3),
				sale(ifood, 100, 10, 3),
			},
			expectErosion: false,
		},
		{
			name: "Apenas um canal",
			sales: []domain.Sale{
				sale(nil, 100, 10, 3),
				sale(nil, 100, 10, 3),
				sale(nil, 100, 10, 3),
			},
			expectErosion: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, worst, ok := Analyze(tt.sales, fees).Erosion()

			assert.Equal(t, tt.expectErosion, ok)
			if ok {
				assert.Equal(t, domain.DefaultChannel, best.Channel)
				assert.Equal(t, "iFood", worst.Channel)
				assert.InDelta(t, 30.0, best.MarginPercent-worst.MarginPercent, 1e-9)
			}
		})
	}
}

func TestAnalyze_IsDeterministic(t *testing.T) {
	sales := []domain.Sale{
		sale(stringPtr("A"), 100, 10, 5),
		sale(stringPtr("B"), 100, 10, 5),
		sale(stringPtr("C"), 100, 10, 5),
	}

	first := Analyze(sales, nil)
	second := Analyze(sales, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, "A", first.Channels[0].Channel)
	assert.Equal(t, "C", first.Channels[2].Channel)
}
