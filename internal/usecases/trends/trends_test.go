package trends

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/margin-insights-api/internal/domain"
)

// quarta-feira, 12 de junho de 2024; semana corrente inicia no domingo dia 9
var now = time.Date(2024, 6, 12, 18, 0, 0, 0, time.UTC)

func saleAt(date time.Time, total float64) domain.Sale {
	return domain.Sale{TotalValue: total, Quantity: 1, Date: date}
}

func TestWeekly(t *testing.T) {
	tests := []struct {
		name              string
		sales             []domain.Sale
		expectedCurrent   float64
		expectedPrevious  float64
		expectedVariation *float64
	}{
		{
			name: "Queda de 50% na semana",
			sales: []domain.Sale{
				saleAt(time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), 300),
				saleAt(time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC), 200),
				saleAt(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), 600),
				saleAt(time.Date(2024, 6, 8, 23, 59, 0, 0, time.UTC), 400),
				saleAt(time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC), 5000),
			},
			expectedCurrent:   500,
			expectedPrevious:  1000,
			expectedVariation: floatPtr(-50),
		},
		{
			name: "Sem vendas na semana anterior não há variação",
			sales: []domain.Sale{
				saleAt(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 300),
			},
			expectedCurrent:  300,
			expectedPrevious: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := Weekly(tt.sales, now)

			assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), trend.CurrentWeekStart)
			assert.InDelta(t, tt.expectedCurrent, trend.CurrentRevenue, 1e-9)
			assert.InDelta(t, tt.expectedPrevious, trend.PreviousRevenue, 1e-9)
			if tt.expectedVariation == nil {
				assert.Nil(t, trend.VariationPercent)
			} else {
				require.NotNil(t, trend.VariationPercent)
				assert.InDelta(t, *tt.expectedVariation, *trend.VariationPercent, 1e-9)
			}
		})
	}
}

func TestIngredientInflation(t *testing.T) {
	daysAgo := func(days int) time.Time {
		return now.AddDate(0, 0, -days)
	}

	entries := []domain.PriceHistoryEntry{
		{IngredientID: "leite", IngredientName: "Leite", NewPrice: 5.5, VariationPercent: 10, CreatedAt: daysAgo(20)},
		{IngredientID: "leite", IngredientName: "Leite", NewPrice: 6.0, VariationPercent: 9, CreatedAt: daysAgo(2)},
		{IngredientID: "cacau", IngredientName: "Cacau", NewPrice: 80, VariationPercent: 30, CreatedAt: daysAgo(5)},
		{IngredientID: "cacau", IngredientName: "Cacau", NewPrice: 70, VariationPercent: -12, CreatedAt: daysAgo(1)},
		{IngredientID: "acucar", IngredientName: "Açúcar", NewPrice: 4, VariationPercent: 14.9, CreatedAt: daysAgo(3)},
		{IngredientID: "ovo", IngredientName: "Ovo", NewPrice: 1, VariationPercent: 50, CreatedAt: daysAgo(45)},
	}

	alerts := IngredientInflation(entries, now)

	require.Len(t, alerts, 2)

	assert.Equal(t, "cacau", alerts[0].IngredientID)
	assert.InDelta(t, 30.0, alerts[0].CumulativeVariation, 1e-9)
	assert.Equal(t, 80.0, alerts[0].LatestPrice)

	assert.Equal(t, "leite", alerts[1].IngredientID)
	assert.InDelta(t, 19.0, alerts[1].CumulativeVariation, 1e-9)
	assert.Equal(t, 6.0, alerts[1].LatestPrice)
	assert.Equal(t, 2, alerts[1].Changes)
}

func TestIngredientInflation_Empty(t *testing.T) {
	assert.Empty(t, IngredientInflation(nil, now))
}

func floatPtr(f float64) *float64 {
	return &f
}
