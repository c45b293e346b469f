package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/margin-insights-api/internal/domain"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name           string
		input          SuggestionInput
		expectedPrice  float64
		expectedViable bool
	}{
		{
			name:           "Margem 30 e imposto 10 resultam em divisor 0,60",
			input:          SuggestionInput{IngredientCost: 100, TargetMargin: 30, AverageTax: 10},
			expectedPrice:  166.67,
			expectedViable: true,
		},
		{
			name:           "Taxa de canal aumenta o preço",
			input:          SuggestionInput{IngredientCost: 100, TargetMargin: 30, AverageTax: 10, ChannelFeePercent: 20},
			expectedPrice:  250,
			expectedViable: true,
		},
		{
			name:           "Percentuais somando exatamente 100 são inviáveis",
			input:          SuggestionInput{IngredientCost: 100, TargetMargin: 50, AverageTax: 30, FixedCostPercent: 20},
			expectedPrice:  300,
			expectedViable: false,
		},
		{
			name:           "Percentuais acima de 100 usam o fallback de custo x 3",
			input:          SuggestionInput{IngredientCost: 42.5, TargetMargin: 60, AverageTax: 30, FixedCostPercent: 25},
			expectedPrice:  127.5,
			expectedViable: false,
		},
		{
			name:           "Margem 70 e imposto 30 somam 100 e são inviáveis",
			input:          SuggestionInput{IngredientCost: 10, TargetMargin: 70, AverageTax: 30},
			expectedPrice:  30,
			expectedViable: false,
		},
		{
			name:           "Quatro percentuais somando 100 são inviáveis",
			input:          SuggestionInput{IngredientCost: 10, TargetMargin: 50, AverageTax: 20, FixedCostPercent: 17, ChannelFeePercent: 13},
			expectedPrice:  30,
			expectedViable: false,
		},
		{
			name:           "Custo fixo derivado com ruído ainda soma 100",
			input:          SuggestionInput{IngredientCost: 10, TargetMargin: 50, AverageTax: 30, FixedCostPercent: 20.000000000000004},
			expectedPrice:  30,
			expectedViable: false,
		},
		{
			name:           "Custo zero não gera sugestão",
			input:          SuggestionInput{IngredientCost: 0, TargetMargin: 30, AverageTax: 10},
			expectedPrice:  0,
			expectedViable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestion := Suggest(tt.input)

			assert.Equal(t, tt.expectedViable, suggestion.Viable)
			assert.InDelta(t, tt.expectedPrice, suggestion.SuggestedPrice, 0.01)
			assert.GreaterOrEqual(t, suggestion.SuggestedPrice, 0.0)
		})
	}
}

func TestSuggest_NonViableFallbackIsExact(t *testing.T) {
	inputs := []SuggestionInput{
		{IngredientCost: 13.37, TargetMargin: 70, AverageTax: 30},
		{IngredientCost: 13.37, TargetMargin: 50, AverageTax: 20, FixedCostPercent: 17, ChannelFeePercent: 13},
		{IngredientCost: 13.37, TargetMargin: 60, AverageTax: 30, FixedCostPercent: 10.1, ChannelFeePercent: 0.2},
	}

	for _, input := range inputs {
		suggestion := Suggest(input)

		assert.False(t, suggestion.Viable)
		assert.Equal(t, 13.37*3, suggestion.SuggestedPrice)
		assert.LessOrEqual(t, suggestion.Divisor, 0.0)
	}
}

func TestFixedCostPercent(t *testing.T) {
	target := 30000.0
	zero := 0.0

	assert.InDelta(t, 20.0, FixedCostPercent(6000, &target), 1e-9)
	assert.Equal(t, 0.0, FixedCostPercent(6000, nil))
	assert.Equal(t, 0.0, FixedCostPercent(6000, &zero))
}

func TestSuggestPerChannel(t *testing.T) {
	cfg := domain.BusinessConfig{}.Resolve()
	fees := []domain.ChannelFeeConfig{
		{ChannelName: "iFood", FeePercent: 27},
		{ChannelName: "Rappi", FeePercent: 65},
	}

	suggestions := SuggestPerChannel(10, cfg, 0, fees)

	require.Len(t, suggestions, 3)
	assert.Equal(t, domain.DefaultChannel, suggestions[0].Channel)
	assert.InDelta(t, 16.67, suggestions[0].SuggestedPrice, 0.01)
	assert.True(t, suggestions[0].Viable)

	assert.Equal(t, "iFood", suggestions[1].Channel)
	assert.InDelta(t, 30.30, suggestions[1].SuggestedPrice, 0.01)
	assert.True(t, suggestions[1].Viable)

	assert.Equal(t, "Rappi", suggestions[2].Channel)
	assert.False(t, suggestions[2].Viable)
	assert.Equal(t, 30.0, suggestions[2].SuggestedPrice)
}

func TestIsBelowSuggestion(t *testing.T) {
	viable := Suggestion{SuggestedPrice: 16.67, Viable: true}
	nonViable := Suggestion{SuggestedPrice: 300, Viable: false}

	assert.True(t, IsBelowSuggestion(15, viable))
	assert.False(t, IsBelowSuggestion(16.665, viable), "diferença menor que a tolerância")
	assert.False(t, IsBelowSuggestion(16.67, viable))
	assert.False(t, IsBelowSuggestion(20, viable))
	assert.False(t, IsBelowSuggestion(1, nonViable), "sugestão inviável nunca sinaliza preço abaixo")
}

func TestActualMargin_RoundTripsWithSuggest(t *testing.T) {
	suggestion := Suggest(SuggestionInput{IngredientCost: 100, TargetMargin: 30, AverageTax: 10, FixedCostPercent: 5})
	require.True(t, suggestion.Viable)

	margin, ok := ActualMargin(suggestion.SuggestedPrice, 100, 10, 5, 0)
	require.True(t, ok)
	assert.InDelta(t, 30.0, margin, 1e-9)

	_, ok = ActualMargin(0, 100, 10, 5, 0)
	assert.False(t, ok)
}

func TestCMVPercent(t *testing.T) {
	cmv, ok := CMVPercent(20, 7)
	require.True(t, ok)
	assert.InDelta(t, 35.0, cmv, 1e-9)

	_, ok = CMVPercent(0, 7)
	assert.False(t, ok)
}
