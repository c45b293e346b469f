package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/margin-insights-api/infrastructure/repository"
	"github.com/vfg2006/margin-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	products     *mocks.MockProductRepository
	sales        *mocks.MockSaleRepository
	channelFees  *mocks.MockChannelFeeRepository
	fixedCosts   *mocks.MockFixedCostRepository
	configs      *mocks.MockBusinessConfigRepository
	priceHistory *mocks.MockPriceHistoryRepository
	insights     *mocks.MockInsightRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		products:     mocks.NewMockProductRepository(ctrl),
		sales:        mocks.NewMockSaleRepository(ctrl),
		channelFees:  mocks.NewMockChannelFeeRepository(ctrl),
		fixedCosts:   mocks.NewMockFixedCostRepository(ctrl),
		configs:      mocks.NewMockBusinessConfigRepository(ctrl),
		priceHistory: mocks.NewMockPriceHistoryRepository(ctrl),
		insights:     mocks.NewMockInsightRepository(ctrl),
	}

	service := NewService(
		newDefaultEngine(),
		m.products,
		m.sales,
		m.channelFees,
		m.fixedCosts,
		m.configs,
		m.priceHistory,
		m.insights,
		20,
	).WithClock(func() time.Time { return testNow })

	return service, m
}

// expectSnapshot configura o carregamento de um mês com as vendas e custos fixos informados
func (m serviceMocks) expectSnapshot(sales []domain.Sale, fixedCosts []domain.FixedCost, fees []domain.ChannelFeeConfig) {
	monthStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	trendStart := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	m.sales.EXPECT().ListByDateRange(gomock.Any(), "biz-1", monthStart, testNow).Return(sales, nil)
	m.sales.EXPECT().ListByDateRange(gomock.Any(), "biz-1", trendStart, testNow).Return([]domain.Sale{}, nil)
	m.products.EXPECT().ListActiveWithRecipes(gomock.Any(), "biz-1").Return([]domain.Product{}, nil)
	m.products.EXPECT().ListIngredients(gomock.Any(), "biz-1").Return([]domain.Ingredient{}, nil)
	m.channelFees.EXPECT().List(gomock.Any(), "biz-1").Return(fees, nil)
	m.fixedCosts.EXPECT().List(gomock.Any(), "biz-1").Return(fixedCosts, nil)
	m.configs.EXPECT().GetByBusinessID(gomock.Any(), "biz-1").Return(nil, nil)
	m.priceHistory.EXPECT().
		ListIngredientChangesSince(gomock.Any(), "biz-1", testNow.AddDate(0, 0, -30)).
		Return([]domain.PriceHistoryEntry{}, nil)
}

func TestService_Evaluate(t *testing.T) {
	aluguel := []domain.FixedCost{{Description: "Aluguel", MonthlyValue: 6000}}

	tests := []struct {
		name             string
		sales            []domain.Sale
		previousHeadline string
		setup            func(m serviceMocks)
		validate         func(t *testing.T, result *domain.InsightResult)
	}{
		{
			name:  "Insight novo é salvo",
			sales: []domain.Sale{plainSale(3000, day(10))},
			setup: func(m serviceMocks) {
				m.insights.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record *domain.InsightRecord) error {
						assert.Equal(t, "biz-1", record.BusinessID)
						assert.Equal(t, KindGoalBehind, record.Kind)
						assert.Equal(t, domain.InsightStatusAlert, record.Status)
						assert.Equal(t, 9, record.Priority)
						return nil
					})
			},
			validate: func(t *testing.T, result *domain.InsightResult) {
				assert.Equal(t, KindGoalBehind, result.Main.Kind)
				assert.True(t, result.Changed)
			},
		},
		{
			name:             "Mesmo headline da avaliação anterior não é salvo novamente",
			sales:            []domain.Sale{plainSale(3000, day(10))},
			previousHeadline: "Vendas abaixo do ritmo da meta do mês",
			validate: func(t *testing.T, result *domain.InsightResult) {
				assert.False(t, result.Changed)
			},
		},
		{
			name:  "Falha ao salvar não interrompe a avaliação",
			sales: []domain.Sale{plainSale(3000, day(10))},
			setup: func(m serviceMocks) {
				m.insights.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, result *domain.InsightResult) {
				assert.Equal(t, KindGoalBehind, result.Main.Kind)
			},
		},
		{
			name:  "Estado inicial sem vendas não é salvo",
			sales: []domain.Sale{},
			validate: func(t *testing.T, result *domain.InsightResult) {
				assert.True(t, result.ZeroState)
				assert.True(t, result.Changed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			m.expectSnapshot(tt.sales, aluguel, []domain.ChannelFeeConfig{})
			if tt.setup != nil {
				tt.setup(m)
			}

			result, err := service.Evaluate(context.Background(), "biz-1", domain.PeriodMonth, tt.previousHeadline)
			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_Evaluate_LoadError(t *testing.T) {
	service, m := newTestService(t)

	m.sales.EXPECT().ListByDateRange(gomock.Any(), "biz-1", gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	result, err := service.Evaluate(context.Background(), "biz-1", domain.PeriodMonth, "")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrDatabaseOperation))
}

func TestService_Summary(t *testing.T) {
	service, m := newTestService(t)

	m.expectSnapshot(
		[]domain.Sale{costedSale(10, 4, "Balcão"), costedSale(10, 4, "iFood")},
		[]domain.FixedCost{{Description: "Aluguel", MonthlyValue: 3000}},
		[]domain.ChannelFeeConfig{{ChannelName: "iFood", FeePercent: 27}},
	)

	summary, err := service.Summary(context.Background(), "biz-1", domain.PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, 20.0, summary.Revenue)
	assert.Equal(t, 2, summary.SalesCount)
	assert.Equal(t, 8.0, summary.IngredientCost)
	assert.Equal(t, 2.7, summary.ChannelFees)
	assert.Equal(t, 2.0, summary.Taxes)
	assert.Equal(t, 3000.0, summary.FixedCostDeduction)
	assert.Equal(t, -2992.7, summary.EstimatedProfit)
	require.NotNil(t, summary.Pacing)
	assert.Equal(t, 15000.0, summary.Pacing.MonthlyTarget)
}

func TestService_ChannelMargins(t *testing.T) {
	service, m := newTestService(t)

	m.expectSnapshot(
		[]domain.Sale{costedSale(10, 4, "Balcão"), costedSale(10, 4, "iFood"), plainSale(10, day(12))},
		[]domain.FixedCost{},
		[]domain.ChannelFeeConfig{{ChannelName: "iFood", FeePercent: 27}},
	)

	analysis, err := service.ChannelMargins(context.Background(), "biz-1", domain.PeriodMonth)
	require.NoError(t, err)

	require.Len(t, analysis.Channels, 2)
	assert.Equal(t, "Balcão", analysis.Channels[0].Channel)
	assert.Equal(t, "iFood", analysis.Channels[1].Channel)
	assert.Equal(t, 1, analysis.SkippedSales)
}

func TestService_ListInsights(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "Sem limite usa o padrão configurado", limit: 0, expectedLimit: 20},
		{name: "Limite informado", limit: 5, expectedLimit: 5},
		{name: "Limite acima do máximo", limit: 500, expectedLimit: MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)

			m.insights.EXPECT().
				ListRecent(gomock.Any(), "biz-1", tt.expectedLimit).
				Return([]domain.InsightRecord{{ID: "ins-1"}}, nil)

			records, err := service.ListInsights(context.Background(), "biz-1", tt.limit)
			require.NoError(t, err)
			assert.Len(t, records, 1)
		})
	}
}

func TestService_DeleteInsight(t *testing.T) {
	service, m := newTestService(t)

	m.insights.EXPECT().Delete(gomock.Any(), "biz-1", "ins-1").Return(nil)
	m.insights.EXPECT().Delete(gomock.Any(), "biz-1", "nao-existe").Return(repository.ErrNotFound)

	assert.NoError(t, service.DeleteInsight(context.Background(), "biz-1", "ins-1"))
	assert.ErrorIs(t, service.DeleteInsight(context.Background(), "biz-1", "nao-existe"), ErrInsightNotFound)
}
