package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/margin-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/margin-insights-api/internal/config"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	insightmocks "github.com/vfg2006/margin-insights-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*InsightSnapshotSyncService, *mocks.MockBusinessConfigRepository, *insightmocks.MockInsighter) {
	ctrl := gomock.NewController(t)

	mockBusinessRepo := mocks.NewMockBusinessConfigRepository(ctrl)
	mockInsighter := insightmocks.NewMockInsighter(ctrl)

	cfg := &config.Config{
		InsightSnapshotSync: config.InsightSnapshotSync{
			CronSchedule:      "0 7 * * *",
			Period:            "mes",
			MaxConcurrentJobs: 2,
			Enabled:           true,
		},
	}

	service, err := NewInsightSnapshotSyncService(mockBusinessRepo, mockInsighter, cfg)
	require.NoError(t, err)

	return service, mockBusinessRepo, mockInsighter
}

func result(kind, headline string, changed bool) *domain.InsightResult {
	return &domain.InsightResult{
		Main:    domain.InsightCandidate{Kind: kind, Headline: headline},
		Changed: changed,
	}
}

func TestNewInsightSnapshotSyncService_InvalidPeriod(t *testing.T) {
	cfg := &config.Config{
		InsightSnapshotSync: config.InsightSnapshotSync{Period: "ano"},
	}

	_, err := NewInsightSnapshotSyncService(nil, nil, cfg)
	assert.Error(t, err)
}

func TestInsightSnapshotSyncService_syncInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("Avalia todos os negócios e guarda o último headline", func(t *testing.T) {
		service, businessRepo, insighter := newTestService(t)

		businessRepo.EXPECT().ListBusinessIDs(gomock.Any()).Return([]string{"b1", "b2"}, nil)
		insighter.EXPECT().
			Evaluate(gomock.Any(), "b1", domain.PeriodMonth, "").
			Return(result("goal_behind", "Vendas abaixo do ritmo da meta do mês", true), nil)
		insighter.EXPECT().
			Evaluate(gomock.Any(), "b2", domain.PeriodMonth, "").
			Return(result("all_healthy", "Tudo em ordem", true), nil)

		service.syncInsights(ctx)

		assert.Equal(t, "Vendas abaixo do ritmo da meta do mês", service.LastHeadline("b1"))
		assert.Equal(t, "Tudo em ordem", service.LastHeadline("b2"))

		status := service.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Equal(t, 0, status["last_sync_failures"])
	})

	t.Run("Repassa o headline anterior na segunda execução", func(t *testing.T) {
		service, businessRepo, insighter := newTestService(t)

		businessRepo.EXPECT().ListBusinessIDs(gomock.Any()).Return([]string{"b1"}, nil).Times(2)
		gomock.InOrder(
			insighter.EXPECT().
				Evaluate(gomock.Any(), "b1", domain.PeriodMonth, "").
				Return(result("goal_ahead", "Meta adiantada", true), nil),
			insighter.EXPECT().
				Evaluate(gomock.Any(), "b1", domain.PeriodMonth, "Meta adiantada").
				Return(result("goal_ahead", "Meta adiantada", false), nil),
		)

		service.syncInsights(ctx)
		service.syncInsights(ctx)

		assert.Equal(t, "Meta adiantada", service.LastHeadline("b1"))
	})

	t.Run("Zero state não altera o headline guardado", func(t *testing.T) {
		service, businessRepo, insighter := newTestService(t)

		businessRepo.EXPECT().ListBusinessIDs(gomock.Any()).Return([]string{"b1"}, nil)
		insighter.EXPECT().
			Evaluate(gomock.Any(), "b1", domain.PeriodMonth, "").
			Return(&domain.InsightResult{ZeroState: true, Main: domain.InsightCandidate{Headline: "Registre suas primeiras vendas"}}, nil)

		service.syncInsights(ctx)

		assert.Empty(t, service.LastHeadline("b1"))
	})

	t.Run("Falha em um negócio não interrompe os demais", func(t *testing.T) {
		service, businessRepo, insighter := newTestService(t)

		businessRepo.EXPECT().ListBusinessIDs(gomock.Any()).Return([]string{"b1", "b2"}, nil)
		insighter.EXPECT().
			Evaluate(gomock.Any(), "b1", domain.PeriodMonth, "").
			Return(nil, errors.New("conexão perdida"))
		insighter.EXPECT().
			Evaluate(gomock.Any(), "b2", domain.PeriodMonth, "").
			Return(result("revenue_growth", "Faturamento em alta", true), nil)

		service.syncInsights(ctx)

		assert.Empty(t, service.LastHeadline("b1"))
		assert.Equal(t, "Faturamento em alta", service.LastHeadline("b2"))
		assert.Equal(t, 1, service.GetStatus()["last_sync_failures"])
	})

	t.Run("Erro ao listar negócios", func(t *testing.T) {
		service, businessRepo, _ := newTestService(t)

		businessRepo.EXPECT().ListBusinessIDs(gomock.Any()).Return(nil, errors.New("db fora do ar"))

		service.syncInsights(ctx)

		assert.Equal(t, false, service.GetStatus()["sync_running"])
	})
}

func TestInsightSnapshotSyncService_processBusinessesCancelled(t *testing.T) {
	t.Run("Contexto já cancelado não avalia nenhum negócio", func(t *testing.T) {
		service, _, _ := newTestService(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		failures := service.processBusinesses(ctx, []string{"b1", "b2", "b3"})

		assert.Equal(t, 0, failures)
		assert.Empty(t, service.LastHeadline("b1"))
	})

	t.Run("Cancelamento durante a execução interrompe o despacho", func(t *testing.T) {
		service, _, insighter := newTestService(t)
		service.config.MaxConcurrentJobs = 1

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		insighter.EXPECT().
			Evaluate(gomock.Any(), "b1", domain.PeriodMonth, "").
			DoAndReturn(func(context.Context, string, domain.Period, string) (*domain.InsightResult, error) {
				cancel()
				return result("all_healthy", "Tudo em ordem", true), nil
			})

		failures := service.processBusinesses(ctx, []string{"b1", "b2", "b3"})

		assert.Equal(t, 0, failures)
		assert.Equal(t, "Tudo em ordem", service.LastHeadline("b1"))
		assert.Empty(t, service.LastHeadline("b2"))
	})
}

func TestInsightSnapshotSyncService_StartDisabled(t *testing.T) {
	service, _, _ := newTestService(t)
	service.config.SyncEnabled = false

	assert.NoError(t, service.Start(context.Background()))
}
