package insighting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/margin-insights-api/infrastructure/repository"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/internal/usecases/channelmargin"
	"github.com/vfg2006/margin-insights-api/internal/usecases/pacing"
	"github.com/vfg2006/margin-insights-api/internal/usecases/trends"
	"github.com/vfg2006/margin-insights-api/pkg/utils"
)

const (
	// MaxHistoryLimit limita a listagem do histórico de insights
	MaxHistoryLimit = 100
)

// Summary é o resumo financeiro do período exibido no painel
type Summary struct {
	Period             domain.Period      `json:"period"`
	Revenue            float64            `json:"revenue"`
	SalesCount         int                `json:"sales_count"`
	IngredientCost     float64            `json:"ingredient_cost"`
	ChannelFees        float64            `json:"channel_fees"`
	Taxes              float64            `json:"taxes"`
	FixedCostDeduction float64            `json:"fixed_cost_deduction"`
	EstimatedProfit    float64            `json:"estimated_profit"`
	SkippedSales       int                `json:"skipped_sales"`
	Pacing             *pacing.GoalPacing `json:"pacing,omitempty"`
	WeeklyTrend        trends.WeeklyTrend `json:"weekly_trend"`
}

type Service struct {
	engine           *Engine
	productRepo      repository.ProductRepository
	saleRepo         repository.SaleRepository
	channelFeeRepo   repository.ChannelFeeRepository
	fixedCostRepo    repository.FixedCostRepository
	configRepo       repository.BusinessConfigRepository
	priceHistoryRepo repository.PriceHistoryRepository
	insightRepo      repository.InsightRepository
	historyLimit     int
	now              func() time.Time
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	engine *Engine,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	channelFeeRepo repository.ChannelFeeRepository,
	fixedCostRepo repository.FixedCostRepository,
	configRepo repository.BusinessConfigRepository,
	priceHistoryRepo repository.PriceHistoryRepository,
	insightRepo repository.InsightRepository,
	historyLimit int,
) *Service {
	return &Service{
		engine:           engine,
		productRepo:      productRepo,
		saleRepo:         saleRepo,
		channelFeeRepo:   channelFeeRepo,
		fixedCostRepo:    fixedCostRepo,
		configRepo:       configRepo,
		priceHistoryRepo: priceHistoryRepo,
		insightRepo:      insightRepo,
		historyLimit:     historyLimit,
		now:              time.Now,
	}
}

// WithClock substitui o relógio usado para calcular os períodos
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Evaluate(ctx context.Context, businessID string, period domain.Period, previousHeadline string) (*domain.InsightResult, error) {
	snap, err := s.loadSnapshot(ctx, businessID, period)
	if err != nil {
		return nil, err
	}

	result := s.engine.Evaluate(*snap, previousHeadline)

	logrus.WithFields(logrus.Fields{
		"business_id": businessID,
		"period":      period,
		"main":        result.Main.Kind,
		"candidates":  len(result.Candidates),
		"changed":     result.Changed,
	}).Debug("insights: avaliação concluída")

	if result.Changed && !result.ZeroState {
		s.persist(ctx, businessID, result.Main)
	}

	return &result, nil
}

// persist grava o insight selecionado. Falhas são apenas registradas no log.
func (s *Service) persist(ctx context.Context, businessID string, candidate domain.InsightCandidate) {
	record := domain.NewInsightRecord(businessID, candidate)
	if err := s.insightRepo.Save(ctx, record); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"business_id": businessID,
			"kind":        candidate.Kind,
		}).Error("insights: erro ao salvar insight")
		return
	}

	logrus.WithFields(logrus.Fields{
		"business_id": businessID,
		"insight_id":  record.ID,
		"kind":        record.Kind,
	}).Info("insights: novo insight salvo")
}

func (s *Service) ChannelMargins(ctx context.Context, businessID string, period domain.Period) (*channelmargin.Analysis, error) {
	snap, err := s.loadSnapshot(ctx, businessID, period)
	if err != nil {
		return nil, err
	}

	eval := derive(*snap, s.engine.defaults)
	return &eval.channels, nil
}

// Summary calcula o lucro estimado do período. Vendas com custo desconhecido entram no
// faturamento mas não no custo de insumos.
func (s *Service) Summary(ctx context.Context, businessID string, period domain.Period) (*Summary, error) {
	snap, err := s.loadSnapshot(ctx, businessID, period)
	if err != nil {
		return nil, err
	}

	eval := derive(*snap, s.engine.defaults)

	ingredientCost := 0.0
	for _, sale := range eval.sales {
		if sale.ProductUnitCost == nil {
			continue
		}
		ingredientCost += *sale.ProductUnitCost * channelmargin.RealUnitCount(sale)
	}

	summary := &Summary{
		Period:             period,
		Revenue:            utils.RoundWithTwoDecimalPlace(eval.revenue),
		SalesCount:         len(snap.Sales),
		IngredientCost:     utils.RoundWithTwoDecimalPlace(ingredientCost),
		ChannelFees:        utils.RoundWithTwoDecimalPlace(eval.channels.TotalFees()),
		Taxes:              utils.RoundWithTwoDecimalPlace(eval.revenue * eval.cfg.AverageTaxPercent / 100),
		FixedCostDeduction: utils.RoundWithTwoDecimalPlace(pacing.FixedCostDeduction(eval.totalFixedCost, snap.Now, period)),
		SkippedSales:       eval.channels.SkippedSales,
		Pacing:             eval.pacing,
		WeeklyTrend:        eval.weekly,
	}

	summary.EstimatedProfit = utils.RoundWithTwoDecimalPlace(
		summary.Revenue - summary.IngredientCost - summary.ChannelFees - summary.Taxes - summary.FixedCostDeduction,
	)

	return summary, nil
}

// ListInsights lista os insights salvos do mais recente para o mais antigo
func (s *Service) ListInsights(ctx context.Context, businessID string, limit int) ([]domain.InsightRecord, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	records, err := s.insightRepo.ListRecent(ctx, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return records, nil
}

func (s *Service) DeleteInsight(ctx context.Context, businessID, id string) error {
	if err := s.insightRepo.Delete(ctx, businessID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInsightNotFound
		}
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return nil
}

// loadSnapshot carrega os dados do período, da tendência semanal e do histórico de preços dos insumos
func (s *Service) loadSnapshot(ctx context.Context, businessID string, period domain.Period) (*Snapshot, error) {
	now := s.now()
	start, end := period.Range(now)

	snap := &Snapshot{Now: now, Period: period}

	var err error
	if snap.Sales, err = s.saleRepo.ListByDateRange(ctx, businessID, start, end); err != nil {
		return nil, s.loadError("vendas", err)
	}

	trendStart := domain.StartOfWeek(now).AddDate(0, 0, -7)
	if snap.TrendSales, err = s.saleRepo.ListByDateRange(ctx, businessID, trendStart, end); err != nil {
		return nil, s.loadError("vendas da semana", err)
	}

	if snap.Products, err = s.productRepo.ListActiveWithRecipes(ctx, businessID); err != nil {
		return nil, s.loadError("produtos", err)
	}

	if snap.Ingredients, err = s.productRepo.ListIngredients(ctx, businessID); err != nil {
		return nil, s.loadError("insumos", err)
	}

	if snap.ChannelFees, err = s.channelFeeRepo.List(ctx, businessID); err != nil {
		return nil, s.loadError("taxas de canal", err)
	}

	if snap.FixedCosts, err = s.fixedCostRepo.List(ctx, businessID); err != nil {
		return nil, s.loadError("custos fixos", err)
	}

	cfg, err := s.configRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, s.loadError("configuração", err)
	}
	if cfg != nil {
		snap.Config = *cfg
	}

	since := now.AddDate(0, 0, -trends.InflationWindowDays)
	if snap.PriceHistory, err = s.priceHistoryRepo.ListIngredientChangesSince(ctx, businessID, since); err != nil {
		return nil, s.loadError("histórico de preços", err)
	}

	return snap, nil
}

func (s *Service) loadError(what string, err error) error {
	logrus.WithError(err).Errorf("insights: erro ao carregar %s", what)
	return fmt.Errorf("%w: erro ao carregar %s: %v", ErrDatabaseOperation, what, err)
}
