package insighting

import (
	"context"

	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/internal/usecases/channelmargin"
)

// Insighter define as operações de insights expostas para a API e para o agendador
type Insighter interface {
	// Evaluate avalia as regras no período e persiste o insight principal quando ele muda
	Evaluate(ctx context.Context, businessID string, period domain.Period, previousHeadline string) (*domain.InsightResult, error)

	// ChannelMargins retorna a margem real por canal de venda no período
	ChannelMargins(ctx context.Context, businessID string, period domain.Period) (*channelmargin.Analysis, error)

	// Summary retorna o resumo financeiro do período
	Summary(ctx context.Context, businessID string, period domain.Period) (*Summary, error)

	ListInsights(ctx context.Context, businessID string, limit int) ([]domain.InsightRecord, error)
	DeleteInsight(ctx context.Context, businessID, id string) error
}
