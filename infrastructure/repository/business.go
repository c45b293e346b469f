package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/margin-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/margin-insights-api/internal/domain"
)

const (
	businessConfigsTable = "business_configs bc"
	businessesTable      = "businesses b"
	channelFeesTable     = "channel_fee_configs cf"
	fixedCostsTable      = "fixed_costs fc"
)

type BusinessConfigRepository interface {
	GetByBusinessID(ctx context.Context, businessID string) (*domain.BusinessConfig, error)
	ListBusinessIDs(ctx context.Context) ([]string, error)
}

type ChannelFeeRepository interface {
	List(ctx context.Context, businessID string) ([]domain.ChannelFeeConfig, error)
}

type FixedCostRepository interface {
	List(ctx context.Context, businessID string) ([]domain.FixedCost, error)
}

type businessConfigRepository struct {
	conn postgres.Conn
}

func NewBusinessConfigRepository(conn postgres.Conn) BusinessConfigRepository {
	return &businessConfigRepository{
		conn: conn,
	}
}

// GetByBusinessID retorna nil quando o negócio ainda não configurou metas
func (r *businessConfigRepository) GetByBusinessID(ctx context.Context, businessID string) (*domain.BusinessConfig, error) {
	query, args, err := squirrel.
		Select("bc.business_id, bc.target_margin_percent, bc.average_tax_percent, bc.target_cmv_percent, bc.monthly_revenue_target").
		From(businessConfigsTable).
		Where(squirrel.Eq{"bc.business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de configuração")
	}

	var (
		cfg           domain.BusinessConfig
		margin        sql.NullFloat64
		tax           sql.NullFloat64
		cmv           sql.NullFloat64
		revenueTarget sql.NullFloat64
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&cfg.BusinessID, &margin, &tax, &cmv, &revenueTarget)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar configuração do negócio")
	}

	cfg.TargetMarginPercent = float64Ptr(margin)
	cfg.AverageTaxPercent = float64Ptr(tax)
	cfg.TargetCMVPercent = float64Ptr(cmv)
	cfg.MonthlyRevenueTarget = float64Ptr(revenueTarget)

	return &cfg, nil
}

func (r *businessConfigRepository) ListBusinessIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("b.id").
		From(businessesTable).
		OrderBy("b.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de negócios")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar negócios")
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear negócio")
		}
		ids = append(ids, id)
	}

	return ids, errors.Wrap(rows.Err(), "erro durante a iteração de negócios")
}

type channelFeeRepository struct {
	conn postgres.Conn
}

func NewChannelFeeRepository(conn postgres.Conn) ChannelFeeRepository {
	return &channelFeeRepository{
		conn: conn,
	}
}

// List mantém a ordem de cadastro, usada como desempate na busca de taxa
func (r *channelFeeRepository) List(ctx context.Context, businessID string) ([]domain.ChannelFeeConfig, error) {
	query, args, err := squirrel.
		Select("cf.id, cf.channel_name, cf.fee_percent").
		From(channelFeesTable).
		Where(squirrel.Eq{"cf.business_id": businessID}).
		OrderBy("cf.created_at ASC", "cf.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de taxas de canal")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar taxas de canal")
	}
	defer rows.Close()

	fees := make([]domain.ChannelFeeConfig, 0)
	for rows.Next() {
		var fee domain.ChannelFeeConfig
		if err := rows.Scan(&fee.ID, &fee.ChannelName, &fee.FeePercent); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear taxa de canal")
		}
		fees = append(fees, fee)
	}

	return fees, errors.Wrap(rows.Err(), "erro durante a iteração de taxas de canal")
}

type fixedCostRepository struct {
	conn postgres.Conn
}

func NewFixedCostRepository(conn postgres.Conn) FixedCostRepository {
	return &fixedCostRepository{
		conn: conn,
	}
}

func (r *fixedCostRepository) List(ctx context.Context, businessID string) ([]domain.FixedCost, error) {
	query, args, err := squirrel.
		Select("fc.id, fc.description, fc.monthly_value").
		From(fixedCostsTable).
		Where(squirrel.Eq{"fc.business_id": businessID}).
		OrderBy("fc.description ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de custos fixos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar custos fixos")
	}
	defer rows.Close()

	costs := make([]domain.FixedCost, 0)
	for rows.Next() {
		var cost domain.FixedCost
		if err := rows.Scan(&cost.ID, &cost.Description, &cost.MonthlyValue); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear custo fixo")
		}
		costs = append(costs, cost)
	}

	return costs, errors.Wrap(rows.Err(), "erro durante a iteração de custos fixos")
}
