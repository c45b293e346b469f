package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/margin-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/pkg/utils"
)

const (
	insightsTable = "insights"
)

type InsightRepository interface {
	Save(ctx context.Context, record *domain.InsightRecord) error
	ListRecent(ctx context.Context, businessID string, limit int) ([]domain.InsightRecord, error)
	Delete(ctx context.Context, businessID, id string) error
}

type insightRepository struct {
	conn postgres.Conn
}

func NewInsightRepository(conn postgres.Conn) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

func insertInsightQuery(record *domain.InsightRecord) squirrel.InsertBuilder {
	return squirrel.
		Insert(insightsTable).
		Columns("id", "business_id", "kind", "status", "headline", "detail", "priority").
		Values(
			record.ID,
			record.BusinessID,
			record.Kind,
			string(record.Status),
			record.Headline,
			record.Detail,
			record.Priority,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)
}

func listRecentInsightsQuery(businessID string, limit int) squirrel.SelectBuilder {
	return squirrel.
		Select("id, business_id, kind, status, headline, detail, priority, created_at").
		From(insightsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *insightRepository) Save(ctx context.Context, record *domain.InsightRecord) error {
	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar id")
		}
		record.ID = id
	}

	query, args, err := insertInsightQuery(record).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de insight")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&record.CreatedAt); err != nil {
		return wrapPQError(err, "erro ao salvar insight")
	}

	return nil
}

func (r *insightRepository) ListRecent(ctx context.Context, businessID string, limit int) ([]domain.InsightRecord, error) {
	query, args, err := listRecentInsightsQuery(businessID, limit).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de insights")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar insights")
	}
	defer rows.Close()

	records := make([]domain.InsightRecord, 0)
	for rows.Next() {
		var (
			record domain.InsightRecord
			status string
		)
		if err := rows.Scan(
			&record.ID,
			&record.BusinessID,
			&record.Kind,
			&status,
			&record.Headline,
			&record.Detail,
			&record.Priority,
			&record.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear insight")
		}
		record.Status = domain.InsightStatus(status)
		records = append(records, record)
	}

	return records, errors.Wrap(rows.Err(), "erro durante a iteração de insights")
}

func (r *insightRepository) Delete(ctx context.Context, businessID, id string) error {
	query, args, err := squirrel.
		Delete(insightsTable).
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de exclusão")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPQError(err, "erro ao excluir insight")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao obter número de linhas afetadas")
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
