package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/margin-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/margin-insights-api/internal/domain"
)

const (
	ingredientPriceHistoryTable = "ingredient_price_history h"
)

type PriceHistoryRepository interface {
	ListIngredientChangesSince(ctx context.Context, businessID string, since time.Time) ([]domain.PriceHistoryEntry, error)
}

type priceHistoryRepository struct {
	conn postgres.Conn
}

func NewPriceHistoryRepository(conn postgres.Conn) PriceHistoryRepository {
	return &priceHistoryRepository{
		conn: conn,
	}
}

func ingredientChangesQuery(businessID string, since time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select("h.id, h.ingredient_id, i.name, h.previous_price, h.new_price, h.variation_percent, h.created_at").
		From(ingredientPriceHistoryTable).
		Join("ingredients i ON i.id = h.ingredient_id").
		Where(squirrel.Eq{"h.business_id": businessID}).
		Where(squirrel.GtOrEq{"h.created_at": since}).
		OrderBy("h.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *priceHistoryRepository) ListIngredientChangesSince(ctx context.Context, businessID string, since time.Time) ([]domain.PriceHistoryEntry, error) {
	query, args, err := ingredientChangesQuery(businessID, since).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de histórico de preços")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar histórico de preços")
	}
	defer rows.Close()

	entries := make([]domain.PriceHistoryEntry, 0)
	for rows.Next() {
		var entry domain.PriceHistoryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.IngredientID,
			&entry.IngredientName,
			&entry.PreviousPrice,
			&entry.NewPrice,
			&entry.VariationPercent,
			&entry.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear histórico de preço")
		}
		entries = append(entries, entry)
	}

	return entries, errors.Wrap(rows.Err(), "erro durante a iteração do histórico de preços")
}
