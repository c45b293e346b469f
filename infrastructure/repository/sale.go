package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/margin-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/margin-insights-api/internal/domain"
)

const (
	salesTable = "sales s"
)

type SaleRepository interface {
	ListByDateRange(ctx context.Context, businessID string, start, end time.Time) ([]domain.Sale, error)
}

type saleRepository struct {
	conn postgres.Conn
}

func NewSaleRepository(conn postgres.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// listSalesQuery seleciona as vendas em [start, end)
func listSalesQuery(businessID string, start, end time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select("s.id, s.business_id, s.total_value, s.quantity, s.channel, s.date, s.product_id, s.product_sales_price, s.product_unit_cost").
		From(salesTable).
		Where(squirrel.Eq{"s.business_id": businessID}).
		Where(squirrel.GtOrEq{"s.date": start}).
		Where(squirrel.Lt{"s.date": end}).
		OrderBy("s.date ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *saleRepository) ListByDateRange(ctx context.Context, businessID string, start, end time.Time) ([]domain.Sale, error) {
	query, args, err := listSalesQuery(businessID, start, end).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de vendas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas")
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var (
			sale         domain.Sale
			channel      sql.NullString
			productID    sql.NullString
			productPrice sql.NullFloat64
			productCost  sql.NullFloat64
		)

		if err := rows.Scan(
			&sale.ID,
			&sale.BusinessID,
			&sale.TotalValue,
			&sale.Quantity,
			&channel,
			&sale.Date,
			&productID,
			&productPrice,
			&productCost,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}

		sale.Channel = stringPtr(channel)
		sale.ProductID = stringPtr(productID)
		sale.ProductSalesPrice = float64Ptr(productPrice)
		sale.ProductUnitCost = float64Ptr(productCost)

		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de vendas")
	}

	return sales, nil
}
