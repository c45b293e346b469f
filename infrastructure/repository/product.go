package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/margin-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/margin-insights-api/internal/domain"
	"github.com/vfg2006/margin-insights-api/pkg/utils"
)

const (
	productsTable            = "products p"
	productIngredientsTable  = "product_ingredients pi"
	ingredientsTable         = "ingredients i"
	ingredientRecipesTable   = "ingredient_recipes ir"
	productPriceHistoryTable = "product_price_history"

	productColumns = "p.id, p.business_id, p.name, p.category, p.sales_price, p.ativo, p.yield, p.created_at, p.updated_at"
)

type ProductRepository interface {
	ListActiveWithRecipes(ctx context.Context, businessID string) ([]domain.Product, error)
	ListIngredients(ctx context.Context, businessID string) ([]domain.Ingredient, error)
	GetByID(ctx context.Context, businessID, productID string) (*domain.Product, error)
	UpdateSalesPrice(ctx context.Context, change *domain.ProductPriceChange) error
}

type productRepository struct {
	conn postgres.Conn
}

func NewProductRepository(conn postgres.Conn) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func listActiveProductsQuery(businessID string) squirrel.SelectBuilder {
	return squirrel.
		Select(productColumns).
		From(productsTable).
		Where(squirrel.Eq{"p.business_id": businessID, "p.ativo": true}).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func productBOMQuery(productIDs []string) squirrel.SelectBuilder {
	return squirrel.
		Select("pi.product_id, pi.ingredient_id, pi.quantity, i.name, i.unit, i.unit_cost").
		From(productIngredientsTable).
		Join("ingredients i ON i.id = pi.ingredient_id").
		Where(squirrel.Expr("pi.product_id = ANY(?)", pq.Array(productIDs))).
		OrderBy("pi.product_id ASC", "i.name ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *productRepository) ListActiveWithRecipes(ctx context.Context, businessID string) ([]domain.Product, error) {
	query, args, err := listActiveProductsQuery(businessID).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de produtos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produtos")
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear produto")
		}
		products = append(products, *product)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de produtos")
	}

	if len(products) == 0 {
		return products, nil
	}

	if err := r.attachBOM(ctx, r.conn, products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, businessID, productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns).
		From(productsTable).
		Where(squirrel.Eq{"p.business_id": businessID, "p.id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de produto")
	}

	product, err := scanProduct(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar produto")
	}

	products := []domain.Product{*product}
	if err := r.attachBOM(ctx, r.conn, products); err != nil {
		return nil, err
	}

	return &products[0], nil
}

func (r *productRepository) attachBOM(ctx context.Context, q postgres.Queryer, products []domain.Product) error {
	ids := make([]string, 0, len(products))
	index := make(map[string]int, len(products))
	for i, p := range products {
		ids = append(ids, p.ID)
		index[p.ID] = i
	}

	query, args, err := productBOMQuery(ids).ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de ficha técnica")
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar ficha técnica")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line       domain.BOMLine
			ingredient domain.Ingredient
			unit       sql.NullString
		)

		if err := rows.Scan(
			&line.ProductID,
			&line.IngredientID,
			&line.Quantity,
			&ingredient.Name,
			&unit,
			&ingredient.UnitCost,
		); err != nil {
			return errors.Wrap(err, "erro ao escanear ficha técnica")
		}

		ingredient.ID = line.IngredientID
		ingredient.Unit = unit.String
		line.Ingredient = &ingredient

		if i, ok := index[line.ProductID]; ok {
			products[i].BOM = append(products[i].BOM, line)
		}
	}

	return errors.Wrap(rows.Err(), "erro durante a iteração da ficha técnica")
}

func (r *productRepository) ListIngredients(ctx context.Context, businessID string) ([]domain.Ingredient, error) {
	query, args, err := squirrel.
		Select("i.id, i.name, i.unit, i.unit_cost").
		From(ingredientsTable).
		Where(squirrel.Eq{"i.business_id": businessID}).
		OrderBy("i.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de insumos")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar insumos")
	}
	defer rows.Close()

	ingredients := make([]domain.Ingredient, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			ingredient domain.Ingredient
			unit       sql.NullString
		)
		if err := rows.Scan(&ingredient.ID, &ingredient.Name, &unit, &ingredient.UnitCost); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear insumo")
		}
		ingredient.Unit = unit.String
		index[ingredient.ID] = len(ingredients)
		ingredients = append(ingredients, ingredient)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de insumos")
	}

	if len(ingredients) == 0 {
		return ingredients, nil
	}

	ids := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ids = append(ids, ingredient.ID)
	}

	recipeSQL, recipeArgs, err := squirrel.
		Select("ir.ingredient_id, ir.child_ingredient_id, ir.quantity").
		From(ingredientRecipesTable).
		Where(squirrel.Expr("ir.ingredient_id = ANY(?)", pq.Array(ids))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de receitas")
	}

	recipeRows, err := r.conn.QueryContext(ctx, recipeSQL, recipeArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar receitas de insumos")
	}
	defer recipeRows.Close()

	for recipeRows.Next() {
		var (
			parentID string
			line     domain.RecipeLine
		)
		if err := recipeRows.Scan(&parentID, &line.IngredientID, &line.Quantity); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear receita de insumo")
		}
		if i, ok := index[parentID]; ok {
			ingredients[i].Recipe = append(ingredients[i].Recipe, line)
		}
	}

	if err = recipeRows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de receitas")
	}

	return ingredients, nil
}

func updateSalesPriceQuery(change *domain.ProductPriceChange) squirrel.UpdateBuilder {
	return squirrel.
		Update("products").
		Set("sales_price", change.NewPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": change.ProductID, "business_id": change.BusinessID}).
		PlaceholderFormat(squirrel.Dollar)
}

func insertProductPriceHistoryQuery(change *domain.ProductPriceChange) squirrel.InsertBuilder {
	return squirrel.
		Insert(productPriceHistoryTable).
		Columns("id", "business_id", "product_id", "previous_price", "new_price", "variation_percent", "reason").
		Values(
			change.ID,
			change.BusinessID,
			change.ProductID,
			change.PreviousPrice,
			change.NewPrice,
			change.VariationPercent,
			change.Reason,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)
}

// UpdateSalesPrice grava o novo preço e o histórico na mesma transação
func (r *productRepository) UpdateSalesPrice(ctx context.Context, change *domain.ProductPriceChange) error {
	if change.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar id")
		}
		change.ID = id
	}

	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		updateSQL, updateArgs, err := updateSalesPriceQuery(change).ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query de atualização de preço")
		}

		result, err := tx.ExecContext(ctx, updateSQL, updateArgs...)
		if err != nil {
			return wrapPQError(err, "erro ao atualizar preço do produto")
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "erro ao obter número de linhas afetadas")
		}
		if affected == 0 {
			return ErrNotFound
		}

		historySQL, historyArgs, err := insertProductPriceHistoryQuery(change).ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query de histórico de preço")
		}

		if err := tx.QueryRowContext(ctx, historySQL, historyArgs...).Scan(&change.CreatedAt); err != nil {
			return wrapPQError(err, "erro ao gravar histórico de preço")
		}

		return nil
	})
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		product  domain.Product
		category sql.NullString
		yield    sql.NullFloat64
	)

	if err := row.Scan(
		&product.ID,
		&product.BusinessID,
		&product.Name,
		&category,
		&product.SalesPrice,
		&product.Ativo,
		&yield,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}

	product.Category = stringPtr(category)
	product.Yield = float64Ptr(yield)

	return &product, nil
}

func wrapPQError(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return errors.Wrapf(pqErr, "%s (código: %s)", message, pqErr.Code)
	}
	return errors.Wrap(err, message)
}
