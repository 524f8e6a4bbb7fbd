package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hasanbut17314/kaspas-backend/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type catalogRepo struct {
	txRunner
	qb sq.StatementBuilderType
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{
		txRunner: txRunner{db: db},
		qb:       sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetForUpdate блокирует строку товара до конца транзакции,
// проверка и списание остатка сериализуются между конкурентными резервами
func (r *catalogRepo) GetForUpdate(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select("prod_id", "name", "price", "quantity").
		From("products").
		Where(sq.Eq{"prod_id": productID}).
		Suffix("FOR UPDATE").
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, &entities.ProductNotFoundError{ProductID: productID}
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(product), nil
}

func (r *catalogRepo) AdjustStock(ctx context.Context, productID string, delta int) error {
	query, args := r.qb.Update("products").
		Set("quantity", sq.Expr("quantity + ?", delta)).
		Where(sq.Eq{"prod_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return &entities.ProductNotFoundError{ProductID: productID}
	}
	return nil
}
