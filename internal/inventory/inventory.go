package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/hasanbut17314/kaspas-backend/internal/entities"
)

type CatalogRepo interface {
	GetForUpdate(ctx context.Context, productID string) (entities.Product, error)
	AdjustStock(ctx context.Context, productID string, delta int) error
}

// Coordinator резервирует и возвращает остатки каталога.
// Атомарность даёт объемлющая транзакция из контекста, оба метода
// должны вызываться внутри trm.Manager.Do.
type Coordinator struct {
	logger  *slog.Logger
	catalog CatalogRepo
}

func NewCoordinator(logger *slog.Logger, catalog CatalogRepo) *Coordinator {
	return &Coordinator{
		logger:  logger.With(slog.String("service", "inventory")),
		catalog: catalog,
	}
}

// Reserve списывает остаток по каждой позиции, либо все, либо ни одной.
// Товары обходятся в порядке prod_id, общий порядок блокировок
// исключает дедлоки между пересекающимися резервами.
func (c *Coordinator) Reserve(ctx context.Context, items []entities.OrderItem) error {
	for _, it := range sortedByProduct(items) {
		product, err := c.catalog.GetForUpdate(ctx, it.ProductID)
		if err != nil {
			return fmt.Errorf("failed to read stock: %w", err)
		}

		if product.Quantity < it.Quantity {
			return &entities.InsufficientStockError{
				ProductID: it.ProductID,
				Available: product.Quantity,
			}
		}

		if err := c.catalog.AdjustStock(ctx, it.ProductID, -it.Quantity); err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}

		c.logger.Debug("stock reserved",
			slog.String("prod_id", it.ProductID),
			slog.Int("quantity", it.Quantity),
		)
	}
	return nil
}

// Release возвращает остатки после отмены заказа, компенсация успешного Reserve
func (c *Coordinator) Release(ctx context.Context, items []entities.OrderItem) error {
	for _, it := range sortedByProduct(items) {
		if err := c.catalog.AdjustStock(ctx, it.ProductID, it.Quantity); err != nil {
			return fmt.Errorf("failed to increment stock: %w", err)
		}

		c.logger.Debug("stock released",
			slog.String("prod_id", it.ProductID),
			slog.Int("quantity", it.Quantity),
		)
	}
	return nil
}

func sortedByProduct(items []entities.OrderItem) []entities.OrderItem {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b entities.OrderItem) int {
		return strings.Compare(a.ProductID, b.ProductID)
	})
	return sorted
}
