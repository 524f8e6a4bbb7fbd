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

var orderColumns = []string{
	"order_id", "order_no", "user_id", "first_name", "last_name",
	"email", "address", "contact_number", "city", "postal_code",
	"status", "total_price", "version", "created_at", "updated_at",
}

type ordersRepo struct {
	txRunner
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		txRunner: txRunner{db: db},
		qb:       sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ordersRepo) InsertOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_id", "order_no", "user_id", "first_name", "last_name",
			"email", "address", "contact_number", "city", "postal_code",
			"status", "total_price",
		).
		Values(
			o.ID, o.OrderNo, nullString(o.UserID), o.FirstName, o.LastName,
			o.Email, o.Address, o.ContactNumber, o.City, nullString(o.PostalCode),
			string(o.Status), o.TotalPrice,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *ordersRepo) InsertItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "prod_id", "quantity", "price")

	// position сохраняет порядок позиций, поданный клиентом
	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.Quantity, it.Price)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_id": orderID})
}

func (r *ordersRepo) GetOrderByNumber(ctx context.Context, orderNo string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_no": orderNo})
}

func (r *ordersRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "position", "prod_id", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *ordersRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset()))

	q = applyFilter(q, filter)

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Позиции для всей страницы одним запросом
	query, args = r.qb.Select("order_id", "position", "prod_id", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}

	return result, nil
}

func (r *ordersRepo) CountOrders(ctx context.Context, filter entities.OrderFilter) (int, error) {
	q := r.qb.Select("count(*)").From("orders")
	q = applyFilter(q, filter)

	query, args := q.MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

// UpdateStatus делает compare-and-set по прежнему статусу.
// Ноль затронутых строк означает конкурентное изменение, вызывающий повторяет операцию.
func (r *ordersRepo) UpdateStatus(ctx context.Context, orderID string, from, to entities.Status) error {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: order %s is no longer %s", entities.ErrTxConflict, orderID, from)
	}
	return nil
}

func applyFilter(q sq.SelectBuilder, filter entities.OrderFilter) sq.SelectBuilder {
	if filter.UserID != "" {
		q = q.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": string(filter.Status)})
	}
	return q
}
