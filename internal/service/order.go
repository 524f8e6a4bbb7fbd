package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hasanbut17314/kaspas-backend/internal/entities"
	"github.com/hasanbut17314/kaspas-backend/pkg/trm"
	"github.com/hasanbut17314/kaspas-backend/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, o entities.Order) error
	InsertItems(ctx context.Context, orderID string, items []entities.OrderItem) error

	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNo string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	CountOrders(ctx context.Context, filter entities.OrderFilter) (int, error)

	// UpdateStatus меняет статус только если он всё ещё равен from
	UpdateStatus(ctx context.Context, orderID string, from, to entities.Status) error
}

type Inventory interface {
	Reserve(ctx context.Context, items []entities.OrderItem) error
	Release(ctx context.Context, items []entities.OrderItem) error
}

type OrderNumbers interface {
	Next(ctx context.Context) (string, error)
}

type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	inventory Inventory
	numbers   OrderNumbers
	notifier  Notifier
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	inventory Inventory,
	numbers OrderNumbers,
	notifier Notifier,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		inventory: inventory,
		numbers:   numbers,
		notifier:  notifier,
		cache:     cache,
	}
}

var retryCfg = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type PlaceOrderRequest struct {
	FirstName     string
	LastName      string
	Email         string
	Address       string
	ContactNumber string
	City          string
	PostalCode    string

	Items []entities.OrderItem
}

func (r PlaceOrderRequest) validate() error {
	required := map[string]string{
		"firstName":     r.FirstName,
		"lastName":      r.LastName,
		"email":         r.Email,
		"address":       r.Address,
		"contactNumber": r.ContactNumber,
		"city":          r.City,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", entities.ErrInvalidOrder, field)
		}
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("%w: items are required", entities.ErrInvalidOrder)
	}
	for _, it := range r.Items {
		if it.ProductID == "" {
			return fmt.Errorf("%w: item product is required", entities.ErrInvalidOrder)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item quantity must be positive", entities.ErrInvalidOrder)
		}
	}
	return nil
}

// PlaceOrder резервирует остатки, выдаёт номер и сохраняет заказ в одной транзакции.
// requester с пустым ID означает гостевой заказ.
func (s *orderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest, requester entities.Identity) (entities.Order, error) {
	if err := req.validate(); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.inventory.Reserve(ctx, req.Items); err != nil {
				return fmt.Errorf("failed to reserve stock: %w", err)
			}

			orderNo, err := s.numbers.Next(ctx)
			if err != nil {
				return fmt.Errorf("failed to generate order number: %w", err)
			}

			now := time.Now().UTC()
			order = entities.Order{
				ID:            uuid.NewString(),
				OrderNo:       orderNo,
				UserID:        requester.ID,
				FirstName:     req.FirstName,
				LastName:      req.LastName,
				Email:         req.Email,
				Address:       req.Address,
				ContactNumber: req.ContactNumber,
				City:          req.City,
				PostalCode:    req.PostalCode,
				Items:         req.Items,
				TotalPrice:    entities.TotalOf(req.Items),
				Status:        entities.StatusPending,
				Version:       1,
				CreatedAt:     now,
				UpdatedAt:     now,
			}

			if err := s.repo.InsertOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.InsertItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save order items: %w", err)
			}
			return nil
		})
	}

	if err := utils.Retry(retryCfg, fn, entities.ErrTxConflict); err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order placed",
		slog.String("order_no", order.OrderNo),
		slog.Float64("total_price", order.TotalPrice),
	)
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string, requester entities.Identity) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			if !requester.CanAccess(order) {
				return entities.Order{}, entities.ErrForbidden
			}
			return order, nil
		}
		// битую запись выбрасываем и читаем из хранилища
		s.logger.Warn("dropping corrupt cache entry", slog.String("order_id", orderID))
		s.cache.Delete(orderID)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(retryCfg, fn, entities.ErrTxConflict); err != nil {
		return entities.Order{}, err
	}

	if !requester.CanAccess(order) {
		return entities.Order{}, entities.ErrForbidden
	}

	if data, err := order.Marshal(); err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
	} else {
		s.cache.Set(orderID, data)
	}
	return order, nil
}

func (s *orderService) GetOrderByNumber(ctx context.Context, orderNo string, requester entities.Identity) (entities.Order, error) {
	order, err := s.repo.GetOrderByNumber(ctx, orderNo)
	if err != nil {
		return entities.Order{}, err
	}
	if !requester.CanAccess(order) {
		return entities.Order{}, entities.ErrForbidden
	}
	return order, nil
}

func (s *orderService) ListOwnOrders(ctx context.Context, requester entities.Identity, filter entities.OrderFilter) ([]entities.Order, int, error) {
	filter.UserID = requester.ID
	return s.listOrders(ctx, filter)
}

func (s *orderService) ListAllOrders(ctx context.Context, requester entities.Identity, filter entities.OrderFilter) ([]entities.Order, int, error) {
	if !requester.IsAdmin() {
		return nil, 0, entities.ErrForbidden
	}
	filter.UserID = ""
	return s.listOrders(ctx, filter)
}

func (s *orderService) listOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, int, error) {
	filter = filter.Normalize()

	var (
		orders []entities.Order
		total  int
	)

	// Страница и количество считаются параллельно
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountOrders(ctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// UpdateStatus применяет таблицу переходов, перевод в Cancelled идёт через
// ту же компенсацию остатков, что и отмена владельцем
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, newStatus entities.Status, requester entities.Identity) (entities.Order, error) {
	if !requester.IsAdmin() {
		return entities.Order{}, entities.ErrForbidden
	}
	if !newStatus.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidTransition, newStatus)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, newStatus)
		}

		if newStatus == entities.StatusCancelled {
			return s.cancelTx(ctx, order)
		}
		return s.repo.UpdateStatus(ctx, orderID, order.Status, newStatus)
	}

	err := utils.Retry(retryCfg, fn, entities.ErrTxConflict)
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID)
	order.Status = newStatus

	s.notifyStatus(ctx, order)
	return order, nil
}

// CancelOrder отменяет Pending-заказ владельца или админа,
// возврат остатков и смена статуса атомарны
func (s *orderService) CancelOrder(ctx context.Context, orderID string, requester entities.Identity) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		if !requester.CanAccess(order) {
			return entities.ErrForbidden
		}
		if order.Status != entities.StatusPending {
			return fmt.Errorf("%w: only Pending orders may be cancelled", entities.ErrInvalidTransition)
		}

		return s.cancelTx(ctx, order)
	}

	err := utils.Retry(retryCfg, fn, entities.ErrTxConflict)
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID)
	order.Status = entities.StatusCancelled

	s.logger.Info("order cancelled", slog.String("order_no", order.OrderNo))
	return order, nil
}

func (s *orderService) cancelTx(ctx context.Context, order entities.Order) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.inventory.Release(ctx, order.Items); err != nil {
			return fmt.Errorf("failed to release stock: %w", err)
		}
		return s.repo.UpdateStatus(ctx, order.ID, order.Status, entities.StatusCancelled)
	})
}

// notifyStatus шлёт письмо после коммита, сбой доставки не откатывает статус
func (s *orderService) notifyStatus(ctx context.Context, order entities.Order) {
	var subject string
	switch order.Status {
	case entities.StatusShipped:
		subject = "Your order has been shipped"
	case entities.StatusDelivered:
		subject = "Your order has been delivered"
	default:
		return
	}

	body := fmt.Sprintf("Hello %s, your order %s is now %s.", order.FirstName, order.OrderNo, order.Status)
	if err := s.notifier.Send(ctx, order.Email, subject, body); err != nil {
		s.logger.Error("failed to send notification",
			slog.String("order_no", order.OrderNo),
			slog.Any("error", err),
		)
	}
}

// WarmUpCache загружает последние заказы в кэш при старте
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.ListOrders(ctx, entities.OrderFilter{Page: 1, Limit: count})
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(order.ID, data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}
