package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/hasanbut17314/kaspas-backend/internal/entities"
	"github.com/hasanbut17314/kaspas-backend/internal/service"
	mocks "github.com/hasanbut17314/kaspas-backend/internal/service/mocks"
	txMocks "github.com/hasanbut17314/kaspas-backend/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderAPI interface {
	PlaceOrder(ctx context.Context, req service.PlaceOrderRequest, requester entities.Identity) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string, requester entities.Identity) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNo string, requester entities.Identity) (entities.Order, error)
	ListOwnOrders(ctx context.Context, requester entities.Identity, filter entities.OrderFilter) ([]entities.Order, int, error)
	ListAllOrders(ctx context.Context, requester entities.Identity, filter entities.OrderFilter) ([]entities.Order, int, error)
	UpdateStatus(ctx context.Context, orderID string, newStatus entities.Status, requester entities.Identity) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID string, requester entities.Identity) (entities.Order, error)
	WarmUpCache(ctx context.Context, count int) error
}

type serviceMocks struct {
	repo      *mocks.MockOrderRepo
	inventory *mocks.MockInventory
	numbers   *mocks.MockOrderNumbers
	notifier  *mocks.MockNotifier
	cache     *mocks.MockCache
	tx        *txMocks.MockManager
}

func newService(t *testing.T) (*serviceMocks, orderAPI) {
	m := &serviceMocks{
		repo:      mocks.NewMockOrderRepo(t),
		inventory: mocks.NewMockInventory(t),
		numbers:   mocks.NewMockOrderNumbers(t),
		notifier:  mocks.NewMockNotifier(t),
		cache:     mocks.NewMockCache(t),
		tx:        txMocks.NewMockManager(t),
	}

	// транзакция в тестах просто прокидывает контекст
	m.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, m.tx, m.repo, m.inventory, m.numbers, m.notifier, m.cache)
	return m, svc
}

func TestOrderService_PlaceOrder(t *testing.T) {
	dbError := errors.New("db error")

	items := []entities.OrderItem{
		{ProductID: "p1", Quantity: 2, Price: 20},
		{ProductID: "p2", Quantity: 1, Price: 9.99},
	}
	validReq := service.PlaceOrderRequest{
		FirstName:     "John",
		LastName:      "Doe",
		Email:         "john@example.com",
		Address:       "1 Main St",
		ContactNumber: "+10000000000",
		City:          "Metropolis",
		PostalCode:    "12345",
		Items:         items,
	}
	requester := entities.Identity{ID: "user-1", Role: entities.RoleCustomer}

	testCases := []struct {
		name         string
		req          func() service.PlaceOrderRequest
		mockBehavior func(m *serviceMocks)
		wantErr      error
	}{
		{
			name: "OK",
			req:  func() service.PlaceOrderRequest { return validReq },
			mockBehavior: func(m *serviceMocks) {
				m.inventory.EXPECT().Reserve(mock.Anything, items).Return(nil)
				m.numbers.EXPECT().Next(mock.Anything).Return("ORD-1700000000-42", nil)
				m.repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(nil)
				m.repo.EXPECT().InsertItems(mock.Anything, mock.Anything, items).Return(nil)
			},
		},
		{
			name: "missing email",
			req: func() service.PlaceOrderRequest {
				req := validReq
				req.Email = ""
				return req
			},
			mockBehavior: func(m *serviceMocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name: "no items",
			req: func() service.PlaceOrderRequest {
				req := validReq
				req.Items = nil
				return req
			},
			mockBehavior: func(m *serviceMocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name: "insufficient stock is not retried",
			req:  func() service.PlaceOrderRequest { return validReq },
			mockBehavior: func(m *serviceMocks) {
				m.inventory.EXPECT().Reserve(mock.Anything, items).
					Return(&entities.InsufficientStockError{ProductID: "p1", Available: 1}).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name: "unknown product is not retried",
			req:  func() service.PlaceOrderRequest { return validReq },
			mockBehavior: func(m *serviceMocks) {
				m.inventory.EXPECT().Reserve(mock.Anything, items).
					Return(&entities.ProductNotFoundError{ProductID: "p1"}).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "transient conflict retried (first attempt fails, second succeeds)",
			req:  func() service.PlaceOrderRequest { return validReq },
			mockBehavior: func(m *serviceMocks) {
				m.inventory.EXPECT().Reserve(mock.Anything, items).Return(nil)
				m.numbers.EXPECT().Next(mock.Anything).Return("ORD-1700000000-42", nil)
				// первая попытка падает на сериализации
				m.repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).
					Once().Return(entities.ErrTxConflict)
				// вторая проходит
				m.repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
				m.repo.EXPECT().InsertItems(mock.Anything, mock.Anything, items).Return(nil)
			},
		},
		{
			name: "number generation fails",
			req:  func() service.PlaceOrderRequest { return validReq },
			mockBehavior: func(m *serviceMocks) {
				m.inventory.EXPECT().Reserve(mock.Anything, items).Return(nil).Once()
				m.numbers.EXPECT().Next(mock.Anything).Return("", dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name: "unexpected storage error is not retried",
			req:  func() service.PlaceOrderRequest { return validReq },
			mockBehavior: func(m *serviceMocks) {
				m.inventory.EXPECT().Reserve(mock.Anything, items).Return(nil).Once()
				m.numbers.EXPECT().Next(mock.Anything).Return("ORD-1700000000-42", nil).Once()
				m.repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).
					Once().Return(dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newService(t)
			tc.mockBehavior(m)

			order, err := svc.PlaceOrder(context.Background(), tc.req(), requester)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, order.ID)
			assert.Equal(t, "ORD-1700000000-42", order.OrderNo)
			assert.Equal(t, requester.ID, order.UserID)
			assert.Equal(t, entities.StatusPending, order.Status)
			assert.InDelta(t, 49.99, order.TotalPrice, 1e-9)
		})
	}
}

func TestOrderService_PlaceOrder_Guest(t *testing.T) {
	m, svc := newService(t)

	m.inventory.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil)
	m.numbers.EXPECT().Next(mock.Anything).Return("ORD-1700000000-1", nil)
	m.repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(nil)
	m.repo.EXPECT().InsertItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	order, err := svc.PlaceOrder(context.Background(), service.PlaceOrderRequest{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		Address:       "2 Main St",
		ContactNumber: "+10000000001",
		City:          "Metropolis",
		Items:         []entities.OrderItem{{ProductID: "p1", Quantity: 1, Price: 20}},
	}, entities.Identity{})

	require.NoError(t, err)
	assert.Empty(t, order.UserID)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	owner := entities.Identity{ID: "user-1", Role: entities.RoleCustomer}
	admin := entities.Identity{ID: "admin-1", Role: entities.RoleAdmin}
	stranger := entities.Identity{ID: "user-2", Role: entities.RoleCustomer}
	repoErr := errors.New("some error")

	validOrder := entities.Order{ID: "123", OrderNo: "ORD-1-1", UserID: "user-1", Status: entities.StatusPending}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	guestOrder := entities.Order{ID: "456", OrderNo: "ORD-1-2", Status: entities.StatusPending}
	guestData, err := guestOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		requester    entities.Identity
		mockBehavior func(m *serviceMocks)
		wantErr      error
		want         entities.Order
	}{
		{
			name:      "success from cache",
			orderID:   "123",
			requester: owner,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("123").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:      "cache hit but requester is not owner",
			orderID:   "123",
			requester: stranger,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("123").Return(validData, true).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "guest order visible to admin only",
			orderID:   "456",
			requester: admin,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("456").Return(guestData, true).Once()
			},
			want: guestOrder,
		},
		{
			name:      "corrupt cache entry dropped and read from repo",
			orderID:   "123",
			requester: owner,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("123").Return([]byte("broken"), true).Once()
				m.cache.EXPECT().Delete("123").Return().Once()
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
				m.cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:      "success from repo and set to cache",
			orderID:   "123",
			requester: owner,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("123").Return(nil, false).Once()
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(validOrder, nil).Once()
				m.cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:      "not found in repo",
			orderID:   "not-exist",
			requester: owner,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("not-exist").Return(nil, false).Once()
				m.repo.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:      "transient conflict retried",
			orderID:   "123",
			requester: owner,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("123").Return(nil, false).Once()
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, entities.ErrTxConflict).Once()
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				m.cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:      "unexpected repo error is not retried",
			orderID:   "123",
			requester: owner,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("123").Return(nil, false).Once()
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, repoErr).Once()
			},
			wantErr: repoErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newService(t)
			tc.mockBehavior(m)

			order, err := svc.GetOrderByID(context.Background(), tc.orderID, tc.requester)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, order)
		})
	}
}

func TestOrderService_GetOrderByNumber(t *testing.T) {
	owner := entities.Identity{ID: "user-1", Role: entities.RoleCustomer}
	order := entities.Order{ID: "123", OrderNo: "ORD-1-1", UserID: "user-1"}

	t.Run("OK", func(t *testing.T) {
		m, svc := newService(t)
		m.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD-1-1").Return(order, nil).Once()

		got, err := svc.GetOrderByNumber(context.Background(), "ORD-1-1", owner)
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("forbidden for stranger", func(t *testing.T) {
		m, svc := newService(t)
		m.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD-1-1").Return(order, nil).Once()

		_, err := svc.GetOrderByNumber(context.Background(), "ORD-1-1", entities.Identity{ID: "user-2", Role: entities.RoleCustomer})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	admin := entities.Identity{ID: "admin-1", Role: entities.RoleAdmin}
	customer := entities.Identity{ID: "user-1", Role: entities.RoleCustomer}
	orders := []entities.Order{{ID: "1"}, {ID: "2"}}

	t.Run("own orders are scoped to requester", func(t *testing.T) {
		m, svc := newService(t)
		wantFilter := entities.OrderFilter{UserID: "user-1", Page: 1, Limit: 10}
		m.repo.EXPECT().ListOrders(mock.Anything, wantFilter).Return(orders, nil).Once()
		m.repo.EXPECT().CountOrders(mock.Anything, wantFilter).Return(12, nil).Once()

		got, total, err := svc.ListOwnOrders(context.Background(), customer, entities.OrderFilter{})
		require.NoError(t, err)
		assert.Equal(t, orders, got)
		assert.Equal(t, 12, total)
	})

	t.Run("all orders require admin", func(t *testing.T) {
		_, svc := newService(t)
		_, _, err := svc.ListAllOrders(context.Background(), customer, entities.OrderFilter{})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("admin lists all with status filter", func(t *testing.T) {
		m, svc := newService(t)
		wantFilter := entities.OrderFilter{Status: entities.StatusShipped, Page: 2, Limit: 5}
		m.repo.EXPECT().ListOrders(mock.Anything, wantFilter).Return(orders, nil).Once()
		m.repo.EXPECT().CountOrders(mock.Anything, wantFilter).Return(2, nil).Once()

		got, total, err := svc.ListAllOrders(context.Background(), admin, entities.OrderFilter{
			// UserID игнорируется для админского списка
			UserID: "user-1",
			Status: entities.StatusShipped,
			Page:   2,
			Limit:  5,
		})
		require.NoError(t, err)
		assert.Equal(t, orders, got)
		assert.Equal(t, 2, total)
	})

	t.Run("count fails", func(t *testing.T) {
		dbError := errors.New("db error")
		m, svc := newService(t)
		m.repo.EXPECT().ListOrders(mock.Anything, mock.Anything).Return(orders, nil).Maybe()
		m.repo.EXPECT().CountOrders(mock.Anything, mock.Anything).Return(0, dbError).Once()

		_, _, err := svc.ListOwnOrders(context.Background(), customer, entities.OrderFilter{})
		assert.ErrorIs(t, err, dbError)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	admin := entities.Identity{ID: "admin-1", Role: entities.RoleAdmin}
	customer := entities.Identity{ID: "user-1", Role: entities.RoleCustomer}

	items := []entities.OrderItem{{ProductID: "p1", Quantity: 2, Price: 20}}
	pendingOrder := entities.Order{
		ID:        "123",
		OrderNo:   "ORD-1-1",
		UserID:    "user-1",
		FirstName: "John",
		Email:     "john@example.com",
		Items:     items,
		Status:    entities.StatusPending,
	}
	shippedOrder := pendingOrder
	shippedOrder.Status = entities.StatusShipped

	testCases := []struct {
		name         string
		requester    entities.Identity
		newStatus    entities.Status
		mockBehavior func(m *serviceMocks)
		wantErr      error
		wantStatus   entities.Status
	}{
		{
			name:         "not admin",
			requester:    customer,
			newStatus:    entities.StatusShipped,
			mockBehavior: func(m *serviceMocks) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:         "unknown status",
			requester:    admin,
			newStatus:    entities.Status("Refunded"),
			mockBehavior: func(m *serviceMocks) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:      "pending to shipped notifies customer",
			requester: admin,
			newStatus: entities.StatusShipped,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(pendingOrder, nil).Once()
				m.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusPending, entities.StatusShipped).Return(nil).Once()
				m.cache.EXPECT().Delete("123").Return().Once()
				m.notifier.EXPECT().
					Send(mock.Anything, "john@example.com", "Your order has been shipped", mock.Anything).
					Return(nil).Once()
			},
			wantStatus: entities.StatusShipped,
		},
		{
			name:      "shipped to delivered notifies customer",
			requester: admin,
			newStatus: entities.StatusDelivered,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(shippedOrder, nil).Once()
				m.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusShipped, entities.StatusDelivered).Return(nil).Once()
				m.cache.EXPECT().Delete("123").Return().Once()
				m.notifier.EXPECT().
					Send(mock.Anything, "john@example.com", "Your order has been delivered", mock.Anything).
					Return(nil).Once()
			},
			wantStatus: entities.StatusDelivered,
		},
		{
			name:      "shipped cannot go back to pending",
			requester: admin,
			newStatus: entities.StatusPending,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(shippedOrder, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:      "cancelling releases stock",
			requester: admin,
			newStatus: entities.StatusCancelled,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(pendingOrder, nil).Once()
				m.inventory.EXPECT().Release(mock.Anything, items).Return(nil).Once()
				m.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusPending, entities.StatusCancelled).Return(nil).Once()
				m.cache.EXPECT().Delete("123").Return().Once()
			},
			wantStatus: entities.StatusCancelled,
		},
		{
			name:      "notification failure does not fail the update",
			requester: admin,
			newStatus: entities.StatusShipped,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(pendingOrder, nil).Once()
				m.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusPending, entities.StatusShipped).Return(nil).Once()
				m.cache.EXPECT().Delete("123").Return().Once()
				m.notifier.EXPECT().
					Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("broker down")).Once()
			},
			wantStatus: entities.StatusShipped,
		},
		{
			name:      "concurrent update retried",
			requester: admin,
			newStatus: entities.StatusShipped,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(pendingOrder, nil)
				// другой писатель успел раньше, CAS не прошёл
				m.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusPending, entities.StatusShipped).
					Once().Return(entities.ErrTxConflict)
				m.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusPending, entities.StatusShipped).
					Once().Return(nil)
				m.cache.EXPECT().Delete("123").Return().Once()
				m.notifier.EXPECT().
					Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil).Once()
			},
			wantStatus: entities.StatusShipped,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newService(t)
			tc.mockBehavior(m)

			order, err := svc.UpdateStatus(context.Background(), "123", tc.newStatus, tc.requester)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, order.Status)
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	owner := entities.Identity{ID: "user-1", Role: entities.RoleCustomer}
	admin := entities.Identity{ID: "admin-1", Role: entities.RoleAdmin}
	stranger := entities.Identity{ID: "user-2", Role: entities.RoleCustomer}

	items := []entities.OrderItem{{ProductID: "p1", Quantity: 2, Price: 20}}
	pendingOrder := entities.Order{
		ID:      "123",
		OrderNo: "ORD-1-1",
		UserID:  "user-1",
		Items:   items,
		Status:  entities.StatusPending,
	}
	shippedOrder := pendingOrder
	shippedOrder.Status = entities.StatusShipped

	testCases := []struct {
		name         string
		requester    entities.Identity
		mockBehavior func(m *serviceMocks)
		wantErr      error
	}{
		{
			name:      "owner cancels pending order",
			requester: owner,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(pendingOrder, nil).Once()
				m.inventory.EXPECT().Release(mock.Anything, items).Return(nil).Once()
				m.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusPending, entities.StatusCancelled).Return(nil).Once()
				m.cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name:      "admin cancels someone else's order",
			requester: admin,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(pendingOrder, nil).Once()
				m.inventory.EXPECT().Release(mock.Anything, items).Return(nil).Once()
				m.repo.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusPending, entities.StatusCancelled).Return(nil).Once()
				m.cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name:      "stranger is forbidden",
			requester: stranger,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(pendingOrder, nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "shipped order cannot be cancelled",
			requester: owner,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").Return(shippedOrder, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:      "not found",
			requester: owner,
			mockBehavior: func(m *serviceMocks) {
				m.repo.EXPECT().GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, svc := newService(t)
			tc.mockBehavior(m)

			order, err := svc.CancelOrder(context.Background(), "123", tc.requester)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, order.Status)
		})
	}
}

func TestOrderService_WarmUpCache(t *testing.T) {
	orders := []entities.Order{{ID: "1"}, {ID: "2"}}

	t.Run("OK", func(t *testing.T) {
		m, svc := newService(t)
		m.repo.EXPECT().ListOrders(mock.Anything, entities.OrderFilter{Page: 1, Limit: 2}).
			Return(orders, nil).Once()
		m.cache.EXPECT().Set("1", mock.Anything).Return().Once()
		m.cache.EXPECT().Set("2", mock.Anything).Return().Once()

		assert.NoError(t, svc.WarmUpCache(context.Background(), 2))
	})

	t.Run("repo fails", func(t *testing.T) {
		m, svc := newService(t)
		m.repo.EXPECT().ListOrders(mock.Anything, mock.Anything).
			Return(nil, errors.New("db error")).Once()

		assert.Error(t, svc.WarmUpCache(context.Background(), 2))
	})
}
