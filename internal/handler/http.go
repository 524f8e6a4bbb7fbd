package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hasanbut17314/kaspas-backend/internal/auth"
	"github.com/hasanbut17314/kaspas-backend/internal/entities"
	"github.com/hasanbut17314/kaspas-backend/internal/service"
	"github.com/hasanbut17314/kaspas-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req service.PlaceOrderRequest, requester entities.Identity) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string, requester entities.Identity) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNo string, requester entities.Identity) (entities.Order, error)
	ListOwnOrders(ctx context.Context, requester entities.Identity, filter entities.OrderFilter) ([]entities.Order, int, error)
	ListAllOrders(ctx context.Context, requester entities.Identity, filter entities.OrderFilter) ([]entities.Order, int, error)
	UpdateStatus(ctx context.Context, orderID string, newStatus entities.Status, requester entities.Identity) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID string, requester entities.Identity) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/order", func(r chi.Router) {
		// оформление доступно и гостям
		r.Post("/create", h.PlaceOrder)

		r.Group(func(r chi.Router) {
			r.Use(auth.Require)
			r.Get("/my", h.ListOwnOrders)
			r.Get("/all", h.ListAllOrders)
			r.Get("/number/{order_no}", h.GetOrderByNumber)
			r.Get("/{order_id}", h.GetOrderByID)
			r.Put("/{order_id}/cancel", h.CancelOrder)
			r.Put("/{order_id}/status", h.UpdateStatus)
		})
	})
}

// PlaceOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Резервирует остатки и создаёт заказ со статусом Pending
// @Tags         orders
// @Param        request  body  PlaceOrderRequest  true  "Данные заказа"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации или нехватка остатков"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order/create [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	// отсутствие или нечитаемость токена не мешает гостевому заказу
	requester, _ := auth.IdentityFromContext(ctx)

	order, err := h.svc.PlaceOrder(ctx, PlaceOrderJSONToRequest(req), requester)
	if err != nil {
		ordersPlacementFailed.WithLabelValues(failureReason(err)).Inc()
		h.writeDomainError(ctx, w, err, "failed to place order")
		return
	}

	ordersPlaced.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID возвращает заказ по внутреннему ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id  path  string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /order/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid4"); err != nil {
		utils.WriteError(w, "invalid order ID format", http.StatusBadRequest)
		return
	}

	requester, _ := auth.IdentityFromContext(ctx)

	order, err := h.svc.GetOrderByID(ctx, orderID, requester)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetOrderByNumber возвращает заказ по видимому номеру.
// @Summary      Получить заказ по номеру
// @Tags         orders
// @Param        order_no  path  string  true  "Номер заказа"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /order/number/{order_no} [get]
func (h *HTTPHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNo := chi.URLParam(r, "order_no")

	if err := h.validate.Var(orderNo, "required"); err != nil {
		utils.WriteError(w, "order number is required", http.StatusBadRequest)
		return
	}

	requester, _ := auth.IdentityFromContext(ctx)

	order, err := h.svc.GetOrderByNumber(ctx, orderNo, requester)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get order by number")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOwnOrders возвращает заказы текущего пользователя.
// @Summary      Мои заказы
// @Tags         orders
// @Param        page    query  int     false  "Страница"
// @Param        limit   query  int     false  "Размер страницы"
// @Param        status  query  string  false  "Фильтр по статусу"
// @Success      200  {object}  OrdersPage
// @Router       /order/my [get]
func (h *HTTPHandler) ListOwnOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requester, _ := auth.IdentityFromContext(ctx)
	filter := parseFilter(r)

	orders, total, err := h.svc.ListOwnOrders(ctx, requester, filter)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrdersPageToJSON(orders, filter, total), http.StatusOK)
}

// ListAllOrders возвращает все заказы, только для админа.
// @Summary      Все заказы
// @Tags         orders
// @Param        page    query  int     false  "Страница"
// @Param        limit   query  int     false  "Размер страницы"
// @Param        status  query  string  false  "Фильтр по статусу"
// @Success      200  {object}  OrdersPage
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Router       /order/all [get]
func (h *HTTPHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requester, _ := auth.IdentityFromContext(ctx)
	filter := parseFilter(r)

	orders, total, err := h.svc.ListAllOrders(ctx, requester, filter)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to list all orders")
		return
	}

	utils.WriteJSON(w, OrdersPageToJSON(orders, filter, total), http.StatusOK)
}

// UpdateStatus меняет статус заказа, только для админа.
// @Summary      Сменить статус заказа
// @Tags         orders
// @Param        order_id  path  string               true  "ID заказа"
// @Param        request   body  UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /order/{order_id}/status [put]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid4"); err != nil {
		utils.WriteError(w, "invalid order ID format", http.StatusBadRequest)
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	requester, _ := auth.IdentityFromContext(ctx)

	order, err := h.svc.UpdateStatus(ctx, orderID, entities.Status(req.Status), requester)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to update order status")
		return
	}

	statusUpdates.WithLabelValues(req.Status).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет Pending-заказ и возвращает остатки.
// @Summary      Отменить заказ
// @Tags         orders
// @Param        order_id  path  string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Заказ уже не Pending"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /order/{order_id}/cancel [put]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid4"); err != nil {
		utils.WriteError(w, "invalid order ID format", http.StatusBadRequest)
		return
	}

	requester, _ := auth.IdentityFromContext(ctx)

	order, err := h.svc.CancelOrder(ctx, orderID, requester)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to cancel order")
		return
	}

	ordersCancelled.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// writeDomainError переводит доменные ошибки в коды ответов,
// детали хранилища наружу не отдаются
func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	var stockErr *entities.InsufficientStockError
	var prodErr *entities.ProductNotFoundError

	switch {
	case errors.As(err, &stockErr):
		utils.WriteError(w, stockErr.Error(), http.StatusBadRequest)
	case errors.As(err, &prodErr):
		utils.WriteError(w, prodErr.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidOrder):
		utils.WriteError(w, "required fields are not provided", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, "invalid status transition", http.StatusBadRequest)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "you don't have permission to perform this action", http.StatusForbidden)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, entities.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, entities.ErrInvalidOrder):
		return "validation"
	case errors.Is(err, entities.ErrTxConflict):
		return "conflict"
	default:
		return "internal"
	}
}

func parseFilter(r *http.Request) entities.OrderFilter {
	filter := entities.OrderFilter{
		Page:  queryInt(r, "page", entities.DefaultPage),
		Limit: queryInt(r, "limit", entities.DefaultLimit),
	}

	// неизвестный статус игнорируется, а не отклоняется
	if status := entities.Status(r.URL.Query().Get("status")); status.Valid() {
		filter.Status = status
	}

	return filter.Normalize()
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil || i < 1 {
		return fallback
	}
	return i
}
