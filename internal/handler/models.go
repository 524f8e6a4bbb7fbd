package handler

import (
	"time"

	"github.com/hasanbut17314/kaspas-backend/internal/entities"
	"github.com/hasanbut17314/kaspas-backend/internal/service"
)

// PlaceOrderRequest тело запроса оформления заказа
type PlaceOrderRequest struct {
	FirstName     string      `json:"firstName" validate:"required"`
	LastName      string      `json:"lastName" validate:"required"`
	Email         string      `json:"email" validate:"required,email"`
	Address       string      `json:"address" validate:"required"`
	ContactNumber string      `json:"contactNumber" validate:"required"`
	City          string      `json:"city" validate:"required"`
	PostalCode    string      `json:"postalCode,omitempty"`
	Items         []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ProdID   string  `json:"prodId" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gte=1"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// UpdateStatusRequest тело запроса смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Shipped Delivered Cancelled"`
}

// Order представляет заказ
type Order struct {
	ID         string      `json:"id"`
	OrderNo    string      `json:"order_no"`
	UserID     string      `json:"user_id,omitempty"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Email      string      `json:"email"`
	Address    string      `json:"address"`
	ContactNo  string      `json:"contactNumber"`
	City       string      `json:"city"`
	PostalCode string      `json:"postalCode,omitempty"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"totalPrice"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// OrdersPage страница списка заказов
type OrdersPage struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// Pagination параметры страницы
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

func ItemJSONToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProdID,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func ItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ProdID:   i.ProductID,
		Quantity: i.Quantity,
		Price:    i.Price,
	}
}

func PlaceOrderJSONToRequest(r PlaceOrderRequest) service.PlaceOrderRequest {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, ItemJSONToEntity(it))
	}

	return service.PlaceOrderRequest{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Address:       r.Address,
		ContactNumber: r.ContactNumber,
		City:          r.City,
		PostalCode:    r.PostalCode,
		Items:         items,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		ID:         o.ID,
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		FirstName:  o.FirstName,
		LastName:   o.LastName,
		Email:      o.Email,
		Address:    o.Address,
		ContactNo:  o.ContactNumber,
		City:       o.City,
		PostalCode: o.PostalCode,
		Items:      items,
		TotalPrice: o.TotalPrice,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func OrdersPageToJSON(orders []entities.Order, filter entities.OrderFilter, total int) OrdersPage {
	page := OrdersPage{
		Orders: make([]Order, 0, len(orders)),
		Pagination: Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
		},
	}
	for _, o := range orders {
		page.Orders = append(page.Orders, OrderEntityToJSON(o))
	}
	return page
}
