package repo

import (
	"database/sql"
	"time"

	"github.com/hasanbut17314/kaspas-backend/internal/entities"
)

type Order struct {
	ID            string         `db:"order_id"`
	OrderNo       string         `db:"order_no"`
	UserID        sql.NullString `db:"user_id"`
	FirstName     string         `db:"first_name"`
	LastName      string         `db:"last_name"`
	Email         string         `db:"email"`
	Address       string         `db:"address"`
	ContactNumber string         `db:"contact_number"`
	City          string         `db:"city"`
	PostalCode    sql.NullString `db:"postal_code"`
	Status        string         `db:"status"`
	TotalPrice    float64        `db:"total_price"`
	Version       int            `db:"version"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type OrderItem struct {
	OrderID  string  `db:"order_id"`
	Position int     `db:"position"`
	ProdID   string  `db:"prod_id"`
	Quantity int     `db:"quantity"`
	Price    float64 `db:"price"`
}

type Product struct {
	ID       string  `db:"prod_id"`
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	Quantity int     `db:"quantity"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProdID,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		UserID:        nullStringToString(o.UserID),
		FirstName:     o.FirstName,
		LastName:      o.LastName,
		Email:         o.Email,
		Address:       o.Address,
		ContactNumber: o.ContactNumber,
		City:          o.City,
		PostalCode:    nullStringToString(o.PostalCode),
		Status:        entities.Status(o.Status),
		TotalPrice:    o.TotalPrice,
		Version:       o.Version,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
