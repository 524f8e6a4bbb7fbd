package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"
)

// OrderItem хранит цену на момент оформления, не текущую цену каталога
type OrderItem struct {
	ProductID string
	Quantity  int
	Price     float64
}

type Order struct {
	ID      string
	OrderNo string

	// пустой UserID означает гостевой заказ
	UserID string

	FirstName     string
	LastName      string
	Email         string
	Address       string
	ContactNumber string
	City          string
	PostalCode    string

	Items      []OrderItem
	TotalPrice float64

	Status  Status
	Version int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalOf пересчитывает итог по позициям, totalPrice никогда не принимается извне
func TotalOf(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}
