package entities

import (
	"time"
)

type OrderStatus string

const (
	// StatusWhole используется только как фильтр выборки и никогда не хранится
	StatusWhole  OrderStatus = "whole"
	StatusReady  OrderStatus = "ready"
	StatusDone   OrderStatus = "done"
	StatusCancel OrderStatus = "cancel"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusReady, StatusDone, StatusCancel:
		return true
	}
	return false
}

// ValidFilter сообщает, можно ли использовать статус в фильтре истории заказов.
func (s OrderStatus) ValidFilter() bool {
	return s == StatusWhole || s == StatusDone || s == StatusCancel
}

type Address struct {
	City         string `json:"city"`
	District     string `json:"district"`
	Neighborhood string `json:"neighborhood"`
	Extra        string `json:"extra"`
}

type Order struct {
	ID         int64
	Code       string
	UserID     int64
	TotalPrice int64
	Address    Address
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Lines []OrderLine
}

// OrderLine - позиция заказа. Code выдается при создании и однозначно
// идентифицирует строку корзины, даже если товар и количество совпадают.
type OrderLine struct {
	ID        int64
	Code      string
	OrderID   int64
	ItemID    int64
	ItemCode  string
	ItemName  string
	Price     int64
	Quantity  int
	Size      string
	CreatedAt time.Time
}

func (l OrderLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// CartLineRef возвращается клиенту после добавления товара в корзину.
type CartLineRef struct {
	OrderCode string
	LineCode  string
	ItemCode  string
	Quantity  int
}

type OrderEventType string

const (
	EventOrderCompleted OrderEventType = "order.completed"
	EventOrderCancelled OrderEventType = "order.cancelled"
)

type OrderEvent struct {
	Type       OrderEventType
	OrderCode  string
	UserID     int64
	TotalPrice int64
	Lines      []OrderLine
	OccurredAt time.Time
}
