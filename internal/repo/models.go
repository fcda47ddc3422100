package repo

import (
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
)

type Item struct {
	ID            int64     `db:"id"`
	Code          string    `db:"code"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	Category      string    `db:"category"`
	SubCategory   string    `db:"sub_category"`
	Gender        string    `db:"gender"`
	Size          string    `db:"size"`
	Price         int64     `db:"price"`
	StockQuantity int       `db:"stock_quantity"`
	SalesCount    int       `db:"sales_count"`
	Attributes    []byte    `db:"attributes"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Order struct {
	ID         int64     `db:"id"`
	Code       string    `db:"code"`
	UserID     int64     `db:"user_id"`
	TotalPrice int64     `db:"total_price"`
	Address    []byte    `db:"address"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type OrderLine struct {
	ID        int64     `db:"id"`
	Code      string    `db:"code"`
	OrderID   int64     `db:"order_id"`
	ItemID    int64     `db:"item_id"`
	ItemCode  string    `db:"item_code"`
	ItemName  string    `db:"item_name"`
	Price     int64     `db:"price"`
	Quantity  int       `db:"quantity"`
	Size      string    `db:"size"`
	CreatedAt time.Time `db:"created_at"`
}

type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

var itemColumns = []string{
	"id", "code", "name", "description", "category", "sub_category", "gender",
	"size", "price", "stock_quantity", "sales_count", "attributes", "created_at", "updated_at",
}

var orderColumns = []string{
	"id", "code", "user_id", "total_price", "address", "status", "created_at", "updated_at",
}

var orderLineColumns = []string{
	"ol.id", "ol.code", "ol.order_id", "ol.item_id", "i.code AS item_code", "i.name AS item_name",
	"ol.price", "ol.quantity", "ol.size", "ol.created_at",
}

var userColumns = []string{
	"id", "email", "password_hash", "name", "role", "created_at",
}

func ItemToEntity(i Item) entities.Item {
	item := entities.Item{
		ID:            i.ID,
		Code:          i.Code,
		Name:          i.Name,
		Description:   i.Description,
		Category:      entities.Category(i.Category),
		SubCategory:   i.SubCategory,
		Gender:        entities.Gender(i.Gender),
		Size:          i.Size,
		Price:         i.Price,
		StockQuantity: i.StockQuantity,
		SalesCount:    i.SalesCount,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
	// битые атрибуты не должны ломать чтение каталога
	_ = json.Unmarshal(i.Attributes, &item.Attributes)
	return item
}

func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	order := entities.Order{
		ID:         o.ID,
		Code:       o.Code,
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
		Status:     entities.OrderStatus(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	_ = json.Unmarshal(o.Address, &order.Address)

	if len(lines) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(lines))
		for _, l := range lines {
			order.Lines = append(order.Lines, OrderLineToEntity(l))
		}
	}
	return order
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		ID:        l.ID,
		Code:      l.Code,
		OrderID:   l.OrderID,
		ItemID:    l.ItemID,
		ItemCode:  l.ItemCode,
		ItemName:  l.ItemName,
		Price:     l.Price,
		Quantity:  l.Quantity,
		Size:      l.Size,
		CreatedAt: l.CreatedAt,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         entities.Role(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func jsonString(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
