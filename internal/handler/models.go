package handler

import (
	"time"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
)

type Address struct {
	City         string `json:"city" validate:"required,max=50"`
	District     string `json:"district" validate:"required,max=50"`
	Neighborhood string `json:"neighborhood" validate:"max=50"`
	Extra        string `json:"extra" validate:"max=200"`
}

type AddToCartRequest struct {
	ItemCode string `json:"item_code" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gte=1,lte=1000"`
	Size     string `json:"size" validate:"max=20"`
}

// RemoveCartLineRequest - строка задается кодом либо парой товар+количество.
type RemoveCartLineRequest struct {
	OrderCode string `json:"order_code" validate:"omitempty,uuid"`
	LineCode  string `json:"line_code" validate:"omitempty,uuid"`
	ItemCode  string `json:"item_code" validate:"required_without=LineCode"`
	Quantity  int    `json:"quantity" validate:"required_without=LineCode,gte=0"`
}

type CheckoutRequest struct {
	Address Address `json:"address" validate:"required"`
}

type CreateItemRequest struct {
	Name          string            `json:"name" validate:"required,max=100"`
	Description   string            `json:"description" validate:"max=2000"`
	Category      string            `json:"category" validate:"required,oneof=top outer pants shoes"`
	SubCategory   string            `json:"sub_category" validate:"required,max=20"`
	Gender        string            `json:"gender" validate:"required,oneof=man woman unisex"`
	Size          string            `json:"size" validate:"max=20"`
	Price         int64             `json:"price" validate:"gte=0"`
	StockQuantity int               `json:"stock_quantity" validate:"gte=0"`
	Attributes    map[string]string `json:"attributes"`
}

type UpdateItemRequest struct {
	Name          *string           `json:"name" validate:"omitempty,min=1,max=100"`
	Description   *string           `json:"description" validate:"omitempty,max=2000"`
	Size          *string           `json:"size" validate:"omitempty,max=20"`
	Price         *int64            `json:"price" validate:"omitempty,gte=0"`
	StockQuantity *int              `json:"stock_quantity" validate:"omitempty,gte=0"`
	Attributes    map[string]string `json:"attributes"`
}

type SearchItemsRequest struct {
	Category string `json:"category" validate:"omitempty,oneof=top outer pants shoes"`
	Keyword  string `json:"keyword" validate:"max=100"`
	Gender   string `json:"gender" validate:"omitempty,oneof=man woman unisex"`
	MinPrice int64  `json:"min_price" validate:"gte=0"`
	MaxPrice int64  `json:"max_price" validate:"gte=0"`
	Size     string `json:"size" validate:"max=20"`
	PageNo   int    `json:"page_no" validate:"gte=0"`
	PageSize int    `json:"page_size" validate:"gte=0,lte=100"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ReissueRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type Item struct {
	Code          string            `json:"code"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	SubCategory   string            `json:"sub_category"`
	Gender        string            `json:"gender"`
	Size          string            `json:"size"`
	Price         int64             `json:"price"`
	StockQuantity int               `json:"stock_quantity"`
	SalesCount    int               `json:"sales_count"`
	Attributes    map[string]string `json:"attributes,omitempty"`
}

type OrderLine struct {
	Code     string `json:"code"`
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
	Subtotal int64  `json:"subtotal"`
}

type Order struct {
	Code       string      `json:"code"`
	Status     string      `json:"status"`
	TotalPrice int64       `json:"total_price"`
	Address    *Address    `json:"address,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	Lines      []OrderLine `json:"lines,omitempty"`
}

type CartLine struct {
	OrderCode string `json:"order_code"`
	LineCode  string `json:"line_code"`
	ItemCode  string `json:"item_code"`
	Quantity  int    `json:"quantity"`
}

type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	PageNo     int `json:"page_no"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type RestockMessage struct {
	ItemCode string `json:"item_code" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

func ItemEntityToJSON(i entities.Item) Item {
	return Item{
		Code:          i.Code,
		Name:          i.Name,
		Description:   i.Description,
		Category:      string(i.Category),
		SubCategory:   i.SubCategory,
		Gender:        string(i.Gender),
		Size:          i.Size,
		Price:         i.Price,
		StockQuantity: i.StockQuantity,
		SalesCount:    i.SalesCount,
		Attributes:    i.Attributes,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	order := Order{
		Code:       o.Code,
		Status:     string(o.Status),
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}
	if o.Address != (entities.Address{}) {
		order.Address = &Address{
			City:         o.Address.City,
			District:     o.Address.District,
			Neighborhood: o.Address.Neighborhood,
			Extra:        o.Address.Extra,
		}
	}
	for _, l := range o.Lines {
		order.Lines = append(order.Lines, OrderLine{
			Code:     l.Code,
			ItemCode: l.ItemCode,
			ItemName: l.ItemName,
			Price:    l.Price,
			Quantity: l.Quantity,
			Size:     l.Size,
			Subtotal: l.Subtotal(),
		})
	}
	return order
}

func PageToJSON[E, T any](p entities.Page[E], conv func(E) T) Page[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, conv(it))
	}
	return Page[T]{
		Items:      items,
		Total:      p.Total,
		PageNo:     p.PageNo,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(),
	}
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		City:         a.City,
		District:     a.District,
		Neighborhood: a.Neighborhood,
		Extra:        a.Extra,
	}
}

func CreateItemJSONToCmd(r CreateItemRequest) entities.CreateItemCmd {
	return entities.CreateItemCmd{
		Name:          r.Name,
		Description:   r.Description,
		Category:      entities.Category(r.Category),
		SubCategory:   r.SubCategory,
		Gender:        entities.Gender(r.Gender),
		Size:          r.Size,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		Attributes:    r.Attributes,
	}
}

func UpdateItemJSONToCmd(r UpdateItemRequest) entities.UpdateItemCmd {
	return entities.UpdateItemCmd{
		Name:          r.Name,
		Description:   r.Description,
		Size:          r.Size,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		Attributes:    r.Attributes,
	}
}

func SearchJSONToFilter(r SearchItemsRequest) (entities.ItemFilter, entities.PageRequest) {
	return entities.ItemFilter{
			Category: entities.Category(r.Category),
			Keyword:  r.Keyword,
			Gender:   entities.Gender(r.Gender),
			MinPrice: r.MinPrice,
			MaxPrice: r.MaxPrice,
			Size:     r.Size,
		}, entities.PageRequest{
			PageNo:   r.PageNo,
			PageSize: r.PageSize,
		}
}
