package entities

type AddToCartCmd struct {
	ItemCode string
	Quantity int
	Size     string
}

// RemoveLineCmd адресует строку корзины. Если LineCode задан, строка ищется
// по нему, иначе удаляется первая строка с тем же товаром и количеством.
// Пустой OrderCode означает текущую корзину пользователя.
type RemoveLineCmd struct {
	OrderCode string
	LineCode  string
	ItemCode  string
	Quantity  int
}

type CreateItemCmd struct {
	Name          string
	Description   string
	Category      Category
	SubCategory   string
	Gender        Gender
	Size          string
	Price         int64
	StockQuantity int
	Attributes    map[string]string
}

// UpdateItemCmd - частичное обновление товара, nil поля не меняются.
type UpdateItemCmd struct {
	Name          *string
	Description   *string
	Size          *string
	Price         *int64
	StockQuantity *int
	Attributes    map[string]string
}

type RegisterCmd struct {
	Email    string
	Password string
	Name     string
}
