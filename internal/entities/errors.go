package entities

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrItemAlreadyExists = errors.New("item with this name already exists")
	ErrInvalidCategory   = errors.New("invalid item category")
	ErrInvalidQuantity   = errors.New("quantity must be positive")

	ErrOrderNotFound         = errors.New("order not found")
	ErrCartEmpty             = errors.New("cart is empty")
	ErrCartLineNotFound      = errors.New("cart line not found")
	ErrOrderAlreadyCancelled = errors.New("order already cancelled")
	ErrOrderStatusConflict   = errors.New("order is not in the expected status")
	ErrInsufficientStock     = errors.New("insufficient stock")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")

	// Транзакция упала на сериализации или дедлоке, можно повторить
	ErrConcurrentUpdate = errors.New("concurrent update")
)

// InsufficientStockError описывает позицию, на которую не хватило остатка.
type InsufficientStockError struct {
	ItemCode  string
	Name      string
	Stock     int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: item %q (%s), stock %d, requested %d",
		e.Name, e.ItemCode, e.Stock, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
