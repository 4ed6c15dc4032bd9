package models

import "errors"

// Domain outcomes returned by the cart, order and inventory operations.
// Handlers map them to HTTP statuses with errors.Is; anything else is a 500.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartItemNotFound  = errors.New("product not found in cart")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")

	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrProductUnavailable = errors.New("product is not available for sale")
	ErrInsufficientStock  = errors.New("not enough stock available")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrProductReferenced  = errors.New("product is referenced by a cart or an order and cannot be deleted")
)
