package services

import "errors"

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart or product not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrProductNotFound  = errors.New("product does not exist")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidSize      = errors.New("invalid size")
	ErrOrderNotFound    = errors.New("order not found")
)
