package domain

import "errors"

var (
	ErrInvalidQuantity  = errors.New("quantity out of range")
	ErrOwnerIDEmpty     = errors.New("ownerID is empty")
	ErrProductNotFound  = errors.New("product not found")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrEmptyCart        = errors.New("cart is empty")
)
