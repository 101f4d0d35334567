package sale

import "errors"

// Service errors
var (
	ErrSaleNotFound     = errors.New("sale not found")
	ErrAlreadyCancelled = errors.New("sale already cancelled")
	ErrPermissionDenied = errors.New("seller access required")
	ErrInvalidSale      = errors.New("invalid sale data")
)
