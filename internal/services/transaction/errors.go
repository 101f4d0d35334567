package transaction

import "errors"

// Service errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyReviewed     = errors.New("transaction already reviewed")
	ErrInvalidType         = errors.New("invalid transaction type")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidStatus       = errors.New("invalid review status")
	ErrAdminRequired       = errors.New("admin access required")
)
