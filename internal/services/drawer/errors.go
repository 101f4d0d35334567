package drawer

import "errors"

// Service errors
var (
	ErrDrawerNotFound      = errors.New("cash drawer not found")
	ErrDrawerAlreadyOpen   = errors.New("cash drawer already open")
	ErrDrawerAlreadyClosed = errors.New("cash drawer already closed")
	ErrNotDrawerOwner      = errors.New("not the drawer owner")
	ErrPermissionDenied    = errors.New("seller access required")
)
