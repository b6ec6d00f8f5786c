package user

import "errors"

var (
	ErrOwnerAccessRequired  = errors.New("owner role required")
	ErrWorkerAccessRequired = errors.New("worker role required")
	ErrInvalidToken         = errors.New("invalid or missing token")
)
