package wage

import "errors"

var (
	ErrProfileNotFound      = errors.New("wage profile not found")
	ErrProfileAlreadyExists = errors.New("wage profile already registered for this workplace")
)
