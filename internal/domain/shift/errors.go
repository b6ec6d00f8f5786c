package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrNotShiftOwner = errors.New("not the owner of this shift")
)
