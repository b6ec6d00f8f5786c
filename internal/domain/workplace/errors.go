package workplace

import "errors"

var (
	ErrWorkplaceNotFound = errors.New("workplace not found")
	ErrNotWorkplaceOwner = errors.New("not the owner of this workplace")
	ErrAlreadyMember     = errors.New("already a member of this workplace")
	ErrNotMember         = errors.New("not a member of this workplace")
)
