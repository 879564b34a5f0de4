package member

import "errors"

// Roster domain errors
var (
	ErrEmptyName      = errors.New("member name must not be empty")
	ErrDuplicateName  = errors.New("a member with this name already exists")
	ErrMemberNotFound = errors.New("member not found")
)
