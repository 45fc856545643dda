package contract

import "errors"

// Sentinel errors returned by repository implementations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
	ErrNoteNotFound = errors.New("note not found")
)
