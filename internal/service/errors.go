package service

import "errors"

// Domain errors. Handlers translate these into HTTP statuses in one place;
// anything else surfaces as a generic 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("user account is inactive")
	ErrForbidden          = errors.New("not enough permissions")
	ErrDefaultRoleMissing = errors.New("default role not found")
)
