package port

import "errors"

// Sentinel errors shared by use cases and adapters. The HTTP adapter maps
// each of them to a status code; anything else becomes a 500.
var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrDependency         = errors.New("dependency failure")
	ErrAdvisorDisabled    = errors.New("advisor disabled")
)
