package usecase

import (
	"fmt"

	"adsight/internal/core/port"
	"adsight/internal/validation"
)

// dependency marks err as a store failure so the transport reports a 5xx.
func dependency(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, port.ErrDependency, err)
}

// invalid wraps a validation failure so callers can match both
// port.ErrValidation and *validation.RequestValidationError.
func invalid(verr *validation.RequestValidationError) error {
	return fmt.Errorf("%w: %w", port.ErrValidation, verr)
}
