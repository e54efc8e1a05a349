package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrMissingToken       = errors.New("access denied, no token provided")
	ErrInvalidToken       = errors.New("invalid token")
	ErrJobNotFound        = errors.New("job not found")
	ErrCompanyRequired    = errors.New("company is required")
	ErrRoleRequired       = errors.New("role is required")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidDate        = errors.New("invalid date_applied, expected YYYY-MM-DD")
)

// IsValidationError reports whether err is a caller input error rather than a
// storage or auth failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrCompanyRequired) ||
		errors.Is(err, ErrRoleRequired) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidDate)
}
