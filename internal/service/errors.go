package service

import "errors"

var (
	// ErrInvalidCredentials is the only error a failed login reports. An
	// unknown username, a wrong password and a deactivated account all map to
	// it, so the response does not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInactiveAccount is wrapped when a deactivated user logs in or presents
	// a still-valid token.
	ErrInactiveAccount = errors.New("account is inactive")

	ErrDuplicateUsername = errors.New("username already exists")

	// ErrUserNotFound is returned by the identity resolver when the token is
	// valid but its user no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is returned when the caller's role does not allow the
	// operation.
	ErrForbidden = errors.New("operation not permitted for this role")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
