package client

import "errors"

var (
	ErrNoCommand          = errors.New("no command given")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrMissingToken       = errors.New("access token is required")
	ErrInvalidFlags       = errors.New("invalid flags")
	ErrNilAdapter         = errors.New("server adapter is nil")
)
