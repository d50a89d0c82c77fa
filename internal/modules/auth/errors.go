package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrHostBlocked        = errors.New("host account blocked")
	ErrUnauthorized       = errors.New("unauthorized")
)
