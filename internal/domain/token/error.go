package token

import "errors"

var (
	ErrNotFound           = errors.New("token not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExpired            = errors.New("token expired")
	ErrInvalidToken       = errors.New("token is missing, unknown or expired")
)
