package user

import "errors"

var (
	ErrNotFound            = errors.New("user not found")
	ErrAlreadyExists       = errors.New("user already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrMissingUpdateFields = errors.New("missing fields to update")
	ErrHashPassword        = errors.New("could not hash password")
)
