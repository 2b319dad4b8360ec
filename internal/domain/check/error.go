package check

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("check not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrMissingUpdateFields = errors.New("missing fields to update")
	ErrForbidden           = errors.New("missing or invalid token")
	ErrQuotaExceeded       = errors.New("maximum number of checks reached")
	ErrOwnerNotFound       = errors.New("check owner not found")
	ErrOwnerUpdate         = errors.New("could not update check owner")
)

// QuotaError возвращается, когда у пользователя уже максимум проверок.
type QuotaError struct {
	Max int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("the user already has the maximum number of checks (%d)", e.Max)
}

func (e *QuotaError) Is(target error) bool {
	return target == ErrQuotaExceeded
}
