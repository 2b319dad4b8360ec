package user

import (
	"uptime/internal/domain/validate"
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateCreate(req CreateRequest) (CreateParams, error)
	ValidateUpdate(req UpdateRequest) (UpdateParams, error)
	ValidatePhone(phone string) (string, error)
}

type RequestValidator struct{}

// NewValidator создает новый валидатор
func NewValidator() *RequestValidator {
	return &RequestValidator{}
}

// ValidateCreate валидирует данные для регистрации
func (v *RequestValidator) ValidateCreate(req CreateRequest) (CreateParams, error) {
	firstName, okFirst := validate.String(req.FirstName)
	lastName, okLast := validate.String(req.LastName)
	phone, okPhone := validate.Exact(req.Phone, PhoneLength)
	password, okPassword := validate.String(req.Password)

	if !okFirst || !okLast || !okPhone || !okPassword || !validate.True(req.TOSAgreement) {
		return CreateParams{}, ErrInvalidInput
	}

	return CreateParams{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Password:  password,
	}, nil
}

// ValidateUpdate валидирует данные для обновления
func (v *RequestValidator) ValidateUpdate(req UpdateRequest) (UpdateParams, error) {
	phone, ok := validate.Exact(req.Phone, PhoneLength)
	if !ok {
		return UpdateParams{}, ErrInvalidInput
	}

	firstName, _ := validate.String(req.FirstName)
	lastName, _ := validate.String(req.LastName)
	password, _ := validate.String(req.Password)

	if firstName == "" && lastName == "" && password == "" {
		return UpdateParams{}, ErrMissingUpdateFields
	}

	return UpdateParams{
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
	}, nil
}

// ValidatePhone валидирует телефон из query
func (v *RequestValidator) ValidatePhone(phone string) (string, error) {
	p, ok := validate.ExactValue(phone, PhoneLength)
	if !ok {
		return "", ErrInvalidInput
	}
	return p, nil
}
