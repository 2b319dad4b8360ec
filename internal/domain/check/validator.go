package check

import (
	"math"

	"uptime/internal/domain/validate"
)

type Validator interface {
	ValidateCreate(req CreateRequest) (CreateParams, error)
	ValidateUpdate(req UpdateRequest) (UpdateParams, error)
	ValidateID(id string) (string, error)
}

type RequestValidator struct{}

func NewValidator() *RequestValidator {
	return &RequestValidator{}
}

func (v *RequestValidator) ValidateCreate(req CreateRequest) (CreateParams, error) {
	protocol, okProtocol := validate.OneOf(req.Protocol, Protocols()...)
	url, okURL := validate.String(req.URL)
	method, okMethod := validate.OneOf(req.Method, Methods()...)
	timeout, okTimeout := timeoutSeconds(req.TimeoutSeconds)

	if !okProtocol || !okURL || !okMethod || !okTimeout || len(req.SuccessCodes) == 0 {
		return CreateParams{}, ErrInvalidInput
	}

	return CreateParams{
		Protocol:       Protocol(protocol),
		URL:            url,
		Method:         Method(method),
		SuccessCodes:   req.SuccessCodes,
		TimeoutSeconds: timeout,
	}, nil
}

// ValidateUpdate отбрасывает невалидные опциональные поля, как будто их не передали.
func (v *RequestValidator) ValidateUpdate(req UpdateRequest) (UpdateParams, error) {
	id, ok := validate.Exact(req.ID, IDLength)
	if !ok {
		return UpdateParams{}, ErrInvalidInput
	}

	params := UpdateParams{ID: id}
	updated := false

	if p, ok := validate.OneOf(req.Protocol, Protocols()...); ok {
		protocol := Protocol(p)
		params.Protocol = &protocol
		updated = true
	}
	if u, ok := validate.String(req.URL); ok {
		params.URL = &u
		updated = true
	}
	if m, ok := validate.OneOf(req.Method, Methods()...); ok {
		method := Method(m)
		params.Method = &method
		updated = true
	}
	if len(req.SuccessCodes) > 0 {
		params.SuccessCodes = req.SuccessCodes
		updated = true
	}
	if t, ok := timeoutSeconds(req.TimeoutSeconds); ok {
		params.TimeoutSeconds = &t
		updated = true
	}

	if !updated {
		return UpdateParams{}, ErrMissingUpdateFields
	}

	return params, nil
}

func (v *RequestValidator) ValidateID(id string) (string, error) {
	checkID, ok := validate.ExactValue(id, IDLength)
	if !ok {
		return "", ErrInvalidInput
	}
	return checkID, nil
}

func timeoutSeconds(p *float64) (int, bool) {
	if p == nil {
		return 0, false
	}

	t := *p
	if t != math.Trunc(t) || t < MinTimeoutSeconds || t > MaxTimeoutSeconds {
		return 0, false
	}

	return int(t), true
}
