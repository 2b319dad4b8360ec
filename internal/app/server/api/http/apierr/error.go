// Package apierr модель ошибок API: тело {"error": "..."} и статус.
package apierr

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const (
	MsgMissingFields = "Missing required fields."
	MsgForbidden     = "Missing required token in header, or token is invalid."
)

// Error реализует huma.StatusError.
type Error struct {
	status  int
	Message string `json:"error,omitempty" doc:"Human readable error message"`
}

func New(status int, msg string) *Error {
	return &Error{status: status, Message: msg}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

func BadRequest(msg string) *Error {
	return New(http.StatusBadRequest, msg)
}

func NotFound(msg string) *Error {
	return New(http.StatusNotFound, msg)
}

func Forbidden() *Error {
	return New(http.StatusForbidden, MsgForbidden)
}

func Internal(msg string) *Error {
	return New(http.StatusInternalServerError, msg)
}

// Install подменяет фабрику ошибок huma. Ошибки разбора и схемы тела
// (400, 415 и 422) превращаются в 400 с общим сообщением без имен полей.
func Install() {
	huma.NewError = func(status int, msg string, _ ...error) huma.StatusError {
		switch status {
		case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusUnprocessableEntity:
			return BadRequest(MsgMissingFields)
		}
		return New(status, msg)
	}
}
