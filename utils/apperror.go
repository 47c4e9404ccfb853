package utils

import (
	"errors"
	"fmt"
	"net/http"

	"pillowstat/models"
)

type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindInvalidState ErrorKind = "invalid_state"
	KindInternal     ErrorKind = "internal"
)

// AppError is the typed failure returned by every service. Conflicts and BlockedDates
// are only set for KindConflict.
type AppError struct {
	Kind         ErrorKind
	Message      string
	Field        string
	Conflicts    []models.ConflictingBooking
	BlockedDates []models.Date
	Err          error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewInvalidInput(field, message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Field: field, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflict(message string, conflicts []models.ConflictingBooking, blocked []models.Date) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Conflicts: conflicts, BlockedDates: blocked}
}

func NewInvalidState(message string) *AppError {
	return &AppError{Kind: KindInvalidState, Message: message}
}

func NewInternal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf classifies err; anything that is not an *AppError is internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func HTTPStatus(kind ErrorKind) int {
	switch kind {
	case KindInvalidInput, KindInvalidState:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
