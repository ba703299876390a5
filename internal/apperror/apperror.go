package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the transport layer can map it to a status
// code without inspecting message text.
type Kind int

const (
	KindConflict Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
	KindConfiguration
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

type AppError struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, never shown to clients in production
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func Conflict(message string) *AppError      { return New(KindConflict, message) }
func Unauthorized(message string) *AppError  { return New(KindUnauthorized, message) }
func Forbidden(message string) *AppError     { return New(KindForbidden, message) }
func NotFound(message string) *AppError      { return New(KindNotFound, message) }
func Validation(message string) *AppError    { return New(KindValidation, message) }
func Configuration(message string) *AppError { return New(KindConfiguration, message) }

// Persistence wraps a store failure; the message stays generic so internal
// detail never leaks to the caller.
func Persistence(err error) *AppError {
	return Wrap(KindPersistence, "database error", err)
}

// KindOf extracts the kind from err, or 0 when err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// Is lets errors.Is match two AppErrors by kind and message.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && (t.Message == "" || e.Message == t.Message)
}
