package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the stable, machine-checkable error category surfaced to clients.
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindValidationFailed  Kind = "VALIDATION_FAILED"
	KindConflict          Kind = "CONFLICT"
	KindInsufficientStock Kind = "INSUFFICIENT_STOCK"
	KindForbidden         Kind = "FORBIDDEN"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindUnauthorized      Kind = "UNAUTHORIZED"
	KindInternal          Kind = "INTERNAL_ERROR"
)

// Error is the workflow-level error every domain service returns.
// Details carries actionable context (field names, entity ids, available
// quantity) and is safe to surface to clients; Err is the internal cause
// and never leaves the process.
type Error struct {
	Kind    Kind
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Details: map[string]string{"id": id},
	}
}

// ValidationFailed wraps an ozzo-validation error; validation.Errors
// marshals as a field -> message map, which is exactly the per-field
// detail shape clients get.
func ValidationFailed(err error) *Error {
	return &Error{
		Kind:    KindValidationFailed,
		Message: "Validation failed",
		Details: err,
		Err:     err,
	}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func InvalidTransition(message string) *Error {
	return &Error{Kind: KindInvalidTransition, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

func InsufficientStock(productID, productName string, requested, available int) *Error {
	return &Error{
		Kind:    KindInsufficientStock,
		Message: fmt.Sprintf("Not enough stock for %s. Available: %d", productName, available),
		Details: map[string]interface{}{
			"productId": productID,
			"requested": requested,
			"available": available,
		},
	}
}

// KindOf extracts the Kind from any error chain; unknown errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps a Kind to its HTTP status class.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidationFailed, KindInsufficientStock, KindInvalidTransition:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
