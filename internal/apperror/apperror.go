// Package apperror defines the typed error taxonomy shared by all services
// and the API envelope returned to clients. Handlers map each Kind to an
// HTTP status; internal details (SQL errors, stack traces) never reach the
// client.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a business failure. The set is closed: services only
// ever return one of these kinds or wrap a storage failure as KindStorage.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindNotActive
	KindBlocked
	KindUnassigned
	KindInsufficientPoints
	KindDailyLimitExceeded
	KindConflict
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindNotActive:
		return "not_active"
	case KindBlocked:
		return "blocked"
	case KindUnassigned:
		return "unassigned"
	case KindInsufficientPoints:
		return "insufficient_points"
	case KindDailyLimitExceeded:
		return "daily_limit_exceeded"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage_error"
	}
	return "unknown"
}

// Error carries a Kind plus a human-readable message. An optional wrapped
// cause is kept for logging but is not serialized to clients.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Is lets errors.Is match two apperror values by Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func NotFound(msg string) *Error           { return New(KindNotFound, msg) }
func NotActive(msg string) *Error          { return New(KindNotActive, msg) }
func Blocked(msg string) *Error            { return New(KindBlocked, msg) }
func Unassigned(msg string) *Error         { return New(KindUnassigned, msg) }
func InsufficientPoints(msg string) *Error { return New(KindInsufficientPoints, msg) }
func DailyLimitExceeded(msg string) *Error { return New(KindDailyLimitExceeded, msg) }
func Conflict(msg string) *Error           { return New(KindConflict, msg) }

// Storage wraps a storage-layer failure. Callers are expected to retry
// with fresh state; the core never loops internally.
func Storage(op string, cause error) *Error {
	return &Error{
		Kind:    KindStorage,
		Message: fmt.Sprintf("storage error during %s", op),
		cause:   cause,
	}
}

// KindOf extracts the Kind from err, or 0 when err is not an apperror.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func Envelope(msg string) *APIError { return &APIError{Detail: msg} }

// EnvelopeFor builds the wire envelope for a service error, including the
// machine-readable kind code when err is typed.
func EnvelopeFor(err error) *APIError {
	var e *Error
	if errors.As(err, &e) {
		return &APIError{Detail: e.Message, Code: e.Kind.String()}
	}
	return &APIError{Detail: err.Error()}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation error", Fields: fields}
}
