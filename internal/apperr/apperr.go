// Package apperr defines the error taxonomy shared by every service:
// Unauthorized, Forbidden, NotFound, Validation and Internal. Handlers
// translate the kind into an HTTP status; validation errors carry a
// field → reason map that is returned to the caller as-is.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
)

type Error struct {
	Kind    Kind
	Message string
	// Fields maps offending field names to reasons. Set only for
	// KindValidation.
	Fields map[string]string
	// Err is the wrapped cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Kind == KindValidation && len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}
		return e.Message + " (" + strings.Join(parts, "; ") + ")"
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Unauthorized means no valid caller identity was supplied for an
// operation that requires one.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Forbidden means the caller is authenticated but not permitted.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// NotFound means the referenced entity does not exist (or is outside the
// caller's visible set).
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// Validation wraps a field → reason map produced by payload checks.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// ValidationField is shorthand for a single-field validation error.
func ValidationField(field, reason string) *Error {
	return Validation(map[string]string{field: reason})
}

// Internal wraps a persistence or other unexpected failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

func Internalf(format string, args ...interface{}) *Error {
	return Internal(fmt.Errorf(format, args...))
}

// KindOf extracts the kind from err, defaulting to KindInternal for
// errors outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf returns the validation field map carried by err, or nil.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// HTTPStatus maps an error kind to its response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
