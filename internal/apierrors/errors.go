// Package apierrors defines the error taxonomy shared with the HTTP layer.
// Each kind carries a default status code; callers may override it per error.
package apierrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInvalidParameter Kind = iota
	KindNotFoundResource
	KindInternalServer
	KindUnauthenticated
	KindForbidden
	KindConflictResource
)

// APIError is a domain failure with HTTP semantics attached.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

func newAPIError(kind Kind, defaultStatus int, message string, statusCode ...int) *APIError {
	status := defaultStatus
	if len(statusCode) > 0 {
		status = statusCode[0]
	}
	return &APIError{Kind: kind, StatusCode: status, Message: message}
}

func NewInvalidParameter(message string, statusCode ...int) *APIError {
	return newAPIError(KindInvalidParameter, http.StatusBadRequest, message, statusCode...)
}

func NewNotFoundResource(message string, statusCode ...int) *APIError {
	return newAPIError(KindNotFoundResource, http.StatusNotFound, message, statusCode...)
}

func NewInternalServer(message string, statusCode ...int) *APIError {
	return newAPIError(KindInternalServer, http.StatusInternalServerError, message, statusCode...)
}

func NewUnauthenticated(message string, statusCode ...int) *APIError {
	return newAPIError(KindUnauthenticated, http.StatusUnauthorized, message, statusCode...)
}

func NewForbidden(message string, statusCode ...int) *APIError {
	return newAPIError(KindForbidden, http.StatusForbidden, message, statusCode...)
}

func NewConflictResource(message string, statusCode ...int) *APIError {
	return newAPIError(KindConflictResource, http.StatusConflict, message, statusCode...)
}

// AsAPIError unwraps err into an *APIError when it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
