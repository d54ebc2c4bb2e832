package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordlestrat/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeMalformedWord     = "MALFORMED_WORD"
	CodeWordListNotLoaded = "WORD_LIST_NOT_LOADED"
	CodeRunNotFound       = "RUN_NOT_FOUND"
	CodeNotFound          = "NOT_FOUND"
	CodeRequestCancelled  = "REQUEST_CANCELLED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Validation errors carry useful detail, so their message is passed through
	switch {
	case errors.Is(err, model.ErrRunNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRunNotFound, "Run not found"}}
	case errors.Is(err, model.ErrMalformedWord):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedWord, err.Error()}}
	case errors.Is(err, model.ErrInvalidInput):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidInput, err.Error()}}
	case errors.Is(err, model.ErrWordListNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeWordListNotLoaded, "Word list is not loaded"}}
	case errors.Is(err, context.Canceled):
		return &httpError{499, APIError{CodeRequestCancelled, "Request cancelled"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates an error for unknown routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
