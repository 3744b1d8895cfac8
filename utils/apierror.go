package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindStore
)

// APIError carries the failure taxonomy every endpoint uses: validation,
// not-found, or store failure. Handlers convert errors to a response exactly
// once, at the boundary, via Fail.
type APIError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func Validation(message string) *APIError {
	return &APIError{Kind: KindValidation, Message: message}
}

func ValidationFields(message string, fields map[string]string) *APIError {
	return &APIError{Kind: KindValidation, Message: message, Fields: fields}
}

func NotFound(message string) *APIError {
	return &APIError{Kind: KindNotFound, Message: message}
}

func Store(err error, message string) *APIError {
	return &APIError{Kind: KindStore, Message: message, Err: err}
}

// WrapLookup maps a single-record query error to the taxonomy: record-not-found
// becomes a 404-class error, anything else a store failure.
func WrapLookup(err error, notFoundMsg, storeMsg string) *APIError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFoundMsg)
	}
	return Store(err, storeMsg)
}

// Fail writes the error envelope for any error. Untyped errors are treated as
// store failures so an unexpected error never leaks internals or crashes the
// request.
func Fail(c *gin.Context, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = Store(err, "An unexpected error occurred")
	}

	body := gin.H{"success": false, "message": apiErr.Message}
	if len(apiErr.Fields) > 0 {
		body["errors"] = apiErr.Fields
	}

	switch apiErr.Kind {
	case KindValidation:
		c.JSON(http.StatusBadRequest, body)
	case KindNotFound:
		c.JSON(http.StatusNotFound, body)
	default:
		if apiErr.Err != nil {
			Log.Errorf("%s: %v", apiErr.Message, apiErr.Err)
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}
