package errs

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

func newHTTPError(status int, message string, override bool, code *string) *HTTPError {
	e := &HTTPError{
		Code:     StatusCode(status),
		Message:  message,
		Status:   status,
		Override: override,
	}
	if code != nil {
		e.Code = *code
	}
	return e
}

// NewBadRequestError creates a 400. code defaults to "BAD_REQUEST"; fields
// carries per-field validation messages.
func NewBadRequestError(message string, override bool, code *string, fields FieldErrors) *HTTPError {
	e := newHTTPError(http.StatusBadRequest, message, override, code)
	e.Errors = fields
	return e
}

func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, override, code)
}

// NewTooManyRequestsError creates a 429 telling the client how many whole
// seconds to wait before retrying.
func NewTooManyRequestsError(message string, retryAfter time.Duration) *HTTPError {
	e := newHTTPError(http.StatusTooManyRequests, message, true, nil)
	e.Action = &Action{
		Type:    ActionTypeRetry,
		Message: "Retry the request later",
		Value:   strconv.Itoa(RetryAfterSeconds(retryAfter)),
	}
	return e
}

// RetryAfterSeconds rounds d up to whole seconds, with a minimum of one.
func RetryAfterSeconds(d time.Duration) int {
	return int(math.Max(1, math.Ceil(d.Seconds())))
}

// NewInternalServerError creates a 500 whose message is always the generic
// status text; the cause is only logged.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false, nil)
}

func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil)
}
