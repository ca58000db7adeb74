package errs

import (
	"net/http"
	"strings"
)

type ActionType string

const (
	// ActionTypeRetry asks the client to retry after Value seconds.
	ActionTypeRetry ActionType = "retry"
)

// Action is an optional instruction telling the client what to do next.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error every handler, service and middleware hands to the
// global error handler, and the JSON body clients receive.
//
// Override marks Message as safe to show to end users verbatim.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors keyed by JSON field name.
	Errors FieldErrors `json:"errors"`

	Action *Action `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode is the default machine code for an HTTP status:
// 404 -> "NOT_FOUND".
func StatusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
