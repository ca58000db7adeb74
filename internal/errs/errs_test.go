package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	assert.True(t, fe.Empty())

	fe.Add("email", "is required")
	fe.Add("email", "must be a valid email address")
	fe.Add("username", "is required")

	assert.False(t, fe.Empty())
	assert.Equal(t, []string{"email", "username"}, fe.Fields())
	assert.Equal(t, []string{"is required", "must be a valid email address"}, fe["email"])
}

func TestConstructors(t *testing.T) {
	notFound := NewNotFoundError("User not found", true, nil)
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, "NOT_FOUND", notFound.Code)
	assert.Equal(t, "User not found", notFound.Error())
	assert.Nil(t, notFound.Action)

	code := "USER_ALREADY_EXISTS"
	badRequest := NewBadRequestError("exists", false, &code, FieldErrors{"email": {"taken"}})
	assert.Equal(t, http.StatusBadRequest, badRequest.Status)
	assert.Equal(t, code, badRequest.Code)
	assert.Equal(t, []string{"taken"}, badRequest.Errors["email"])

	internal := NewInternalServerError()
	assert.Equal(t, "INTERNAL_SERVER_ERROR", internal.Code)
	assert.Equal(t, "Internal Server Error", internal.Message)
}

func TestNewTooManyRequestsError(t *testing.T) {
	tooMany := NewTooManyRequestsError("slow down", 1500*time.Millisecond)

	assert.Equal(t, "TOO_MANY_REQUESTS", tooMany.Code)
	require.NotNil(t, tooMany.Action)
	assert.Equal(t, ActionTypeRetry, tooMany.Action.Type)
	assert.Equal(t, "2", tooMany.Action.Value)
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, RetryAfterSeconds(0))
	assert.Equal(t, 1, RetryAfterSeconds(200*time.Millisecond))
	assert.Equal(t, 3, RetryAfterSeconds(2*time.Second+time.Nanosecond))
}

func TestHTTPError_As(t *testing.T) {
	wrapped := fmt.Errorf("saving: %w", NewNotFoundError("Saved listing not found", true, nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "Saved listing not found", httpErr.Message)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", StatusCode(http.StatusBadRequest))
	assert.Equal(t, "UNPROCESSABLE_ENTITY", MakeUpperCaseWithUnderscores("Unprocessable Entity"))
}
