package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/listings-api/internal/config"
	"github.com/deppfellow/listings-api/internal/errs"
	"github.com/deppfellow/listings-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	c, rec := newContext(req)

	require.NoError(t, RequestID()(okHandler)(c))

	assert.Equal(t, "req-123", GetRequestID(c))
	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/users", nil))

	require.NoError(t, RequestID()(okHandler)(c))

	id := GetRequestID(c)
	assert.Len(t, id, 36)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_ReplacesMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(RequestIDHeader, "bad id\nwith newline")
	c, _ := newContext(req)

	require.NoError(t, RequestID()(okHandler)(c))

	assert.NotEqual(t, "bad id\nwith newline", GetRequestID(c))
	assert.Len(t, GetRequestID(c), 36)
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}

func TestEnhanceContext_StoresRequestLogger(t *testing.T) {
	base := zerolog.New(nil).Level(zerolog.InfoLevel)
	enhancer := NewContextEnhancer(&server.Server{Logger: &base})
	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	var fromCtx *zerolog.Logger
	err := enhancer.EnhanceContext()(func(c echo.Context) error {
		fromCtx = zerolog.Ctx(c.Request().Context())
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, GetLogger(c).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, fromCtx.GetLevel())
}

func newRateLimitServer(limit float64) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Server: config.ServerConfig{RateLimit: limit}},
		Logger: &logger,
	}
}

// newLimitedEcho serves okHandler behind the rate limiter, with errors
// rendered by the global error handler as in production.
func newLimitedEcho(limit float64) *echo.Echo {
	s := newRateLimitServer(limit)

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/listings", okHandler)
	return e
}

func TestLimit_RejectsBurstOverflow(t *testing.T) {
	e := newLimitedEcho(1)

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/listings", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/listings", nil))

	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get(echo.HeaderRetryAfter))

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "TOO_MANY_REQUESTS", body.Code)
	assert.Equal(t, "Rate limit exceeded", body.Message)
	require.NotNil(t, body.Action)
	assert.Equal(t, errs.ActionTypeRetry, body.Action.Type)
	assert.Equal(t, "1", body.Action.Value)
}

func TestLimit_ZeroDisables(t *testing.T) {
	h := NewRateLimitMiddleware(newRateLimitServer(0)).Limit()(okHandler)

	for range 5 {
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/listings", nil))
		require.NoError(t, h(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestToHTTPError(t *testing.T) {
	notFound := errs.NewNotFoundError("User not found", true, nil)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"application error", fmt.Errorf("get user: %w", notFound), http.StatusNotFound, "User not found"},
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, "Route not found"},
		{"wrong method", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"driver failure", errors.New("conn reset"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := toHTTPError(tt.err)

			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}
