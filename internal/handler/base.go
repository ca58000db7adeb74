package handler

import (
	"net/http"
	"reflect"
	"time"

	"github.com/deppfellow/listings-api/internal/middleware"
	"github.com/deppfellow/listings-api/internal/server"
	"github.com/deppfellow/listings-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler carries the server dependencies shared by every handler.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed handler that returns a response body.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// HandlerFuncNoContent is a typed handler without a response body.
type HandlerFuncNoContent[Req validation.Validatable] func(c echo.Context, req Req) error

// responder writes the result of a successful handler.
type responder struct {
	operation string
	write     func(c echo.Context, result any) error
}

func jsonResponder(status int) responder {
	return responder{
		operation: "handler",
		write: func(c echo.Context, result any) error {
			return c.JSON(status, result)
		},
	}
}

func noContentResponder(status int) responder {
	return responder{
		operation: "handler_no_content",
		write: func(c echo.Context, _ any) error {
			return c.NoContent(status)
		},
	}
}

// newRequest allocates a fresh payload for Req, which is a pointer to a
// struct, so concurrent requests never bind into a shared value.
func newRequest[Req validation.Validatable]() Req {
	var req Req
	if t := reflect.TypeFor[Req](); t.Kind() == reflect.Pointer {
		req = reflect.New(t.Elem()).Interface().(Req)
	}
	return req
}

// serve binds and validates a fresh Req, runs fn and writes its result.
// Stage outcomes and timings go to the request logger and, when present,
// the New Relic transaction.
func serve[Req validation.Validatable](c echo.Context, fn func(echo.Context, Req) (any, error), r responder) error {
	start := time.Now()

	txn := newrelic.FromContext(c.Request().Context())
	attr := func(key string, value any) {
		if txn != nil {
			txn.AddAttribute(key, value)
		}
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", r.operation).
		Logger()

	req := newRequest[Req]()
	if err := validation.BindAndValidate(c, req); err != nil {
		attr("validation.status", "failed")
		logger.Debug().Err(err).Msg("request rejected")
		return err
	}
	attr("validation.status", "success")

	handlerStart := time.Now()
	result, err := fn(c, req)
	handlerDuration := time.Since(handlerStart)
	attr("handler.duration_ms", handlerDuration.Milliseconds())

	if err != nil {
		attr("handler.status", "error")
		logger.Debug().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Msg("handler failed")
		return err
	}
	attr("handler.status", "success")

	if v := reflect.ValueOf(result); v.Kind() == reflect.Slice {
		attr("response.items", v.Len())
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request handled")

	return r.write(c, result)
}

// Handle adapts fn into an Echo handler answering with a JSON body.
func Handle[Req validation.Validatable, Res any](fn HandlerFunc[Req, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return serve(c, func(c echo.Context, req Req) (any, error) {
			return fn(c, req)
		}, jsonResponder(status))
	}
}

// HandleNoContent adapts fn into an Echo handler answering with an empty body.
func HandleNoContent[Req validation.Validatable](fn HandlerFuncNoContent[Req]) echo.HandlerFunc {
	return func(c echo.Context) error {
		return serve(c, func(c echo.Context, req Req) (any, error) {
			return nil, fn(c, req)
		}, noContentResponder(http.StatusNoContent))
	}
}
