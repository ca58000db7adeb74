package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/deppfellow/listings-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by every request payload. Validate returns
// validator.ValidationErrors, CustomValidationErrors, or an *errs.HTTPError
// when the failure carries its own client-facing message.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a field failure no struct tag can express.
// Message is a full sentence; the first one becomes the response message.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	if len(c) == 0 {
		return "Validation failed"
	}
	return c[0].Message
}

// BindAndValidate fills payload from the path parameters and JSON body, then
// validates it. Either failure is returned as a 400 *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		return validationError(err)
	}

	return nil
}

// bindError keeps Echo's message for malformed JSON or a non-numeric path
// parameter.
func bindError(err error) *errs.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return errs.NewBadRequestError(msg, false, nil, nil)
		}
	}
	return errs.NewBadRequestError("Invalid request payload", false, nil, nil)
}

func validationError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	fields := errs.FieldErrors{}
	message := "Validation failed"

	var tagErrors validator.ValidationErrors
	var custom CustomValidationErrors
	switch {
	case errors.As(err, &tagErrors):
		for _, fe := range tagErrors {
			fields.Add(fe.Field(), tagMessage(fe))
		}
	case errors.As(err, &custom):
		for _, ce := range custom {
			fields.Add(ce.Field, ce.Message)
		}
		message = custom.Error()
	default:
		return errs.ValidationError(err)
	}

	return errs.NewBadRequestError(message, true, nil, fields)
}

// tagMessages phrases each validator tag as it reads after the field name.
var tagMessages = map[string]func(fe validator.FieldError) string{
	"required": func(validator.FieldError) string { return "is required" },
	"email":    func(validator.FieldError) string { return "must be a valid email address" },
	"gt": func(fe validator.FieldError) string {
		return "must be greater than " + fe.Param()
	},
	"oneof": func(fe validator.FieldError) string {
		return "must be one of: " + fe.Param()
	},
	"min": func(fe validator.FieldError) string {
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	},
	"max": func(fe validator.FieldError) string {
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return "must not exceed " + fe.Param()
	},
}

func tagMessage(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg(fe)
	}
	if fe.Param() != "" {
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return "failed " + fe.Tag()
}
