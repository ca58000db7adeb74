// Package validation binds request payloads and checks them with
// go-playground/validator, reporting failures as a 400 whose errors map is
// keyed by the names clients use (JSON fields and path parameters).
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(clientFieldName)
	})
	return validate
}

// clientFieldName names a field as the client sent it: its JSON key, or its
// path parameter when it is not part of the body.
func clientFieldName(fld reflect.StructField) string {
	if name, _, _ := strings.Cut(fld.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	if name := fld.Tag.Get("param"); name != "" {
		return name
	}
	return fld.Name
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return Validator().Struct(s)
}
