// Package form decodes and validates the HTML forms of the site.  Field
// values are kept exactly as submitted so that a created record reads back
// unchanged.
package form

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to a user facing message.  A nil or empty
// Errors means the form is valid.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		_, ok := stateSet[fl.Field().String()]
		return ok
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		_, ok := genreSet[fl.Field().String()]
		return ok
	})
	return v
}

// check runs struct validation and converts failures into Errors.
func check(s any) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"form": err.Error()}
	}
	out := Errors{}
	for _, fe := range verrs {
		field := fe.Field()
		// genres[2] -> genres
		if i := strings.IndexByte(field, '['); i > 0 {
			field = field[:i]
		}
		if _, exists := out[field]; !exists {
			out[field] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return "Field exceeds maximum length of " + fe.Param() + "."
	case "url":
		return "Invalid URL."
	case "usstate":
		return "Not a valid state."
	case "genre":
		return "Not a valid genre."
	case "numeric":
		return "Must be a number."
	default:
		return "Invalid value."
	}
}
