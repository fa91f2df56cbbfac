package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("basicemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
}

// IsValidEmail is a loose "something@something.tld" check.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// Fields maps each failing field (by JSON name) to the failed tag. It returns
// nil when err is not a validation error.
func Fields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// First returns the first failing field in struct order and its tag.
func First(err error) (field, tag string, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", "", false
	}
	return verrs[0].Field(), verrs[0].Tag(), true
}
