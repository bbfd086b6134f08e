// Package validation registers the custom binding rules used by request DTOs
// and turns validator failures into client-facing messages.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/taskboard-api/internal/constants"
	"github.com/yukikurage/taskboard-api/internal/models"
)

var fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s'-]{1,50}$`)

// Register installs the custom rules on gin's validator engine and makes
// error fields report their JSON names.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validation: unexpected binding engine")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"strongpassword": func(fl validator.FieldLevel) bool { return IsStrongPassword(fl.Field().String()) },
		"fullname":       func(fl validator.FieldLevel) bool { return IsValidFullName(fl.Field().String()) },
		"invitestatus": func(fl validator.FieldLevel) bool {
			switch models.InvitationStatus(fl.Field().String()) {
			case models.InvitationPending, models.InvitationAccepted, models.InvitationRejected:
				return true
			}
			return false
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validation: register %s: %w", tag, err)
		}
	}
	return nil
}

// IsStrongPassword requires upper and lower case letters, a digit and a
// symbol, with a minimum length.
func IsStrongPassword(password string) bool {
	if len(password) < constants.MinPasswordLength {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

func IsValidFullName(name string) bool {
	return fullNamePattern.MatchString(name)
}

// Messages converts a binding error into human-readable messages. ok is
// false when err is not a shape-validation failure.
func Messages(err error) (messages []string, ok bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			messages = append(messages, message(fe))
		}
		return messages, true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []string{fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)}, true
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []string{"request body must be valid JSON"}, true
	}
	return nil, false
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be an email"
	case "uuid", "uuid4":
		return field + " must be a UUID"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	case "url":
		return field + " must be a URL"
	case "gte":
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "strongpassword":
		return field + " must contain at least 8 characters, one uppercase letter, one lowercase letter, one number and one special character"
	case "fullname":
		return field + " must be 1-50 characters and contain only letters, spaces, apostrophes or hyphens"
	case "invitestatus":
		return field + " must be one of: pending, accepted, rejected"
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}
