package exts

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validation.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if len(name) > 0 && name != "-" {
				return name
			}
		}
		return field.Name
	})
}

func ValidateStruct(data any) error {
	return validation.Struct(data)
}

func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err := ValidateStruct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// FormErrors maps form field names to a human readable message.
type FormErrors map[string]string

func (v FormErrors) Add(field, message string) {
	v[field] = message
}

func (v FormErrors) Any() bool {
	return len(v) > 0
}

// BindForm parses the form body into out and collects per field validation messages.
// The returned error is only set when the body itself is unreadable.
func BindForm(c *fiber.Ctx, out any) (FormErrors, error) {
	issues := FormErrors{}
	if err := c.BodyParser(out); err != nil {
		return issues, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var failures validator.ValidationErrors
	if err := ValidateStruct(out); errors.As(err, &failures) {
		for _, failure := range failures {
			issues.Add(failure.Field(), describeFailure(failure))
		}
	} else if err != nil {
		return issues, err
	}

	return issues, nil
}

func describeFailure(failure validator.FieldError) string {
	switch failure.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", failure.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", failure.Param())
	case "eqfield":
		return "The two password fields didn't match."
	default:
		return fmt.Sprintf("Enter a valid value (%s).", failure.Tag())
	}
}
