package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation marks a request body that decoded but failed its struct tags.
	ErrValidation = errors.New("validation failed")

	// ErrBinding marks a request body that could not be decoded.
	ErrBinding = errors.New("binding failed")
)

// Validator returns the shared validator. Field errors are reported under
// their JSON names so details line up with the request body.
var Validator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// notempty rejects blank strings such as a product of "   ".
	_ = v.RegisterValidation("notempty", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
})

// Validate runs the struct tags of v.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// IsValidationError reports whether err carries validator field errors.
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// ValidationErrors flattens validator field errors into response details.
func ValidationErrors(err error) map[string]string {
	details := make(map[string]string)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return details
	}

	for _, fe := range fieldErrs {
		details[fe.Field()] = validationMessage(fe)
	}

	return details
}

func validationMessage(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "notempty":
		return "must not be empty"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "oneof":
		return "must be one of: " + param
	case "min", "max":
		bound := "at least "
		if fe.Tag() == "max" {
			bound = "at most "
		}

		if fe.Kind() == reflect.String {
			return "must be " + bound + param + " characters"
		}

		return "must be " + bound + param
	default:
		return "failed validation: " + fe.Tag()
	}
}
