package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report yaml field names so errors match what the user wrote.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("zodiac_sign", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseSign(fl.Field().String())
		return ok
	})

	return v
}

// ValidatePoint checks a single point DTO and returns the first failing
// field (yaml name) with a human message.
func ValidatePoint(p YAMLPoint) (field string, msg string, ok bool) {
	err := validate.Struct(p)
	if err == nil {
		return "", "", true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", err.Error(), false
	}

	fe := verrs[0]
	return fe.Field(), describe(fe), false
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be >= %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be <= %s, got %v", fe.Param(), fe.Value())
	case "zodiac_sign":
		return fmt.Sprintf("unknown sign %q", fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
