package query

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	isoDateRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})?$`)
	clockRegex   = regexp.MustCompile(`^(\d{2}:\d{2})?$`)
)

var inputValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return isoDateRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockRegex.MatchString(fl.Field().String())
	})

	return v
}

// InvalidInputError is returned when operation input breaks a constraint.
// No backend request is made for such input.
type InvalidInputError struct {
	Fields []string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("invalid input: %v", e.Err)
	}

	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func validate(q any) error {
	err := inputValidator.Struct(q)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &InvalidInputError{Err: err}
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s failed %s", fieldError.Field(), fieldError.Tag()))
	}

	return &InvalidInputError{Fields: fields, Err: err}
}
