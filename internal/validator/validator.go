package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	ErrRequired  = "is required"
	ErrEmail     = "must be a valid email address"
	ErrMinLength = "must be at least %s characters long"
	ErrMaxLength = "must be at most %s characters long"
	ErrMinValue  = "must be at least %s"
	ErrMaxValue  = "must be at most %s"
	ErrOneOf     = "must be one of: %s"
	ErrLatitude  = "must be a latitude between -90 and 90"
	ErrLongitude = "must be a longitude between -180 and 180"
)

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Unwrap types.Date to its time.Time so "required" sees a zero value
	// for an omitted date instead of a present struct.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if date, ok := field.Interface().(openapi_types.Date); ok {
			return date.Time
		}
		return nil
	}, openapi_types.Date{})

	return v
}

// ValidationMessage converts validator errors into readable messages.
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf(ErrMinLength, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "latitude":
		return ErrLatitude
	case "longitude":
		return ErrLongitude
	default:
		return "is invalid"
	}
}
