package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/premek1996/cinema-booking-backend/api"
	"github.com/premek1996/cinema-booking-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)

	validator.RegisterValidation("agerating", validateAgeRating)
	validator.RegisterValidation("notfuture", validateNotFuture)
	validator.RegisterValidation("notpast", validateNotPast)
	validator.RegisterValidation("price", validatePrice)

	return validator
}

// jsonFieldName makes validation errors report the wire name of a field
// instead of the Go struct field name.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}

	return name
}

func validateAgeRating(fl validator.FieldLevel) bool {
	return domain.AgeRating(fl.Field().String()).Valid()
}

func validateNotFuture(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(api.Date)
	if !ok {
		return false
	}

	return !date.Time.After(time.Now())
}

func validateNotPast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	return !t.Before(time.Now())
}

func validatePrice(fl validator.FieldLevel) bool {
	price, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	// Non-negative, at most two decimal places.
	return !price.IsNegative() && price.Exponent() >= -2
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "agerating":
		return "must be one of G, PG, AGE_12, AGE_16, AGE_18"
	case "notfuture":
		return "must not be in the future"
	case "notpast":
		return "must not be in the past"
	case "price":
		return "must be a non-negative amount with at most two decimal places"
	default:
		return "is invalid"
	}
}
