// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the stock tags it understands shopspring decimal.Decimal fields, which are
// validated through their exact string form:
//
//	dpos    the decimal must be strictly greater than zero
//	dnonneg the decimal must be greater than or equal to zero
package validator

import (
	"errors"
	"fmt"
	"reflect"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Amount': value '-1' does not meet the requirements for the 'dpos' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	// Registration only fails on an empty tag or a nil func.
	_ = validator.RegisterValidation("dpos", decimalCompare(func(d decimal.Decimal) bool { return d.IsPositive() }))
	_ = validator.RegisterValidation("dnonneg", decimalCompare(func(d decimal.Decimal) bool { return !d.IsNegative() }))
}

// decimalValue exposes a decimal.Decimal to the validator as its exact string form.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}

	return nil
}

// decimalCompare adapts a predicate over decimals into a validator func.
func decimalCompare(pred func(decimal.Decimal) bool) gvalidator.Func {
	return func(fl gvalidator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}

		return pred(d)
	}
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
