// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/menuboard/internal/models"
)

// Price bounds, inclusive.
const (
	MinPrice = 0.0
	MaxPrice = 200.0
)

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError represents a single field validation error with structured information.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the JSON name of the field that failed validation.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Param returns the parameter for the validation tag (e.g., "100" for "max=100").
func (e *ValidationError) Param() string {
	return e.param
}

// Value returns the actual value that failed validation.
func (e *ValidationError) Value() interface{} {
	return e.value
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError represents a collection of validation errors.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the slice of validation errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error implements the error interface, returning a combined error message.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, "; ")
}

// FieldErrors converts the errors into the API's {field, message} list.
func (ve *RequestValidationError) FieldErrors() []models.FieldError {
	out := make([]models.FieldError, len(ve.errors))
	for i, err := range ve.errors {
		out[i] = models.FieldError{Field: err.field, Message: err.message}
	}
	return out
}

// newFieldError builds a single-error RequestValidationError.
func newFieldError(field, tag, message string, value interface{}) *RequestValidationError {
	return &RequestValidationError{
		errors: []ValidationError{{field: field, tag: tag, value: value, message: message}},
	}
}

// newValidator creates a validator with the shared menu tags registered.
// Field names are reported by their JSON tag so errors line up with the wire format.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("finitefloat", validateFiniteFloat)
	_ = v.RegisterValidation("pricerange", validatePriceRange)
	_ = v.RegisterValidation("validtext", validateText)

	return v
}

// GetValidator returns the singleton validator instance.
// This function is thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = newValidator()
	})

	return validate
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *RequestValidationError if validation fails.
func ValidateStruct(s interface{}) *RequestValidationError {
	return convert(GetValidator().Struct(s), nil)
}

// convert turns a validator error into a RequestValidationError.
// extra supplies parameters for messages of custom tags.
func convert(err error, extra map[string]string) *RequestValidationError {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return newFieldError("unknown", "unknown", err.Error(), nil)
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr, extra),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

// validateFiniteFloat accepts strings that parse as a finite float64.
func validateFiniteFloat(fl validator.FieldLevel) bool {
	_, ok := parseFiniteFloat(fl.Field().String())
	return ok
}

// validatePriceRange accepts prices within [MinPrice, MaxPrice].
func validatePriceRange(fl validator.FieldLevel) bool {
	f, ok := parseFiniteFloat(fl.Field().String())
	return ok && f >= MinPrice && f <= MaxPrice
}

// validateText accepts well-formed UTF-8.
func validateText(fl validator.FieldLevel) bool {
	return utf8.ValidString(fl.Field().String())
}

// parseFiniteFloat accepts plain decimal numbers with an optional sign,
// fraction and exponent. Hex floats, underscores and Inf/NaN are rejected.
func parseFiniteFloat(s string) (float64, bool) {
	if !isDecimalNumber(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isDecimalNumber(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return false
		}
	}
	return s != ""
}

// errorMessageTemplates maps validation tags to message templates.
// Templates use %s for the display name of the field.
var errorMessageTemplates = map[string]string{
	"required":    "%s is required",
	"finitefloat": "%s must be a valid number",
	"validtext":   "%s must be valid text",
	"pricerange":  fmt.Sprintf("%%s must be between %g and %g", MinPrice, MaxPrice),
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof":        "%s must be one of: %s",
	"menucategory": "%s must be one of: %s",
	"gte":          "%s must be greater than or equal to %s",
	"lte":          "%s must be less than or equal to %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError, extra map[string]string) string {
	field := displayName(fe.Field())
	tag := fe.Tag()
	param := fe.Param()
	if p, ok := extra[tag]; ok {
		param = p
	}

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	return translateMinMax(fe, field, tag, param)
}

// translateMinMax handles min/max validation with type-specific messages.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind() == reflect.String

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}

// displayName capitalizes a JSON field name for use in messages.
func displayName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
