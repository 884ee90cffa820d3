package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map for a failed request
// body or query. It implements error so services can return it directly.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator wraps go-playground/validator with json-tag field names and
// the platform's custom rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report field names as they appear on the wire, not as Go fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := registerCustomRules(v); err != nil {
		// Registration only fails on programmer error; refuse to start.
		panic(fmt.Sprintf("failed to register custom validation rules: %v", err))
	}

	return &Validator{
		validate: v,
	}
}

// Validate checks a bound request struct. Returns *ValidationError when
// constraints fail, or the raw error for non-validation failures.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	customErrors := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = messageFor(fe)
	}

	return &ValidationError{Errors: customErrors}
}

// structErrors exposes the raw field errors for callers that need
// ordered, per-field reporting (the step pipeline).
func (v *Validator) structErrors(i interface{}) validator.ValidationErrors {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}
	return nil
}

// messageFor renders a Dutch message for a failed constraint.
func messageFor(fe validator.FieldError) string {
	label := FieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is verplicht", label)
	case "birthdate":
		return "Geboortedatum is verplicht en moet een geldige datum zijn in dd/mm/jjjj formaat"
	case "email":
		return "Ongeldig e-mailadres"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Minimaal %s vereist voor %s", fe.Param(), label)
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s moet minimaal %s karakters lang zijn", label, fe.Param())
		}
		return fmt.Sprintf("%s moet minimaal %s zijn", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s mag maximaal %s karakters lang zijn", label, fe.Param())
		}
		return fmt.Sprintf("%s mag maximaal %s zijn", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s moet groter dan %s zijn", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("Ongeldige waarde voor %s", label)
	default:
		return fmt.Sprintf("Ongeldige waarde voor %s (regel '%s')", label, fe.Tag())
	}
}
