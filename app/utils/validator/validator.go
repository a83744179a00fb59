package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	// Register custom validators
	registerCustomValidators(validate)

	// Use form field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return NewValidationError(err.(validator.ValidationErrors))
	}
	return nil
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}

// ValidationError represents a validation error with user-friendly messages
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	var messages []string
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// NewValidationError creates a ValidationError from validator.ValidationErrors
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	errors := make(map[string]string)

	for _, err := range errs {
		field := err.Field()
		tag := err.Tag()

		switch tag {
		case "required":
			errors[field] = "This field is required."
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "project_name":
			errors[field] = "project name must be 64 characters or fewer"
		case "quota_limit":
			errors[field] = fmt.Sprintf("%s must be -1 (unlimited) or a non-negative number", field)
		case "resource_id":
			errors[field] = fmt.Sprintf("%s must be a valid resource id", field)
		case "url":
			errors[field] = fmt.Sprintf("%s must be a valid URL", field)
		default:
			errors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: errors}
}

// registerCustomValidators registers custom validation rules
func registerCustomValidators(validate *validator.Validate) {
	// Project name validation: non-blank, at most 64 characters
	validate.RegisterValidation("project_name", func(fl validator.FieldLevel) bool {
		name := strings.TrimSpace(fl.Field().String())
		return name != "" && utf8.RuneCountInString(name) <= 64
	})

	// Quota limit validation: -1 means unlimited, anything below is invalid
	validate.RegisterValidation("quota_limit", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() >= -1
	})

	// Resource id validation: identity service ids are opaque URL-safe tokens
	validate.RegisterValidation("resource_id", func(fl validator.FieldLevel) bool {
		id := fl.Field().String()
		matched, _ := regexp.MatchString(`^[a-zA-Z0-9._-]+$`, id)
		return matched && len(id) <= 255
	})
}

// Helper validation functions

// IsValidProjectName checks whether a project name is acceptable
func IsValidProjectName(name string) bool {
	v := New()
	return v.ValidateVar(name, "required,project_name") == nil
}

// IsValidResourceID checks whether a backend resource id is well formed
func IsValidResourceID(id string) bool {
	v := New()
	return v.ValidateVar(id, "required,resource_id") == nil
}
