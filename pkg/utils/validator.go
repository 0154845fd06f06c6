package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// special characters accepted by the password policy
const passwordSpecialSet = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

func init() {
	validate.RegisterValidation("userpassword", validatePassword)
}

// validatePassword enforces 8-16 chars with at least one uppercase letter
// and one special character
func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	length := utf8.RuneCountInString(password)
	if length < 8 || length > 16 {
		return false
	}

	hasUpper := false
	hasSpecial := false
	for _, c := range password {
		if c >= 'A' && c <= 'Z' {
			hasUpper = true
		}
		if strings.ContainsRune(passwordSpecialSet, c) {
			hasSpecial = true
		}
	}

	return hasUpper && hasSpecial
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid":
		return "Must be a valid UUID"
	case "userpassword":
		return "Password must be 8-16 characters with at least one uppercase letter and one special character"
	case "gte":
		return fmt.Sprintf("Must be at least %s", err.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", err.Param())
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	var msgs []string
	for field, msg := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
