package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// checkRequired appends a "required" error when value is blank and a length
// error when it exceeds maxLen (0 = unlimited).
func checkRequired(errs []FieldError, field, value string, maxLen int) []FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, FieldError{Field: field, Message: "required"})
	}
	return checkLength(errs, field, value, maxLen)
}

func checkLength(errs []FieldError, field, value string, maxLen int) []FieldError {
	if maxLen > 0 && len(value) > maxLen {
		return append(errs, FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	return errs
}

// checkPatchText validates an optional patch field: nil is fine, a pointer to
// a blank string is not.
func checkPatchText(errs []FieldError, field string, value *string, maxLen int) []FieldError {
	if value == nil {
		return errs
	}
	return checkRequired(errs, field, *value, maxLen)
}

func checkEmail(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, FieldError{Field: field, Message: "required"})
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return append(errs, FieldError{Field: field, Message: "invalid email address"})
	}
	return errs
}

func checkRating(errs []FieldError, field string, rating int) []FieldError {
	if rating < 1 || rating > 5 {
		return append(errs, FieldError{Field: field, Message: "must be between 1 and 5"})
	}
	return errs
}

func noFieldsError() []FieldError {
	return []FieldError{{Field: "input", Message: "at least one field must be provided"}}
}
