package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "required")

	if got := err.Error(); got != "validation: title: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "title", Message: "required"},
		{Field: "body", Message: "required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestValidationError_AsThroughWrap(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("create article: %w", NewValidationError("email", "invalid email address"))

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As should find the ValidationError")
	}
	if verr.Errors[0].Field != "email" {
		t.Errorf("field = %q, want email", verr.Errors[0].Field)
	}
}

func TestDataIntegrityError(t *testing.T) {
	t.Parallel()

	err := NewDataIntegrityError("complaints", "createdAt", "zero timestamp")

	if got := err.Error(); got != "data integrity: complaints.createdAt: zero timestamp" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrDataIntegrity) {
		t.Fatal("errors.Is(err, ErrDataIntegrity) = false")
	}
	if errors.Is(err, ErrValidation) {
		t.Fatal("data integrity must not read as a validation error")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrValidation, ErrConflict, ErrProviderUnavailable,
		ErrDataIntegrity, ErrUnauthorized, ErrForbidden,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
