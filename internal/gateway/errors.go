package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

// taxonomy lists the kinds a caller of the gateway may observe.
var taxonomy = []error{
	domain.ErrValidation,
	domain.ErrNotFound,
	domain.ErrConflict,
	domain.ErrProviderUnavailable,
}

// classify wraps a provider error so that it always carries one taxonomy
// kind. Deadlines, cancellations and unmapped driver errors become
// domain.ErrProviderUnavailable; the original error stays in the chain.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrProviderUnavailable, err)
	}
	for _, kind := range taxonomy {
		if errors.Is(err, kind) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrProviderUnavailable, err)
}

// malformed reports a record the provider returned but the gateway cannot
// decode. It is an upstream fault, surfaced as unavailable.
func malformed(op string, index int, err error) error {
	return fmt.Errorf("%s: record %d: %w: %w", op, index, domain.ErrProviderUnavailable, err)
}
