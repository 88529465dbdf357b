package postgrest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

// PostgreSQL SQLSTATE codes relayed in PostgREST error bodies.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgInvalidText         = "22P02"
)

// apiError is the PostgREST error body.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// mapError translates an error response into a domain error.
func mapError(status int, body []byte) error {
	var e apiError
	_ = json.Unmarshal(body, &e)
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch e.Code {
	case pgUniqueViolation, pgForeignKeyViolation:
		return fmt.Errorf("%s: %w", msg, domain.ErrConflict)
	case pgCheckViolation, pgNotNullViolation, pgInvalidText:
		return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
	}

	switch {
	case status == http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, domain.ErrConflict)
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
	default:
		// 401/403 (bad key), 404 (missing table) and 5xx all mean this store
		// cannot serve the session.
		return fmt.Errorf("status %d: %s: %w", status, msg, domain.ErrProviderUnavailable)
	}
}
