package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriteServiceError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("title", "required"), http.StatusBadRequest},
		{"wrapped validation sentinel", fmt.Errorf("trend: %w", domain.ErrValidation), http.StatusBadRequest},
		{"not found", fmt.Errorf("update articles: %w", domain.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("upsert: %w", domain.ErrConflict), http.StatusConflict},
		{"unavailable", fmt.Errorf("list: %w", domain.ErrProviderUnavailable), http.StatusServiceUnavailable},
		{"integrity", domain.NewDataIntegrityError("complaint 1", "created_at", "missing"), http.StatusInternalServerError},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			writeServiceError(rec, req, discardLogger(), tc.err)

			assert.Equal(t, tc.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWriteServiceError_FieldList(t *testing.T) {
	t.Parallel()

	err := domain.NewValidationErrors([]domain.FieldError{
		{Field: "name", Message: "required"},
		{Field: "email", Message: "invalid email address"},
	})

	rec := httptest.NewRecorder()
	writeServiceError(rec, httptest.NewRequest(http.MethodPost, "/", nil), discardLogger(),
		fmt.Errorf("create message: %w", err))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Equal(t, []FieldIssue{
		{Field: "name", Message: "required"},
		{Field: "email", Message: "invalid email address"},
	}, resp.Fields)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type target struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"ok", `{"name":"Ama","age":3}`, ""},
		{"empty", ``, "required"},
		{"truncated", `{"name":`, "malformed JSON"},
		{"truncated string", `{"name":"Am`, "malformed JSON"},
		{"syntax", `{"name" "Ama"}`, "malformed JSON at offset"},
		{"wrong type", `{"age":"three"}`, "wrong type"},
		{"unknown field", `{"nickname":"A"}`, "unknown field"},
		{"two objects", `{"name":"A"}{"name":"B"}`, "single JSON object"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dst target
			err := decodeJSON(rec, req, &dst)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, target{Name: "Ama", Age: 3}, dst)
				return
			}
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
