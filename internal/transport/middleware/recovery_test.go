package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecovery_PassesThrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	wrapped := Recovery(slog.New(slog.NewTextHandler(&buf, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/complaints", nil))

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no log output, got %q", buf.String())
	}
}

func TestRecovery_PanicBecomesJSON500(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	wrapped := RequestID()(Recovery(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("nil complaint repo")
		})))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/complaints", nil)
	req.Header.Set(RequestIDHeader, "req-panic-42")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error != "internal server error" {
		t.Errorf("body = %q (err %v)", rec.Body.String(), err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log is not one JSON line: %v: %q", err, buf.String())
	}
	want := map[string]string{
		"msg":        "panic recovered",
		"panic":      "nil complaint repo",
		"request_id": "req-panic-42",
		"path":       "/api/admin/complaints",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("log %s = %v, want %q", k, entry[k], v)
		}
	}
	if stack, _ := entry["stack"].(string); !strings.Contains(stack, "goroutine") {
		t.Errorf("expected stack trace in log, got %q", stack)
	}
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	t.Parallel()

	wrapped := Recovery(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
		}
	}()
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	t.Error("expected ServeHTTP to panic")
}

func TestRecovery_NoRequestIDOutsideStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	wrapped := Recovery(slog.New(slog.NewJSONHandler(&buf, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(buf.String(), `"request_id":""`) {
		t.Errorf("expected empty request_id attribute, got %q", buf.String())
	}
}
