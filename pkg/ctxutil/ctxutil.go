package ctxutil

import (
	"context"
)

type ctxKey string

const (
	staffKey     ctxKey = "staff"
	requestIDKey ctxKey = "request_id"
)

// RoleAdmin is the role that grants access to the admin API.
const RoleAdmin = "admin"

// Staff is the authenticated staff member behind a request.
type Staff struct {
	Subject string
	Role    string
}

// WithStaff stores the authenticated staff member in the context.
func WithStaff(ctx context.Context, subject, role string) context.Context {
	return context.WithValue(ctx, staffKey, Staff{Subject: subject, Role: role})
}

// StaffFromCtx extracts the staff member from the context.
// Returns false if the value is missing or has an empty subject.
func StaffFromCtx(ctx context.Context) (Staff, bool) {
	s, ok := ctx.Value(staffKey).(Staff)
	if !ok || s.Subject == "" {
		return Staff{}, false
	}
	return s, true
}

// IsAdminCtx reports whether the context carries an admin.
func IsAdminCtx(ctx context.Context) bool {
	s, ok := StaffFromCtx(ctx)
	return ok && s.Role == RoleAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
