package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleServiceRole is the hosted backend role that bypasses row-level security.
const RoleServiceRole = "service_role"

// APIKey describes a hosted backend key. Keys are issued by the backend, so
// the signature cannot be checked here; only the claims are read.
type APIKey struct {
	// Opaque is true for keys that are not JWTs.
	Opaque    bool
	Role      string
	ExpiresAt time.Time
}

// InspectAPIKey reads the role and expiry of a JWT-shaped key without
// verifying it. Any other key is reported as opaque.
func InspectAPIKey(key string) APIKey {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(key, claims); err != nil {
		return APIKey{Opaque: true}
	}

	info := APIKey{}
	if role, ok := claims["role"].(string); ok {
		info.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info
}

// Expired reports whether the key carries an expiry at or before now.
func (k APIKey) Expired(now time.Time) bool {
	return !k.ExpiresAt.IsZero() && !now.Before(k.ExpiresAt)
}

// IsServiceRole reports whether the key may be used for writes that bypass
// row-level security.
func (k APIKey) IsServiceRole() bool { return k.Role == RoleServiceRole }
