package middleware

import (
	"net/http"
	"strings"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/auth"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (auth.Identity, error)
}

// Auth attaches the staff identity of a valid bearer token to the request
// context. Requests without a token pass through anonymously; an invalid
// token is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.ValidateToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithStaff(r.Context(), id.Subject, id.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
