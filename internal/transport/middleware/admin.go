package middleware

import (
	"net/http"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/pkg/ctxutil"
)

// RequireAdmin rejects requests that carry no staff identity with 401 and
// requests from a non-admin with 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.StaffFromCtx(r.Context()); !ok {
			w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
