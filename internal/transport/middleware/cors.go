package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
)

// CORS returns middleware that lets the public site and the admin UI call
// the API from their own origins. Preflight requests are answered here and
// never reach the handlers.
func CORS(cfg config.CORSConfig) Middleware {
	allowed, anyOrigin := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			_, listed := allowed[origin]
			if origin != "" && (anyOrigin || listed) {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				h.Set("Access-Control-Expose-Headers", RequestIDHeader+", Retry-After")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// parseOrigins splits a comma-separated origin list. "*" admits any origin.
func parseOrigins(list string) (map[string]struct{}, bool) {
	set := make(map[string]struct{})
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			return nil, true
		default:
			set[o] = struct{}{}
		}
	}
	return set, false
}
