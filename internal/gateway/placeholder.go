package gateway

import (
	"strings"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
)

// placeholders are the values shipped in sample env files.
var placeholders = map[string]struct{}{
	"https://your-project.supabase.co":    {},
	"https://your-project-id.supabase.co": {},
	"your_supabase_url":                   {},
	"your-supabase-url":                   {},
	"your_supabase_anon_key":              {},
	"your-anon-key":                       {},
	"your_anon_key":                       {},
	"your-service-role-key":               {},
	"your_service_role_key":               {},
	"changeme":                            {},
	"change-me":                           {},
	"placeholder":                         {},
	"xxx":                                 {},
}

// IsPlaceholder reports whether v is a sample value rather than a real
// endpoint or credential.
func IsPlaceholder(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return false
	}
	if _, ok := placeholders[v]; ok {
		return true
	}
	return strings.Contains(v, "your-project") ||
		strings.HasPrefix(v, "your_") ||
		strings.HasPrefix(v, "your-") ||
		(strings.HasPrefix(v, "<") && strings.HasSuffix(v, ">"))
}

// unconfiguredReason returns why cfg cannot reach a remote store without any
// network attempt, or "" when a dial should be tried.
func unconfiguredReason(cfg config.StoreConfig) string {
	switch {
	case cfg.Endpoint == "":
		return "endpoint not configured"
	case IsPlaceholder(cfg.Endpoint):
		return "endpoint is a placeholder"
	case cfg.RequiresCredential() && cfg.AnonKey == "":
		return "credential not configured"
	case cfg.RequiresCredential() && IsPlaceholder(cfg.AnonKey):
		return "credential is a placeholder"
	}
	return ""
}
