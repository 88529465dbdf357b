package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %s)", c.Auth.TokenTTL)
	}

	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if err := c.Dashboard.validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	if c.RateLimit.SubmissionsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.submissions_per_minute must be > 0 (got %d)", c.RateLimit.SubmissionsPerMinute)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if !s.IsKnownDriver() {
		return fmt.Errorf("driver must be one of %s (got %q)", strings.Join(Drivers, ", "), s.Driver)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", s.Timeout)
	}
	if s.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", s.MaxConns)
	}
	s.Endpoint = strings.TrimSpace(s.Endpoint)
	s.AnonKey = strings.TrimSpace(s.AnonKey)
	s.ServiceKey = strings.TrimSpace(s.ServiceKey)
	return nil
}

func (d *DashboardConfig) validate() error {
	loc, err := LoadLocation(d.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	d.Location = loc
	return nil
}

// LoadLocation resolves an IANA timezone name. An empty name means UTC.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "UTC") {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}
