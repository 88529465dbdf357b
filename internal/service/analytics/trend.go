// Package analytics turns complaint and message collections into the views
// shown on the admin dashboard. The transforms in this package are pure;
// Service adds the gateway reads around them.
package analytics

import (
	"time"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

// MonthlyTrend counts complaints per calendar month of year, as observed in
// loc (nil means UTC). The result always has twelve entries, January first.
// Complaints from other years are ignored.
func MonthlyTrend(complaints []domain.Complaint, year int, loc *time.Location) ([]domain.MonthCount, error) {
	if loc == nil {
		loc = time.UTC
	}

	out := make([]domain.MonthCount, 12)
	for i := range out {
		m := time.Month(i + 1)
		out[i] = domain.MonthCount{Month: m, Label: m.String()[:3]}
	}

	for _, c := range complaints {
		if err := checkComplaintCreatedAt(c); err != nil {
			return nil, err
		}
		local := c.CreatedAt.In(loc)
		if local.Year() != year {
			continue
		}
		out[local.Month()-1].Count++
	}
	return out, nil
}
