package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

type complaintLister interface {
	List(ctx context.Context) ([]domain.Complaint, error)
}

type messageLister interface {
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

type modeReporter interface {
	IsFallbackMode() bool
}

// Service assembles dashboard views from the current store contents.
// Nothing is cached: every call reads both collections again.
type Service struct {
	complaints complaintLister
	messages   messageLister
	mode       modeReporter
	loc        *time.Location
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new analytics service. loc decides which calendar
// month a complaint belongs to; nil means UTC.
func NewService(
	log *slog.Logger,
	complaints complaintLister,
	messages messageLister,
	mode modeReporter,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		complaints: complaints,
		messages:   messages,
		mode:       mode,
		loc:        loc,
		now:        time.Now,
		log:        log.With("service", "analytics"),
	}
}

// Dashboard computes every view for the current year.
func (s *Service) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	complaints, messages, err := s.loadBoth(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	now := s.now()
	year := now.In(s.loc).Year()

	trend, err := MonthlyTrend(complaints, year, s.loc)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("monthly trend: %w", err)
	}
	categories, err := CategoryBreakdown(complaints)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("category breakdown: %w", err)
	}
	statuses, err := StatusBreakdown(complaints)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("status breakdown: %w", err)
	}
	totals, err := Totals(complaints, messages)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("totals: %w", err)
	}
	activity, err := RecentActivity(complaints, messages)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("recent activity: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard computed",
		slog.Int("year", year),
		slog.Int("complaints", totals.Complaints),
		slog.Int("messages", totals.Messages),
		slog.Bool("fallback", s.mode.IsFallbackMode()),
	)

	return domain.Dashboard{
		Year:           year,
		Totals:         totals,
		MonthlyTrend:   trend,
		Categories:     categories,
		Statuses:       statuses,
		RecentActivity: activity,
		FallbackMode:   s.mode.IsFallbackMode(),
		GeneratedAt:    now.UTC(),
	}, nil
}

// Trend returns the monthly complaint counts of year; 0 means the current
// year.
func (s *Service) Trend(ctx context.Context, year int) ([]domain.MonthCount, error) {
	if year == 0 {
		year = s.now().In(s.loc).Year()
	}
	if year < 1970 || year > 9999 {
		return nil, domain.NewValidationError("year", "must be between 1970 and 9999")
	}

	complaints, err := s.complaints.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	trend, err := MonthlyTrend(complaints, year, s.loc)
	if err != nil {
		return nil, fmt.Errorf("monthly trend: %w", err)
	}
	return trend, nil
}

// Categories returns the complaint-type breakdown.
func (s *Service) Categories(ctx context.Context) ([]domain.CategoryShare, error) {
	complaints, err := s.complaints.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	out, err := CategoryBreakdown(complaints)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	return out, nil
}

// Activity returns the merged recent-activity feed.
func (s *Service) Activity(ctx context.Context) ([]domain.Activity, error) {
	complaints, messages, err := s.loadBoth(ctx)
	if err != nil {
		return nil, err
	}
	out, err := RecentActivity(complaints, messages)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return out, nil
}

// loadBoth lists complaints and messages concurrently.
func (s *Service) loadBoth(ctx context.Context) ([]domain.Complaint, []domain.ContactMessage, error) {
	var (
		complaints []domain.Complaint
		messages   []domain.ContactMessage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if complaints, err = s.complaints.List(gctx); err != nil {
			return fmt.Errorf("list complaints: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if messages, err = s.messages.List(gctx); err != nil {
			return fmt.Errorf("list messages: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return complaints, messages, nil
}
