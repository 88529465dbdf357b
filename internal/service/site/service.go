// Package site serves the public website: published content and the two
// public forms.
package site

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

type contentRepo interface {
	List(ctx context.Context) ([]domain.ContentEntry, error)
}

type articleRepo interface {
	List(ctx context.Context) ([]domain.Article, error)
}

type testimonialRepo interface {
	List(ctx context.Context) ([]domain.Testimonial, error)
}

type complaintRepo interface {
	Create(ctx context.Context, c domain.Complaint) (domain.Complaint, error)
}

type messageRepo interface {
	Create(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error)
}

// Service provides read access to published content and accepts public
// submissions.
type Service struct {
	content      contentRepo
	articles     articleRepo
	testimonials testimonialRepo
	complaints   complaintRepo
	messages     messageRepo
	log          *slog.Logger
}

// NewService creates a new site service.
func NewService(
	log *slog.Logger,
	content contentRepo,
	articles articleRepo,
	testimonials testimonialRepo,
	complaints complaintRepo,
	messages messageRepo,
) *Service {
	return &Service{
		content:      content,
		articles:     articles,
		testimonials: testimonials,
		complaints:   complaints,
		messages:     messages,
		log:          log.With("service", "site"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
