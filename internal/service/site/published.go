package site

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

// PublishedTestimonials returns approved testimonials, featured ones first,
// then newest first.
func (s *Service) PublishedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	all, err := s.testimonials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	out := make([]domain.Testimonial, 0, len(all))
	for _, t := range all {
		if t.IsPublic() {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Testimonial) int {
		if a.Featured != b.Featured {
			if a.Featured {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// Articles returns articles newest first, optionally restricted to one
// category (case-insensitive). An empty category returns all.
func (s *Service) Articles(ctx context.Context, category string) ([]domain.Article, error) {
	all, err := s.articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return all, nil
	}
	out := make([]domain.Article, 0, len(all))
	for _, a := range all {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out, nil
}

// FeaturedArticles returns at most limit featured articles, newest first.
func (s *Service) FeaturedArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 || limit > MaxFeaturedArticles {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxFeaturedArticles))
	}

	all, err := s.articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	out := make([]domain.Article, 0, limit)
	for _, a := range all {
		if !a.Featured {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// SectionContent returns the content values of one page section by key.
// An unknown section yields an empty map.
func (s *Service) SectionContent(ctx context.Context, section string) (map[string]string, error) {
	section = strings.TrimSpace(section)
	if section == "" {
		return nil, domain.NewValidationError("section", "required")
	}

	entries, err := s.content.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}

	out := make(map[string]string)
	for _, e := range entries {
		if e.Section == section {
			out[e.Key] = e.Value
		}
	}

	s.log.DebugContext(ctx, "section content loaded",
		slog.String("section", section),
		slog.Int("keys", len(out)),
	)
	return out, nil
}
