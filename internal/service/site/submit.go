package site

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

// SubmitComplaint records a complaint from the public form. It always
// starts pending with medium priority.
func (s *Service) SubmitComplaint(ctx context.Context, in ComplaintSubmission) (domain.Complaint, error) {
	c := in.toComplaint()
	if err := c.Validate(); err != nil {
		return domain.Complaint{}, err
	}

	created, err := s.complaints.Create(ctx, c)
	if err != nil {
		return domain.Complaint{}, fmt.Errorf("create complaint: %w", err)
	}

	s.log.InfoContext(ctx, "complaint submitted",
		slog.String("complaint_id", created.ID.String()),
		slog.String("type", created.ComplaintType),
	)
	return created, nil
}

// SubmitMessage records a message from the public contact form.
func (s *Service) SubmitMessage(ctx context.Context, in MessageSubmission) (domain.ContactMessage, error) {
	m := in.toMessage()
	if err := m.Validate(); err != nil {
		return domain.ContactMessage{}, err
	}

	created, err := s.messages.Create(ctx, m)
	if err != nil {
		return domain.ContactMessage{}, fmt.Errorf("create message: %w", err)
	}

	s.log.InfoContext(ctx, "contact message submitted",
		slog.String("message_id", created.ID.String()),
		slog.String("category", created.Category),
	)
	return created, nil
}
