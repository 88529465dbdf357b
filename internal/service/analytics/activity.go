package analytics

import (
	"slices"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

const (
	// ActivityPerSource caps how many entries each collection contributes.
	ActivityPerSource = 5
	// ActivityLimit caps the merged feed.
	ActivityLimit = 10
)

// RecentActivity merges the newest complaints and messages into one feed,
// newest first. Entries with equal timestamps keep complaints before
// messages and each source's own order.
func RecentActivity(complaints []domain.Complaint, messages []domain.ContactMessage) ([]domain.Activity, error) {
	for _, c := range complaints {
		if err := checkComplaintCreatedAt(c); err != nil {
			return nil, err
		}
		if err := checkComplaintStatus(c); err != nil {
			return nil, err
		}
	}
	for _, m := range messages {
		if err := checkMessage(m); err != nil {
			return nil, err
		}
	}

	feed := make([]domain.Activity, 0, 2*ActivityPerSource)
	feed = append(feed, newest(complaints, func(c domain.Complaint) domain.Activity {
		return domain.Activity{
			Kind:       domain.ActivityKindComplaint,
			Title:      c.ComplaintType,
			OccurredAt: c.CreatedAt,
			Status:     string(c.Status),
		}
	})...)
	feed = append(feed, newest(messages, func(m domain.ContactMessage) domain.Activity {
		return domain.Activity{
			Kind:       domain.ActivityKindMessage,
			Title:      m.Subject,
			OccurredAt: m.CreatedAt,
			Status:     string(m.Status),
		}
	})...)

	slices.SortStableFunc(feed, byOccurredDesc)
	if len(feed) > ActivityLimit {
		feed = feed[:ActivityLimit]
	}
	return feed, nil
}

// newest maps items and keeps the ActivityPerSource most recent ones.
func newest[T any](items []T, toActivity func(T) domain.Activity) []domain.Activity {
	out := make([]domain.Activity, len(items))
	for i, it := range items {
		out[i] = toActivity(it)
	}
	slices.SortStableFunc(out, byOccurredDesc)
	if len(out) > ActivityPerSource {
		out = out[:ActivityPerSource]
	}
	return out
}

func byOccurredDesc(a, b domain.Activity) int {
	return b.OccurredAt.Compare(a.OccurredAt)
}
