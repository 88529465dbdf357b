package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedComplaint inserts a pending complaint of the given type.
// Returns a filled domain.Complaint.
func SeedComplaint(t *testing.T, pool *pgxpool.Pool, complaintType string) domain.Complaint {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Complaint{
		ID:              uuid.New(),
		ComplainantName: "Complainant " + suffix,
		ContactInfo:     "complainant-" + suffix + "@example.com",
		ComplaintType:   complaintType,
		Description:     "Seeded complaint " + suffix,
		Status:          domain.ComplaintStatusPending,
		Priority:        domain.ComplaintPriorityMedium,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO complaints (id, complainant_name, contact_info, complaint_type, description, status, priority, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.ComplainantName, c.ContactInfo, c.ComplaintType, c.Description,
		string(c.Status), string(c.Priority), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComplaint: %v", err)
	}

	return c
}

// SeedContentEntry inserts a content entry under a unique section.
func SeedContentEntry(t *testing.T, pool *pgxpool.Pool, key, value string) domain.ContentEntry {
	t.Helper()

	e := domain.ContentEntry{
		ID:      uuid.New(),
		Section: "section-" + uniqueSuffix(),
		Key:     key,
		Value:   value,
		Kind:    domain.ContentKindText,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO content_entries (id, section, key, value, kind) VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Section, e.Key, e.Value, string(e.Kind),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContentEntry: %v", err)
	}

	return e
}
