package gateway

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/memory"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/store"
)

func ptr[T any](v T) *T { return &v }

func openFallback(t *testing.T, seed memory.Dataset, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithLogger(discardLogger()), WithFallbackSeed(seed)}, opts...)
	s, err := Open(context.Background(), config.StoreConfig{}, opts...)
	require.NoError(t, err)
	require.True(t, s.IsFallbackMode())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// openRemote opens a session whose "remote" store is a memory provider
// reached through a dialer.
func openRemote(t *testing.T, seed memory.Dataset) *Session {
	t.Helper()
	dial := func(context.Context, config.StoreConfig, *slog.Logger) (store.Provider, error) {
		return memory.New(seed), nil
	}
	s, err := Open(context.Background(),
		config.StoreConfig{Driver: config.DriverPostgres, Endpoint: "postgres://db.internal/site"},
		WithDialer(config.DriverPostgres, dial), WithLogger(discardLogger()))
	require.NoError(t, err)
	require.False(t, s.IsFallbackMode())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func openSQLite(t *testing.T) *Session {
	t.Helper()
	s, err := Open(context.Background(),
		config.StoreConfig{Driver: config.DriverSQLite, Endpoint: filepath.Join(t.TempDir(), "site.db"), Timeout: 5 * time.Second},
		WithLogger(discardLogger()))
	require.NoError(t, err)
	require.False(t, s.IsFallbackMode(), s.FallbackReason())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// transcript is everything a caller observed while running the workload.
type transcript struct {
	Entries        []domain.ContentEntry
	Complaint      domain.Complaint
	Updated        domain.Complaint
	Complaints     []domain.Complaint
	ValidationErr  bool
	NotFoundErr    bool
	DuplicateKeyOK bool
}

func runWorkload(t *testing.T, s *Session) transcript {
	t.Helper()
	ctx := context.Background()
	var tr transcript

	_, err := s.ContentEntries().UpsertByKey(ctx, "home", "hero_title", domain.ContentEntryPatch{Value: ptr("Welcome")})
	require.NoError(t, err)
	_, err = s.ContentEntries().UpsertByKey(ctx, "home", "hero_title", domain.ContentEntryPatch{Value: ptr("Akwaaba")})
	require.NoError(t, err)
	_, err = s.ContentEntries().Create(ctx, domain.ContentEntry{Section: "about", Key: "mission", Value: "Decent work"})
	require.NoError(t, err)

	_, err = s.ContentEntries().Create(ctx, domain.ContentEntry{Section: "about", Key: "mission", Value: "again"})
	tr.DuplicateKeyOK = err == nil

	tr.Entries, err = s.ContentEntries().List(ctx)
	require.NoError(t, err)

	tr.Complaint, err = s.Complaints().Create(ctx, domain.Complaint{
		ComplainantName: "Ama Mensah",
		ContactInfo:     "0244000000",
		ComplaintType:   "Unpaid Wages",
		Description:     "Three months unpaid",
	})
	require.NoError(t, err)

	tr.Updated, err = s.Complaints().Update(ctx, tr.Complaint.ID, domain.ComplaintPatch{
		Status:     ptr(domain.ComplaintStatusInvestigating),
		AssignedTo: ptr("Inspector Boateng"),
	})
	require.NoError(t, err)

	tr.Complaints, err = s.Complaints().List(ctx)
	require.NoError(t, err)

	_, err = s.Articles().Create(ctx, domain.Article{Body: "no title"})
	tr.ValidationErr = errors.Is(err, domain.ErrValidation)

	err = s.Messages().Delete(ctx, uuid.New())
	tr.NotFoundErr = errors.Is(err, domain.ErrNotFound)

	return tr
}

var ignoreGenerated = cmp.Options{
	cmpopts.IgnoreFields(domain.ContentEntry{}, "ID"),
	cmpopts.IgnoreFields(domain.Complaint{}, "ID", "CreatedAt", "UpdatedAt"),
}

func TestSession_ProviderTransparency(t *testing.T) {
	t.Parallel()

	fallback := runWorkload(t, openFallback(t, memory.Dataset{}))
	remote := runWorkload(t, openRemote(t, memory.Dataset{}))

	if diff := cmp.Diff(fallback, remote, ignoreGenerated); diff != "" {
		t.Errorf("fallback and remote sessions diverge (-fallback +remote):\n%s", diff)
	}
}

func TestSession_ProviderTransparency_SQLite(t *testing.T) {
	t.Parallel()

	fallback := runWorkload(t, openFallback(t, memory.Dataset{}))
	local := runWorkload(t, openSQLite(t))

	if diff := cmp.Diff(fallback, local, ignoreGenerated); diff != "" {
		t.Errorf("fallback and sqlite sessions diverge (-fallback +sqlite):\n%s", diff)
	}
}

func TestContentRepo_UpsertByKeyKeepsOneEntry(t *testing.T) {
	t.Parallel()

	s := openFallback(t, memory.Dataset{})
	ctx := context.Background()

	first, err := s.ContentEntries().UpsertByKey(ctx, "home", "hero_title", domain.ContentEntryPatch{Value: ptr("A")})
	require.NoError(t, err)
	second, err := s.ContentEntries().UpsertByKey(ctx, " home ", "hero_title", domain.ContentEntryPatch{Value: ptr("B")})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.ContentKindText, second.Kind)

	entries, err := s.ContentEntries().List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "B", entries[0].Value)
}

func TestContentRepo_UpsertByKeyValidation(t *testing.T) {
	t.Parallel()

	s := openFallback(t, memory.Dataset{})
	ctx := context.Background()

	tests := []struct {
		name         string
		section, key string
		patch        domain.ContentEntryPatch
	}{
		{"blank section", " ", "k", domain.ContentEntryPatch{Value: ptr("v")}},
		{"blank key", "s", "", domain.ContentEntryPatch{Value: ptr("v")}},
		{"moves key", "s", "k", domain.ContentEntryPatch{Key: ptr("other"), Value: ptr("v")}},
		{"empty patch", "s", "k", domain.ContentEntryPatch{}},
		{"bad kind", "s", "k", domain.ContentEntryPatch{Kind: ptr(domain.ContentKind("video"))}},
	}
	for _, tt := range tests {
		_, err := s.ContentEntries().UpsertByKey(ctx, tt.section, tt.key, tt.patch)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr, tt.name)
	}

	// Restating the addressed key is allowed.
	_, err := s.ContentEntries().UpsertByKey(ctx, "s", "k", domain.ContentEntryPatch{Section: ptr("s"), Key: ptr("k"), Value: ptr("v")})
	assert.NoError(t, err)
}

func TestContentRepo_UpsertByKeyDuplicateStoredEntries(t *testing.T) {
	t.Parallel()

	seed := memory.Dataset{
		domain.CollectionContentEntries: {
			{"id": uuid.NewString(), "section": "home", "key": "dup", "value": "1", "kind": "text"},
			{"id": uuid.NewString(), "section": "home", "key": "dup", "value": "2", "kind": "text"},
		},
	}
	s := openFallback(t, seed)

	_, err := s.ContentEntries().UpsertByKey(context.Background(), "home", "dup", domain.ContentEntryPatch{Value: ptr("3")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRepo_CreateAppliesDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	s := openFallback(t, memory.Dataset{}, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	c, err := s.Complaints().Create(ctx, domain.Complaint{
		ComplainantName: "Yaw",
		ContactInfo:     "yaw@example.org",
		ComplaintType:   "Safety",
		Description:     "No protective equipment",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, domain.ComplaintStatusPending, c.Status)
	assert.Equal(t, domain.ComplaintPriorityMedium, c.Priority)
	assert.True(t, c.CreatedAt.Equal(now))
	assert.Nil(t, c.AssignedTo)

	m, err := s.Messages().Create(ctx, domain.ContactMessage{
		Name: "Esi", Email: "esi@example.org", Subject: "Hours", Body: "Opening hours?",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MessageStatusUnread, m.Status)
	assert.Equal(t, domain.DefaultMessageCategory, m.Category)

	tm, err := s.Testimonials().Create(ctx, domain.Testimonial{Name: "Kojo", Body: "Helpful", Rating: 4})
	require.NoError(t, err)
	assert.False(t, tm.Approved)
}

func TestRepo_CreateValidation(t *testing.T) {
	t.Parallel()

	s := openFallback(t, memory.Dataset{})
	ctx := context.Background()

	_, err := s.Complaints().Create(ctx, domain.Complaint{ComplaintType: "Wages", Status: "lost"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]bool{}
	for _, fe := range verr.Errors {
		fields[fe.Field] = true
	}
	for _, want := range []string{"complainantName", "contactInfo", "description", "status"} {
		assert.True(t, fields[want], "missing field error for %s", want)
	}

	_, err = s.Testimonials().Create(ctx, domain.Testimonial{Name: "n", Body: "b", Rating: 6})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.Messages().Create(ctx, domain.ContactMessage{Name: "n", Email: "not-an-email", Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, err := s.Complaints().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "a rejected create must not reach the provider")
}

func TestRepo_UpdateRefreshesComplaintUpdatedAt(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	s := openFallback(t, memory.Dataset{}, WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	c, err := s.Complaints().Create(ctx, domain.Complaint{
		ComplainantName: "Yaw", ContactInfo: "0200000000", ComplaintType: "Safety", Description: "d",
		AssignedTo: ptr("Officer Asante"),
	})
	require.NoError(t, err)

	clock = clock.Add(2 * time.Hour)
	updated, err := s.Complaints().Update(ctx, c.ID, domain.ComplaintPatch{
		Status:     ptr(domain.ComplaintStatusResolved),
		AssignedTo: ptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ComplaintStatusResolved, updated.Status)
	assert.True(t, updated.UpdatedAt.Equal(clock), "updated_at = %v", updated.UpdatedAt)
	assert.True(t, updated.CreatedAt.Equal(c.CreatedAt), "created_at must not move")
	assert.Nil(t, updated.AssignedTo, "empty assignee clears the field")
}

func TestRepo_UpdateAndDeleteErrors(t *testing.T) {
	t.Parallel()

	s := openFallback(t, memory.Dataset{})
	ctx := context.Background()

	_, err := s.Articles().Update(ctx, uuid.New(), domain.ArticlePatch{Title: ptr("t")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.Articles().Update(ctx, uuid.New(), domain.ArticlePatch{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.Articles().Update(ctx, uuid.Nil, domain.ArticlePatch{Title: ptr("t")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.ErrorIs(t, s.Testimonials().Delete(ctx, uuid.New()), domain.ErrNotFound)
	assert.ErrorIs(t, s.Testimonials().Delete(ctx, uuid.Nil), domain.ErrValidation)

	a, err := s.Articles().Create(ctx, domain.Article{Title: "t", Body: "b"})
	require.NoError(t, err)
	require.NoError(t, s.Articles().Delete(ctx, a.ID))
	assert.ErrorIs(t, s.Articles().Delete(ctx, a.ID), domain.ErrNotFound, "delete is not idempotent")
}

func TestRepo_MalformedRecordIsProviderUnavailable(t *testing.T) {
	t.Parallel()

	seed := memory.Dataset{
		domain.CollectionTestimonials: {
			{"id": uuid.NewString(), "name": "n", "body": "b", "rating": "five", "created_at": time.Now()},
		},
	}
	s := openFallback(t, seed)

	_, err := s.Testimonials().List(context.Background())
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestRepo_FallbackReadYourWrites(t *testing.T) {
	t.Parallel()

	s := openFallback(t, memory.Dataset{})
	ctx := context.Background()

	created, err := s.Articles().Create(ctx, domain.Article{Title: "Wage order", Body: "b", Featured: true})
	require.NoError(t, err)

	list, err := s.Articles().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
	assert.Equal(t, domain.DefaultArticleCategory, list[0].Category)
}
