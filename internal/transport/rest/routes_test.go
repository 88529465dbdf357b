package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/memory"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/auth"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/gateway"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/service/analytics"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/service/site"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/transport/middleware"
)

const testSecret = "test-secret-at-least-32-chars-long!!"

type testAPI struct {
	handler http.Handler
	session *gateway.Session
	token   string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	log := discardLogger()
	s, err := gateway.Open(context.Background(), config.StoreConfig{},
		gateway.WithLogger(log), gateway.WithFallbackSeed(memory.Dataset{}))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	jwt := auth.NewJWTManager(testSecret, "test-issuer", time.Hour)
	token, _, err := jwt.IssueAdminToken("officer@labour.gov.gh")
	require.NoError(t, err)

	siteSvc := site.NewService(log, s.ContentEntries(), s.Articles(), s.Testimonials(), s.Complaints(), s.Messages())
	dashSvc := analytics.NewService(log, s.Complaints(), s.Messages(), s, time.UTC)

	mux := http.NewServeMux()
	Register(mux, Handlers{
		Health: NewHealthHandler(s, "test-version"),
		Public: NewPublicHandler(siteSvc, log),
		Admin: NewAdminHandler(AdminRepos{
			Content:      s.ContentEntries(),
			Upserter:     s.ContentEntries(),
			Articles:     s.Articles(),
			Testimonials: s.Testimonials(),
			Complaints:   s.Complaints(),
			Messages:     s.Messages(),
		}, s, "test-version", log),
		Dashboard: NewDashboardHandler(dashSvc, log),
		Auth:      NewAuthHandler(jwt, log),
	},
		func(next http.Handler) http.Handler { return next },
		middleware.Chain(middleware.Auth(jwt), middleware.RequireAdmin),
	)

	return &testAPI{handler: mux, session: s, token: token}
}

func (a *testAPI) do(t *testing.T, method, path string, body any, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeInto[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

func TestRoutes_SubmitComplaintThenAdminList(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/complaints", map[string]string{
		"complainantName": "Kwame",
		"contactInfo":     "0241234567",
		"complaintType":   "wage",
		"description":     "Salary arrears since March.",
	}, false)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	receipt := decodeInto[submissionReceipt](t, rec)
	assert.Equal(t, "pending", receipt.Status)

	rec = api.do(t, http.MethodGet, "/api/admin/complaints", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeInto[[]domain.Complaint](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, receipt.ID, list[0].ID.String())
	assert.Equal(t, domain.ComplaintPriorityMedium, list[0].Priority)
}

func TestRoutes_SubmitComplaintCannotSetStatus(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/complaints", map[string]string{
		"complainantName": "Kwame",
		"contactInfo":     "0241234567",
		"complaintType":   "wage",
		"description":     "Salary arrears.",
		"status":          "resolved",
	}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_SubmitMessageValidation(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/messages", map[string]string{
		"name":  "Efua",
		"email": "nope",
	}, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeInto[ErrorResponse](t, rec)
	fields := map[string]bool{}
	for _, f := range resp.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["subject"])
	assert.True(t, fields["body"])
}

func TestRoutes_AdminRequiresToken(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/admin/status", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	bad := httptest.NewRecorder()
	api.handler.ServeHTTP(bad, req)
	assert.Equal(t, http.StatusUnauthorized, bad.Code)

	rec = api.do(t, http.MethodGet, "/api/admin/status", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeInto[StatusResponse](t, rec)
	assert.True(t, status.FallbackMode)
	assert.Equal(t, memory.ProviderName, status.Provider)
	assert.NotEmpty(t, status.FallbackReason)
}

func TestRoutes_SessionAndRefresh(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/admin/session", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	sess := decodeInto[sessionResponse](t, rec)
	assert.Equal(t, "officer@labour.gov.gh", sess.Subject)
	assert.Equal(t, auth.RoleAdmin, sess.Role)

	rec = api.do(t, http.MethodPost, "/api/admin/session/refresh", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	tok := decodeInto[tokenResponse](t, rec)
	assert.NotEmpty(t, tok.AccessToken)
	assert.True(t, tok.ExpiresAt.After(time.Now()))
}

func TestRoutes_UpsertContentThenRead(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	for _, v := range []string{"Welcome", "Welcome to the Labour Department"} {
		rec := api.do(t, http.MethodPut, "/api/admin/content", map[string]string{
			"section": "hero",
			"key":     "title",
			"value":   v,
		}, true)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := api.do(t, http.MethodGet, "/api/content/hero", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"title": "Welcome to the Labour Department"},
		decodeInto[map[string]string](t, rec))

	rec = api.do(t, http.MethodGet, "/api/admin/content_entries", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeInto[[]domain.ContentEntry](t, rec), 1)

	rec = api.do(t, http.MethodPut, "/api/admin/content", map[string]string{"section": "hero"}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_AdminCRUD(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/admin/articles", map[string]any{
		"title":    "Minimum wage review",
		"body":     "The tripartite committee met.",
		"featured": true,
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeInto[domain.Article](t, rec)
	assert.Equal(t, domain.DefaultArticleCategory, created.Category)
	path := "/api/admin/articles/" + created.ID.String()

	rec = api.do(t, http.MethodPatch, path, map[string]string{"title": "Minimum wage review 2025"}, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Minimum wage review 2025", decodeInto[domain.Article](t, rec).Title)

	rec = api.do(t, http.MethodGet, "/api/articles?featured=5", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeInto[[]domain.Article](t, rec), 1)

	rec = api.do(t, http.MethodDelete, path, nil, true)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodDelete, path, nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodPatch, "/api/admin/articles/not-a-uuid", map[string]string{"title": "x"}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/admin/users", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_TestimonialsArePublishedOnlyWhenApproved(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/admin/testimonials", map[string]any{
		"name":   "Yaw",
		"body":   "The inspectors resolved my case quickly.",
		"rating": 5,
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeInto[domain.Testimonial](t, rec)

	rec = api.do(t, http.MethodGet, "/api/testimonials", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeInto[[]domain.Testimonial](t, rec))

	rec = api.do(t, http.MethodPatch, "/api/admin/testimonials/"+created.ID.String(),
		map[string]bool{"approved": true}, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/testimonials", nil, false)
	assert.Len(t, decodeInto[[]domain.Testimonial](t, rec), 1)
}

func TestRoutes_DashboardCategories(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	for _, kind := range []string{"wage", "safety", "wage"} {
		rec := api.do(t, http.MethodPost, "/api/complaints", map[string]string{
			"complainantName": "Abena",
			"contactInfo":     "0209999999",
			"complaintType":   kind,
			"description":     "details",
		}, false)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := api.do(t, http.MethodGet, "/api/admin/dashboard/categories", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	shares := decodeInto[[]domain.CategoryShare](t, rec)
	require.Len(t, shares, 2)
	assert.Equal(t, "wage", shares[0].Type)
	assert.Equal(t, 66.7, shares[0].Percentage)
	assert.Equal(t, 33.3, shares[1].Percentage)

	rec = api.do(t, http.MethodGet, "/api/admin/dashboard", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	dash := decodeInto[domain.Dashboard](t, rec)
	assert.True(t, dash.FallbackMode)
	assert.Equal(t, 3, dash.Totals.Complaints)
	assert.Len(t, dash.MonthlyTrend, 12)

	rec = api.do(t, http.MethodGet, "/api/admin/dashboard/activity", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeInto[[]domain.Activity](t, rec), 3)
}

func TestRoutes_DashboardTrendYear(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/admin/dashboard/trend?year=2024", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeInto[[]domain.MonthCount](t, rec), 12)

	rec = api.do(t, http.MethodGet, "/api/admin/dashboard/trend?year=abc", nil, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/admin/dashboard/trend?year=12", nil, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_PublicArticleQueries(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/articles?featured=0", nil, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/articles?featured=x", nil, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/articles?category=news", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
