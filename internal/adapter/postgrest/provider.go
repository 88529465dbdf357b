// Package postgrest implements the record store over a hosted PostgREST
// endpoint (the REST surface of a hosted Postgres backend).
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/auth"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/store"
)

// ProviderName is reported by Name.
const ProviderName = "postgrest"

const restPath = "/rest/v1"

// Provider talks to PostgREST over HTTP+JSON.
type Provider struct {
	baseURL    string
	readKey    string
	writeKey   string
	httpClient *http.Client
	log        *slog.Logger
	now        func() time.Time
}

// Dial builds a provider from configuration. It performs no network I/O.
func Dial(_ context.Context, cfg config.StoreConfig, logger *slog.Logger) (*Provider, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("postgrest: endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("postgrest: endpoint %q must be an http(s) URL", cfg.Endpoint)
	}
	return NewProvider(cfg.Endpoint, cfg.AnonKey, cfg.ServiceKey, cfg.Timeout, logger), nil
}

// NewProvider creates a Provider for a base URL. serviceKey may be empty;
// writes then use anonKey.
func NewProvider(endpoint, anonKey, serviceKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	base := strings.TrimRight(endpoint, "/")
	if !strings.HasSuffix(base, restPath) {
		base += restPath
	}

	p := &Provider{
		baseURL:    base,
		readKey:    anonKey,
		writeKey:   anonKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", ProviderName),
		now:        time.Now,
	}

	if serviceKey != "" {
		info := auth.InspectAPIKey(serviceKey)
		switch {
		case !info.Opaque && !info.IsServiceRole():
			p.log.Warn("service key does not carry the service_role role, writes use the public key",
				slog.String("role", info.Role))
		case info.Expired(p.now()):
			p.log.Warn("service key expired, writes use the public key",
				slog.Time("expired_at", info.ExpiresAt))
		default:
			p.writeKey = serviceKey
		}
	}
	return p
}

// Name identifies the provider.
func (p *Provider) Name() string { return ProviderName }

// Close drops idle keep-alive connections.
func (p *Provider) Close() error {
	p.httpClient.CloseIdleConnections()
	return nil
}

// Probe reads at most one content id. An expired public key fails without
// a request.
func (p *Provider) Probe(ctx context.Context) error {
	if info := auth.InspectAPIKey(p.readKey); info.Expired(p.now()) {
		return fmt.Errorf("postgrest: public key expired at %s: %w", info.ExpiresAt.Format(time.RFC3339), domain.ErrProviderUnavailable)
	}

	q := url.Values{}
	q.Set("select", store.ColID)
	q.Set("limit", "1")

	var rows []store.Record
	return p.do(ctx, http.MethodGet, "content_entries", q, nil, p.readKey, &rows)
}

// List returns every record in the collection's natural order.
func (p *Provider) List(ctx context.Context, c domain.Collection) ([]store.Record, error) {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", orderParam(schema))

	rows := []store.Record{}
	if err := p.do(ctx, http.MethodGet, schema.Table, q, nil, p.readKey, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts rec and returns the stored representation.
func (p *Provider) Create(ctx context.Context, c domain.Collection, rec store.Record) (store.Record, error) {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}
	if err := schema.CheckColumns(rec); err != nil {
		return nil, err
	}

	var rows []store.Record
	if err := p.do(ctx, http.MethodPost, schema.Table, nil, rec, p.writeKey, &rows); err != nil {
		return nil, err
	}
	if len(rows) != 1 {
		return nil, fmt.Errorf("postgrest: create %s: %d rows returned: %w", schema.Table, len(rows), domain.ErrProviderUnavailable)
	}
	return rows[0], nil
}

// Update patches the row with the given id.
func (p *Provider) Update(ctx context.Context, c domain.Collection, id uuid.UUID, patch store.Record) (store.Record, error) {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}
	if err := schema.CheckColumns(patch); err != nil {
		return nil, err
	}

	var rows []store.Record
	if err := p.do(ctx, http.MethodPatch, schema.Table, idFilter(id), patch, p.writeKey, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("postgrest: %s %s: %w", schema.Table, id, domain.ErrNotFound)
	}
	return rows[0], nil
}

// Delete removes the row with the given id.
func (p *Provider) Delete(ctx context.Context, c domain.Collection, id uuid.UUID) error {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return err
	}

	var rows []store.Record
	if err := p.do(ctx, http.MethodDelete, schema.Table, idFilter(id), nil, p.writeKey, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("postgrest: %s %s: %w", schema.Table, id, domain.ErrNotFound)
	}
	return nil
}

// UpsertByKey looks the key up and then patches or inserts. Two concurrent
// upserts of a new key race; the unique index turns the loser into a
// conflict.
func (p *Provider) UpsertByKey(ctx context.Context, c domain.Collection, match, patch store.Record) (store.Record, error) {
	schema, err := store.SchemaFor(c)
	if err != nil {
		return nil, err
	}
	if err := schema.CheckColumns(match); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("select", "*")
	for col, v := range match {
		q.Set(col, "eq."+fmt.Sprint(v))
	}

	var rows []store.Record
	if err := p.do(ctx, http.MethodGet, schema.Table, q, nil, p.readKey, &rows); err != nil {
		return nil, err
	}

	switch len(rows) {
	case 0:
		return p.Create(ctx, c, match.Merge(patch))
	case 1:
		id, err := rows[0].UUID(store.ColID)
		if err != nil {
			return nil, fmt.Errorf("postgrest: %s: %v: %w", schema.Table, err, domain.ErrProviderUnavailable)
		}
		return p.Update(ctx, c, id, patch)
	default:
		return nil, fmt.Errorf("postgrest: %s: %d rows match: %w", schema.Table, len(rows), domain.ErrConflict)
	}
}

// do sends one request and decodes the JSON array response into out.
func (p *Provider) do(ctx context.Context, method, table string, q url.Values, body store.Record, key string, out *[]store.Record) error {
	reqURL := p.baseURL + "/" + url.PathEscape(table)
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("postgrest: encode %s: %v: %w", table, err, domain.ErrValidation)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, payload)
	if err != nil {
		return fmt.Errorf("postgrest: create request: %w", err)
	}
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	p.log.DebugContext(ctx, "postgrest request", slog.String("method", method), slog.String("table", table))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("postgrest: %s %s: %w", method, table, ctx.Err())
		}
		return fmt.Errorf("postgrest: %s %s: %v: %w", method, table, err, domain.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("postgrest: read body: %v: %w", err, domain.ErrProviderUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		mapped := mapError(resp.StatusCode, raw)
		p.log.WarnContext(ctx, "postgrest request failed",
			slog.String("method", method),
			slog.String("table", table),
			slog.Int("status", resp.StatusCode),
			slog.String("error", mapped.Error()),
		)
		return fmt.Errorf("postgrest: %s %s: %w", method, table, mapped)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("postgrest: decode %s: %v: %w", table, err, domain.ErrProviderUnavailable)
	}
	return nil
}

func idFilter(id uuid.UUID) url.Values {
	q := url.Values{}
	q.Set(store.ColID, "eq."+id.String())
	return q
}

// orderParam renders the natural order, e.g. "section.asc,key.asc".
func orderParam(schema store.Schema) string {
	parts := make([]string, len(schema.Order))
	for i, o := range schema.Order {
		dir := "asc"
		if o.Desc {
			dir = "desc"
		}
		parts[i] = o.Column + "." + dir
	}
	return strings.Join(parts, ",")
}
