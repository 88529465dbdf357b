// Package gateway selects the record store for a session and exposes typed
// repositories over it.
//
// Selection happens once, in Open: an unconfigured or placeholder endpoint
// selects the fallback dataset without any network attempt; otherwise the
// configured remote store is dialed and probed once, and any failure there
// also selects the fallback. The choice holds until Close.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/adapter/memory"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/store"
)

const defaultTimeout = 8 * time.Second

// Session is one selection of a record store.
type Session struct {
	provider store.Provider
	fallback bool
	reason   string
	timeout  time.Duration
	now      func() time.Time
	log      *slog.Logger

	content      *ContentRepo
	articles     *Repo[domain.Article, domain.ArticlePatch]
	testimonials *Repo[domain.Testimonial, domain.TestimonialPatch]
	complaints   *Repo[domain.Complaint, domain.ComplaintPatch]
	messages     *Repo[domain.ContactMessage, domain.ContactMessagePatch]
}

type options struct {
	log     *slog.Logger
	dialers map[string]Dialer
	seed    memory.Dataset
	seedSet bool
	now     func() time.Time
}

// Option configures Open.
type Option func(*options)

// WithLogger sets the session logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithDialer replaces the dialer of one driver.
func WithDialer(driver string, d Dialer) Option {
	return func(o *options) { o.dialers[driver] = d }
}

// WithFallbackSeed replaces the fallback dataset. An empty Dataset starts
// every collection empty.
func WithFallbackSeed(seed memory.Dataset) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Open selects the record store for a new session. Selection failures are
// never returned: they are logged and turn the session into fallback mode.
// Open fails only when no dialer exists for the driver or the fallback
// dataset cannot be loaded.
func Open(ctx context.Context, cfg config.StoreConfig, opts ...Option) (*Session, error) {
	o := options{
		log:     slog.Default(),
		dialers: DefaultDialers(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	log := o.log.With("component", "gateway")
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	s := &Session{
		timeout: timeout,
		now:     o.now,
		log:     log,
	}

	if reason := unconfiguredReason(cfg); reason != "" {
		log.InfoContext(ctx, "remote store not configured, serving fallback dataset",
			slog.String("driver", cfg.Driver),
			slog.String("reason", reason),
		)
		return s.useFallback(cfg, o, reason)
	}

	dial, ok := o.dialers[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("gateway: no dialer for driver %q", cfg.Driver)
	}
	if IsPlaceholder(cfg.ServiceKey) {
		cfg.ServiceKey = ""
	}

	provider, err := s.connect(ctx, cfg, dial)
	if err != nil {
		log.WarnContext(ctx, "remote store unreachable, serving fallback dataset",
			slog.String("driver", cfg.Driver),
			slog.String("error", err.Error()),
		)
		return s.useFallback(cfg, o, err.Error())
	}

	log.InfoContext(ctx, "remote store selected",
		slog.String("driver", cfg.Driver),
		slog.String("provider", provider.Name()),
	)
	s.bind(provider)
	return s, nil
}

// connect dials and probes once under a single timeout.
func (s *Session) connect(ctx context.Context, cfg config.StoreConfig, dial Dialer) (store.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	provider, err := dial(ctx, cfg, s.log)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.Driver, err)
	}
	if err := provider.Probe(ctx); err != nil {
		if cerr := provider.Close(); cerr != nil {
			s.log.Warn("close after failed probe", slog.String("error", cerr.Error()))
		}
		return nil, fmt.Errorf("probe %s: %w", provider.Name(), err)
	}
	return provider, nil
}

func (s *Session) useFallback(cfg config.StoreConfig, o options, reason string) (*Session, error) {
	seed := o.seed
	if !o.seedSet {
		var err error
		if cfg.SeedPath != "" {
			seed, err = memory.LoadSeedFile(cfg.SeedPath, o.now())
		} else {
			seed, err = memory.DefaultSeed(o.now())
		}
		if err != nil {
			return nil, fmt.Errorf("gateway: fallback dataset: %w", err)
		}
	}

	s.fallback = true
	s.reason = reason
	s.bind(memory.New(seed, memory.WithClock(o.now)))
	return s, nil
}

func (s *Session) bind(p store.Provider) {
	s.provider = p
	s.content = &ContentRepo{Repo: newRepo(s, contentCodec)}
	s.articles = newRepo(s, articleCodec)
	s.testimonials = newRepo(s, testimonialCodec)
	s.complaints = newRepo(s, complaintCodec)
	s.messages = newRepo(s, messageCodec)
}

// callContext bounds one provider call by the configured timeout.
func (s *Session) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// IsFallbackMode reports whether the session serves the fallback dataset.
func (s *Session) IsFallbackMode() bool { return s.fallback }

// FallbackReason explains why fallback mode was selected; "" when remote.
func (s *Session) FallbackReason() string { return s.reason }

// ProviderName names the selected provider.
func (s *Session) ProviderName() string { return s.provider.Name() }

// Now returns the session clock's current time.
func (s *Session) Now() time.Time { return s.now() }

// Close releases the selected provider.
func (s *Session) Close() error {
	if err := s.provider.Close(); err != nil {
		return fmt.Errorf("gateway: close %s: %w", s.provider.Name(), err)
	}
	return nil
}

// ContentEntries returns the content repository.
func (s *Session) ContentEntries() *ContentRepo { return s.content }

// Articles returns the article repository.
func (s *Session) Articles() *Repo[domain.Article, domain.ArticlePatch] { return s.articles }

// Testimonials returns the testimonial repository.
func (s *Session) Testimonials() *Repo[domain.Testimonial, domain.TestimonialPatch] {
	return s.testimonials
}

// Complaints returns the complaint repository.
func (s *Session) Complaints() *Repo[domain.Complaint, domain.ComplaintPatch] { return s.complaints }

// Messages returns the contact message repository.
func (s *Session) Messages() *Repo[domain.ContactMessage, domain.ContactMessagePatch] {
	return s.messages
}
