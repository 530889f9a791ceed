package locale

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultLocale is the default locale code used when none is configured.
// The default locale is assumed to be the language the system's source
// messages are written in, so it needs no catalog of its own.
const DefaultLocale = "en_US"

// Registry holds the set of supported locales, their translation catalogs,
// and the configured default. All state lives in an immutable snapshot
// swapped atomically on mutation, so reads stay consistent during concurrent
// reloads without locking.
type Registry struct {
	logger *slog.Logger
	mu     sync.Mutex // serializes snapshot rebuilds
	active atomic.Pointer[snapshot]
}

// snapshot is one immutable generation of registry state. Locales are built
// eagerly so resolution never allocates.
type snapshot struct {
	defaultCode string
	catalogs    map[string]Catalog
	locales     map[string]*Locale
	supported   map[string]struct{}
	codes       []string // sorted supported codes
}

type registryConfig struct {
	defaultCode string
	catalogs    map[string]Catalog
	logger      *slog.Logger
}

// Option configures a Registry during construction.
type Option func(*registryConfig) error

// New creates a Registry with the given options. Without options the registry
// supports only DefaultLocale, bound to the identity catalog.
func New(opts ...Option) (*Registry, error) {
	cfg := registryConfig{
		defaultCode: DefaultLocale,
		catalogs:    make(map[string]Catalog),
		logger:      newNopeLogger(),
	}

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	r := &Registry{logger: cfg.logger}
	r.active.Store(buildSnapshot(cfg.defaultCode, cfg.catalogs))
	return r, nil
}

// WithDefaultLocale sets the default locale code. The code is canonicalized
// and is always part of the supported set.
func WithDefaultLocale(code string) Option {
	return func(cfg *registryConfig) error {
		canonical, err := canonicalizeCode(code)
		if err != nil {
			return err
		}
		cfg.defaultCode = canonical
		return nil
	}
}

// WithCatalog registers a translation catalog for a locale code, marking the
// locale as supported.
func WithCatalog(code string, catalog Catalog) Option {
	return func(cfg *registryConfig) error {
		canonical, err := canonicalizeCode(code)
		if err != nil {
			return err
		}
		if catalog == nil {
			return fmt.Errorf("%w: %s", ErrNilCatalog, canonical)
		}
		cfg.catalogs[canonical] = catalog
		return nil
	}
}

// WithLogger sets the logger used for catalog load diagnostics.
// Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *registryConfig) error {
		if logger == nil {
			return ErrNilLogger
		}
		cfg.logger = logger
		return nil
	}
}

// Load replaces the registry's catalogs with those of the given store,
// querying it for every locale it enumerates. Per-locale failures are logged
// and that locale skipped; the supported set becomes the loaded locales plus
// the default. Load returns an error only when enumeration fails or the
// context is canceled, in which case the current state is kept.
func (r *Registry) Load(ctx context.Context, store CatalogStore, domain string) error {
	if store == nil {
		return ErrNilStore
	}

	codes, err := store.Locales(ctx)
	if err != nil {
		return fmt.Errorf("locale: enumerating store locales: %w", err)
	}

	var (
		loadMu   sync.Mutex
		catalogs = make(map[string]Catalog, len(codes))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, code := range codes {
		code := code
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			canonical, err := canonicalizeCode(code)
			if err != nil {
				r.logger.WarnContext(ctx, "skipping locale with malformed code",
					slog.String("code", code), slog.Any("error", err))
				return nil
			}

			catalog, err := store.Load(ctx, code, domain)
			if err != nil {
				r.logger.WarnContext(ctx, "cannot load translation catalog",
					slog.String("locale", code), slog.String("domain", domain), slog.Any("error", err))
				return nil
			}

			loadMu.Lock()
			catalogs[canonical] = catalog
			loadMu.Unlock()
			return nil
		})
	}
	// Per-locale load errors are logged and skipped; only cancellation fails.
	if err := g.Wait(); err != nil {
		return fmt.Errorf("locale: loading catalogs: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	snap := buildSnapshot(r.active.Load().defaultCode, catalogs)
	r.active.Store(snap)

	r.logger.InfoContext(ctx, "loaded translation catalogs",
		slog.String("domain", domain), slog.Any("supported", snap.codes))
	return nil
}

// SetDefault changes the default locale and recomputes the supported set so
// the invariant "default is always supported" holds.
func (r *Registry) SetDefault(code string) error {
	canonical, err := canonicalizeCode(code)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.active.Store(buildSnapshot(canonical, r.active.Load().catalogs))
	return nil
}

// DefaultLocaleCode returns the configured default locale code.
func (r *Registry) DefaultLocaleCode() string {
	return r.active.Load().defaultCode
}

// SupportedLocales returns the sorted list of supported locale codes.
func (r *Registry) SupportedLocales() []string {
	codes := r.active.Load().codes
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// Catalog returns the translation catalog bound to the given code, or the
// identity NullCatalog when the locale has no catalog. The code is
// canonicalized first, so "pt-BR" finds the catalog registered for "pt_BR".
func (r *Registry) Catalog(code string) Catalog {
	canonical, err := canonicalizeCode(code)
	if err != nil {
		return NullCatalog{}
	}
	if catalog, ok := r.active.Load().catalogs[canonical]; ok {
		return catalog
	}
	return NullCatalog{}
}

// ClosestMatch resolves an ordered list of candidate codes to the single
// best-supported locale code. Candidates are tried in order; for each, the
// whole normalized code is matched before falling back to its bare language.
// When nothing matches, the default code is returned.
func (r *Registry) ClosestMatch(candidates ...string) string {
	return r.active.Load().closestMatch(candidates)
}

// Resolve returns the Locale for the closest supported match of the given
// candidate codes, falling back to the default locale. The result is always
// usable: unsupported preferences degrade to supported ones, never to nil.
func (r *Registry) Resolve(candidates ...string) *Locale {
	snap := r.active.Load()
	return snap.locales[snap.closestMatch(candidates)]
}

// Get returns the Locale for the given code. A code outside the supported
// set yields a Locale bound to the identity catalog, so translation returns
// messages unchanged rather than failing.
func (r *Registry) Get(code string) *Locale {
	if l, ok := r.active.Load().locales[code]; ok {
		return l
	}
	return NewLocale(code, NullCatalog{})
}

func buildSnapshot(defaultCode string, catalogs map[string]Catalog) *snapshot {
	snap := &snapshot{
		defaultCode: defaultCode,
		catalogs:    catalogs,
		locales:     make(map[string]*Locale, len(catalogs)+1),
		supported:   make(map[string]struct{}, len(catalogs)+1),
	}

	for code := range catalogs {
		snap.supported[code] = struct{}{}
	}
	snap.supported[defaultCode] = struct{}{}

	snap.codes = make([]string, 0, len(snap.supported))
	for code := range snap.supported {
		catalog, ok := catalogs[code]
		if !ok {
			catalog = NullCatalog{}
		}
		snap.locales[code] = NewLocale(code, catalog)
		snap.codes = append(snap.codes, code)
	}
	sort.Strings(snap.codes)

	return snap
}

// newNopeLogger creates a no-op logger used when logging is not configured.
func newNopeLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
