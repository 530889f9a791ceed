package locale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// CatalogStore supplies translation catalogs to Registry.Load. Stores
// enumerate the locales they carry and construct one catalog per locale and
// translation domain. Load failures for a single locale are non-fatal at the
// registry level.
type CatalogStore interface {
	// Locales enumerates the locale codes the store has catalogs for.
	Locales(ctx context.Context) ([]string, error)

	// Load constructs the catalog for one locale and domain.
	Load(ctx context.Context, code, domain string) (Catalog, error)
}

// DirStore reads catalogs from a locale directory tree, similar in spirit to
// the system locale layout:
//
//	{locale}/{domain}.json
//	{locale}/{domain}.yaml (or .yml)
//
// Each top-level directory names a locale; the file for the requested domain
// is parsed into a StaticCatalog. Works with any fs.FS, including embed.FS.
type DirStore struct {
	fsys fs.FS
}

// NewDirStore creates a store over the given filesystem.
func NewDirStore(fsys fs.FS) (*DirStore, error) {
	if fsys == nil {
		return nil, ErrNilStore
	}
	return &DirStore{fsys: fsys}, nil
}

// Locales returns the top-level directory names, sorted.
func (s *DirStore) Locales(_ context.Context) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("locale: reading store root: %w", err)
	}

	codes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			codes = append(codes, entry.Name())
		}
	}
	sort.Strings(codes)
	return codes, nil
}

// Load parses the first of {code}/{domain}.json, .yaml, or .yml that exists
// into a catalog. Returns ErrCatalogNotFound when the locale has no file for
// the domain.
func (s *DirStore) Load(_ context.Context, code, domain string) (Catalog, error) {
	for _, format := range catalogFormats {
		name := path.Join(code, domain+format.ext)

		data, err := fs.ReadFile(s.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("locale: reading %q: %w", name, err)
		}

		var entries map[string]any
		if err := format.unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidCatalogFile, name, err)
		}

		return NewStaticCatalog(entries)
	}

	return nil, fmt.Errorf("%w: %s/%s", ErrCatalogNotFound, code, domain)
}

var catalogFormats = []struct {
	ext       string
	unmarshal func([]byte, any) error
}{
	{".json", json.Unmarshal},
	{".yaml", yaml.Unmarshal},
	{".yml", yaml.Unmarshal},
}

// StaticStore serves pre-built catalogs from memory, keyed by locale code.
// Useful in tests and for applications that assemble catalogs in code.
type StaticStore map[string]Catalog

// Locales returns the store's locale codes, sorted.
func (s StaticStore) Locales(_ context.Context) ([]string, error) {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// Load returns the catalog registered for the code. The domain is ignored.
func (s StaticStore) Load(_ context.Context, code, _ string) (Catalog, error) {
	catalog, ok := s[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, code)
	}
	return catalog, nil
}
