package locale

import "errors"

var (
	ErrEmptyLocaleCode     = errors.New("locale: code cannot be empty")
	ErrMalformedLocaleCode = errors.New("locale: malformed code")
	ErrNilCatalog          = errors.New("locale: catalog cannot be nil")
	ErrNilLogger           = errors.New("locale: logger cannot be nil")
	ErrNilStore            = errors.New("locale: store cannot be nil")
	ErrInvalidCatalogEntry = errors.New("locale: invalid catalog entry")
	ErrInvalidCatalogFile  = errors.New("locale: invalid catalog file")
	ErrCatalogNotFound     = errors.New("locale: no catalog for locale")
)
