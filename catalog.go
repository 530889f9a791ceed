package locale

import "fmt"

// Catalog resolves message keys to translated strings for a single locale.
// Messages are identified by their source-language phrasing, so an
// untranslated message passes through unchanged.
type Catalog interface {
	// Lookup returns the translation for message, or message itself when no
	// translation exists.
	Lookup(message string) string

	// LookupPlural returns the singular translation when count == 1 and the
	// plural translation for any other count.
	LookupPlural(singular, plural string, count int) string
}

// NullCatalog is the identity catalog. It is bound to any locale that is
// supported by name only and carries no translations: every lookup returns
// its input, and plural selection picks between the two given forms by count.
type NullCatalog struct{}

func (NullCatalog) Lookup(message string) string { return message }

func (NullCatalog) LookupPlural(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}
	return plural
}

// pluralForms holds the two forms of a pluralized message.
type pluralForms struct {
	one   string
	other string
}

// StaticCatalog is a Catalog backed by an in-memory message map.
// It is immutable after creation and safe for concurrent use.
type StaticCatalog struct {
	messages map[string]string
	plurals  map[string]pluralForms
}

// NewStaticCatalog builds a catalog from a message map. String values are
// plain translations. A map value whose keys are only "one" and "other"
// describes a pluralized message keyed under the singular source message;
// any other map is a nested section flattened into dot-separated keys:
//
//	catalog, err := locale.NewStaticCatalog(map[string]any{
//		"Sign out": "Sair",
//		"1 minute ago": map[string]any{
//			"one":   "há 1 minuto",
//			"other": "há {{minutes}} minutos",
//		},
//		"menu": map[string]any{ // reachable as "menu.signout"
//			"signout": "Sair",
//		},
//	})
func NewStaticCatalog(entries map[string]any) (*StaticCatalog, error) {
	c := &StaticCatalog{
		messages: make(map[string]string, len(entries)),
		plurals:  make(map[string]pluralForms),
	}
	if err := c.addEntries("", entries); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *StaticCatalog) addEntries(prefix string, entries map[string]any) error {
	for key, value := range entries {
		if prefix != "" {
			key = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			c.messages[key] = v
		case map[string]string:
			nested := make(map[string]any, len(v))
			for k, text := range v {
				nested[k] = text
			}
			if err := c.addNested(key, nested); err != nil {
				return err
			}
		case map[string]any:
			if err := c.addNested(key, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q must be a string or a map", ErrInvalidCatalogEntry, key)
		}
	}
	return nil
}

func (c *StaticCatalog) addNested(key string, value map[string]any) error {
	if isPluralMap(value) {
		forms, err := parsePluralForms(key, value)
		if err != nil {
			return err
		}
		c.plurals[key] = forms
		return nil
	}
	return c.addEntries(key, value)
}

// isPluralMap reports whether a map value is a plural-forms pair rather than
// a nested section.
func isPluralMap(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for form := range m {
		if form != "one" && form != "other" {
			return false
		}
	}
	return true
}

// Lookup returns the translation for message. A pluralized entry resolves to
// its singular form, mirroring how gettext treats a plural msgid looked up
// without a count.
func (c *StaticCatalog) Lookup(message string) string {
	if text, ok := c.messages[message]; ok {
		return text
	}
	if forms, ok := c.plurals[message]; ok {
		return forms.one
	}
	return message
}

// LookupPlural selects the translated form for count. When the catalog has no
// pluralized entry for the singular message, it degrades to plain lookups of
// whichever source form the count selects.
func (c *StaticCatalog) LookupPlural(singular, plural string, count int) string {
	if forms, ok := c.plurals[singular]; ok {
		if count == 1 {
			return forms.one
		}
		return forms.other
	}
	if count == 1 {
		return c.Lookup(singular)
	}
	return c.Lookup(plural)
}

func parsePluralForms(key string, forms map[string]any) (pluralForms, error) {
	var pf pluralForms

	for form, value := range forms {
		text, ok := value.(string)
		if !ok {
			return pf, fmt.Errorf("%w: plural form %q of %q must be a string", ErrInvalidCatalogEntry, form, key)
		}
		if form == "one" {
			pf.one = text
		} else {
			pf.other = text
		}
	}

	if pf.one == "" && pf.other == "" {
		return pf, fmt.Errorf("%w: %q has no plural forms", ErrInvalidCatalogEntry, key)
	}
	// A missing form falls back to its counterpart so partial entries stay usable.
	if pf.one == "" {
		pf.one = pf.other
	}
	if pf.other == "" {
		pf.other = pf.one
	}

	return pf, nil
}
