package locale

// monthKeys and weekdayKeys are the source-language names translated through
// the catalog once per Locale. Weekdays are ISO ordered (Monday first).
var monthKeys = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayKeys = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Locale bundles a resolved locale code with display metadata, writing
// direction, and a bound translation catalog. It exposes all locale-aware
// operations: message translation, date formatting, list joining, and number
// formatting. A Locale is immutable after creation and safe for concurrent
// use; it never mutates its catalog.
type Locale struct {
	code        string
	displayName string
	englishName string
	rtl         bool
	catalog     Catalog
	conv        conventions
	months      [12]string
	weekdays    [7]string
}

// NewLocale creates a Locale for the given code bound to the given catalog.
// A nil catalog binds the identity NullCatalog, so translation degrades to
// returning messages unchanged. Month and weekday names are translated once
// here and reused by every formatting call.
func NewLocale(code string, catalog Catalog) *Locale {
	if catalog == nil {
		catalog = NullCatalog{}
	}

	native, english := displayNames(code)
	l := &Locale{
		code:        code,
		displayName: native,
		englishName: english,
		rtl:         isRTL(code),
		catalog:     catalog,
		conv:        conventionsFor(code),
	}

	for i, name := range monthKeys {
		l.months[i] = catalog.Lookup(name)
	}
	for i, name := range weekdayKeys {
		l.weekdays[i] = catalog.Lookup(name)
	}

	return l
}

// Code returns the locale code, e.g. "pt_BR".
func (l *Locale) Code() string { return l.code }

// DisplayName returns the locale's name in its own language.
func (l *Locale) DisplayName() string { return l.displayName }

// EnglishName returns the locale's name in English.
func (l *Locale) EnglishName() string { return l.englishName }

// RTL reports whether the locale's script is written right to left.
// The flag is presentation metadata only; formatting output is unaffected.
func (l *Locale) RTL() bool { return l.rtl }

// Translate returns the translation for the given message, or the message
// itself when the catalog has no translation for it.
func (l *Locale) Translate(message string) string {
	return l.catalog.Lookup(message)
}

// TranslatePlural returns the translation for a message with a plural form.
// The catalog selects the singular form when count == 1 and the plural form
// for any other count. Calling it without a count falls back to the plain
// singular lookup; the plural message is ignored.
func (l *Locale) TranslatePlural(message, pluralMessage string, count ...int) string {
	if len(count) == 0 {
		return l.catalog.Lookup(message)
	}
	return l.catalog.LookupPlural(message, pluralMessage, count[0])
}
