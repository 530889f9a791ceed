// Package locale selects the best-matching locale from a caller's ranked
// preferences and exposes locale-aware operations: message translation with
// plural-form selection, human-friendly relative and absolute date
// formatting, idiomatic list joining, and digit-grouped number formatting.
//
// # Basic Usage
//
// Create a registry, load catalogs, and resolve a locale per request:
//
//	registry, err := locale.New(locale.WithDefaultLocale("en_US"))
//	if err != nil {
//		return err
//	}
//
//	store, _ := locale.NewDirStore(os.DirFS("translations"))
//	if err := registry.Load(ctx, store, "messages"); err != nil {
//		return err
//	}
//
//	userLocale := registry.Resolve("pt-BR", "pt", "en")
//	fmt.Println(userLocale.Translate("Sign out"))
//
// Resolve returns the closest supported match, not necessarily the exact
// locale requested: "pt-BR" matches a supported "pt_BR", and a candidate's
// bare language ("pt") is tried before moving to the next preference. When
// nothing matches, the default locale is returned, so the result is always
// usable.
//
// # Translation and Pluralization
//
// Translation looks messages up by their source-language phrasing; a message
// without a translation passes through unchanged. Plural selection picks the
// singular form when the count is 1 and the plural form otherwise:
//
//	msg := userLocale.TranslatePlural("1 new message", "{{count}} new messages", n)
//
// # Date Formatting
//
// FormatDate renders recent timestamps as elapsed time and older ones as
// progressively more absolute dates:
//
//	userLocale.FormatDate(t)                      // "3 minutes ago", "yesterday at 5:00 pm", ...
//	userLocale.FormatDate(t, locale.Absolute())   // "5:00 pm", "Monday at 9:00 am"
//	userLocale.FormatDate(t, locale.Shorter())    // drops the time of day
//	userLocale.FormatDate(t, locale.FullFormat()) // "July 10, 1980 at 5:00 pm"
//	userLocale.FormatDay(t)                       // "Monday, January 22"
//
// Time of day follows the locale's clock convention: 12-hour with am/pm for
// en/en_US, a half-day marker with 12-hour time for zh_CN, and 24-hour
// everywhere else. Russian locales always format absolute dates.
//
// # Lists and Numbers
//
//	userLocale.List([]string{"A", "B", "C"}) // "A, B and C"
//	userLocale.FriendlyNumber(1234567)       // "1,234,567" under en_US
//
// # Catalog Stores
//
// Registry.Load queries a CatalogStore for every locale it enumerates.
// DirStore reads {locale}/{domain}.json or .yaml trees from any fs.FS
// (including embed.FS); StaticStore serves catalogs assembled in code.
// A locale whose catalog fails to load is logged and skipped; the load as a
// whole still succeeds.
//
// # Concurrency
//
// Registry state lives in an immutable snapshot swapped atomically on Load
// and SetDefault, so resolution and formatting are safe during concurrent
// reloads without locking. Locale values are immutable after construction.
package locale
