package locale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locale"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	catalog, err := locale.NewStaticCatalog(map[string]any{
		"Sign out": "Sair",
		"cat": map[string]any{
			"one":   "gato",
			"other": "gatos",
		},
	})
	require.NoError(t, err)
	loc := locale.NewLocale("pt_BR", catalog)

	t.Run("returns translation", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Sair", loc.Translate("Sign out"))
	})

	t.Run("returns message unchanged when untranslated", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Sign in", loc.Translate("Sign in"))
	})

	t.Run("count of one selects singular form", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, loc.Translate("cat"), loc.TranslatePlural("cat", "cats", 1))
	})

	t.Run("other counts select plural form", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "gatos", loc.TranslatePlural("cat", "cats", 5))
		require.Equal(t, "gatos", loc.TranslatePlural("cat", "cats", 0))
	})

	t.Run("plural message without count falls back to singular lookup", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "gato", loc.TranslatePlural("cat", "cats"))
	})

	t.Run("null catalog passes messages through", func(t *testing.T) {
		t.Parallel()
		identity := locale.NewLocale("fr_FR", nil)
		require.Equal(t, "Sign out", identity.Translate("Sign out"))
		require.Equal(t, "cat", identity.TranslatePlural("cat", "cats", 1))
		require.Equal(t, "cats", identity.TranslatePlural("cat", "cats", 5))
		require.Equal(t, "cat", identity.TranslatePlural("cat", "cats"))
	})
}

func TestLocaleMetadata(t *testing.T) {
	t.Parallel()

	t.Run("display names from the static table", func(t *testing.T) {
		t.Parallel()
		loc := locale.NewLocale("pt_BR", nil)
		require.Equal(t, "pt_BR", loc.Code())
		require.Equal(t, "Português (Brasil)", loc.DisplayName())
		require.Equal(t, "Portuguese (Brazil)", loc.EnglishName())
	})

	t.Run("falls back to CLDR names for codes outside the table", func(t *testing.T) {
		t.Parallel()
		loc := locale.NewLocale("it", nil)
		require.Equal(t, "Italian", loc.EnglishName())
		require.NotEmpty(t, loc.DisplayName())
		require.NotEqual(t, "Unknown", loc.DisplayName())
	})

	t.Run("unparseable codes are unknown", func(t *testing.T) {
		t.Parallel()
		loc := locale.NewLocale("!!!", nil)
		require.Equal(t, "Unknown", loc.DisplayName())
		require.Equal(t, "Unknown", loc.EnglishName())
	})

	t.Run("right-to-left flag by language prefix", func(t *testing.T) {
		t.Parallel()
		require.True(t, locale.NewLocale("fa_IR", nil).RTL())
		require.True(t, locale.NewLocale("ar_AR", nil).RTL())
		require.True(t, locale.NewLocale("he_IL", nil).RTL())
		require.False(t, locale.NewLocale("en_US", nil).RTL())
	})
}

func TestLocalizedNameArrays(t *testing.T) {
	t.Parallel()

	catalog, err := locale.NewStaticCatalog(map[string]any{
		"January":   "janeiro",
		"Wednesday": "quarta-feira",
	})
	require.NoError(t, err)
	loc := locale.NewLocale("pt_BR", catalog)

	// Name arrays are translated once at construction and reused.
	day := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC) // a Wednesday
	require.Equal(t, "quarta-feira, janeiro 3", loc.FormatDay(day))
}
