package locale_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/locale"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"pt_BR/messages.json": &fstest.MapFile{
			Data: []byte(`{"Sign out":"Sair","cat":{"one":"gato","other":"gatos"}}`),
		},
		"es_ES/messages.yaml": &fstest.MapFile{
			Data: []byte("Sign out: Cerrar sesión\n"),
		},
		"de_DE/messages.yml": &fstest.MapFile{
			Data: []byte("Sign out: Abmelden\n"),
		},
		"it_IT/messages.json": &fstest.MapFile{
			Data: []byte(`{"Sign out":"Esci","menu":{"signout":"Esci","items":{"one":"1 elemento","other":"elementi"}}}`),
		},
		"broken/messages.json": &fstest.MapFile{
			Data: []byte(`{not json`),
		},
		"fr_FR/other.json": &fstest.MapFile{
			Data: []byte(`{"Sign out":"Se déconnecter"}`),
		},
	}
}

func TestNewDirStore(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil filesystem", func(t *testing.T) {
		t.Parallel()
		_, err := locale.NewDirStore(nil)
		require.ErrorIs(t, err, locale.ErrNilStore)
	})
}

func TestDirStoreLocales(t *testing.T) {
	t.Parallel()

	store, err := locale.NewDirStore(testFS())
	require.NoError(t, err)

	codes, err := store.Locales(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"broken", "de_DE", "es_ES", "fr_FR", "it_IT", "pt_BR"}, codes)
}

func TestDirStoreLoad(t *testing.T) {
	t.Parallel()

	store, err := locale.NewDirStore(testFS())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("loads JSON catalogs", func(t *testing.T) {
		t.Parallel()
		catalog, err := store.Load(ctx, "pt_BR", "messages")
		require.NoError(t, err)
		require.Equal(t, "Sair", catalog.Lookup("Sign out"))
		require.Equal(t, "gatos", catalog.LookupPlural("cat", "cats", 5))
	})

	t.Run("loads YAML catalogs", func(t *testing.T) {
		t.Parallel()
		catalog, err := store.Load(ctx, "es_ES", "messages")
		require.NoError(t, err)
		require.Equal(t, "Cerrar sesión", catalog.Lookup("Sign out"))
	})

	t.Run("loads .yml catalogs", func(t *testing.T) {
		t.Parallel()
		catalog, err := store.Load(ctx, "de_DE", "messages")
		require.NoError(t, err)
		require.Equal(t, "Abmelden", catalog.Lookup("Sign out"))
	})

	t.Run("flattens nested sections to dot keys", func(t *testing.T) {
		t.Parallel()
		catalog, err := store.Load(ctx, "it_IT", "messages")
		require.NoError(t, err)
		require.Equal(t, "Esci", catalog.Lookup("menu.signout"))
		require.Equal(t, "1 elemento", catalog.LookupPlural("menu.items", "items", 1))
	})

	t.Run("returns not-found for a missing domain file", func(t *testing.T) {
		t.Parallel()
		_, err := store.Load(ctx, "fr_FR", "messages")
		require.ErrorIs(t, err, locale.ErrCatalogNotFound)
	})

	t.Run("returns invalid-file for unparseable catalogs", func(t *testing.T) {
		t.Parallel()
		_, err := store.Load(ctx, "broken", "messages")
		require.ErrorIs(t, err, locale.ErrInvalidCatalogFile)
	})
}

func TestStaticStore(t *testing.T) {
	t.Parallel()

	store := locale.StaticStore{
		"pt_BR": locale.NullCatalog{},
		"es_ES": locale.NullCatalog{},
	}
	ctx := context.Background()

	t.Run("enumerates sorted locale codes", func(t *testing.T) {
		t.Parallel()
		codes, err := store.Locales(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"es_ES", "pt_BR"}, codes)
	})

	t.Run("loads registered catalogs", func(t *testing.T) {
		t.Parallel()
		catalog, err := store.Load(ctx, "pt_BR", "messages")
		require.NoError(t, err)
		require.NotNil(t, catalog)
	})

	t.Run("returns not-found for unknown codes", func(t *testing.T) {
		t.Parallel()
		_, err := store.Load(ctx, "fr_FR", "messages")
		require.ErrorIs(t, err, locale.ErrCatalogNotFound)
	})
}

func TestLoadFromDirStore(t *testing.T) {
	t.Parallel()

	store, err := locale.NewDirStore(testFS())
	require.NoError(t, err)

	registry, err := locale.New()
	require.NoError(t, err)
	require.NoError(t, registry.Load(context.Background(), store, "messages"))

	// The broken and domain-less locales are skipped; the rest load.
	require.Equal(t, []string{"de_DE", "en_US", "es_ES", "it_IT", "pt_BR"}, registry.SupportedLocales())
	require.Equal(t, "Sair", registry.Resolve("pt-BR", "en").Translate("Sign out"))
	require.Equal(t, "gatos", registry.Resolve("pt_BR").TranslatePlural("cat", "cats", 3))
}
