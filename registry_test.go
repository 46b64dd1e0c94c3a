package verbalizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolveParents(t *testing.T) {
	registry := NewRegistry()
	registry.Register("sw", fakeFactory)

	for _, locale := range []string{"sw", "sw-KE", "sw_tz", " SW "} {
		resolved, factory, err := registry.Resolve(locale)
		require.NoError(t, err, locale)
		assert.Equal(t, "sw", resolved, locale)
		assert.NotNil(t, factory, locale)
	}
}

func TestRegistryUnsupportedLocale(t *testing.T) {
	registry := NewRegistry()
	registry.Register("sw", fakeFactory)

	for _, locale := range []string{"fr", "", "en-US"} {
		_, _, err := registry.Resolve(locale)
		assert.ErrorIs(t, err, ErrUnsupportedLocale, locale)
	}
	_, err := registry.Build("fr", VariantOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestRegistryExplicitFallback(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("lg", "sw-KE")

	registry := NewRegistry(WithRegistryResolver(resolver))
	registry.Register("sw", fakeFactory)

	resolved, _, err := registry.Resolve("lg")
	require.NoError(t, err)
	assert.Equal(t, "sw", resolved)
}

func TestRegistryBuildCachesVariants(t *testing.T) {
	calls := 0
	factory := func(locale string, opts VariantOptions) (Verbalizer, error) {
		calls++
		return newFakeVariant(locale), nil
	}

	registry := NewRegistry()
	registry.Register("sw", factory)

	first, err := registry.Build("sw-KE", VariantOptions{})
	require.NoError(t, err)
	second, err := registry.Build("sw", VariantOptions{})
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "sw", first.Locale())

	_, err = registry.Build("sw", VariantOptions{ScaledSubunits: true})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "options key the cache")

	registry.Register("sw", factory)
	_, err = registry.Build("sw", VariantOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "Register resets the cache")
}

func TestRegistryBuildFactoryError(t *testing.T) {
	boom := errors.New("boom")

	registry := NewRegistry()
	registry.Register("sw", func(string, VariantOptions) (Verbalizer, error) {
		return nil, boom
	})
	registry.Register("yo", func(string, VariantOptions) (Verbalizer, error) {
		return nil, nil
	})

	_, err := registry.Build("sw", VariantOptions{})
	assert.ErrorIs(t, err, boom)
	_, err = registry.Build("yo", VariantOptions{})
	assert.ErrorIs(t, err, errNilVariant)
}

func TestRegistryLocales(t *testing.T) {
	registry := NewRegistry()
	registry.Register("sw_KE", fakeFactory)
	registry.Register("sw", fakeFactory)
	registry.Register("", fakeFactory)
	registry.Register("yo", nil)

	assert.Equal(t, []string{"sw", "sw-KE"}, registry.Locales())
}

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("sw_KE", "sw", "sw-KE", "", "en")

	got := resolver.Resolve("sw-KE")
	assert.Equal(t, []string{"sw", "en"}, got)

	got[0] = "mutated"
	assert.Equal(t, "sw", resolver.Resolve("sw-KE")[0], "Resolve returns a copy")

	assert.Nil(t, resolver.Resolve("fr"))

	var nilResolver *StaticFallbackResolver
	assert.Nil(t, nilResolver.Resolve("sw"))
}
