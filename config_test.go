package verbalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(
		WithVariant("sw", fakeFactory),
	)
	require.NoError(t, err)

	assert.Equal(t, "sw", cfg.DefaultLocale)
	assert.NotNil(t, cfg.Registry)
	assert.NotNil(t, cfg.Resolver)

	n, err := cfg.BuildNormalizer("")
	require.NoError(t, err)
	assert.Equal(t, "sw", n.Locale())
}

func TestNewConfigRejectsIncompleteVariant(t *testing.T) {
	_, err := NewConfig(WithVariant("", fakeFactory))
	assert.Error(t, err, "empty locale")

	_, err = NewConfig(WithVariant("sw", nil))
	assert.Error(t, err, "nil factory")
}

func TestConfigDefaultLocaleIsNormalized(t *testing.T) {
	cfg, err := NewConfig(
		WithVariant("sw", fakeFactory),
		WithDefaultLocale("sw_ke"),
	)
	require.NoError(t, err)
	assert.Equal(t, "sw-KE", cfg.DefaultLocale)

	_, err = cfg.BuildNormalizer("")
	assert.NoError(t, err, "build via parent locale")
}

func TestConfigWithFallbackOption(t *testing.T) {
	cfg, err := NewConfig(
		WithVariant("sw", fakeFactory),
		WithFallback("lg", "sw", "en", "sw"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"sw", "en", "sw"}, cfg.Resolver.Resolve("lg"))

	n, err := cfg.BuildNormalizer("lg")
	require.NoError(t, err)
	assert.Equal(t, "sw", n.Locale())
}

type resolverFunc func(string) []string

func (f resolverFunc) Resolve(locale string) []string { return f(locale) }

func TestConfigWithFallbackRejectsCustomResolver(t *testing.T) {
	custom := resolverFunc(func(string) []string { return []string{"sw"} })

	_, err := NewConfig(
		WithVariant("sw", fakeFactory),
		WithFallbackResolver(custom),
		WithFallback("lg", "sw"),
	)
	assert.ErrorIs(t, err, ErrFallbackResolver)

	cfg, err := NewConfig(
		WithVariant("sw", fakeFactory),
		WithFallbackResolver(NewStaticFallbackResolver()),
		WithFallback("lg", "sw"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"sw"}, cfg.Resolver.Resolve("lg"))
}

func TestConfigBuildNormalizerUnsupported(t *testing.T) {
	cfg, err := NewConfig(WithVariant("sw", fakeFactory))
	require.NoError(t, err)

	_, err = cfg.BuildNormalizer("fr")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)

	empty, err := NewConfig()
	require.NoError(t, err)
	_, err = empty.BuildNormalizer("")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)

	var nilConfig *Config
	_, err = nilConfig.BuildNormalizer("sw")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestConfigPassesSettingsToNormalizer(t *testing.T) {
	collector := &WarningCollector{}
	var seen []Category

	var received VariantOptions
	factory := func(locale string, opts VariantOptions) (Verbalizer, error) {
		received = opts
		return newFakeVariant(locale), nil
	}

	cfg, err := NewConfig(
		WithVariant("sw", factory),
		WithWarningHandler(collector),
		WithHooks(HookFuncs{After: func(ctx *HookContext) { seen = append(seen, ctx.Category) }}),
		WithInputCanonicalization(true),
		WithLexiconFile("lexicon.yaml"),
		WithScaledSubunits(true),
	)
	require.NoError(t, err)

	n, err := cfg.BuildNormalizer("sw")
	require.NoError(t, err)

	assert.Equal(t, VariantOptions{LexiconPath: "lexicon.yaml", ScaledSubunits: true}, received)
	assert.Equal(t, "<number b> na 99", n.Normalize("１ na 99"))
	assert.Equal(t, 1, collector.Len())
	assert.Len(t, seen, 2)
}

func TestConfigWithVariantOptions(t *testing.T) {
	cfg, err := NewConfig(
		WithVariantOptions(VariantOptions{LexiconPath: "a.json"}),
		WithScaledSubunits(true),
	)
	require.NoError(t, err)
	assert.Equal(t, VariantOptions{LexiconPath: "a.json", ScaledSubunits: true}, cfg.Variant)
}
