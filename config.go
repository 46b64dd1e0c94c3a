package verbalizer

import "fmt"

// Config captures registry, diagnostics and variant setup
type Config struct {
	DefaultLocale string
	Registry      *Registry
	Resolver      FallbackResolver
	Warnings      WarningHandler
	Hooks         []Hook
	Variant       VariantOptions
	Canonicalize  bool

	variants map[string]Factory
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.Registry == nil {
		cfg.Registry = NewRegistry(WithRegistryResolver(cfg.Resolver))
	}

	for locale, factory := range cfg.variants {
		cfg.Registry.Register(locale, factory)
	}

	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
	if cfg.DefaultLocale == "" {
		if locales := cfg.Registry.Locales(); len(locales) > 0 {
			cfg.DefaultLocale = locales[0]
		}
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used when BuildNormalizer gets ""
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithRegistry supplies a prepared registry
func WithRegistry(registry *Registry) Option {
	return func(c *Config) error {
		c.Registry = registry
		return nil
	}
}

// WithVariant registers factory for locale on the configured registry
func WithVariant(locale string, factory Factory) Option {
	return func(c *Config) error {
		if locale == "" || factory == nil {
			return fmt.Errorf("verbalizer: variant requires a locale and factory")
		}
		if c.variants == nil {
			c.variants = make(map[string]Factory)
		}
		c.variants[locale] = factory
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback adds an explicit fallback chain to the static resolver. It fails
// with ErrFallbackResolver when a custom FallbackResolver was set earlier.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return fmt.Errorf("%w: got %T", ErrFallbackResolver, c.Resolver)
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithWarningHandler sets the diagnostic sink for per match failures
func WithWarningHandler(handler WarningHandler) Option {
	return func(c *Config) error {
		c.Warnings = handler
		return nil
	}
}

func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, filterHooks(hooks)...)
		return nil
	}
}

func WithInputCanonicalization(enabled bool) Option {
	return func(c *Config) error {
		c.Canonicalize = enabled
		return nil
	}
}

func WithVariantOptions(opts VariantOptions) Option {
	return func(c *Config) error {
		c.Variant = opts
		return nil
	}
}

// WithLexiconFile points variants at a JSON or YAML lexicon override
func WithLexiconFile(path string) Option {
	return func(c *Config) error {
		c.Variant.LexiconPath = path
		return nil
	}
}

// WithScaledSubunits reads currency fractions as hundredths
func WithScaledSubunits(enabled bool) Option {
	return func(c *Config) error {
		c.Variant.ScaledSubunits = enabled
		return nil
	}
}

// BuildNormalizer resolves the variant for locale, DefaultLocale when empty
func (cfg *Config) BuildNormalizer(locale string) (*Normalizer, error) {
	if cfg == nil || cfg.Registry == nil {
		return nil, fmt.Errorf("%w: no registry configured", ErrUnsupportedLocale)
	}

	if locale == "" {
		locale = cfg.DefaultLocale
	}
	if locale == "" {
		return nil, fmt.Errorf("%w: no locale requested and no default", ErrUnsupportedLocale)
	}

	variant, err := cfg.Registry.Build(locale, cfg.Variant)
	if err != nil {
		return nil, err
	}

	return NewNormalizer(variant,
		WithWarnings(cfg.Warnings),
		WithNormalizerHooks(cfg.Hooks...),
		WithCanonicalInput(cfg.Canonicalize),
	)
}
