package verbalizer

import (
	"fmt"
	"sort"
	"sync"
)

type variantKey struct {
	locale string
	opts   VariantOptions
}

// Registry maps locales to language variant factories. Lookups try the
// locale, its BCP 47 parents and then any explicit fallback chain, so a
// variant registered for "sw" also serves "sw-KE" and "sw-TZ".
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	resolver  FallbackResolver
	cache     map[variantKey]Verbalizer
}

type RegistryOption func(*Registry)

func WithRegistryResolver(resolver FallbackResolver) RegistryOption {
	return func(r *Registry) {
		r.resolver = resolver
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		cache:     make(map[variantKey]Verbalizer),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Register sets or replaces the factory for locale
func (r *Registry) Register(locale string, factory Factory) {
	locale = normalizeLocale(locale)
	if locale == "" || factory == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.factories == nil {
		r.factories = make(map[string]Factory)
	}
	r.factories[locale] = factory
	r.cache = make(map[variantKey]Verbalizer)
}

// Locales returns the registered locales sorted
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locales := make([]string, 0, len(r.factories))
	for locale := range r.factories {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Resolve returns the registered locale serving locale and its factory
func (r *Registry) Resolve(locale string) (string, Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked(locale)
}

func (r *Registry) resolveLocked(locale string) (string, Factory, error) {
	for _, candidate := range r.candidateLocales(locale) {
		if factory, ok := r.factories[candidate]; ok {
			return candidate, factory, nil
		}
	}
	return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
}

// Build returns the variant for locale, constructing it on first use.
// Variants are cached per resolved locale and options.
func (r *Registry) Build(locale string, opts VariantOptions) (Verbalizer, error) {
	r.mu.RLock()
	resolved, factory, err := r.resolveLocked(locale)
	if err != nil {
		r.mu.RUnlock()
		return nil, err
	}
	key := variantKey{locale: resolved, opts: opts}
	if cached, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	variant, err := factory(resolved, opts)
	if err != nil {
		return nil, fmt.Errorf("verbalizer: build %q: %w", resolved, err)
	}
	if variant == nil {
		return nil, fmt.Errorf("verbalizer: build %q: %w", resolved, errNilVariant)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cache == nil {
		r.cache = make(map[variantKey]Verbalizer)
	}
	if cached, ok := r.cache[key]; ok {
		return cached, nil
	}
	r.cache[key] = variant
	return variant, nil
}

func (r *Registry) candidateLocales(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	seen := map[string]struct{}{locale: {}}
	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
	}

	for _, parent := range localeParentChain(locale) {
		appendLocale(parent)
	}
	if r.resolver != nil {
		for _, fallback := range r.resolver.Resolve(locale) {
			appendLocale(fallback)
			for _, parent := range localeParentChain(fallback) {
				appendLocale(parent)
			}
		}
	}
	return chain
}
