package verbalizer

import (
	"errors"
	"fmt"
	"strings"
)

var errNilVariant = errors.New("verbalizer: nil variant")

// Normalizer runs the detection passes of a Verbalizer over text and
// substitutes every match with its spoken form. Each pass works on the output
// of the previous one, so digits consumed by an earlier category are never
// seen again. A Normalizer holds no mutable state and may be shared.
type Normalizer struct {
	variant      Verbalizer
	locale       string
	patterns     PatternSet
	warnings     WarningHandler
	hooks        []Hook
	canonicalize bool
}

type NormalizerOption func(*Normalizer)

// WithWarnings routes per match failures to handler
func WithWarnings(handler WarningHandler) NormalizerOption {
	return func(n *Normalizer) {
		if handler != nil {
			n.warnings = handler
		}
	}
}

// WithNormalizerHooks appends verbalization hooks
func WithNormalizerHooks(hooks ...Hook) NormalizerOption {
	return func(n *Normalizer) {
		n.hooks = append(n.hooks, filterHooks(hooks)...)
	}
}

// WithCanonicalInput applies NFKC canonicalization before the first pass
func WithCanonicalInput(enabled bool) NormalizerOption {
	return func(n *Normalizer) {
		n.canonicalize = enabled
	}
}

// NewNormalizer binds the passes to variant
func NewNormalizer(variant Verbalizer, opts ...NormalizerOption) (*Normalizer, error) {
	if variant == nil {
		return nil, errNilVariant
	}

	n := &Normalizer{
		variant:  variant,
		locale:   variant.Locale(),
		patterns: variant.Patterns(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(n)
	}
	if n.warnings == nil {
		n.warnings = SlogWarnings(nil)
	}
	return n, nil
}

func (n *Normalizer) Locale() string {
	if n == nil {
		return ""
	}
	return n.locale
}

// Normalize runs currency, date, time and number passes in that order
func (n *Normalizer) Normalize(text string) string {
	if n == nil || text == "" {
		return text
	}
	text = n.prepare(text)
	for _, category := range PassOrder {
		text = n.pass(category, text)
	}
	return text
}

// NormalizeNumbers runs only the plain number pass
func (n *Normalizer) NormalizeNumbers(text string) string {
	return n.Pass(CategoryNumber, text)
}

// NormalizeCurrency runs only the currency pass
func (n *Normalizer) NormalizeCurrency(text string) string {
	return n.Pass(CategoryCurrency, text)
}

// NormalizeTime runs only the time pass
func (n *Normalizer) NormalizeTime(text string) string {
	return n.Pass(CategoryTime, text)
}

// NormalizeDates runs only the date pass
func (n *Normalizer) NormalizeDates(text string) string {
	return n.Pass(CategoryDate, text)
}

// Pass runs a single category over text
func (n *Normalizer) Pass(category Category, text string) string {
	if n == nil || text == "" {
		return text
	}
	return n.pass(category, n.prepare(text))
}

func (n *Normalizer) prepare(text string) string {
	if n.canonicalize {
		return Canonicalize(text)
	}
	return text
}

func (n *Normalizer) pass(category Category, text string) string {
	matcher, ok := n.patterns.Matcher(category)
	if !ok || text == "" {
		return text
	}

	matches := matcher.FindAll(text)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) * 2)

	last := 0
	for _, m := range matches {
		// matchers promise ordered, non overlapping spans; drop anything else
		if m.Start < last || m.End > len(text) || m.Start >= m.End {
			continue
		}
		b.WriteString(text[last:m.Start])
		b.WriteString(n.verbalize(category, m))
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String()
}

func (n *Normalizer) verbalize(category Category, m Match) string {
	ctx := &HookContext{
		Locale:   n.locale,
		Category: category,
		Match:    m,
	}

	for _, hook := range n.hooks {
		hook.BeforeVerbalize(ctx)
	}

	ctx.Result, ctx.Error = n.call(category, ctx.Match)

	for _, hook := range n.hooks {
		hook.AfterVerbalize(ctx)
	}

	if ctx.Error != nil {
		n.warnings.Warn(Warning{
			Locale:   n.locale,
			Category: category,
			Text:     m.Text,
			Start:    m.Start,
			End:      m.End,
			Err:      ctx.Error,
		})
		return m.Text
	}
	return ctx.Result
}

func (n *Normalizer) call(category Category, m Match) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = "", fmt.Errorf("verbalizer: panic in %s verbalizer: %v", category, r)
		}
	}()

	switch category {
	case CategoryCurrency:
		return n.variant.VerbalizeCurrency(m)
	case CategoryDate:
		return n.variant.VerbalizeDate(m)
	case CategoryTime:
		return n.variant.VerbalizeTime(m)
	case CategoryNumber:
		return n.variant.VerbalizeNumber(m.Text)
	default:
		return "", fmt.Errorf("verbalizer: unknown category %q", category)
	}
}
