// Package swahili is the Swahili language variant of the verbalizer. It
// spells numbers, currency amounts, clock times and DD/MM/YYYY dates.
package swahili

import (
	"fmt"
	"sync"

	verbalizer "github.com/goliatone/go-verbalizer"
)

// Locale is the BCP 47 tag the variant registers under
const Locale = "sw"

// Verbalizer implements verbalizer.Verbalizer for Swahili
type Verbalizer struct {
	lexicon  *Lexicon
	scaled   bool
	patterns verbalizer.PatternSet
}

var _ verbalizer.Verbalizer = &Verbalizer{}

type Option func(*Verbalizer)

// WithLexicon replaces the built-in lexicon
func WithLexicon(lex *Lexicon) Option {
	return func(v *Verbalizer) {
		if lex != nil {
			v.lexicon = lex.Clone()
		}
	}
}

// WithScaledSubunits reads currency fractions as hundredths
func WithScaledSubunits(enabled bool) Option {
	return func(v *Verbalizer) {
		v.scaled = enabled
	}
}

func New(opts ...Option) *Verbalizer {
	v := &Verbalizer{lexicon: DefaultLexicon()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(v)
	}
	v.patterns = newPatternSet(v.lexicon)
	return v
}

// Factory satisfies verbalizer.Factory
func Factory(_ string, opts verbalizer.VariantOptions) (verbalizer.Verbalizer, error) {
	variantOpts := []Option{WithScaledSubunits(opts.ScaledSubunits)}
	if opts.LexiconPath != "" {
		lex, err := LoadLexicon(opts.LexiconPath)
		if err != nil {
			return nil, err
		}
		variantOpts = append(variantOpts, WithLexicon(lex))
	}
	return New(variantOpts...), nil
}

// Register adds the variant to registry under Locale
func Register(registry *verbalizer.Registry) {
	if registry == nil {
		return
	}
	registry.Register(Locale, Factory)
}

// NewNormalizer returns a Normalizer backed by the built-in lexicon
func NewNormalizer(opts ...verbalizer.NormalizerOption) (*verbalizer.Normalizer, error) {
	return verbalizer.NewNormalizer(New(), opts...)
}

var (
	defaultOnce       sync.Once
	defaultNormalizer *verbalizer.Normalizer
)

func sharedNormalizer() *verbalizer.Normalizer {
	defaultOnce.Do(func() {
		n, err := NewNormalizer()
		if err != nil {
			panic(fmt.Sprintf("swahili: default normalizer: %v", err))
		}
		defaultNormalizer = n
	})
	return defaultNormalizer
}

// Normalize runs the full pipeline with the built-in lexicon; warnings go to slog.Default()
func Normalize(text string) string {
	return sharedNormalizer().Normalize(text)
}

func (v *Verbalizer) Locale() string {
	return Locale
}

func (v *Verbalizer) Patterns() verbalizer.PatternSet {
	return v.patterns
}

// Lexicon returns a copy of the lexicon in use
func (v *Verbalizer) Lexicon() *Lexicon {
	return v.lexicon.Clone()
}

func (v *Verbalizer) VerbalizeNumber(text string) (string, error) {
	return v.lexicon.Decimal(text)
}

// VerbalizeCurrency expects groups (code, amount)
func (v *Verbalizer) VerbalizeCurrency(m verbalizer.Match) (string, error) {
	code, amount := m.Group(1), m.Group(2)
	if code == "" || amount == "" {
		return "", fmt.Errorf("%w: %q", verbalizer.ErrInvalidCurrency, m.Text)
	}
	return v.lexicon.Currency(code, amount, v.scaled)
}

// VerbalizeTime expects groups (hour, minute, second, period)
func (v *Verbalizer) VerbalizeTime(m verbalizer.Match) (string, error) {
	if m.Group(1) == "" || m.Group(2) == "" {
		return v.lexicon.Time(m.Text)
	}
	t, err := clockFromParts(m.Group(1), m.Group(2), m.Group(3), m.Group(4))
	if err != nil {
		return "", err
	}
	return v.lexicon.Clock(t)
}

// VerbalizeDate expects groups (day, month, year)
func (v *Verbalizer) VerbalizeDate(m verbalizer.Match) (string, error) {
	if m.Group(1) == "" || m.Group(2) == "" || m.Group(3) == "" {
		return v.lexicon.ParseAndVerbalizeDate(m.Text)
	}
	d, err := dateFromParts(m.Group(1), m.Group(2), m.Group(3))
	if err != nil {
		return "", err
	}
	return v.lexicon.Date(d.Day, d.Month, d.Year)
}
