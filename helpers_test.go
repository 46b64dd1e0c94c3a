package verbalizer

import (
	"errors"
	"fmt"
	"strings"
)

var errFakeReject = errors.New("fake: rejected")

// fakeVariant spells tokens as "<category text>" with digits swapped for
// letters (0 => a, 1 => b ...) so later passes never see them again. Anything
// containing "99" is rejected.
type fakeVariant struct {
	locale   string
	patterns PatternSet
	panicOn  string
}

func newFakeVariant(locale string) *fakeVariant {
	currency := MustRegexMatcher(CategoryCurrency, `\b(ABC)\s*(\d+)\b`)
	date := MustRegexMatcher(CategoryDate, `\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	clock := MustRegexMatcher(CategoryTime, `\b(\d{1,2}):(\d{2})\b`)
	number := NewExcludingMatcher(
		NewSignedMatcher(MustRegexMatcher(CategoryNumber, `\b\d+\b`)),
		currency, date, clock,
	)
	return &fakeVariant{
		locale: locale,
		patterns: PatternSet{
			CategoryCurrency: currency,
			CategoryDate:     date,
			CategoryTime:     clock,
			CategoryNumber:   number,
		},
	}
}

func (f *fakeVariant) Locale() string       { return f.locale }
func (f *fakeVariant) Patterns() PatternSet { return f.patterns }

func (f *fakeVariant) spell(category Category, text string) (string, error) {
	if f.panicOn != "" && text == f.panicOn {
		panic("boom")
	}
	if strings.Contains(text, "99") {
		return "", fmt.Errorf("%w: %s", errFakeReject, text)
	}
	return fmt.Sprintf("<%s %s>", category, letters(text)), nil
}

func letters(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return 'a' + (r - '0')
		}
		return r
	}, text)
}

func (f *fakeVariant) VerbalizeNumber(text string) (string, error) {
	return f.spell(CategoryNumber, text)
}

func (f *fakeVariant) VerbalizeCurrency(m Match) (string, error) {
	return f.spell(CategoryCurrency, m.Group(1)+" "+m.Group(2))
}

func (f *fakeVariant) VerbalizeTime(m Match) (string, error) {
	return f.spell(CategoryTime, m.Text)
}

func (f *fakeVariant) VerbalizeDate(m Match) (string, error) {
	return f.spell(CategoryDate, m.Text)
}

func fakeFactory(locale string, _ VariantOptions) (Verbalizer, error) {
	return newFakeVariant(locale), nil
}
