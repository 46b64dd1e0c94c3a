package swahili

import (
	"regexp"
	"strings"

	verbalizer "github.com/goliatone/go-verbalizer"
)

const (
	// date: DD/MM/YYYY, zero padding optional on day and month
	datePattern = `\b(\d{1,2})/(\d{1,2})/(\d{4})\b`

	// time: H:MM or H:MM:SS with an optional AM/PM marker. The space before the
	// marker is only consumed together with it.
	timePattern = `\b(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\s*((?i:AM|PM)))?\b`

	// number: integers and decimals, matched after every other category
	numberPattern = `\b\d+(?:\.\d+)?\b`
)

// currencyPattern matches "<code> <amount>" for codes, case-insensitively
func currencyPattern(codes []string) *regexp.Regexp {
	quoted := make([]string, len(codes))
	for i, code := range codes {
		quoted[i] = regexp.QuoteMeta(code)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\s*(\d+(?:\.\d{1,2})?)\b`)
}

// newPatternSet builds the four matchers for lex
func newPatternSet(lex *Lexicon) verbalizer.PatternSet {
	currency := verbalizer.NewRegexMatcher(verbalizer.CategoryCurrency, currencyPattern(lex.CurrencyCodes()))
	date := verbalizer.MustRegexMatcher(verbalizer.CategoryDate, datePattern)
	clock := verbalizer.MustRegexMatcher(verbalizer.CategoryTime, timePattern)

	number := verbalizer.NewExcludingMatcher(
		verbalizer.NewSignedMatcher(verbalizer.MustRegexMatcher(verbalizer.CategoryNumber, numberPattern)),
		currency, date, clock,
	)

	return verbalizer.PatternSet{
		verbalizer.CategoryCurrency: currency,
		verbalizer.CategoryDate:     date,
		verbalizer.CategoryTime:     clock,
		verbalizer.CategoryNumber:   number,
	}
}
