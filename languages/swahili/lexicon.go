package swahili

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/currency"

	verbalizer "github.com/goliatone/go-verbalizer"
)

// Lexicon holds every word the Swahili templates emit. Overrides loaded from
// files replace whole slices and merge currency entries by code.
type Lexicon struct {
	Ones        []string `json:"ones" yaml:"ones"`
	Tens        []string `json:"tens" yaml:"tens"`
	Hundred     string   `json:"hundred" yaml:"hundred"`
	Thousand    string   `json:"thousand" yaml:"thousand"`
	Million     string   `json:"million" yaml:"million"`
	Billion     string   `json:"billion" yaml:"billion"`
	Conjunction string   `json:"conjunction" yaml:"conjunction"`
	Negative    string   `json:"negative" yaml:"negative"`
	Point       string   `json:"point" yaml:"point"`

	Hour    string `json:"hour" yaml:"hour"`
	Minute  string `json:"minute" yaml:"minute"`
	Second  string `json:"second" yaml:"second"`
	Morning string `json:"morning" yaml:"morning"`
	Evening string `json:"evening" yaml:"evening"`

	DateMarker    string   `json:"date_marker" yaml:"date_marker"`
	MonthMarker   string   `json:"month_marker" yaml:"month_marker"`
	YearMarker    string   `json:"year_marker" yaml:"year_marker"`
	MonthFallback string   `json:"month_fallback" yaml:"month_fallback"`
	Months        []string `json:"months" yaml:"months"`

	Currencies map[string]CurrencyNames `json:"currencies" yaml:"currencies"`
}

// CurrencyNames are the spoken nouns for a currency and its subunit
type CurrencyNames struct {
	Name    string `json:"name" yaml:"name"`
	Subunit string `json:"subunit" yaml:"subunit"`
}

var defaultLexicon = Lexicon{
	Ones: []string{
		"sifuri", "moja", "mbili", "tatu", "nne",
		"tano", "sita", "saba", "nane", "tisa",
	},
	Tens: []string{
		"kumi", "ishirini", "thelathini", "arobaini", "hamsini",
		"sitini", "sabini", "themanini", "tisini",
	},
	Hundred:     "mia",
	Thousand:    "elfu",
	Million:     "milioni",
	Billion:     "bilioni",
	Conjunction: "na",
	Negative:    "hasi",
	Point:       "nukta",

	Hour:    "saa",
	Minute:  "dakika",
	Second:  "sekunde",
	Morning: "asubuhi",
	Evening: "jioni",

	DateMarker:    "tarehe",
	MonthMarker:   "mwezi wa",
	YearMarker:    "mwaka",
	MonthFallback: "mwezi",
	Months: []string{
		"Januari", "Februari", "Machi", "Aprili", "Mei", "Juni",
		"Julai", "Agosti", "Septemba", "Oktoba", "Novemba", "Desemba",
	},

	Currencies: map[string]CurrencyNames{
		"KES": {Name: "shilingi", Subunit: "senti"},
		"TZS": {Name: "shilingi", Subunit: "senti"},
		"NGN": {Name: "naira", Subunit: "kobo"},
		"RWF": {Name: "faranga", Subunit: "santim"},
	},
}

// DefaultLexicon returns a fresh copy of the built-in lexicon
func DefaultLexicon() *Lexicon {
	return defaultLexicon.Clone()
}

// LoadLexicon merges the JSON or YAML file at path over the built-in lexicon
func LoadLexicon(path string) (*Lexicon, error) {
	lex := DefaultLexicon()
	base := lex.Currencies
	lex.Currencies = nil
	if err := verbalizer.DecodeFile(path, lex); err != nil {
		return nil, err
	}

	overrides, err := canonicalCurrencies(lex.Currencies)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	maps.Copy(base, overrides)
	lex.Currencies = base

	if err := lex.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

func (l *Lexicon) Clone() *Lexicon {
	if l == nil {
		return nil
	}
	out := *l
	out.Ones = slices.Clone(l.Ones)
	out.Tens = slices.Clone(l.Tens)
	out.Months = slices.Clone(l.Months)
	out.Currencies = maps.Clone(l.Currencies)
	return &out
}

// CurrencyCodes returns the supported codes sorted
func (l *Lexicon) CurrencyCodes() []string {
	codes := slices.Collect(maps.Keys(l.Currencies))
	slices.Sort(codes)
	return codes
}

// Validate checks the shape of the lexicon and that currency keys are ISO 4217 codes
func (l *Lexicon) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil lexicon", verbalizer.ErrInvalidLexicon)
	}
	if err := requireWords("ones", l.Ones, 10); err != nil {
		return err
	}
	if err := requireWords("tens", l.Tens, 9); err != nil {
		return err
	}
	if err := requireWords("months", l.Months, 12); err != nil {
		return err
	}

	words := map[string]string{
		"hundred":        l.Hundred,
		"thousand":       l.Thousand,
		"million":        l.Million,
		"billion":        l.Billion,
		"conjunction":    l.Conjunction,
		"negative":       l.Negative,
		"point":          l.Point,
		"hour":           l.Hour,
		"minute":         l.Minute,
		"second":         l.Second,
		"morning":        l.Morning,
		"evening":        l.Evening,
		"date_marker":    l.DateMarker,
		"month_marker":   l.MonthMarker,
		"year_marker":    l.YearMarker,
		"month_fallback": l.MonthFallback,
	}
	for _, key := range slices.Sorted(maps.Keys(words)) {
		if strings.TrimSpace(words[key]) == "" {
			return fmt.Errorf("%w: %s is empty", verbalizer.ErrInvalidLexicon, key)
		}
	}

	if len(l.Currencies) == 0 {
		return fmt.Errorf("%w: no currencies", verbalizer.ErrInvalidLexicon)
	}
	for _, code := range l.CurrencyCodes() {
		unit, err := currency.ParseISO(code)
		if err != nil || unit.String() != code {
			return fmt.Errorf("%w: %q is not an ISO 4217 currency code", verbalizer.ErrInvalidLexicon, code)
		}
		names := l.Currencies[code]
		if names.Name == "" || names.Subunit == "" {
			return fmt.Errorf("%w: currency %s needs name and subunit", verbalizer.ErrInvalidLexicon, code)
		}
	}
	return nil
}

// canonicalCurrencies upper-cases codes. Two keys folding to the same code are rejected.
func canonicalCurrencies(in map[string]CurrencyNames) (map[string]CurrencyNames, error) {
	out := make(map[string]CurrencyNames, len(in))
	for code, names := range in {
		key := strings.ToUpper(strings.TrimSpace(code))
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: currency %s is listed more than once", verbalizer.ErrInvalidLexicon, key)
		}
		out[key] = names
	}
	return out, nil
}

func requireWords(field string, words []string, count int) error {
	if len(words) != count {
		return fmt.Errorf("%w: %s needs %d entries, got %d", verbalizer.ErrInvalidLexicon, field, count, len(words))
	}
	for i, word := range words {
		if strings.TrimSpace(word) == "" {
			return fmt.Errorf("%w: %s[%d] is empty", verbalizer.ErrInvalidLexicon, field, i)
		}
	}
	return nil
}
