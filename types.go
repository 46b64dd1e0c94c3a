// Package verbalizer turns numbers, currency amounts, clock times and dates
// embedded in text into their spoken form. Language variants implement
// Verbalizer; a Normalizer runs their matchers over text in a fixed order and
// keeps any match that fails to verbalize as it was.
package verbalizer

// Category tags a match span with the kind of token it covers
type Category string

const (
	CategoryCurrency Category = "currency"
	CategoryDate     Category = "date"
	CategoryTime     Category = "time"
	CategoryNumber   Category = "number"
)

// PassOrder is the fixed precedence of the normalization pipeline. Earlier
// categories consume digits before the plain number matcher can see them.
var PassOrder = []Category{
	CategoryCurrency,
	CategoryDate,
	CategoryTime,
	CategoryNumber,
}

func (c Category) String() string {
	return string(c)
}

// Match is a located substring found by a Matcher.
// Start and End are byte offsets into the text the matcher ran on.
type Match struct {
	Category Category
	Text     string
	Start    int
	End      int
	// Groups holds the submatches in pattern order, "" for groups that did not participate
	Groups []string
}

// Group returns the i-th submatch (1 based) or "" when absent
func (m Match) Group(i int) string {
	if i <= 0 || i > len(m.Groups) {
		return ""
	}
	return m.Groups[i-1]
}

// Matcher finds the non-overlapping spans of one category, left to right
type Matcher interface {
	FindAll(text string) []Match
}

// PatternSet holds one matcher per category
type PatternSet map[Category]Matcher

// Matcher returns the matcher registered for category
func (p PatternSet) Matcher(category Category) (Matcher, bool) {
	if p == nil {
		return nil, false
	}
	m, ok := p[category]
	return m, ok && m != nil
}

// Verbalizer is the capability set a language variant provides to the
// Normalizer. Implementations must be safe for concurrent use.
type Verbalizer interface {
	Locale() string
	Patterns() PatternSet
	VerbalizeNumber(text string) (string, error)
	VerbalizeCurrency(m Match) (string, error)
	VerbalizeTime(m Match) (string, error)
	VerbalizeDate(m Match) (string, error)
}

// VariantOptions carries construction settings shared by language variants
type VariantOptions struct {
	// LexiconPath points to a JSON or YAML file merged over the built-in lexicon
	LexiconPath string
	// ScaledSubunits reads currency fractions as hundredths (".5" => 50)
	ScaledSubunits bool
}

// Factory builds a Verbalizer for the locale it was registered under
type Factory func(locale string, opts VariantOptions) (Verbalizer, error)
