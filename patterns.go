package verbalizer

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// RegexMatcher adapts a compiled regular expression to the Matcher contract
type RegexMatcher struct {
	category Category
	re       *regexp.Regexp
}

var _ Matcher = &RegexMatcher{}

// NewRegexMatcher wraps re; matches are tagged with category
func NewRegexMatcher(category Category, re *regexp.Regexp) *RegexMatcher {
	return &RegexMatcher{category: category, re: re}
}

// MustRegexMatcher compiles expr and panics on error, for package level patterns
func MustRegexMatcher(category Category, expr string) *RegexMatcher {
	return NewRegexMatcher(category, regexp.MustCompile(expr))
}

// Regexp exposes the underlying expression
func (m *RegexMatcher) Regexp() *regexp.Regexp {
	if m == nil {
		return nil
	}
	return m.re
}

func (m *RegexMatcher) FindAll(text string) []Match {
	if m == nil || m.re == nil || text == "" {
		return nil
	}

	indices := m.re.FindAllStringSubmatchIndex(text, -1)
	if len(indices) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(indices))
	for _, loc := range indices {
		match := Match{
			Category: m.category,
			Start:    loc[0],
			End:      loc[1],
			Text:     text[loc[0]:loc[1]],
		}
		if groups := len(loc)/2 - 1; groups > 0 {
			match.Groups = make([]string, groups)
			for i := 0; i < groups; i++ {
				start, end := loc[2*(i+1)], loc[2*(i+1)+1]
				if start < 0 {
					continue
				}
				match.Groups[i] = text[start:end]
			}
		}
		matches = append(matches, match)
	}
	return matches
}

// SignedMatcher extends the spans of an inner matcher with a directly
// preceding minus sign. The sign only counts when it starts the text or
// follows whitespace or an opening bracket, so ranges like "10-12" stay unsigned.
type SignedMatcher struct {
	inner Matcher
}

var _ Matcher = &SignedMatcher{}

func NewSignedMatcher(inner Matcher) *SignedMatcher {
	return &SignedMatcher{inner: inner}
}

func (m *SignedMatcher) FindAll(text string) []Match {
	if m == nil || m.inner == nil {
		return nil
	}

	matches := m.inner.FindAll(text)
	prevEnd := 0
	for i, match := range matches {
		if signAt(text, match.Start, prevEnd) {
			match.Start--
			match.Text = text[match.Start:match.End]
			matches[i] = match
		}
		prevEnd = match.End
	}
	return matches
}

func signAt(text string, start, floor int) bool {
	if start-1 < floor || text[start-1] != '-' {
		return false
	}
	if start-1 == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start-1])
	return unicode.IsSpace(r) || r == '(' || r == '[' || r == '{'
}

// ExcludingMatcher drops inner matches that overlap a span of any excluded
// matcher. The plain number pass uses it so digits inside a currency, date
// or time expression stay put even when that pass runs on its own.
type ExcludingMatcher struct {
	inner   Matcher
	exclude []Matcher
}

var _ Matcher = &ExcludingMatcher{}

func NewExcludingMatcher(inner Matcher, exclude ...Matcher) *ExcludingMatcher {
	filtered := make([]Matcher, 0, len(exclude))
	for _, m := range exclude {
		if m != nil {
			filtered = append(filtered, m)
		}
	}
	return &ExcludingMatcher{inner: inner, exclude: filtered}
}

func (m *ExcludingMatcher) FindAll(text string) []Match {
	if m == nil || m.inner == nil {
		return nil
	}

	matches := m.inner.FindAll(text)
	if len(matches) == 0 || len(m.exclude) == 0 {
		return matches
	}

	var blocked []Match
	for _, ex := range m.exclude {
		blocked = append(blocked, ex.FindAll(text)...)
	}
	if len(blocked) == 0 {
		return matches
	}

	kept := matches[:0]
	for _, match := range matches {
		if !overlapsAny(match, blocked) {
			kept = append(kept, match)
		}
	}
	return kept
}

func overlapsAny(m Match, spans []Match) bool {
	for _, s := range spans {
		if m.Start < s.End && s.Start < m.End {
			return true
		}
	}
	return false
}
