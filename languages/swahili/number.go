package swahili

import (
	"fmt"
	"strconv"
	"strings"

	verbalizer "github.com/goliatone/go-verbalizer"
)

// MaxCardinal is the largest magnitude Cardinal accepts
const MaxCardinal int64 = 999_999_999_999

type scale struct {
	value int64
	word  string
}

func (l *Lexicon) scales() [4]scale {
	return [4]scale{
		{value: 1_000_000_000, word: l.Billion},
		{value: 1_000_000, word: l.Million},
		{value: 1_000, word: l.Thousand},
		{value: 100, word: l.Hundred},
	}
}

// Cardinal spells n. The scale word always leads and a multiplier of one is
// spoken ("mia moja", "elfu moja").
func (l *Lexicon) Cardinal(n int64) (string, error) {
	if n > MaxCardinal || n < -MaxCardinal {
		return "", fmt.Errorf("%w: %d", verbalizer.ErrOutOfRange, n)
	}
	return l.cardinal(n), nil
}

func (l *Lexicon) cardinal(n int64) string {
	if n == 0 {
		return l.Ones[0]
	}
	if n < 0 {
		return l.Negative + " " + l.cardinal(-n)
	}

	for _, s := range l.scales() {
		if n < s.value {
			continue
		}
		words := s.word + " " + l.cardinal(n/s.value)
		if rem := n % s.value; rem > 0 {
			words += " " + l.Conjunction + " " + l.cardinal(rem)
		}
		return words
	}

	if n >= 10 {
		tens := l.Tens[n/10-1]
		if ones := n % 10; ones > 0 {
			return tens + " " + l.Conjunction + " " + l.Ones[ones]
		}
		return tens
	}
	return l.Ones[n]
}

// Decimal spells an integer or decimal literal. Digits after the point are
// read one by one: "3.14" => "tatu nukta moja nne".
func (l *Lexicon) Decimal(text string) (string, error) {
	text = strings.TrimSpace(text)
	negative := strings.HasPrefix(text, "-")
	unsigned := strings.TrimPrefix(text, "-")

	intPart, fracPart, hasPoint := strings.Cut(unsigned, ".")
	if !isDigits(intPart) || (hasPoint && !isDigits(fracPart)) {
		return "", fmt.Errorf("%w: %q", verbalizer.ErrInvalidNumber, text)
	}

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", verbalizer.ErrOutOfRange, text)
	}
	words, err := l.Cardinal(n)
	if err != nil {
		return "", err
	}

	if hasPoint {
		var b strings.Builder
		b.WriteString(words)
		b.WriteString(" ")
		b.WriteString(l.Point)
		for _, digit := range fracPart {
			b.WriteString(" ")
			b.WriteString(l.Ones[digit-'0'])
		}
		words = b.String()
	}

	if negative {
		words = l.Negative + " " + words
	}
	return words, nil
}

// NumberToWords spells n with the built-in lexicon
func NumberToWords(n int64) (string, error) {
	return defaultLexicon.Cardinal(n)
}

// VerbalizeNumber spells an integer or decimal literal with the built-in lexicon
func VerbalizeNumber(text string) (string, error) {
	return defaultLexicon.Decimal(text)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
