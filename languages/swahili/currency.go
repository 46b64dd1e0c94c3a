package swahili

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	verbalizer "github.com/goliatone/go-verbalizer"
)

var hundred = decimal.NewFromInt(100)

// Currency spells amount in the currency named by code. Codes missing from the
// lexicon come back as "<code> <amount>" untouched.
//
// The main amount and the fraction are each read as whole numbers, so
// "150.5" has a subunit of 5. With scaled set the fraction is read as
// hundredths and "150.5" has a subunit of 50.
func (l *Lexicon) Currency(code, amount string, scaled bool) (string, error) {
	names, ok := l.Currencies[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return code + " " + amount, nil
	}

	var (
		main, sub int64
		err       error
	)
	if scaled {
		main, sub, err = splitScaledAmount(amount)
	} else {
		main, sub, err = splitAmount(amount)
	}
	if err != nil {
		return "", err
	}

	mainWords, err := l.Cardinal(main)
	if err != nil {
		return "", err
	}
	result := names.Name + " " + mainWords

	if sub > 0 {
		subWords, err := l.Cardinal(sub)
		if err != nil {
			return "", err
		}
		result += " " + l.Conjunction + " " + names.Subunit + " " + subWords
	}
	return result, nil
}

func splitAmount(amount string) (int64, int64, error) {
	amount = strings.TrimSpace(amount)
	intPart, fracPart, hasPoint := strings.Cut(amount, ".")
	if !isDigits(intPart) || (hasPoint && !isDigits(fracPart)) {
		return 0, 0, fmt.Errorf("%w: %q", verbalizer.ErrInvalidCurrency, amount)
	}

	main, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", verbalizer.ErrOutOfRange, amount)
	}
	if !hasPoint {
		return main, 0, nil
	}
	sub, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", verbalizer.ErrOutOfRange, amount)
	}
	return main, sub, nil
}

func splitScaledAmount(amount string) (int64, int64, error) {
	amount = strings.TrimSpace(amount)
	value, err := decimal.NewFromString(amount)
	if err != nil || value.IsNegative() || strings.ContainsAny(amount, "eE+-") {
		return 0, 0, fmt.Errorf("%w: %q", verbalizer.ErrInvalidCurrency, amount)
	}

	whole := value.Truncate(0)
	if !whole.LessThanOrEqual(decimal.NewFromInt(MaxCardinal)) {
		return 0, 0, fmt.Errorf("%w: %q", verbalizer.ErrOutOfRange, amount)
	}
	sub := value.Sub(whole).Mul(hundred).Truncate(0)
	return whole.IntPart(), sub.IntPart(), nil
}

// VerbalizeCurrency spells an amount with the built-in lexicon
func VerbalizeCurrency(code, amount string) (string, error) {
	return defaultLexicon.Currency(code, amount, false)
}
