package verbalizer

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLocale indicates no variant is registered for a locale or its parents.
var ErrUnsupportedLocale = errors.New("verbalizer: unsupported locale")

// ErrInvalidNumber marks numeral strings that cannot be parsed
var ErrInvalidNumber = errors.New("verbalizer: invalid number")

// ErrOutOfRange marks numerals beyond the supported magnitude
var ErrOutOfRange = errors.New("verbalizer: number out of range")

// ErrInvalidCurrency marks currency amounts that cannot be parsed
var ErrInvalidCurrency = errors.New("verbalizer: invalid currency amount")

// ErrInvalidTime marks clock times that are malformed or out of range
var ErrInvalidTime = errors.New("verbalizer: invalid time")

// ErrInvalidDate is the umbrella failure returned by date parsing
var ErrInvalidDate = errors.New("verbalizer: invalid date")

// ErrDateFormat is returned when a date string does not have three fields
var ErrDateFormat = fmt.Errorf("%w: malformed", ErrInvalidDate)

// ErrDateRange is returned when a date field is outside its declared bounds
var ErrDateRange = fmt.Errorf("%w: out of range", ErrInvalidDate)

// ErrInvalidLexicon marks lexicon data that fails validation
var ErrInvalidLexicon = errors.New("verbalizer: invalid lexicon")

// ErrFallbackResolver is returned when explicit fallbacks are added to a resolver that cannot hold them
var ErrFallbackResolver = errors.New("verbalizer: fallback chains need a static resolver")
