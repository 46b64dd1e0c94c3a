package swahili

import (
	"fmt"
	"strconv"
	"strings"

	verbalizer "github.com/goliatone/go-verbalizer"
)

// CalendarDate is a day/month/year triple. Day and month are only range
// checked on their own, so 31/02 is accepted.
type CalendarDate struct {
	Day   int
	Month int
	Year  int
}

// ParseDate reads "DD/MM/YYYY". A wrong field count or a non numeric field
// fails with ErrDateFormat, out of bounds fields with ErrDateRange.
func ParseDate(text string) (CalendarDate, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%w: %q, expected DD/MM/YYYY", verbalizer.ErrDateFormat, text)
	}
	return dateFromParts(parts[0], parts[1], parts[2])
}

func dateFromParts(day, month, year string) (CalendarDate, error) {
	var d CalendarDate
	fields := []struct {
		name  string
		value string
		dst   *int
	}{
		{"day", day, &d.Day},
		{"month", month, &d.Month},
		{"year", year, &d.Year},
	}
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f.value))
		if err != nil {
			return CalendarDate{}, fmt.Errorf("%w: %s %q", verbalizer.ErrDateFormat, f.name, f.value)
		}
		*f.dst = n
	}

	if err := d.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return d, nil
}

func (d CalendarDate) Validate() error {
	if d.Day < 1 || d.Day > 31 {
		return fmt.Errorf("%w: day %d", verbalizer.ErrDateRange, d.Day)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", verbalizer.ErrDateRange, d.Month)
	}
	if d.Year < 0 {
		return fmt.Errorf("%w: year %d", verbalizer.ErrDateRange, d.Year)
	}
	return nil
}

// MonthName returns the lexicon name for month, "mwezi <n>" outside 1-12
func (l *Lexicon) MonthName(month int) (string, error) {
	if month >= 1 && month <= len(l.Months) {
		return l.Months[month-1], nil
	}
	words, err := l.Cardinal(int64(month))
	if err != nil {
		return "", err
	}
	return l.MonthFallback + " " + words, nil
}

// Date spells "tarehe <day> mwezi wa <month> mwaka <year>"
func (l *Lexicon) Date(day, month, year int) (string, error) {
	dayWords, err := l.Cardinal(int64(day))
	if err != nil {
		return "", err
	}
	monthName, err := l.MonthName(month)
	if err != nil {
		return "", err
	}
	yearWords, err := l.Cardinal(int64(year))
	if err != nil {
		return "", err
	}
	return strings.Join([]string{
		l.DateMarker, dayWords,
		l.MonthMarker, monthName,
		l.YearMarker, yearWords,
	}, " "), nil
}

// ParseAndVerbalizeDate parses "DD/MM/YYYY" and spells it
func (l *Lexicon) ParseAndVerbalizeDate(text string) (string, error) {
	d, err := ParseDate(text)
	if err != nil {
		return "", err
	}
	return l.Date(d.Day, d.Month, d.Year)
}

// VerbalizeDate spells a date with the built-in lexicon
func VerbalizeDate(day, month, year int) (string, error) {
	return defaultLexicon.Date(day, month, year)
}

// ParseAndVerbalizeDate parses and spells a date with the built-in lexicon
func ParseAndVerbalizeDate(text string) (string, error) {
	return defaultLexicon.ParseAndVerbalizeDate(text)
}
