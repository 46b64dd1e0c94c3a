package swahili

import (
	"fmt"
	"strconv"
	"strings"

	verbalizer "github.com/goliatone/go-verbalizer"
)

// Period is the 12-hour clock marker, empty for 24-hour times
type Period string

const (
	PeriodNone Period = ""
	PeriodAM   Period = "AM"
	PeriodPM   Period = "PM"
)

// ClockTime is a parsed clock reading
type ClockTime struct {
	Hour      int
	Minute    int
	Second    int
	HasSecond bool
	Period    Period
}

// Hour24 maps the reading onto 0-23. 12 AM is 0 and 12 PM stays 12.
func (t ClockTime) Hour24() int {
	switch {
	case t.Period == PeriodPM && t.Hour != 12:
		return t.Hour + 12
	case t.Period == PeriodAM && t.Hour == 12:
		return 0
	default:
		return t.Hour
	}
}

// ParseClockTime reads "H:MM", "H:MM:SS" with an optional trailing AM/PM
func ParseClockTime(text string) (ClockTime, error) {
	text = strings.TrimSpace(text)

	var period string
	if upper := strings.ToUpper(text); strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		period = upper[len(upper)-2:]
		text = strings.TrimSpace(text[:len(text)-2])
	}

	parts := strings.Split(text, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, fmt.Errorf("%w: %q needs hour and minute", verbalizer.ErrInvalidTime, text)
	}

	var second string
	if len(parts) == 3 {
		second = parts[2]
	}
	return clockFromParts(parts[0], parts[1], second, period)
}

func clockFromParts(hour, minute, second, period string) (ClockTime, error) {
	var t ClockTime
	var err error

	if t.Hour, err = clockField("hour", hour); err != nil {
		return ClockTime{}, err
	}
	if t.Minute, err = clockField("minute", minute); err != nil {
		return ClockTime{}, err
	}
	if second != "" {
		if t.Second, err = clockField("second", second); err != nil {
			return ClockTime{}, err
		}
		t.HasSecond = true
	}
	t.Period = Period(strings.ToUpper(period))

	if err := t.validate(); err != nil {
		return ClockTime{}, err
	}
	return t, nil
}

func clockField(name, value string) (int, error) {
	if !isDigits(value) || len(value) > 2 {
		return 0, fmt.Errorf("%w: %s %q", verbalizer.ErrInvalidTime, name, value)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", verbalizer.ErrInvalidTime, name, value)
	}
	return n, nil
}

func (t ClockTime) validate() error {
	switch t.Period {
	case PeriodNone:
		if t.Hour < 0 || t.Hour > 23 {
			return fmt.Errorf("%w: hour %d", verbalizer.ErrInvalidTime, t.Hour)
		}
	case PeriodAM, PeriodPM:
		if t.Hour < 1 || t.Hour > 12 {
			return fmt.Errorf("%w: hour %d with %s", verbalizer.ErrInvalidTime, t.Hour, t.Period)
		}
	default:
		return fmt.Errorf("%w: period %q", verbalizer.ErrInvalidTime, t.Period)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("%w: minute %d", verbalizer.ErrInvalidTime, t.Minute)
	}
	if t.Second < 0 || t.Second > 59 {
		return fmt.Errorf("%w: second %d", verbalizer.ErrInvalidTime, t.Second)
	}
	return nil
}

// Clock spells t. Zero minutes and seconds are left out; the period tag is
// only added for 12-hour readings.
func (l *Lexicon) Clock(t ClockTime) (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(l.Hour)
	b.WriteString(" ")
	b.WriteString(l.cardinal(int64(t.Hour24())))

	if t.Minute > 0 {
		fmt.Fprintf(&b, " %s %s %s", l.Conjunction, l.Minute, l.cardinal(int64(t.Minute)))
	}
	if t.HasSecond && t.Second > 0 {
		fmt.Fprintf(&b, " %s %s %s", l.Conjunction, l.Second, l.cardinal(int64(t.Second)))
	}

	switch t.Period {
	case PeriodAM:
		b.WriteString(" " + l.Morning)
	case PeriodPM:
		b.WriteString(" " + l.Evening)
	}
	return b.String(), nil
}

// Time parses and spells a clock time string
func (l *Lexicon) Time(text string) (string, error) {
	t, err := ParseClockTime(text)
	if err != nil {
		return "", err
	}
	return l.Clock(t)
}

// VerbalizeTime spells a clock time string with the built-in lexicon
func VerbalizeTime(text string) (string, error) {
	return defaultLexicon.Time(text)
}
