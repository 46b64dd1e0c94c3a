package swahili

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	verbalizer "github.com/goliatone/go-verbalizer"
)

func TestVerbalizeTime(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"14:00", "saa kumi na nne"},
		{"14:30", "saa kumi na nne na dakika thelathini"},
		{"14:30:45", "saa kumi na nne na dakika thelathini na sekunde arobaini na tano"},
		{"14:30:00", "saa kumi na nne na dakika thelathini"},
		{"0:05", "saa sifuri na dakika tano"},
		{"23:59:59", "saa ishirini na tatu na dakika hamsini na tisa na sekunde hamsini na tisa"},
		{"9:30 AM", "saa tisa na dakika thelathini asubuhi"},
		{"3:45 PM", "saa kumi na tano na dakika arobaini na tano jioni"},
		{"3:45pm", "saa kumi na tano na dakika arobaini na tano jioni"},
		{"12:00 AM", "saa sifuri asubuhi"},
		{"12:00 PM", "saa kumi na mbili jioni"},
		{"12:15 am", "saa sifuri na dakika kumi na tano asubuhi"},
		{"1:00:30 PM", "saa kumi na tatu na sekunde thelathini jioni"},
	}

	for _, tc := range cases {
		got, err := VerbalizeTime(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseClockTime(t *testing.T) {
	got, err := ParseClockTime(" 7:05:09 pm ")
	require.NoError(t, err)
	assert.Equal(t, ClockTime{Hour: 7, Minute: 5, Second: 9, HasSecond: true, Period: PeriodPM}, got)
	assert.Equal(t, 19, got.Hour24())

	got, err = ParseClockTime("18:20")
	require.NoError(t, err)
	assert.Equal(t, PeriodNone, got.Period)
	assert.False(t, got.HasSecond)
	assert.Equal(t, 18, got.Hour24())
}

func TestHour24(t *testing.T) {
	cases := []struct {
		hour   int
		period Period
		want   int
	}{
		{12, PeriodAM, 0},
		{12, PeriodPM, 12},
		{1, PeriodAM, 1},
		{1, PeriodPM, 13},
		{11, PeriodPM, 23},
		{0, PeriodNone, 0},
		{17, PeriodNone, 17},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClockTime{Hour: tc.hour, Period: tc.period}.Hour24(), "%d %s", tc.hour, tc.period)
	}
}

func TestVerbalizeTimeErrors(t *testing.T) {
	invalid := []string{
		"14",
		"1:2:3:4",
		"24:00",
		"12:60",
		"10:30:60",
		"0:30 AM",
		"13:00 PM",
		"ab:cd",
		"123:00",
		"",
	}
	for _, in := range invalid {
		_, err := VerbalizeTime(in)
		assert.ErrorIs(t, err, verbalizer.ErrInvalidTime, in)
	}
}

func TestClockRejectsUnvalidatedValues(t *testing.T) {
	lex := DefaultLexicon()

	_, err := lex.Clock(ClockTime{Hour: -1})
	assert.ErrorIs(t, err, verbalizer.ErrInvalidTime)

	_, err = lex.Clock(ClockTime{Hour: 5, Period: Period("XM")})
	assert.ErrorIs(t, err, verbalizer.ErrInvalidTime)
}
