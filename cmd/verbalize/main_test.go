package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VERBALIZER_LOCALE",
		"VERBALIZER_LOG_LEVEL",
		"VERBALIZER_LEXICON",
		"VERBALIZER_SCALED_SUBUNITS",
		"VERBALIZER_CANONICALIZE",
		"VERBALIZER_STATS",
	} {
		t.Setenv(key, "")
	}
}

func TestRunNormalizesArguments(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	code := run0([]string{"Nina", "KES", "100", "saa", "9:30", "AM"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "Nina shilingi mia moja saa saa tisa na dakika thelathini asubuhi\n", stdout.String())
}

func TestRunReadsStdinWithSinglePass(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("watoto 3\nKES 5\n")
	code := run0([]string{"-pass", "numbers"}, stdin, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "watoto tatu\nKES 5\n", stdout.String())
}

func TestRunLogsWarningsAndStats(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	code := run0([]string{"-stats", "saa 25:00 na 3"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "saa 25:00 na tatu\n", stdout.String())

	logs := stderr.String()
	for _, fragment := range []string{
		"verbalizer: match left unchanged",
		`"category":"time"`,
		`"corr_id":`,
		"verbalize stats",
		`"outcome":"failed"`,
	} {
		assert.Contains(t, logs, fragment)
	}
}

func TestRunRejectsUnknownPass(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	code := run0([]string{"-pass", "ordinals", "1"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "unknown pass")
}

func TestRunUnsupportedLocale(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	code := run0([]string{"-locale", "fr", "1"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unsupported locale")
}
