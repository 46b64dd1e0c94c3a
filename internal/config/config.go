// Package config loads command line configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the settings shared by the verbalize command.
type Config struct {
	Locale         string // BCP 47 tag, "sw" by default.
	LogLevel       string // "debug", "info", "warn" or "error".
	LexiconPath    string // Optional JSON or YAML lexicon override.
	ScaledSubunits bool   // Read currency fractions as hundredths.
	Canonicalize   bool   // Apply NFKC to input before matching.
	Stats          bool   // Log per category match counts on exit.
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	scaled, err := envBool("VERBALIZER_SCALED_SUBUNITS", false)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	canonicalize, err := envBool("VERBALIZER_CANONICALIZE", false)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	stats, err := envBool("VERBALIZER_STATS", false)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := Config{
		Locale:         envStr("VERBALIZER_LOCALE", "sw"),
		LogLevel:       strings.ToLower(envStr("VERBALIZER_LOG_LEVEL", "info")),
		LexiconPath:    envStr("VERBALIZER_LEXICON", ""),
		ScaledSubunits: scaled,
		Canonicalize:   canonicalize,
		Stats:          stats,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("config: VERBALIZER_LOCALE must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: VERBALIZER_LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); err != nil {
			return fmt.Errorf("config: VERBALIZER_LEXICON: %w", err)
		}
	}
	return nil
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s=%q is not a valid boolean", key, v)
	}
	return b, nil
}
