package verbalizer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Warning describes a match that could not be verbalized. The literal text
// was kept in the output. Start and End are byte offsets into the text the
// pass ran on, which is the NFKC folded text when canonical input is enabled.
type Warning struct {
	Locale   string
	Category Category
	Text     string
	Start    int
	End      int
	Err      error
}

func (w Warning) String() string {
	return fmt.Sprintf("failed to normalize %s %q: %v", w.Category, w.Text, w.Err)
}

// WarningHandler receives recoverable diagnostics from the Normalizer
type WarningHandler interface {
	Warn(w Warning)
}

// WarningHandlerFunc adapts a bare function to WarningHandler
type WarningHandlerFunc func(w Warning)

func (fn WarningHandlerFunc) Warn(w Warning) {
	if fn != nil {
		fn(w)
	}
}

type slogWarnings struct {
	logger *slog.Logger
}

// SlogWarnings logs each warning at warn level on logger, slog.Default() when nil
func SlogWarnings(logger *slog.Logger) WarningHandler {
	return &slogWarnings{logger: logger}
}

func (h *slogWarnings) Warn(w Warning) {
	logger := h.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, "verbalizer: match left unchanged",
		slog.String("locale", w.Locale),
		slog.String("category", w.Category.String()),
		slog.String("text", w.Text),
		slog.Int("start", w.Start),
		slog.Int("end", w.End),
		slog.Any("error", w.Err),
	)
}

// WarningCollector keeps warnings in memory
type WarningCollector struct {
	mu       sync.Mutex
	warnings []Warning
}

var _ WarningHandler = &WarningCollector{}

func (c *WarningCollector) Warn(w Warning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, w)
}

// Warnings returns a copy of the collected warnings
func (c *WarningCollector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Warning(nil), c.warnings...)
}

// Len returns the number of collected warnings
func (c *WarningCollector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warnings)
}

// Reset drops the collected warnings
func (c *WarningCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = nil
}

type multiWarnings []WarningHandler

func (m multiWarnings) Warn(w Warning) {
	for _, h := range m {
		h.Warn(w)
	}
}

// MultiWarnings fans a warning out to every non nil handler
func MultiWarnings(handlers ...WarningHandler) WarningHandler {
	filtered := make(multiWarnings, 0, len(handlers))
	for _, h := range handlers {
		if h == nil {
			continue
		}
		filtered = append(filtered, h)
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return filtered
}
