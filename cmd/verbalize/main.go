// Command verbalize spells out numbers, currency amounts, times and dates in
// text read from arguments or stdin.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	verbalizer "github.com/goliatone/go-verbalizer"
	"github.com/goliatone/go-verbalizer/internal/config"
	"github.com/goliatone/go-verbalizer/languages/swahili"
)

// version is set at build time via -ldflags.
var version = "dev"

var errUsage = errors.New("usage")

func main() {
	os.Exit(run0(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run0(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Load .env file if present.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})).With("corr_id", uuid.NewString())
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg, args, stdin, stdout, stderr, logger); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		logger.Error("fatal error", "error", err)
		return 1
	}
	return 0
}

type options struct {
	config.Config
	pass string
}

func parseFlags(cfg config.Config, args []string, stderr io.Writer) (options, []string, error) {
	opts := options{Config: cfg, pass: "all"}

	fs := flag.NewFlagSet("verbalize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Locale, "locale", cfg.Locale, "locale of the input text")
	fs.StringVar(&opts.LexiconPath, "lexicon", cfg.LexiconPath, "JSON or YAML lexicon override")
	fs.StringVar(&opts.pass, "pass", opts.pass, "passes to run: all, numbers, currency, time, dates")
	fs.BoolVar(&opts.ScaledSubunits, "scaled-subunits", cfg.ScaledSubunits, "read currency fractions as hundredths")
	fs.BoolVar(&opts.Canonicalize, "canonicalize", cfg.Canonicalize, "apply NFKC to the input first")
	fs.BoolVar(&opts.Stats, "stats", cfg.Stats, "log match counts on exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: verbalize [flags] [text ...]\n\nReads stdin line by line when no text is given.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, nil, errUsage
	}
	if _, err := passFunc(nil, opts.pass); err != nil {
		fmt.Fprintln(stderr, err)
		return options{}, nil, errUsage
	}
	return opts, fs.Args(), nil
}

func run(ctx context.Context, cfg config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger) error {
	opts, rest, err := parseFlags(cfg, args, stderr)
	if err != nil {
		return err
	}

	logger.Debug("verbalize starting", "version", version, "locale", opts.Locale, "pass", opts.pass)

	var (
		hooks  []verbalizer.Hook
		reader *sdkmetric.ManualReader
	)
	if opts.Stats {
		reader = sdkmetric.NewManualReader()
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = provider.Shutdown(context.Background()) }()
		otel.SetMeterProvider(provider)

		hook, err := verbalizer.NewMetricsHook(otel.Meter("github.com/goliatone/go-verbalizer"))
		if err != nil {
			return err
		}
		hooks = append(hooks, hook)
	}

	vcfg, err := verbalizer.NewConfig(
		verbalizer.WithVariant(swahili.Locale, swahili.Factory),
		verbalizer.WithDefaultLocale(opts.Locale),
		verbalizer.WithWarningHandler(verbalizer.SlogWarnings(logger)),
		verbalizer.WithHooks(hooks...),
		verbalizer.WithInputCanonicalization(opts.Canonicalize),
		verbalizer.WithLexiconFile(opts.LexiconPath),
		verbalizer.WithScaledSubunits(opts.ScaledSubunits),
	)
	if err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	normalizer, err := vcfg.BuildNormalizer(opts.Locale)
	if err != nil {
		return fmt.Errorf("build normalizer: %w", err)
	}
	apply, err := passFunc(normalizer, opts.pass)
	if err != nil {
		return err
	}

	if len(rest) > 0 {
		fmt.Fprintln(stdout, apply(strings.Join(rest, " ")))
	} else if err := processLines(stdin, stdout, apply); err != nil {
		return err
	}

	if reader != nil {
		return logStats(ctx, reader, logger)
	}
	return nil
}

func passFunc(n *verbalizer.Normalizer, pass string) (func(string) string, error) {
	switch strings.ToLower(pass) {
	case "all", "":
		return n.Normalize, nil
	case "numbers":
		return n.NormalizeNumbers, nil
	case "currency":
		return n.NormalizeCurrency, nil
	case "time":
		return n.NormalizeTime, nil
	case "dates":
		return n.NormalizeDates, nil
	default:
		return nil, fmt.Errorf("unknown pass %q, want all, numbers, currency, time or dates", pass)
	}
}

func processLines(r io.Reader, w io.Writer, apply func(string) string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	out := bufio.NewWriter(w)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, apply(scanner.Text())); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func logStats(ctx context.Context, reader *sdkmetric.ManualReader, logger *slog.Logger) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return fmt.Errorf("collect metrics: %w", err)
	}

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				category, _ := dp.Attributes.Value("category")
				outcome, _ := dp.Attributes.Value("outcome")
				logger.Info("verbalize stats",
					"metric", m.Name,
					"category", category.AsString(),
					"outcome", outcome.AsString(),
					"count", dp.Value,
				)
			}
		}
	}
	return nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
