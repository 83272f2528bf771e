package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	timeago "github.com/goliatone/go-timeago"
)

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

type cliConfig struct {
	locale      string
	settings    string
	files       localeFlag
	now         string
	direction   string
	allowFuture bool
	watch       time.Duration
	ceiling     time.Duration
	verbose     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "timeago: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, timestamps, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts, err := configOptions(cfg, logger)
	if err != nil {
		return err
	}

	conf, err := timeago.NewConfig(opts...)
	if err != nil {
		return err
	}
	logger.Debug("locale resolved", "requested", conf.Locale, "matched", conf.MatchedLocale())

	scheduler, err := conf.BuildScheduler()
	if err != nil {
		return err
	}

	for _, value := range timestamps {
		scheduler.Bind(&lineElement{value: value, out: stdout})
	}

	if cfg.watch <= 0 {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, []string, error) {
	var cfg cliConfig

	fs := flag.NewFlagSet("timeago", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.locale, "locale", "", "locale to phrase timestamps in")
	fs.StringVar(&cfg.settings, "settings", "", "YAML settings file")
	fs.Var(&cfg.files, "locales", "locale table files (repeatable or comma separated)")
	fs.StringVar(&cfg.now, "now", "", "reference time, defaults to the current time")
	fs.StringVar(&cfg.direction, "direction", "", "override the table direction (ltr or rtl)")
	fs.BoolVar(&cfg.allowFuture, "future", false, "phrase future timestamps as from now")
	fs.DurationVar(&cfg.watch, "watch", 0, "refresh interval, print once when zero")
	fs.DurationVar(&cfg.ceiling, "ceiling", 0, "show the timestamp as is past this distance")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}

	timestamps := fs.Args()
	if len(timestamps) == 0 {
		return cfg, nil, errors.New("at least one timestamp is required")
	}
	return cfg, timestamps, nil
}

func configOptions(cfg cliConfig, logger *slog.Logger) ([]timeago.Option, error) {
	opts := []timeago.Option{timeago.WithLogger(logger)}

	if cfg.settings != "" {
		opts = append(opts, timeago.WithSettingsFile(cfg.settings))
	}
	if len(cfg.files.items) > 0 {
		opts = append(opts, timeago.WithLoader(timeago.NewFileLoader(cfg.files.items...)))
	}
	if cfg.locale != "" {
		opts = append(opts, timeago.WithLocale(cfg.locale))
	}
	if cfg.direction != "" {
		opts = append(opts, timeago.WithDirection(timeago.Direction(strings.ToLower(cfg.direction))))
	}
	if cfg.allowFuture {
		opts = append(opts, timeago.WithAllowFuture(true))
	}
	if cfg.ceiling > 0 {
		opts = append(opts, timeago.WithShowNormalDateAfter(timeago.Millis(cfg.ceiling.Milliseconds())))
	}

	// without -watch, render once; an explicit -watch replaces any settings interval
	opts = append(opts, timeago.WithRefreshInterval(timeago.Millis(cfg.watch.Milliseconds())))

	if cfg.now != "" {
		now, err := timeago.Parse(cfg.now)
		if err != nil {
			return nil, fmt.Errorf("-now: %w", err)
		}
		opts = append(opts, timeago.WithClock(timeago.ClockFunc(func() time.Time { return now })))
	}

	return opts, nil
}

// lineElement prints the rendered text for a command line timestamp.
type lineElement struct {
	mu    sync.Mutex
	value string
	out   io.Writer
}

func (l *lineElement) Timestamp() (time.Time, error) {
	return timeago.Parse(l.value)
}

func (l *lineElement) OriginalText() string {
	return l.value
}

func (l *lineElement) SetText(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s\t%s\n", l.value, text)
}
