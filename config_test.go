package timeago

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Locale != "en" || cfg.MatchedLocale() != "en" {
		t.Fatalf("locale = %q matched = %q", cfg.Locale, cfg.MatchedLocale())
	}
	if got := cfg.RefreshInterval.Duration(); got != time.Minute {
		t.Fatalf("refresh interval = %s", got)
	}
	if got := cfg.ShowNormalDateAfter.Duration(); got != 7*24*time.Hour {
		t.Fatalf("show normal date after = %s", got)
	}
	if cfg.AllowFuture {
		t.Fatal("allow future should default to false")
	}
	if cfg.Logger == nil || cfg.Resolver == nil || cfg.Store == nil {
		t.Fatal("expected logger, resolver and store defaults")
	}

	locales := cfg.Store.Locales()
	if len(locales) != 2 || locales[0] != "ar" || locales[1] != "en" {
		t.Fatalf("Locales() = %v", locales)
	}
}

func TestNewConfigLocaleLookup(t *testing.T) {
	cfg, err := NewConfig(WithLocale("ar_EG"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.Locale != "ar-EG" || cfg.MatchedLocale() != "ar" {
		t.Fatalf("locale = %q matched = %q", cfg.Locale, cfg.MatchedLocale())
	}

	formatter, err := cfg.BuildFormatter()
	if err != nil {
		t.Fatalf("BuildFormatter: %v", err)
	}
	if formatter.Direction() != RTL {
		t.Fatalf("direction = %q", formatter.Direction())
	}
	if got := formatter.InWords(2 * hour); got != "منذ ساعتين" {
		t.Fatalf("InWords = %q", got)
	}
}

func TestNewConfigErrors(t *testing.T) {
	incomplete := English()
	delete(incomplete.Units, Years)

	tests := []struct {
		name   string
		opts   []Option
		target error
	}{
		{name: "unknown locale", opts: []Option{WithLocale("fr")}, target: ErrUnknownLocale},
		{name: "incomplete table", opts: []Option{WithStrings(incomplete)}, target: ErrIncompleteLocaleTable},
		{
			name: "failing loader",
			opts: []Option{WithLoader(LoaderFunc(func() (Tables, error) {
				return nil, ErrNonExhaustiveRangeRules
			}))},
			target: ErrNonExhaustiveRangeRules,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewConfig(tc.opts...); !errors.Is(err, tc.target) {
				t.Fatalf("NewConfig() error = %v want %v", err, tc.target)
			}
		})
	}

	if _, err := NewConfig(WithDirection("up")); err == nil {
		t.Fatal("expected error for unknown direction")
	}
	if _, err := NewConfig(WithSettingsFile(filepath.Join("testdata", "missing.yaml"))); err == nil {
		t.Fatal("expected error for missing settings file")
	}
}

func TestNewConfigFallback(t *testing.T) {
	cfg, err := NewConfig(WithLocale("fa"), WithFallback("fa", "ar"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.MatchedLocale() != "ar" {
		t.Fatalf("matched = %q", cfg.MatchedLocale())
	}
}

func TestNewConfigLoaderOverlaysDefaults(t *testing.T) {
	cfg, err := NewConfig(
		WithLoader(NewFileLoader(filepath.Join("testdata", "locales", "en.json"))),
		WithLocale("en-GB"),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.MatchedLocale() != "en-GB" {
		t.Fatalf("matched = %q", cfg.MatchedLocale())
	}

	locales := cfg.Store.Locales()
	if len(locales) != 3 || locales[0] != "ar" || locales[1] != "en" || locales[2] != "en-GB" {
		t.Fatalf("Locales() = %v", locales)
	}
}

func TestWithSettingsFile(t *testing.T) {
	cfg, err := NewConfig(WithSettingsFile(filepath.Join("testdata", "settings.yaml")))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.MatchedLocale() != "he" {
		t.Fatalf("matched = %q", cfg.MatchedLocale())
	}
	if got := cfg.RefreshInterval.Duration(); got != 30*time.Second {
		t.Fatalf("refresh interval = %s", got)
	}
	if got := cfg.ShowNormalDateAfter.Duration(); got != 48*time.Hour {
		t.Fatalf("show normal date after = %s", got)
	}
	if !cfg.AllowFuture {
		t.Fatal("allow future not applied")
	}

	scheduler, err := cfg.BuildScheduler()
	if err != nil {
		t.Fatalf("BuildScheduler: %v", err)
	}
	if scheduler.Interval() != 30*time.Second || scheduler.Ceiling() != 48*time.Hour {
		t.Fatalf("scheduler interval = %s ceiling = %s", scheduler.Interval(), scheduler.Ceiling())
	}
}

func TestWithSettingsFileLaterOptionsWin(t *testing.T) {
	cfg, err := NewConfig(
		WithSettingsFile(filepath.Join("testdata", "settings.yaml")),
		WithLocale("en"),
		WithRefreshInterval(Millis(0)),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.MatchedLocale() != "en" {
		t.Fatalf("matched = %q", cfg.MatchedLocale())
	}
	if got := cfg.RefreshInterval.Duration(); got != 0 {
		t.Fatalf("refresh interval = %s", got)
	}
}

func TestConfigBuildScheduler(t *testing.T) {
	clock := newFakeClock(schedulerBase)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var rendered []string
	hook := RenderHookFuncs{
		After: func(ctx *RenderContext) {
			rendered = append(rendered, ctx.Result)
		},
	}

	cfg, err := NewConfig(
		WithClock(clock),
		WithLogger(logger),
		WithRenderHooks(hook, nil),
		WithShowNormalDateAfter(Phrase("1 day")),
		WithDirection(RTL),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	scheduler, err := cfg.BuildScheduler()
	if err != nil {
		t.Fatalf("BuildScheduler: %v", err)
	}

	recent := nodeAt(schedulerBase.Add(-10*time.Minute), "")
	old := nodeAt(schedulerBase.Add(-3*24*time.Hour), "October 4")
	scheduler.Bind(recent, old)

	if got := recent.Text(); got != "ago 10 minutes" {
		t.Fatalf("recent text = %q", got)
	}
	if got := old.Text(); got != "October 4" {
		t.Fatalf("old text = %q", got)
	}
	if len(rendered) != 2 {
		t.Fatalf("hook saw %d renders", len(rendered))
	}
	if logs.Len() == 0 {
		t.Fatal("expected debug logs from bind")
	}
}
