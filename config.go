package timeago

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultLocale              = "en"
	defaultRefreshInterval     = "minute"
	defaultShowNormalDateAfter = "7 days"
)

// Config captures formatter and scheduler setup
type Config struct {
	Locale              string
	Strings             *Strings
	Store               Store
	Loader              Loader
	Resolver            FallbackResolver
	RefreshInterval     DurationSpec
	ShowNormalDateAfter DurationSpec
	AllowFuture         bool
	// Direction overrides the table direction when set.
	Direction Direction
	Logger    *slog.Logger
	Hooks     []RenderHook
	Clock     Clock

	matchedLocale string
}

// Settings is the YAML settings file read by WithSettingsFile.
type Settings struct {
	Locale              string       `yaml:"locale"`
	RefreshInterval     DurationSpec `yaml:"refresh_interval"`
	ShowNormalDateAfter DurationSpec `yaml:"show_normal_date_after"`
	AllowFuture         *bool        `yaml:"allow_future"`
	Direction           string       `yaml:"direction"`
	// LocaleFiles are resolved relative to the settings file.
	LocaleFiles []string `yaml:"locale_files"`
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. The locale table is
// resolved and validated here so broken tables fail before any render.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.RefreshInterval.IsZero() {
		cfg.RefreshInterval = Phrase(defaultRefreshInterval)
	}

	if cfg.ShowNormalDateAfter.IsZero() {
		cfg.ShowNormalDateAfter = Phrase(defaultShowNormalDateAfter)
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	switch cfg.Direction {
	case "", LTR, RTL:
	default:
		return nil, fmt.Errorf("timeago: unknown direction %q", cfg.Direction)
	}

	if err := cfg.ensureStore(); err != nil {
		return nil, err
	}

	if err := cfg.ensureStrings(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithLocale selects the table looked up in the store
func WithLocale(locale string) Option {
	return func(c *Config) error {
		c.Locale = normalizeLocale(locale)
		return nil
	}
}

// WithStrings uses table directly, bypassing the store
func WithStrings(table *Strings) Option {
	return func(c *Config) error {
		c.Strings = table
		return nil
	}
}

func WithStore(store Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithRefreshInterval sets how often bound elements are re-rendered.
// Millis(0) renders once.
func WithRefreshInterval(spec DurationSpec) Option {
	return func(c *Config) error {
		c.RefreshInterval = spec
		return nil
	}
}

// WithShowNormalDateAfter sets the distance after which the original
// text is shown. Millis(0) never shows it.
func WithShowNormalDateAfter(spec DurationSpec) Option {
	return func(c *Config) error {
		c.ShowNormalDateAfter = spec
		return nil
	}
}

func WithAllowFuture(allow bool) Option {
	return func(c *Config) error {
		c.AllowFuture = allow
		return nil
	}
}

func WithDirection(dir Direction) Option {
	return func(c *Config) error {
		c.Direction = dir
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

func WithRenderHooks(hooks ...RenderHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

func WithClock(clock Clock) Option {
	return func(c *Config) error {
		c.Clock = clock
		return nil
	}
}

// WithSettingsFile applies a YAML settings file. Options after it win.
func WithSettingsFile(path string) Option {
	return func(c *Config) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("timeago: read settings %s: %w", path, err)
		}

		var settings Settings
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("timeago: decode settings %s: %w", path, err)
		}

		return c.applySettings(filepath.Dir(path), settings)
	}
}

func (cfg *Config) applySettings(baseDir string, settings Settings) error {
	if settings.Locale != "" {
		cfg.Locale = normalizeLocale(settings.Locale)
	}
	if !settings.RefreshInterval.IsZero() {
		cfg.RefreshInterval = settings.RefreshInterval
	}
	if !settings.ShowNormalDateAfter.IsZero() {
		cfg.ShowNormalDateAfter = settings.ShowNormalDateAfter
	}
	if settings.AllowFuture != nil {
		cfg.AllowFuture = *settings.AllowFuture
	}
	if settings.Direction != "" {
		dir, ok := parseDirection(settings.Direction)
		if !ok {
			return fmt.Errorf("timeago: unknown direction %q", settings.Direction)
		}
		cfg.Direction = dir
	}
	if len(settings.LocaleFiles) > 0 {
		paths := make([]string, 0, len(settings.LocaleFiles))
		for _, file := range settings.LocaleFiles {
			if !filepath.IsAbs(file) {
				file = filepath.Join(baseDir, file)
			}
			paths = append(paths, file)
		}
		cfg.Loader = NewFileLoader(paths...)
	}
	return nil
}

// MatchedLocale returns the store locale the table was taken from, empty
// when the table was set with WithStrings.
func (cfg *Config) MatchedLocale() string {
	if cfg == nil {
		return ""
	}
	return cfg.matchedLocale
}

// BuildFormatter binds the configured table and settings.
func (cfg *Config) BuildFormatter() (*Formatter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrIncompleteLocaleTable)
	}

	return NewFormatter(cfg.Strings,
		WithFormatterDirection(cfg.Direction),
		WithFormatterAllowFuture(cfg.AllowFuture),
		WithFormatterClock(cfg.Clock))
}

// BuildScheduler builds a formatter and a scheduler around it.
func (cfg *Config) BuildScheduler() (*Scheduler, error) {
	formatter, err := cfg.BuildFormatter()
	if err != nil {
		return nil, err
	}

	return NewScheduler(formatter,
		WithSchedulerInterval(cfg.RefreshInterval.Duration()),
		WithSchedulerCeiling(cfg.ShowNormalDateAfter.Duration()),
		WithSchedulerClock(cfg.Clock),
		WithSchedulerLogger(cfg.Logger),
		WithSchedulerHooks(cfg.Hooks...))
}

func (cfg *Config) ensureStore() error {
	if cfg.Store != nil {
		return nil
	}

	if cfg.Loader == nil {
		cfg.Store = NewDefaultStore()
		return nil
	}

	loaded, err := cfg.Loader.Load()
	if err != nil {
		return err
	}

	tables := defaultTables()
	for locale, table := range loaded {
		tables[locale] = table
	}
	cfg.Store = NewStaticStore(tables)
	return nil
}

func (cfg *Config) ensureStrings() error {
	if cfg.Strings != nil {
		return cfg.Strings.Validate()
	}

	locale := cfg.Locale
	if locale == "" {
		locale = defaultLocale
	}

	table, matched, ok := lookupStrings(cfg.Store, cfg.Resolver, locale)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	if err := table.Validate(); err != nil {
		return err
	}

	cfg.Locale = locale
	cfg.Strings = table
	cfg.matchedLocale = matched
	return nil
}
