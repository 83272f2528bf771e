package timeago

import (
	"math"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (fn ClockFunc) Now() time.Time { return fn() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Formatter phrases elapsed distances with one locale table. It is safe
// for concurrent use as long as the table is not mutated.
type Formatter struct {
	strings     *Strings
	direction   Direction
	allowFuture bool
	clock       Clock
}

type formatterConfig struct {
	direction   Direction
	allowFuture bool
	clock       Clock
}

type FormatterOption func(*formatterConfig)

// WithFormatterDirection overrides the table direction
func WithFormatterDirection(dir Direction) FormatterOption {
	return func(fc *formatterConfig) {
		fc.direction = dir
	}
}

// WithFormatterAllowFuture enables from-now phrasing for negative distances
func WithFormatterAllowFuture(allow bool) FormatterOption {
	return func(fc *formatterConfig) {
		fc.allowFuture = allow
	}
}

func WithFormatterClock(clock Clock) FormatterOption {
	return func(fc *formatterConfig) {
		fc.clock = clock
	}
}

// NewFormatter validates table and binds it with the given options.
func NewFormatter(table *Strings, opts ...FormatterOption) (*Formatter, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	cfg := formatterConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	direction := cfg.direction
	if direction == "" {
		direction = table.direction()
	}

	clock := cfg.clock
	if clock == nil {
		clock = systemClock{}
	}

	return &Formatter{
		strings:     table,
		direction:   direction,
		allowFuture: cfg.allowFuture,
		clock:       clock,
	}, nil
}

// Strings returns the bound table.
func (f *Formatter) Strings() *Strings {
	if f == nil {
		return nil
	}
	return f.strings
}

// Direction returns the effective composition direction.
func (f *Formatter) Direction() Direction {
	if f == nil {
		return LTR
	}
	return f.direction
}

// InWords phrases a distance in milliseconds, positive for the past.
func (f *Formatter) InWords(elapsedMs float64) string {
	text, _ := f.render(elapsedMs)
	return text
}

// FormatFrom phrases t relative to now.
func (f *Formatter) FormatFrom(t, now time.Time) string {
	return f.InWords(distance(t, now))
}

// Format phrases t relative to the formatter clock.
func (f *Formatter) Format(t time.Time) string {
	return f.FormatFrom(t, f.now())
}

func (f *Formatter) render(elapsedMs float64) (string, Bucket) {
	if f == nil {
		return "", Bucket{}
	}

	future := f.allowFuture && elapsedMs < 0
	magnitude := math.Abs(elapsedMs)

	bucket := BucketFor(magnitude)
	prefix, suffix := f.strings.Affixes(bucket.Unit, future)
	phrase := f.strings.Phrase(bucket.Unit, bucket.Count, magnitude)

	return Compose(prefix, phrase, suffix, f.direction), bucket
}

func (f *Formatter) now() time.Time {
	if f == nil || f.clock == nil {
		return time.Now()
	}
	return f.clock.Now()
}

// distance returns now - t in milliseconds.
func distance(t, now time.Time) float64 {
	return float64(now.Sub(t)) / float64(time.Millisecond)
}

var defaultFormatter = mustDefaultFormatter()

func mustDefaultFormatter() *Formatter {
	formatter, err := NewFormatter(English())
	if err != nil {
		panic(err)
	}
	return formatter
}

// Format phrases t relative to the current time in English.
func Format(t time.Time) string {
	return defaultFormatter.Format(t)
}

// InWords phrases a millisecond distance in English.
func InWords(elapsedMs float64) string {
	return defaultFormatter.InWords(elapsedMs)
}
