package promhook

import (
	"math"
	"strings"
	"time"

	timeago "github.com/goliatone/go-timeago"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeRelative = "relative"
	OutcomeAbsolute = "absolute"
	OutcomeSkipped  = "skipped"
)

type options struct {
	namespace  string
	locale     string
	registerer prometheus.Registerer
}

// Option configures the metrics hook.
type Option func(*options)

// WithNamespace prefixes metric names, "timeago" by default.
func WithNamespace(namespace string) Option {
	return func(o *options) {
		o.namespace = strings.TrimSpace(namespace)
	}
}

// WithLocale adds a constant locale label to every metric.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = strings.TrimSpace(locale)
	}
}

// WithRegisterer registers the metrics with reg instead of the default
// registerer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// Hook records scheduler renders as Prometheus metrics. Wire it with
// timeago.WithRenderHooks or timeago.WithSchedulerHooks.
type Hook struct {
	renders  *prometheus.CounterVec
	distance *prometheus.HistogramVec
}

var _ timeago.RenderHook = &Hook{}

// New builds the hook and registers its collectors.
func New(opts ...Option) (*Hook, error) {
	cfg := options{namespace: "timeago", registerer: prometheus.DefaultRegisterer}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var constLabels prometheus.Labels
	if cfg.locale != "" {
		constLabels = prometheus.Labels{"locale": cfg.locale}
	}

	h := &Hook{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   cfg.namespace,
				Name:        "renders_total",
				Help:        "Element renders by bucket unit and outcome",
				ConstLabels: constLabels,
			},
			[]string{"unit", "outcome"},
		),
		distance: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   cfg.namespace,
				Name:        "render_distance_seconds",
				Help:        "Absolute distance between the element timestamp and the render time",
				ConstLabels: constLabels,
				// 1s up to roughly 3 years
				Buckets: prometheus.ExponentialBuckets(1, 8, 10),
			},
			[]string{"outcome"},
		),
	}

	if cfg.registerer != nil {
		for _, collector := range []prometheus.Collector{h.renders, h.distance} {
			if err := cfg.registerer.Register(collector); err != nil {
				return nil, err
			}
		}
	}

	return h, nil
}

// MustNew is like New but panics on registration errors.
func MustNew(opts ...Option) *Hook {
	h, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return h
}

func (h *Hook) BeforeRender(*timeago.RenderContext) {}

func (h *Hook) AfterRender(ctx *timeago.RenderContext) {
	if h == nil || ctx == nil {
		return
	}

	switch {
	case ctx.Error != nil:
		h.renders.WithLabelValues("", OutcomeSkipped).Inc()
	case ctx.Absolute:
		h.renders.WithLabelValues("", OutcomeAbsolute).Inc()
		h.observe(ctx, OutcomeAbsolute)
	default:
		h.renders.WithLabelValues(string(ctx.Bucket.Unit), OutcomeRelative).Inc()
		h.observe(ctx, OutcomeRelative)
	}
}

func (h *Hook) observe(ctx *timeago.RenderContext, outcome string) {
	seconds := math.Abs(ctx.ElapsedMs) * float64(time.Millisecond) / float64(time.Second)
	h.distance.WithLabelValues(outcome).Observe(seconds)
}
