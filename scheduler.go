package timeago

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Scheduler keeps bound elements rendered with relative time. Renders
// run one at a time in binding order; Bind, Tick and the Run loop are
// serialized so ticks never overlap.
type Scheduler struct {
	formatter *Formatter
	interval  time.Duration
	ceiling   time.Duration
	clock     Clock
	logger    *slog.Logger
	hooks     []RenderHook

	mu       sync.Mutex
	bindings []*binding
}

type binding struct {
	element   Element
	timestamp time.Time
	original  string
	err       error
}

type schedulerConfig struct {
	interval time.Duration
	ceiling  time.Duration
	clock    Clock
	logger   *slog.Logger
	hooks    []RenderHook
}

type SchedulerOption func(*schedulerConfig)

// WithSchedulerInterval sets the refresh period. Zero renders once.
func WithSchedulerInterval(interval time.Duration) SchedulerOption {
	return func(sc *schedulerConfig) {
		sc.interval = interval
	}
}

// WithSchedulerCeiling sets the distance after which the original text
// is shown again. Zero disables the ceiling.
func WithSchedulerCeiling(ceiling time.Duration) SchedulerOption {
	return func(sc *schedulerConfig) {
		sc.ceiling = ceiling
	}
}

func WithSchedulerClock(clock Clock) SchedulerOption {
	return func(sc *schedulerConfig) {
		sc.clock = clock
	}
}

// WithSchedulerLogger sets the logger, slog.Default() is used when nil.
func WithSchedulerLogger(logger *slog.Logger) SchedulerOption {
	return func(sc *schedulerConfig) {
		sc.logger = logger
	}
}

func WithSchedulerHooks(hooks ...RenderHook) SchedulerOption {
	return func(sc *schedulerConfig) {
		sc.hooks = append(sc.hooks, hooks...)
	}
}

// NewScheduler builds a scheduler rendering with formatter.
func NewScheduler(formatter *Formatter, opts ...SchedulerOption) (*Scheduler, error) {
	if formatter == nil {
		return nil, errors.New("timeago: scheduler requires a formatter")
	}

	cfg := schedulerConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.interval < 0 {
		return nil, fmt.Errorf("timeago: negative refresh interval %s", cfg.interval)
	}
	if cfg.ceiling < 0 {
		return nil, fmt.Errorf("timeago: negative ceiling %s", cfg.ceiling)
	}

	clock := cfg.clock
	if clock == nil {
		clock = formatter.clock
	}
	if clock == nil {
		clock = systemClock{}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		formatter: formatter,
		interval:  cfg.interval,
		ceiling:   cfg.ceiling,
		clock:     clock,
		logger:    logger,
		hooks:     filterHooks(cfg.hooks),
	}, nil
}

// Interval returns the refresh period.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Ceiling returns the distance after which original text is restored.
func (s *Scheduler) Ceiling() time.Duration {
	return s.ceiling
}

// Len returns the number of bound elements.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bindings)
}

// Bind captures each element's timestamp and original text, then renders
// it right away. Elements with an invalid timestamp stay bound but are
// never written.
func (s *Scheduler) Bind(elements ...Element) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for _, element := range elements {
		if element == nil {
			continue
		}

		b := &binding{element: element}
		timestamp, err := element.Timestamp()
		if err != nil {
			if !errors.Is(err, ErrInvalidTimestamp) {
				err = fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
			}
			b.err = err
		} else {
			b.timestamp = timestamp
		}
		b.original = element.OriginalText()

		s.bindings = append(s.bindings, b)
		s.logger.Debug("timeago: element bound",
			"timestamp", b.timestamp,
			"valid", b.err == nil,
			"bound", len(s.bindings),
		)

		s.renderLocked(b, now)
	}
}

// Tick renders every bound element against the current clock time.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for _, b := range s.bindings {
		s.renderLocked(b, now)
	}
}

// Run ticks every interval until ctx is done and returns ctx.Err(). With
// a zero interval it returns nil immediately.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Start runs the refresh loop in the background. Stopping the returned
// task ends future ticks; a tick in progress always completes.
func (s *Scheduler) Start(ctx context.Context) *Task {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithCancel(ctx)
	task := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(task.done)
		task.err = s.Run(ctx)
	}()

	return task
}

func (s *Scheduler) renderLocked(b *binding, now time.Time) {
	ctx := &RenderContext{
		Element:   b.element,
		Timestamp: b.timestamp,
		Now:       now,
	}

	if b.err != nil {
		ctx.Error = b.err
		s.runHooks(ctx)
		s.logger.Debug("timeago: skipping element", "error", b.err)
		return
	}

	ctx.ElapsedMs = distance(b.timestamp, now)

	for _, hook := range s.hooks {
		hook.BeforeRender(ctx)
	}

	if s.withinCeiling(ctx.ElapsedMs) {
		ctx.Result, ctx.Bucket = s.formatter.render(ctx.ElapsedMs)
	} else {
		ctx.Absolute = true
		ctx.Result = b.original
	}

	for _, hook := range s.hooks {
		hook.AfterRender(ctx)
	}

	if ctx.Error != nil {
		s.logger.Debug("timeago: render vetoed", "error", ctx.Error)
		return
	}

	b.element.SetText(ctx.Result)
}

func (s *Scheduler) runHooks(ctx *RenderContext) {
	for _, hook := range s.hooks {
		hook.BeforeRender(ctx)
	}
	for _, hook := range s.hooks {
		hook.AfterRender(ctx)
	}
}

func (s *Scheduler) withinCeiling(elapsedMs float64) bool {
	if s.ceiling <= 0 {
		return true
	}
	return elapsedMs < float64(s.ceiling)/float64(time.Millisecond)
}

// Task is the handle of a background refresh loop.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Stop cancels the loop and waits for it to exit.
func (t *Task) Stop() {
	if t == nil {
		return
	}
	t.cancel()
	<-t.done
}

// Done is closed once the loop has exited.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the loop result. It is only meaningful after Done is closed.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}
