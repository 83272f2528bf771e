package timeago

import "time"

// RenderHook observes every element render performed by a Scheduler.
type RenderHook interface {
	BeforeRender(ctx *RenderContext)
	AfterRender(ctx *RenderContext)
}

// RenderContext carries the state of a single element render. AfterRender
// may rewrite Result before it is written to the element. When Error is
// set nothing is written.
type RenderContext struct {
	Element   Element
	Timestamp time.Time
	Now       time.Time
	ElapsedMs float64
	Bucket    Bucket
	// Absolute is set when the ceiling was crossed and Result holds the
	// original text.
	Absolute bool
	Result   string
	Error    error
	Metadata map[string]any
}

func (ctx *RenderContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *RenderContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *RenderContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type RenderHookFuncs struct {
	Before func(ctx *RenderContext)
	After  func(ctx *RenderContext)
}

func (h RenderHookFuncs) BeforeRender(ctx *RenderContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h RenderHookFuncs) AfterRender(ctx *RenderContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterHooks(hooks []RenderHook) []RenderHook {
	if len(hooks) == 0 {
		return nil
	}

	filtered := make([]RenderHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}

	if len(filtered) == 0 {
		return nil
	}
	return filtered
}
