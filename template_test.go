package timeago

import (
	"bytes"
	"errors"
	"testing"
	"text/template"
	"time"
)

func TestTemplateHelpers(t *testing.T) {
	now := time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)
	formatter, err := NewFormatter(English(), WithFormatterClock(ClockFunc(func() time.Time { return now })))
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	helpers := TemplateHelpers(formatter, HelperConfig{})

	relative, ok := helpers["timeago"].(func(any) string)
	if !ok {
		t.Fatalf("timeago helper signature mismatch: %T", helpers["timeago"])
	}

	created := now.Add(-3 * time.Hour)
	if got := relative(created); got != "3 hours ago" {
		t.Fatalf("timeago(time) = %q", got)
	}
	if got := relative(&created); got != "3 hours ago" {
		t.Fatalf("timeago(*time) = %q", got)
	}
	if got := relative("2025-10-07T11:58:00Z"); got != "2 minutes ago" {
		t.Fatalf("timeago(string) = %q", got)
	}
	if got := relative(42); got != "42" {
		t.Fatalf("timeago(int) = %q", got)
	}

	tmpl := template.Must(template.New("row").Funcs(helpers).Parse(`{{ timeago .At }} / {{ timeago_in_words .Ms }}`))

	var out bytes.Buffer
	if err := tmpl.Execute(&out, map[string]any{"At": created, "Ms": 90000.0}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "3 hours ago / 2 minutes ago" {
		t.Fatalf("template output = %q", got)
	}
}

func TestTemplateHelpersInvalidHandler(t *testing.T) {
	formatter, err := NewFormatter(English())
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	var called bool
	helpers := TemplateHelpers(formatter, HelperConfig{
		TemplateHelperKey: "ago",
		OnInvalid: func(value any, err error) string {
			called = true
			if !errors.Is(err, ErrInvalidTimestamp) {
				t.Fatalf("unexpected error: %v", err)
			}
			return "unknown"
		},
	})

	relative, ok := helpers["ago"].(func(any) string)
	if !ok {
		t.Fatalf("ago helper missing: %v", helpers)
	}

	if got := relative("not a date"); got != "unknown" || !called {
		t.Fatalf("ago(invalid) = %q called=%v", got, called)
	}
}
