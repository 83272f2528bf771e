package timeago

import (
	"testing"
	"time"
)

func TestFormatterInWordsEnglish(t *testing.T) {
	formatter, err := NewFormatter(English())
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	tests := []struct {
		elapsed float64
		want    string
	}{
		{elapsed: 30 * second, want: "less than a minute ago"},
		{elapsed: 60 * second, want: "a minute ago"},
		{elapsed: 2 * minute, want: "2 minutes ago"},
		{elapsed: 60 * minute, want: "an hour ago"},
		{elapsed: 5 * hour, want: "5 hours ago"},
		{elapsed: 30 * hour, want: "a day ago"},
		{elapsed: 4 * day, want: "4 days ago"},
		{elapsed: 40 * day, want: "a month ago"},
		{elapsed: 100 * day, want: "3 months ago"},
		{elapsed: 400 * day, want: "a year ago"},
		{elapsed: 1100 * day, want: "3 years ago"},
		{elapsed: -2 * minute, want: "2 minutes ago"},
	}

	for _, tc := range tests {
		if got := formatter.InWords(tc.elapsed); got != tc.want {
			t.Fatalf("InWords(%v) = %q want %q", tc.elapsed, got, tc.want)
		}
	}
}

func TestFormatterAllowFuture(t *testing.T) {
	formatter, err := NewFormatter(English(), WithFormatterAllowFuture(true))
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	if got := formatter.InWords(-2 * minute); got != "2 minutes from now" {
		t.Fatalf("future InWords = %q", got)
	}
	if got := formatter.InWords(2 * minute); got != "2 minutes ago" {
		t.Fatalf("past InWords = %q", got)
	}
}

func TestFormatterArabic(t *testing.T) {
	formatter, err := NewFormatter(Arabic())
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	if formatter.Direction() != RTL {
		t.Fatalf("Direction() = %s", formatter.Direction())
	}

	tests := []struct {
		elapsed float64
		want    string
	}{
		{elapsed: 30 * second, want: "منذ أقل من دقيقة"},
		{elapsed: 60 * second, want: "منذ دقيقة"},
		{elapsed: 2 * minute, want: "منذ دقيقتين"},
		{elapsed: 5 * minute, want: "منذ 5 دقائق"},
		{elapsed: 10 * minute, want: "منذ 10 دقائق"},
		{elapsed: 11 * minute, want: "منذ 11 دقيقة"},
		{elapsed: 2 * hour, want: "منذ ساعتين"},
		{elapsed: 30 * hour, want: "امس"},
		{elapsed: 2 * day, want: "منذ يومين"},
		{elapsed: 5 * day, want: "منذ 5 أيام"},
	}

	for _, tc := range tests {
		if got := formatter.InWords(tc.elapsed); got != tc.want {
			t.Fatalf("InWords(%v) = %q want %q", tc.elapsed, got, tc.want)
		}
	}
}

func TestFormatterDirectionOverride(t *testing.T) {
	table := English()
	table.PrefixAgo = AffixText("before")

	formatter, err := NewFormatter(table, WithFormatterDirection(RTL))
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	if got := formatter.InWords(2 * minute); got != "ago 2 minutes before" {
		t.Fatalf("InWords = %q", got)
	}
}

func TestFormatterFormatUsesClock(t *testing.T) {
	now := time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)
	formatter, err := NewFormatter(English(), WithFormatterClock(ClockFunc(func() time.Time { return now })))
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	if got := formatter.Format(now.Add(-3 * time.Hour)); got != "3 hours ago" {
		t.Fatalf("Format = %q", got)
	}
	if got := formatter.FormatFrom(now.Add(-48*time.Hour), now); got != "2 days ago" {
		t.Fatalf("FormatFrom = %q", got)
	}
}

func TestNewFormatterRejectsIncompleteTable(t *testing.T) {
	table := English()
	delete(table.Units, Seconds)

	if _, err := NewFormatter(table); err == nil {
		t.Fatal("expected error for incomplete table")
	}
}

func TestPackageHelpers(t *testing.T) {
	if got := InWords(2 * minute); got != "2 minutes ago" {
		t.Fatalf("InWords = %q", got)
	}
	if got := Format(time.Now().Add(-10 * time.Second)); got != "less than a minute ago" {
		t.Fatalf("Format = %q", got)
	}
}
