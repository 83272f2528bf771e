package timeago

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	fractionPattern = regexp.MustCompile(`\.\d+`)
	offsetPattern   = regexp.MustCompile(`\s*([+-]\d\d):?(\d\d)$`)
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05 -0700",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// Parse reads an ISO-8601 style timestamp. It accepts a "T" or space
// separator, drops fractional seconds, and takes "Z", "+hh:mm" or
// "+hhmm" offsets. Timestamps without an offset are read as UTC.
func Parse(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	s = fractionPattern.ReplaceAllString(s, "")
	s = strings.Replace(s, "T", " ", 1)
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + " +0000"
	}
	if strings.Contains(s, " ") {
		s = offsetPattern.ReplaceAllString(s, " $1$2")
	}
	s = strings.Join(strings.Fields(s), " ")

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}
