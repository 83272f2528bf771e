package timeago

import (
	"fmt"
	"time"
)

const defaultTemplateHelperKey = "timeago"

// HelperConfig configures template helper exports
type HelperConfig struct {
	// TemplateHelperKey names the relative time helper, "timeago" when empty.
	TemplateHelperKey string
	// OnInvalid renders values that are not a time or a parsable
	// timestamp. The raw value is printed when nil.
	OnInvalid func(value any, err error) string
}

// TemplateHelpers exposes formatter helpers for text/template and
// html/template:
//
//	{{ timeago .CreatedAt }}
//	{{ timeago_in_words 90000 }}
func TemplateHelpers(f *Formatter, cfg HelperConfig) map[string]any {
	key := cfg.TemplateHelperKey
	if key == "" {
		key = defaultTemplateHelperKey
	}

	onInvalid := cfg.OnInvalid
	if onInvalid == nil {
		onInvalid = func(value any, _ error) string {
			return fmt.Sprint(value)
		}
	}

	return map[string]any{
		key: func(value any) string {
			t, err := helperTime(value)
			if err != nil {
				return onInvalid(value, err)
			}
			return f.Format(t)
		},
		key + "_in_words": func(elapsedMs float64) string {
			return f.InWords(elapsedMs)
		},
	}
}

func helperTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidTimestamp)
		}
		return *v, nil
	case string:
		return Parse(v)
	case fmt.Stringer:
		return Parse(v.String())
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported value %T", ErrInvalidTimestamp, value)
	}
}
