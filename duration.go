package timeago

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type phraseUnit struct {
	pattern *regexp.Regexp
	span    time.Duration
}

// month is 30 days and year is 365 days.
var phraseUnits = []phraseUnit{
	newPhraseUnit("second", time.Second),
	newPhraseUnit("minute", time.Minute),
	newPhraseUnit("hour", time.Hour),
	newPhraseUnit("day", 24*time.Hour),
	newPhraseUnit("week", 7*24*time.Hour),
	newPhraseUnit("month", 30*24*time.Hour),
	newPhraseUnit("year", 365*24*time.Hour),
}

func newPhraseUnit(name string, span time.Duration) phraseUnit {
	return phraseUnit{
		pattern: regexp.MustCompile(`(\d+\s+)?` + name + `s?`),
		span:    span,
	}
}

// ParseDuration sums the first "<N> <unit>" match of every unit in the
// phrase. A unit without a number counts once, so "minute" is one
// minute. Unknown text contributes nothing.
func ParseDuration(phrase string) time.Duration {
	var total time.Duration
	for _, unit := range phraseUnits {
		match := unit.pattern.FindStringSubmatch(phrase)
		if match == nil {
			continue
		}

		count := int64(1)
		if digits := strings.TrimSpace(match[1]); digits != "" {
			if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
				count = n
			}
		}
		total += time.Duration(count) * unit.span
	}
	return total
}

// DurationSpec is a duration given either in milliseconds or as a phrase
// such as "7 days".
type DurationSpec struct {
	millis int64
	phrase string
	set    bool
}

// Millis returns a spec of ms milliseconds.
func Millis(ms int64) DurationSpec {
	return DurationSpec{millis: ms, set: true}
}

// Phrase returns a spec parsed with ParseDuration.
func Phrase(phrase string) DurationSpec {
	return DurationSpec{phrase: phrase, set: true}
}

// IsZero reports whether the spec was never set.
func (d DurationSpec) IsZero() bool {
	return !d.set
}

// Duration resolves the spec. An unset spec is zero.
func (d DurationSpec) Duration() time.Duration {
	switch {
	case !d.set:
		return 0
	case d.phrase != "":
		return ParseDuration(d.phrase)
	default:
		return time.Duration(d.millis) * time.Millisecond
	}
}

func (d DurationSpec) String() string {
	switch {
	case !d.set:
		return ""
	case d.phrase != "":
		return d.phrase
	default:
		return strconv.FormatInt(d.millis, 10) + "ms"
	}
}

// UnmarshalYAML accepts an integer millisecond count or a phrase.
func (d *DurationSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("timeago: duration must be a scalar, got %s", nodeKindName(node.Kind))
	}

	switch node.Tag {
	case "!!int":
		var ms int64
		if err := node.Decode(&ms); err != nil {
			return err
		}
		*d = Millis(ms)
	case "!!float":
		var ms float64
		if err := node.Decode(&ms); err != nil {
			return err
		}
		*d = Millis(int64(ms))
	case "!!null":
		*d = DurationSpec{}
	default:
		*d = Phrase(node.Value)
	}
	return nil
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
