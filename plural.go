package timeago

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// InfinitySpec is the range form key used when no other range matches.
const InfinitySpec = "infinity"

var rangeBoundPattern = regexp.MustCompile(`\d+`)

// RangeForm pairs a range spec with its template. A spec holds one
// integer ("2") or two ("from 3 to 10"); both bounds are inclusive.
type RangeForm struct {
	Spec     string
	Template string
}

type rangeRule struct {
	low      int
	high     int
	template string
}

// NewRangeResolver builds a resolver that walks forms in declaration
// order and returns the first template whose range holds the count,
// falling back to the infinity form.
func NewRangeResolver(forms ...RangeForm) (UnitResolver, error) {
	rules := make([]rangeRule, 0, len(forms))
	var (
		fallback    string
		hasFallback bool
	)

	for _, form := range forms {
		spec := strings.TrimSpace(form.Spec)
		if strings.EqualFold(spec, InfinitySpec) {
			if hasFallback {
				return nil, fmt.Errorf("%w: duplicate %q form", ErrInvalidRangeSpec, InfinitySpec)
			}
			fallback = form.Template
			hasFallback = true
			continue
		}

		rule, err := parseRangeSpec(spec)
		if err != nil {
			return nil, err
		}
		rule.template = form.Template
		rules = append(rules, rule)
	}

	if !hasFallback {
		return nil, fmt.Errorf("%w: %d forms", ErrNonExhaustiveRangeRules, len(forms))
	}

	return func(count int, _ float64) string {
		for _, rule := range rules {
			if rule.low <= count && count <= rule.high {
				return rule.template
			}
		}
		return fallback
	}, nil
}

// MustRangeResolver is like NewRangeResolver but panics on error.
func MustRangeResolver(forms ...RangeForm) UnitResolver {
	resolver, err := NewRangeResolver(forms...)
	if err != nil {
		panic(err)
	}
	return resolver
}

// Ranges returns a table entry backed by a range resolver
func Ranges(forms ...RangeForm) (Entry, error) {
	resolver, err := NewRangeResolver(forms...)
	if err != nil {
		return Entry{}, err
	}
	return Func(resolver), nil
}

func parseRangeSpec(spec string) (rangeRule, error) {
	bounds := rangeBoundPattern.FindAllString(spec, -1)

	switch len(bounds) {
	case 1:
		value, err := strconv.Atoi(bounds[0])
		if err != nil {
			return rangeRule{}, fmt.Errorf("%w: %q: %v", ErrInvalidRangeSpec, spec, err)
		}
		return rangeRule{low: value, high: value}, nil
	case 2:
		low, err := strconv.Atoi(bounds[0])
		if err != nil {
			return rangeRule{}, fmt.Errorf("%w: %q: %v", ErrInvalidRangeSpec, spec, err)
		}
		high, err := strconv.Atoi(bounds[1])
		if err != nil {
			return rangeRule{}, fmt.Errorf("%w: %q: %v", ErrInvalidRangeSpec, spec, err)
		}
		if low > high {
			return rangeRule{}, fmt.Errorf("%w: %q has low bound above high bound", ErrInvalidRangeSpec, spec)
		}
		return rangeRule{low: low, high: high}, nil
	default:
		return rangeRule{}, fmt.Errorf("%w: %q must hold one or two integers", ErrInvalidRangeSpec, spec)
	}
}
