package timeago

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var countPlaceholder = regexp.MustCompile(`(?i)%d`)

// Validate checks that every unit has an entry.
func (s *Strings) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil table", ErrIncompleteLocaleTable)
	}

	var missing []string
	for _, unit := range Units {
		if entry, ok := s.Units[unit]; !ok || entry.IsZero() {
			missing = append(missing, string(unit))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: locale %q missing %s", ErrIncompleteLocaleTable, s.Locale, strings.Join(missing, ", "))
	}

	switch s.Direction {
	case "", LTR, RTL:
		return nil
	default:
		return fmt.Errorf("timeago: locale %q has unknown direction %q", s.Locale, s.Direction)
	}
}

// Phrase renders the unit template with count substituted for the first %d.
func (s *Strings) Phrase(unit Unit, count int, elapsedMs float64) string {
	if s == nil {
		return ""
	}

	template := s.Units[unit].Template(count, elapsedMs)
	loc := countPlaceholder.FindStringIndex(template)
	if loc == nil {
		return template
	}
	return template[:loc[0]] + s.numeral(count) + template[loc[1]:]
}

// Affixes returns the prefix and suffix for unit, picking the from-now
// pair when future is set.
func (s *Strings) Affixes(unit Unit, future bool) (prefix, suffix string) {
	if s == nil {
		return "", ""
	}
	if future {
		return s.PrefixFromNow.resolve(unit), s.SuffixFromNow.resolve(unit)
	}
	return s.PrefixAgo.resolve(unit), s.SuffixAgo.resolve(unit)
}

func (s *Strings) direction() Direction {
	if s == nil || s.Direction == "" {
		return LTR
	}
	return s.Direction
}

func (s *Strings) numeral(count int) string {
	if count >= 0 && count < len(s.Numbers) && s.Numbers[count] != "" {
		return s.Numbers[count]
	}
	return strconv.Itoa(count)
}
