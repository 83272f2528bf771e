package timeago

import "strings"

// Unit names the granularity bucket chosen for a phrase
type Unit string

const (
	Seconds Unit = "seconds"
	Minute  Unit = "minute"
	Minutes Unit = "minutes"
	Hour    Unit = "hour"
	Hours   Unit = "hours"
	Day     Unit = "day"
	Days    Unit = "days"
	Month   Unit = "month"
	Months  Unit = "months"
	Year    Unit = "year"
	Years   Unit = "years"
)

// Units lists every unit in bucket order.
var Units = []Unit{Seconds, Minute, Minutes, Hour, Hours, Day, Days, Month, Months, Year, Years}

func parseUnit(raw string) (Unit, bool) {
	candidate := Unit(strings.ToLower(strings.TrimSpace(raw)))
	for _, unit := range Units {
		if unit == candidate {
			return unit, true
		}
	}
	return "", false
}

// Direction is the reading direction a locale composes phrases in
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

func parseDirection(raw string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(LTR):
		return LTR, true
	case string(RTL):
		return RTL, true
	default:
		return "", false
	}
}

// Bucket is the unit and count selected for an elapsed magnitude.
type Bucket struct {
	Unit  Unit
	Count int
}

// UnitResolver picks a template for a count. elapsedMs is the absolute
// distance the count was derived from.
type UnitResolver func(count int, elapsedMs float64) string

// Entry is either a literal template or a resolver. The zero value is a
// missing entry.
type Entry struct {
	text     string
	resolver UnitResolver
	set      bool
}

// Text returns a literal entry.
func Text(template string) Entry {
	return Entry{text: template, set: true}
}

// Func returns an entry resolved at render time.
func Func(resolver UnitResolver) Entry {
	if resolver == nil {
		return Entry{}
	}
	return Entry{resolver: resolver, set: true}
}

// IsZero reports whether the entry is missing
func (e Entry) IsZero() bool {
	return !e.set
}

// Template resolves the entry for count.
func (e Entry) Template(count int, elapsedMs float64) string {
	switch {
	case !e.set:
		return ""
	case e.resolver != nil:
		return e.resolver(count, elapsedMs)
	default:
		return e.text
	}
}

// Affix is a prefix or suffix. The zero value renders nothing.
type Affix struct {
	text     string
	resolver func(Unit) string
	set      bool
}

// AffixText returns a literal affix.
func AffixText(text string) Affix {
	return Affix{text: text, set: true}
}

// AffixFunc returns an affix resolved with the unit being rendered.
func AffixFunc(resolver func(Unit) string) Affix {
	if resolver == nil {
		return Affix{}
	}
	return Affix{resolver: resolver, set: true}
}

// IsZero reports whether the affix is null
func (a Affix) IsZero() bool {
	return !a.set
}

func (a Affix) resolve(unit Unit) string {
	if a.resolver != nil {
		return a.resolver(unit)
	}
	return a.text
}

// Strings is the locale string table used to phrase a bucket.
type Strings struct {
	Locale        string
	Direction     Direction
	PrefixAgo     Affix
	SuffixAgo     Affix
	PrefixFromNow Affix
	SuffixFromNow Affix
	Units         map[Unit]Entry
	// Numbers replaces a count with the word at its index when non-empty.
	Numbers []string
}

func (s *Strings) Clone() *Strings {
	if s == nil {
		return nil
	}

	out := *s
	if len(s.Units) > 0 {
		out.Units = make(map[Unit]Entry, len(s.Units))
		for unit, entry := range s.Units {
			out.Units[unit] = entry
		}
	}
	if len(s.Numbers) > 0 {
		out.Numbers = append([]string(nil), s.Numbers...)
	}
	return &out
}

// Tables maps locale codes to string tables
type Tables map[string]*Strings
