package timeago

import (
	"strings"

	"golang.org/x/text/language"
)

// rtlScripts are ISO 15924 codes written right to left.
var rtlScripts = map[string]struct{}{
	"Adlm": {},
	"Arab": {},
	"Hebr": {},
	"Mand": {},
	"Nkoo": {},
	"Rohg": {},
	"Samr": {},
	"Syrc": {},
	"Thaa": {},
}

// DirectionForLocale infers the reading direction from the locale's
// likely script. Unknown locales are LTR.
func DirectionForLocale(locale string) Direction {
	locale = normalizeLocale(locale)
	if locale == "" {
		return LTR
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return LTR
	}

	script, confidence := tag.Script()
	if confidence == language.No {
		return LTR
	}
	if _, ok := rtlScripts[script.String()]; ok {
		return RTL
	}
	return LTR
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			break
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// baseLanguage returns the language subtag, "ar" for "ar-EG".
func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		if idx := strings.Index(locale, "-"); idx > 0 {
			return locale[:idx]
		}
		return ""
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return ""
	}
	return base.String()
}

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func sanitizeFallbacks(locale string, fallbacks []string) []string {
	if len(fallbacks) == 0 {
		return nil
	}

	seen := map[string]struct{}{
		normalizeLocale(locale): {},
	}

	result := make([]string, 0, len(fallbacks))
	for _, candidate := range fallbacks {
		normalized := normalizeLocale(candidate)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
