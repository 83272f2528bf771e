package timeago

import "strings"

// Compose joins prefix, phrase and suffix with single spaces. RTL swaps
// the prefix and suffix positions so that a right-to-left template
// reads correctly after plain concatenation.
func Compose(prefix, phrase, suffix string, dir Direction) string {
	segments := [3]string{prefix, phrase, suffix}
	if dir == RTL {
		segments = [3]string{suffix, phrase, prefix}
	}

	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		parts = append(parts, segment)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
