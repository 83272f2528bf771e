package timeago

import "errors"

// ErrInvalidTimestamp indicates that an element carries no usable timestamp.
var ErrInvalidTimestamp = errors.New("timeago: invalid timestamp")

// ErrIncompleteLocaleTable indicates that a locale table is missing unit entries.
var ErrIncompleteLocaleTable = errors.New("timeago: incomplete locale table")

// ErrNonExhaustiveRangeRules marks range forms that lack the infinity fallback
var ErrNonExhaustiveRangeRules = errors.New("timeago: range rules missing infinity fallback")

// ErrInvalidRangeSpec marks a range form key that cannot be parsed
var ErrInvalidRangeSpec = errors.New("timeago: invalid range spec")

// ErrUnknownLocale indicates that no table was found for a locale.
var ErrUnknownLocale = errors.New("timeago: unknown locale")
