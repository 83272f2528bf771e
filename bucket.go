package timeago

import "math"

// BucketFor maps an elapsed distance in milliseconds to a unit and count.
// Only the magnitude is used. Months are fixed 30 day spans and years
// fixed 365 day spans, there is no calendar arithmetic.
func BucketFor(elapsedMs float64) Bucket {
	if math.IsNaN(elapsedMs) {
		elapsedMs = 0
	}

	seconds := math.Abs(elapsedMs) / 1000
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	years := days / 365

	switch {
	case seconds < 45:
		return Bucket{Unit: Seconds, Count: roundCount(seconds)}
	case seconds < 90:
		return Bucket{Unit: Minute, Count: 1}
	case minutes < 45:
		return Bucket{Unit: Minutes, Count: roundCount(minutes)}
	case minutes < 90:
		return Bucket{Unit: Hour, Count: 1}
	case hours < 24:
		return Bucket{Unit: Hours, Count: roundCount(hours)}
	case hours < 48:
		return Bucket{Unit: Day, Count: 1}
	case days < 30:
		return Bucket{Unit: Days, Count: floorCount(days)}
	case days < 60:
		return Bucket{Unit: Month, Count: 1}
	case days < 365:
		return Bucket{Unit: Months, Count: floorCount(days / 30)}
	case years < 2:
		return Bucket{Unit: Year, Count: 1}
	default:
		return Bucket{Unit: Years, Count: floorCount(years)}
	}
}

func roundCount(v float64) int {
	return clampCount(math.Round(v))
}

func floorCount(v float64) int {
	return clampCount(math.Floor(v))
}

func clampCount(v float64) int {
	if math.IsInf(v, 1) || v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
