package common

import "time"

// Coalesce returns the first value that is not the zero value of T, or the zero value.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Millis converts a duration to fractional milliseconds, the unit of frame timestamps.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// MillisDuration converts fractional milliseconds back to a duration.
func MillisDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
