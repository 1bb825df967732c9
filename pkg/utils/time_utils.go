package utils

import "time"

// Trip dates are stored as epoch seconds (UTC) and rendered as RFC3339.

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds returns the zero time for t<=0 so callers can decide how
// to render an unset date.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
