package validate

import "time"

// ZeroTime reports the zero time.Time.
func ZeroTime(t time.Time) bool {
	return t.IsZero()
}

// NotAfter reports times that do not come after ref.
func NotAfter(ref time.Time) func(time.Time) bool {
	return func(t time.Time) bool { return !t.After(ref) }
}

// NotBefore reports times that do not come before ref.
func NotBefore(ref time.Time) func(time.Time) bool {
	return func(t time.Time) bool { return !t.Before(ref) }
}
