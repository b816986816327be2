package schedule

import "time"

// Clock abstracts the current time so booking rules can be tested
// against fixed dates.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func NewClock() Clock { return realClock{} }

// DateOnly truncates t to its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// BeforeDate reports whether a falls on an earlier calendar day than b.
// Calendar components are compared directly, so values from different
// locations (a DATE column scans as UTC midnight, the wall clock runs
// in the host zone) never skew the result.
func BeforeDate(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	return a.YearDay() < b.YearDay()
}
