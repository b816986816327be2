package schedule

// Interval is a half-open [Start, End) time-of-day range on a single day.
type Interval struct {
	Start TimeOfDay `db:"start_time" json:"start"`
	End   TimeOfDay `db:"end_time" json:"end"`
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share any time.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

// OverlapsAny reports whether [start, end) overlaps any of the busy intervals.
func OverlapsAny(start, end TimeOfDay, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// Contains reports whether [start, end) lies fully inside [windowStart, windowEnd].
func Contains(windowStart, windowEnd, start, end TimeOfDay) bool {
	return start >= windowStart && end <= windowEnd
}
