package schedule

// StepMinutes is the fixed grid the booking form offers. Candidate start
// times advance by this step regardless of service duration, so a
// 45-minute service still produces starts at :00 and :30.
const StepMinutes = 30

// Slot is a candidate bookable (start, end) pair for one trainer/service/date.
type Slot struct {
	Start TimeOfDay `json:"start_time"`
	End   TimeOfDay `json:"end_time"`
}

// Slots generates the bookable start times inside a trainer's working
// window. A slot is admitted when the full service duration fits before
// windowEnd, it overlaps none of the busy intervals, and it does not
// start before cutoff. cutoff is non-nil only when the requested date is
// today; future dates are never time-filtered.
//
// The result is ordered ascending by start time and is empty (never an
// error) when nothing fits.
func Slots(windowStart, windowEnd TimeOfDay, durationMinutes int, busy []Interval, cutoff *TimeOfDay) []Slot {
	if durationMinutes <= 0 || windowEnd <= windowStart {
		return nil
	}

	var slots []Slot
	for start := windowStart; start.AddMinutes(durationMinutes) <= windowEnd; start = start.AddMinutes(StepMinutes) {
		end := start.AddMinutes(durationMinutes)
		if cutoff != nil && start < *cutoff {
			continue
		}
		if OverlapsAny(start, end, busy) {
			continue
		}
		slots = append(slots, Slot{Start: start, End: end})
	}
	return slots
}
