package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func starts(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.String()
	}
	return out
}

func TestSlotsAroundExistingAppointment(t *testing.T) {
	// Window 09:00-17:00, 60-minute service, existing booking 10:00-11:00.
	busy := []Interval{{Start: NewTimeOfDay(10, 0), End: NewTimeOfDay(11, 0)}}
	slots := Slots(NewTimeOfDay(9, 0), NewTimeOfDay(17, 0), 60, busy, nil)

	got := starts(slots)
	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "11:00")
	// 09:30 would end 10:30, overlapping the existing booking.
	assert.NotContains(t, got, "09:30")
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "10:30")
}

func TestSlotsFitInsideWindow(t *testing.T) {
	slots := Slots(NewTimeOfDay(9, 0), NewTimeOfDay(11, 0), 60, nil, nil)
	require.Len(t, slots, 3)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, starts(slots))
	// The last admitted slot ends exactly at window end.
	assert.Equal(t, NewTimeOfDay(11, 0), slots[2].End)
}

func TestSlotsFixedStepForOddDurations(t *testing.T) {
	// A 45-minute service still steps on the 30-minute grid.
	slots := Slots(NewTimeOfDay(9, 0), NewTimeOfDay(10, 45), 45, nil, nil)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, starts(slots))
	assert.Equal(t, "09:45", slots[0].End.String())
}

func TestSlotsEmptyCases(t *testing.T) {
	assert.Empty(t, Slots(NewTimeOfDay(9, 0), NewTimeOfDay(9, 30), 60, nil, nil), "duration longer than window")
	assert.Empty(t, Slots(NewTimeOfDay(17, 0), NewTimeOfDay(9, 0), 60, nil, nil), "inverted window")
	assert.Empty(t, Slots(NewTimeOfDay(9, 0), NewTimeOfDay(17, 0), 0, nil, nil), "zero duration")
}

func TestSlotsCutoffExcludesPastStarts(t *testing.T) {
	cutoff := NewTimeOfDay(12, 10)
	slots := Slots(NewTimeOfDay(9, 0), NewTimeOfDay(14, 0), 60, nil, &cutoff)

	got := starts(slots)
	assert.NotContains(t, got, "11:30")
	assert.NotContains(t, got, "12:00")
	assert.Contains(t, got, "12:30")
	assert.Contains(t, got, "13:00")
}

func TestSlotsNoCutoffOnFutureDates(t *testing.T) {
	withNil := Slots(NewTimeOfDay(9, 0), NewTimeOfDay(12, 0), 30, nil, nil)
	assert.Equal(t, "09:00", withNil[0].Start.String())
	assert.Len(t, withNil, 6)
}

func TestSlotsDeterministic(t *testing.T) {
	busy := []Interval{
		{Start: NewTimeOfDay(10, 0), End: NewTimeOfDay(11, 30)},
		{Start: NewTimeOfDay(13, 0), End: NewTimeOfDay(14, 0)},
	}
	first := Slots(NewTimeOfDay(9, 0), NewTimeOfDay(17, 0), 60, busy, nil)
	second := Slots(NewTimeOfDay(9, 0), NewTimeOfDay(17, 0), 60, busy, nil)
	assert.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].Start, first[i].Start, "slots must ascend by start time")
	}
}
