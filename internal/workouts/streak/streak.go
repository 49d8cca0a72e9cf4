package streak

import (
	"sort"
	"time"
)

// DefaultLookback is the number of most recent records RecentWindow is fed with.
const DefaultLookback = 100

type State struct {
	Current int `json:"currentStreak"`
	Highest int `json:"highestStreak"`
}

// Current counts consecutive days present in days, walking back from ref.
// It is 0 when ref itself is not present.
func Current(days DaySet, ref CalendarDay) int {
	count := 0
	for d := ref; days.Contains(d); d = d.AddDays(-1) {
		count++
	}
	return count
}

// Highest returns the longest run of consecutive days.
func Highest(days DaySet) int {
	sorted := days.Sorted()
	if len(sorted) == 0 {
		return 0
	}

	highest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].DaysUntil(sorted[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > highest {
			highest = run
		}
	}
	return highest
}

func Compute(days DaySet, ref CalendarDay) State {
	state := State{
		Current: Current(days, ref),
		Highest: Highest(days),
	}
	if state.Highest < state.Current {
		state.Highest = state.Current
	}
	return state
}

// RecentWindow counts the run of consecutive days starting at the most recent
// of dates. Callers pass a bounded set of the most recent records, so the result
// under-counts when same-day records crowd older days out of that set.
func RecentWindow(dates []time.Time, loc *time.Location) int {
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})

	last := DayOf(sorted[0], loc)
	count := 1
	for _, t := range sorted[1:] {
		day := DayOf(t, loc)
		diff := day.DaysUntil(last)
		if diff == 0 {
			continue
		}
		if diff != 1 {
			break
		}
		count++
		last = day
	}
	return count
}
