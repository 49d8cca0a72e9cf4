package streak

import (
	"fmt"
	"sort"
	"time"
)

const dayLayout = "2006-01-02"

// CalendarDay is a civil date without a time of day or a location.
type CalendarDay struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t as observed in loc. A nil loc means UTC.
func DayOf(t time.Time, loc *time.Location) CalendarDay {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return CalendarDay{Year: y, Month: m, Day: d}
}

func ParseDay(s string) (CalendarDay, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return CalendarDay{}, fmt.Errorf("parse day [%s]: %w", s, err)
	}
	return DayOf(t, time.UTC), nil
}

// utc is used for day arithmetic only, where DST transitions do not exist.
func (d CalendarDay) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDay) AddDays(n int) CalendarDay {
	return DayOf(d.utc().AddDate(0, 0, n), time.UTC)
}

// Start returns the first instant of the day in loc.
func (d CalendarDay) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// End returns the first instant of the following day in loc.
func (d CalendarDay) End(loc *time.Location) time.Time {
	return d.AddDays(1).Start(loc)
}

func (d CalendarDay) Before(other CalendarDay) bool {
	return d.utc().Before(other.utc())
}

// DaysUntil returns the signed number of days from d to other.
func (d CalendarDay) DaysUntil(other CalendarDay) int {
	return int(other.utc().Sub(d.utc()).Hours() / 24)
}

func (d CalendarDay) IsZero() bool {
	return d == CalendarDay{}
}

func (d CalendarDay) String() string {
	return d.utc().Format(dayLayout)
}

// DaySet is a set of distinct calendar days.
type DaySet map[CalendarDay]struct{}

// NewDaySet collapses dates into distinct calendar days of loc.
func NewDaySet(dates []time.Time, loc *time.Location) DaySet {
	set := make(DaySet, len(dates))
	for _, t := range dates {
		set[DayOf(t, loc)] = struct{}{}
	}
	return set
}

func DaySetOf(days ...CalendarDay) DaySet {
	set := make(DaySet, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

func (s DaySet) Contains(d CalendarDay) bool {
	_, ok := s[d]
	return ok
}

// Sorted returns the days in ascending order.
func (s DaySet) Sorted() []CalendarDay {
	days := make([]CalendarDay, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}
