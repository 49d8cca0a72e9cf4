package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/internal/workouts/streak"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	StreakModeFull   = "full"
	StreakModeWindow = "window"

	weekDays = 7
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

type activityStore interface {
	GetOwner(ctx context.Context, ownerID string) (*workouts.Owner, error)
	ListEntries(ctx context.Context, params workouts.EntryParams) ([]workouts.Entry, error)
	ListRecentDates(ctx context.Context, ownerID string, limit int) ([]time.Time, error)
	WorkoutDays(ctx context.Context, ownerID string, loc *time.Location) ([]streak.CalendarDay, error)
	Totals(ctx context.Context, ownerID string) (workouts.Totals, error)
	UpdateStreak(ctx context.Context, ownerID string, current *int, candidate int) (int, error)
}

type Config struct {
	// Location defines calendar day boundaries, UTC when nil.
	Location *time.Location
	// StreakMode selects how the current streak is computed, full or window.
	StreakMode string
	// Lookback bounds the number of records the window mode looks at.
	Lookback int
}

type Aggregator struct {
	store    activityStore
	loc      *time.Location
	mode     string
	lookback int
	now      func() time.Time

	// optional
	snapshotDuration prometheus.Observer
}

func NewAggregator(store activityStore, cfg Config) (*Aggregator, error) {
	agg := &Aggregator{
		store:    store,
		loc:      cfg.Location,
		mode:     cfg.StreakMode,
		lookback: cfg.Lookback,
		now:      time.Now,
	}
	if agg.loc == nil {
		agg.loc = time.UTC
	}
	if agg.mode == "" {
		agg.mode = StreakModeFull
	}
	if agg.mode != StreakModeFull && agg.mode != StreakModeWindow {
		return nil, fmt.Errorf("unknown streak mode: %s", agg.mode)
	}
	if agg.lookback <= 0 {
		agg.lookback = streak.DefaultLookback
	}
	return agg, nil
}

// WithSnapshotDuration makes the aggregator observe snapshot build times.
func (a *Aggregator) WithSnapshotDuration(observer prometheus.Observer) *Aggregator {
	a.snapshotDuration = observer
	return a
}

// WithClock replaces the clock used to tell which day is today.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

func (a *Aggregator) Location() *time.Location {
	return a.loc
}

// Today returns the current calendar day in the aggregator location.
func (a *Aggregator) Today() streak.CalendarDay {
	return streak.DayOf(a.now(), a.loc)
}

// BuildSnapshot computes the dashboard of the owner for refDay. It fails with
// workouts.ErrOwnerNotFound for unknown owners and passes store errors through.
func (a *Aggregator) BuildSnapshot(ctx context.Context, ownerID string, refDay streak.CalendarDay) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.buildSnapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))
	span.SetAttributes(attribute.String("day", refDay.String()))

	if a.snapshotDuration != nil {
		start := time.Now()
		defer func() {
			a.snapshotDuration.Observe(time.Since(start).Seconds())
		}()
	}

	if _, err := a.store.GetOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	weekStart := refDay.AddDays(-(weekDays - 1)).Start(a.loc)
	weekEnd := refDay.End(a.loc)
	weekEntries, err := a.store.ListEntries(ctx, workouts.EntryParams{
		OwnerID: ownerID,
		From:    &weekStart,
		To:      &weekEnd,
	})
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Week: a.weekSeries(weekEntries, refDay),
	}

	todays := a.entriesOn(weekEntries, refDay)
	snapshot.TotalWorkouts = len(todays)
	snapshot.TotalCalories = workouts.SumCalories(todays)
	snapshot.AvgCaloriesWorkout = average(snapshot.TotalCalories, snapshot.TotalWorkouts)
	snapshot.PieChart = categoryBreakdown(todays)

	details, err := a.streakDetails(ctx, ownerID, refDay)
	if err != nil {
		return nil, err
	}
	snapshot.CurrentStreak = details.CurrentStreak
	snapshot.HighestStreak = details.HighestStreak
	snapshot.Badges = details.Badges

	return snapshot, nil
}

// BuildStreaks computes only the streak and badge part of the dashboard.
func (a *Aggregator) BuildStreaks(ctx context.Context, ownerID string, refDay streak.CalendarDay) (_ *StreakDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.buildStreaks")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID))

	if _, err := a.store.GetOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return a.streakDetails(ctx, ownerID, refDay)
}

func (a *Aggregator) streakDetails(ctx context.Context, ownerID string, refDay streak.CalendarDay) (*StreakDetails, error) {
	days, err := a.store.WorkoutDays(ctx, ownerID, a.loc)
	if err != nil {
		return nil, err
	}
	daySet := streak.DaySetOf(days...)
	state := streak.Compute(daySet, refDay)

	current := state.Current
	if a.mode == StreakModeWindow {
		recent, err := a.store.ListRecentDates(ctx, ownerID, a.lookback)
		if err != nil {
			return nil, err
		}
		current = streak.RecentWindow(recent, a.loc)
	}

	candidate := state.Highest
	if current > candidate {
		candidate = current
	}
	// the owner record keeps today's current streak, snapshots of other days leave it alone
	var storedCurrent *int
	if refDay == a.Today() {
		storedCurrent = &current
	}
	highest, err := a.store.UpdateStreak(ctx, ownerID, storedCurrent, candidate)
	if err != nil {
		return nil, err
	}

	totals, err := a.store.Totals(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &StreakDetails{
		CurrentStreak: current,
		HighestStreak: highest,
		Badges:        workouts.EvaluateBadges(totals, current),
	}, nil
}

func (a *Aggregator) weekSeries(entries []workouts.Entry, refDay streak.CalendarDay) WeekSeries {
	perDay := map[streak.CalendarDay]int{}
	for _, e := range entries {
		perDay[streak.DayOf(e.Date, a.loc)] += e.CaloriesBurned
	}

	series := WeekSeries{
		Weeks:          make([]string, 0, weekDays),
		CaloriesBurned: make([]int, 0, weekDays),
	}
	for i := weekDays - 1; i >= 0; i-- {
		day := refDay.AddDays(-i)
		series.Weeks = append(series.Weeks, fmt.Sprintf("%dth", day.Day))
		series.CaloriesBurned = append(series.CaloriesBurned, perDay[day])
	}
	return series
}

func (a *Aggregator) entriesOn(entries []workouts.Entry, day streak.CalendarDay) []workouts.Entry {
	var onDay []workouts.Entry
	for _, e := range entries {
		if streak.DayOf(e.Date, a.loc) == day {
			onDay = append(onDay, e)
		}
	}
	return onDay
}

func average(total, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// categoryBreakdown sums calories per category, ordered by category label.
func categoryBreakdown(entries []workouts.Entry) []PieSlice {
	perCategory := map[string]int{}
	for _, e := range entries {
		perCategory[e.Category] += e.CaloriesBurned
	}

	labels := make([]string, 0, len(perCategory))
	for label := range perCategory {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	slices := make([]PieSlice, 0, len(labels))
	for i, label := range labels {
		slices = append(slices, PieSlice{
			ID:    i,
			Value: perCategory[label],
			Label: label,
		})
	}
	return slices
}
