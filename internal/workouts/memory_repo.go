package workouts

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/2beens/fitlog/internal/workouts/streak"
)

// MemoryRepo is an in-process workout store, used by tests and local runs
// without postgres. It is safe for concurrent use.
type MemoryRepo struct {
	mutex   sync.RWMutex
	owners  map[string]*Owner
	entries map[string][]Entry
	lastID  int64
	now     func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		owners:  map[string]*Owner{},
		entries: map[string][]Entry{},
		now:     time.Now,
	}
}

func (r *MemoryRepo) UpsertOwner(_ context.Context, ownerID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.owners[ownerID]; !ok {
		r.owners[ownerID] = &Owner{
			ID:        ownerID,
			CreatedAt: r.now(),
		}
	}
	return nil
}

func (r *MemoryRepo) GetOwner(_ context.Context, ownerID string) (*Owner, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	owner, ok := r.owners[ownerID]
	if !ok {
		return nil, &NotFoundError{OwnerID: ownerID}
	}
	ownerCopy := *owner
	return &ownerCopy, nil
}

func (r *MemoryRepo) AddEntries(_ context.Context, ownerID string, entries []Entry) ([]Entry, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	owner, ok := r.owners[ownerID]
	if !ok {
		return nil, &NotFoundError{OwnerID: ownerID}
	}

	added := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		r.lastID++
		entry.ID = r.lastID
		entry.OwnerID = ownerID
		added = append(added, entry)

		if owner.LastWorkoutAt == nil || entry.Date.After(*owner.LastWorkoutAt) {
			date := entry.Date
			owner.LastWorkoutAt = &date
		}
	}
	r.entries[ownerID] = append(r.entries[ownerID], added...)

	return added, nil
}

func (r *MemoryRepo) ListEntries(_ context.Context, params EntryParams) ([]Entry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entries := []Entry{}
	for _, e := range r.entries[params.OwnerID] {
		if params.From != nil && e.Date.Before(*params.From) {
			continue
		}
		if params.To != nil && !e.Date.Before(*params.To) {
			continue
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

func (r *MemoryRepo) ListRecentDates(_ context.Context, ownerID string, limit int) ([]time.Time, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	dates := make([]time.Time, 0, len(r.entries[ownerID]))
	for _, e := range r.entries[ownerID] {
		dates = append(dates, e.Date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})
	if limit > 0 && len(dates) > limit {
		dates = dates[:limit]
	}
	return dates, nil
}

func (r *MemoryRepo) List(_ context.Context, params ListParams) ([]Entry, int, error) {
	if params.Page < 1 || params.Size < 1 {
		return nil, 0, fmt.Errorf("invalid page [%d] or size [%d]", params.Page, params.Size)
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	all := make([]Entry, len(r.entries[params.OwnerID]))
	copy(all, r.entries[params.OwnerID])
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Date.Equal(all[j].Date) {
			return all[i].ID > all[j].ID
		}
		return all[i].Date.After(all[j].Date)
	})

	start := (params.Page - 1) * params.Size
	if start >= len(all) {
		return []Entry{}, len(all), nil
	}
	end := start + params.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all), nil
}

func (r *MemoryRepo) WorkoutDays(_ context.Context, ownerID string, loc *time.Location) ([]streak.CalendarDay, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	dates := make([]time.Time, 0, len(r.entries[ownerID]))
	for _, e := range r.entries[ownerID] {
		dates = append(dates, e.Date)
	}
	return streak.NewDaySet(dates, loc).Sorted(), nil
}

func (r *MemoryRepo) Totals(_ context.Context, ownerID string) (Totals, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	totals := Totals{Workouts: len(r.entries[ownerID])}
	for _, e := range r.entries[ownerID] {
		totals.Calories += int64(e.CaloriesBurned)
	}
	return totals, nil
}

func (r *MemoryRepo) UpdateStreak(_ context.Context, ownerID string, current *int, candidate int) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	owner, ok := r.owners[ownerID]
	if !ok {
		return 0, &NotFoundError{OwnerID: ownerID}
	}
	if current != nil {
		owner.CurrentStreak = *current
	}
	if candidate > owner.HighestStreak {
		owner.HighestStreak = candidate
	}
	return owner.HighestStreak, nil
}
