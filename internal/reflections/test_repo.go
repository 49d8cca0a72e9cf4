package reflections

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/fitlog/internal/workouts/streak"
)

// TestRepo keeps reflections in memory.
type TestRepo struct {
	mutex       sync.Mutex
	lastID      int
	reflections []Reflection
}

func NewTestRepo() *TestRepo {
	return &TestRepo{}
}

func (r *TestRepo) Add(_ context.Context, reflection *Reflection) (*Reflection, error) {
	if reflection.Reflection == "" || reflection.Date == "" {
		return nil, ErrEmptyReflection
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.lastID++
	reflection.ID = r.lastID
	if reflection.CreatedAt.IsZero() {
		reflection.CreatedAt = time.Now()
	}
	r.reflections = append(r.reflections, *reflection)
	return reflection, nil
}

func (r *TestRepo) ListForDay(_ context.Context, ownerID string, day streak.CalendarDay) ([]Reflection, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	reflections := []Reflection{}
	for _, refl := range r.reflections {
		if refl.OwnerID == ownerID && refl.Date == day.String() {
			reflections = append(reflections, refl)
		}
	}
	return reflections, nil
}
