package workouts

import "time"

// Entry is a single structured workout, derived from one text block.
type Entry struct {
	ID             int64     `json:"id"`
	OwnerID        string    `json:"ownerId"`
	SubmissionID   string    `json:"submissionId,omitempty"`
	Category       string    `json:"category"`
	Name           string    `json:"workoutName"`
	Sets           int       `json:"sets"`
	Reps           int       `json:"reps"`
	WeightKg       float64   `json:"weight"`
	DurationMin    float64   `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Date           time.Time `json:"date"`
}

// Annotate sets the derived calories of the entry.
func (e *Entry) Annotate() {
	e.CaloriesBurned = CaloriesBurned(e.DurationMin, e.WeightKg)
}

// Owner is the record of a user owning workout entries. Credentials live elsewhere,
// only the streak state is kept here.
type Owner struct {
	ID            string     `json:"id"`
	CurrentStreak int        `json:"currentStreak"`
	HighestStreak int        `json:"highestStreak"`
	LastWorkoutAt *time.Time `json:"lastWorkoutAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Totals are lifetime aggregates of an owner.
type Totals struct {
	Workouts int   `json:"totalWorkouts"`
	Calories int64 `json:"totalCaloriesBurned"`
}

// EntryParams filters entries of a single owner. From is inclusive, To is exclusive.
type EntryParams struct {
	OwnerID string
	From    *time.Time
	To      *time.Time
}

type ListParams struct {
	OwnerID string
	Page    int
	Size    int
}

// SumCalories returns the total calories of the given entries.
func SumCalories(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.CaloriesBurned
	}
	return total
}
