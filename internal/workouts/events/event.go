package events

import (
	"time"

	"github.com/2beens/fitlog/internal/workouts"
)

const (
	DefaultTopic           = "workouts.logged"
	EventTypeHeader        = "event-type"
	EventTypeWorkoutLogged = "workout.logged"
)

// WorkoutLogged is emitted once per accepted submission.
type WorkoutLogged struct {
	EventID       string           `json:"eventId"`
	SubmissionID  string           `json:"submissionId"`
	OwnerID       string           `json:"ownerId"`
	OccurredAt    time.Time        `json:"occurredAt"`
	Entries       []workouts.Entry `json:"entries"`
	TotalCalories int              `json:"totalCalories"`
}
