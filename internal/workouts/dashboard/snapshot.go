package dashboard

import (
	"github.com/2beens/fitlog/internal/workouts"
)

// Snapshot is the dashboard view of one owner for one day. It is computed
// on each request and never stored.
type Snapshot struct {
	TotalCalories      int              `json:"totalCaloriesBurnt"`
	TotalWorkouts      int              `json:"totalWorkouts"`
	AvgCaloriesWorkout float64          `json:"avgCaloriesBurntPerWorkout"`
	Week               WeekSeries       `json:"totalWeeksCaloriesBurnt"`
	PieChart           []PieSlice       `json:"pieChartData"`
	CurrentStreak      int              `json:"currentStreak"`
	HighestStreak      int              `json:"highestStreak"`
	Badges             []workouts.Badge `json:"badges"`
}

// WeekSeries holds calories of the last 7 days, oldest first.
type WeekSeries struct {
	Weeks          []string `json:"weeks"`
	CaloriesBurned []int    `json:"caloriesBurned"`
}

type PieSlice struct {
	ID    int    `json:"id"`
	Value int    `json:"value"`
	Label string `json:"label"`
}

type StreakDetails struct {
	CurrentStreak int              `json:"currentStreak"`
	HighestStreak int              `json:"highestStreak"`
	Badges        []workouts.Badge `json:"badges"`
}
