package workouts

import "math"

// CaloriesPerMinutePerKg is the unit calorie rate of the linear calorie model.
const CaloriesPerMinutePerKg = 5

// CaloriesBurned truncates duration and weight to whole minutes and kilograms
// before multiplying them with the unit rate.
func CaloriesBurned(durationMin, weightKg float64) int {
	minutes := int(math.Floor(durationMin))
	kilos := int(math.Floor(weightKg))
	return minutes * CaloriesPerMinutePerKg * kilos
}
