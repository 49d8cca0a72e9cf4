package workouts

type Badge string

const (
	BadgeSevenWorkouts    Badge = "7-Day Streak"
	BadgeCaloriesChampion Badge = "5000 Calories Champion"
	BadgeStreak30         Badge = "30-Day Streak Achiever"
	BadgeStreak50         Badge = "50-Day Streak Master"
	BadgeStreak100        Badge = "100-Day Legend"
	BadgeStreak200        Badge = "200-Day Warrior"
)

const (
	sevenWorkoutsThreshold    = 7
	caloriesChampionThreshold = 5000
)

var streakBadges = []struct {
	minStreak int
	badge     Badge
}{
	{30, BadgeStreak30},
	{50, BadgeStreak50},
	{100, BadgeStreak100},
	{200, BadgeStreak200},
}

// MilestoneBadges are awarded on lifetime workout count and calories.
func MilestoneBadges(totals Totals) []Badge {
	badges := []Badge{}
	if totals.Workouts >= sevenWorkoutsThreshold {
		badges = append(badges, BadgeSevenWorkouts)
	}
	if totals.Calories >= caloriesChampionThreshold {
		badges = append(badges, BadgeCaloriesChampion)
	}
	return badges
}

// StreakBadges are awarded on the current streak, lowest threshold first.
func StreakBadges(currentStreak int) []Badge {
	badges := []Badge{}
	for _, sb := range streakBadges {
		if currentStreak >= sb.minStreak {
			badges = append(badges, sb.badge)
		}
	}
	return badges
}

// EvaluateBadges recomputes all badges; nothing about them is stored.
func EvaluateBadges(totals Totals, currentStreak int) []Badge {
	return append(MilestoneBadges(totals), StreakBadges(currentStreak)...)
}
