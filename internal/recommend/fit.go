package recommend

import "github.com/vladimiradmaev/macrofit/internal/domain"

const (
	greatFitMaxPercent    = 30
	moderateFitMaxPercent = 40
)

var fitMessages = map[domain.FitLevel]string{
	domain.FitGreat:    "Great fit for your daily goals!",
	domain.FitModerate: "Moderate portion of daily calories",
	domain.FitHigh:     "High calorie meal - plan accordingly",
}

// PercentOfDaily is the meal's share of the daily target, truncated
func PercentOfDaily(meal domain.Meal, targetCalories int) int {
	if targetCalories <= 0 {
		return 0
	}
	return int(float64(meal.Calories) / float64(targetCalories) * 100)
}

// Fit grades a meal against the daily target
func Fit(meal domain.Meal, targetCalories int) domain.MealFit {
	percent := PercentOfDaily(meal, targetCalories)

	level := domain.FitHigh
	switch {
	case percent <= greatFitMaxPercent:
		level = domain.FitGreat
	case percent <= moderateFitMaxPercent:
		level = domain.FitModerate
	}

	return domain.MealFit{
		PercentOfDaily: percent,
		Level:          level,
		Message:        fitMessages[level],
	}
}
