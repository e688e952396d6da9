// Package nutrition derives energy and macronutrient targets from a profile.
// Every function is pure; callers validate the profile first.
package nutrition

import (
	"math"

	"github.com/vladimiradmaev/macrofit/internal/domain"
)

// BMR returns the Mifflin-St Jeor basal metabolic rate in kcal/day
func BMR(p domain.UserProfile) float64 {
	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == domain.Female {
		return base - 161
	}
	return base + 5
}

// TDEE scales BMR by the activity multiplier, truncated to whole kcal
func TDEE(p domain.UserProfile) int {
	return int(BMR(p) * p.ActivityLevel.Multiplier())
}

// TargetCalories applies the profile's goal adjustment to TDEE
func TargetCalories(p domain.UserProfile) int {
	return CaloriesForGoal(p, p.Goal)
}

// CaloriesForGoal applies goal's adjustment instead of the profile's own
func CaloriesForGoal(p domain.UserProfile, goal domain.Goal) int {
	return TDEE(p) + goal.CalorieAdjustment()
}

// ComputeMacros splits the target calories per the goal's allocation rule.
// Carbohydrates take whatever protein and fat leave over; only goals with
// ClampCarbs floor that remainder at zero.
func ComputeMacros(p domain.UserProfile) domain.Macros {
	rule := p.Goal.Rule()
	target := TargetCalories(p)

	protein := p.Weight * rule.ProteinPerKg
	fats := p.Weight * rule.FatsPerKg
	carbs := (float64(target) -
		protein*domain.ProteinKcalPerGram -
		fats*domain.FatsKcalPerGram) / domain.CarbsKcalPerGram

	if rule.ClampCarbs {
		carbs = math.Max(carbs, 0)
	}

	return domain.Macros{
		Protein:  int(protein),
		Carbs:    int(carbs),
		Fats:     int(fats),
		Calories: target,
	}
}

// MacrosForGoal recomputes macros as if the profile had chosen goal
func MacrosForGoal(p domain.UserProfile, goal domain.Goal) domain.Macros {
	return ComputeMacros(p.WithGoal(goal))
}

// Calculate returns every derived value for the profile
func Calculate(p domain.UserProfile) domain.NutritionTargets {
	return domain.NutritionTargets{
		BMR:            BMR(p),
		TDEE:           TDEE(p),
		TargetCalories: TargetCalories(p),
		Macros:         ComputeMacros(p),
	}
}
