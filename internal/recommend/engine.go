// Package recommend filters and ranks meals against nutrition targets.
package recommend

import (
	"slices"

	"github.com/vladimiradmaev/macrofit/internal/domain"
)

// MealsPerDay splits the daily target into per-meal portions.
const MealsPerDay = 4

// DailyPlanOrder is the order the greedy planner fills meal slots in.
var DailyPlanOrder = []domain.MealType{domain.Breakfast, domain.Lunch, domain.Dinner, domain.Snack}

// TargetPerMeal is the ideal calorie count of a single meal
func TargetPerMeal(targets domain.NutritionTargets) int {
	return targets.TargetCalories / MealsPerDay
}

// RankByCalorieProximity sorts a copy of meals by distance from target.
// The sort is stable so equally distant meals keep their relative order.
func RankByCalorieProximity(meals []domain.Meal, target int) []domain.Meal {
	ranked := slices.Clone(meals)
	if ranked == nil {
		ranked = []domain.Meal{}
	}
	slices.SortStableFunc(ranked, func(a, b domain.Meal) int {
		return distance(a.Calories, target) - distance(b.Calories, target)
	})
	return ranked
}

func distance(calories, target int) int {
	if calories > target {
		return calories - target
	}
	return target - calories
}

// Recommend narrows meals to mealType and ranks them against a quarter of
// the daily target.
func Recommend(meals []domain.Meal, targets domain.NutritionTargets, mealType domain.MealType) []domain.Meal {
	return RankByCalorieProximity(FilterByType(meals, mealType), TargetPerMeal(targets))
}

// GenerateDailyPlan picks at most one meal per slot in DailyPlanOrder. For
// each slot it takes the best-ranked meal that still fits the remaining
// calorie and protein budgets, otherwise the slot is skipped. This is a
// single greedy pass: an early pick is never revisited, so the plan is not
// guaranteed to be the best combination.
func GenerateDailyPlan(meals []domain.Meal, targets domain.NutritionTargets) domain.DailyPlan {
	plan := domain.DailyPlan{
		Meals:             []domain.Meal{},
		Skipped:           []domain.MealType{},
		RemainingCalories: targets.TargetCalories,
		RemainingProtein:  targets.Macros.Protein,
	}

	for _, mealType := range DailyPlanOrder {
		picked := false
		for _, m := range Recommend(meals, targets, mealType) {
			if m.Calories <= plan.RemainingCalories && m.Protein <= plan.RemainingProtein {
				plan.Meals = append(plan.Meals, m)
				plan.Totals = plan.Totals.Add(m.Macros())
				plan.RemainingCalories -= m.Calories
				plan.RemainingProtein -= m.Protein
				picked = true
				break
			}
		}
		if !picked {
			plan.Skipped = append(plan.Skipped, mealType)
		}
	}

	return plan
}
