package domain

import (
	"context"

	"github.com/google/uuid"
)

// GoalOption is one row of the goal comparison
type GoalOption struct {
	Goal           Goal   `json:"goal"`
	TargetCalories int    `json:"target_calories"`
	Macros         Macros `json:"macros"`
}

// MealQuery narrows the meal list
type MealQuery struct {
	Type   MealType
	Search string
}

// FitLevel grades a meal's share of the daily calorie target
type FitLevel string

const (
	FitGreat    FitLevel = "great"
	FitModerate FitLevel = "moderate"
	FitHigh     FitLevel = "high"
)

// MealFit is a meal measured against a daily target
type MealFit struct {
	PercentOfDaily int      `json:"percent_of_daily"`
	Level          FitLevel `json:"level"`
	Message        string   `json:"message"`
}

// DailyPlan is the greedy one-of-each selection and what it left over
type DailyPlan struct {
	Meals             []Meal     `json:"meals"`
	Totals            Macros     `json:"totals"`
	RemainingCalories int        `json:"remaining_calories"`
	RemainingProtein  int        `json:"remaining_protein"`
	Skipped           []MealType `json:"skipped"`
}

// NutritionService is the query surface presentation layers call into
type NutritionService interface {
	Calculate(ctx context.Context, profile UserProfile) NutritionTargets
	MacrosForGoal(ctx context.Context, profile UserProfile, goal Goal) Macros
	CaloriesForGoal(ctx context.Context, profile UserProfile, goal Goal) int
	GoalComparison(ctx context.Context, profile UserProfile) []GoalOption
	FilterCatalog(ctx context.Context, restrictions []DietaryRestriction) []Meal
	Recommend(ctx context.Context, mealType MealType, profile UserProfile) []Meal
	BrowseMeals(ctx context.Context, profile UserProfile, query MealQuery) []Meal
	DailyPlan(ctx context.Context, profile UserProfile) DailyPlan
	Meal(ctx context.Context, id uuid.UUID) (Meal, error)
	MealFit(ctx context.Context, meal Meal, profile UserProfile) MealFit
	IsValidProfile(profile UserProfile) bool
	ValidateProfile(profile UserProfile) error
}
