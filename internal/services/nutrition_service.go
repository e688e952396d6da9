package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/vladimiradmaev/macrofit/internal/catalog"
	"github.com/vladimiradmaev/macrofit/internal/domain"
	"github.com/vladimiradmaev/macrofit/internal/logger"
	"github.com/vladimiradmaev/macrofit/internal/nutrition"
	"github.com/vladimiradmaev/macrofit/internal/recommend"
)

// NutritionService answers every query against one immutable catalog.
// Targets are derived from the profile on each call and never cached.
type NutritionService struct {
	catalog *catalog.Catalog
}

var _ domain.NutritionService = (*NutritionService)(nil)

func NewNutritionService(c *catalog.Catalog) *NutritionService {
	return &NutritionService{catalog: c}
}

func (s *NutritionService) Calculate(ctx context.Context, profile domain.UserProfile) domain.NutritionTargets {
	targets := nutrition.Calculate(profile)
	logger.WithContext(ctx).Debug("Calculated targets",
		"goal", profile.Goal,
		"tdee", targets.TDEE,
		"target_calories", targets.TargetCalories,
	)
	return targets
}

func (s *NutritionService) MacrosForGoal(ctx context.Context, profile domain.UserProfile, goal domain.Goal) domain.Macros {
	return nutrition.MacrosForGoal(profile, goal)
}

func (s *NutritionService) CaloriesForGoal(ctx context.Context, profile domain.UserProfile, goal domain.Goal) int {
	return nutrition.CaloriesForGoal(profile, goal)
}

// GoalComparison lists target calories and macros for every goal
func (s *NutritionService) GoalComparison(ctx context.Context, profile domain.UserProfile) []domain.GoalOption {
	options := make([]domain.GoalOption, 0, len(domain.AllGoals()))
	for _, goal := range domain.AllGoals() {
		options = append(options, domain.GoalOption{
			Goal:           goal,
			TargetCalories: nutrition.CaloriesForGoal(profile, goal),
			Macros:         nutrition.MacrosForGoal(profile, goal),
		})
	}
	return options
}

func (s *NutritionService) FilterCatalog(ctx context.Context, restrictions []domain.DietaryRestriction) []domain.Meal {
	meals := recommend.FilterByRestrictions(s.catalog.All(), restrictions)
	logger.WithContext(ctx).Debug("Filtered catalog",
		"restrictions", restrictions,
		"matches", len(meals),
	)
	return meals
}

// Recommend ranks the profile-compatible meals of mealType. An empty
// compatible set yields an empty result.
func (s *NutritionService) Recommend(ctx context.Context, mealType domain.MealType, profile domain.UserProfile) []domain.Meal {
	pool := s.FilterCatalog(ctx, profile.DietaryRestrictions)
	return recommend.Recommend(pool, nutrition.Calculate(profile), mealType)
}

// BrowseMeals is Recommend with an additional name search
func (s *NutritionService) BrowseMeals(ctx context.Context, profile domain.UserProfile, query domain.MealQuery) []domain.Meal {
	pool := s.FilterCatalog(ctx, profile.DietaryRestrictions)
	pool = recommend.SearchByName(pool, query.Search)
	return recommend.Recommend(pool, nutrition.Calculate(profile), query.Type)
}

func (s *NutritionService) DailyPlan(ctx context.Context, profile domain.UserProfile) domain.DailyPlan {
	pool := s.FilterCatalog(ctx, profile.DietaryRestrictions)
	plan := recommend.GenerateDailyPlan(pool, nutrition.Calculate(profile))
	logger.WithContext(ctx).Debug("Generated daily plan",
		"meals", len(plan.Meals),
		"skipped", plan.Skipped,
		"remaining_calories", plan.RemainingCalories,
	)
	return plan
}

func (s *NutritionService) Meal(ctx context.Context, id uuid.UUID) (domain.Meal, error) {
	return s.catalog.Find(id)
}

func (s *NutritionService) MealFit(ctx context.Context, meal domain.Meal, profile domain.UserProfile) domain.MealFit {
	return recommend.Fit(meal, nutrition.TargetCalories(profile))
}

func (s *NutritionService) IsValidProfile(profile domain.UserProfile) bool {
	return nutrition.IsValidProfile(profile)
}

func (s *NutritionService) ValidateProfile(profile domain.UserProfile) error {
	return nutrition.ValidateProfile(profile)
}
