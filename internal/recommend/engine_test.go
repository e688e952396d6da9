package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimiradmaev/macrofit/internal/catalog"
	"github.com/vladimiradmaev/macrofit/internal/domain"
)

func targets(calories, protein int) domain.NutritionTargets {
	return domain.NutritionTargets{
		TargetCalories: calories,
		Macros:         domain.Macros{Protein: protein, Calories: calories},
	}
}

func TestRankByCalorieProximityIsStable(t *testing.T) {
	meals := []domain.Meal{
		{Name: "first", Calories: 500},
		{Name: "second", Calories: 500},
		{Name: "third", Calories: 500},
	}

	ranked := RankByCalorieProximity(meals, 500)
	assert.Equal(t, []string{"first", "second", "third"}, names(ranked))
}

func TestRankByCalorieProximityOrdersByDistance(t *testing.T) {
	meals := []domain.Meal{
		{Name: "far", Calories: 900},
		{Name: "under", Calories: 400},
		{Name: "exact", Calories: 500},
		{Name: "over", Calories: 600},
	}

	ranked := RankByCalorieProximity(meals, 500)
	assert.Equal(t, []string{"exact", "under", "over", "far"}, names(ranked))
	assert.Equal(t, "far", meals[0].Name)
	assert.Empty(t, RankByCalorieProximity(nil, 500))
	assert.NotNil(t, RankByCalorieProximity(nil, 500))
}

func TestRecommendNarrowsAndRanks(t *testing.T) {
	meals := catalog.Default().All()

	lunch := Recommend(meals, targets(2000, 150), domain.Lunch)
	assert.Equal(t, []string{"Chickpea Buddha Bowl", "Tuna Poke Bowl", "Grilled Chicken Caesar Salad"}, names(lunch))

	all := Recommend(meals, targets(2000, 150), domain.AnyMealType)
	require.Len(t, all, 12)
	assert.Equal(t, "Chickpea Buddha Bowl", all[0].Name)
	assert.Equal(t, 500, TargetPerMeal(targets(2003, 0)))

	assert.Empty(t, Recommend(nil, targets(2000, 150), domain.Snack))
}

func TestGenerateDailyPlanRespectsBudgets(t *testing.T) {
	plan := GenerateDailyPlan(catalog.Default().All(), targets(2000, 150))

	assert.Equal(t, []string{
		"Protein Power Bowl",
		"Chickpea Buddha Bowl",
		"Baked Salmon with Quinoa",
		"Protein Smoothie",
	}, names(plan.Meals))
	assert.Empty(t, plan.Skipped)

	calories, protein := 0, 0
	for _, m := range plan.Meals {
		calories += m.Calories
		protein += m.Protein
	}
	assert.LessOrEqual(t, calories, 2000)
	assert.LessOrEqual(t, protein, 150)
	assert.Equal(t, calories, plan.Totals.Calories)
	assert.Equal(t, protein, plan.Totals.Protein)
	assert.Equal(t, 2000-calories, plan.RemainingCalories)
	assert.Equal(t, 150-protein, plan.RemainingProtein)
}

func TestGenerateDailyPlanSkipsSlotsThatDoNotFit(t *testing.T) {
	plan := GenerateDailyPlan(catalog.Default().All(), targets(2545, 126))

	assert.Equal(t, []string{"Protein Power Bowl", "Grilled Chicken Caesar Salad", "Lean Beef Stir-Fry"}, names(plan.Meals))
	assert.Equal(t, []domain.MealType{domain.Snack}, plan.Skipped)
	assert.Equal(t, 4, plan.RemainingProtein)
}

func TestGenerateDailyPlanIsGreedy(t *testing.T) {
	// The closest breakfast eats the protein budget lunch needed, although
	// the smaller breakfast would have left room for both.
	meals := []domain.Meal{
		{Name: "big breakfast", Type: domain.Breakfast, Calories: 250, Protein: 40},
		{Name: "small breakfast", Type: domain.Breakfast, Calories: 100, Protein: 10},
		{Name: "lunch", Type: domain.Lunch, Calories: 150, Protein: 30},
	}

	roomy := GenerateDailyPlan(meals, targets(1000, 100))
	assert.Equal(t, []string{"big breakfast", "lunch"}, names(roomy.Meals))

	tight := GenerateDailyPlan(meals, targets(1000, 50))
	assert.Equal(t, []string{"big breakfast"}, names(tight.Meals))
	assert.Equal(t, []domain.MealType{domain.Lunch, domain.Dinner, domain.Snack}, tight.Skipped)
}

func TestGenerateDailyPlanEmptyCatalog(t *testing.T) {
	plan := GenerateDailyPlan(nil, targets(2000, 150))

	assert.Empty(t, plan.Meals)
	assert.Equal(t, DailyPlanOrder, plan.Skipped)
	assert.Equal(t, domain.Macros{}, plan.Totals)
}

func TestFit(t *testing.T) {
	tests := []struct {
		calories int
		target   int
		percent  int
		level    domain.FitLevel
	}{
		{450, 2000, 22, domain.FitGreat},
		{600, 2000, 30, domain.FitGreat},
		{800, 2000, 40, domain.FitModerate},
		{900, 2000, 45, domain.FitHigh},
		{450, 0, 0, domain.FitGreat},
	}

	for _, tt := range tests {
		fit := Fit(domain.Meal{Calories: tt.calories}, tt.target)
		assert.Equal(t, tt.percent, fit.PercentOfDaily)
		assert.Equal(t, tt.level, fit.Level)
		assert.NotEmpty(t, fit.Message)
	}
}
