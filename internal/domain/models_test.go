package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vladimiradmaev/macrofit/internal/errors"
)

func TestMacroPercentages(t *testing.T) {
	m := Macros{Protein: 150, Carbs: 200, Fats: 60, Calories: 2000}

	assert.InDelta(t, 30.0, m.ProteinPct(), 1e-9)
	assert.InDelta(t, 40.0, m.CarbsPct(), 1e-9)
	assert.InDelta(t, 27.0, m.FatsPct(), 1e-9)
}

func TestMacroPercentagesDegenerateCalories(t *testing.T) {
	for _, calories := range []int{0, -300} {
		m := Macros{Protein: 100, Carbs: 50, Fats: 20, Calories: calories}
		assert.Zero(t, m.ProteinPct())
		assert.Zero(t, m.CarbsPct())
		assert.Zero(t, m.FatsPct())
	}
}

func TestMealPercentagesMatchMacros(t *testing.T) {
	meal := Meal{Calories: 400, Protein: 40, Carbs: 45, Fats: 6}

	assert.InDelta(t, 40.0, meal.ProteinPct(), 1e-9)
	assert.InDelta(t, 45.0, meal.CarbsPct(), 1e-9)
	assert.InDelta(t, 13.5, meal.FatsPct(), 1e-9)
}

func TestWithGoalDoesNotMutate(t *testing.T) {
	p := DefaultProfile()
	p.DietaryRestrictions = []DietaryRestriction{Vegan}

	cut := p.WithGoal(Cutting)
	cut.DietaryRestrictions[0] = Keto

	assert.Equal(t, Maintenance, p.Goal)
	assert.Equal(t, Cutting, cut.Goal)
	assert.Equal(t, Vegan, p.DietaryRestrictions[0])
}

func TestToggleRestriction(t *testing.T) {
	tests := []struct {
		name    string
		current []DietaryRestriction
		toggle  DietaryRestriction
		want    []DietaryRestriction
	}{
		{"add to empty", nil, Vegan, []DietaryRestriction{Vegan}},
		{"adding drops none", []DietaryRestriction{NoRestriction}, GlutenFree, []DietaryRestriction{GlutenFree}},
		{"remove present", []DietaryRestriction{Vegan, GlutenFree}, Vegan, []DietaryRestriction{GlutenFree}},
		{"remove last falls back to none", []DietaryRestriction{Vegan}, Vegan, []DietaryRestriction{NoRestriction}},
		{"none resets", []DietaryRestriction{Vegan, Keto}, NoRestriction, []DietaryRestriction{NoRestriction}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := UserProfile{DietaryRestrictions: tt.current}
			got := p.ToggleRestriction(tt.toggle)
			assert.Equal(t, tt.want, got.DietaryRestrictions)
		})
	}
}

func TestGoalTable(t *testing.T) {
	assert.Equal(t, -500, Cutting.CalorieAdjustment())
	assert.Equal(t, 0, Maintenance.CalorieAdjustment())
	assert.Equal(t, 500, Bulking.CalorieAdjustment())
	assert.True(t, Cutting.Rule().ClampCarbs)
	assert.False(t, Bulking.Rule().ClampCarbs)
	assert.Equal(t, GoalRule{}, Goal("shred").Rule())
}

func TestActivityMultipliers(t *testing.T) {
	want := []float64{1.2, 1.375, 1.55, 1.725, 1.9}
	for i, level := range AllActivityLevels() {
		assert.Equal(t, want[i], level.Multiplier(), level)
		assert.NotEmpty(t, level.Description())
	}
	assert.Zero(t, ActivityLevel("couch").Multiplier())
}

func TestParseEnums(t *testing.T) {
	level, err := ParseActivityLevel("Very Active")
	require.NoError(t, err)
	assert.Equal(t, VeryActive, level)

	goal, err := ParseGoal("BULKING")
	require.NoError(t, err)
	assert.Equal(t, Bulking, goal)

	gender, err := ParseGender("female")
	require.NoError(t, err)
	assert.Equal(t, Female, gender)

	mealType, err := ParseMealType("Pre-Workout")
	require.NoError(t, err)
	assert.Equal(t, PreWorkout, mealType)

	mealType, err = ParseMealType("all")
	require.NoError(t, err)
	assert.Equal(t, AnyMealType, mealType)

	restrictions, err := ParseDietaryRestrictions("vegan, Gluten Free,,")
	require.NoError(t, err)
	assert.Equal(t, []DietaryRestriction{Vegan, GlutenFree}, restrictions)

	_, err = ParseGoal("shred")
	assert.ErrorIs(t, err, apperrors.ErrUnknownValue)

	_, err = ParseDietaryRestrictions("vegan,paleo")
	assert.ErrorIs(t, err, apperrors.ErrUnknownValue)
}
