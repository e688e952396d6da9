package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimiradmaev/macrofit/internal/domain"
	apperrors "github.com/vladimiradmaev/macrofit/internal/errors"
)

func referenceProfile() domain.UserProfile {
	return domain.UserProfile{
		Age:           25,
		Weight:        70,
		Height:        170,
		ActivityLevel: domain.ModeratelyActive,
		Gender:        domain.Male,
		Goal:          domain.Maintenance,
	}
}

func TestCalculateReferenceMaintenance(t *testing.T) {
	got := Calculate(referenceProfile())

	assert.InDelta(t, 1642.5, got.BMR, 1e-9)
	assert.Equal(t, 2545, got.TDEE)
	assert.Equal(t, 2545, got.TargetCalories)
	assert.Equal(t, domain.Macros{Protein: 126, Carbs: 352, Fats: 70, Calories: 2545}, got.Macros)
}

func TestCalculateReferenceCutting(t *testing.T) {
	p := referenceProfile()
	p.Goal = domain.Cutting

	got := Calculate(p)

	assert.Equal(t, 2045, got.TargetCalories)
	assert.Equal(t, domain.Macros{Protein: 154, Carbs: 231, Fats: 56, Calories: 2045}, got.Macros)
}

func TestCalculateReferenceBulking(t *testing.T) {
	p := referenceProfile()
	p.Goal = domain.Bulking

	got := Calculate(p)

	assert.Equal(t, 3045, got.TargetCalories)
	assert.Equal(t, domain.Macros{Protein: 112, Carbs: 460, Fats: 84, Calories: 3045}, got.Macros)
}

func TestBMRByGender(t *testing.T) {
	p := domain.UserProfile{Age: 25, Weight: 60, Height: 165, ActivityLevel: domain.Sedentary}

	p.Gender = domain.Female
	assert.InDelta(t, 1345.25, BMR(p), 1e-9)
	assert.Equal(t, 1614, TDEE(p))

	p.Gender = domain.Male
	male := BMR(p)
	p.Gender = domain.Other
	assert.InDelta(t, male, BMR(p), 1e-9)
	assert.InDelta(t, 1511.25, male, 1e-9)
}

func TestCarbClampOnlyWhenCutting(t *testing.T) {
	p := domain.UserProfile{
		Age:           119,
		Weight:        299,
		Height:        101,
		ActivityLevel: domain.Sedentary,
		Gender:        domain.Female,
		Goal:          domain.Maintenance,
	}

	maintenance := ComputeMacros(p)
	assert.Equal(t, -351, maintenance.Carbs)

	cutting := MacrosForGoal(p, domain.Cutting)
	assert.Equal(t, 0, cutting.Carbs)
	assert.Equal(t, 657, cutting.Protein)
}

func TestMacrosForGoalMatchesSubstitutedProfile(t *testing.T) {
	p := referenceProfile()

	for _, goal := range domain.AllGoals() {
		substituted := p
		substituted.Goal = goal
		assert.Equal(t, ComputeMacros(substituted), MacrosForGoal(p, goal), goal)
		assert.Equal(t, TargetCalories(substituted), CaloriesForGoal(p, goal), goal)
	}
	assert.Equal(t, domain.Maintenance, p.Goal)
}

func TestCalculationInvariants(t *testing.T) {
	for _, age := range []int{18, 45, 90} {
		for _, weight := range []float64{45.5, 80, 140} {
			for _, height := range []float64{150, 182.5, 210} {
				for _, level := range domain.AllActivityLevels() {
					for _, gender := range domain.AllGenders() {
						for _, goal := range domain.AllGoals() {
							p := domain.UserProfile{
								Age: age, Weight: weight, Height: height,
								ActivityLevel: level, Gender: gender, Goal: goal,
							}
							require.True(t, IsValidProfile(p))

							first := Calculate(p)
							assert.Equal(t, first.TDEE+goal.CalorieAdjustment(), first.TargetCalories)
							assert.Equal(t, first.TargetCalories, first.Macros.Calories)
							assert.Equal(t, first, Calculate(p))
						}
					}
				}
			}
		}
	}
}

func TestIsValidProfile(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.UserProfile)
		valid  bool
		field  string
	}{
		{"reference", func(*domain.UserProfile) {}, true, ""},
		{"age zero", func(p *domain.UserProfile) { p.Age = 0 }, false, "age"},
		{"age 120", func(p *domain.UserProfile) { p.Age = 120 }, false, "age"},
		{"age 119", func(p *domain.UserProfile) { p.Age = 119 }, true, ""},
		{"weight 20", func(p *domain.UserProfile) { p.Weight = 20 }, false, "weight"},
		{"weight 20.1", func(p *domain.UserProfile) { p.Weight = 20.1 }, true, ""},
		{"weight 300", func(p *domain.UserProfile) { p.Weight = 300 }, false, "weight"},
		{"height 100", func(p *domain.UserProfile) { p.Height = 100 }, false, "height"},
		{"height 250", func(p *domain.UserProfile) { p.Height = 250 }, false, "height"},
		{"unknown goal", func(p *domain.UserProfile) { p.Goal = "shred" }, false, "goal"},
		{"unknown activity", func(p *domain.UserProfile) { p.ActivityLevel = "" }, false, "activity_level"},
		{"unknown restriction", func(p *domain.UserProfile) {
			p.DietaryRestrictions = []domain.DietaryRestriction{"paleo"}
		}, false, "dietary_restrictions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := referenceProfile()
			tt.mutate(&p)

			assert.Equal(t, tt.valid, IsValidProfile(p))

			err := ValidateProfile(p)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, apperrors.ErrInvalidProfile)
			appErr, ok := err.(*apperrors.AppError)
			require.True(t, ok)
			assert.Contains(t, appErr.Context, tt.field)
		})
	}
}

func TestCalculatorDoesNotValidate(t *testing.T) {
	p := domain.UserProfile{Age: 500, Weight: 1, Height: 10, ActivityLevel: domain.Sedentary, Gender: domain.Male, Goal: domain.Cutting}

	got := Calculate(p)
	assert.Less(t, got.TargetCalories, 0)
	assert.Zero(t, got.Macros.ProteinPct())
}
