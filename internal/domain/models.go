package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Calories per gram of each macronutrient
const (
	ProteinKcalPerGram = 4
	CarbsKcalPerGram   = 4
	FatsKcalPerGram    = 9
)

// UserProfile is the caller-held snapshot every calculation starts from
type UserProfile struct {
	Age                 int                  `json:"age"`
	Weight              float64              `json:"weight"` // kg
	Height              float64              `json:"height"` // cm
	ActivityLevel       ActivityLevel        `json:"activity_level"`
	Gender              Gender               `json:"gender"`
	Goal                Goal                 `json:"goal"`
	DietaryRestrictions []DietaryRestriction `json:"dietary_restrictions"`
}

// DefaultProfile returns the profile a new session starts with
func DefaultProfile() UserProfile {
	return UserProfile{
		Age:           25,
		Weight:        70,
		Height:        170,
		ActivityLevel: ModeratelyActive,
		Gender:        Male,
		Goal:          Maintenance,
	}
}

// Clone returns a copy that shares no slices with p
func (p UserProfile) Clone() UserProfile {
	p.DietaryRestrictions = slices.Clone(p.DietaryRestrictions)
	return p
}

// WithGoal returns a copy of the profile with the goal substituted
func (p UserProfile) WithGoal(goal Goal) UserProfile {
	p = p.Clone()
	p.Goal = goal
	return p
}

// ToggleRestriction returns a copy with r flipped. "none" excludes every
// other tag, and an emptied selection falls back to {none}.
func (p UserProfile) ToggleRestriction(r DietaryRestriction) UserProfile {
	current := p.DietaryRestrictions
	var next []DietaryRestriction

	switch {
	case r == NoRestriction:
		next = nil
	case slices.Contains(current, r):
		for _, existing := range current {
			if existing != r {
				next = append(next, existing)
			}
		}
	default:
		for _, existing := range current {
			if existing != NoRestriction {
				next = append(next, existing)
			}
		}
		next = append(next, r)
	}

	if len(next) == 0 {
		next = []DietaryRestriction{NoRestriction}
	}
	p.DietaryRestrictions = next
	return p
}

// HasRestriction reports whether the user selected r
func (p UserProfile) HasRestriction(r DietaryRestriction) bool {
	return slices.Contains(p.DietaryRestrictions, r)
}

// Macros are gram targets plus the calorie total they were derived from
type Macros struct {
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
	Calories int `json:"calories"`
}

func (m Macros) ProteinPct() float64 { return m.pct(m.Protein * ProteinKcalPerGram) }
func (m Macros) CarbsPct() float64   { return m.pct(m.Carbs * CarbsKcalPerGram) }
func (m Macros) FatsPct() float64    { return m.pct(m.Fats * FatsKcalPerGram) }

// pct is 0 for non-positive calorie totals.
func (m Macros) pct(kcal int) float64 {
	if m.Calories <= 0 {
		return 0
	}
	return float64(kcal) / float64(m.Calories) * 100
}

// Add sums two macro totals
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fats:     m.Fats + o.Fats,
		Calories: m.Calories + o.Calories,
	}
}

// NutritionTargets is the full result of a calculation
type NutritionTargets struct {
	BMR            float64 `json:"bmr"`
	TDEE           int     `json:"tdee"`
	TargetCalories int     `json:"target_calories"`
	Macros         Macros  `json:"macros"`
}

// Meal is an immutable catalog record
type Meal struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	Calories     int                  `json:"calories"`
	Protein      int                  `json:"protein"`
	Carbs        int                  `json:"carbs"`
	Fats         int                  `json:"fats"`
	Type         MealType             `json:"meal_type"`
	Ingredients  []string             `json:"ingredients"`
	Instructions []string             `json:"instructions"`
	PrepTime     int                  `json:"prep_time"` // minutes
	Restrictions []DietaryRestriction `json:"restrictions"`
}

func (m Meal) Macros() Macros {
	return Macros{Protein: m.Protein, Carbs: m.Carbs, Fats: m.Fats, Calories: m.Calories}
}

func (m Meal) ProteinPct() float64 { return m.Macros().ProteinPct() }
func (m Meal) CarbsPct() float64   { return m.Macros().CarbsPct() }
func (m Meal) FatsPct() float64    { return m.Macros().FatsPct() }

func (m Meal) HasRestriction(r DietaryRestriction) bool {
	return slices.Contains(m.Restrictions, r)
}

// Clone returns a copy that shares no slices with m
func (m Meal) Clone() Meal {
	m.Ingredients = slices.Clone(m.Ingredients)
	m.Instructions = slices.Clone(m.Instructions)
	m.Restrictions = slices.Clone(m.Restrictions)
	return m
}
