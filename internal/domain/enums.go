package domain

import (
	"strings"

	apperrors "github.com/vladimiradmaev/macrofit/internal/errors"
)

// ActivityLevel scales BMR into TDEE
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtremelyActive  ActivityLevel = "extremely_active"
)

type activityInfo struct {
	multiplier  float64
	label       string
	description string
}

var activityLevels = map[ActivityLevel]activityInfo{
	Sedentary:        {1.2, "Sedentary", "Little or no exercise"},
	LightlyActive:    {1.375, "Lightly Active", "Exercise 1-3 days/week"},
	ModeratelyActive: {1.55, "Moderately Active", "Exercise 3-5 days/week"},
	VeryActive:       {1.725, "Very Active", "Exercise 6-7 days/week"},
	ExtremelyActive:  {1.9, "Extremely Active", "Very hard exercise daily"},
}

// AllActivityLevels returns every activity level from least to most active
func AllActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtremelyActive}
}

// Multiplier returns the TDEE multiplier, 0 for unknown levels
func (a ActivityLevel) Multiplier() float64 { return activityLevels[a].multiplier }

func (a ActivityLevel) Label() string       { return activityLevels[a].label }
func (a ActivityLevel) Description() string { return activityLevels[a].description }

func (a ActivityLevel) Valid() bool {
	_, ok := activityLevels[a]
	return ok
}

// Gender selects the Mifflin-St Jeor constant
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

var genderLabels = map[Gender]string{
	Male:   "Male",
	Female: "Female",
	Other:  "Other",
}

func AllGenders() []Gender { return []Gender{Male, Female, Other} }

func (g Gender) Label() string { return genderLabels[g] }

func (g Gender) Valid() bool {
	_, ok := genderLabels[g]
	return ok
}

// Goal is the fitness goal driving the calorie adjustment and macro split
type Goal string

const (
	Cutting     Goal = "cutting"
	Maintenance Goal = "maintenance"
	Bulking     Goal = "bulking"
)

// GoalRule is the per-goal allocation table entry
type GoalRule struct {
	Label             string
	CalorieAdjustment int
	ProteinPerKg      float64
	FatsPerKg         float64
	// ClampCarbs floors the carbohydrate remainder at zero.
	ClampCarbs bool
}

var goalRules = map[Goal]GoalRule{
	Cutting:     {Label: "Cutting", CalorieAdjustment: -500, ProteinPerKg: 2.2, FatsPerKg: 0.8, ClampCarbs: true},
	Maintenance: {Label: "Maintenance", CalorieAdjustment: 0, ProteinPerKg: 1.8, FatsPerKg: 1.0},
	Bulking:     {Label: "Bulking", CalorieAdjustment: 500, ProteinPerKg: 1.6, FatsPerKg: 1.2},
}

func AllGoals() []Goal { return []Goal{Cutting, Maintenance, Bulking} }

// Rule returns the allocation table entry; the zero rule for unknown goals
func (g Goal) Rule() GoalRule { return goalRules[g] }

func (g Goal) CalorieAdjustment() int { return goalRules[g].CalorieAdjustment }
func (g Goal) Label() string          { return goalRules[g].Label }

func (g Goal) Valid() bool {
	_, ok := goalRules[g]
	return ok
}

// DietaryRestriction is a tag a meal satisfies and a user may require
type DietaryRestriction string

const (
	NoRestriction DietaryRestriction = "none"
	Vegetarian    DietaryRestriction = "vegetarian"
	Vegan         DietaryRestriction = "vegan"
	GlutenFree    DietaryRestriction = "gluten_free"
	DairyFree     DietaryRestriction = "dairy_free"
	NutFree       DietaryRestriction = "nut_free"
	LowCarb       DietaryRestriction = "low_carb"
	Keto          DietaryRestriction = "keto"
)

var restrictionLabels = map[DietaryRestriction]string{
	NoRestriction: "None",
	Vegetarian:    "Vegetarian",
	Vegan:         "Vegan",
	GlutenFree:    "Gluten Free",
	DairyFree:     "Dairy Free",
	NutFree:       "Nut Free",
	LowCarb:       "Low Carb",
	Keto:          "Keto",
}

func AllDietaryRestrictions() []DietaryRestriction {
	return []DietaryRestriction{NoRestriction, Vegetarian, Vegan, GlutenFree, DairyFree, NutFree, LowCarb, Keto}
}

func (r DietaryRestriction) Label() string { return restrictionLabels[r] }

func (r DietaryRestriction) Valid() bool {
	_, ok := restrictionLabels[r]
	return ok
}

// MealType is the slot a meal is meant for
type MealType string

const (
	// AnyMealType disables meal-type narrowing.
	AnyMealType MealType = ""
	Breakfast   MealType = "breakfast"
	Lunch       MealType = "lunch"
	Dinner      MealType = "dinner"
	Snack       MealType = "snack"
	PreWorkout  MealType = "pre_workout"
	PostWorkout MealType = "post_workout"
)

var mealTypeLabels = map[MealType]string{
	Breakfast:   "Breakfast",
	Lunch:       "Lunch",
	Dinner:      "Dinner",
	Snack:       "Snack",
	PreWorkout:  "Pre-Workout",
	PostWorkout: "Post-Workout",
}

func AllMealTypes() []MealType {
	return []MealType{Breakfast, Lunch, Dinner, Snack, PreWorkout, PostWorkout}
}

func (t MealType) Label() string {
	if t == AnyMealType {
		return "All"
	}
	return mealTypeLabels[t]
}

func (t MealType) Valid() bool {
	_, ok := mealTypeLabels[t]
	return ok
}

// ParseActivityLevel accepts the tag or its label in any case
func ParseActivityLevel(s string) (ActivityLevel, error) {
	for _, a := range AllActivityLevels() {
		if matches(s, string(a), a.Label()) {
			return a, nil
		}
	}
	return "", apperrors.NewUnknownValueError("activity level", s)
}

func ParseGender(s string) (Gender, error) {
	for _, g := range AllGenders() {
		if matches(s, string(g), g.Label()) {
			return g, nil
		}
	}
	return "", apperrors.NewUnknownValueError("gender", s)
}

func ParseGoal(s string) (Goal, error) {
	for _, g := range AllGoals() {
		if matches(s, string(g), g.Label()) {
			return g, nil
		}
	}
	return "", apperrors.NewUnknownValueError("goal", s)
}

func ParseDietaryRestriction(s string) (DietaryRestriction, error) {
	for _, r := range AllDietaryRestrictions() {
		if matches(s, string(r), r.Label()) {
			return r, nil
		}
	}
	return "", apperrors.NewUnknownValueError("dietary restriction", s)
}

// ParseDietaryRestrictions parses a comma separated list, skipping blanks
func ParseDietaryRestrictions(s string) ([]DietaryRestriction, error) {
	var out []DietaryRestriction
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := ParseDietaryRestriction(part)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ParseMealType maps "" and "all" to AnyMealType
func ParseMealType(s string) (MealType, error) {
	if v := strings.TrimSpace(s); v == "" || strings.EqualFold(v, "all") {
		return AnyMealType, nil
	}
	for _, t := range AllMealTypes() {
		if matches(s, string(t), t.Label()) {
			return t, nil
		}
	}
	return AnyMealType, apperrors.NewUnknownValueError("meal type", s)
}

func matches(input, tag, label string) bool {
	v := strings.TrimSpace(input)
	return strings.EqualFold(v, tag) || strings.EqualFold(v, label)
}
