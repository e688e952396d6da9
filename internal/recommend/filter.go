package recommend

import "github.com/vladimiradmaev/macrofit/internal/domain"

// IsCompatible reports whether meal carries every restriction the user
// requires. The "none" sentinel requires nothing, so an empty set or {none}
// accepts every meal.
func IsCompatible(meal domain.Meal, restrictions []domain.DietaryRestriction) bool {
	for _, r := range restrictions {
		if r == domain.NoRestriction {
			continue
		}
		if !meal.HasRestriction(r) {
			return false
		}
	}
	return true
}

// FilterByRestrictions keeps compatible meals in their original order
func FilterByRestrictions(meals []domain.Meal, restrictions []domain.DietaryRestriction) []domain.Meal {
	out := make([]domain.Meal, 0, len(meals))
	for _, m := range meals {
		if IsCompatible(m, restrictions) {
			out = append(out, m)
		}
	}
	return out
}

// FilterByType keeps meals of type t; AnyMealType keeps everything
func FilterByType(meals []domain.Meal, t domain.MealType) []domain.Meal {
	out := make([]domain.Meal, 0, len(meals))
	for _, m := range meals {
		if t == domain.AnyMealType || m.Type == t {
			out = append(out, m)
		}
	}
	return out
}
