package nutrition

import (
	"github.com/vladimiradmaev/macrofit/internal/domain"
	apperrors "github.com/vladimiradmaev/macrofit/internal/errors"
)

// Plausible human ranges, exclusive on both ends.
const (
	MinAge    = 0
	MaxAge    = 120
	MinWeight = 20.0
	MaxWeight = 300.0
	MinHeight = 100.0
	MaxHeight = 250.0
)

// IsValidProfile reports whether derived values can be trusted
func IsValidProfile(p domain.UserProfile) bool {
	return len(profileProblems(p)) == 0
}

// ValidateProfile returns an InvalidProfile error listing every bad field
func ValidateProfile(p domain.UserProfile) error {
	problems := profileProblems(p)
	if len(problems) == 0 {
		return nil
	}
	return apperrors.NewInvalidProfileError(problems)
}

func profileProblems(p domain.UserProfile) map[string]string {
	problems := make(map[string]string)

	if p.Age <= MinAge || p.Age >= MaxAge {
		problems["age"] = "must be between 0 and 120 years (exclusive)"
	}
	if p.Weight <= MinWeight || p.Weight >= MaxWeight {
		problems["weight"] = "must be between 20 and 300 kg (exclusive)"
	}
	if p.Height <= MinHeight || p.Height >= MaxHeight {
		problems["height"] = "must be between 100 and 250 cm (exclusive)"
	}
	if !p.ActivityLevel.Valid() {
		problems["activity_level"] = "unknown activity level"
	}
	if !p.Gender.Valid() {
		problems["gender"] = "unknown gender"
	}
	if !p.Goal.Valid() {
		problems["goal"] = "unknown goal"
	}
	for _, r := range p.DietaryRestrictions {
		if !r.Valid() {
			problems["dietary_restrictions"] = "unknown dietary restriction " + string(r)
			break
		}
	}

	return problems
}
