package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vladimiradmaev/macrofit/internal/catalog"
	"github.com/vladimiradmaev/macrofit/internal/domain"
)

func names(meals []domain.Meal) []string {
	out := make([]string, 0, len(meals))
	for _, m := range meals {
		out = append(out, m.Name)
	}
	return out
}

func TestIsCompatibleWithoutRestrictions(t *testing.T) {
	for _, m := range catalog.Default().All() {
		assert.True(t, IsCompatible(m, nil), m.Name)
		assert.True(t, IsCompatible(m, []domain.DietaryRestriction{}), m.Name)
		assert.True(t, IsCompatible(m, []domain.DietaryRestriction{domain.NoRestriction}), m.Name)
	}
}

func TestIsCompatibleRequiresEveryTag(t *testing.T) {
	meal := domain.Meal{Restrictions: []domain.DietaryRestriction{domain.Vegetarian, domain.GlutenFree}}

	assert.True(t, IsCompatible(meal, []domain.DietaryRestriction{domain.Vegetarian}))
	assert.True(t, IsCompatible(meal, []domain.DietaryRestriction{domain.Vegetarian, domain.GlutenFree}))
	assert.False(t, IsCompatible(meal, []domain.DietaryRestriction{domain.Vegan}))
	assert.False(t, IsCompatible(meal, []domain.DietaryRestriction{domain.Vegetarian, domain.DairyFree}))
	assert.False(t, IsCompatible(meal, []domain.DietaryRestriction{domain.Vegan, domain.NoRestriction}))
	assert.False(t, IsCompatible(domain.Meal{}, []domain.DietaryRestriction{domain.Keto}))
}

func TestFilterByRestrictionsKeepsCatalogOrder(t *testing.T) {
	meals := catalog.Default().All()

	vegan := FilterByRestrictions(meals, []domain.DietaryRestriction{domain.Vegan})
	assert.Equal(t, []string{"Chickpea Buddha Bowl", "Tofu Scramble", "Rice Cakes with Almond Butter"}, names(vegan))

	veganGF := FilterByRestrictions(meals, []domain.DietaryRestriction{domain.Vegan, domain.GlutenFree})
	assert.Equal(t, []string{"Chickpea Buddha Bowl", "Rice Cakes with Almond Butter"}, names(veganGF))

	assert.Len(t, FilterByRestrictions(meals, []domain.DietaryRestriction{domain.NoRestriction}), 12)
	assert.Empty(t, FilterByRestrictions(meals, []domain.DietaryRestriction{domain.Keto}))
	assert.Empty(t, FilterByRestrictions(nil, []domain.DietaryRestriction{domain.Vegan}))
}

func TestFilterByType(t *testing.T) {
	meals := catalog.Default().All()

	assert.Equal(t, []string{"Lean Beef Stir-Fry", "Baked Salmon with Quinoa"}, names(FilterByType(meals, domain.Dinner)))
	assert.Len(t, FilterByType(meals, domain.AnyMealType), 12)
}

func TestSearchByName(t *testing.T) {
	meals := catalog.Default().All()

	assert.Equal(t, []string{"Protein Power Bowl", "Protein Smoothie"}, names(SearchByName(meals, "PROTEIN")))
	assert.Equal(t, []string{"Tuna Poke Bowl"}, names(SearchByName(meals, "poke")))
	assert.Len(t, SearchByName(meals, "  "), 12)
	assert.Empty(t, SearchByName(meals, "lasagna"))
}
