// Package catalog holds the compiled-in, read-only meal reference data.
package catalog

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vladimiradmaev/macrofit/internal/domain"
	apperrors "github.com/vladimiradmaev/macrofit/internal/errors"
)

// mealNamespace scopes the name-derived meal IDs.
var mealNamespace = uuid.MustParse("6f1c7a52-3c39-4f0e-9a57-2d8a1f1f6b10")

// MealID returns the stable ID of the meal with the given name
func MealID(name string) uuid.UUID {
	return uuid.NewSHA1(mealNamespace, []byte(name))
}

// Catalog is an ordered, immutable meal collection. It is safe for
// concurrent use without locking because nothing mutates it after New.
type Catalog struct {
	meals []domain.Meal
	byID  map[uuid.UUID]int
}

// New copies meals into a catalog, assigning name-derived IDs where missing
func New(meals ...domain.Meal) *Catalog {
	c := &Catalog{
		meals: make([]domain.Meal, 0, len(meals)),
		byID:  make(map[uuid.UUID]int, len(meals)),
	}
	for _, m := range meals {
		m = m.Clone()
		if m.ID == uuid.Nil {
			m.ID = MealID(m.Name)
		}
		c.byID[m.ID] = len(c.meals)
		c.meals = append(c.meals, m)
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog built from the seed meals
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(seedMeals()...)
	})
	return defaultCatalog
}

// All returns a copy of every meal in catalog order
func (c *Catalog) All() []domain.Meal {
	out := make([]domain.Meal, len(c.meals))
	for i, m := range c.meals {
		out[i] = m.Clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.meals)
}

// ByType returns the meals of one type in catalog order
func (c *Catalog) ByType(t domain.MealType) []domain.Meal {
	out := []domain.Meal{}
	for _, m := range c.meals {
		if m.Type == t {
			out = append(out, m.Clone())
		}
	}
	return out
}

// Find looks a meal up by ID
func (c *Catalog) Find(id uuid.UUID) (domain.Meal, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Meal{}, apperrors.NewMealNotFoundError(id.String())
	}
	return c.meals[i].Clone(), nil
}
