package recommend

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/vladimiradmaev/macrofit/internal/domain"
)

var nameMatcher = search.New(language.English, search.IgnoreCase, search.IgnoreDiacritics)

// SearchByName keeps meals whose name contains query, ignoring case and
// diacritics. A blank query keeps everything.
func SearchByName(meals []domain.Meal, query string) []domain.Meal {
	query = strings.TrimSpace(query)
	out := make([]domain.Meal, 0, len(meals))
	for _, m := range meals {
		if query == "" {
			out = append(out, m)
			continue
		}
		if start, _ := nameMatcher.IndexString(m.Name, query); start >= 0 {
			out = append(out, m)
		}
	}
	return out
}
