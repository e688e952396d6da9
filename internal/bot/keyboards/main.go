package keyboards

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/macrofit/internal/domain"
)

// Callback data prefixes
const (
	GenderPrefix      = "gender:"
	ActivityPrefix    = "activity:"
	GoalPrefix        = "goal:"
	RestrictionPrefix = "restriction:"
	MealTypePrefix    = "meals:"
	MealPrefix        = "meal:"
)

// Meal lists are capped to keep the keyboard within Telegram limits.
const maxMealButtons = 10

func backRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", "main_menu"),
	)
}

// MainMenu creates the main menu keyboard
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧮 Calculate targets", "calculate"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍽️ Meals", "meals"),
			tgbotapi.NewInlineKeyboardButtonData("📅 Daily plan", "plan"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🥗 Preferences", "preferences"),
			tgbotapi.NewInlineKeyboardButtonData("👤 Profile", "profile"),
		),
	)
}

// GenderMenu lists every gender option
func GenderMenu() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, g := range domain.AllGenders() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(g.Label(), GenderPrefix+string(g)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row, backRow())
}

// ActivityMenu puts one activity level per row
func ActivityMenu() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, a := range domain.AllActivityLevels() {
		label := fmt.Sprintf("%s (×%g)", a.Label(), a.Multiplier())
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, ActivityPrefix+string(a)),
		))
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// GoalMenu lists every goal option
func GoalMenu() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, g := range domain.AllGoals() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(g.Label(), GoalPrefix+string(g)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row, backRow())
}

// ResultsMenu follows the targets message
func ResultsMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🍽️ Meals", "meals"),
			tgbotapi.NewInlineKeyboardButtonData("📅 Daily plan", "plan"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Recalculate", "calculate"),
		),
		backRow(),
	)
}

// PreferencesMenu marks the restrictions currently selected in profile
func PreferencesMenu(profile domain.UserProfile) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	restrictions := domain.AllDietaryRestrictions()
	for i := 0; i < len(restrictions); i += 2 {
		var row []tgbotapi.InlineKeyboardButton
		for _, r := range restrictions[i:min(i+2, len(restrictions))] {
			mark := "⬜"
			if profile.HasRestriction(r) {
				mark = "✅"
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(mark+" "+r.Label(), RestrictionPrefix+string(r)))
		}
		rows = append(rows, row)
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// MealTypeMenu offers every meal type filter and the name search
func MealTypeMenu() tgbotapi.InlineKeyboardMarkup {
	types := append([]domain.MealType{domain.AnyMealType}, domain.AllMealTypes()...)

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(types); i += 2 {
		var row []tgbotapi.InlineKeyboardButton
		for _, t := range types[i:min(i+2, len(types))] {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(t.Label(), MealTypePrefix+mealTypeData(t)))
		}
		rows = append(rows, row)
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔍 Search by name", "search")),
		backRow(),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// MealListMenu links each listed meal to its detail view
func MealListMenu(meals []domain.Meal) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, m := range meals {
		if i == maxMealButtons {
			break
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(m.Name, MealPrefix+m.ID.String()),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("◀️ Meal types", "meals")),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// MealDetailMenu follows a single meal
func MealDetailMenu(t domain.MealType) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ More "+t.Label(), MealTypePrefix+mealTypeData(t)),
		),
		backRow(),
	)
}

// CancelMenu lets the user leave a text prompt
func CancelMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✖️ Cancel", "main_menu"),
		),
	)
}

func mealTypeData(t domain.MealType) string {
	if t == domain.AnyMealType {
		return "all"
	}
	return string(t)
}
