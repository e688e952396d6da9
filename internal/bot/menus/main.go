package menus

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/macrofit/internal/bot/keyboards"
	"github.com/vladimiradmaev/macrofit/internal/domain"
)

// Sender is the part of *tgbotapi.BotAPI the bot talks through
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

const mainMenuText = `🥗 *MacroFit*, your nutrition calculator

I can:
• Work out your BMR, TDEE and calorie target
• Split the target into protein, carbs and fats
• Suggest meals that fit your diet and your day

⚠️ *Note:* the numbers are estimates, not medical advice.

Choose an action:`

// SendMainMenu sends the main menu to a chat
func SendMainMenu(api Sender, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, mainMenuText)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// SendText sends a plain message with an optional keyboard
func SendText(api Sender, chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	_, err := api.Send(msg)
	return err
}

// SendMarkdown sends a Markdown message, retrying as plain text if
// Telegram rejects the markup.
func SendMarkdown(api Sender, chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	if _, err := api.Send(msg); err != nil {
		msg.ParseMode = ""
		_, err = api.Send(msg)
		return err
	}
	return nil
}

// SendPreferences sends the dietary restriction toggles. When messageID
// is set the existing message is edited in place.
func SendPreferences(api Sender, chatID int64, messageID int, profile domain.UserProfile) error {
	text := "🥗 *Dietary preferences*\n\nMeals must satisfy every selected restriction.\n\nSelected: " +
		restrictionList(profile.DietaryRestrictions)
	keyboard := keyboards.PreferencesMenu(profile)

	if messageID != 0 {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
		edit.ParseMode = tgbotapi.ModeMarkdown
		_, err := api.Send(edit)
		return err
	}
	return SendMarkdown(api, chatID, text, keyboard)
}

// FormatProfile renders the working profile
func FormatProfile(p domain.UserProfile) string {
	var b strings.Builder
	b.WriteString("👤 *Your profile*\n\n")
	fmt.Fprintf(&b, "Age: %d years\n", p.Age)
	fmt.Fprintf(&b, "Weight: %g kg\n", p.Weight)
	fmt.Fprintf(&b, "Height: %g cm\n", p.Height)
	fmt.Fprintf(&b, "Gender: %s\n", p.Gender.Label())
	fmt.Fprintf(&b, "Activity: %s\n", p.ActivityLevel.Label())
	fmt.Fprintf(&b, "Goal: %s\n", p.Goal.Label())
	fmt.Fprintf(&b, "Restrictions: %s", restrictionList(p.DietaryRestrictions))
	return b.String()
}

// FormatResults renders the targets and the side-by-side goal comparison
func FormatResults(profile domain.UserProfile, targets domain.NutritionTargets, options []domain.GoalOption) string {
	var b strings.Builder
	b.WriteString("📊 *Your daily targets*\n\n")
	fmt.Fprintf(&b, "BMR: %.0f kcal\n", targets.BMR)
	fmt.Fprintf(&b, "TDEE: %d kcal\n", targets.TDEE)
	fmt.Fprintf(&b, "🎯 Target (%s): *%d kcal*\n\n", profile.Goal.Label(), targets.TargetCalories)
	b.WriteString(formatMacros(targets.Macros))

	if len(options) > 0 {
		b.WriteString("\n\n⚖️ *By goal*\n")
		for _, o := range options {
			marker := "•"
			if o.Goal == profile.Goal {
				marker = "▶"
			}
			fmt.Fprintf(&b, "%s %s: %d kcal · P %dg · C %dg · F %dg\n",
				marker, o.Goal.Label(), o.TargetCalories, o.Macros.Protein, o.Macros.Carbs, o.Macros.Fats)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatMacros(m domain.Macros) string {
	return fmt.Sprintf("🥩 Protein: %d g (%.0f%%)\n🍞 Carbs: %d g (%.0f%%)\n🧈 Fats: %d g (%.0f%%)",
		m.Protein, m.ProteinPct(), m.Carbs, m.CarbsPct(), m.Fats, m.FatsPct())
}

// FormatMealList renders ranked meals with their share of the daily target
func FormatMealList(title string, meals []domain.Meal, targetCalories int, fit func(domain.Meal) domain.MealFit) string {
	if len(meals) == 0 {
		return title + "\n\nNo meals match your preferences. Try relaxing a restriction."
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	for i, m := range meals {
		fmt.Fprintf(&b, "\n%d. *%s*\n   %d kcal · P %dg · C %dg · F %dg · %d min",
			i+1, EscapeMarkdown(m.Name), m.Calories, m.Protein, m.Carbs, m.Fats, m.PrepTime)
		if targetCalories > 0 {
			fmt.Fprintf(&b, " · %d%% of daily", fit(m).PercentOfDaily)
		}
	}
	return b.String()
}

// FormatMeal renders the detail view of one meal
func FormatMeal(m domain.Meal, fit domain.MealFit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ *%s*\n%s · %d min\n\n", EscapeMarkdown(m.Name), m.Type.Label(), m.PrepTime)
	fmt.Fprintf(&b, "🔥 %d kcal\n", m.Calories)
	b.WriteString(formatMacros(m.Macros()))
	fmt.Fprintf(&b, "\n\n📈 %d%% of your daily calories. %s\n", fit.PercentOfDaily, fit.Message)

	b.WriteString("\n🛒 *Ingredients*\n")
	for _, ing := range m.Ingredients {
		b.WriteString("• " + EscapeMarkdown(ing) + "\n")
	}
	b.WriteString("\n👨‍🍳 *Instructions*\n")
	for i, step := range m.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, EscapeMarkdown(step))
	}
	if len(m.Restrictions) > 0 {
		b.WriteString("\n🏷️ " + restrictionList(m.Restrictions))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatDailyPlan renders the greedy plan and what it left over
func FormatDailyPlan(plan domain.DailyPlan, targets domain.NutritionTargets) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 *Daily plan* (target %d kcal, %d g protein)\n", targets.TargetCalories, targets.Macros.Protein)

	if len(plan.Meals) == 0 {
		b.WriteString("\nNothing fits your budget and preferences.")
	}
	for _, m := range plan.Meals {
		fmt.Fprintf(&b, "\n%s: *%s*\n   %d kcal · P %dg · C %dg · F %dg",
			m.Type.Label(), EscapeMarkdown(m.Name), m.Calories, m.Protein, m.Carbs, m.Fats)
	}

	fmt.Fprintf(&b, "\n\nTotal: %d kcal · P %dg · C %dg · F %dg",
		plan.Totals.Calories, plan.Totals.Protein, plan.Totals.Carbs, plan.Totals.Fats)
	fmt.Fprintf(&b, "\nRemaining: %d kcal · %d g protein", plan.RemainingCalories, plan.RemainingProtein)

	if len(plan.Skipped) > 0 {
		labels := make([]string, 0, len(plan.Skipped))
		for _, t := range plan.Skipped {
			labels = append(labels, t.Label())
		}
		b.WriteString("\nSkipped: " + strings.Join(labels, ", "))
	}
	return b.String()
}

func restrictionList(rs []domain.DietaryRestriction) string {
	if len(rs) == 0 {
		return domain.NoRestriction.Label()
	}
	labels := make([]string, 0, len(rs))
	for _, r := range rs {
		labels = append(labels, r.Label())
	}
	return strings.Join(labels, ", ")
}

// EscapeMarkdown escapes the characters legacy Markdown treats as markup
func EscapeMarkdown(s string) string {
	return strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"]", "\\]",
		"`", "\\`",
	).Replace(s)
}
