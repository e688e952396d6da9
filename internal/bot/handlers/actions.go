package handlers

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/vladimiradmaev/macrofit/internal/bot/keyboards"
	"github.com/vladimiradmaev/macrofit/internal/bot/menus"
	"github.com/vladimiradmaev/macrofit/internal/bot/state"
	"github.com/vladimiradmaev/macrofit/internal/domain"
	apperrors "github.com/vladimiradmaev/macrofit/internal/errors"
	"github.com/vladimiradmaev/macrofit/internal/logger"
)

// actions are the screens reachable from both commands and buttons
type actions struct {
	api          Sender
	deps         Dependencies
	stateManager state.StateManager
}

func (a *actions) sendMainMenu(userID, chatID int64) error {
	a.stateManager.SetUserState(userID, state.None)
	return menus.SendMainMenu(a.api, chatID)
}

func (a *actions) startWizard(userID, chatID int64) error {
	profile, _ := a.stateManager.GetProfile(userID)
	a.stateManager.SetUserState(userID, state.WaitingForAge)

	return menus.SendText(a.api, chatID,
		fmt.Sprintf("🧮 Let's work out your targets.\n\nEnter your age in years (current: %d):", profile.Age),
		ptr(keyboards.CancelMenu()))
}

func (a *actions) sendProfile(userID, chatID int64) error {
	profile, _ := a.stateManager.GetProfile(userID)
	return menus.SendMarkdown(a.api, chatID, menus.FormatProfile(profile), keyboards.MainMenu())
}

func (a *actions) sendResults(ctx context.Context, userID, chatID int64) error {
	profile, _ := a.stateManager.GetProfile(userID)

	if err := a.deps.Nutrition.ValidateProfile(profile); err != nil {
		logger.WithContext(ctx).Info("Refusing to calculate for invalid profile", "user_id", userID, "error", err)
		return menus.SendText(a.api, chatID,
			"⚠️ Your profile has values outside plausible ranges:\n"+describeProblems(err)+"\n\nTap Calculate to enter them again.",
			ptr(keyboards.MainMenu()))
	}

	targets := a.deps.Nutrition.Calculate(ctx, profile)
	options := a.deps.Nutrition.GoalComparison(ctx, profile)
	return menus.SendMarkdown(a.api, chatID, menus.FormatResults(profile, targets, options), keyboards.ResultsMenu())
}

func (a *actions) sendMealTypes(userID, chatID int64) error {
	a.stateManager.SetUserState(userID, state.None)
	return menus.SendText(a.api, chatID, "🍽️ Which meals would you like to see?", ptr(keyboards.MealTypeMenu()))
}

func (a *actions) sendMealList(ctx context.Context, userID, chatID int64, query domain.MealQuery) error {
	profile, _ := a.stateManager.GetProfile(userID)
	meals := a.deps.Nutrition.BrowseMeals(ctx, profile, query)
	targets := a.deps.Nutrition.Calculate(ctx, profile)

	title := fmt.Sprintf("🍽️ *%s meals*", query.Type.Label())
	if query.Search != "" {
		title = fmt.Sprintf("🔍 *Meals matching \"%s\"*", menus.EscapeMarkdown(query.Search))
	}

	fit := func(m domain.Meal) domain.MealFit { return a.deps.Nutrition.MealFit(ctx, m, profile) }
	text := menus.FormatMealList(title, meals, targets.TargetCalories, fit)
	return menus.SendMarkdown(a.api, chatID, text, keyboards.MealListMenu(meals))
}

func (a *actions) sendMeal(ctx context.Context, userID, chatID int64, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return menus.SendText(a.api, chatID, "That meal link is no longer valid.", ptr(keyboards.MealTypeMenu()))
	}

	meal, err := a.deps.Nutrition.Meal(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMealNotFound) {
			return menus.SendText(a.api, chatID, "That meal is no longer in the catalog.", ptr(keyboards.MealTypeMenu()))
		}
		return err
	}

	profile, _ := a.stateManager.GetProfile(userID)
	fit := a.deps.Nutrition.MealFit(ctx, meal, profile)
	return menus.SendMarkdown(a.api, chatID, menus.FormatMeal(meal, fit), keyboards.MealDetailMenu(meal.Type))
}

func (a *actions) sendPlan(ctx context.Context, userID, chatID int64) error {
	profile, _ := a.stateManager.GetProfile(userID)
	plan := a.deps.Nutrition.DailyPlan(ctx, profile)
	targets := a.deps.Nutrition.Calculate(ctx, profile)
	return menus.SendMarkdown(a.api, chatID, menus.FormatDailyPlan(plan, targets), keyboards.ResultsMenu())
}

func (a *actions) sendPreferences(userID, chatID int64, messageID int) error {
	profile, _ := a.stateManager.GetProfile(userID)
	a.stateManager.SetUserState(userID, state.EditingPreference)
	return menus.SendPreferences(a.api, chatID, messageID, profile)
}

func (a *actions) reset(userID, chatID int64) error {
	a.stateManager.ClearProfile(userID)
	a.stateManager.ClearUserState(userID)
	if err := menus.SendText(a.api, chatID, "♻️ Your profile was reset to the defaults.", nil); err != nil {
		return err
	}
	return menus.SendMainMenu(a.api, chatID)
}

// describeProblems lists the per-field reasons of an invalid profile error
func describeProblems(err error) string {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || len(appErr.Context) == 0 {
		return "• " + err.Error()
	}

	var out string
	for _, field := range []string{"age", "weight", "height", "activity_level", "gender", "goal", "dietary_restrictions"} {
		if reason, ok := appErr.Context[field]; ok {
			out += fmt.Sprintf("• %s %v\n", field, reason)
		}
	}
	return out[:max(len(out)-1, 0)]
}

func ptr(k tgbotapi.InlineKeyboardMarkup) *tgbotapi.InlineKeyboardMarkup {
	return &k
}
