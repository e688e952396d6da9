package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/macrofit/internal/bot/keyboards"
	"github.com/vladimiradmaev/macrofit/internal/bot/menus"
	"github.com/vladimiradmaev/macrofit/internal/bot/state"
	"github.com/vladimiradmaev/macrofit/internal/domain"
	"github.com/vladimiradmaev/macrofit/internal/logger"
)

// CallbackHandler handles callback query messages
type CallbackHandler struct {
	*actions
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api Sender, deps Dependencies, stateManager state.StateManager) *CallbackHandler {
	return &CallbackHandler{
		actions: &actions{api: api, deps: deps, stateManager: stateManager},
	}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	// Answer the callback query first
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := h.api.Request(callback); err != nil {
		logger.WithContext(ctx).Warn("Failed to answer callback query", "error", err)
	}

	if query.Message == nil {
		return nil
	}

	userID := query.From.ID
	chatID := query.Message.Chat.ID
	data := query.Data

	switch {
	case data == "main_menu":
		return h.sendMainMenu(userID, chatID)
	case data == "calculate":
		return h.startWizard(userID, chatID)
	case data == "profile":
		return h.sendProfile(userID, chatID)
	case data == "results":
		return h.sendResults(ctx, userID, chatID)
	case data == "preferences":
		return h.sendPreferences(userID, chatID, 0)
	case data == "meals":
		return h.sendMealTypes(userID, chatID)
	case data == "plan":
		return h.sendPlan(ctx, userID, chatID)
	case data == "search":
		return h.handleSearch(userID, chatID)
	case data == "reset":
		return h.reset(userID, chatID)
	case strings.HasPrefix(data, keyboards.GenderPrefix):
		return h.handleGender(userID, chatID, strings.TrimPrefix(data, keyboards.GenderPrefix))
	case strings.HasPrefix(data, keyboards.ActivityPrefix):
		return h.handleActivity(userID, chatID, strings.TrimPrefix(data, keyboards.ActivityPrefix))
	case strings.HasPrefix(data, keyboards.GoalPrefix):
		return h.handleGoal(ctx, userID, chatID, strings.TrimPrefix(data, keyboards.GoalPrefix))
	case strings.HasPrefix(data, keyboards.RestrictionPrefix):
		return h.handleRestriction(userID, chatID, query.Message.MessageID, strings.TrimPrefix(data, keyboards.RestrictionPrefix))
	case strings.HasPrefix(data, keyboards.MealTypePrefix):
		return h.handleMealType(ctx, userID, chatID, strings.TrimPrefix(data, keyboards.MealTypePrefix))
	case strings.HasPrefix(data, keyboards.MealPrefix):
		return h.sendMeal(ctx, userID, chatID, strings.TrimPrefix(data, keyboards.MealPrefix))
	default:
		return h.handleUnknownCallback(chatID)
	}
}

// handleGender stores the gender and asks for the activity level
func (h *CallbackHandler) handleGender(userID, chatID int64, value string) error {
	gender, err := domain.ParseGender(value)
	if err != nil {
		return h.handleUnknownCallback(chatID)
	}

	profile, _ := h.stateManager.GetProfile(userID)
	profile.Gender = gender
	h.stateManager.SetProfile(userID, profile)
	h.stateManager.SetUserState(userID, state.ChoosingActivity)

	return menus.SendText(h.api, chatID, activityPrompt(), ptr(keyboards.ActivityMenu()))
}

func activityPrompt() string {
	var b strings.Builder
	b.WriteString("🏃 How active are you?\n")
	for _, a := range domain.AllActivityLevels() {
		b.WriteString("\n• " + a.Label() + ": " + a.Description())
	}
	return b.String()
}

// handleActivity stores the activity level and asks for the goal
func (h *CallbackHandler) handleActivity(userID, chatID int64, value string) error {
	activity, err := domain.ParseActivityLevel(value)
	if err != nil {
		return h.handleUnknownCallback(chatID)
	}

	profile, _ := h.stateManager.GetProfile(userID)
	profile.ActivityLevel = activity
	h.stateManager.SetProfile(userID, profile)
	h.stateManager.SetUserState(userID, state.ChoosingGoal)

	return menus.SendText(h.api, chatID, "🎯 What is your goal?", ptr(keyboards.GoalMenu()))
}

// handleGoal stores the goal, ends the wizard and shows the targets
func (h *CallbackHandler) handleGoal(ctx context.Context, userID, chatID int64, value string) error {
	goal, err := domain.ParseGoal(value)
	if err != nil {
		return h.handleUnknownCallback(chatID)
	}

	profile, _ := h.stateManager.GetProfile(userID)
	h.stateManager.SetProfile(userID, profile.WithGoal(goal))
	h.stateManager.SetUserState(userID, state.None)

	return h.sendResults(ctx, userID, chatID)
}

// handleRestriction toggles one dietary restriction and redraws the toggles
func (h *CallbackHandler) handleRestriction(userID, chatID int64, messageID int, value string) error {
	restriction, err := domain.ParseDietaryRestriction(value)
	if err != nil {
		return h.handleUnknownCallback(chatID)
	}

	profile, _ := h.stateManager.GetProfile(userID)
	h.stateManager.SetProfile(userID, profile.ToggleRestriction(restriction))
	return h.sendPreferences(userID, chatID, messageID)
}

// handleMealType lists the ranked meals of one type
func (h *CallbackHandler) handleMealType(ctx context.Context, userID, chatID int64, value string) error {
	mealType, err := domain.ParseMealType(value)
	if err != nil {
		return h.handleUnknownCallback(chatID)
	}
	return h.sendMealList(ctx, userID, chatID, domain.MealQuery{Type: mealType})
}

// handleSearch waits for a name fragment
func (h *CallbackHandler) handleSearch(userID, chatID int64) error {
	h.stateManager.SetUserState(userID, state.WaitingForSearch)
	return menus.SendText(h.api, chatID, "🔍 Type part of a meal name:", ptr(keyboards.CancelMenu()))
}

// handleUnknownCallback handles unknown callbacks
func (h *CallbackHandler) handleUnknownCallback(chatID int64) error {
	return menus.SendText(h.api, chatID, "Unknown action", ptr(keyboards.MainMenu()))
}
