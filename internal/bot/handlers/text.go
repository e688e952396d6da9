package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/macrofit/internal/bot/keyboards"
	"github.com/vladimiradmaev/macrofit/internal/bot/menus"
	"github.com/vladimiradmaev/macrofit/internal/bot/state"
	"github.com/vladimiradmaev/macrofit/internal/domain"
	apperrors "github.com/vladimiradmaev/macrofit/internal/errors"
)

// TextHandler handles text messages
type TextHandler struct {
	*actions
}

// NewTextHandler creates a new text handler
func NewTextHandler(api Sender, deps Dependencies, stateManager state.StateManager) *TextHandler {
	return &TextHandler{
		actions: &actions{api: api, deps: deps, stateManager: stateManager},
	}
}

// Handle processes a text message
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message) error {
	userID := message.From.ID
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	switch h.stateManager.GetUserState(userID) {
	case state.WaitingForAge:
		return h.handleAge(userID, chatID, text)
	case state.WaitingForWeight:
		return h.handleWeight(userID, chatID, text)
	case state.WaitingForHeight:
		return h.handleHeight(userID, chatID, text)
	case state.WaitingForSearch:
		h.stateManager.SetUserState(userID, state.None)
		return h.sendMealList(ctx, userID, chatID, domain.MealQuery{Search: text})
	default:
		return h.handleDefaultText(chatID)
	}
}

// handleAge handles age input
func (h *TextHandler) handleAge(userID, chatID int64, text string) error {
	age, err := strconv.Atoi(text)
	if err != nil {
		return h.retry(chatID, "Please enter your age as a whole number (for example: 30)")
	}

	profile, _ := h.stateManager.GetProfile(userID)
	profile.Age = age
	if reason, bad := h.fieldProblem(profile, "age"); bad {
		return h.retry(chatID, "Age "+reason)
	}

	h.stateManager.SetProfile(userID, profile)
	h.stateManager.SetUserState(userID, state.WaitingForWeight)
	return menus.SendText(h.api, chatID,
		fmt.Sprintf("⚖️ Enter your weight in kg (current: %g):", profile.Weight),
		ptr(keyboards.CancelMenu()))
}

// handleWeight handles weight input
func (h *TextHandler) handleWeight(userID, chatID int64, text string) error {
	weight, err := parseDecimal(text)
	if err != nil {
		return h.retry(chatID, "Please enter your weight as a number (for example: 72.5)")
	}

	profile, _ := h.stateManager.GetProfile(userID)
	profile.Weight = weight
	if reason, bad := h.fieldProblem(profile, "weight"); bad {
		return h.retry(chatID, "Weight "+reason)
	}

	h.stateManager.SetProfile(userID, profile)
	h.stateManager.SetUserState(userID, state.WaitingForHeight)
	return menus.SendText(h.api, chatID,
		fmt.Sprintf("📏 Enter your height in cm (current: %g):", profile.Height),
		ptr(keyboards.CancelMenu()))
}

// handleHeight handles height input and moves on to the gender buttons
func (h *TextHandler) handleHeight(userID, chatID int64, text string) error {
	height, err := parseDecimal(text)
	if err != nil {
		return h.retry(chatID, "Please enter your height as a number (for example: 178)")
	}

	profile, _ := h.stateManager.GetProfile(userID)
	profile.Height = height
	if reason, bad := h.fieldProblem(profile, "height"); bad {
		return h.retry(chatID, "Height "+reason)
	}

	h.stateManager.SetProfile(userID, profile)
	h.stateManager.SetUserState(userID, state.ChoosingGender)
	return menus.SendText(h.api, chatID, "🧬 Select your gender:", ptr(keyboards.GenderMenu()))
}

// fieldProblem reports the validation reason for a single profile field
func (h *TextHandler) fieldProblem(profile domain.UserProfile, field string) (string, bool) {
	err := h.deps.Nutrition.ValidateProfile(profile)
	if err == nil {
		return "", false
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return err.Error(), true
	}
	reason, ok := appErr.Context[field]
	if !ok {
		return "", false
	}
	return fmt.Sprint(reason), true
}

func (h *TextHandler) retry(chatID int64, text string) error {
	return menus.SendText(h.api, chatID, "❌ "+text, ptr(keyboards.CancelMenu()))
}

// parseDecimal accepts both "72.5" and "72,5"
func parseDecimal(text string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
}

// handleDefaultText handles text when no specific state is set
func (h *TextHandler) handleDefaultText(chatID int64) error {
	return menus.SendText(h.api, chatID, "Please use the menu to choose an action.", ptr(keyboards.MainMenu()))
}
