package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/macrofit/internal/bot/keyboards"
	"github.com/vladimiradmaev/macrofit/internal/bot/menus"
	"github.com/vladimiradmaev/macrofit/internal/bot/state"
	"github.com/vladimiradmaev/macrofit/internal/domain"
	"github.com/vladimiradmaev/macrofit/internal/logger"
)

const helpText = `Available commands:
/start - Show the main menu
/calculate - Enter your profile and get daily targets
/profile - Show your current profile
/meals - Browse meals that fit your preferences
/plan - Build a one-day meal plan
/reset - Forget your profile
/help - Show this message

How targets are worked out:
1. BMR from the Mifflin-St Jeor equation
2. TDEE = BMR × activity multiplier
3. Your goal adds or removes calories
4. Protein and fats are set per kg of body weight, carbs fill the rest`

// CommandHandler handles bot commands
type CommandHandler struct {
	*actions
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api Sender, deps Dependencies, stateManager state.StateManager) *CommandHandler {
	return &CommandHandler{
		actions: &actions{api: api, deps: deps, stateManager: stateManager},
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message) error {
	userID := message.From.ID
	chatID := message.Chat.ID
	logger.WithContext(ctx).Info("Handling command", "command", message.Command(), "user_id", userID)

	switch message.Command() {
	case "start":
		return h.sendMainMenu(userID, chatID)
	case "help":
		return menus.SendText(h.api, chatID, helpText, ptr(keyboards.MainMenu()))
	case "calculate":
		return h.startWizard(userID, chatID)
	case "profile":
		return h.sendProfile(userID, chatID)
	case "meals":
		if args := message.CommandArguments(); args != "" {
			return h.sendMealList(ctx, userID, chatID, domain.MealQuery{Search: args})
		}
		return h.sendMealTypes(userID, chatID)
	case "plan":
		return h.sendPlan(ctx, userID, chatID)
	case "reset":
		return h.reset(userID, chatID)
	default:
		return h.handleUnknownCommand(chatID)
	}
}

// handleUnknownCommand handles unknown commands
func (h *CommandHandler) handleUnknownCommand(chatID int64) error {
	return menus.SendText(h.api, chatID, "Unknown command. Use /help to see what I can do.", nil)
}
