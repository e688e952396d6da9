package handlers

import (
	"github.com/vladimiradmaev/macrofit/internal/bot/menus"
	"github.com/vladimiradmaev/macrofit/internal/domain"
)

// Sender is satisfied by *tgbotapi.BotAPI
type Sender = menus.Sender

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	Nutrition domain.NutritionService
}
