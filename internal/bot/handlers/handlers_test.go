package handlers

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimiradmaev/macrofit/internal/bot/state"
	"github.com/vladimiradmaev/macrofit/internal/catalog"
	"github.com/vladimiradmaev/macrofit/internal/domain"
	"github.com/vladimiradmaev/macrofit/internal/services"
)

const testUser int64 = 42

type fakeSender struct {
	sent      []tgbotapi.Chattable
	requested []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requested = append(f.requested, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent)
	switch c := f.sent[len(f.sent)-1].(type) {
	case tgbotapi.MessageConfig:
		return c.Text
	case tgbotapi.EditMessageTextConfig:
		return c.Text
	default:
		t.Fatalf("unexpected chattable %T", c)
		return ""
	}
}

type harness struct {
	sender  *fakeSender
	states  *state.Manager
	handler *UpdateHandler
	nextID  int
}

func newHarness() *harness {
	sender := &fakeSender{}
	states := state.NewManager()
	deps := Dependencies{Nutrition: services.NewNutritionService(catalog.Default())}
	return &harness{
		sender:  sender,
		states:  states,
		handler: NewUpdateHandler(sender, deps, states),
	}
}

func (h *harness) text(t *testing.T, text string) {
	t.Helper()
	h.nextID++
	msg := &tgbotapi.Message{
		MessageID: h.nextID,
		From:      &tgbotapi.User{ID: testUser},
		Chat:      &tgbotapi.Chat{ID: testUser},
		Text:      text,
	}
	if len(text) > 0 && text[0] == '/' {
		length := len(text)
		for i, r := range text {
			if r == ' ' {
				length = i
				break
			}
		}
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}}
	}
	require.NoError(t, h.handler.Handle(context.Background(), tgbotapi.Update{UpdateID: h.nextID, Message: msg}))
}

func (h *harness) press(t *testing.T, data string) {
	t.Helper()
	h.nextID++
	query := &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: testUser},
		Message: &tgbotapi.Message{MessageID: 7, Chat: &tgbotapi.Chat{ID: testUser}},
		Data:    data,
	}
	require.NoError(t, h.handler.Handle(context.Background(), tgbotapi.Update{UpdateID: h.nextID, CallbackQuery: query}))
}

func TestStartCommand(t *testing.T) {
	h := newHarness()
	h.states.SetUserState(testUser, state.WaitingForAge)

	h.text(t, "/start")

	assert.Contains(t, h.sender.lastText(t), "MacroFit")
	assert.Equal(t, state.None, h.states.GetUserState(testUser))
}

func TestUnknownCommand(t *testing.T) {
	h := newHarness()
	h.text(t, "/dance")
	assert.Contains(t, h.sender.lastText(t), "Unknown command")
}

func TestWizardComputesTargets(t *testing.T) {
	h := newHarness()

	h.press(t, "calculate")
	assert.Equal(t, state.WaitingForAge, h.states.GetUserState(testUser))

	h.text(t, "30")
	assert.Equal(t, state.WaitingForWeight, h.states.GetUserState(testUser))

	h.text(t, "80,5")
	assert.Equal(t, state.WaitingForHeight, h.states.GetUserState(testUser))

	h.text(t, "180")
	assert.Equal(t, state.ChoosingGender, h.states.GetUserState(testUser))

	h.press(t, "gender:male")
	assert.Equal(t, state.ChoosingActivity, h.states.GetUserState(testUser))

	h.press(t, "activity:moderately_active")
	assert.Equal(t, state.ChoosingGoal, h.states.GetUserState(testUser))

	h.press(t, "goal:cutting")
	assert.Equal(t, state.None, h.states.GetUserState(testUser))

	profile, ok := h.states.GetProfile(testUser)
	require.True(t, ok)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, 80.5, profile.Weight)
	assert.Equal(t, 180.0, profile.Height)
	assert.Equal(t, domain.Cutting, profile.Goal)

	// BMR 1785, TDEE 2766, cutting target 2266
	result := h.sender.lastText(t)
	assert.Contains(t, result, "TDEE: 2766 kcal")
	assert.Contains(t, result, "Target (Cutting): *2266 kcal*")
	assert.Contains(t, result, "Protein: 177 g")

	// every button press is acknowledged
	assert.Len(t, h.sender.requested, 4)
}

func TestWizardRejectsBadInput(t *testing.T) {
	h := newHarness()
	h.press(t, "calculate")

	h.text(t, "thirty")
	assert.Contains(t, h.sender.lastText(t), "whole number")
	assert.Equal(t, state.WaitingForAge, h.states.GetUserState(testUser))

	h.text(t, "150")
	assert.Contains(t, h.sender.lastText(t), "must be between 0 and 120")
	assert.Equal(t, state.WaitingForAge, h.states.GetUserState(testUser))

	h.text(t, "40")
	h.text(t, "15")
	assert.Contains(t, h.sender.lastText(t), "Weight must be between 20 and 300")
	assert.Equal(t, state.WaitingForWeight, h.states.GetUserState(testUser))
}

func TestRestrictionToggleEditsMessage(t *testing.T) {
	h := newHarness()

	h.press(t, "preferences")
	assert.Equal(t, state.EditingPreference, h.states.GetUserState(testUser))

	h.press(t, "restriction:vegan")
	profile, _ := h.states.GetProfile(testUser)
	assert.Equal(t, []domain.DietaryRestriction{domain.Vegan}, profile.DietaryRestrictions)

	edit, ok := h.sender.sent[len(h.sender.sent)-1].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, 7, edit.MessageID)
	assert.Contains(t, edit.Text, "Vegan")

	h.press(t, "restriction:none")
	profile, _ = h.states.GetProfile(testUser)
	assert.Equal(t, []domain.DietaryRestriction{domain.NoRestriction}, profile.DietaryRestrictions)
}

func TestMealBrowsing(t *testing.T) {
	h := newHarness()

	h.press(t, "meals:breakfast")
	list := h.sender.lastText(t)
	assert.Contains(t, list, "Breakfast meals")
	assert.Contains(t, list, "Protein Power Bowl")
	assert.NotContains(t, list, "Lean Beef Stir-Fry")

	msg, ok := h.sender.sent[len(h.sender.sent)-1].(tgbotapi.MessageConfig)
	require.True(t, ok)
	keyboard, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	assert.NotEmpty(t, keyboard.InlineKeyboard)

	h.press(t, "meal:"+catalog.MealID("Protein Power Bowl").String())
	detail := h.sender.lastText(t)
	assert.Contains(t, detail, "Protein Power Bowl")
	assert.Contains(t, detail, "Ingredients")
	assert.Contains(t, detail, "17% of your daily calories")

	h.press(t, "meal:not-a-uuid")
	assert.Contains(t, h.sender.lastText(t), "no longer valid")
}

func TestMealBrowsingRespectsRestrictions(t *testing.T) {
	h := newHarness()
	h.states.SetProfile(testUser, domain.DefaultProfile().ToggleRestriction(domain.Vegan))

	h.press(t, "meals:all")
	list := h.sender.lastText(t)
	assert.Contains(t, list, "Chickpea Buddha Bowl")
	assert.NotContains(t, list, "Grilled Chicken Caesar Salad")
}

func TestSearchFlow(t *testing.T) {
	h := newHarness()

	h.press(t, "search")
	assert.Equal(t, state.WaitingForSearch, h.states.GetUserState(testUser))

	h.text(t, "salmon")
	assert.Contains(t, h.sender.lastText(t), "Baked Salmon with Quinoa")
	assert.Equal(t, state.None, h.states.GetUserState(testUser))

	h.text(t, "/meals tofu")
	assert.Contains(t, h.sender.lastText(t), "Tofu Scramble")
}

func TestPlanCommand(t *testing.T) {
	h := newHarness()

	h.text(t, "/plan")

	plan := h.sender.lastText(t)
	assert.Contains(t, plan, "Daily plan")
	assert.Contains(t, plan, "Protein Power Bowl")
	assert.Contains(t, plan, "Skipped: Snack")
}

func TestResetForgetsProfile(t *testing.T) {
	h := newHarness()
	h.states.SetProfile(testUser, domain.DefaultProfile().WithGoal(domain.Bulking))

	h.text(t, "/reset")

	_, ok := h.states.GetProfile(testUser)
	assert.False(t, ok)
	assert.Contains(t, h.sender.lastText(t), "MacroFit")
}

func TestFreeTextWithoutStatePointsToMenu(t *testing.T) {
	h := newHarness()
	h.text(t, "hello")
	assert.Contains(t, h.sender.lastText(t), "use the menu")
}

func TestUpdatesWithoutPayloadAreIgnored(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.handler.Handle(context.Background(), tgbotapi.Update{UpdateID: 1}))
	assert.Empty(t, h.sender.sent)
}
