package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vladimiradmaev/macrofit/internal/domain"
	apperrors "github.com/vladimiradmaev/macrofit/internal/errors"
	"github.com/vladimiradmaev/macrofit/internal/logger"
	"github.com/vladimiradmaev/macrofit/internal/recommend"
)

// Handler serves the JSON API
type Handler struct {
	svc domain.NutritionService
}

func NewHandler(svc domain.NutritionService) *Handler {
	return &Handler{svc: svc}
}

type errorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// respondError aborts with the status and body derived from err
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternalError(err)
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		apperrors.NewHandler(logger.GetLogger()).Handle(c.Request.Context(), appErr)
		c.AbortWithStatusJSON(status, errorResponse{Error: errorBody{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.WithContext(c.Request.Context()).Debug("Request rejected", appErr.LogFields()...)
	c.AbortWithStatusJSON(status, errorResponse{Error: errorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Context,
	}})
}

// bindProfile reads a profile body; omitted fields keep their defaults
func bindProfile(c *gin.Context) (domain.UserProfile, error) {
	profile := domain.DefaultProfile()
	if err := c.ShouldBindJSON(&profile); err != nil {
		return profile, apperrors.Wrap(err, apperrors.ErrorTypeValidation, "INVALID_INPUT", "Request body is not a valid profile")
	}
	return profile, nil
}

func (h *Handler) validProfile(c *gin.Context) (domain.UserProfile, bool) {
	profile, err := bindProfile(c)
	if err == nil {
		err = h.svc.ValidateProfile(profile)
	}
	if err != nil {
		respondError(c, err)
		return profile, false
	}
	return profile, true
}

func nonNil(meals []domain.Meal) []domain.Meal {
	if meals == nil {
		return []domain.Meal{}
	}
	return meals
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type option struct {
	Value       string  `json:"value"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	Multiplier  float64 `json:"multiplier,omitempty"`
}

type goalOption struct {
	Value             domain.Goal `json:"value"`
	Label             string      `json:"label"`
	CalorieAdjustment int         `json:"calorie_adjustment"`
	ProteinPerKg      float64     `json:"protein_per_kg"`
	FatsPerKg         float64     `json:"fats_per_kg"`
}

// Reference lists every enumeration the other endpoints accept
func (h *Handler) Reference(c *gin.Context) {
	var activity, genders, restrictions, mealTypes []option
	for _, a := range domain.AllActivityLevels() {
		activity = append(activity, option{Value: string(a), Label: a.Label(), Description: a.Description(), Multiplier: a.Multiplier()})
	}
	for _, g := range domain.AllGenders() {
		genders = append(genders, option{Value: string(g), Label: g.Label()})
	}
	for _, r := range domain.AllDietaryRestrictions() {
		restrictions = append(restrictions, option{Value: string(r), Label: r.Label()})
	}
	for _, t := range domain.AllMealTypes() {
		mealTypes = append(mealTypes, option{Value: string(t), Label: t.Label()})
	}

	var goals []goalOption
	for _, g := range domain.AllGoals() {
		rule := g.Rule()
		goals = append(goals, goalOption{
			Value:             g,
			Label:             rule.Label,
			CalorieAdjustment: rule.CalorieAdjustment,
			ProteinPerKg:      rule.ProteinPerKg,
			FatsPerKg:         rule.FatsPerKg,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"activity_levels":      activity,
		"genders":              genders,
		"goals":                goals,
		"dietary_restrictions": restrictions,
		"meal_types":           mealTypes,
		"default_profile":      domain.DefaultProfile(),
	})
}

// Calculate returns the targets for the posted profile and every goal
func (h *Handler) Calculate(c *gin.Context) {
	profile, ok := h.validProfile(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"targets": h.svc.Calculate(ctx, profile),
		"goals":   h.svc.GoalComparison(ctx, profile),
	})
}

// MacrosForGoal answers "what if my goal were X" without changing the profile
func (h *Handler) MacrosForGoal(c *gin.Context) {
	goal, err := domain.ParseGoal(c.Param("goal"))
	if err != nil {
		respondError(c, err)
		return
	}
	profile, ok := h.validProfile(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	c.JSON(http.StatusOK, domain.GoalOption{
		Goal:           goal,
		TargetCalories: h.svc.CaloriesForGoal(ctx, profile, goal),
		Macros:         h.svc.MacrosForGoal(ctx, profile, goal),
	})
}

// ListMeals browses the catalog in its fixed order
func (h *Handler) ListMeals(c *gin.Context) {
	restrictions, err := domain.ParseDietaryRestrictions(c.Query("restrictions"))
	if err != nil {
		respondError(c, err)
		return
	}
	mealType, err := domain.ParseMealType(c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}

	meals := h.svc.FilterCatalog(c.Request.Context(), restrictions)
	meals = recommend.FilterByType(meals, mealType)
	meals = recommend.SearchByName(meals, c.Query("q"))

	c.JSON(http.StatusOK, gin.H{"meals": nonNil(meals)})
}

func (h *Handler) GetMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("meal id must be a UUID"))
		return
	}

	meal, err := h.svc.Meal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

type rankedMeal struct {
	domain.Meal
	Fit domain.MealFit `json:"fit"`
}

// Recommendations ranks compatible meals by closeness to the per-meal target
func (h *Handler) Recommendations(c *gin.Context) {
	mealType, err := domain.ParseMealType(c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	profile, ok := h.validProfile(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	targets := h.svc.Calculate(ctx, profile)
	meals := h.svc.BrowseMeals(ctx, profile, domain.MealQuery{Type: mealType, Search: c.Query("q")})

	ranked := make([]rankedMeal, 0, len(meals))
	for _, m := range meals {
		ranked = append(ranked, rankedMeal{Meal: m, Fit: h.svc.MealFit(ctx, m, profile)})
	}

	c.JSON(http.StatusOK, gin.H{
		"target_per_meal": recommend.TargetPerMeal(targets),
		"meals":           ranked,
	})
}

// Plan builds the greedy one-of-each daily plan
func (h *Handler) Plan(c *gin.Context) {
	profile, ok := h.validProfile(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"targets": h.svc.Calculate(ctx, profile),
		"plan":    h.svc.DailyPlan(ctx, profile),
	})
}
