package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/vladimiradmaev/macrofit/internal/config"
	"github.com/vladimiradmaev/macrofit/internal/domain"
)

// SetupRouter wires the JSON API over the nutrition service
func SetupRouter(svc domain.NutritionService, cfg config.HTTPConfig) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(), CORS(cfg.AllowedOrigins))
	if cfg.RateLimit > 0 {
		r.Use(RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))))
	}

	h := NewHandler(svc)

	r.GET("/healthz", h.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/reference", h.Reference)
		v1.POST("/calculate", h.Calculate)
		v1.POST("/macros/:goal", h.MacrosForGoal)
		v1.GET("/meals", h.ListMeals)
		v1.GET("/meals/:id", h.GetMeal)
		v1.POST("/recommendations", h.Recommendations)
		v1.POST("/plan", h.Plan)
	}

	return r
}
