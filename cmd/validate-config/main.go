package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vladimiradmaev/macrofit/internal/config"
)

func main() {
	fmt.Println("🔍 Checking configuration...")

	// Load .env if present
	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Configuration is invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Configuration is valid!")
	fmt.Printf("📋 Details:\n")
	fmt.Printf("  - Telegram Token: %s\n", maskToken(cfg.TelegramToken))
	fmt.Printf("  - HTTP Address: %s\n", cfg.HTTP.Addr())
	fmt.Printf("  - Allowed Origins: %s\n", strings.Join(cfg.HTTP.AllowedOrigins, ", "))
	fmt.Printf("  - Rate Limit: %g req/s (burst %d)\n", cfg.HTTP.RateLimit, cfg.HTTP.RateBurst)
	fmt.Printf("  - Gin Mode: %s\n", cfg.HTTP.GinMode)
	fmt.Printf("  - State Backend: %s\n", cfg.StateBackend)
	if cfg.StateBackend == config.StateBackendRedis {
		fmt.Printf("  - Redis: %s:%s db=%d\n", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
		fmt.Printf("  - Redis Password: %s\n", maskToken(cfg.Redis.Password))
	}
	fmt.Printf("  - Session TTL: %s\n", cfg.Redis.SessionTTL)
	fmt.Printf("  - Log Level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log Output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log Format: %s\n", cfg.Logger.Format)
}

func maskToken(token string) string {
	if token == "" {
		return "<not set>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
