package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultSpoonacularURL = "https://api.spoonacular.com"

type Config struct {
	TelegramBotToken  string
	SpoonacularAPIKey string
	SpoonacularURL    string
	DatabasePath      string
}

// Load читает конфигурацию из .env (если есть) и переменных окружения.
func Load() (*Config, error) {
	// .env необязателен — в проде переменные приходят из окружения
	_ = godotenv.Load()

	cfg := &Config{
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		SpoonacularAPIKey: os.Getenv("SPOONACULAR_API_KEY"),
		SpoonacularURL:    os.Getenv("SPOONACULAR_BASE_URL"),
		DatabasePath:      os.Getenv("DATABASE_PATH"),
	}

	if cfg.TelegramBotToken == "" {
		return nil, fmt.Errorf("не задан TELEGRAM_BOT_TOKEN")
	}
	if cfg.SpoonacularAPIKey == "" {
		return nil, fmt.Errorf("не задан SPOONACULAR_API_KEY")
	}
	if cfg.SpoonacularURL == "" {
		cfg.SpoonacularURL = defaultSpoonacularURL
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "data/bot.db"
	}

	return cfg, nil
}
