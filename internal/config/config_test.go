package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("SPOONACULAR_API_KEY", "key")
	t.Setenv("SPOONACULAR_BASE_URL", "")
	t.Setenv("DATABASE_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.TelegramBotToken)
	assert.Equal(t, "key", cfg.SpoonacularAPIKey)
	// Значения по умолчанию
	assert.Equal(t, "https://api.spoonacular.com", cfg.SpoonacularURL)
	assert.Equal(t, "data/bot.db", cfg.DatabasePath)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("SPOONACULAR_API_KEY", "key")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("SPOONACULAR_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
