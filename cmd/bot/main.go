package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/medicsera/Chat-BOT-cook/internal/bot"
	"github.com/medicsera/Chat-BOT-cook/internal/config"
	"github.com/medicsera/Chat-BOT-cook/internal/spoonacular"
	"github.com/medicsera/Chat-BOT-cook/internal/userlog"
)

func main() {
	// Загрузка конфигурации из переменных окружения
	log.Println("Загрузка конфигурации...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	// Журнал переписки
	log.Println("Открытие журнала переписки...")
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		log.Fatalf("Не удалось создать каталог базы данных: %v", err)
	}
	logbook, err := userlog.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Не удалось открыть журнал переписки: %v", err)
	}
	defer logbook.Close()

	// Клиент Spoonacular
	recipes := spoonacular.NewClient(cfg.SpoonacularAPIKey, cfg.SpoonacularURL)

	// Создание и запуск бота
	b, err := bot.New(cfg.TelegramBotToken, recipes, logbook)
	if err != nil {
		log.Fatalf("Не удалось создать бота: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Бот запущен и готов к работе!")
	if err := b.Start(ctx); err != nil {
		log.Fatalf("Ошибка при работе бота: %v", err)
	}
	log.Println("Бот остановлен")
}
