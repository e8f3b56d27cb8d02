// Package bot содержит Telegram-бота: маршрутизацию входящих событий,
// пошаговый диалог поиска рецептов и доставку ответов пользователю.
package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/medicsera/Chat-BOT-cook/internal/spoonacular"
	"github.com/medicsera/Chat-BOT-cook/internal/userlog"
	"github.com/medicsera/Chat-BOT-cook/pkg/locales"
	"github.com/medicsera/Chat-BOT-cook/pkg/models"
)

// telegramAPI — часть Telegram API, которой пользуются обработчики.
// Выделена в интерфейс, чтобы тесты подставляли фальшивый транспорт.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// updateSource отдаёт канал обновлений long polling.
type updateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// RecipeService — операции клиента рецептов, нужные боту.
type RecipeService interface {
	SearchComplex(ctx context.Context, p spoonacular.SearchParams) ([]models.RecipeSummary, error)
	Random(ctx context.Context, tags string, number int) ([]models.RecipeSummary, error)
	Information(ctx context.Context, recipeID int) (*models.RecipeDetail, error)
	NutritionText(ctx context.Context, recipeID int) string
}

// InteractionLog — журнал переписки с пользователем.
type InteractionLog interface {
	Append(userID int64, sender, text string) error
}

// Bot представляет Telegram бота
type Bot struct {
	api      telegramAPI
	updates  updateSource
	recipes  RecipeService
	logbook  InteractionLog
	sessions *sessionStore
}

// New создает нового бота
func New(token string, recipes RecipeService, logbook InteractionLog) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	log.Printf("Авторизован как @%s", api.Self.UserName)

	return &Bot{
		api:      api,
		updates:  api,
		recipes:  recipes,
		logbook:  logbook,
		sessions: newSessionStore(),
	}, nil
}

// Start запускает обработку обновлений
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.updates.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate обрабатывает входящее обновление. Паника в обработчике не
// роняет процесс: она логируется, а пользователь получает одно общее
// сообщение об ошибке, если известен чат.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Паника при обработке обновления: %v", r)
			if chatID := chatIDOf(update); chatID != 0 {
				msg := tgbotapi.NewMessage(chatID, locales.Get().Errors.Unexpected)
				if _, err := b.api.Send(msg); err != nil {
					log.Printf("Не удалось отправить сообщение об ошибке в чат %d: %v", chatID, err)
				}
			}
		}
	}()

	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message != nil {
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage маршрутизирует команды, кнопки главного меню и свободный
// текст. Свободный текст при активном пошаговом поиске уходит в FSM,
// вне диалога и мимо известных кнопок — только в лог, без ответа.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	b.logUser(userID, displayName(msg.From), msg.Text)

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.handleStart(msg)
		case "help":
			b.handleHelp(msg)
		case "menu":
			b.showMainMenu(msg.Chat.ID, userID, locales.Get().MainMenu.Title)
		case "randomrecipe":
			b.handleRandom(ctx, msg, msg.CommandArguments())
		case "cuisines":
			b.handleCuisines(msg)
		case "findrecipe":
			b.startSearch(msg)
		case "cancel":
			b.cancelSearch(msg)
		default:
			log.Printf("Неизвестная команда от %d: %q", userID, msg.Command())
		}
		return
	}

	if b.sessions.state(userID) != models.StateIdle {
		b.advanceSearch(ctx, msg)
		return
	}

	l := locales.Get()
	switch msg.Text {
	case l.MainMenu.Buttons.Find:
		b.startSearch(msg)
	case l.MainMenu.Buttons.Random:
		b.handleRandom(ctx, msg, "")
	case l.MainMenu.Buttons.Cuisines:
		b.handleCuisines(msg)
	case l.MainMenu.Buttons.Help:
		b.handleHelp(msg)
	default:
		log.Printf("Необработанный текст от %d: %q", userID, msg.Text)
	}
}

// chatIDOf достаёт ID чата из обновления; 0 — чат неизвестен.
func chatIDOf(update tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}

// displayName возвращает имя отправителя для журнала переписки.
func displayName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return u.UserName
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	return fmt.Sprintf("User_%d", u.ID)
}

// logUser записывает входящее сообщение в журнал переписки.
func (b *Bot) logUser(userID int64, name, text string) {
	if err := b.logbook.Append(userID, name, text); err != nil {
		log.Printf("Ошибка записи журнала (пользователь %d): %v", userID, err)
	}
}

// logBot записывает исходящее сообщение в журнал переписки.
func (b *Bot) logBot(userID int64, text string) {
	if err := b.logbook.Append(userID, userlog.SenderBot, text); err != nil {
		log.Printf("Ошибка записи журнала (пользователь %d): %v", userID, err)
	}
}
