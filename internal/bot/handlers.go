package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/medicsera/Chat-BOT-cook/internal/render"
	"github.com/medicsera/Chat-BOT-cook/pkg/locales"
	"github.com/medicsera/Chat-BOT-cook/pkg/markdown"
)

// popularCuisines — кухни для /cuisines; тег кнопки — имя в нижнем регистре.
var popularCuisines = []string{
	"Italian", "Mexican", "Chinese", "Indian", "Japanese",
	"French", "Thai", "Russian", "Greek", "Spanish",
}

// handleStart — /start: приветствие с упоминанием пользователя и главное меню.
func (b *Bot) handleStart(msg *tgbotapi.Message) {
	l := locales.Get()
	userID := msg.From.ID
	name := displayName(msg.From)

	mention := fmt.Sprintf("[%s](tg://user?id=%d)", markdown.Escape(name), userID)
	greeting := markdown.Escape(l.Greeting.Prefix) + mention + markdown.Escape(l.Greeting.Suffix)

	reply := tgbotapi.NewMessage(msg.Chat.ID, greeting)
	reply.ParseMode = render.ParseModeMarkdownV2
	if _, err := b.api.Send(reply); err != nil {
		log.Printf("Ошибка отправки приветствия в чат %d: %v", msg.Chat.ID, err)
	} else {
		b.logBot(userID, l.Greeting.Prefix+name+l.Greeting.Suffix)
	}

	b.showMainMenu(msg.Chat.ID, userID, l.MainMenu.Title)
}

// handleHelp — /help: справка в MarkdownV2 с клавиатурой главного меню.
func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	l := locales.Get()

	text := render.HelpText(l.Help.Title, l.Help.Items)
	b.sendText(msg.Chat.ID, msg.From.ID, text, render.ParseModeMarkdownV2, mainMenuKeyboard())
}

// showMainMenu отправляет сообщение с постоянной клавиатурой меню.
func (b *Bot) showMainMenu(chatID, userID int64, text string) {
	b.sendText(chatID, userID, markdown.Escape(text), render.ParseModeMarkdownV2, mainMenuKeyboard())
}

// handleRandom — /randomrecipe [теги]: один случайный рецепт, опционально
// с тегами кухни из аргументов команды.
func (b *Bot) handleRandom(ctx context.Context, msg *tgbotapi.Message, args string) {
	l := locales.Get()
	userID := msg.From.ID
	chatID := msg.Chat.ID

	tags := strings.TrimSpace(args)
	searching := l.Random.Searching
	if tags != "" {
		searching = fmt.Sprintf(l.Random.SearchingTags, tags)
	}
	b.sendText(chatID, userID, markdown.Escape(searching), render.ParseModeMarkdownV2, nil)

	summaries, err := b.recipes.Random(ctx, tags, 1)
	if err != nil {
		log.Printf("Ошибка API (random, tags %q): %v", tags, err)
		summaries = nil
	}

	b.sendSummaries(chatID, userID, summaries)
}

// handleCuisines — /cuisines: inline-клавиатура популярных кухонь,
// по две кнопки в ряд.
func (b *Bot) handleCuisines(msg *tgbotapi.Message) {
	l := locales.Get()

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, cuisine := range popularCuisines {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			cuisine, "cuisine_"+strings.ToLower(cuisine)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	b.sendText(msg.Chat.ID, msg.From.ID, l.Cuisines.Choose, "", tgbotapi.NewInlineKeyboardMarkup(rows...))
}
