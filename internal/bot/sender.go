package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/medicsera/Chat-BOT-cook/internal/render"
	"github.com/medicsera/Chat-BOT-cook/pkg/locales"
	"github.com/medicsera/Chat-BOT-cook/pkg/models"
)

// photoLogMark помечает в журнале сообщения, которые отправлялись с картинкой.
const photoLogMark = "[PHOTO] "

// sendText отправляет текстовое сообщение и записывает его в журнал.
// markup — клавиатура любого типа tgbotapi либо nil.
func (b *Bot) sendText(chatID, userID int64, text, parseMode string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки сообщения в чат %d: %v", chatID, err)
		return
	}
	b.logBot(userID, text)
}

// deliver доставляет срендеренное сообщение. Если есть картинка, сначала
// пробует фото с подписью; при неудаче ровно один раз откатывается на
// текст с теми же кнопками. Вторая неудача логируется и проглатывается.
func (b *Bot) deliver(chatID, userID int64, m render.Message) {
	markup := inlineKeyboard(m.Buttons)
	logText := m.Text

	if m.ImageURL != "" {
		logText = photoLogMark + m.Text

		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(m.ImageURL))
		photo.Caption = m.Text
		photo.ParseMode = m.ParseMode
		if markup != nil {
			photo.ReplyMarkup = markup
		}

		_, err := b.api.Send(photo)
		if err == nil {
			b.logBot(userID, logText)
			return
		}
		log.Printf("Ошибка отправки фото в чат %d: %v, откат на текст", chatID, err)
	}

	msg := tgbotapi.NewMessage(chatID, m.Text)
	msg.ParseMode = m.ParseMode
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки сообщения в чат %d: %v", chatID, err)
		return
	}
	b.logBot(userID, logText)
}

// sendSummaries отправляет карточки найденных рецептов; при пустом
// результате — ровно одно сообщение "ничего не найдено".
func (b *Bot) sendSummaries(chatID, userID int64, summaries []models.RecipeSummary) {
	if len(summaries) == 0 {
		b.sendText(chatID, userID, locales.Get().Search.NothingFound, "", nil)
		return
	}

	for _, s := range summaries {
		b.deliver(chatID, userID, render.Summary(s))
	}
}

// inlineKeyboard собирает одну строку inline-кнопок из кнопок рендерера.
func inlineKeyboard(buttons []render.Button) interface{} {
	if len(buttons) == 0 {
		return nil
	}

	row := make([]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		if btn.URL != "" {
			row = append(row, tgbotapi.NewInlineKeyboardButtonURL(btn.Label, btn.URL))
		} else {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.CallbackData))
		}
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

// mainMenuKeyboard — постоянная клавиатура главного меню.
func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	l := locales.Get()
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(l.MainMenu.Buttons.Find),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(l.MainMenu.Buttons.Random),
			tgbotapi.NewKeyboardButton(l.MainMenu.Buttons.Cuisines),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(l.MainMenu.Buttons.Help),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// skipKeyboard — одноразовая клавиатура с кнопкой пропуска критерия.
func skipKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(locales.Get().Search.SkipKeyword),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}
