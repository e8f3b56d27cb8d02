package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/medicsera/Chat-BOT-cook/internal/render"
	"github.com/medicsera/Chat-BOT-cook/pkg/locales"
	"github.com/medicsera/Chat-BOT-cook/pkg/markdown"
)

// callbackAction — действие inline-кнопки.
type callbackAction string

const (
	actionDetails   callbackAction = "details"
	actionNutrition callbackAction = "nutrition"
	actionCuisine   callbackAction = "cuisine"
)

// callbackRef — разобранные данные кнопки: действие и полезная нагрузка
// (ID рецепта либо тег кухни).
type callbackRef struct {
	action  callbackAction
	payload string
}

// parseCallbackRef разбирает строку вида "<действие>_<нагрузка>".
// Нагрузка — всё после первого разделителя, повторно не разбивается.
func parseCallbackRef(data string) (callbackRef, error) {
	action, payload, ok := strings.Cut(data, "_")
	if !ok {
		return callbackRef{}, fmt.Errorf("нет разделителя в callback-данных %q", data)
	}

	switch callbackAction(action) {
	case actionDetails, actionNutrition, actionCuisine:
		return callbackRef{action: callbackAction(action), payload: payload}, nil
	}
	return callbackRef{}, fmt.Errorf("неизвестное действие в callback-данных %q", data)
}

// handleCallback обрабатывает нажатия на inline-кнопки. Сначала
// подтверждает callback (убирает "часики"); устаревший callback — не
// ошибка, остальные сбои подтверждения прерывают обработку.
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		log.Printf("Callback %q без сообщения, пропускаю", cb.Data)
		return
	}

	userID := cb.From.ID
	chatID := cb.Message.Chat.ID

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		if isStaleCallback(err) {
			log.Printf("Устаревший callback %q: %v", cb.Data, err)
		} else {
			log.Printf("Ошибка подтверждения callback %q: %v", cb.Data, err)
		}
		return
	}

	b.logUser(userID, displayName(cb.From), "Callback: "+cb.Data)

	ref, err := parseCallbackRef(cb.Data)
	if err != nil {
		log.Printf("Не удалось разобрать callback: %v", err)
		return
	}

	switch ref.action {
	case actionDetails:
		b.handleDetailsCallback(ctx, chatID, userID, ref.payload)
	case actionNutrition:
		b.handleNutritionCallback(ctx, chatID, userID, ref.payload)
	case actionCuisine:
		b.handleCuisineCallback(ctx, chatID, userID, ref.payload)
	}
}

// isStaleCallback распознаёт ответ Telegram про устаревший callback.
func isStaleCallback(err error) bool {
	e := strings.ToLower(err.Error())
	return strings.Contains(e, "query is too old") || strings.Contains(e, "query id is invalid")
}

// handleDetailsCallback — кнопка "Подробнее".
func (b *Bot) handleDetailsCallback(ctx context.Context, chatID, userID int64, payload string) {
	l := locales.Get()

	recipeID, err := strconv.Atoi(payload)
	if err != nil {
		log.Printf("Некорректный ID рецепта в callback: %q", payload)
		return
	}

	b.sendText(chatID, userID, l.Recipe.DetailsLoading, "", nil)

	detail, err := b.recipes.Information(ctx, recipeID)
	if err != nil {
		log.Printf("Ошибка API (information, ID %d): %v", recipeID, err)
		b.sendText(chatID, userID, l.Recipe.DetailsFailed, "", nil)
		return
	}

	b.deliver(chatID, userID, render.Detail(*detail))
}

// handleNutritionCallback — кнопка "БЖУ". Клиент сам возвращает готовый
// текст и на успех, и на неудачу.
func (b *Bot) handleNutritionCallback(ctx context.Context, chatID, userID int64, payload string) {
	l := locales.Get()

	recipeID, err := strconv.Atoi(payload)
	if err != nil {
		log.Printf("Некорректный ID рецепта в callback: %q", payload)
		return
	}

	loading := markdown.Escape(fmt.Sprintf(l.Nutrition.Loading, recipeID))
	b.sendText(chatID, userID, loading, render.ParseModeMarkdownV2, nil)

	text := b.recipes.NutritionText(ctx, recipeID)
	b.sendText(chatID, userID, text, render.ParseModeMarkdownV2, nil)
}

// handleCuisineCallback — кнопка выбора кухни: случайный рецепт по тегу.
func (b *Bot) handleCuisineCallback(ctx context.Context, chatID, userID int64, tag string) {
	l := locales.Get()

	searching := markdown.Escape(fmt.Sprintf(l.Random.SearchingTags, capitalize(tag)))
	b.sendText(chatID, userID, searching, render.ParseModeMarkdownV2, nil)

	summaries, err := b.recipes.Random(ctx, tag, 1)
	if err != nil {
		log.Printf("Ошибка API (random, tags %q): %v", tag, err)
		summaries = nil
	}

	b.sendSummaries(chatID, userID, summaries)
}

// capitalize поднимает первую букву строки в верхний регистр.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
