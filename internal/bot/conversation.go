package bot

import (
	"context"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/medicsera/Chat-BOT-cook/internal/spoonacular"
	"github.com/medicsera/Chat-BOT-cook/pkg/locales"
	"github.com/medicsera/Chat-BOT-cook/pkg/models"
)

// session — диалог пошагового поиска одного пользователя.
type session struct {
	state    models.ConversationState
	criteria models.SearchCriteria
}

// sessionStore хранит диалоги по ID пользователя. Не больше одного
// диалога на пользователя; доступ по ключу сериализован мьютексом.
type sessionStore struct {
	mu sync.Mutex
	m  map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[int64]*session)}
}

// state возвращает текущее состояние пользователя.
func (s *sessionStore) state(userID int64) models.ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.m[userID]; ok {
		return sess.state
	}
	return models.StateIdle
}

// begin создаёт диалог с чистыми критериями. Повторный вход во время
// незавершённого поиска молча сбрасывает накопленное и начинает заново —
// это осознанное поведение, а не недосмотр.
func (s *sessionStore) begin(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = &session{state: models.StateAwaitingIngredients}
}

// reset завершает диалог и отбрасывает критерии.
func (s *sessionStore) reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
}

// advance применяет шаг fn к диалогу пользователя и возвращает копию
// диалога после шага. Второй результат false — диалога нет.
func (s *sessionStore) advance(userID int64, fn func(*session)) (session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[userID]
	if !ok {
		return session{}, false
	}
	fn(sess)
	return *sess, true
}

// startSearch — вход в пошаговый поиск (/findrecipe или кнопка меню).
func (b *Bot) startSearch(msg *tgbotapi.Message) {
	l := locales.Get()
	userID := msg.From.ID

	b.sessions.begin(userID)

	// Убираем клавиатуру меню на время диалога
	b.sendText(msg.Chat.ID, userID, l.Search.AskIngredients, "", tgbotapi.NewRemoveKeyboard(false))
}

// cancelSearch — команда /cancel: отбрасывает критерии и подтверждает отмену.
func (b *Bot) cancelSearch(msg *tgbotapi.Message) {
	l := locales.Get()
	userID := msg.From.ID

	b.sessions.reset(userID)
	b.sendText(msg.Chat.ID, userID, l.Search.Cancelled, "", mainMenuKeyboard())
}

// advanceSearch обрабатывает свободный текст внутри активного диалога:
// ингредиенты → кухня → тип блюда → поиск.
func (b *Bot) advanceSearch(ctx context.Context, msg *tgbotapi.Message) {
	l := locales.Get()
	userID := msg.From.ID
	chatID := msg.Chat.ID
	text := msg.Text

	var runSearch bool
	sess, ok := b.sessions.advance(userID, func(s *session) {
		switch s.state {
		case models.StateAwaitingIngredients:
			s.criteria.Ingredients = text
			s.state = models.StateAwaitingCuisine
		case models.StateAwaitingCuisine:
			if !isSkip(text) {
				s.criteria.Cuisine = text
			}
			s.state = models.StateAwaitingMealType
		case models.StateAwaitingMealType:
			if !isSkip(text) {
				s.criteria.MealType = text
			}
			runSearch = true
		}
	})
	if !ok {
		return
	}

	switch {
	case runSearch:
		// Критерии собраны — диалог завершён, набор используется один раз
		b.sessions.reset(userID)
		b.performSearch(ctx, chatID, userID, sess.criteria)
	case sess.state == models.StateAwaitingCuisine:
		b.sendText(chatID, userID, l.Search.AskCuisine, "", skipKeyboard())
	case sess.state == models.StateAwaitingMealType:
		b.sendText(chatID, userID, l.Search.AskMealType, "", skipKeyboard())
	}
}

// performSearch выполняет поиск по накопленным критериям и отправляет
// результаты. Ошибка провайдера приравнивается к пустому результату.
func (b *Bot) performSearch(ctx context.Context, chatID, userID int64, criteria models.SearchCriteria) {
	l := locales.Get()

	b.sendText(chatID, userID, l.Search.Searching, "", mainMenuKeyboard())

	summaries, err := b.recipes.SearchComplex(ctx, spoonacular.SearchParams{
		Ingredients: criteria.Ingredients,
		Cuisine:     criteria.Cuisine,
		MealType:    criteria.MealType,
		Number:      5,
	})
	if err != nil {
		log.Printf("Ошибка API (complexSearch): %v", err)
		summaries = nil
	}

	b.sendSummaries(chatID, userID, summaries)
}

// isSkip распознаёт ключевое слово пропуска критерия без учёта регистра.
func isSkip(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), locales.Get().Search.SkipKeyword)
}
