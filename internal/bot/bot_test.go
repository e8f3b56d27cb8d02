package bot

import (
	"context"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/medicsera/Chat-BOT-cook/internal/spoonacular"
	"github.com/medicsera/Chat-BOT-cook/pkg/models"
)

// fakeAPI записывает все вызовы транспорта; умеет имитировать отказ
// отправки фото и отказ подтверждения callback.
type fakeAPI struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	photoErr error
	ackErr   error
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	if _, ok := c.(tgbotapi.PhotoConfig); ok && f.photoErr != nil {
		return tgbotapi.Message{}, f.photoErr
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	if f.ackErr != nil {
		return nil, f.ackErr
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// messages возвращает только текстовые отправки.
func (f *fakeAPI) messages() []tgbotapi.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeAPI) lastMessage(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	msgs := f.messages()
	if len(msgs) == 0 {
		t.Fatal("сообщения не отправлялись")
	}
	return msgs[len(msgs)-1]
}

// fakeRecipes записывает обращения к клиенту рецептов.
type fakeRecipes struct {
	searchCalls    []spoonacular.SearchParams
	searchRes      []models.RecipeSummary
	searchErr      error
	randomCalls    []string
	randomRes      []models.RecipeSummary
	randomErr      error
	infoCalls      []int
	detail         *models.RecipeDetail
	detailErr      error
	nutritionCalls []int
	nutritionText  string
}

func (f *fakeRecipes) SearchComplex(_ context.Context, p spoonacular.SearchParams) ([]models.RecipeSummary, error) {
	f.searchCalls = append(f.searchCalls, p)
	return f.searchRes, f.searchErr
}

func (f *fakeRecipes) Random(_ context.Context, tags string, _ int) ([]models.RecipeSummary, error) {
	f.randomCalls = append(f.randomCalls, tags)
	return f.randomRes, f.randomErr
}

func (f *fakeRecipes) Information(_ context.Context, recipeID int) (*models.RecipeDetail, error) {
	f.infoCalls = append(f.infoCalls, recipeID)
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detail, nil
}

func (f *fakeRecipes) NutritionText(_ context.Context, recipeID int) string {
	f.nutritionCalls = append(f.nutritionCalls, recipeID)
	return f.nutritionText
}

// fakeLog собирает записи журнала переписки в память.
type logEntry struct {
	userID int64
	sender string
	text   string
}

type fakeLog struct {
	mu      sync.Mutex
	entries []logEntry
}

func (f *fakeLog) Append(userID int64, sender, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, logEntry{userID: userID, sender: sender, text: text})
	return nil
}

func (f *fakeLog) byUser(userID int64) []logEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []logEntry
	for _, e := range f.entries {
		if e.userID == userID {
			out = append(out, e)
		}
	}
	return out
}

func newTestBot() (*Bot, *fakeAPI, *fakeRecipes, *fakeLog) {
	api := &fakeAPI{}
	recipes := &fakeRecipes{}
	logbook := &fakeLog{}
	b := &Bot{
		api:      api,
		recipes:  recipes,
		logbook:  logbook,
		sessions: newSessionStore(),
	}
	return b, api, recipes, logbook
}

// userMsg — свободный текст от пользователя userID (чат совпадает с ID).
func userMsg(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID, UserName: "tester"},
		Chat:      &tgbotapi.Chat{ID: userID},
		Text:      text,
	}
}

// commandMsg — сообщение-команда вида "/cmd аргументы".
func commandMsg(userID int64, text string) *tgbotapi.Message {
	m := userMsg(userID, text)
	cmdLen := len(text)
	for i, r := range text {
		if r == ' ' {
			cmdLen = i
			break
		}
	}
	m.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}}
	return m
}

func callbackUpd(userID int64, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		From: &tgbotapi.User{ID: userID, UserName: "tester"},
		Message: &tgbotapi.Message{
			MessageID: 10,
			Chat:      &tgbotapi.Chat{ID: userID},
		},
		Data: data,
	}
}
