// Package spoonacular предоставляет клиент для Spoonacular API и
// проецирует ответы провайдера в модели приложения.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/medicsera/Chat-BOT-cook/pkg/locales"
	"github.com/medicsera/Chat-BOT-cook/pkg/markdown"
	"github.com/medicsera/Chat-BOT-cook/pkg/models"
)

// htmlTagRe вырезает HTML-разметку из инструкций провайдера.
var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// Client — клиент Spoonacular API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// SearchParams — необязательные фильтры комплексного поиска.
// Пустая строка означает, что фильтр не задан и в запрос не попадает.
type SearchParams struct {
	Query       string
	Cuisine     string
	MealType    string
	Ingredients string
	Number      int // 0 — значение по умолчанию (5)
}

// recipeJSON — запись рецепта в ответах complexSearch, random и information.
type recipeJSON struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Image               string   `json:"image"`
	SourceURL           string   `json:"sourceUrl"`
	Cuisines            []string `json:"cuisines"`
	DishTypes           []string `json:"dishTypes"`
	Instructions        string   `json:"instructions"`
	ExtendedIngredients []struct {
		Original string `json:"original"`
	} `json:"extendedIngredients"`
	Nutrition struct {
		Nutrients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
		} `json:"nutrients"`
	} `json:"nutrition"`
}

type searchResponse struct {
	Results []recipeJSON `json:"results"`
}

type randomResponse struct {
	Recipes []recipeJSON `json:"recipes"`
}

// nutritionResponse — ответ nutritionWidget.json. Все поля — строки для
// показа: API возвращает значения с единицами измерения либо "N/A".
type nutritionResponse struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Fat      string `json:"fat"`
	Carbs    string `json:"carbs"`
}

// NewClient создаёт клиент. baseURL без завершающего слеша,
// например https://api.spoonacular.com
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SearchComplex выполняет комплексный поиск рецептов. Незаданные фильтры
// в запрос не включаются. Ошибка провайдера означает "ничего не найдено"
// для вызывающего кода.
func (c *Client) SearchComplex(ctx context.Context, p SearchParams) ([]models.RecipeSummary, error) {
	number := p.Number
	if number <= 0 {
		number = 5
	}

	q := url.Values{}
	q.Set("number", strconv.Itoa(number))
	q.Set("addRecipeInformation", "true")
	q.Set("fillIngredients", "true")
	q.Set("instructionsRequired", "true")
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	if p.Cuisine != "" {
		q.Set("cuisine", p.Cuisine)
	}
	if p.MealType != "" {
		q.Set("type", p.MealType)
	}
	if p.Ingredients != "" {
		q.Set("includeIngredients", p.Ingredients)
	}

	var resp searchResponse
	if err := c.get(ctx, "/recipes/complexSearch", q, &resp); err != nil {
		return nil, fmt.Errorf("complexSearch: %w", err)
	}

	summaries := make([]models.RecipeSummary, 0, len(resp.Results))
	for _, r := range resp.Results {
		summaries = append(summaries, toSummary(r))
	}
	return summaries, nil
}

// Random запрашивает случайные рецепты, при необходимости с тегами
// (например, названием кухни в нижнем регистре).
func (c *Client) Random(ctx context.Context, tags string, number int) ([]models.RecipeSummary, error) {
	if number <= 0 {
		number = 1
	}

	q := url.Values{}
	q.Set("number", strconv.Itoa(number))
	if tags != "" {
		q.Set("tags", tags)
	}

	var resp randomResponse
	if err := c.get(ctx, "/recipes/random", q, &resp); err != nil {
		return nil, fmt.Errorf("random (tags: %q): %w", tags, err)
	}

	summaries := make([]models.RecipeSummary, 0, len(resp.Recipes))
	for _, r := range resp.Recipes {
		summaries = append(summaries, toSummary(r))
	}
	return summaries, nil
}

// Information загружает полную информацию о рецепте. При любой ошибке
// возвращает nil — частично заполненных деталей не бывает.
func (c *Client) Information(ctx context.Context, recipeID int) (*models.RecipeDetail, error) {
	q := url.Values{}
	q.Set("includeNutrition", "true")

	var r recipeJSON
	path := fmt.Sprintf("/recipes/%d/information", recipeID)
	if err := c.get(ctx, path, q, &r); err != nil {
		return nil, fmt.Errorf("information (ID %d): %w", recipeID, err)
	}

	detail := toDetail(r)
	return &detail, nil
}

// NutritionText возвращает готовый к отправке текст MarkdownV2 с пищевой
// ценностью рецепта. Особый контракт: при ошибке провайдера возвращается
// не error, а экранированное сообщение о неудаче — единственный
// вызывающий код отправляет результат как есть.
func (c *Client) NutritionText(ctx context.Context, recipeID int) string {
	l := locales.Get()

	var resp nutritionResponse
	path := fmt.Sprintf("/recipes/%d/nutritionWidget.json", recipeID)
	if err := c.get(ctx, path, url.Values{}, &resp); err != nil {
		log.Printf("Ошибка API (nutritionWidget, ID %d): %v", recipeID, err)
		return markdown.Escape(l.Nutrition.Failed)
	}

	info := models.NutritionInfo{
		RecipeID: recipeID,
		Calories: orNA(resp.Calories),
		Protein:  orNA(resp.Protein),
		Fat:      orNA(resp.Fat),
		Carbs:    orNA(resp.Carbs),
	}

	text := "*" + markdown.Escape(fmt.Sprintf(l.Nutrition.Header, info.RecipeID)) + "*\n"
	text += fmt.Sprintf(l.Nutrition.Calories, markdown.Escape(info.Calories)) + "\n"
	text += fmt.Sprintf(l.Nutrition.Protein, markdown.Escape(info.Protein)) + "\n"
	text += fmt.Sprintf(l.Nutrition.Fat, markdown.Escape(info.Fat)) + "\n"
	text += fmt.Sprintf(l.Nutrition.Carbs, markdown.Escape(info.Carbs)) + "\n"
	return text
}

// get выполняет GET-запрос и разбирает JSON-ответ.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка HTTP: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("неверный JSON: %w", err)
	}
	return nil
}

// toSummary проецирует запись провайдера в краткую карточку рецепта.
func toSummary(r recipeJSON) models.RecipeSummary {
	l := locales.Get()

	title := r.Title
	if title == "" {
		title = l.Recipe.Untitled
	}

	return models.RecipeSummary{
		ID:           r.ID,
		Title:        title,
		ImageURL:     r.Image,
		CaloriesText: caloriesText(r),
		Cuisines:     r.Cuisines,
		DishTypes:    r.DishTypes,
		SourceURL:    r.SourceURL,
	}
}

// toDetail проецирует запись провайдера в подробный вид рецепта.
func toDetail(r recipeJSON) models.RecipeDetail {
	l := locales.Get()

	title := r.Title
	if title == "" {
		title = l.Recipe.Untitled
	}

	ingredients := make([]string, 0, len(r.ExtendedIngredients))
	for _, ing := range r.ExtendedIngredients {
		ingredients = append(ingredients, ing.Original)
	}

	instructions := htmlTagRe.ReplaceAllString(r.Instructions, "")
	if instructions == "" {
		instructions = l.Recipe.InstructionsMissing
	}

	return models.RecipeDetail{
		ID:           r.ID,
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
		ImageURL:     r.Image,
		SourceURL:    r.SourceURL,
	}
}

// caloriesText ищет нутриент "Calories" по точному имени и округляет
// количество до целого; без него калорийность считается неизвестной.
func caloriesText(r recipeJSON) string {
	l := locales.Get()
	for _, n := range r.Nutrition.Nutrients {
		if n.Name == "Calories" {
			return fmt.Sprintf(l.Recipe.CaloriesValue, int(math.Round(n.Amount)))
		}
	}
	return l.Recipe.CaloriesUnknown
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
