package models

// RecipeSummary — краткая проекция рецепта для списка результатов поиска.
// Формируется клиентом Spoonacular и потребляется рендерером один раз.
type RecipeSummary struct {
	ID           int
	Title        string
	ImageURL     string // пустая строка — картинки нет
	CaloriesText string // готовый к показу текст, например "255 ккал" или "не указана"
	Cuisines     []string
	DishTypes    []string
	SourceURL    string
}

// RecipeDetail — полная проекция рецепта для подробного просмотра.
type RecipeDetail struct {
	ID           int
	Title        string
	Ingredients  []string // строки extendedIngredients[].original как есть
	Instructions string   // текст инструкций, очищенный от HTML-тегов
	ImageURL     string
	SourceURL    string
}

// NutritionInfo — пищевая ценность рецепта. Все поля — строки для показа:
// API может вернуть "N/A" или значение с единицами измерения.
type NutritionInfo struct {
	RecipeID int
	Calories string
	Protein  string
	Fat      string
	Carbs    string
}

// SearchCriteria — критерии пошагового поиска, накапливаются за три шага
// диалога. Пустая строка означает, что критерий не задан (пропущен).
type SearchCriteria struct {
	Ingredients string
	Cuisine     string
	MealType    string
}

// ConversationState — состояние пользователя в пошаговом поиске.
type ConversationState string

// Константы состояний для конечного автомата (FSM)
const (
	StateIdle                ConversationState = "idle"
	StateAwaitingIngredients ConversationState = "awaiting_ingredients"
	StateAwaitingCuisine     ConversationState = "awaiting_cuisine"
	StateAwaitingMealType    ConversationState = "awaiting_meal_type"
)
