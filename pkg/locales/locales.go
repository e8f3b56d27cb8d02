package locales

import (
	_ "embed"
	"encoding/json"
	"log"
)

//go:embed locales.json
var localesJSON []byte

// Locales содержит все текстовые строки из locales.json
type Locales struct {
	MainMenu  MainMenu  `json:"main_menu"`
	Greeting  Greeting  `json:"greeting"`
	Help      Help      `json:"help"`
	Search    Search    `json:"search"`
	Random    Random    `json:"random"`
	Cuisines  Cuisines  `json:"cuisines"`
	Recipe    Recipe    `json:"recipe"`
	Nutrition Nutrition `json:"nutrition"`
	Errors    Errors    `json:"errors"`
}

type MainMenu struct {
	Text    string `json:"text"`
	Title   string `json:"title"`
	Buttons struct {
		Find     string `json:"find"`
		Random   string `json:"random"`
		Cuisines string `json:"cuisines"`
		Help     string `json:"help"`
	} `json:"buttons"`
}

type Greeting struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

type Help struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type Search struct {
	AskIngredients string `json:"ask_ingredients"`
	AskCuisine     string `json:"ask_cuisine"`
	AskMealType    string `json:"ask_meal_type"`
	SkipKeyword    string `json:"skip_keyword"`
	Searching      string `json:"searching"`
	Cancelled      string `json:"cancelled"`
	NothingFound   string `json:"nothing_found"`
}

type Random struct {
	Searching     string `json:"searching"`
	SearchingTags string `json:"searching_tags"`
}

type Cuisines struct {
	Choose string `json:"choose"`
}

type Recipe struct {
	CaloriesLine        string `json:"calories_line"`
	CaloriesValue       string `json:"calories_value"`
	CaloriesUnknown     string `json:"calories_unknown"`
	CuisinesLine        string `json:"cuisines_line"`
	DishTypesLine       string `json:"dish_types_line"`
	Untitled            string `json:"untitled"`
	DetailsHeader       string `json:"details_header"`
	IngredientsHeader   string `json:"ingredients_header"`
	IngredientsMissing  string `json:"ingredients_missing"`
	InstructionsHeader  string `json:"instructions_header"`
	InstructionsMissing string `json:"instructions_missing"`
	DetailsLoading      string `json:"details_loading"`
	DetailsFailed       string `json:"details_failed"`
	Buttons             struct {
		Details      string `json:"details"`
		Nutrition    string `json:"nutrition"`
		SourceAPI    string `json:"source_api"`
		SourceRecipe string `json:"source_recipe"`
	} `json:"buttons"`
}

type Nutrition struct {
	Loading  string `json:"loading"`
	Header   string `json:"header"`
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Fat      string `json:"fat"`
	Carbs    string `json:"carbs"`
	Failed   string `json:"failed"`
}

type Errors struct {
	Unexpected string `json:"unexpected"`
}

var L *Locales

func init() {
	L = &Locales{}
	if err := json.Unmarshal(localesJSON, L); err != nil {
		log.Fatalf("Не удалось распарсить locales.json: %v", err)
	}
}

// Get возвращает указатель на локали
func Get() *Locales {
	return L
}
