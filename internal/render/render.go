// Package render собирает проекции рецептов в готовые к отправке
// сообщения: текст, режим разметки, картинка и набор кнопок.
// Пакет не знает про Telegram-транспорт — перевод Message в конкретные
// вызовы API делает internal/bot.
package render

import (
	"fmt"
	"strings"

	"github.com/medicsera/Chat-BOT-cook/pkg/locales"
	"github.com/medicsera/Chat-BOT-cook/pkg/markdown"
	"github.com/medicsera/Chat-BOT-cook/pkg/models"
)

// ParseModeMarkdownV2 — режим разметки для экранированных сообщений.
// Пустой режим означает обычный текст.
const ParseModeMarkdownV2 = "MarkdownV2"

// Button — одна интерактивная кнопка: либо callback, либо внешняя ссылка.
type Button struct {
	Label        string
	CallbackData string
	URL          string
}

// Message — единый результат рендеринга для доставки в чат.
type Message struct {
	Text      string
	ParseMode string
	ImageURL  string
	Buttons   []Button
}

// Summary собирает карточку рецепта для списка результатов.
// Текст экранирован для MarkdownV2, название выделено жирным.
func Summary(s models.RecipeSummary) Message {
	l := locales.Get()

	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s* \\(ID: %d\\)\n", markdown.Escape(s.Title), s.ID)
	fmt.Fprintf(&sb, l.Recipe.CaloriesLine+"\n", markdown.Escape(s.CaloriesText))
	if len(s.Cuisines) > 0 {
		fmt.Fprintf(&sb, l.Recipe.CuisinesLine+"\n", markdown.Escape(strings.Join(s.Cuisines, ", ")))
	}
	if len(s.DishTypes) > 0 {
		fmt.Fprintf(&sb, l.Recipe.DishTypesLine+"\n", markdown.Escape(strings.Join(s.DishTypes, ", ")))
	}

	buttons := []Button{
		{Label: l.Recipe.Buttons.Details, CallbackData: fmt.Sprintf("details_%d", s.ID)},
		{Label: l.Recipe.Buttons.Nutrition, CallbackData: fmt.Sprintf("nutrition_%d", s.ID)},
	}
	if s.SourceURL != "" {
		buttons = append(buttons, Button{Label: l.Recipe.Buttons.SourceAPI, URL: s.SourceURL})
	}

	return Message{
		Text:      sb.String(),
		ParseMode: ParseModeMarkdownV2,
		ImageURL:  s.ImageURL,
		Buttons:   buttons,
	}
}

// Detail собирает подробный вид рецепта. Отправляется обычным текстом,
// без разметки — экранирование не требуется.
func Detail(d models.RecipeDetail) Message {
	l := locales.Get()

	var sb strings.Builder
	fmt.Fprintf(&sb, l.Recipe.DetailsHeader+"\n\n", d.Title, d.ID)

	sb.WriteString(l.Recipe.IngredientsHeader + "\n")
	if len(d.Ingredients) > 0 {
		for _, ing := range d.Ingredients {
			sb.WriteString("- " + ing + "\n")
		}
	} else {
		sb.WriteString(l.Recipe.IngredientsMissing + "\n")
	}

	sb.WriteString("\n" + l.Recipe.InstructionsHeader + "\n")
	sb.WriteString(d.Instructions + "\n")

	var buttons []Button
	if d.SourceURL != "" {
		buttons = append(buttons, Button{Label: l.Recipe.Buttons.SourceRecipe, URL: d.SourceURL})
	}

	return Message{
		Text:     sb.String(),
		ImageURL: d.ImageURL,
		Buttons:  buttons,
	}
}

// HelpText собирает текст справки в MarkdownV2, сохраняя жирные спаны
// (*...*) и моноширинные (`...`). Внутренности спанов и обычный текст
// экранируются по отдельности, чередованием по разделителю.
func HelpText(title string, items []string) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, escapeKeepingSpans(item))
	}
	return "*" + markdown.Escape(title) + "*\n" + strings.Join(lines, "\n")
}

// escapeKeepingSpans экранирует строку, оставляя рабочими спаны `...` и
// *...*. Нечётные части чередующегося разбиения — содержимое спанов.
func escapeKeepingSpans(item string) string {
	var sb strings.Builder
	for i, part := range strings.Split(item, "`") {
		if i%2 == 1 {
			sb.WriteString("`" + markdown.Escape(part) + "`")
			continue
		}
		for j, sub := range strings.Split(part, "*") {
			if j%2 == 1 {
				sb.WriteString("*" + markdown.Escape(sub) + "*")
			} else {
				sb.WriteString(markdown.Escape(sub))
			}
		}
	}
	return sb.String()
}
