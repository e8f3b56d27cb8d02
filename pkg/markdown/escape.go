// Package markdown экранирует текст для Telegram MarkdownV2.
package markdown

import "strings"

// Зарезервированные символы MarkdownV2 плюс типографские тире и минус
// (U+2013, U+2014, U+2212), которые Telegram тоже считает служебными.
const reserved = "_*[]()~`>#+-=|{}.!–—−"

// Escape ставит обратный слеш перед каждым зарезервированным символом.
// Функция не идемпотентна: уже экранированный текст будет экранирован
// повторно, поэтому вызывать её нужно ровно один раз на сырой текст.
func Escape(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(reserved, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
