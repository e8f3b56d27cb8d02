package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"пустая строка", "", ""},
		{"обычный текст", "курица и рис", "курица и рис"},
		{"точка тире восклицание", "a.b-c!", `a\.b\-c\!`},
		{"все зарезервированные", "_*[]()~`>#+-=|{}.!", `\_\*\[\]\(\)\~` + "\\`" + `\>\#\+\-\=\|\{\}\.\!`},
		{"типографские тире", "а–б—в−г", `а\–б\—в\−г`},
		{"заголовок рецепта", "Chicken & Rice (30 min.)", `Chicken & Rice \(30 min\.\)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.input))
		})
	}
}

// Повторное экранирование удваивает слеши — контракт "ровно один вызов".
func TestEscapeNotIdempotent(t *testing.T) {
	once := Escape("a.b")
	twice := Escape(once)
	assert.Equal(t, `a\.b`, once)
	assert.Equal(t, `a\\.b`, twice)
}
