package userlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndRecent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append(1, "vasya", "/start"))
	require.NoError(t, s.Append(1, SenderBot, "Главное меню:"))
	require.NoError(t, s.Append(1, "vasya", "курица, рис"))

	entries, err := s.Recent(1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Порядок добавления сохраняется
	assert.Equal(t, "/start", entries[0].Text)
	assert.Equal(t, SenderBot, entries[1].Sender)
	assert.Equal(t, "курица, рис", entries[2].Text)
}

func TestStreamsDoNotMix(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append(1, "vasya", "привет"))
	require.NoError(t, s.Append(2, "petya", "здравствуйте"))
	require.NoError(t, s.Append(1, SenderBot, "Выберите действие:"))

	first, err := s.Recent(1, 10)
	require.NoError(t, err)
	second, err := s.Recent(2, 10)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 1)
	assert.Equal(t, "здравствуйте", second[0].Text)
}

func TestRecentLimit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Append(7, SenderBot, "сообщение"))
	}
	require.NoError(t, s.Append(7, "user", "последнее"))

	entries, err := s.Recent(7, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "последнее", entries[1].Text)
}
