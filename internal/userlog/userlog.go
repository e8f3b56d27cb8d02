// Package userlog хранит журнал переписки: каждое входящее и исходящее
// сообщение дописывается в поток соответствующего пользователя.
package userlog

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SenderBot — метка отправителя для сообщений бота.
const SenderBot = "BOT"

//go:embed schema.sql
var schemaSQL string

// Entry — одна запись журнала.
type Entry struct {
	UserID    int64
	CreatedAt time.Time
	Sender    string
	Text      string
}

// Store — журнал на sqlite. Записи только добавляются; внутри потока
// одного пользователя порядок добавления сохраняется.
type Store struct {
	conn *sql.DB
}

func New(dbPath string) (*Store, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть базу данных: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.applySchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("не удалось применить схему: %w", err)
	}

	return s, nil
}

// applySchema читает и выполняет schema.sql
func (s *Store) applySchema() error {
	_, err := s.conn.Exec(schemaSQL)
	return err
}

// Append дописывает запись в поток пользователя.
func (s *Store) Append(userID int64, sender, text string) error {
	_, err := s.conn.Exec(
		`INSERT INTO interactions (user_id, created_at, sender, message) VALUES (?, ?, ?, ?)`,
		userID, time.Now().UTC(), sender, text,
	)
	if err != nil {
		return fmt.Errorf("не удалось записать взаимодействие: %w", err)
	}
	return nil
}

// Recent возвращает последние limit записей пользователя, от старых к новым.
func (s *Store) Recent(userID int64, limit int) ([]Entry, error) {
	rows, err := s.conn.Query(
		`SELECT user_id, created_at, sender, message
		 FROM (SELECT id, user_id, created_at, sender, message
		       FROM interactions WHERE user_id = ? ORDER BY id DESC LIMIT ?)
		 ORDER BY id ASC`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать журнал: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.UserID, &e.CreatedAt, &e.Sender, &e.Text); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Close() error {
	return s.conn.Close()
}
