package records

import (
	"context"
	"database/sql"
	"time"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, rec Record) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO translations (chat_id, telegram_id, source, ru_text, jg_text, voice_url, duration_sec, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, rec.ChatID, rec.TelegramID, rec.Source, rec.RuText, rec.JgText, rec.VoiceURL, rec.DurationSec, time.Now()).Scan(&id)
	return id, err
}

func (r *repo) History(ctx context.Context, chatID int64, limit int) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, chat_id, telegram_id, source, ru_text, jg_text, voice_url, duration_sec, created_at
		FROM translations
		WHERE chat_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, chatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *repo) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, chat_id, telegram_id, source, ru_text, jg_text, voice_url, duration_sec, created_at
		FROM translations
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var recs []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.ChatID,
			&rec.TelegramID,
			&rec.Source,
			&rec.RuText,
			&rec.JgText,
			&rec.VoiceURL,
			&rec.DurationSec,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
