package records

import (
	"context"
	"time"
)

type Record struct {
	ID          int64     `json:"id"`
	ChatID      int64     `json:"chat_id"`
	TelegramID  int64     `json:"telegram_id"`
	Source      string    `json:"source"` // voice | text | api
	RuText      string    `json:"ru_text"`
	JgText      string    `json:"jg_text"`
	VoiceURL    *string   `json:"voice_url,omitempty"`
	DurationSec float64   `json:"duration_sec"`
	CreatedAt   time.Time `json:"created_at"`
}

type Repo interface {
	Create(ctx context.Context, rec Record) (int64, error)
	History(ctx context.Context, chatID int64, limit int) ([]Record, error)
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}
