package records

import (
	"context"
)

// Service — тонкая прослойка над репо. repo может быть nil:
// бот умеет работать без БД, история тогда просто не пишется.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Enabled() bool {
	return s != nil && s.repo != nil
}

func (s *Service) Add(ctx context.Context, rec Record) (int64, error) {
	if !s.Enabled() {
		return 0, nil
	}
	return s.repo.Create(ctx, rec)
}

func (s *Service) History(ctx context.Context, chatID int64, limit int) ([]Record, error) {
	if !s.Enabled() {
		return nil, nil
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.History(ctx, chatID, limit)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	if !s.Enabled() {
		return nil, nil
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}
