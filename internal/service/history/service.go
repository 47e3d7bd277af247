package history

import (
	"context"
	"fmt"
	"game_roulette/internal/model"
	"game_roulette/internal/repository"
	"game_roulette/internal/service"
	"time"

	"github.com/google/uuid"
)

type serv struct {
	repo repository.HistoryRepository
	now  func() time.Time
}

func NewHistoryService(repo repository.HistoryRepository) service.HistoryService {
	return &serv{
		repo: repo,
		now:  time.Now,
	}
}

// Record - сохраняет бросок. ID и время проставляются, если не заданы
func (s *serv) Record(ctx context.Context, entry model.RollEntry) (*model.RollEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}

	if err := s.repo.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("record roll: %w", err)
	}
	return &entry, nil
}

// List - история, новые первыми
func (s *serv) List(ctx context.Context) ([]model.RollEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

func (s *serv) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
