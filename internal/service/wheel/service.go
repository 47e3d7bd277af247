package wheel

import (
	"context"
	"errors"
	"fmt"
	"game_roulette/internal/config"
	"game_roulette/internal/model"
	"game_roulette/internal/repository"
	"game_roulette/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/rs/zerolog/log"
)

var ErrInvalidWheel = errors.New("invalid wheel")

type serv struct {
	repo      repository.WheelRepository
	defaults  config.WheelDefaults
	txManager trm.Manager
}

// NewWheelService - пользовательские колеса. Пока хранилище пустое, отдаются колеса по умолчанию
func NewWheelService(
	repo repository.WheelRepository,
	defaults config.WheelDefaults,
	txManager trm.Manager,
) service.WheelService {
	return &serv{
		repo:      repo,
		defaults:  defaults,
		txManager: txManager,
	}
}

func (s *serv) List(ctx context.Context) ([]model.Wheel, error) {
	wheels, err := s.repo.ListWheels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wheels: %w", err)
	}
	if len(wheels) == 0 {
		return s.defaultWheels(), nil
	}
	return wheels, nil
}

// Get - колесо по ID из хранилища. Колеса по умолчанию ищутся, только пока хранилище пустое
func (s *serv) Get(ctx context.Context, id string) (*model.Wheel, error) {
	wheel, err := s.repo.GetWheel(ctx, id)
	if err == nil {
		return wheel, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("get wheel %s: %w", id, err)
	}

	stored, err := s.repo.ListWheels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wheels: %w", err)
	}
	if len(stored) > 0 {
		return nil, repository.ErrNotFound
	}

	defaults := s.defaultWheels()
	i := indexOf(defaults, id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	return &defaults[i], nil
}

// Save - полная замена набора колес в одной транзакции.
// Порядок колес и вариантов сохраняется
func (s *serv) Save(ctx context.Context, wheels []model.Wheel) ([]model.Wheel, error) {
	normalized, err := normalize(wheels)
	if err != nil {
		return nil, err
	}

	// Начало транзакции: удаляем все и вставляем заново
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.repo.DeleteAll(txCtx); err != nil {
			return err
		}
		for i := range normalized {
			if err := s.repo.InsertWheel(txCtx, &normalized[i], i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save wheels: %w", err)
	}

	log.Info().Int("wheels", len(normalized)).Msg("custom wheels saved")
	return normalized, nil
}

// Add - новое колесо в конец списка
func (s *serv) Add(ctx context.Context, wheel model.Wheel) (*model.Wheel, error) {
	wheels, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	saved, err := s.Save(ctx, append(wheels, wheel))
	if err != nil {
		return nil, err
	}
	return &saved[len(saved)-1], nil
}

// Update - меняет только заданные в patch поля
func (s *serv) Update(ctx context.Context, id string, patch model.WheelPatch) (*model.Wheel, error) {
	wheels, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(wheels, id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}

	if patch.Name != nil {
		wheels[i].Name = *patch.Name
	}
	if patch.Icon != nil {
		wheels[i].Icon = *patch.Icon
	}
	if patch.Options != nil {
		wheels[i].Options = patch.Options
	}

	saved, err := s.Save(ctx, wheels)
	if err != nil {
		return nil, err
	}
	return &saved[i], nil
}

func (s *serv) Delete(ctx context.Context, id string) error {
	wheels, err := s.List(ctx)
	if err != nil {
		return err
	}
	i := indexOf(wheels, id)
	if i < 0 {
		return repository.ErrNotFound
	}

	_, err = s.Save(ctx, append(wheels[:i], wheels[i+1:]...))
	return err
}

// Reset - возвращает колеса по умолчанию
func (s *serv) Reset(ctx context.Context) ([]model.Wheel, error) {
	return s.Save(ctx, s.defaultWheels())
}

func (s *serv) defaultWheels() []model.Wheel {
	if s.defaults == nil {
		return make([]model.Wheel, 0)
	}
	return s.defaults.Wheels()
}

func indexOf(wheels []model.Wheel, id string) int {
	for i, w := range wheels {
		if w.ID == id {
			return i
		}
	}
	return -1
}
