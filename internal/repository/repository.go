package repository

import (
	"context"
	"errors"
	"game_roulette/internal/model"
)

// ErrNotFound - запись не найдена
var ErrNotFound = errors.New("not found")

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListGamesByCategory(ctx context.Context, categoryID string) ([]model.Game, error)

	// order - позиция для отображения: категории и игры выводятся в порядке импорта
	UpsertCategory(ctx context.Context, category *model.Category, order int) error
	UpsertGame(ctx context.Context, game *model.Game, order int) error
}

type PlayerRepository interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	UpdateScore(ctx context.Context, id string, score int) error
	SetCurrentGame(ctx context.Context, id string, gameID, categoryID *string) error
	AddPlayerGame(ctx context.Context, game *model.PlayerGame) error

	UpsertPlayer(ctx context.Context, player *model.Player) error
}

// WheelRepository - хранилище пользовательских колес.
// Сохранение всегда полное: DeleteAll и InsertWheel вызываются в одной транзакции
type WheelRepository interface {
	ListWheels(ctx context.Context) ([]model.Wheel, error)
	GetWheel(ctx context.Context, id string) (*model.Wheel, error)
	DeleteAll(ctx context.Context) error
	InsertWheel(ctx context.Context, wheel *model.Wheel, order int) error
}

// HistoryRepository - история бросков, новые записи первыми
type HistoryRepository interface {
	Add(ctx context.Context, entry model.RollEntry) error
	List(ctx context.Context) ([]model.RollEntry, error)
	Clear(ctx context.Context) error
}
