package service

import (
	"context"
	"game_roulette/internal/model"
)

type RollService interface {
	RollCategory(ctx context.Context) error
	RollGame(ctx context.Context) error
	RollCustom(ctx context.Context, wheelID string) error

	Categories(ctx context.Context) ([]model.Category, error)
	Games(ctx context.Context, categoryID string) ([]model.Game, error)
	SelectCategory(ctx context.Context, id string) (*model.Category, error)
	ToggleCategory(id string) (disabled bool)

	State() model.RouletteState
	Subscribe() chan model.RollEvent
	Unsubscribe(ch chan model.RollEvent)
	Close()
}

type HistoryService interface {
	Record(ctx context.Context, entry model.RollEntry) (*model.RollEntry, error)
	List(ctx context.Context) ([]model.RollEntry, error)
	Clear(ctx context.Context) error
}

type WheelService interface {
	List(ctx context.Context) ([]model.Wheel, error)
	Get(ctx context.Context, id string) (*model.Wheel, error)
	Save(ctx context.Context, wheels []model.Wheel) ([]model.Wheel, error)
	Add(ctx context.Context, wheel model.Wheel) (*model.Wheel, error)
	Update(ctx context.Context, id string, patch model.WheelPatch) (*model.Wheel, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) ([]model.Wheel, error)
}

type PlayerService interface {
	List(ctx context.Context) ([]model.Player, error)
	Get(ctx context.Context, id string) (*model.Player, error)
	Move(ctx context.Context, id string, delta int) (*model.PlayerMove, error)
	SetPosition(ctx context.Context, id string, position int) (*model.PlayerMove, error)
	AssignGame(ctx context.Context, id, categoryID, gameName string) (*model.Player, error)
	Board() []model.Tile
}

type AuthService interface {
	Login(ctx context.Context, password string) (*model.AuthData, error)
	Verify(accessToken string) (*model.HostClaims, error)
	Enabled() bool
}
