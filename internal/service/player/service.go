package player

import (
	"context"
	"errors"
	"fmt"
	"game_roulette/internal/model"
	"game_roulette/internal/repository"
	"game_roulette/internal/service"
	"strings"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrOutOfBoard   = errors.New("position is out of board")
	ErrGameRequired = errors.New("category and game are required")
)

type serv struct {
	repo      repository.PlayerRepository
	txManager trm.Manager
	now       func() time.Time
}

func NewPlayerService(repo repository.PlayerRepository, txManager trm.Manager) service.PlayerService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *serv) List(ctx context.Context) ([]model.Player, error) {
	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *serv) Get(ctx context.Context, id string) (*model.Player, error) {
	p, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player %s: %w", id, err)
	}
	return p, nil
}

// Move - сдвигает игрока на delta клеток, позиция прижимается к краям поля
func (s *serv) Move(ctx context.Context, id string, delta int) (*model.PlayerMove, error) {
	var move *model.PlayerMove

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		p, err := s.repo.GetPlayer(txCtx, id)
		if err != nil {
			return err
		}
		move, err = s.place(txCtx, p, clamp(p.Score+delta))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("move player %s: %w", id, err)
	}

	log.Info().
		Str("player", move.Player.Name).
		Int("from", move.From).
		Int("to", move.Tile.Number).
		Str("tile", string(move.Tile.Type)).
		Msg("player moved")
	return move, nil
}

// SetPosition - ставит игрока на клетку. Клетка вне поля - ErrOutOfBoard
func (s *serv) SetPosition(ctx context.Context, id string, position int) (*model.PlayerMove, error) {
	if position < MinPosition || position > MaxPosition {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfBoard, position, MinPosition, MaxPosition)
	}

	var move *model.PlayerMove
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		p, err := s.repo.GetPlayer(txCtx, id)
		if err != nil {
			return err
		}
		move, err = s.place(txCtx, p, position)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("set position of %s: %w", id, err)
	}
	return move, nil
}

// AssignGame - текущая игра игрока и запись в историю его игр
func (s *serv) AssignGame(ctx context.Context, id, categoryID, gameName string) (*model.Player, error) {
	categoryID = strings.TrimSpace(categoryID)
	gameName = strings.TrimSpace(gameName)
	if categoryID == "" || gameName == "" {
		return nil, ErrGameRequired
	}

	var player *model.Player
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		p, err := s.repo.GetPlayer(txCtx, id)
		if err != nil {
			return err
		}

		gameID := model.GameID(categoryID, gameName)
		if err = s.repo.SetCurrentGame(txCtx, id, &gameID, &categoryID); err != nil {
			return err
		}

		err = s.repo.AddPlayerGame(txCtx, &model.PlayerGame{
			ID:         uuid.NewString(),
			PlayerID:   id,
			GameName:   gameName,
			CategoryID: categoryID,
			Score:      p.Score,
			PlayedAt:   s.now(),
		})
		if err != nil {
			return err
		}

		p.CurrentGameID = &gameID
		p.CurrentCategoryID = &categoryID
		player = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assign game to %s: %w", id, err)
	}
	return player, nil
}

func (s *serv) Board() []model.Tile {
	return Board()
}

func (s *serv) place(ctx context.Context, p *model.Player, position int) (*model.PlayerMove, error) {
	from := p.Score
	if err := s.repo.UpdateScore(ctx, p.ID, position); err != nil {
		return nil, err
	}
	p.Score = position
	return &model.PlayerMove{Player: p, From: from, Tile: TileAt(position)}, nil
}
