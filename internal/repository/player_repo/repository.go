package player_repo

import (
	"context"
	"errors"
	"game_roulette/internal/model"
	"game_roulette/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table            = "players"
	colID            = "id"
	colName          = "name"
	colAvatar        = "avatar"
	colScore         = "score"
	colItems         = "items"
	colCurrentGame   = "current_game_id"
	colCurrentCat    = "current_category_id"
	colCreatedAt     = "created_at"
	colUpdatedAt     = "updated_at"
	playerGamesTable = "player_games"
	colPlayerID      = "player_id"
	colGameName      = "game_name"
	colCategoryID    = "category_id"
	colPlayedAt      = "played_at"
)

var playerColumns = []string{
	colID, colName, colAvatar, colScore, colItems, colCurrentGame, colCurrentCat, colCreatedAt, colUpdatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPlayerRepository(dbc *pgxpool.Pool) repository.PlayerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// ListPlayers - все игроки, лидеры первыми
func (r *repo) ListPlayers(ctx context.Context) ([]model.Player, error) {
	// Формируем запрос
	query := sq.Select(playerColumns...).
		From(table).
		OrderBy(colScore+" DESC", colName).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]model.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}

	return players, rows.Err()
}

// GetPlayer - игрок по ID, repository.ErrNotFound если его нет
func (r *repo) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	// Формируем запрос
	query := sq.Select(playerColumns...).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanPlayer(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateScore - новая позиция игрока на поле
func (r *repo) UpdateScore(ctx context.Context, id string, score int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colScore, score).
		Set(colUpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.execOne(ctx, query)
}

// SetCurrentGame - текущая игра и категория игрока, nil сбрасывает значение
func (r *repo) SetCurrentGame(ctx context.Context, id string, gameID, categoryID *string) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colCurrentGame, gameID).
		Set(colCurrentCat, categoryID).
		Set(colUpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.execOne(ctx, query)
}

// AddPlayerGame - запись о сыгранной игре
func (r *repo) AddPlayerGame(ctx context.Context, game *model.PlayerGame) error {
	// Формируем запрос
	query := sq.Insert(playerGamesTable).
		Columns(colID, colPlayerID, colGameName, colCategoryID, colScore, colPlayedAt).
		Values(game.ID, game.PlayerID, game.GameName, game.CategoryID, game.Score, game.PlayedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// UpsertPlayer - создает игрока или обновляет имя, аватар, очки и предметы
func (r *repo) UpsertPlayer(ctx context.Context, player *model.Player) error {
	items := player.Items
	if items == nil {
		items = []string{}
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colName, colAvatar, colScore, colItems, colUpdatedAt).
		Values(player.ID, player.Name, player.Avatar, player.Score, items, sq.Expr("now()")).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " +
			colName + " = EXCLUDED." + colName + ", " +
			colAvatar + " = EXCLUDED." + colAvatar + ", " +
			colScore + " = EXCLUDED." + colScore + ", " +
			colItems + " = EXCLUDED." + colItems + ", " +
			colUpdatedAt + " = EXCLUDED." + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// execOne - выполняет UPDATE и возвращает repository.ErrNotFound, если строка не нашлась
func (r *repo) execOne(ctx context.Context, query sq.UpdateBuilder) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	err := row.Scan(&p.ID, &p.Name, &p.Avatar, &p.Score, &p.Items, &p.CurrentGameID, &p.CurrentCategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
