package category_repo

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
	categoryTable = "game_categories"
	gameTable     = "games"

	colID         = "id"
	colName       = "name"
	colIcon       = "icon"
	colCategoryID = "category_id"
	colOrder      = "display_order"
	colCreatedAt  = "created_at"
	colUpdatedAt  = "updated_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewCategoryRepository(dbc *pgxpool.Pool) repository.CategoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// ListCategories - все категории вместе с названиями игр в порядке импорта
func (r *repo) ListCategories(ctx context.Context) ([]model.Category, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colIcon, colCreatedAt, colUpdatedAt).
		From(categoryTable).
		OrderBy(colOrder, colName).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)
	rows, err := tr.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	index := make(map[string]int)
	for rows.Next() {
		var c model.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		index[c.ID] = len(categories)
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// Подтягиваем игры одним запросом и раскладываем по категориям
	games, err := r.selectGames(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, g := range games {
		if i, ok := index[g.CategoryID]; ok {
			categories[i].Games = append(categories[i].Games, g.Name)
		}
	}

	return categories, nil
}

// GetCategory - категория с играми по ID
func (r *repo) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colIcon, colCreatedAt, colUpdatedAt).
		From(categoryTable).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c model.Category
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)
	err = tr.QueryRow(ctx, sqlStr, args...).Scan(&c.ID, &c.Name, &c.Icon, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	games, err := r.selectGames(ctx, sq.Eq{colCategoryID: id})
	if err != nil {
		return nil, err
	}
	for _, g := range games {
		c.Games = append(c.Games, g.Name)
	}

	return &c, nil
}

// ListGamesByCategory - игры категории в порядке списка из файла. Пустой список, если игр нет
func (r *repo) ListGamesByCategory(ctx context.Context, categoryID string) ([]model.Game, error) {
	return r.selectGames(ctx, sq.Eq{colCategoryID: categoryID})
}

// UpsertCategory - создает или обновляет категорию
func (r *repo) UpsertCategory(ctx context.Context, category *model.Category, order int) error {
	// Формируем запрос
	query := sq.Insert(categoryTable).
		Columns(colID, colName, colIcon, colOrder, colUpdatedAt).
		Values(category.ID, category.Name, category.Icon, order, sq.Expr("now()")).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " +
			colName + " = EXCLUDED." + colName + ", " +
			colIcon + " = EXCLUDED." + colIcon + ", " +
			colOrder + " = EXCLUDED." + colOrder + ", " +
			colUpdatedAt + " = EXCLUDED." + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// UpsertGame - создает или обновляет игру
func (r *repo) UpsertGame(ctx context.Context, game *model.Game, order int) error {
	// Формируем запрос
	query := sq.Insert(gameTable).
		Columns(colID, colName, colCategoryID, colOrder).
		Values(game.ID, game.Name, game.CategoryID, order).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " +
			colName + " = EXCLUDED." + colName + ", " +
			colCategoryID + " = EXCLUDED." + colCategoryID + ", " +
			colOrder + " = EXCLUDED." + colOrder).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func (r *repo) selectGames(ctx context.Context, where sq.Sqlizer) ([]model.Game, error) {
	query := sq.Select(colID, colName, colCategoryID).
		From(gameTable).
		OrderBy(colCategoryID, colOrder, colName).
		PlaceholderFormat(sq.Dollar)
	if where != nil {
		query = query.Where(where)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]model.Game, 0)
	for rows.Next() {
		var g model.Game
		if err = rows.Scan(&g.ID, &g.Name, &g.CategoryID); err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, rows.Err()
}
