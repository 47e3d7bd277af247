package wheel_repo

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
	wheelTable   = "custom_wheels"
	optionTable  = "wheel_options"
	colID        = "id"
	colWheelID   = "wheel_id"
	colName      = "name"
	colIcon      = "icon"
	colOrder     = "display_order"
	colUpdatedAt = "updated_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWheelRepository(dbc *pgxpool.Pool) repository.WheelRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// ListWheels - все колеса с вариантами в сохраненном порядке
func (r *repo) ListWheels(ctx context.Context) ([]model.Wheel, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colIcon).
		From(wheelTable).
		OrderBy(colOrder, colID).
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

	wheels := make([]model.Wheel, 0)
	index := make(map[string]int)
	for rows.Next() {
		var w model.Wheel
		if err = rows.Scan(&w.ID, &w.Name, &w.Icon); err != nil {
			return nil, err
		}
		index[w.ID] = len(wheels)
		wheels = append(wheels, w)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	options, err := r.selectOptions(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, o := range options {
		if i, ok := index[o.wheelID]; ok {
			wheels[i].Options = append(wheels[i].Options, o.WheelOption)
		}
	}

	return wheels, nil
}

// GetWheel - колесо по ID, repository.ErrNotFound если его нет
func (r *repo) GetWheel(ctx context.Context, id string) (*model.Wheel, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colIcon).
		From(wheelTable).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var w model.Wheel
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&w.ID, &w.Name, &w.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	options, err := r.selectOptions(ctx, sq.Eq{colWheelID: id})
	if err != nil {
		return nil, err
	}
	for _, o := range options {
		w.Options = append(w.Options, o.WheelOption)
	}

	return &w, nil
}

// DeleteAll - удаляет все колеса и их варианты
func (r *repo) DeleteAll(ctx context.Context) error {
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)

	// Сначала варианты, потом сами колеса
	for _, table := range []string{optionTable, wheelTable} {
		sqlStr, args, err := sq.Delete(table).PlaceholderFormat(sq.Dollar).ToSql()
		if err != nil {
			return err
		}
		if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
			return err
		}
	}
	return nil
}

// InsertWheel - вставляет колесо на позицию order, варианты получают display_order по индексу
func (r *repo) InsertWheel(ctx context.Context, wheel *model.Wheel, order int) error {
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc)

	// Формируем запрос
	query := sq.Insert(wheelTable).
		Columns(colID, colName, colIcon, colOrder, colUpdatedAt).
		Values(wheel.ID, wheel.Name, wheel.Icon, order, sq.Expr("now()")).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	if len(wheel.Options) == 0 {
		return nil
	}

	// Все варианты одним запросом
	optQuery := sq.Insert(optionTable).
		Columns(colID, colWheelID, colName, colIcon, colOrder).
		PlaceholderFormat(sq.Dollar)
	for i, o := range wheel.Options {
		optQuery = optQuery.Values(o.ID, wheel.ID, o.Name, o.Icon, i)
	}

	sqlStr, args, err = optQuery.ToSql()
	if err != nil {
		return err
	}
	_, err = tr.Exec(ctx, sqlStr, args...)
	return err
}

type optionRow struct {
	model.WheelOption
	wheelID string
}

func (r *repo) selectOptions(ctx context.Context, where sq.Sqlizer) ([]optionRow, error) {
	query := sq.Select(colID, colWheelID, colName, colIcon).
		From(optionTable).
		OrderBy(colWheelID, colOrder).
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

	var options []optionRow
	for rows.Next() {
		var o optionRow
		if err = rows.Scan(&o.ID, &o.wheelID, &o.Name, &o.Icon); err != nil {
			return nil, err
		}
		options = append(options, o)
	}

	return options, rows.Err()
}
