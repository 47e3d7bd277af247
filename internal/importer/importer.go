package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"game_roulette/internal/model"
	"game_roulette/internal/repository"
	"game_roulette/internal/service"
	"os"
	"path/filepath"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/rs/zerolog/log"
)

// indexFile - список файлов каталога в порядке загрузки
const indexFile = "_index.json"

type index struct {
	Files []string `json:"files"`
}

type categoryFile struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Games []string `json:"games"`
}

type playerFile struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Avatar string   `json:"avatar"`
	Score  int      `json:"score"`
	Items  []string `json:"items"`
}

// Deps - куда складывать импортированные данные
type Deps struct {
	Categories repository.CategoryRepository
	Players    repository.PlayerRepository
	Wheels     service.WheelService
	TxManager  trm.Manager
}

// Stats - что было загружено
type Stats struct {
	Categories int
	Games      int
	Players    int
	Wheels     int
}

// LoadCategories читает категории из dir/_index.json и перечисленных в нем файлов
func LoadCategories(dir string) ([]model.Category, error) {
	files, err := readIndex(dir)
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(files))
	for _, name := range files {
		var f categoryFile
		if err := readJSON(filepath.Join(dir, name), &f); err != nil {
			return nil, err
		}
		if f.ID == "" || f.Name == "" {
			return nil, fmt.Errorf("%s: category id and name are required", name)
		}
		categories = append(categories, model.Category{
			ID:    f.ID,
			Name:  f.Name,
			Icon:  f.Icon,
			Games: f.Games,
		})
	}
	return categories, nil
}

// LoadPlayers читает игроков так же, как LoadCategories
func LoadPlayers(dir string) ([]model.Player, error) {
	files, err := readIndex(dir)
	if err != nil {
		return nil, err
	}

	players := make([]model.Player, 0, len(files))
	for _, name := range files {
		var f playerFile
		if err := readJSON(filepath.Join(dir, name), &f); err != nil {
			return nil, err
		}
		if f.ID == "" {
			return nil, fmt.Errorf("%s: player id is required", name)
		}
		players = append(players, model.Player{
			ID:     f.ID,
			Name:   f.Name,
			Avatar: f.Avatar,
			Score:  f.Score,
			Items:  f.Items,
		})
	}
	return players, nil
}

// Games - игры категории с идентификаторами вида <категория>-<название>
func Games(c model.Category) []model.Game {
	games := make([]model.Game, 0, len(c.Games))
	seen := make(map[string]struct{}, len(c.Games))
	for _, name := range c.Games {
		id := model.GameID(c.ID, name)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		games = append(games, model.Game{ID: id, Name: name, CategoryID: c.ID})
	}
	return games
}

// ImportCategories - upsert категорий и их игр одной транзакцией.
// Порядок отображения берется из позиции в срезе и в списке игр категории
func ImportCategories(ctx context.Context, deps Deps, categories []model.Category) (Stats, error) {
	var stats Stats
	err := deps.TxManager.Do(ctx, func(ctx context.Context) error {
		for i := range categories {
			c := categories[i]
			if err := deps.Categories.UpsertCategory(ctx, &c, i); err != nil {
				return fmt.Errorf("upsert category %s: %w", c.ID, err)
			}
			stats.Categories++

			for j, g := range Games(c) {
				if err := deps.Categories.UpsertGame(ctx, &g, j); err != nil {
					return fmt.Errorf("upsert game %s: %w", g.ID, err)
				}
				stats.Games++
			}
			log.Info().Str("category", c.Name).Int("games", len(c.Games)).Msg("category imported")
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func ImportPlayers(ctx context.Context, deps Deps, players []model.Player) (Stats, error) {
	var stats Stats
	err := deps.TxManager.Do(ctx, func(ctx context.Context) error {
		for i := range players {
			p := players[i]
			if err := deps.Players.UpsertPlayer(ctx, &p); err != nil {
				return fmt.Errorf("upsert player %s: %w", p.ID, err)
			}
			stats.Players++
			log.Info().Str("player", p.Name).Int("score", p.Score).Msg("player imported")
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// ResetWheels записывает колеса по умолчанию поверх сохраненных
func ResetWheels(ctx context.Context, deps Deps) (Stats, error) {
	wheels, err := deps.Wheels.Reset(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("reset wheels: %w", err)
	}
	return Stats{Wheels: len(wheels)}, nil
}

func readIndex(dir string) ([]string, error) {
	var idx index
	if err := readJSON(filepath.Join(dir, indexFile), &idx); err != nil {
		return nil, err
	}
	return idx.Files, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
