package importer

import (
	"context"
	"errors"
	"game_roulette/internal/model"
	"os"
	"path/filepath"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

type fakeCategories struct {
	categories []model.Category
	games      []model.Game
	// order - позиции, с которыми пришли записи: "cat:<id>" и "game:<id>"
	order  map[string]int
	failOn string
}

func (f *fakeCategories) remember(key string, order int) {
	if f.order == nil {
		f.order = make(map[string]int)
	}
	f.order[key] = order
}

func (f *fakeCategories) ListCategories(context.Context) ([]model.Category, error) {
	return f.categories, nil
}

func (f *fakeCategories) GetCategory(context.Context, string) (*model.Category, error) {
	return nil, nil
}

func (f *fakeCategories) ListGamesByCategory(context.Context, string) ([]model.Game, error) {
	return nil, nil
}

func (f *fakeCategories) UpsertCategory(_ context.Context, c *model.Category, order int) error {
	if c.ID == f.failOn {
		return errors.New("boom")
	}
	f.categories = append(f.categories, *c)
	f.remember("cat:"+c.ID, order)
	return nil
}

func (f *fakeCategories) UpsertGame(_ context.Context, g *model.Game, order int) error {
	f.games = append(f.games, *g)
	f.remember("game:"+g.ID, order)
	return nil
}

type passTx struct{}

func (passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

func (passTx) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestLoadCategories(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"_index.json": `{"files": ["rpg.json", "coop.json"]}`,
		"rpg.json":    `{"id": "rpg", "name": "RPG", "icon": "⚔️", "games": ["Baldur's Gate 3", "Disco Elysium"]}`,
		"coop.json":   `{"id": "coop", "name": "Кооп", "icon": "🤝", "games": []}`,
	})

	categories, err := LoadCategories(dir)
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(categories))
	}
	if categories[0].ID != "rpg" || len(categories[0].Games) != 2 {
		t.Errorf("first category %+v", categories[0])
	}
	if categories[1].Name != "Кооп" {
		t.Errorf("index order not kept: %+v", categories[1])
	}
}

func TestLoadCategories_Errors(t *testing.T) {
	if _, err := LoadCategories(t.TempDir()); err == nil {
		t.Error("missing index should fail")
	}

	dir := writeFiles(t, map[string]string{
		"_index.json": `{"files": ["bad.json"]}`,
		"bad.json":    `{"name": "No id"}`,
	})
	if _, err := LoadCategories(dir); err == nil {
		t.Error("category without id should fail")
	}
}

func TestLoadPlayers(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"_index.json": `{"files": ["anna.json"]}`,
		"anna.json":   `{"id": "anna", "name": "Anna", "avatar": "🦊", "score": 12, "items": ["shield"]}`,
	})

	players, err := LoadPlayers(dir)
	if err != nil {
		t.Fatalf("LoadPlayers: %v", err)
	}
	if len(players) != 1 || players[0].Score != 12 || players[0].Items[0] != "shield" {
		t.Errorf("players %+v", players)
	}
}

func TestGames_IDsAndDuplicates(t *testing.T) {
	games := Games(model.Category{ID: "rpg", Games: []string{"Disco  Elysium", "disco elysium", "Gothic"}})
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2: %+v", len(games), games)
	}
	if games[0].ID != "rpg-disco-elysium" || games[0].CategoryID != "rpg" {
		t.Errorf("first game %+v", games[0])
	}
	if games[1].ID != "rpg-gothic" {
		t.Errorf("second game %+v", games[1])
	}
}

func TestImportCategories(t *testing.T) {
	repo := &fakeCategories{}
	deps := Deps{Categories: repo, TxManager: passTx{}}

	stats, err := ImportCategories(context.Background(), deps, []model.Category{
		{ID: "rpg", Name: "RPG", Games: []string{"Gothic", "Risen"}},
		{ID: "coop", Name: "Кооп", Games: []string{"It Takes Two"}},
	})
	if err != nil {
		t.Fatalf("ImportCategories: %v", err)
	}
	if stats.Categories != 2 || stats.Games != 3 {
		t.Errorf("stats %+v", stats)
	}
	if len(repo.games) != 3 || repo.games[2].ID != "coop-it-takes-two" {
		t.Errorf("games %+v", repo.games)
	}

	repo.failOn = "bad"
	if _, err := ImportCategories(context.Background(), deps, []model.Category{{ID: "bad", Name: "Bad"}}); err == nil {
		t.Error("repository error should be returned")
	}
}

func TestImportCategories_KeepsFileOrder(t *testing.T) {
	repo := &fakeCategories{}
	deps := Deps{Categories: repo, TxManager: passTx{}}

	// Не по алфавиту: порядок задают файл и список игр
	_, err := ImportCategories(context.Background(), deps, []model.Category{
		{ID: "words", Name: "Слова", Games: []string{"Шляпа", "Alias"}},
		{ID: "cards", Name: "Карты", Games: []string{"Uno", "Poker", "Durak"}},
	})
	if err != nil {
		t.Fatalf("ImportCategories: %v", err)
	}

	want := map[string]int{
		"cat:words":        0,
		"cat:cards":        1,
		"game:words-шляпа": 0,
		"game:words-alias": 1,
		"game:cards-uno":   0,
		"game:cards-poker": 1,
		"game:cards-durak": 2,
	}
	for key, order := range want {
		got, ok := repo.order[key]
		if !ok {
			t.Errorf("%s was not imported, have %v", key, repo.order)
			continue
		}
		if got != order {
			t.Errorf("%s order %d, want %d", key, got, order)
		}
	}
}
