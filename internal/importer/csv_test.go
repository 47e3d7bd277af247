package importer

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

type testRules struct {
	valid   []string
	aliases map[string]string
	groups  map[string]string
	icons   map[string]string
}

func (r testRules) ValidCategories() []string  { return r.valid }
func (r testRules) Aliases() map[string]string { return r.aliases }
func (r testRules) Groups() map[string]string  { return r.groups }

func (r testRules) Icon(category string) string {
	if icon, ok := r.icons[category]; ok {
		return icon
	}
	return "🎮"
}

func newTestRules() testRules {
	return testRules{
		valid: []string{"Стрелялка", "RPG", "Аниме", "Кино", "Хоррор"},
		aliases: map[string]string{
			"Стрелялки": "Стрелялка",
			"Shooter":   "Стрелялка",
			"Ужасы":     "Хорор",
		},
		groups: map[string]string{
			"Аниме":     "Духота",
			"Кино":      "Духота",
			"Стрелялка": "Стрелялка",
		},
		icons: map[string]string{
			"Стрелялка": "🔫",
			"Духота":    "🎭",
		},
	}
}

const csvHeader = " Игра ,Категория (такие же как во вкладке Категории),Комментарий\n"

func TestParseCategoriesCSV(t *testing.T) {
	data := csvHeader +
		"Doom,Стрелялки,\n" +
		"Perfect Blue,\"Кино, Аниме\",классика\n" +
		",RPG,строка без игры пропускается\n" +
		"Quake,Стрелялка\n" +
		"Evangelion,Аниме,\n" +
		"Gothic,RPG,\n"

	categories, err := ParseCategoriesCSV(strings.NewReader(data), newTestRules())
	if err != nil {
		t.Fatalf("ParseCategoriesCSV: %v", err)
	}

	// Категории по названию, игры в порядке строк
	want := []struct {
		id, name, icon string
		games          []string
	}{
		{"rpg", "RPG", "🎮", []string{"Gothic"}},
		{"duhota", "Духота", "🎭", []string{"Perfect Blue", "Evangelion"}},
		{"strelyalka", "Стрелялка", "🔫", []string{"Doom", "Quake"}},
	}
	if len(categories) != len(want) {
		t.Fatalf("got %d categories, want %d: %+v", len(categories), len(want), categories)
	}
	for i, w := range want {
		c := categories[i]
		if c.ID != w.id || c.Name != w.name || c.Icon != w.icon {
			t.Errorf("category %d = %s/%s/%s, want %s/%s/%s", i, c.ID, c.Name, c.Icon, w.id, w.name, w.icon)
		}
		if strings.Join(c.Games, "|") != strings.Join(w.games, "|") {
			t.Errorf("category %s games %v, want %v", w.name, c.Games, w.games)
		}
	}
}

func TestParseCategoriesCSV_Alias(t *testing.T) {
	data := csvHeader + "Half-Life,Shooter,\n"

	categories, err := ParseCategoriesCSV(strings.NewReader(data), newTestRules())
	if err != nil {
		t.Fatalf("ParseCategoriesCSV: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Стрелялка" || categories[0].Games[0] != "Half-Life" {
		t.Errorf("alias not resolved: %+v", categories)
	}
}

func TestParseCategoriesCSV_Grouped(t *testing.T) {
	data := csvHeader + "Akira,Аниме,\nStalker,Кино,\n"

	categories, err := ParseCategoriesCSV(strings.NewReader(data), newTestRules())
	if err != nil {
		t.Fatalf("ParseCategoriesCSV: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("grouped categories should merge, got %+v", categories)
	}
	c := categories[0]
	if c.ID != "duhota" || c.Name != "Духота" || c.Icon != "🎭" || len(c.Games) != 2 {
		t.Errorf("group %+v", c)
	}
}

func TestParseCategoriesCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown category",
			data:    csvHeader + "Doom,Стрелялки,\nTetris,Тетрисы,\n",
			wantErr: ErrUnknownCategory,
			wantMsg: `line 3 (game "Tetris")`,
		},
		{
			name:    "alias to invalid category",
			data:    csvHeader + "Silent Hill,Ужасы,\n",
			wantErr: ErrUnknownCategory,
			wantMsg: `"Хорор"`,
		},
		{
			name:    "empty category",
			data:    csvHeader + "Doom,  ,\n",
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "missing column",
			data:    "Игра,Жанр\nDoom,Стрелялка\n",
			wantMsg: "missing columns",
		},
		{
			name:    "empty file",
			data:    "",
			wantMsg: "empty csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCategoriesCSV(strings.NewReader(tt.data), newTestRules())
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadCategoriesCSV(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"games.csv": "\ufeff" + csvHeader + "Doom,Стрелялка,\n",
	})

	categories, err := LoadCategoriesCSV(filepath.Join(dir, "games.csv"), newTestRules())
	if err != nil {
		t.Fatalf("LoadCategoriesCSV: %v", err)
	}
	if len(categories) != 1 || categories[0].ID != "strelyalka" {
		t.Errorf("categories %+v", categories)
	}

	if _, err := LoadCategoriesCSV(filepath.Join(dir, "missing.csv"), newTestRules()); err == nil {
		t.Error("missing file should fail")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Духота", "duhota"},
		{"Джокерге", "dzhokerge"},
		{"Поинт энд клик", "point-end-klik"},
		{"  Старьё  ", "stare"},
		{"Щука & Ёж!", "schuka-ezh"},
		{"RPG", "rpg"},
		{"Cozy 2", "cozy-2"},
		{"Экшн-шутер", "ekshn-shuter"},
		{"a ь b", "a-b"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
