package env

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNewImportRulesFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
categories:
  valid: [Аниме, Кино, RPG]
  aliases:
    Anime: Аниме
  groups:
    Аниме: Духота
    Кино: Духота
  icons:
    Духота: "🎭"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := NewImportRulesFromYAML(path)
	if err != nil {
		t.Fatalf("NewImportRulesFromYAML: %v", err)
	}
	if !slices.Equal(rules.ValidCategories(), []string{"Аниме", "Кино", "RPG"}) {
		t.Errorf("valid %v", rules.ValidCategories())
	}
	if rules.Aliases()["Anime"] != "Аниме" || rules.Groups()["Кино"] != "Духота" {
		t.Errorf("aliases %v, groups %v", rules.Aliases(), rules.Groups())
	}
	if rules.Icon("Духота") != "🎭" || rules.Icon("RPG") != defaultCategoryIcon {
		t.Errorf("icons %q %q", rules.Icon("Духота"), rules.Icon("RPG"))
	}
}

func TestNewImportRulesFromYAML_ShippedConfig(t *testing.T) {
	rules, err := NewImportRulesFromYAML(filepath.Join("..", "..", "..", "config.yaml"))
	if err != nil {
		t.Fatalf("NewImportRulesFromYAML: %v", err)
	}

	valid := rules.ValidCategories()
	if len(valid) == 0 {
		t.Fatal("config.yaml has no valid categories")
	}
	// Каждый синоним и каждая группа должны ссылаться на допустимую категорию
	for alias, target := range rules.Aliases() {
		if !slices.Contains(valid, target) {
			t.Errorf("alias %q points to unknown %q", alias, target)
		}
	}
	for category := range rules.Groups() {
		if !slices.Contains(valid, category) {
			t.Errorf("group entry for unknown category %q", category)
		}
	}
}
