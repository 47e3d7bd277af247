package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"game_roulette/internal/config"
	"game_roulette/internal/model"
	"io"
	"os"
	"slices"
	"strings"
)

// Колонки выгрузки таблицы игр
const (
	csvGameColumn     = "Игра"
	csvCategoryColumn = "Категория (такие же как во вкладке Категории)"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrEmptyCategory   = errors.New("empty category")
)

// LoadCategoriesCSV читает выгрузку таблицы игр и собирает из нее категории
func LoadCategoriesCSV(path string, rules config.ImportRules) ([]model.Category, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	categories, err := ParseCategoriesCSV(f, rules)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return categories, nil
}

// ParseCategoriesCSV - строка таблицы дает одну игру. Категория строки сводится к допустимой
// через синонимы и затем к итоговой группе. Категории идут по названию, игры в порядке строк
func ParseCategoriesCSV(r io.Reader, rules config.ImportRules) ([]model.Category, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty csv")
		}
		return nil, err
	}
	gameCol, catCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case csvGameColumn:
			gameCol = i
		case csvCategoryColumn:
			catCol = i
		}
	}
	if gameCol < 0 || catCol < 0 {
		return nil, fmt.Errorf("missing columns %q and %q, found %q", csvGameColumn, csvCategoryColumn, header)
	}

	games := make(map[string][]string)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		game := strings.TrimSpace(cell(record, gameCol))
		if game == "" {
			continue
		}
		category, err := resolveCategory(cleanCategory(cell(record, catCol)), rules)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d (game %q): %w", line, game, err)
		}

		final := groupCategory(category, rules)
		games[final] = append(games[final], game)
	}

	names := make([]string, 0, len(games))
	for name := range games {
		names = append(names, name)
	}
	slices.Sort(names)

	categories := make([]model.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, model.Category{
			ID:    Slugify(name),
			Name:  name,
			Icon:  rules.Icon(name),
			Games: games[name],
		})
	}
	return categories, nil
}

func cell(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

// cleanCategory - в ячейке может быть несколько категорий через запятую, берем первую
func cleanCategory(raw string) string {
	first, _, _ := strings.Cut(raw, ",")
	return strings.TrimSpace(first)
}

func resolveCategory(raw string, rules config.ImportRules) (string, error) {
	if raw == "" {
		return "", ErrEmptyCategory
	}

	valid := rules.ValidCategories()
	if slices.Contains(valid, raw) {
		return raw, nil
	}
	if mapped, ok := rules.Aliases()[raw]; ok {
		if slices.Contains(valid, mapped) {
			return mapped, nil
		}
		return "", fmt.Errorf("%w: alias %q points to %q, which is not a valid category", ErrUnknownCategory, raw, mapped)
	}
	return "", fmt.Errorf("%w %q: not valid and has no alias", ErrUnknownCategory, raw)
}

// groupCategory - категория без группы остается сама собой
func groupCategory(category string, rules config.ImportRules) string {
	if group, ok := rules.Groups()[category]; ok {
		return group
	}
	return category
}
