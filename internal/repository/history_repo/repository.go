package history_repo

import (
	"context"
	"encoding/json"
	"errors"
	"game_roulette/internal/model"
	"game_roulette/internal/repository"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// DefaultLimit - сколько последних бросков храним
const DefaultLimit = 50

type repo struct {
	mu      sync.RWMutex
	path    string
	limit   int
	entries []model.RollEntry
}

// NewHistoryRepository - история в памяти с сохранением в JSON файл.
// Пустой path отключает файл. Если файл не читается, история начинается с нуля
func NewHistoryRepository(path string, limit int) repository.HistoryRepository {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	r := &repo{
		path:    path,
		limit:   limit,
		entries: make([]model.RollEntry, 0),
	}

	if path != "" {
		entries, err := load(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("failed to load roll history")
		} else {
			r.entries = trim(entries, limit)
		}
	}

	return r
}

// Add - добавляет запись в начало и отрезает все старше лимита
func (r *repo) Add(_ context.Context, entry model.RollEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]model.RollEntry, 0, len(r.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, r.entries...)
	entries = trim(entries, r.limit)

	if err := r.persist(entries); err != nil {
		return err
	}
	r.entries = entries
	return nil
}

// List - копия истории, новые первыми
func (r *repo) List(_ context.Context) ([]model.RollEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]model.RollEntry, 0, len(r.entries)), r.entries...), nil
}

func (r *repo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	empty := make([]model.RollEntry, 0)
	if err := r.persist(empty); err != nil {
		return err
	}
	r.entries = empty
	return nil
}

// persist - пишем во временный файл и переименовываем, чтобы не оставить полузаписанный JSON
func (r *repo) persist(entries []model.RollEntry) error {
	if r.path == "" {
		return nil
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := r.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

func load(path string) ([]model.RollEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var entries []model.RollEntry
	if err = json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func trim(entries []model.RollEntry, limit int) []model.RollEntry {
	if entries == nil {
		return make([]model.RollEntry, 0)
	}
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
