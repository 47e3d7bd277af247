package roll

import (
	"context"
	"fmt"
	"game_roulette/internal/model"
)

// Categories - все категории из хранилища
func (s *serv) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Games - игры категории, repository.ErrNotFound для неизвестной категории
func (s *serv) Games(ctx context.Context, categoryID string) ([]model.Game, error) {
	if _, err := s.categories.GetCategory(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("get category %s: %w", categoryID, err)
	}
	games, err := s.categories.ListGamesByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list games of %s: %w", categoryID, err)
	}
	return games, nil
}

// SelectCategory - ручной выбор категории без броска
func (s *serv) SelectCategory(ctx context.Context, id string) (*model.Category, error) {
	s.rollMu.Lock()
	defer s.rollMu.Unlock()

	if s.mainBusy() {
		return nil, ErrBusy
	}

	category, err := s.categories.GetCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}

	s.stateMu.Lock()
	s.selected = category
	s.gameResult = ""
	s.gameCategory = nil
	s.stateMu.Unlock()

	s.log.Info().Str("category", category.Name).Msg("category selected")
	return category, nil
}

// ToggleCategory - выключает категорию из колеса или включает обратно.
// Возвращает true, если категория теперь выключена
func (s *serv) ToggleCategory(id string) bool {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if _, ok := s.disabled[id]; ok {
		delete(s.disabled, id)
		return false
	}
	s.disabled[id] = struct{}{}
	return true
}
