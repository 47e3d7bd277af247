package roll

import (
	"context"
	"fmt"
	"game_roulette/internal/model"
	"game_roulette/internal/spin"
)

// RollCategory - крутит колесо категорий по включенным категориям.
// Нельзя, пока крутится колесо категорий или игр
func (s *serv) RollCategory(ctx context.Context) error {
	s.rollMu.Lock()
	defer s.rollMu.Unlock()

	if s.mainBusy() {
		return ErrBusy
	}

	// Получаем категории и убираем выключенные
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	enabled := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if !s.isDisabled(c.ID) {
			enabled = append(enabled, c)
		}
	}
	if len(enabled) == 0 {
		return ErrNothingToRoll
	}

	s.categoryWheel.SetItems(enabled)

	// Новый бросок категории сбрасывает выбор и прошлую игру
	s.stateMu.Lock()
	s.selected = nil
	s.gameResult = ""
	s.gameCategory = nil
	s.stateMu.Unlock()

	if !s.categoryWheel.Press() {
		return ErrBusy
	}
	return nil
}

// RollGame - крутит колесо игр выбранной категории
func (s *serv) RollGame(ctx context.Context) error {
	s.rollMu.Lock()
	defer s.rollMu.Unlock()

	s.stateMu.Lock()
	selected := s.selected
	s.stateMu.Unlock()
	if selected == nil {
		return ErrNoCategory
	}
	if s.mainBusy() {
		return ErrBusy
	}

	games, err := s.categories.ListGamesByCategory(ctx, selected.ID)
	if err != nil {
		return fmt.Errorf("list games of %s: %w", selected.ID, err)
	}
	if len(games) == 0 {
		return ErrNothingToRoll
	}

	s.gameWheel.SetItems(games)

	s.stateMu.Lock()
	s.gameResult = ""
	s.gameCategory = selected
	s.stateMu.Unlock()

	if !s.gameWheel.Press() {
		return ErrBusy
	}
	return nil
}

// RollCustom - крутит пользовательское колесо. Не зависит от колес категорий и игр
func (s *serv) RollCustom(ctx context.Context, wheelID string) error {
	s.rollMu.Lock()
	defer s.rollMu.Unlock()

	if s.customWheel.State() == spin.Spinning {
		return ErrBusy
	}

	wheel, err := s.wheels.Get(ctx, wheelID)
	if err != nil {
		return fmt.Errorf("get wheel %s: %w", wheelID, err)
	}
	if len(wheel.Options) == 0 {
		return ErrNothingToRoll
	}

	s.customWheel.SetItems(wheel.Options)

	s.stateMu.Lock()
	s.custom = wheel
	s.customResult = nil
	s.stateMu.Unlock()

	if !s.customWheel.Press() {
		return ErrBusy
	}
	return nil
}

// mainBusy - колеса категорий и игр взаимно исключают друг друга
func (s *serv) mainBusy() bool {
	return s.categoryWheel.State() == spin.Spinning || s.gameWheel.State() == spin.Spinning
}
