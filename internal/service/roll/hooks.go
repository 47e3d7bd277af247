package roll

import (
	"game_roulette/internal/model"
	"game_roulette/internal/spin"
	"time"
)

// Обработчики колес вызываются из таймера планировщика.
// Внутри них нельзя брать rollMu и звать SetItems/Close

func (s *serv) categoryHooks() spin.Hooks[model.Category] {
	return spin.Hooks[model.Category]{
		OnFrame: func(f spin.Frame[model.Category]) {
			s.publishFrame(model.WheelCategory, toWheelFrame(f, categoryEntry))
		},
		OnSettled: func(c model.Category) {
			s.stateMu.Lock()
			selected := c
			s.selected = &selected
			s.stateMu.Unlock()

			s.log.Info().Str("category", c.Name).Msg("category rolled")
			s.publishSettled(model.WheelCategory, toWheelFrame(s.categoryWheel.Snapshot(), categoryEntry), categoryEntry(c))
			s.onRecorded(model.RollEntry{
				Timestamp:    time.Now(),
				Type:         model.RollCategory,
				Category:     c.Name,
				CategoryIcon: c.Icon,
			})
		},
		OnCancelled: func(uint64) {
			s.publishCancelled(model.WheelCategory, toWheelFrame(s.categoryWheel.Snapshot(), categoryEntry))
		},
	}
}

func (s *serv) gameHooks() spin.Hooks[model.Game] {
	return spin.Hooks[model.Game]{
		OnFrame: func(f spin.Frame[model.Game]) {
			s.publishFrame(model.WheelGame, toWheelFrame(f, gameEntry))
		},
		OnSettled: func(g model.Game) {
			s.stateMu.Lock()
			s.gameResult = g.Name
			category := s.gameCategory
			s.stateMu.Unlock()

			entry := model.RollEntry{
				Timestamp: time.Now(),
				Type:      model.RollGame,
				Game:      g.Name,
			}
			if category != nil {
				entry.Category = category.Name
				entry.CategoryIcon = category.Icon
			}

			s.log.Info().Str("category", entry.Category).Str("game", g.Name).Msg("game rolled")
			s.publishSettled(model.WheelGame, toWheelFrame(s.gameWheel.Snapshot(), gameEntry), gameEntry(g))
			s.onRecorded(entry)
		},
		OnCancelled: func(uint64) {
			s.publishCancelled(model.WheelGame, toWheelFrame(s.gameWheel.Snapshot(), gameEntry))
		},
	}
}

func (s *serv) customHooks() spin.Hooks[model.WheelOption] {
	return spin.Hooks[model.WheelOption]{
		OnFrame: func(f spin.Frame[model.WheelOption]) {
			s.publishFrame(model.WheelCustom, toWheelFrame(f, optionEntry))
		},
		OnSettled: func(o model.WheelOption) {
			s.stateMu.Lock()
			result := o
			s.customResult = &result
			wheel := s.custom
			s.stateMu.Unlock()

			entry := model.RollEntry{
				Timestamp: time.Now(),
				Type:      model.RollCustomOption,
				Game:      o.Name,
			}
			if wheel != nil {
				entry.Category = wheel.Name
				entry.CategoryIcon = wheel.Icon
			}

			s.log.Info().Str("wheel", entry.Category).Str("option", o.Name).Msg("custom wheel rolled")
			s.publishSettled(model.WheelCustom, toWheelFrame(s.customWheel.Snapshot(), optionEntry), optionEntry(o))
			s.onRecorded(entry)
		},
		OnCancelled: func(uint64) {
			s.publishCancelled(model.WheelCustom, toWheelFrame(s.customWheel.Snapshot(), optionEntry))
		},
	}
}

func (s *serv) publishFrame(kind model.WheelKind, f model.WheelFrame) {
	s.bus.Publish(model.RollEvent{Wheel: kind, Type: model.EventFrame, Frame: f})
}

// Итог броска и отмена доходят до подписчика даже при переполненном буфере
func (s *serv) publishSettled(kind model.WheelKind, f model.WheelFrame, item model.WheelEntry) {
	s.bus.PublishEvict(model.RollEvent{Wheel: kind, Type: model.EventSettled, Frame: f, Item: &item})
}

func (s *serv) publishCancelled(kind model.WheelKind, f model.WheelFrame) {
	s.bus.PublishEvict(model.RollEvent{Wheel: kind, Type: model.EventCancelled, Frame: f})
}
