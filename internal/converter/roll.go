package converter

import (
	dto "game_roulette/internal/api/dto/roll"
	"game_roulette/internal/model"
	"slices"
)

func ToWheelEntryResponse(e model.WheelEntry) dto.WheelEntry {
	return dto.WheelEntry{ID: e.ID, Name: e.Name, Icon: e.Icon}
}

func ToWheelFrameResponse(f model.WheelFrame) dto.WheelFrame {
	return dto.WheelFrame{
		Session:   f.Session,
		Index:     f.Index,
		Window:    toWindow(f.Window),
		SpeedMs:   f.Speed.Milliseconds(),
		ElapsedMs: f.Elapsed.Milliseconds(),
		Spinning:  f.Spinning,
		Settled:   f.Settled,
		Empty:     f.Empty,
	}
}

func ToRollEventResponse(ev model.RollEvent) dto.RollEvent {
	out := dto.RollEvent{
		Wheel:     string(ev.Wheel),
		Type:      string(ev.Type),
		Session:   ev.Frame.Session,
		Index:     ev.Frame.Index,
		Window:    toWindow(ev.Frame.Window),
		SpeedMs:   ev.Frame.Speed.Milliseconds(),
		ElapsedMs: ev.Frame.Elapsed.Milliseconds(),
		Spinning:  ev.Frame.Spinning,
		Settled:   ev.Frame.Settled,
	}
	if ev.Item != nil {
		item := ToWheelEntryResponse(*ev.Item)
		out.Item = &item
	}
	return out
}

// ToCategoriesResponse - категории с отметкой, выключены ли они на колесе
func ToCategoriesResponse(categories []model.Category, disabled []string) []dto.Category {
	result := make([]dto.Category, len(categories))
	for i, c := range categories {
		result[i] = ToCategoryResponse(c, slices.Contains(disabled, c.ID))
	}
	return result
}

func ToCategoryResponse(c model.Category, disabled bool) dto.Category {
	games := c.Games
	if games == nil {
		games = []string{}
	}
	return dto.Category{
		ID:       c.ID,
		Name:     c.Name,
		Icon:     c.Icon,
		Games:    games,
		Disabled: disabled,
	}
}

func ToGamesResponse(games []model.Game) []dto.Game {
	result := make([]dto.Game, len(games))
	for i, g := range games {
		result[i] = dto.Game{ID: g.ID, Name: g.Name, CategoryID: g.CategoryID}
	}
	return result
}

func ToStateResponse(s model.RouletteState) dto.StateResponse {
	out := dto.StateResponse{
		Category:           ToWheelFrameResponse(s.Category),
		Game:               ToWheelFrameResponse(s.Game),
		Custom:             ToWheelFrameResponse(s.Custom),
		DisabledCategories: s.DisabledCategories,
		CustomWheelID:      s.CustomWheelID,
		GameResult:         s.GameResult,
	}
	if out.DisabledCategories == nil {
		out.DisabledCategories = []string{}
	}
	if s.SelectedCategory != nil {
		c := ToCategoryResponse(*s.SelectedCategory, slices.Contains(s.DisabledCategories, s.SelectedCategory.ID))
		out.SelectedCategory = &c
	}
	if s.CustomResult != nil {
		r := dto.WheelEntry{ID: s.CustomResult.ID, Name: s.CustomResult.Name, Icon: s.CustomResult.Icon}
		out.CustomResult = &r
	}
	return out
}

func toWindow(window []model.WheelEntry) []dto.WheelEntry {
	result := make([]dto.WheelEntry, len(window))
	for i, e := range window {
		result[i] = ToWheelEntryResponse(e)
	}
	return result
}

func ToToggleResponse(id string, disabled bool) dto.ToggleResponse {
	return dto.ToggleResponse{ID: id, Disabled: disabled}
}
