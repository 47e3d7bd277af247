package roll

import (
	"game_roulette/internal/model"
	"game_roulette/internal/spin"
	"sort"
)

// State - снимок всех трех колес и выбора
func (s *serv) State() model.RouletteState {
	state := model.RouletteState{
		Category: toWheelFrame(s.categoryWheel.Snapshot(), categoryEntry),
		Game:     toWheelFrame(s.gameWheel.Snapshot(), gameEntry),
		Custom:   toWheelFrame(s.customWheel.Snapshot(), optionEntry),
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if s.selected != nil {
		selected := *s.selected
		state.SelectedCategory = &selected
	}
	state.DisabledCategories = make([]string, 0, len(s.disabled))
	for id := range s.disabled {
		state.DisabledCategories = append(state.DisabledCategories, id)
	}
	sort.Strings(state.DisabledCategories)

	state.GameResult = s.gameResult
	if s.custom != nil {
		state.CustomWheelID = s.custom.ID
	}
	if s.customResult != nil {
		result := *s.customResult
		state.CustomResult = &result
	}

	return state
}

func toWheelFrame[T any](f spin.Frame[T], conv func(T) model.WheelEntry) model.WheelFrame {
	out := model.WheelFrame{
		Session:  f.Session,
		Index:    f.Index,
		Speed:    f.Speed,
		Elapsed:  f.Elapsed,
		Spinning: f.Spinning,
		Settled:  f.Settled,
		Empty:    f.Empty,
	}
	if len(f.Window) > 0 {
		out.Window = make([]model.WheelEntry, len(f.Window))
		for i, item := range f.Window {
			out.Window[i] = conv(item)
		}
	}
	return out
}

func categoryEntry(c model.Category) model.WheelEntry {
	return model.WheelEntry{ID: c.ID, Name: c.Name, Icon: c.Icon}
}

func gameEntry(g model.Game) model.WheelEntry {
	return model.WheelEntry{ID: g.ID, Name: g.Name}
}

func optionEntry(o model.WheelOption) model.WheelEntry {
	return model.WheelEntry{ID: o.ID, Name: o.Name, Icon: o.Icon}
}
