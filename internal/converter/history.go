package converter

import (
	"fmt"
	dto "game_roulette/internal/api/dto/history"
	"game_roulette/internal/model"
	"time"
)

func ToHistoryResponse(entries []model.RollEntry, now time.Time) []dto.Entry {
	result := make([]dto.Entry, len(entries))
	for i, e := range entries {
		result[i] = dto.Entry{
			ID:           e.ID,
			Timestamp:    e.Timestamp,
			Ago:          RelativeTime(e.Timestamp, now),
			Type:         string(e.Type),
			Category:     e.Category,
			CategoryIcon: e.CategoryIcon,
			Game:         e.Game,
		}
	}
	return result
}

// RelativeTime - подпись вида "5m ago". Старше недели - просто дата
func RelativeTime(ts, now time.Time) string {
	diff := now.Sub(ts)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	default:
		return ts.Format(time.DateOnly)
	}
}
