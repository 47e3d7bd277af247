package history

import "time"

type Entry struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Ago          string    `json:"ago"` // "Just now", "5m ago", ...
	Type         string    `json:"type"`
	Category     string    `json:"category,omitempty"`
	CategoryIcon string    `json:"category_icon,omitempty"`
	Game         string    `json:"game,omitempty"`
}
