package model

import (
	"strings"
	"time"
)

// Category - категория игр (одна позиция на колесе категорий)
type Category struct {
	ID        string
	Name      string
	Icon      string
	Games     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Game - игра внутри категории
type Game struct {
	ID         string
	Name       string
	CategoryID string
}

// GameID - идентификатор игры: <категория>-<название через дефис в нижнем регистре>
func GameID(categoryID, name string) string {
	return categoryID + "-" + strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
