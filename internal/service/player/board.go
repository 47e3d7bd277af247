package player

import (
	"fmt"
	"game_roulette/internal/model"
)

const (
	// MinPosition - самая дальняя минусовая клетка
	MinPosition = -40
	// MaxPosition - финиш
	MaxPosition = 100

	cellsPerRow   = 10
	shinyEvery    = 5
	lastShinyTile = 80
	firstRedTile  = 81
)

// TileAt - клетка поля по номеру. Номер вне поля прижимается к краю
func TileAt(n int) model.Tile {
	n = clamp(n)
	tile := model.Tile{
		Number:   n,
		Type:     model.TileNormal,
		Position: cellPosition(n),
	}

	switch {
	case n < 0:
		tile.Type = model.TileMinus
		tile.Label = "−"
		tile.Description = fmt.Sprintf("Minus %d points!", -n)
		tile.Value = n
	case n >= firstRedTile:
		tile.Type = model.TileRed
		tile.Label = "⚠"
		tile.Description = "Danger zone!"
	case n > 0 && n <= lastShinyTile && n%shinyEvery == 0:
		tile.Type = model.TileShiny
		tile.Label = "★"
		tile.Description = "Shiny tile - special bonus!"
	}

	return tile
}

// Board - все клетки поля от MinPosition до MaxPosition
func Board() []model.Tile {
	tiles := make([]model.Tile, 0, MaxPosition-MinPosition+1)
	for n := MinPosition; n <= MaxPosition; n++ {
		tiles = append(tiles, TileAt(n))
	}
	return tiles
}

// cellPosition - место клетки в сетке.
// Клетки 1..100 идут змейкой снизу вверх по 10 в ряд, ряд 0 - верхний (91..100).
// Под ними отдельно клетка 0 и полосы минусовых клеток -1..-40 слева направо
func cellPosition(n int) model.CellPosition {
	rows := MaxPosition / cellsPerRow
	switch {
	case n > 0:
		r := (n - 1) / cellsPerRow
		col := (n - 1) % cellsPerRow
		if r%2 == 1 {
			col = cellsPerRow - 1 - col
		}
		return model.CellPosition{Row: rows - 1 - r, Col: col}
	case n == 0:
		return model.CellPosition{Row: rows, Col: 0}
	default:
		k := -n - 1
		return model.CellPosition{Row: rows + 1 + k/cellsPerRow, Col: k % cellsPerRow}
	}
}

func clamp(n int) int {
	return min(max(n, MinPosition), MaxPosition)
}
