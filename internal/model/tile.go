package model

// TileType - тип клетки на поле
type TileType string

const (
	TileNormal TileType = "normal"
	TileShiny  TileType = "shiny"
	TileRed    TileType = "red"
	TileMinus  TileType = "minus"
)

// Tile - клетка поля
type Tile struct {
	Number      int
	Type        TileType
	Label       string
	Description string
	Value       int
	Position    CellPosition
}

// CellPosition - место клетки в сетке змейкой
type CellPosition struct {
	Row int
	Col int
}
