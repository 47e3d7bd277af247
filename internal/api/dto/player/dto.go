package player

type Tile struct {
	Number      int    `json:"number"`
	Type        string `json:"type"` // normal | shiny | red | minus
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Value       int    `json:"value,omitempty"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
}

type Player struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Avatar            string   `json:"avatar"`
	Score             int      `json:"score"` // Позиция на поле
	Items             []string `json:"items"`
	CurrentGameID     *string  `json:"current_game_id"`
	CurrentCategoryID *string  `json:"current_category_id"`
	Tile              Tile     `json:"tile"`
}

type MoveRequest struct {
	Delta int `json:"delta"` // На сколько клеток сдвинуть, может быть отрицательным
}

type PositionRequest struct {
	Position int `json:"position"`
}

type AssignGameRequest struct {
	CategoryID string `json:"category_id"`
	Game       string `json:"game"`
}

type MoveResponse struct {
	Player Player `json:"player"`
	From   int    `json:"from"`
	Tile   Tile   `json:"tile"`
}

// BoardResponse - поле и игроки на нем
type BoardResponse struct {
	Tiles   []Tile   `json:"tiles"`
	Players []Player `json:"players"`
}
