package model

import "time"

// Player - участник, Score - его позиция на поле
type Player struct {
	ID                string
	Name              string
	Avatar            string
	Score             int
	Items             []string
	CurrentGameID     *string
	CurrentCategoryID *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PlayerGame - запись о сыгранной игре
type PlayerGame struct {
	ID         string
	PlayerID   string
	GameName   string
	CategoryID string
	Score      int
	PlayedAt   time.Time
}

// PlayerMove - результат хода по полю
type PlayerMove struct {
	Player *Player
	From   int
	Tile   Tile
}
