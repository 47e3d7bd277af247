package converter

import (
	dto "game_roulette/internal/api/dto/player"
	"game_roulette/internal/model"
)

// ToPlayerResponse - игрок вместе с клеткой, на которой стоит
func ToPlayerResponse(p model.Player, tile model.Tile) dto.Player {
	items := p.Items
	if items == nil {
		items = []string{}
	}
	return dto.Player{
		ID:                p.ID,
		Name:              p.Name,
		Avatar:            p.Avatar,
		Score:             p.Score,
		Items:             items,
		CurrentGameID:     p.CurrentGameID,
		CurrentCategoryID: p.CurrentCategoryID,
		Tile:              ToTileResponse(tile),
	}
}

func ToTileResponse(t model.Tile) dto.Tile {
	return dto.Tile{
		Number:      t.Number,
		Type:        string(t.Type),
		Label:       t.Label,
		Description: t.Description,
		Value:       t.Value,
		Row:         t.Position.Row,
		Col:         t.Position.Col,
	}
}

func ToTilesResponse(tiles []model.Tile) []dto.Tile {
	result := make([]dto.Tile, len(tiles))
	for i, t := range tiles {
		result[i] = ToTileResponse(t)
	}
	return result
}

func ToMoveResponse(m model.PlayerMove) dto.MoveResponse {
	return dto.MoveResponse{
		Player: ToPlayerResponse(*m.Player, m.Tile),
		From:   m.From,
		Tile:   ToTileResponse(m.Tile),
	}
}
