package player

import (
	"game_roulette/internal/model"
	"testing"
)

func TestTileAt_Types(t *testing.T) {
	cases := []struct {
		n    int
		typ  model.TileType
		desc string
	}{
		{-40, model.TileMinus, "Minus 40 points!"},
		{-1, model.TileMinus, "Minus 1 points!"},
		{0, model.TileNormal, ""},
		{1, model.TileNormal, ""},
		{5, model.TileShiny, "Shiny tile - special bonus!"},
		{80, model.TileShiny, "Shiny tile - special bonus!"},
		{79, model.TileNormal, ""},
		{81, model.TileRed, "Danger zone!"},
		{85, model.TileRed, "Danger zone!"},
		{100, model.TileRed, "Danger zone!"},
	}
	for _, c := range cases {
		tile := TileAt(c.n)
		if tile.Type != c.typ || tile.Description != c.desc {
			t.Errorf("TileAt(%d) = %s %q, want %s %q", c.n, tile.Type, tile.Description, c.typ, c.desc)
		}
	}
	if v := TileAt(-7).Value; v != -7 {
		t.Errorf("minus tile value %d, want -7", v)
	}
	if l := TileAt(10).Label; l != "★" {
		t.Errorf("shiny label %q", l)
	}
}

func TestTileAt_Clamps(t *testing.T) {
	if n := TileAt(150).Number; n != MaxPosition {
		t.Errorf("TileAt(150) = %d", n)
	}
	if n := TileAt(-99).Number; n != MinPosition {
		t.Errorf("TileAt(-99) = %d", n)
	}
}

func TestBoard_SnakeLayout(t *testing.T) {
	board := Board()
	if len(board) != 141 {
		t.Fatalf("board has %d tiles, want 141", len(board))
	}

	pos := func(n int) model.CellPosition { return board[n-MinPosition].Position }
	cases := map[int]model.CellPosition{
		1:   {Row: 9, Col: 0},
		10:  {Row: 9, Col: 9},
		11:  {Row: 8, Col: 9},
		20:  {Row: 8, Col: 0},
		21:  {Row: 7, Col: 0},
		91:  {Row: 0, Col: 9},
		100: {Row: 0, Col: 0},
		0:   {Row: 10, Col: 0},
		-1:  {Row: 11, Col: 0},
		-10: {Row: 11, Col: 9},
		-11: {Row: 12, Col: 0},
		-40: {Row: 14, Col: 9},
	}
	for n, want := range cases {
		if got := pos(n); got != want {
			t.Errorf("cell %d at %+v, want %+v", n, got, want)
		}
	}

	seen := make(map[model.CellPosition]int)
	for _, tile := range board {
		if prev, ok := seen[tile.Position]; ok {
			t.Fatalf("cells %d and %d share %+v", prev, tile.Number, tile.Position)
		}
		seen[tile.Position] = tile.Number
	}
}
