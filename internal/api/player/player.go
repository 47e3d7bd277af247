package player

import (
	dto "game_roulette/internal/api/dto/player"
	"game_roulette/internal/api/httperr"
	"game_roulette/internal/converter"
	"game_roulette/internal/service"
	playerServ "game_roulette/internal/service/player"
	"game_roulette/pkg/req"
	"game_roulette/pkg/resp"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.PlayerService
}

type Handler struct {
	serv service.PlayerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.serv.List(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	result := make([]dto.Player, len(players))
	for i, p := range players {
		result[i] = converter.ToPlayerResponse(p, playerServ.TileAt(p.Score))
	}
	resp.WriteJSONResponse(w, http.StatusOK, result)
}

// Board - все клетки поля и игроки на них
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	players, err := h.serv.List(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	out := dto.BoardResponse{
		Tiles:   converter.ToTilesResponse(h.serv.Board()),
		Players: make([]dto.Player, len(players)),
	}
	for i, p := range players {
		out.Players[i] = converter.ToPlayerResponse(p, playerServ.TileAt(p.Score))
	}
	resp.WriteJSONResponse(w, http.StatusOK, out)
}

// Move - сдвиг игрока на delta клеток, позиция обрезается по краям поля
func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.MoveRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	move, err := h.serv.Move(r.Context(), chi.URLParam(r, "id"), requestBody.Delta)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMoveResponse(*move))
}

func (h *Handler) SetPosition(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.PositionRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	move, err := h.serv.SetPosition(r.Context(), chi.URLParam(r, "id"), requestBody.Position)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMoveResponse(*move))
}

// AssignGame - выпавшая игра становится текущей для игрока и попадает в его список
func (h *Handler) AssignGame(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.AssignGameRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	p, err := h.serv.AssignGame(r.Context(), chi.URLParam(r, "id"), requestBody.CategoryID, requestBody.Game)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerResponse(*p, playerServ.TileAt(p.Score)))
}
