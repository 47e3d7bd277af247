package roll

import (
	"game_roulette/internal/api/httperr"
	"game_roulette/internal/converter"
	"game_roulette/internal/service"
	"game_roulette/pkg/resp"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type HandlerDeps struct {
	Serv service.RollService
	// Origins - разрешенные Origin для WebSocket, "*" или пусто - любые
	Origins []string
}

type Handler struct {
	serv     service.RollService
	upgrader websocket.Upgrader
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv: deps.Serv,
		upgrader: websocket.Upgrader{
			ReadBufferSize:   1024,
			WriteBufferSize:  4096,
			HandshakeTimeout: 10 * time.Second,
			CheckOrigin:      checkOrigin(deps.Origins),
		},
	}
}

// RollCategory - запуск колеса категорий, результат придет в поток
func (h *Handler) RollCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.RollCategory(r.Context()); err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToStateResponse(h.serv.State()))
}

func (h *Handler) RollGame(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.RollGame(r.Context()); err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToStateResponse(h.serv.State()))
}

func (h *Handler) RollCustom(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.RollCustom(r.Context(), chi.URLParam(r, "wheelID")); err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToStateResponse(h.serv.State()))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.serv.State()))
}

// Categories - список категорий с отметкой выключенных
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.serv.Categories(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	disabled := h.serv.State().DisabledCategories
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCategoriesResponse(categories, disabled))
}

func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	games, err := h.serv.Games(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGamesResponse(games))
}

func (h *Handler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	if _, err := h.serv.SelectCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.serv.State()))
}

func (h *Handler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.serv.Games(r.Context(), id); err != nil {
		httperr.Write(w, r, err)
		return
	}
	disabled := h.serv.ToggleCategory(id)
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToToggleResponse(id, disabled))
}
