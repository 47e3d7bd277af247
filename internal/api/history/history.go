package history

import (
	"game_roulette/internal/api/httperr"
	"game_roulette/internal/converter"
	"game_roulette/internal/service"
	"game_roulette/pkg/resp"
	"net/http"
	"time"
)

type HandlerDeps struct {
	Serv service.HistoryService
	// Now - текущее время для подписей "5m ago", по умолчанию time.Now
	Now func() time.Time
}

type Handler struct {
	serv service.HistoryService
	now  func() time.Time
}

func NewHandler(deps HandlerDeps) *Handler {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{serv: deps.Serv, now: now}
}

// List - последние броски, новые первыми
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.List(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(entries, h.now()))
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Clear(r.Context()); err != nil {
		httperr.Write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
