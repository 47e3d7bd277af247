package wheel

import (
	dto "game_roulette/internal/api/dto/wheel"
	"game_roulette/internal/api/httperr"
	"game_roulette/internal/converter"
	"game_roulette/internal/service"
	"game_roulette/pkg/req"
	"game_roulette/pkg/resp"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.WheelService
}

type Handler struct {
	serv service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// List - все пользовательские колеса, без сохраненных - колеса по умолчанию
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	wheels, err := h.serv.List(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelsResponse(wheels))
}

// Save заменяет весь набор колес
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[[]dto.Wheel](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	wheels, err := h.serv.Save(r.Context(), converter.ToWheelModels(requestBody))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelsResponse(wheels))
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.Wheel](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	wheel, err := h.serv.Add(r.Context(), converter.ToWheelModel(requestBody))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToWheelResponse(*wheel))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.PatchRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	wheel, err := h.serv.Update(r.Context(), chi.URLParam(r, "id"), converter.ToWheelPatch(requestBody))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelResponse(*wheel))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperr.Write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reset возвращает колеса по умолчанию
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	wheels, err := h.serv.Reset(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelsResponse(wheels))
}
