package auth

import (
	dto "game_roulette/internal/api/dto/auth"
	"game_roulette/internal/api/httperr"
	"game_roulette/internal/service"
	"game_roulette/pkg/req"
	"game_roulette/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Login проверяет пароль ведущего и возвращает access_token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Password)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		AccessToken: data.AccessToken,
		ExpiresIn:   data.ExpiresIn,
	})
}
