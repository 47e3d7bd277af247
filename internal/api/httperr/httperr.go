package httperr

import (
	"errors"
	"game_roulette/internal/repository"
	"game_roulette/internal/service/auth"
	"game_roulette/internal/service/player"
	"game_roulette/internal/service/roll"
	"game_roulette/internal/service/wheel"
	"game_roulette/pkg/resp"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Status - HTTP статус для ошибки сервиса
func Status(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, roll.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, roll.ErrNothingToRoll), errors.Is(err, roll.ErrNoCategory):
		return http.StatusUnprocessableEntity
	case errors.Is(err, wheel.ErrInvalidWheel),
		errors.Is(err, player.ErrOutOfBoard),
		errors.Is(err, player.ErrGameRequired):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Write - отвечает ошибкой. Внутренние ошибки логируются, клиенту уходит общий текст
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}

// BadRequest - тело запроса не разобралось
func BadRequest(w http.ResponseWriter, err error) {
	resp.WriteError(w, http.StatusBadRequest, err.Error())
}
