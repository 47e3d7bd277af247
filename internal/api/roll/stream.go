package roll

import (
	dto "game_roulette/internal/api/dto/roll"
	"game_roulette/internal/converter"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Stream - кадры всех колес через WebSocket.
// Первым сообщением уходит текущее состояние, дальше события колес по мере публикации.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам ответил клиенту
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	events := h.serv.Subscribe()
	defer h.serv.Unsubscribe(events)

	log.Debug().Str("remote", r.RemoteAddr).Msg("stream connected")

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = conn.WriteJSON(dto.StateMessage{
		Type:  "state",
		State: converter.ToStateResponse(h.serv.State()),
	})
	if err != nil {
		log.Debug().Err(err).Msg("failed to send initial state")
		return
	}

	done := make(chan struct{})
	go readLoop(conn, done)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				// Рулетка остановлена
				_ = conn.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait),
				)
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(converter.ToRollEventResponse(ev)); err != nil {
				log.Debug().Err(err).Msg("stream write failed")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// readLoop читает только служебные сообщения, входящие данные игнорируются
func readLoop(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("stream closed unexpectedly")
			} else {
				log.Debug().Err(err).Msg("stream disconnected")
			}
			return
		}
	}
}

func checkOrigin(origins []string) func(r *http.Request) bool {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// Не браузер
		if origin == "" {
			return true
		}
		return slices.Contains(origins, origin)
	}
}
