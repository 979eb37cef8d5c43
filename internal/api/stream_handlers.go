package api

import (
	"net/http"
	"time"

	"github.com/dhanush7123/sanskrit-spark/internal/logger"
	"github.com/dhanush7123/sanskrit-spark/internal/quiz"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const streamWriteWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleSessionStream pushes the session view over a websocket once per
// interval until the client goes away or the session is gone. The stream
// ends with a normal close after the result view has been sent.
func (s *Server) handleSessionStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)
	id := chi.URLParam(r, "id")

	if _, err := s.QuizService.GetSession(ctx, id); err != nil {
		handleError(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	log.Debug("session stream opened: id=%s", id)

	// The server's read timeout still applies to the hijacked connection.
	_ = conn.SetReadDeadline(time.Time{})
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	interval := s.StreamInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		view, err := s.QuizService.GetSession(ctx, id)
		if err != nil {
			closeStream(conn, "session closed")
			return
		}

		conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteJSON(view); err != nil {
			log.Debug("session stream write failed: %v", err)
			return
		}
		if view.Phase == quiz.PhaseResult {
			closeStream(conn, "quiz finished")
			return
		}

		select {
		case <-closed:
			log.Debug("session stream closed by client: id=%s", id)
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func closeStream(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(streamWriteWait))
}
