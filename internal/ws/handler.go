package ws

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Handler serves the dashboard push channel. An answer_update frame from
// an interview client is rebroadcast to every observer as a
// candidate_update event. Nothing here drives interview logic.
type Handler struct {
	registry Registry
	logger   *zap.Logger
}

func NewHandler(registry Registry, logger *zap.Logger) *Handler {
	return &Handler{registry: registry, logger: logger}
}

type frame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	client := NewClient(conn)
	h.registry.Register(sessionID, client)
	defer h.registry.Unregister(sessionID)

	h.logger.Debug("Push channel connected", zap.String("session_id", sessionID))

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var f frame
		if err := json.Unmarshal(msg, &f); err != nil {
			continue
		}
		if f.Type == "answer_update" {
			h.registry.Broadcast(Event{
				Type:      "candidate_update",
				SessionID: sessionID,
				Data:      f.Data,
			})
		}
	}
}
