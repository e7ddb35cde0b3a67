package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // deployment fronts this with its own auth
	},
}

// wsIncoming is a message from the client.
type wsIncoming struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// wsOutgoing is a message to the client. Each execute request gets exactly
// one reply; there is no partial-output streaming.
type wsOutgoing struct {
	Type   string  `json:"type"`
	Output string  `json:"output,omitempty"`
	Reward float64 `json:"reward"`
	Error  string  `json:"error,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg wsIncoming
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return
			}
			log.Printf("websocket read error: %v", err)
			return
		}

		if msg.Type != "execute" || msg.Code == "" {
			wsWriteJSON(conn, wsOutgoing{Type: "error", Error: "invalid message"})
			continue
		}

		// The request context dies with the HTTP upgrade; executions are
		// bounded by the sandbox timeout instead.
		output, reward, _ := s.interp.Execute(context.Background(), id, msg.Code)

		if err := s.store.RecordExecution(context.Background(), id); err != nil {
			logStoreError("record execution", id, err)
		}

		wsWriteJSON(conn, wsOutgoing{Type: "result", Output: output, Reward: reward})
	}
}

func wsWriteJSON(conn *websocket.Conn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("websocket marshal error: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("websocket write error: %v", err)
	}
}

func logStoreError(op, id string, err error) {
	log.Printf("storage: %s for session %s: %v", op, id, err)
}
