package main

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/NikolaTosic-sudo/chess-marks/internal/responses"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsHandler streams tile fragments of one board to the client.
func (cfg *appConfig) wsHandler(w http.ResponseWriter, r *http.Request) {
	boardId, err := parseBoardId(r)
	if err != nil {
		responses.RespondWithAnError(w, http.StatusBadRequest, "invalid board id", err)
		return
	}

	if _, err := cfg.annotations.Board(r.Context(), boardId); err != nil {
		respondWithServiceError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		responses.LogError("websocket upgrade failed", err)
		return
	}

	cfg.hub.Serve(boardId, conn)
}
