package hub

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveBoard(t *testing.T, h *Hub, boardID uuid.UUID) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.Serve(boardID, conn)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool {
		return h.Count(boardID) == 1
	}, time.Second, 10*time.Millisecond)

	return conn
}

func TestBroadcast(t *testing.T) {
	h := New()
	boardID := uuid.New()
	otherID := uuid.New()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		id := boardID
		if r.URL.Query().Get("board") == "other" {
			id = otherID
		}
		h.Serve(id, conn)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	other, _, err := websocket.DefaultDialer.Dial(wsURL+"?board=other", nil)
	require.NoError(t, err)
	defer other.Close()

	require.Eventually(t, func() bool {
		return h.Count(boardID) == 1 && h.Count(otherID) == 1
	}, time.Second, 10*time.Millisecond)

	h.Broadcast(boardID, []byte(`<div id="tile-e4"></div>`))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, `<div id="tile-e4"></div>`, string(msg))

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err = other.ReadMessage()
	assert.Error(t, err, "other board must not receive the update")

	err = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return h.Count(boardID) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestBroadcastDropsFailedWatchers(t *testing.T) {
	h := New()
	h.writeWait = -time.Second
	boardID := uuid.New()

	conn := serveBoard(t, h, boardID)

	h.Broadcast(boardID, []byte(`<div id="tile-a1"></div>`))
	assert.Equal(t, 0, h.Count(boardID), "a watcher whose write failed must be dropped")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "the dropped watcher's connection must be closed")
}

func TestGoingAwayUnsubscribes(t *testing.T) {
	h := New()
	boardID := uuid.New()

	conn := serveBoard(t, h, boardID)

	err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return h.Count(boardID) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestIsExpectedClose(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantResult bool
	}{
		{name: "Normal closure", err: &websocket.CloseError{Code: websocket.CloseNormalClosure}, wantResult: true},
		{name: "Tab closed", err: &websocket.CloseError{Code: websocket.CloseGoingAway}, wantResult: true},
		{name: "Abnormal closure", err: &websocket.CloseError{Code: websocket.CloseAbnormalClosure}, wantResult: false},
		{name: "Protocol error", err: &websocket.CloseError{Code: websocket.CloseProtocolError}, wantResult: false},
		{name: "Not a close frame", err: errors.New("connection reset by peer"), wantResult: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isExpectedClose(tt.err); got != tt.wantResult {
				t.Errorf("isExpectedClose() = %v, want %v", got, tt.wantResult)
			}
		})
	}
}
