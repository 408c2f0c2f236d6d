package kds_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-concierge/kds"
)

func TestHubBroadcast(t *testing.T) {
	hub := kds.NewHub()
	upgrader := websocket.Upgrader{}
	registered := make(chan struct{}, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(conn, "dashboard")
		registered <- struct{}{}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(conn)
				return
			}
		}
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("client was not registered")
	}
	assert.Equal(t, 1, hub.Count())

	hub.Broadcast("reservation_create", map[string]int{"table_number": 3})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Event string         `json:"event"`
		Data  map[string]int `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "reservation_create", msg.Event)
	assert.Equal(t, 3, msg.Data["table_number"])
}

func TestHubBroadcastWithoutClients(t *testing.T) {
	hub := kds.NewHub()
	assert.NotPanics(t, func() { hub.Broadcast("table_update", nil) })
	assert.Equal(t, 0, hub.Count())
}
