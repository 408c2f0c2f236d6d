package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-concierge/chatbot"
	"github.com/yeremiapane/restaurant-concierge/models"
	"github.com/yeremiapane/restaurant-concierge/testutil"
)

func TestChatBookingOverHTTP(t *testing.T) {
	r, db := setupRouter(t)
	testutil.SeedTables(t, db, 1, 2)

	w, env := doJSON(t, r, http.MethodPost, "/api/chat", map[string]interface{}{"message": "book a table"})
	require.Equal(t, http.StatusOK, w.Code)
	var turn chatbot.Turn
	require.NoError(t, json.Unmarshal(env.Data, &turn))
	require.NotEmpty(t, turn.SessionID)
	assert.Equal(t, chatbot.KindBookingName, turn.State)

	session := turn.SessionID
	for _, msg := range []string{"Alice", "2024-06-01", "19:00"} {
		w, env = doJSON(t, r, http.MethodPost, "/api/chat", map[string]interface{}{"session_id": session, "message": msg})
		require.Equal(t, http.StatusOK, w.Code)
	}
	require.NoError(t, json.Unmarshal(env.Data, &turn))
	assert.Equal(t, "Choose a table: 1, 2", turn.Reply)

	w, env = doJSON(t, r, http.MethodPost, "/api/chat", map[string]interface{}{"session_id": session, "message": "2"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &turn))
	assert.Equal(t, chatbot.KindIdle, turn.State)

	var count int64
	db.Model(&models.Reservation{}).Where("table_number = ?", 2).Count(&count)
	assert.Equal(t, int64(1), count)

	w, env = doJSON(t, r, http.MethodGet, "/api/chat/sessions/"+session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lines []chatbot.Line
	require.NoError(t, json.Unmarshal(env.Data, &lines))
	assert.Len(t, lines, 1+2*5)
}

func TestChatErrors(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/chat", map[string]interface{}{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation", env.Kind)

	w, env = doJSON(t, r, http.MethodGet, "/api/chat/sessions/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NotFound", env.Kind)
}

func TestChatSocket(t *testing.T) {
	r, _ := setupRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/chat/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var frame map[string]string
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, chatbot.Greeting, frame["reply"])
	assert.NotEmpty(t, frame["session_id"])

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("leave feedback")))
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, string(chatbot.KindFeedbackRating), frame["state"])

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(" ")))
	frame = nil
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "message is required", frame["error"])
}
