package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua socket dashboard (host stand, dapur) dan menyiarkan event
// perubahan meja, reservasi, dan order ke semuanya.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> label client
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
	}
}

// Register -> menambahkan connection dengan label (misal "dashboard")
func (h *Hub) Register(conn *websocket.Conn, label string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = label
	utils.InfoLogger.Printf("KDS client registered (%s), total %d", label, len(h.clients))
}

// Unregister -> melepaskan connection
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[conn]; !ok {
		return
	}
	delete(h.clients, conn)
	conn.Close()
}

func (h *Hub) Count() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Broadcast mengirim event ke semua client. Client yang gagal ditulis dilepas.
func (h *Hub) Broadcast(event string, data interface{}) {
	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		utils.ErrorLogger.Errorf("Error marshaling %s message: %v", event, err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	utils.InfoLogger.Debugf("Broadcasting %s to %d clients", event, len(h.clients))

	for conn, label := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			utils.ErrorLogger.Errorf("Error sending %s to %s client: %v", event, label, err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
