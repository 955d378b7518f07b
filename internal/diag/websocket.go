package diag

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Loopback debugging tool; origin checks add nothing here.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// statsInterval is how often connected clients receive a fresh snapshot.
const statsInterval = 500 * time.Millisecond

// wsManager pushes stats snapshots to connected viewers.
type wsManager struct {
	server     *Server
	clients    map[*wsClient]bool
	clientsMu  sync.RWMutex
	register   chan *wsClient
	unregister chan *wsClient
	shutdown   chan struct{}
}

type wsClient struct {
	manager *wsManager
	conn    *websocket.Conn
	send    chan []byte
	ip      string
}

func newWSManager(s *Server) *wsManager {
	return &wsManager{
		server:     s,
		clients:    make(map[*wsClient]bool),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		shutdown:   make(chan struct{}),
	}
}

func (m *wsManager) start() {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	for {
		select {
		case client := <-m.register:
			m.clientsMu.Lock()
			m.clients[client] = true
			m.clientsMu.Unlock()
			log.Printf("diag: viewer connected from %s", client.ip)

		case client := <-m.unregister:
			m.clientsMu.Lock()
			if _, ok := m.clients[client]; ok {
				delete(m.clients, client)
				close(client.send)
				log.Printf("diag: viewer disconnected from %s", client.ip)
			}
			m.clientsMu.Unlock()

		case <-ticker.C:
			m.broadcastStats()

		case <-m.shutdown:
			return
		}
	}
}

func (m *wsManager) broadcastStats() {
	m.clientsMu.RLock()
	defer m.clientsMu.RUnlock()

	if len(m.clients) == 0 {
		return
	}

	msg, err := json.Marshal(m.server.stats())
	if err != nil {
		log.Printf("diag: failed to marshal stats: %v", err)
		return
	}

	for client := range m.clients {
		select {
		case client.send <- msg:
		default:
			close(client.send)
			delete(m.clients, client)
		}
	}
}

func (m *wsManager) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("diag: failed to upgrade connection: %v", err)
		return
	}

	client := &wsClient{
		manager: m,
		conn:    conn,
		send:    make(chan []byte, 64),
		ip:      r.RemoteAddr,
	}

	m.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump discards inbound frames and tears the client down when the
// connection drops.
func (c *wsClient) readPump() {
	defer func() {
		c.manager.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); return nil })

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("diag: read error: %v", err)
			}
			break
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(50 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
