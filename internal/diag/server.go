// Package diag exposes the overlay host's counters over HTTP for
// debugging an injected process from the outside: a JSON snapshot
// endpoint, a WebSocket push stream, and a small embedded viewer page.
package diag

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/luadebug/egui-opengl-internal/overlay"
)

// StatsFunc supplies the current host counters.
type StatsFunc func() overlay.Stats

// Server serves diagnostics for one overlay host.
type Server struct {
	stats StatsFunc
	token string
	wsMgr *wsManager
}

// NewServer creates a diagnostics server. token is optional; when set,
// requests must carry it as a bearer token.
func NewServer(stats StatsFunc, token string) *Server {
	s := &Server{
		stats: stats,
		token: token,
	}
	s.wsMgr = newWSManager(s)
	return s
}

// Handler returns the full middleware-wrapped handler. Split out from
// Start so tests can drive it without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/ws", s.wsMgr.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleIndex)
	return s.authMiddleware(s.recoverMiddleware(mux))
}

// Start serves on the given port until the listener fails. It binds tcp4
// explicitly to avoid IPv6-only binding issues on Windows. Blocking.
func (s *Server) Start(port int) error {
	go s.wsMgr.start()

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	ln, err := net.Listen("tcp4", addr)
	if err != nil {
		log.Printf("diag: failed to listen on %s: %v", addr, err)
		return err
	}
	log.Printf("diag: serving on %s", addr)

	server := &http.Server{Handler: s.Handler()}
	if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Printf("diag: server stopped: %v", err)
		return err
	}
	return nil
}

// recoverMiddleware prevents a handler panic from crashing the host
// process; this server lives inside someone else's application.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("diag: handler panic: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// authMiddleware checks the bearer token if one is configured. The viewer
// page and the health check stay open.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || r.URL.Path == "/" {
			next.ServeHTTP(w, r)
			return
		}

		if s.token != "" {
			if r.Header.Get("Authorization") != "Bearer "+s.token {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// handleStats handles GET /api/stats.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.stats())
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
