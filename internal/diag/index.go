package diag

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexPage []byte

// handleIndex serves the embedded viewer page at the root.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}
