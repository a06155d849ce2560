// internal/httpserver/routes_connections.go
//
// GET /connections → a new Connections board; ?seed= makes it reproducible.

package httpserver

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/robalobadob/coregames/apps/go-server/internal/connections"
)

// handleConnections builds a Connections board. ?seed= makes it reproducible.
func (s *Server) handleConnections(w http.ResponseWriter, r *http.Request) {
	seed := time.Now().UnixNano()
	if v := r.URL.Query().Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_seed")
			return
		}
		seed = n
	}
	data := connections.Current()
	if data == nil {
		writeError(w, http.StatusServiceUnavailable, "connections_not_loaded")
		return
	}
	g, err := connections.New(data, rand.New(rand.NewSource(seed)))
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "no_categories")
		return
	}
	writeJSON(w, http.StatusOK, g)
}
