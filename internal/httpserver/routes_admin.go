// internal/httpserver/routes_admin.go
//
// Operator endpoints, mounted only when ADMIN_PASSWORD_HASH is set:
//   - POST /admin/reload → re-read dictionaries and Connections data
//
// Requests authenticate with HTTP basic auth (any user name); the password is
// checked with bcrypt against the configured hash.

package httpserver

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/coregames/apps/go-server/internal/connections"
	"github.com/robalobadob/coregames/apps/go-server/internal/words"
)

func (s *Server) mountAdmin() {
	if s.cfg.AdminPasswordHash == "" {
		return
	}
	s.r.With(s.requireAdmin).Post("/admin/reload", s.handleReload)
}

// requireAdmin enforces basic auth against the bcrypt hash.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, pw, ok := r.BasicAuth()
		if !ok || !checkPassword(s.cfg.AdminPasswordHash, pw) {
			w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func checkPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	src := words.Sources{PrimaryPath: s.cfg.WordsFile, SecondaryPath: s.cfg.WordsSecondary}
	if err := words.Reload(src); err != nil {
		log.Error().Err(err).Msg("reload dictionaries")
		writeError(w, http.StatusInternalServerError, "reload_failed")
		return
	}
	if err := connections.Init(s.cfg.ConnectionsFile); err != nil {
		log.Error().Err(err).Msg("reload connections")
		writeError(w, http.StatusInternalServerError, "reload_failed")
		return
	}
	p, sec := words.Stats()
	log.Info().Int("primary", p).Int("secondary", sec).Msg("admin reload")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "primary": p, "secondary": sec})
}
