// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily mini.
// Exposes two endpoints under /daily:
//   - GET /daily/mini     → today's (or ?date=YYYY-MM-DD) puzzle; .puz by
//                           default, JSON with ?format=json
//   - GET /daily/history  → archived dates, newest first (?limit=, default 30)
//
// The puzzle for a date is generated once, from a seed derived from the date
// and DAILY_SALT, and archived in SQLite. Later requests serve the archive.
// Dates after today or before daily.FirstDate are refused.

package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/coregames/apps/go-server/internal/daily"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv   *Server
	store *daily.Store
	salt  string
	mu    sync.Mutex // serializes first-time generation
	now   func() time.Time
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:   s,
		store: daily.NewStore(s.db),
		salt:  s.cfg.DailySalt,
		now:   time.Now,
	}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/mini", dd.handleMini)
		r.Get("/history", dd.handleHistory)
	})
}

// puzzleFor returns the archived puzzle for date, generating and archiving
// it on first request.
func (d *dailyServer) puzzleFor(r *http.Request, date time.Time) (*daily.Puzzle, error) {
	key := daily.DateKey(date)
	p, err := d.store.Get(r.Context(), key)
	if err == nil || !errors.Is(err, daily.ErrNotFound) {
		return p, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if p, err := d.store.Get(r.Context(), key); err == nil {
		return p, nil
	}

	cfg := d.srv.cfg
	b, err := d.srv.buildPuzzle(r.Context(), daily.Seed(date, d.salt), cfg.GridSize, cfg.TargetWords)
	if err != nil {
		return nil, err
	}
	if _, err := d.store.Insert(r.Context(), daily.Puzzle{
		Date:      key,
		Seed:      b.seed,
		WordCount: len(b.puzzle.Words),
		JSON:      b.json,
		Puz:       b.puz,
	}); err != nil {
		return nil, err
	}
	log.Info().Str("date", key).Int64("seed", b.seed).Int("words", len(b.puzzle.Words)).Msg("daily puzzle archived")
	return d.store.Get(r.Context(), key)
}

func (d *dailyServer) handleMini(w http.ResponseWriter, r *http.Request) {
	today := d.now().UTC()
	date := today
	if v := r.URL.Query().Get("date"); v != "" {
		t, err := daily.ParseDateKey(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date")
			return
		}
		if daily.DateKey(t) > daily.DateKey(today) {
			writeError(w, http.StatusBadRequest, "date_in_future")
			return
		}
		if daily.DateKey(t) < daily.FirstDate {
			writeError(w, http.StatusBadRequest, "date_before_start")
			return
		}
		date = t
	}

	p, err := d.puzzleFor(r, date)
	if err != nil {
		writeBuildError(w, err)
		return
	}
	w.Header().Set("X-Puzzle-Seed", strconv.FormatInt(p.Seed, 10))
	if r.URL.Query().Get("format") == "json" {
		writeRawJSON(w, p.JSON)
		return
	}
	writePuz(w, "daily_"+p.Date+".puz", p.Puz)
}

func (d *dailyServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 30
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 365 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}
	rows, err := d.store.List(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("daily history")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"puzzles": rows})
}
