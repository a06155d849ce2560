// internal/httpserver/routes_mini.go
//
// Generated puzzle routes:
//   - GET /mini               → new puzzle as a .puz download
//   - GET /mini.json          → new puzzle as the JSON document
//   - GET /puzzles/{id}       → stored JSON document
//   - GET /puzzles/{id}/puz   → stored .puz
//   - GET /share/{token}      → puzzle rebuilt from a share token
//
// /mini and /mini.json accept optional ?size= and ?target= overrides.
// Generation is retried up to GenerationRetries times; when no run reaches
// the word floor the response is 503 insufficient_placement.

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/coregames/apps/go-server/internal/config"
	"github.com/robalobadob/coregames/apps/go-server/internal/crossword"
	"github.com/robalobadob/coregames/apps/go-server/internal/export"
	"github.com/robalobadob/coregames/apps/go-server/internal/share"
	"github.com/robalobadob/coregames/apps/go-server/internal/store"
	"github.com/robalobadob/coregames/apps/go-server/internal/words"
)

const puzFilename = "generated_crossword.puz"

var errBadParams = errors.New("bad_params")

// built is one generated puzzle with both encodings.
type built struct {
	puzzle *crossword.Puzzle
	seed   int64
	json   []byte
	puz    []byte
}

// buildPuzzle runs the generator up to GenerationRetries times.
// With baseSeed != 0 attempt i uses baseSeed+i, so the outcome is a pure
// function of the seed and the loaded dictionaries.
func (s *Server) buildPuzzle(ctx context.Context, baseSeed int64, size, target int) (*built, error) {
	primary := words.Primary()
	if primary.Usable() == 0 {
		return nil, crossword.ErrEmptyDictionary
	}

	var lastErr error
	for attempt := 0; attempt < s.cfg.GenerationRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var seed int64
		if baseSeed != 0 {
			seed = baseSeed + int64(attempt)
		}
		g := crossword.New(&crossword.Options{
			Size:      size,
			Target:    target,
			Seed:      seed,
			Secondary: words.Secondary(),
		})
		p, err := g.Generate(primary)
		if err != nil {
			lastErr = err
			log.Debug().Err(err).Int("attempt", attempt+1).Int64("seed", g.Seed()).Msg("generation attempt failed")
			if errors.Is(err, crossword.ErrInsufficientPlacement) {
				continue
			}
			return nil, err
		}

		info := export.Info{Title: s.cfg.PuzTitle, Author: s.cfg.PuzAuthor, Created: time.Now().UTC()}
		jsonBytes, err := export.MarshalJSON(p, info)
		if err != nil {
			return nil, err
		}
		puzBytes, err := export.EncodePuz(p, info)
		if err != nil {
			return nil, err
		}
		return &built{puzzle: p, seed: g.Seed(), json: jsonBytes, puz: puzBytes}, nil
	}
	return nil, lastErr
}

// writeBuildError maps generation failures to responses.
func writeBuildError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, crossword.ErrInsufficientPlacement):
		writeError(w, http.StatusServiceUnavailable, "insufficient_placement")
	case errors.Is(err, crossword.ErrEmptyDictionary):
		writeError(w, http.StatusServiceUnavailable, "empty_dictionary")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "timeout")
	default:
		log.Error().Err(err).Msg("build puzzle")
		writeError(w, http.StatusInternalServerError, "generation_failed")
	}
}

func (s *Server) mountMini() {
	s.r.Get("/mini", s.handleMini(false))
	s.r.Get("/mini.json", s.handleMini(true))
	s.r.Get("/puzzles/{id}", s.handleStored(false))
	s.r.Get("/puzzles/{id}/puz", s.handleStored(true))
	s.r.Get("/share/{token}", s.handleShare)
}

// sizeAndTarget reads ?size= and ?target=, falling back to the configuration.
func (s *Server) sizeAndTarget(r *http.Request) (int, int, error) {
	size, target := s.cfg.GridSize, s.cfg.TargetWords
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < config.MinGridSize || n > config.MaxGridSize {
			return 0, 0, fmt.Errorf("%w: size", errBadParams)
		}
		size = n
	}
	if v := r.URL.Query().Get("target"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > size*size {
			return 0, 0, fmt.Errorf("%w: target", errBadParams)
		}
		target = n
	}
	return size, target, nil
}

// handleMini generates, stores and returns a fresh puzzle.
func (s *Server) handleMini(asJSON bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		size, target, err := s.sizeAndTarget(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		b, err := s.buildPuzzle(r.Context(), 0, size, target)
		if err != nil {
			writeBuildError(w, err)
			return
		}

		token, err := share.Sign(s.cfg.ShareSecret, share.Params{Seed: b.seed, Size: size, Target: target}, s.cfg.ShareTTL())
		if err != nil {
			log.Warn().Err(err).Msg("sign share token")
		}
		id, err := s.store.Save(r.Context(), &store.Record{
			Puzzle:     b.puzzle,
			JSON:       b.json,
			Puz:        b.puz,
			ShareToken: token,
		})
		if err != nil {
			log.Error().Err(err).Msg("save puzzle")
			writeError(w, http.StatusInternalServerError, "save_failed")
			return
		}

		log.Info().Str("puzzleId", id).Int("words", len(b.puzzle.Words)).Int64("seed", b.seed).Msg("puzzle served")
		w.Header().Set("X-Puzzle-ID", id)
		w.Header().Set("X-Puzzle-Seed", strconv.FormatInt(b.seed, 10))
		if token != "" {
			w.Header().Set("X-Share-Token", token)
		}
		if asJSON {
			writeRawJSON(w, b.json)
			return
		}
		writePuz(w, puzFilename, b.puz)
	}
}

// handleStored returns a previously generated puzzle.
func (s *Server) handleStored(asPuz bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		if rec.ShareToken != "" {
			w.Header().Set("X-Share-Token", rec.ShareToken)
		}
		if asPuz {
			writePuz(w, puzFilename, rec.Puz)
			return
		}
		writeRawJSON(w, rec.JSON)
	}
}

// handleShare rebuilds the puzzle a share token describes.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	p, err := share.Parse(s.cfg.ShareSecret, chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_token")
		return
	}
	if p.Size < config.MinGridSize || p.Size > config.MaxGridSize {
		writeError(w, http.StatusBadRequest, "invalid_token")
		return
	}
	b, err := s.buildPuzzle(r.Context(), p.Seed, p.Size, p.Target)
	if err != nil {
		writeBuildError(w, err)
		return
	}
	w.Header().Set("X-Puzzle-Seed", strconv.FormatInt(b.seed, 10))
	if r.URL.Query().Get("format") == "json" {
		writeRawJSON(w, b.json)
		return
	}
	writePuz(w, puzFilename, b.puz)
}
