package httpserver

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/coregames/apps/go-server/internal/config"
	"github.com/robalobadob/coregames/apps/go-server/internal/connections"
	"github.com/robalobadob/coregames/apps/go-server/internal/daily"
	"github.com/robalobadob/coregames/apps/go-server/internal/export"
	"github.com/robalobadob/coregames/apps/go-server/internal/store"
	"github.com/robalobadob/coregames/apps/go-server/internal/words"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	require.NoError(t, words.Init(words.Sources{}))
	require.NoError(t, connections.Init(""))

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	schema, err := os.ReadFile(filepath.Join("..", "..", "sql", "001_daily_puzzles.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.GenerationRetries = 10
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, store.NewMemoryStore(16), db)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestDiagnostics(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = get(t, s, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/mini")

	rec = get(t, s, "/debug/words")
	var stats map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Positive(t, stats["primary"])
	assert.Positive(t, stats["secondary"])

	rec = get(t, s, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.ClientOrigin = "https://games.example" })
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/mini", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://games.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMini_PuzDownloadAndStoredCopies(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/mini")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="generated_crossword.puz"`, rec.Header().Get("Content-Disposition"))
	id := rec.Header().Get("X-Puzzle-ID")
	require.NotEmpty(t, id)
	assert.NotEmpty(t, rec.Header().Get("X-Share-Token"))

	f, err := export.DecodePuz(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 8, f.Width)
	assert.GreaterOrEqual(t, len(f.Clues), 7)
	assert.Equal(t, "Core Games Mini", f.Title)

	puz := get(t, s, "/puzzles/"+id+"/puz")
	require.Equal(t, http.StatusOK, puz.Code)
	assert.Equal(t, rec.Body.Bytes(), puz.Body.Bytes())

	js := get(t, s, "/puzzles/"+id)
	require.Equal(t, http.StatusOK, js.Code)
	doc, err := export.ParseJSON(js.Body)
	require.NoError(t, err)
	assert.Len(t, doc.Words, len(f.Clues))
	for i, w := range doc.Words {
		assert.Equal(t, f.Clues[i], w.Clue, "clue %d", i)
	}

	assert.Equal(t, http.StatusNotFound, get(t, s, "/puzzles/missing").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/puzzles/missing/puz").Code)
}

func TestMiniJSON(t *testing.T) {
	s := newTestServer(t, nil)
	rec := get(t, s, "/mini.json?size=10&target=9")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	doc, err := export.ParseJSON(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 10, doc.Metadata.Size)
	assert.GreaterOrEqual(t, len(doc.Words), 7)
	assert.LessOrEqual(t, len(doc.Words), 9)
}

func TestMini_BadParams(t *testing.T) {
	s := newTestServer(t, nil)
	for _, q := range []string{"size=2", "size=99", "size=x", "target=0", "target=x", "size=3&target=10"} {
		rec := get(t, s, "/mini?"+q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestMini_InsufficientPlacement(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.GenerationRetries = 2 })
	rec := get(t, s, "/mini?target=3")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "insufficient_placement", decodeError(t, rec))
}

func TestShare_RebuildsSamePuzzle(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/mini.json")
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Header().Get("X-Share-Token")
	require.NotEmpty(t, token)
	orig, err := export.ParseJSON(rec.Body)
	require.NoError(t, err)

	shared := get(t, s, "/share/"+token+"?format=json")
	require.Equal(t, http.StatusOK, shared.Code, shared.Body.String())
	assert.Equal(t, rec.Header().Get("X-Puzzle-Seed"), shared.Header().Get("X-Puzzle-Seed"))
	doc, err := export.ParseJSON(shared.Body)
	require.NoError(t, err)
	assert.Equal(t, orig.Words, doc.Words)
	assert.Equal(t, orig.Letters(), doc.Letters())

	puz := get(t, s, "/share/"+token)
	require.Equal(t, http.StatusOK, puz.Code)
	_, err = export.DecodePuz(puz.Body.Bytes())
	assert.NoError(t, err)

	bad := get(t, s, "/share/not-a-token")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Equal(t, "invalid_token", decodeError(t, bad))
}

func TestDaily_GeneratedOnceAndArchived(t *testing.T) {
	s := newTestServer(t, nil)

	first := get(t, s, "/daily/mini?format=json")
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	second := get(t, s, "/daily/mini?format=json")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, first.Header().Get("X-Puzzle-Seed"), second.Header().Get("X-Puzzle-Seed"))

	today := daily.DateKey(time.Now())
	puz := get(t, s, "/daily/mini?date="+today)
	require.Equal(t, http.StatusOK, puz.Code)
	assert.Equal(t, `attachment; filename="daily_`+today+`.puz"`, puz.Header().Get("Content-Disposition"))
	_, err := export.DecodePuz(puz.Body.Bytes())
	assert.NoError(t, err)

	hist := get(t, s, "/daily/history")
	require.Equal(t, http.StatusOK, hist.Code)
	var body struct {
		Puzzles []daily.Puzzle `json:"puzzles"`
	}
	require.NoError(t, json.Unmarshal(hist.Body.Bytes(), &body))
	require.Len(t, body.Puzzles, 1)
	assert.Equal(t, today, body.Puzzles[0].Date)
	assert.GreaterOrEqual(t, body.Puzzles[0].WordCount, 7)
}

func TestDaily_SameSaltSameDatePuzzle(t *testing.T) {
	a := newTestServer(t, nil)
	b := newTestServer(t, nil)

	ra := get(t, a, "/daily/mini?date=2025-06-01&format=json")
	rb := get(t, b, "/daily/mini?date=2025-06-01&format=json")
	require.Equal(t, http.StatusOK, ra.Code)
	require.Equal(t, http.StatusOK, rb.Code)

	da, err := export.ParseJSON(ra.Body)
	require.NoError(t, err)
	dbDoc, err := export.ParseJSON(rb.Body)
	require.NoError(t, err)
	assert.Equal(t, da.Words, dbDoc.Words)
}

func TestDaily_BadRequests(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/daily/mini?date=yesterday")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_date", decodeError(t, rec))

	future := daily.DateKey(time.Now().AddDate(0, 0, 2))
	rec = get(t, s, "/daily/mini?date="+future)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "date_in_future", decodeError(t, rec))

	for _, early := range []string{"0001-01-01", "2024-12-31"} {
		rec = get(t, s, "/daily/mini?date="+early)
		assert.Equal(t, http.StatusBadRequest, rec.Code, early)
		assert.Equal(t, "date_before_start", decodeError(t, rec))
	}
	rec = get(t, s, "/daily/history")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"puzzles":[]}`, rec.Body.String(), "refused dates are not archived")

	rec = get(t, s, "/daily/history?limit=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConnections(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/connections?seed=3")
	require.Equal(t, http.StatusOK, rec.Code)
	var g connections.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Len(t, g.AllWords, 16)
	assert.Len(t, g.Categories, 4)

	again := get(t, s, "/connections?seed=3")
	assert.Equal(t, rec.Body.String(), again.Body.String())

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/connections?seed=abc").Code)
}

func TestAdminReload(t *testing.T) {
	t.Run("disabled without hash", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/reload", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	s := newTestServer(t, func(c *config.Config) { c.AdminPasswordHash = string(hash) })

	post := func(pw string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/admin/reload", bytes.NewReader(nil))
		if pw != "" {
			req.SetBasicAuth("admin", pw)
		}
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, post("").Code)
	assert.Equal(t, http.StatusUnauthorized, post("wrong").Code)

	rec := post("hunter22")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
}
