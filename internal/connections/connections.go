// internal/connections/connections.go
//
// Connections puzzle builder.
// For each difficulty (Easiest, Easy, Medium, Hard) one category with at
// least four words is chosen and four of its words are sampled. The sixteen
// words are shuffled together into AllWords.
//
// Source data is a JSON object: {difficulty: {category: [words...]}}.

package connections

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/coregames/apps/go-server/assets"
)

// Difficulties in board order.
var Difficulties = []string{"Easiest", "Easy", "Medium", "Hard"}

// GroupSize is the number of words per category on the board.
const GroupSize = 4

var ErrNoCategories = errors.New("connections: no category has enough words")

// Data maps difficulty -> category -> words.
type Data map[string]map[string][]string

// Game is one board.
type Game struct {
	Categories map[string]map[string][]string `json:"categories"`
	AllWords   []string                       `json:"all_words"`
}

// Parse decodes category data.
func Parse(r io.Reader) (Data, error) {
	var d Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("connections: decode: %w", err)
	}
	return d, nil
}

// New builds a board from d using rng.
func New(d Data, rng *rand.Rand) (*Game, error) {
	g := &Game{Categories: map[string]map[string][]string{}}

	for _, diff := range Difficulties {
		cats, ok := d[diff]
		if !ok {
			log.Warn().Str("difficulty", diff).Msg("difficulty missing from data")
			continue
		}
		var valid []string
		for name, ws := range cats {
			if len(ws) >= GroupSize {
				valid = append(valid, name)
			}
		}
		if len(valid) == 0 {
			log.Warn().Str("difficulty", diff).Int("need", GroupSize).Msg("no category with enough words")
			continue
		}
		sort.Strings(valid)

		name := valid[rng.Intn(len(valid))]
		pool := cats[name]
		picked := make([]string, 0, GroupSize)
		for _, i := range rng.Perm(len(pool))[:GroupSize] {
			picked = append(picked, pool[i])
		}

		g.Categories[diff] = map[string][]string{name: picked}
		g.AllWords = append(g.AllWords, picked...)
	}

	if len(g.AllWords) == 0 {
		return nil, ErrNoCategories
	}
	rng.Shuffle(len(g.AllWords), func(i, j int) { g.AllWords[i], g.AllWords[j] = g.AllWords[j], g.AllWords[i] })
	return g, nil
}

// --- process-wide data ---

var (
	mu   sync.RWMutex
	data Data
)

// Init loads path, or the embedded category list when path is empty, and
// makes it the data used by Current.
func Init(path string) error {
	var (
		rc  io.ReadCloser
		err error
	)
	if path != "" {
		rc, err = os.Open(path)
	} else {
		rc, err = assets.Open(assets.Connections)
	}
	if err != nil {
		return fmt.Errorf("connections: open: %w", err)
	}
	defer rc.Close()

	d, err := Parse(rc)
	if err != nil {
		return err
	}
	mu.Lock()
	data = d
	mu.Unlock()
	log.Info().Int("difficulties", len(d)).Msg("connections data loaded")
	return nil
}

// Current returns the loaded data (nil before Init).
func Current() Data {
	mu.RLock()
	defer mu.RUnlock()
	return data
}
