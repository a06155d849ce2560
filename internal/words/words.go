// internal/words/words.go
//
// Word/clue dictionaries for the crossword generator.
//
// Responsibilities:
//   - Decode a JSON object of word → clue list into a Dictionary.
//   - Keep only letters-only words, normalized to uppercase.
//   - Hold the process-wide primary and secondary dictionaries, loaded from
//     configured files or the embedded defaults, with reload support.
//
// File format:
//   {"CAT": ["Feline pet", "Purring companion"], "DOG": ["Canine companion"]}
//
// Initialization behavior (Init/Reload):
//   - PrimaryPath set   → read it; otherwise the embedded short_word_clues.json.
//   - SecondaryPath set → read it; otherwise the embedded short_word_clues2.json.
//   - SecondaryPath "-" disables the secondary dictionary.
//   - Init runs once; Reload swaps both dictionaries atomically.

package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/coregames/apps/go-server/assets"
)

// Disabled turns the secondary dictionary off when used as SecondaryPath.
const Disabled = "-"

// ErrEmpty is returned when a primary dictionary holds no usable entry.
var ErrEmpty = errors.New("words: dictionary has no word with a clue")

// Dictionary maps an uppercase, letters-only word to its candidate clues.
type Dictionary map[string][]string

// Words returns the dictionary keys in sorted order.
// Generation shuffles this list, so seeded runs do not depend on map order.
func (d Dictionary) Words() []string {
	out := make([]string, 0, len(d))
	for w := range d {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Usable counts entries that carry at least one clue.
func (d Dictionary) Usable() int {
	n := 0
	for _, clues := range d {
		if len(clues) > 0 {
			n++
		}
	}
	return n
}

// Report summarizes a Parse call.
type Report struct {
	Loaded  int      // entries kept
	Skipped []string // keys rejected for containing non-letters
	Merged  []string // keys folded into an entry differing only in case
}

// Parse decodes a JSON dictionary. Keys that are not made of ASCII letters
// only are skipped and listed in the report. Keys differing only in case
// share one entry whose clue list is the union, in key order. Clue lists are
// otherwise kept as-is, even when empty; the generator ignores clue-less
// entries.
func Parse(r io.Reader) (Dictionary, Report, error) {
	var raw map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, Report{}, fmt.Errorf("decode dictionary: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rep Report
	d := make(Dictionary, len(raw))
	for _, k := range keys {
		if !IsValidWord(k) {
			rep.Skipped = append(rep.Skipped, k)
			continue
		}
		up := strings.ToUpper(k)
		prev, ok := d[up]
		if !ok {
			d[up] = raw[k]
			continue
		}
		rep.Merged = append(rep.Merged, k)
		for _, c := range raw[k] {
			if !slices.Contains(prev, c) {
				prev = append(prev, c)
			}
		}
		d[up] = prev
	}
	rep.Loaded = len(d)
	return d, rep, nil
}

// LoadFile reads and parses a dictionary file.
func LoadFile(path string) (Dictionary, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	d, rep, err := Parse(f)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", path, err)
	}
	return d, rep, nil
}

// IsValidWord reports whether w is a non-empty run of ASCII letters.
func IsValidWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		c := w[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// --- process-wide dictionaries ---

// Sources names the dictionary files. Empty paths select the embedded defaults.
type Sources struct {
	PrimaryPath   string
	SecondaryPath string
}

var (
	initOnce  sync.Once
	initErr   error
	mu        sync.RWMutex
	primary   Dictionary
	secondary Dictionary
)

// Init loads the dictionaries exactly once.
func Init(src Sources) error {
	initOnce.Do(func() {
		initErr = Reload(src)
	})
	return initErr
}

// Reload re-reads both dictionaries and swaps them in.
// On error the previously loaded dictionaries stay in place.
func Reload(src Sources) error {
	p, err := load(src.PrimaryPath, assets.PrimaryWords)
	if err != nil {
		return err
	}
	if p.Usable() == 0 {
		return ErrEmpty
	}

	var s Dictionary
	if src.SecondaryPath != Disabled {
		if s, err = load(src.SecondaryPath, assets.SecondaryWords); err != nil {
			return err
		}
	}

	mu.Lock()
	primary, secondary = p, s
	mu.Unlock()

	log.Info().Int("primary", len(p)).Int("secondary", len(s)).Msg("dictionaries loaded")
	return nil
}

// load reads path, or the embedded file when path is empty.
func load(path, embedded string) (Dictionary, error) {
	var (
		d   Dictionary
		rep Report
		err error
	)
	if path != "" {
		d, rep, err = LoadFile(path)
	} else {
		var f io.ReadCloser
		if f, err = assets.Open(embedded); err != nil {
			return nil, fmt.Errorf("open embedded %s: %w", embedded, err)
		}
		defer f.Close()
		d, rep, err = Parse(f)
		path = embedded
	}
	if err != nil {
		return nil, err
	}
	for _, w := range rep.Skipped {
		log.Warn().Str("file", path).Str("word", w).Msg("skipping invalid word")
	}
	for _, w := range rep.Merged {
		log.Warn().Str("file", path).Str("word", w).Msg("merging clues of duplicate word")
	}
	return d, nil
}

// Primary returns the loaded primary dictionary (nil before Init).
func Primary() Dictionary {
	mu.RLock()
	defer mu.RUnlock()
	return primary
}

// Secondary returns the loaded secondary dictionary; nil when disabled.
func Secondary() Dictionary {
	mu.RLock()
	defer mu.RUnlock()
	return secondary
}

// Stats returns entry counts: (primary, secondary).
func Stats() (primaryCount int, secondaryCount int) {
	mu.RLock()
	defer mu.RUnlock()
	return len(primary), len(secondary)
}
