// internal/crossword/generator.go
//
// Greedy crossword generator.
//
// Algorithm:
//   1. Shuffle the candidates; place the first one across, centered on the
//      middle row.
//   2. For each following candidate, make up to MaxAttempts attempts: shuffle
//      the placed words, list the candidate's intersections with each, shuffle
//      them and place the candidate at the first legal one.
//      A position that would run the candidate over a word laid along the
//      same axis (TEA inside TEAL) is refused as well.
//   3. A candidate that never fits is skipped for good; nothing already placed
//      is ever moved or removed.
//   4. Stop at the target word count or when candidates run out, then number
//      the start cells.
//
// A run succeeds with at least MinWords words on the grid. Otherwise the
// partial puzzle is returned together with ErrInsufficientPlacement.
//
// Generators are not safe for concurrent use; build one per request.

package crossword

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/coregames/apps/go-server/internal/words"
)

const (
	DefaultSize        = 8
	DefaultTarget      = 8
	DefaultMaxAttempts = 200
	// MinWords is the success floor, independent of the requested target.
	MinWords = 7
)

var (
	ErrEmptyDictionary       = errors.New("crossword: no words with clues to place")
	ErrInsufficientPlacement = errors.New("crossword: too few connected words placed")
	ErrInvalidSize           = errors.New("crossword: grid size must be positive")
)

// Options configures a Generator.
type Options struct {
	Size        int   // grid dimension
	Target      int   // stop once this many words are placed
	MaxAttempts int   // attempts per candidate before it is skipped
	Seed        int64 // seed for reproducible layouts (0 = time based)
	// Rand overrides Seed when set.
	Rand *rand.Rand
	// Secondary is mixed into the candidate list by Generate; may be nil.
	Secondary words.Dictionary
	// Logger receives skip and summary events. nil means the global logger.
	Logger *zerolog.Logger
}

// DefaultOptions returns an 8x8, 8-word configuration with a random seed.
func DefaultOptions() *Options {
	return &Options{
		Size:        DefaultSize,
		Target:      DefaultTarget,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Generator places dictionary words onto a grid.
type Generator struct {
	options Options
	rng     *rand.Rand
	seed    int64
	log     zerolog.Logger
}

// New creates a generator. Zero-valued options fall back to the defaults.
func New(options *Options) *Generator {
	opts := *DefaultOptions()
	if options != nil {
		opts = *options
	}
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	if opts.Target <= 0 {
		opts.Target = DefaultTarget
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}

	g := &Generator{options: opts, log: log.Logger}
	if opts.Logger != nil {
		g.log = *opts.Logger
	}
	if opts.Rand != nil {
		g.rng = opts.Rand
	} else {
		g.seed = opts.Seed
		if g.seed == 0 {
			g.seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(g.seed))
	}
	return g
}

// Seed returns the seed of the random source, 0 when Options.Rand was given.
func (g *Generator) Seed() int64 { return g.seed }

// Generate builds a puzzle from dict (mixed with Options.Secondary).
//
// It returns ErrEmptyDictionary with a nil puzzle when nothing can be
// placed. When fewer than MinWords words connect, the partial puzzle is
// returned along with an error wrapping ErrInsufficientPlacement.
func (g *Generator) Generate(dict words.Dictionary) (*Puzzle, error) {
	if g.options.Size < 1 {
		return nil, ErrInvalidSize
	}
	if dict.Usable() == 0 {
		return nil, ErrEmptyDictionary
	}
	cands := PrepareCandidates(g.rng, dict, g.options.Secondary, g.options.Target, g.options.Size)
	return g.PlaceCandidates(cands)
}

// PlaceCandidates runs placement over an already ordered candidate list.
// The first fitting candidate seeds the grid.
func (g *Generator) PlaceCandidates(cands []Candidate) (*Puzzle, error) {
	size := g.options.Size
	if size < 1 {
		return nil, ErrInvalidSize
	}
	fitting := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Word != "" && len(c.Word) <= size {
			fitting = append(fitting, c)
		}
	}
	if len(fitting) == 0 {
		return nil, ErrEmptyDictionary
	}

	p := &Puzzle{Grid: NewGrid(size), Seed: g.seed}

	first := fitting[0]
	row := size / 2
	col := (size - len(first.Word)) / 2
	col = max(0, min(col, size-len(first.Word)))
	p.Place(first.Word, row, col, Across, first.Clue)

	for _, c := range fitting[1:] {
		if len(p.Words) >= g.options.Target {
			break
		}
		if !g.place(p, c) {
			p.Skipped = append(p.Skipped, c.Word)
			g.log.Debug().Str("word", c.Word).Int("attempts", g.options.MaxAttempts).
				Msg("could not connect word, skipping")
		}
	}

	p.Numbers = AssignNumbers(size, p.Words)

	g.log.Info().
		Int("placed", len(p.Words)).
		Int("skipped", len(p.Skipped)).
		Int("size", size).
		Int64("seed", g.seed).
		Msg("crossword generated")

	if len(p.Words) < MinWords {
		return p, fmt.Errorf("%w: %d of %d", ErrInsufficientPlacement, len(p.Words), MinWords)
	}
	return p, nil
}

// place tries to connect c to the words already on the grid.
func (g *Generator) place(p *Puzzle, c Candidate) bool {
	for attempt := 0; attempt < g.options.MaxAttempts; attempt++ {
		placed := append([]*PlacedWord(nil), p.Words...)
		g.rng.Shuffle(len(placed), func(i, j int) { placed[i], placed[j] = placed[j], placed[i] })

		for _, pw := range placed {
			xs := p.Grid.Intersections(c.Word, pw)
			g.rng.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
			for _, x := range xs {
				if p.Grid.CanPlace(c.Word, x.Row, x.Col, x.Direction) &&
					!p.overlapsParallel(c.Word, x.Row, x.Col, x.Direction) {
					p.Place(c.Word, x.Row, x.Col, x.Direction, c.Clue)
					return true
				}
			}
		}
	}
	return false
}
