// internal/export/json.go
//
// JSON document for a finished puzzle.
// Layout:
//   - metadata: title, author, grid size, creation time.
//   - grid: one object per cell (letter, number, black).
//   - words: every placed word sorted by number.
//   - clues: across/down maps keyed by the number as a string.
//
// The document is built from the puzzle and never mutates it.

package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/robalobadob/coregames/apps/go-server/internal/crossword"
)

var (
	ErrNoWords  = errors.New("export: no words placed")
	ErrExportIO = errors.New("export: write failed")
)

// Metadata describes the document.
type Metadata struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Size    int    `json:"size"`
	Created string `json:"created"`
}

// CellJSON is one grid square. Letter and Number are null for black cells
// and unnumbered cells respectively.
type CellJSON struct {
	Letter *string `json:"letter"`
	Number *int    `json:"number"`
	Black  bool    `json:"black"`
}

// WordJSON mirrors crossword.PlacedWord.
type WordJSON struct {
	Word      string              `json:"word"`
	Clue      string              `json:"clue"`
	Row       int                 `json:"row"`
	Col       int                 `json:"col"`
	Direction crossword.Direction `json:"direction"`
	Number    int                 `json:"number"`
}

// Clues holds the clue text keyed by number.
type Clues struct {
	Across map[string]string `json:"across"`
	Down   map[string]string `json:"down"`
}

// Document is the exported JSON shape.
type Document struct {
	Metadata Metadata     `json:"metadata"`
	Grid     [][]CellJSON `json:"grid"`
	Words    []WordJSON   `json:"words"`
	Clues    Clues        `json:"clues"`
}

// Info carries the descriptive strings written into exported files.
type Info struct {
	Title     string
	Author    string
	Copyright string
	Created   time.Time // zero means now
}

// BuildDocument converts a numbered puzzle into its JSON document.
func BuildDocument(p *crossword.Puzzle, info Info) (*Document, error) {
	if p == nil || len(p.Words) == 0 {
		return nil, ErrNoWords
	}
	created := info.Created
	if created.IsZero() {
		created = time.Now()
	}
	size := p.Size()

	doc := &Document{
		Metadata: Metadata{
			Title:   info.Title,
			Author:  info.Author,
			Size:    size,
			Created: created.Format(time.RFC3339),
		},
		Grid:  make([][]CellJSON, size),
		Clues: Clues{Across: map[string]string{}, Down: map[string]string{}},
	}

	for r := 0; r < size; r++ {
		row := make([]CellJSON, size)
		for c := 0; c < size; c++ {
			letter, ok := p.Grid.At(r, c).Letter()
			if !ok {
				row[c] = CellJSON{Black: true}
				continue
			}
			s := string(letter)
			row[c].Letter = &s
			if n := p.Numbers.At(r, c); n > 0 {
				row[c].Number = &n
			}
		}
		doc.Grid[r] = row
	}

	for _, w := range p.ByNumber() {
		doc.Words = append(doc.Words, WordJSON{
			Word:      w.Text,
			Clue:      w.Clue,
			Row:       w.Row,
			Col:       w.Col,
			Direction: w.Direction,
			Number:    w.Number,
		})
		key := strconv.Itoa(w.Number)
		if w.Direction == crossword.Across {
			doc.Clues.Across[key] = w.Clue
		} else {
			doc.Clues.Down[key] = w.Clue
		}
	}
	return doc, nil
}

// MarshalJSON encodes the puzzle document, indented, non-ASCII kept as is.
func MarshalJSON(p *crossword.Puzzle, info Info) ([]byte, error) {
	doc, err := BuildDocument(p, info)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// WriteJSON writes the document to w.
func WriteJSON(w io.Writer, p *crossword.Puzzle, info Info) error {
	b, err := MarshalJSON(p, info)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	return nil
}

// WriteJSONFile writes the document to path.
func WriteJSONFile(path string, p *crossword.Puzzle, info Info) error {
	b, err := MarshalJSON(p, info)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	return nil
}

// ParseJSON decodes a document produced by WriteJSON.
func ParseJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("export: decode json: %w", err)
	}
	return &doc, nil
}

// Letters rebuilds the letter matrix; black cells are crossword.Empty.
func (d *Document) Letters() [][]crossword.Cell {
	out := make([][]crossword.Cell, len(d.Grid))
	for r, row := range d.Grid {
		out[r] = make([]crossword.Cell, len(row))
		for c, cell := range row {
			if cell.Letter != nil && len(*cell.Letter) > 0 {
				out[r][c] = crossword.Cell((*cell.Letter)[0])
			}
		}
	}
	return out
}
