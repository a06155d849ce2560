// internal/crossword/types.go
//
// Core type definitions for the crossword generator.
// Defines:
//   - Direction: placement axis (across/down).
//   - Cell: one grid square, empty or holding an uppercase letter.
//   - PlacedWord: a word written on the grid with its clue and number.
//   - Puzzle: the result of one generation run (grid, words, numbering).

package crossword

// Direction is the axis a word is written along.
type Direction string

const (
	Across Direction = "across"
	Down   Direction = "down"
)

// Perpendicular returns the other axis.
func (d Direction) Perpendicular() Direction {
	if d == Across {
		return Down
	}
	return Across
}

// step returns the (row, col) increment for one letter along d.
func (d Direction) step() (int, int) {
	if d == Across {
		return 0, 1
	}
	return 1, 0
}

// Cell is a single grid square. The zero value is Empty; any other value is
// the uppercase letter stored there.
type Cell byte

// Empty marks a square no word covers.
const Empty Cell = 0

// IsEmpty reports whether no letter is stored in c.
func (c Cell) IsEmpty() bool { return c == Empty }

// Letter returns the stored letter and whether there is one.
func (c Cell) Letter() (byte, bool) { return byte(c), c != Empty }

// PlacedWord is a word written on the grid.
// Row/Col locate the first letter. Number is 0 until AssignNumbers runs.
type PlacedWord struct {
	Text      string    `json:"word"`
	Clue      string    `json:"clue"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"direction"`
	Number    int       `json:"number"`
}

// CellAt returns the grid coordinate of the i-th letter.
func (w PlacedWord) CellAt(i int) (int, int) {
	dr, dc := w.Direction.step()
	return w.Row + i*dr, w.Col + i*dc
}

// Covers reports whether the word occupies (row, col), and at which index.
func (w PlacedWord) Covers(row, col int) (int, bool) {
	var i int
	if w.Direction == Across {
		if row != w.Row {
			return 0, false
		}
		i = col - w.Col
	} else {
		if col != w.Col {
			return 0, false
		}
		i = row - w.Row
	}
	if i < 0 || i >= len(w.Text) {
		return 0, false
	}
	return i, true
}

// Puzzle is the state of one generation run. It is built by a Generator and
// read-only once Generate returns.
type Puzzle struct {
	Grid    *Grid
	Words   []*PlacedWord
	Numbers NumberGrid
	Skipped []string // candidates that could not be connected within the retry budget
	Seed    int64    // seed of the random source; 0 when a caller-supplied source was used
}

// Size returns the grid dimension.
func (p *Puzzle) Size() int { return p.Grid.Size() }

// Place writes word onto the grid and records it with number 0.
// No validation is done: callers must check Grid.CanPlace first.
func (p *Puzzle) Place(word string, row, col int, dir Direction, clue string) *PlacedWord {
	p.Grid.Write(word, row, col, dir)
	w := &PlacedWord{Text: word, Clue: clue, Row: row, Col: col, Direction: dir}
	p.Words = append(p.Words, w)
	return w
}

// overlapsParallel reports whether a word at (row, col) along dir would share
// a cell with a placed word running the same way.
func (p *Puzzle) overlapsParallel(word string, row, col int, dir Direction) bool {
	cand := PlacedWord{Text: word, Row: row, Col: col, Direction: dir}
	for _, w := range p.Words {
		if w.Direction != dir {
			continue
		}
		for i := range w.Text {
			if _, ok := cand.Covers(w.CellAt(i)); ok {
				return true
			}
		}
	}
	return false
}

// ByNumber returns the placed words sorted by number, across before down
// when two words share a start cell.
func (p *Puzzle) ByNumber() []*PlacedWord {
	out := make([]*PlacedWord, len(p.Words))
	copy(out, p.Words)
	sortByNumber(out)
	return out
}

// InDirection returns the placed words along d, sorted by number.
func (p *Puzzle) InDirection(d Direction) []*PlacedWord {
	var out []*PlacedWord
	for _, w := range p.Words {
		if w.Direction == d {
			out = append(out, w)
		}
	}
	sortByNumber(out)
	return out
}
