// internal/crossword/grid.go
//
// Fixed-size square letter grid with the placement legality check.
//
// CanPlace rules for a word at (row, col) along dir:
//   1. The word must fit inside the grid.
//   2. The squares just before the first letter and just after the last
//      letter along dir must be empty (or off the grid).
//   3. Every occupied square the word crosses must already hold the same
//      letter.
//   4. Every empty square the word would fill must have empty neighbours on
//      both sides perpendicular to dir, so no accidental word is formed.

package crossword

// Grid is an N×N matrix of cells. Its size never changes after NewGrid.
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid allocates an empty size×size grid.
func NewGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Grid{size: size, cells: cells}
}

// Size returns the grid dimension.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// At returns the cell at (row, col). Off-grid coordinates read as Empty.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row][col]
}

// Rows returns a copy of the grid contents.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.size)
	for i, row := range g.cells {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// Filled counts non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if !c.IsEmpty() {
				n++
			}
		}
	}
	return n
}

// CanPlace reports whether word may be written at (row, col) along dir
// without breaking the adjacency rules.
func (g *Grid) CanPlace(word string, row, col int, dir Direction) bool {
	n := len(word)
	if n == 0 {
		return false
	}
	dr, dc := dir.step()
	endRow, endCol := row+(n-1)*dr, col+(n-1)*dc
	if !g.InBounds(row, col) || !g.InBounds(endRow, endCol) {
		return false
	}

	// Squares flanking the word along its axis.
	if !g.At(row-dr, col-dc).IsEmpty() || !g.At(endRow+dr, endCol+dc).IsEmpty() {
		return false
	}

	// Perpendicular neighbours: for an across word, above/below.
	pr, pc := dc, dr
	for i := 0; i < n; i++ {
		r, c := row+i*dr, col+i*dc
		cur := g.cells[r][c]
		if !cur.IsEmpty() {
			if byte(cur) != word[i] {
				return false
			}
			continue
		}
		if !g.At(r-pr, c-pc).IsEmpty() || !g.At(r+pr, c+pc).IsEmpty() {
			return false
		}
	}
	return true
}

// Write stores every letter of word starting at (row, col) along dir.
// It does not validate; call CanPlace first.
func (g *Grid) Write(word string, row, col int, dir Direction) {
	dr, dc := dir.step()
	for i := 0; i < len(word); i++ {
		g.cells[row+i*dr][col+i*dc] = Cell(word[i])
	}
}
