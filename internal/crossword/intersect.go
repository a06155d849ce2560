// internal/crossword/intersect.go
//
// Crossing search: every position where a candidate word can share a letter
// with a placed word, perpendicular to it and inside the grid.

package crossword

// Intersection is a geometric crossing between a candidate word and a placed
// word: the candidate would start at (Row, Col) along Direction, with its
// WordIndex-th letter on the placed word's PlacedIndex-th letter.
type Intersection struct {
	Row         int
	Col         int
	WordIndex   int
	PlacedIndex int
	Direction   Direction
}

// Intersections lists every position where word could cross placed at a
// shared letter, perpendicular to placed, fully inside the grid.
// Adjacency is not checked here; the result is in scan order (candidate
// letter, then placed letter) and callers shuffle it if they need to.
func (g *Grid) Intersections(word string, placed *PlacedWord) []Intersection {
	var out []Intersection
	n := len(word)
	dir := placed.Direction.Perpendicular()
	for i := 0; i < n; i++ {
		for j := 0; j < len(placed.Text); j++ {
			if word[i] != placed.Text[j] {
				continue
			}
			var row, col int
			if placed.Direction == Across {
				row, col = placed.Row-i, placed.Col+j
				if row < 0 || row+n > g.size || col < 0 || col >= g.size {
					continue
				}
			} else {
				row, col = placed.Row+j, placed.Col-i
				if col < 0 || col+n > g.size || row < 0 || row >= g.size {
					continue
				}
			}
			out = append(out, Intersection{Row: row, Col: col, WordIndex: i, PlacedIndex: j, Direction: dir})
		}
	}
	return out
}
