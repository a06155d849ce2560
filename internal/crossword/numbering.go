// internal/crossword/numbering.go
//
// Clue numbering. Start cells are numbered 1.. in row-major order; a cell
// starting both an across and a down word carries one number.

package crossword

import "sort"

// NumberGrid parallels a Grid: 0 for unnumbered cells, otherwise the number
// of the word(s) starting there.
type NumberGrid [][]int

// At returns the number at (row, col), 0 when off-grid or unnumbered.
func (n NumberGrid) At(row, col int) int {
	if row < 0 || row >= len(n) || col < 0 || col >= len(n[row]) {
		return 0
	}
	return n[row][col]
}

type coord struct{ row, col int }

// AssignNumbers numbers the distinct start cells of words in row-major order
// starting from 1, sets each word's Number from its start cell, and returns
// the size×size number grid. Words sharing a start cell share a number.
func AssignNumbers(size int, words []*PlacedWord) NumberGrid {
	grid := make(NumberGrid, size)
	for i := range grid {
		grid[i] = make([]int, size)
	}

	seen := make(map[coord]struct{}, len(words))
	starts := make([]coord, 0, len(words))
	for _, w := range words {
		c := coord{w.Row, w.Col}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		starts = append(starts, c)
	}
	sort.Slice(starts, func(i, j int) bool {
		if starts[i].row != starts[j].row {
			return starts[i].row < starts[j].row
		}
		return starts[i].col < starts[j].col
	})

	numbers := make(map[coord]int, len(starts))
	for i, c := range starts {
		numbers[c] = i + 1
		grid[c.row][c.col] = i + 1
	}
	for _, w := range words {
		w.Number = numbers[coord{w.Row, w.Col}]
	}
	return grid
}

// sortByNumber orders words by number; across precedes down on a shared
// start cell, and ties otherwise keep placement order.
func sortByNumber(words []*PlacedWord) {
	sort.SliceStable(words, func(i, j int) bool {
		if words[i].Number != words[j].Number {
			return words[i].Number < words[j].Number
		}
		return words[i].Direction == Across && words[j].Direction == Down
	})
}
