package crossword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignNumbers_RowMajorWithSharedStart(t *testing.T) {
	w := []*PlacedWord{
		{Text: "TEN", Row: 2, Col: 1, Direction: Across},
		{Text: "CAT", Row: 0, Col: 0, Direction: Across},
		{Text: "CAR", Row: 0, Col: 0, Direction: Down},
		{Text: "TAN", Row: 0, Col: 2, Direction: Down},
	}

	grid := AssignNumbers(4, w)

	assert.Equal(t, 3, w[0].Number)
	assert.Equal(t, 1, w[1].Number)
	assert.Equal(t, 1, w[2].Number, "words sharing a start cell share a number")
	assert.Equal(t, 2, w[3].Number)

	require.Len(t, grid, 4)
	assert.Equal(t, []int{1, 0, 2, 0}, grid[0])
	assert.Equal(t, []int{0, 0, 0, 0}, grid[1])
	assert.Equal(t, []int{0, 3, 0, 0}, grid[2])
	assert.Equal(t, 0, grid.At(9, 9))
}

func TestAssignNumbers_Empty(t *testing.T) {
	grid := AssignNumbers(3, nil)
	for _, row := range grid {
		assert.Equal(t, []int{0, 0, 0}, row)
	}
}

func TestAssignNumbers_Renumbers(t *testing.T) {
	w := []*PlacedWord{{Text: "AB", Row: 1, Col: 1, Direction: Across, Number: 7}}
	AssignNumbers(3, w)
	assert.Equal(t, 1, w[0].Number)
}

func TestByNumber_AcrossBeforeDownOnSharedNumber(t *testing.T) {
	p := &Puzzle{Grid: NewGrid(4), Words: []*PlacedWord{
		{Text: "CAR", Row: 0, Col: 0, Direction: Down},
		{Text: "TEN", Row: 2, Col: 1, Direction: Across},
		{Text: "CAT", Row: 0, Col: 0, Direction: Across},
	}}
	p.Numbers = AssignNumbers(4, p.Words)

	got := p.ByNumber()

	require.Len(t, got, 3)
	assert.Equal(t, "CAT", got[0].Text)
	assert.Equal(t, "CAR", got[1].Text)
	assert.Equal(t, "TEN", got[2].Text)

	across := p.InDirection(Across)
	require.Len(t, across, 2)
	assert.Equal(t, "CAT", across[0].Text)
	assert.Equal(t, "TEN", across[1].Text)
}
