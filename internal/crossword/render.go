// internal/crossword/render.go
//
// Plain-text output for terminals: the numbered grid, ACROSS/DOWN clue lists
// and the solution list.

package crossword

import (
	"fmt"
	"io"
	"strings"
)

var rule = strings.Repeat("=", 60)

// WriteGrid prints the grid with row/column indexes. Numbered cells show the
// number before the lowercase letter; empty cells print as ■.
func (p *Puzzle) WriteGrid(w io.Writer) error {
	var b strings.Builder
	size := p.Size()

	fmt.Fprintf(&b, "\n%s\nCROSSWORD PUZZLE\n%s\n", rule, rule)
	b.WriteString("   ")
	for c := 0; c < size; c++ {
		fmt.Fprintf(&b, "%2d ", c)
	}
	b.WriteString("\n")

	for r := 0; r < size; r++ {
		fmt.Fprintf(&b, "%2d ", r)
		for c := 0; c < size; c++ {
			letter, ok := p.Grid.At(r, c).Letter()
			switch {
			case !ok:
				b.WriteString(" ■ ")
			case p.Numbers.At(r, c) > 0:
				fmt.Fprintf(&b, "%2d%c ", p.Numbers.At(r, c), lower(letter))
			default:
				fmt.Fprintf(&b, " %c ", lower(letter))
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteClues prints the ACROSS and DOWN clue lists in number order.
func (p *Puzzle) WriteClues(w io.Writer) error {
	if len(p.Words) == 0 {
		_, err := io.WriteString(w, "No words placed yet!\n")
		return err
	}
	var b strings.Builder
	for _, sec := range []struct {
		title string
		dir   Direction
	}{{"ACROSS", Across}, {"DOWN", Down}} {
		fmt.Fprintf(&b, "\n%s:\n%s\n", sec.title, strings.Repeat("-", 40))
		for _, pw := range p.InDirection(sec.dir) {
			fmt.Fprintf(&b, "%2d. %s\n", pw.Number, pw.Clue)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSolution prints every answer with its position.
func (p *Puzzle) WriteSolution(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nSOLUTION:\n%s\n", rule)
	for _, pw := range p.ByNumber() {
		fmt.Fprintf(&b, "%2d. %s (%s) - Row %d, Col %d\n", pw.Number, pw.Text, pw.Direction, pw.Row, pw.Col)
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
