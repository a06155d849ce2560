package export

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/coregames/apps/go-server/internal/crossword"
)

// catBat is a 5x5 puzzle: BAT down from (1,2) numbered 1, CAT across from
// (2,1) numbered 2.
func catBat() *crossword.Puzzle {
	p := &crossword.Puzzle{Grid: crossword.NewGrid(5)}
	p.Place("CAT", 2, 1, crossword.Across, "feline")
	p.Place("BAT", 1, 2, crossword.Down, "flying mammal")
	p.Numbers = crossword.AssignNumbers(5, p.Words)
	return p
}

var testInfo = Info{Title: "Mini", Author: "tester", Copyright: "(c)"}

func TestChecksum(t *testing.T) {
	assert.Equal(t, uint16(0), Checksum(nil, 0, 10, 0))
	assert.Equal(t, uint16(1), Checksum([]byte{1}, 0, 1, 0))
	assert.Equal(t, uint16(0x8002), Checksum([]byte{1, 2}, 0, 2, 0), "bit 0 rotates into bit 15")
	assert.Equal(t, uint16(0x00FE), Checksum([]byte{0xFF}, 0, 1, 0xFFFF), "sum wraps at 16 bits")
	assert.Equal(t, uint16(2), Checksum([]byte{9, 2}, 1, 5, 0), "region past the end is ignored")
}

func TestEncodePuz_Layout(t *testing.T) {
	data, err := EncodePuz(catBat(), testInfo)
	require.NoError(t, err)

	assert.Equal(t, "ACROSS&DOWN\x00", string(data[0x02:0x0E]))
	assert.Equal(t, "ICHEATED", string(data[0x10:0x18]))
	assert.Equal(t, []byte{0, 0, 0, 0}, data[0x18:0x1C])
	assert.Equal(t, uint16(0x1231), binary.LittleEndian.Uint16(data[0x1C:]))
	assert.Equal(t, make([]byte, 14), data[0x1E:0x2C])

	assert.Equal(t, []byte{5, 5, 2, 0, 1, 0, 0, 0}, data[0x2C:0x34])

	solution := string(data[0x34 : 0x34+25])
	assert.Equal(t, "....."+"..B.."+".CAT."+"..T.."+".....", solution)
	player := string(data[0x34+25 : 0x34+50])
	assert.Equal(t, "....."+"..-.."+".---."+"..-.."+".....", player)

	tail := string(data[0x34+50:])
	assert.Equal(t, "Mini\x00tester\x00(c)\x00flying mammal\x00feline\x00\x00", tail,
		"clues follow number order regardless of direction")
}

func TestEncodePuz_Checksums(t *testing.T) {
	data, err := EncodePuz(catBat(), testInfo)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x4E00), binary.LittleEndian.Uint16(data[0x00:]))
	assert.Equal(t, Checksum(data, 0x2C, len(data)-0x2C, 0), binary.LittleEndian.Uint16(data[0x0E:]))

	again, err := EncodePuz(catBat(), testInfo)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestEncodePuz_Latin1(t *testing.T) {
	p := catBat()
	p.Words[0].Clue = "café ☕"
	data, err := EncodePuz(p, Info{Title: strings.Repeat("x", 60), Author: "Zoë"})
	require.NoError(t, err)

	f, err := DecodePuz(data)
	require.NoError(t, err)
	assert.Len(t, f.Title, 50)
	assert.Equal(t, "Zoë", f.Author)
	assert.Equal(t, "", f.Copyright)
	assert.Equal(t, []string{"flying mammal", "café ?"}, f.Clues)
	assert.True(t, bytes.Contains(data, []byte("caf\xe9 ?\x00")))
}

func TestEncodePuz_NoWords(t *testing.T) {
	_, err := EncodePuz(&crossword.Puzzle{Grid: crossword.NewGrid(5)}, testInfo)
	assert.ErrorIs(t, err, ErrNoWords)
	_, err = EncodePuz(nil, testInfo)
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestDecodePuz_RoundTrip(t *testing.T) {
	data, err := EncodePuz(catBat(), testInfo)
	require.NoError(t, err)

	f, err := DecodePuz(data)
	require.NoError(t, err)
	assert.Equal(t, 5, f.Width)
	assert.Equal(t, 5, f.Height)
	assert.Equal(t, ".CAT.", f.Solution[2])
	assert.Equal(t, "..-..", f.PlayerGrid[1])
	assert.Equal(t, "Mini", f.Title)
	assert.Equal(t, "tester", f.Author)
	assert.Equal(t, "(c)", f.Copyright)
	assert.Equal(t, []string{"flying mammal", "feline"}, f.Clues)
	assert.Empty(t, f.Notes)
}

func TestDecodePuz_Rejects(t *testing.T) {
	good, err := EncodePuz(catBat(), testInfo)
	require.NoError(t, err)

	cases := map[string]func([]byte) []byte{
		"short":     func(b []byte) []byte { return b[:20] },
		"signature": func(b []byte) []byte { b[3] = 'X'; return b },
		"version":   func(b []byte) []byte { b[0x1C] = 0; return b },
		"solution":  func(b []byte) []byte { b[0x34] = 'Q'; return b },
		"header":    func(b []byte) []byte { b[0x30] = 2; return b },
		"truncated": func(b []byte) []byte { return b[:len(b)-1] },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodePuz(mutate(bytes.Clone(good)))
			assert.ErrorIs(t, err, ErrBadPuz)
		})
	}
}

func TestWritePuzFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.puz")
	require.NoError(t, WritePuzFile(path, catBat(), testInfo))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = DecodePuz(data)
	assert.NoError(t, err)

	err = WritePuzFile(filepath.Join(t.TempDir(), "missing", "out.puz"), catBat(), testInfo)
	assert.ErrorIs(t, err, ErrExportIO)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWritePuz_WriterError(t *testing.T) {
	err := WritePuz(failingWriter{}, catBat(), testInfo)
	assert.ErrorIs(t, err, ErrExportIO)
}
