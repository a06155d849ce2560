// internal/export/puz.go
//
// Across Lite (.puz) encoder.
//
// Header (little endian):
//   0x00 file checksum      0x02 "ACROSS&DOWN\0"   0x0E CIB checksum
//   0x10 "ICHEATED"         0x18 4 zero bytes      0x1C version 0x1231
//   0x1E 14 reserved bytes  0x2C width, height, clue count, type 1, state 0
// Body: solution grid, player grid, title, author, copyright, clues in number
// order, empty notes. Strings are latin-1 and null terminated; characters
// latin-1 cannot hold become '?'.

package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"

	"github.com/robalobadob/coregames/apps/go-server/internal/crossword"
)

const (
	offFileChecksum = 0x00
	offSignature    = 0x02
	offCIBChecksum  = 0x0E
	offMaskedLow    = 0x10
	offVersion      = 0x1C
	offWidth        = 0x2C
	offClueCount    = 0x2E
	offSolution     = 0x34

	cibLength = 8
	// MaxHeaderString is the byte limit for title, author and copyright.
	MaxHeaderString = 50
	// MaxPuzSize is the largest width/height the one-byte fields can hold.
	MaxPuzSize = 255

	puzVersion = 0x1231
	puzType    = 1
)

var (
	puzSignature = []byte("ACROSS&DOWN\x00")
	maskedLow    = []byte("ICHEATED")
)

// Checksum runs the .puz checksum over buf[start:start+length] starting from
// seed: rotate the running value right by one bit, then add the byte.
// Bytes past the end of buf are ignored.
func Checksum(buf []byte, start, length int, seed uint16) uint16 {
	sum := seed
	for i := start; i < start+length && i < len(buf); i++ {
		sum = sum>>1 | (sum&1)<<15
		sum += uint16(buf[i])
	}
	return sum
}

// latin1 encodes s rune by rune, writing '?' for anything outside latin-1.
func latin1(s string) []byte {
	enc := charmap.ISO8859_1
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := enc.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}

// EncodePuz renders the puzzle as a .puz file. It fails with ErrNoWords when
// nothing is placed.
func EncodePuz(p *crossword.Puzzle, info Info) ([]byte, error) {
	if p == nil || len(p.Words) == 0 {
		return nil, ErrNoWords
	}
	size := p.Size()
	if size > MaxPuzSize {
		return nil, fmt.Errorf("export: grid size %d exceeds %d", size, MaxPuzSize)
	}
	words := p.ByNumber()

	var buf bytes.Buffer
	buf.Grow(offSolution + 2*size*size + 256)

	buf.Write([]byte{0, 0}) // file checksum, patched below
	buf.Write(puzSignature)
	buf.Write([]byte{0, 0}) // CIB checksum, patched below
	buf.Write(maskedLow)
	buf.Write(make([]byte, 4))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(puzVersion))
	buf.Write(make([]byte, 14))

	buf.WriteByte(byte(size))
	buf.WriteByte(byte(size))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(words)))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(puzType))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(0))

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if letter, ok := p.Grid.At(r, c).Letter(); ok {
				buf.WriteByte(letter)
			} else {
				buf.WriteByte('.')
			}
		}
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if p.Grid.At(r, c).IsEmpty() {
				buf.WriteByte('.')
			} else {
				buf.WriteByte('-')
			}
		}
	}

	for _, s := range []string{info.Title, info.Author, info.Copyright} {
		buf.Write(truncate(latin1(s), MaxHeaderString))
		buf.WriteByte(0)
	}
	for _, w := range words {
		buf.Write(latin1(w.Clue))
		buf.WriteByte(0)
	}
	buf.WriteByte(0) // notes

	data := buf.Bytes()
	cib := Checksum(data, offWidth, len(data)-offWidth, 0)
	binary.LittleEndian.PutUint16(data[offCIBChecksum:], cib)
	file := Checksum(data, offWidth, cibLength, 0)
	binary.LittleEndian.PutUint16(data[offFileChecksum:], file)
	return data, nil
}

// WritePuz encodes the puzzle and writes it to w.
func WritePuz(w io.Writer, p *crossword.Puzzle, info Info) error {
	data, err := EncodePuz(p, info)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	return nil
}

// WritePuzFile encodes the puzzle and writes it to path.
func WritePuzFile(path string, p *crossword.Puzzle, info Info) error {
	data, err := EncodePuz(p, info)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrExportIO, err)
	}
	return nil
}
