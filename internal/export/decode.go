// internal/export/decode.go
//
// .puz reader. Checks length, signature, version and both checksums before
// returning the grids and latin-1 decoded strings.

package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

var ErrBadPuz = errors.New("export: malformed .puz file")

// PuzFile is a decoded .puz document.
type PuzFile struct {
	Width, Height int
	Version       uint16
	FileChecksum  uint16
	CIBChecksum   uint16
	Solution      []string // one string per row, '.' for black cells
	PlayerGrid    []string
	Title         string
	Author        string
	Copyright     string
	Clues         []string
	Notes         string
}

// DecodePuz parses data and verifies the signature, version and both
// checksums.
func DecodePuz(data []byte) (*PuzFile, error) {
	if len(data) < offSolution {
		return nil, fmt.Errorf("%w: %d byte header", ErrBadPuz, len(data))
	}
	if !bytes.Equal(data[offSignature:offSignature+len(puzSignature)], puzSignature) {
		return nil, fmt.Errorf("%w: bad signature", ErrBadPuz)
	}
	if !bytes.Equal(data[offMaskedLow:offMaskedLow+len(maskedLow)], maskedLow) {
		return nil, fmt.Errorf("%w: bad masked checksums", ErrBadPuz)
	}

	f := &PuzFile{
		Width:        int(data[offWidth]),
		Height:       int(data[offWidth+1]),
		Version:      binary.LittleEndian.Uint16(data[offVersion:]),
		FileChecksum: binary.LittleEndian.Uint16(data[offFileChecksum:]),
		CIBChecksum:  binary.LittleEndian.Uint16(data[offCIBChecksum:]),
	}
	if f.Version != puzVersion {
		return nil, fmt.Errorf("%w: version %#04x", ErrBadPuz, f.Version)
	}
	if want := Checksum(data, offWidth, len(data)-offWidth, 0); want != f.CIBChecksum {
		return nil, fmt.Errorf("%w: CIB checksum %#04x, want %#04x", ErrBadPuz, f.CIBChecksum, want)
	}
	if want := Checksum(data, offWidth, cibLength, 0); want != f.FileChecksum {
		return nil, fmt.Errorf("%w: file checksum %#04x, want %#04x", ErrBadPuz, f.FileChecksum, want)
	}

	cells := f.Width * f.Height
	pos := offSolution
	if len(data) < pos+2*cells {
		return nil, fmt.Errorf("%w: truncated grids", ErrBadPuz)
	}
	for _, dst := range []*[]string{&f.Solution, &f.PlayerGrid} {
		for r := 0; r < f.Height; r++ {
			*dst = append(*dst, string(data[pos:pos+f.Width]))
			pos += f.Width
		}
	}

	next := func() (string, error) {
		end := bytes.IndexByte(data[pos:], 0)
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated string at %#x", ErrBadPuz, pos)
		}
		s, err := charmap.ISO8859_1.NewDecoder().Bytes(data[pos : pos+end])
		if err != nil {
			return "", err
		}
		pos += end + 1
		return string(s), nil
	}

	var err error
	for _, dst := range []*string{&f.Title, &f.Author, &f.Copyright} {
		if *dst, err = next(); err != nil {
			return nil, err
		}
	}
	n := int(binary.LittleEndian.Uint16(data[offClueCount:]))
	for i := 0; i < n; i++ {
		s, err := next()
		if err != nil {
			return nil, err
		}
		f.Clues = append(f.Clues, s)
	}
	if f.Notes, err = next(); err != nil {
		return nil, err
	}
	return f, nil
}
