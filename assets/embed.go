// Package assets embeds the default data files so the server runs without any
// configured paths: the primary and secondary crossword dictionaries and the
// Connections category list.
package assets

import (
	"embed"
	"io"
)

//go:embed short_word_clues.json short_word_clues2.json cwords.json
var FS embed.FS

const (
	PrimaryWords   = "short_word_clues.json"
	SecondaryWords = "short_word_clues2.json"
	Connections    = "cwords.json"
)

// Open returns a reader for one of the embedded files.
func Open(name string) (io.ReadCloser, error) {
	return FS.Open(name)
}
