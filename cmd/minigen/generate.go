// cmd/minigen/generate.go
//
// `minigen generate`: build one puzzle with the configured dictionaries,
// print grid, clues and solution, and optionally write .json/.puz files.
// Exits non-zero below the word floor unless --allow-partial is set.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/coregames/apps/go-server/internal/config"
	"github.com/robalobadob/coregames/apps/go-server/internal/crossword"
	"github.com/robalobadob/coregames/apps/go-server/internal/export"
	"github.com/robalobadob/coregames/apps/go-server/internal/words"
)

var genFlags struct {
	size         int
	target       int
	seed         int64
	wordsFile    string
	secondary    string
	jsonOut      string
	puzOut       string
	title        string
	author       string
	copyright    string
	allowPartial bool
	quiet        bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a crossword and print the grid, clues and solution",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.IntVar(&genFlags.size, "size", 0, "grid size (default from GRID_SIZE)")
	f.IntVar(&genFlags.target, "target", 0, "target word count (default from TARGET_WORDS)")
	f.Int64Var(&genFlags.seed, "seed", 0, "random seed; 0 picks one from the clock")
	f.StringVar(&genFlags.wordsFile, "words", "", "primary dictionary JSON (default: embedded)")
	f.StringVar(&genFlags.secondary, "secondary", "", `secondary dictionary JSON (default: embedded, "-" disables)`)
	f.StringVar(&genFlags.jsonOut, "json", "", "write the JSON document to this path")
	f.StringVar(&genFlags.puzOut, "puz", "", "write the .puz file to this path")
	f.StringVar(&genFlags.title, "title", "", "puzzle title (default from PUZ_TITLE)")
	f.StringVar(&genFlags.author, "author", "", "puzzle author (default from PUZ_AUTHOR)")
	f.StringVar(&genFlags.copyright, "copyright", "", "copyright line")
	f.BoolVar(&genFlags.allowPartial, "allow-partial", false, "export and exit 0 even below the word floor")
	f.BoolVarP(&genFlags.quiet, "quiet", "q", false, "do not print the puzzle")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	size, target := cfg.GridSize, cfg.TargetWords
	if genFlags.size != 0 {
		size = genFlags.size
	}
	if genFlags.target != 0 {
		target = genFlags.target
	}
	if size < config.MinGridSize || size > config.MaxGridSize {
		return fmt.Errorf("--size must be in [%d, %d]", config.MinGridSize, config.MaxGridSize)
	}
	if target < 1 {
		return errors.New("--target must be at least 1")
	}

	src := words.Sources{PrimaryPath: cfg.WordsFile, SecondaryPath: cfg.WordsSecondary}
	if genFlags.wordsFile != "" {
		src.PrimaryPath = genFlags.wordsFile
	}
	if genFlags.secondary != "" {
		src.SecondaryPath = genFlags.secondary
	}
	if err := words.Reload(src); err != nil {
		return err
	}

	g := crossword.New(&crossword.Options{
		Size:      size,
		Target:    target,
		Seed:      genFlags.seed,
		Secondary: words.Secondary(),
	})
	p, genErr := g.Generate(words.Primary())
	if p == nil {
		return genErr
	}

	out := cmd.OutOrStdout()
	if !genFlags.quiet {
		if err := p.WriteGrid(out); err != nil {
			return err
		}
		if err := p.WriteClues(out); err != nil {
			return err
		}
		if err := p.WriteSolution(out); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "seed %d: placed %d words, skipped %d\n", g.Seed(), len(p.Words), len(p.Skipped))

	if genErr != nil && !genFlags.allowPartial {
		return genErr
	}

	info := export.Info{Title: cfg.PuzTitle, Author: cfg.PuzAuthor, Copyright: genFlags.copyright}
	if genFlags.title != "" {
		info.Title = genFlags.title
	}
	if genFlags.author != "" {
		info.Author = genFlags.author
	}
	if genFlags.jsonOut != "" {
		if err := export.WriteJSONFile(genFlags.jsonOut, p, info); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", genFlags.jsonOut)
	}
	if genFlags.puzOut != "" {
		if err := export.WritePuzFile(genFlags.puzOut, p, info); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", genFlags.puzOut)
	}
	return nil
}
