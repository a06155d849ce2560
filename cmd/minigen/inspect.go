// cmd/minigen/inspect.go
//
// `minigen inspect <file.puz>`: decode a .puz file, verify its checksums and
// print the header fields, solution rows and clues.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/coregames/apps/go-server/internal/export"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.puz]",
	Short: "Verify a .puz file and print its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		f, err := export.DecodePuz(data)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s: %dx%d, version %#04x, checksums ok (file %#04x, cib %#04x)\n",
			args[0], f.Width, f.Height, f.Version, f.FileChecksum, f.CIBChecksum)
		fmt.Fprintf(out, "Title:     %s\n", f.Title)
		fmt.Fprintf(out, "Author:    %s\n", f.Author)
		fmt.Fprintf(out, "Copyright: %s\n\n", f.Copyright)
		for _, row := range f.Solution {
			fmt.Fprintln(out, row)
		}
		fmt.Fprintf(out, "\n%d clues:\n", len(f.Clues))
		for i, c := range f.Clues {
			fmt.Fprintf(out, "%3d. %s\n", i+1, c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
