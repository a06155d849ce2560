// cmd/minigen/connections.go
//
// `minigen connections`: print one Connections board as indented JSON.

package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/coregames/apps/go-server/internal/connections"
)

var connFlags struct {
	file string
	seed int64
}

var connectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "Print a Connections board as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		file := cfg.ConnectionsFile
		if connFlags.file != "" {
			file = connFlags.file
		}
		if err := connections.Init(file); err != nil {
			return err
		}
		seed := connFlags.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g, err := connections.New(connections.Current(), rand.New(rand.NewSource(seed)))
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	connectionsCmd.Flags().StringVar(&connFlags.file, "file", "", "category JSON (default: embedded)")
	connectionsCmd.Flags().Int64Var(&connFlags.seed, "seed", 0, "random seed; 0 picks one from the clock")
	rootCmd.AddCommand(connectionsCmd)
}
