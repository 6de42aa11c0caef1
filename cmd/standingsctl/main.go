// Command standingsctl computes standings, knockout pairs and top scorers
// from JSON exports without a database.
//
// Usage:
//
//	standingsctl table --teams teams.json --matches matches.json [--groups] [--events events.json] [--json]
//	standingsctl pairs --teams teams.json --matches matches.json --top 2 --mode seeded
//	standingsctl scorers --events events.json --limit 10
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "standingsctl",
		Short:         "Offline standings, pairings and scorers from JSON files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(tableCmd())
	root.AddCommand(pairsCmd())
	root.AddCommand(scorersCmd())
	return root
}
