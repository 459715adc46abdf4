package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lvgk/csimpact/internal/parser"
	"github.com/lvgk/csimpact/internal/storage"
)

var parseForce bool

var parseCmd = &cobra.Command{
	Use:   "parse <demo.dem> [more.dem...]",
	Short: "Parse CS2 demo files and store rounds and box scores",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseForce, "force", false, "re-parse demos whose rounds are already stored")
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	for _, demoPath := range args {
		name := filepath.Base(demoPath)
		fmt.Printf("Parsing %s...\n", demoPath)
		match, err := parser.ParseDemo(demoPath)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}

		if !parseForce {
			exists, err := db.DemoExists(match.DemoHash)
			if err != nil {
				return fmt.Errorf("check demo: %w", err)
			}
			if exists {
				fmt.Printf("Skipping %s (demo %s already stored, use --force to redo)\n",
					name, match.DemoHash[:12])
				continue
			}
		}

		if err := db.InsertRounds(match.Rounds); err != nil {
			return fmt.Errorf("store rounds: %w", err)
		}
		if err := db.InsertPlayerStats(match.Players); err != nil {
			return fmt.Errorf("store player stats: %w", err)
		}
		if err := db.InsertDemo(match.DemoHash, name, match.MapName); err != nil {
			return fmt.Errorf("store demo record: %w", err)
		}
		fmt.Printf("Stored %d rounds and %d players from %s (%s)\n",
			len(match.Rounds), len(match.Players), name, match.MapName)
	}
	return nil
}
