package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lvgk/csimpact/internal/ingest"
	"github.com/lvgk/csimpact/internal/storage"
)

var (
	importStatsPath  string
	importRoundsPath string
	importRolesPath  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import player stats, rounds, and roles from CSV exports",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importStatsPath, "stats", "", "player stats CSV")
	importCmd.Flags().StringVar(&importRoundsPath, "rounds", "", "round log CSV")
	importCmd.Flags().StringVar(&importRolesPath, "roles", "", "role assignment CSV")
}

func runImport(cmd *cobra.Command, args []string) error {
	if importStatsPath == "" && importRoundsPath == "" && importRolesPath == "" {
		return fmt.Errorf("nothing to import: pass --stats, --rounds, or --roles")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if importStatsPath != "" {
		stats, err := ingest.LoadPlayerStatsFile(importStatsPath)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if err := db.InsertPlayerStats(stats); err != nil {
			return fmt.Errorf("store stats: %w", err)
		}
		fmt.Printf("Imported %d players from %s\n", len(stats), importStatsPath)
	}

	if importRoundsPath != "" {
		rounds, err := ingest.LoadRoundsFile(importRoundsPath)
		if err != nil {
			return fmt.Errorf("load rounds: %w", err)
		}
		if err := db.InsertRounds(rounds); err != nil {
			return fmt.Errorf("store rounds: %w", err)
		}
		fmt.Printf("Imported %d rounds from %s\n", len(rounds), importRoundsPath)
	}

	if importRolesPath != "" {
		table, err := ingest.LoadRolesFile(importRolesPath)
		if err != nil {
			return fmt.Errorf("load roles: %w", err)
		}
		if err := db.InsertRoles(table); err != nil {
			return fmt.Errorf("store roles: %w", err)
		}
		fmt.Printf("Imported %d role entries from %s\n", table.Len(), importRolesPath)
	}

	return nil
}
