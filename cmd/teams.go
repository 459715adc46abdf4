package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lvgk/csimpact/internal/report"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Show teams ranked by impact rating",
	RunE:  runTeams,
}

func runTeams(cmd *cobra.Command, args []string) error {
	db, result, _, err := loadAndRate()
	if err != nil {
		return err
	}
	defer db.Close()

	cHeader.Println("\nTeam impact ratings")
	report.PrintTeamTable(os.Stdout, result.Teams)
	return nil
}
