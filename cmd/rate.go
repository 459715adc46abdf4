package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvgk/csimpact/internal/report"
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Run the full rating pipeline and show players and teams",
	RunE:  runRate,
}

func runRate(cmd *cobra.Command, args []string) error {
	db, result, _, err := loadAndRate()
	if err != nil {
		return err
	}
	defer db.Close()

	cHeader.Println("\nPlayer impact ratings")
	report.PrintPlayerTable(result.Players, "")

	cHeader.Println("\nTeam impact ratings")
	report.PrintTeamTable(os.Stdout, result.Teams)

	fmt.Printf("\nRated %d players across %d teams.\n", len(result.Players), len(result.Teams))
	return nil
}
