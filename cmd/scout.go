package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvgk/csimpact/internal/model"
	"github.com/lvgk/csimpact/internal/report"
	"github.com/lvgk/csimpact/internal/scout"
)

var scoutTeam string

var scoutCmd = &cobra.Command{
	Use:   "scout [player]",
	Short: "Show scout reports for players",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScout,
}

func init() {
	scoutCmd.Flags().StringVar(&scoutTeam, "team", "", "evaluate fit against this team's roster")
}

func runScout(cmd *cobra.Command, args []string) error {
	db, result, rounds, err := loadAndRate()
	if err != nil {
		return err
	}
	defer db.Close()

	teamByName := make(map[string]*model.TeamWithTIR, len(result.Teams))
	for _, t := range result.Teams {
		teamByName[strings.ToLower(t.Name)] = t
	}
	contextTeam := func(p *model.PlayerWithPIV) *model.TeamWithTIR {
		if scoutTeam != "" {
			return teamByName[strings.ToLower(scoutTeam)]
		}
		return teamByName[strings.ToLower(p.Team)]
	}

	var reports []scout.Report
	if len(args) == 1 {
		var target *model.PlayerWithPIV
		for _, p := range result.Players {
			if strings.EqualFold(p.Name, args[0]) {
				target = p
				break
			}
		}
		if target == nil {
			return fmt.Errorf("player %q not found", args[0])
		}
		reports = append(reports, scout.Score(target, contextTeam(target), result.Players, rounds))
	} else {
		for _, p := range result.Players {
			reports = append(reports, scout.Score(p, contextTeam(p), result.Players, rounds))
		}
		sort.SliceStable(reports, func(i, j int) bool { return reports[i].Overall > reports[j].Overall })
	}

	cHeader.Println("\nScout reports")
	report.PrintScoutTable(os.Stdout, reports)
	return nil
}
